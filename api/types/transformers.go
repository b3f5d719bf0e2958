package types

import (
	"github.com/blogscout/search-api/internal/models"
	"github.com/blogscout/search-api/internal/services/blogsearch"
)

// FromBlogSearchPost converts an upstream post to the API representation
func FromBlogSearchPost(p blogsearch.Post) Post {
	return Post{
		URL:       p.URL,
		Title:     p.Title,
		Author:    p.Author,
		Summary:   p.Summary,
		Language:  p.LanguageCode,
		Published: p.Published.Time,
		Indexed:   p.Indexed.Time,
		Authority: p.Authority,
		Tags:      p.Tags,
		Links:     p.Links,
	}
}

// FromBlogSearchPosts converts a list of upstream posts
func FromBlogSearchPosts(posts []blogsearch.Post) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, FromBlogSearchPost(p))
	}
	return out
}

// FromSearchRecord converts a stored search record to the API representation
func FromSearchRecord(r models.SearchRecord) SearchRecord {
	return SearchRecord{
		ID:             r.ID,
		Pattern:        r.Pattern,
		Language:       r.Language,
		PostsReturned:  r.PostsReturned,
		MatchesTotal:   r.MatchesTotal,
		SecondsElapsed: r.SecondsElapsed,
		Failed:         r.Failed,
		ErrorCode:      r.ErrorCode,
		SearchedAt:     r.CreatedAt,
	}
}

// FromSearchRecords converts a list of stored search records
func FromSearchRecords(records []models.SearchRecord) []SearchRecord {
	out := make([]SearchRecord, 0, len(records))
	for _, r := range records {
		out = append(out, FromSearchRecord(r))
	}
	return out
}
