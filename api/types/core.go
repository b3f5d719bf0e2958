package types

import "time"

// Core data types used across API responses

// Post represents a matched blog post with essential fields
type Post struct {
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Language  string    `json:"language,omitempty"`
	Published time.Time `json:"published"`
	Indexed   time.Time `json:"indexed"`
	Authority int       `json:"authority,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Links     []string  `json:"links,omitempty"`
}

// SearchRecord represents one logged search in history responses
type SearchRecord struct {
	ID             uint      `json:"id"`
	Pattern        string    `json:"pattern"`
	Language       string    `json:"language,omitempty"`
	PostsReturned  int       `json:"postsReturned"`
	MatchesTotal   int       `json:"matchesTotal"`
	SecondsElapsed float64   `json:"secondsElapsed"`
	Failed         bool      `json:"failed"`
	ErrorCode      string    `json:"errorCode,omitempty"`
	SearchedAt     time.Time `json:"searchedAt"`
}
