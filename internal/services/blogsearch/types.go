package blogsearch

import (
	"encoding/xml"
	"strings"
	"time"
)

// ContentTypeBlog is the only content type surfaced to callers. The
// upstream index mixes other document kinds into the same stream.
const ContentTypeBlog = "blog"

// postTimeLayout parses timestamps like "2013-03-01 09:21:26Z".
const postTimeLayout = "2006-01-02 15:04:05Z07:00"

// Timestamp wraps time.Time to decode the upstream timestamp format.
type Timestamp struct {
	time.Time
}

// UnmarshalXML implements xml.Unmarshaler
func (t *Timestamp) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw string
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := time.Parse(postTimeLayout, raw)
	if err != nil {
		// Some feeds omit the zone suffix
		parsed, err = time.Parse(apiTimeFormat, raw)
		if err != nil {
			return err
		}
	}

	t.Time = parsed.UTC()
	return nil
}

// Post is one matched document from the upstream index.
type Post struct {
	ContentType  string    `xml:"contentType,attr"`
	URL          string    `xml:"url"`
	Title        string    `xml:"title"`
	Author       string    `xml:"author"`
	Summary      string    `xml:"summary"`
	LanguageCode string    `xml:"languageCode"`
	Published    Timestamp `xml:"published"`
	Indexed      Timestamp `xml:"indexed"`
	Authority    int       `xml:"authority"`
	Tags         []string  `xml:"tags>tag"`
	Links        []string  `xml:"links>link"`
}

// postStream is the wire shape of a successful search response.
type postStream struct {
	XMLName                 xml.Name `xml:"blogstream"`
	NumberOfAuthors         int      `xml:"numberOfAuthors,attr"`
	NumberOfMatchesReturned int      `xml:"numberOfMatchesReturned,attr"`
	NumberOfMatchesTotal    int      `xml:"numberOfMatchesTotal,attr"`
	SecondsElapsed          float64  `xml:"secondsElapsed,attr"`
	Posts                   []Post   `xml:"post"`
}

// operationResult is the wire shape the API uses to report failures
// in place of a post stream.
type operationResult struct {
	XMLName    xml.Name `xml:"operationResult"`
	ResultType string   `xml:"resultType,attr"`
	Result     string   `xml:",chardata"`
}

// parsePostStream decodes a success-shaped response body. Bodies that are
// not well-formed XML or carry a different root element fail to decode.
func parsePostStream(body []byte) (*postStream, error) {
	var stream postStream
	if err := xml.Unmarshal(body, &stream); err != nil {
		return nil, err
	}
	return &stream, nil
}

// parseOperationResult decodes an error-shaped response body.
func parseOperationResult(body []byte) (*operationResult, error) {
	var op operationResult
	if err := xml.Unmarshal(body, &op); err != nil {
		return nil, err
	}
	return &op, nil
}

// QueryResult is the outcome of a successful search.
type QueryResult struct {
	Posts                   []Post
	NumberOfAuthors         int
	NumberOfMatchesReturned int
	NumberOfMatchesTotal    int
	SecondsElapsed          float64
}

// newQueryResult converts a decoded post stream into a QueryResult,
// keeping only blog posts. Other content types share the schema but are
// out of scope and dropped without signal.
func newQueryResult(stream *postStream) *QueryResult {
	posts := make([]Post, 0, len(stream.Posts))
	for _, p := range stream.Posts {
		if p.ContentType == ContentTypeBlog {
			posts = append(posts, p)
		}
	}

	return &QueryResult{
		Posts:                   posts,
		NumberOfAuthors:         stream.NumberOfAuthors,
		NumberOfMatchesReturned: stream.NumberOfMatchesReturned,
		NumberOfMatchesTotal:    stream.NumberOfMatchesTotal,
		SecondsElapsed:          stream.SecondsElapsed,
	}
}
