package blogsearch

import (
	"strings"
	"time"

	apperrors "github.com/blogscout/search-api/pkg/errors"
)

// Query describes a single search against the upstream blog index.
// Construct it, pass it to Client.Search, done - the client never
// mutates it. Zero values on the optional fields mean "not sent".
type Query struct {
	// Pattern is the search expression. It may contain boolean operators
	// understood by the upstream engine and is required.
	Pattern string

	// Language restricts matches to a single language code (e.g. "en").
	Language string

	// StartTime and EndTime bound the publication window of matched posts.
	StartTime time.Time
	EndTime   time.Time
}

// Validate checks the query before any network activity
func (q *Query) Validate() error {
	if strings.TrimSpace(q.Pattern) == "" {
		return apperrors.New(apperrors.ErrCodeInvalidQuery, "search pattern is required")
	}
	return nil
}
