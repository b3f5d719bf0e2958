package blogsearch

import (
	"net/url"
)

const (
	// apiTimeFormat is the timestamp layout the upstream parser expects.
	// A mismatch is rejected server-side, so it is fixed here.
	apiTimeFormat = "2006-01-02 15:04:05"

	searchPatternParam = "searchpattern"
	xmlOutputVersion   = "2"
)

// searchParams builds the query string parameters for an already validated
// query. It never fails; optional fields are omitted entirely when unset.
func searchParams(q *Query, apiKey string) url.Values {
	params := url.Values{}
	params.Set("key", apiKey)
	params.Set(searchPatternParam, q.Pattern)
	params.Set("xmloutputversion", xmlOutputVersion)

	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if !q.StartTime.IsZero() {
		params.Set("ts", q.StartTime.Format(apiTimeFormat))
	}
	if !q.EndTime.IsZero() {
		params.Set("tsTo", q.EndTime.Format(apiTimeFormat))
	}

	return params
}
