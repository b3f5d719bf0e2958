package types

// SearchRequest represents a blog search request
type SearchRequest struct {
	Query     string `json:"query" binding:"required" example:"spotify"`
	Language  string `json:"language,omitempty" example:"en"`                       // ISO language code filter
	StartTime string `json:"startTime,omitempty" example:"2013-02-01T00:00:00Z"`    // RFC 3339; lower bound on publication time
	EndTime   string `json:"endTime,omitempty" example:"2013-03-01T00:00:00Z"`      // RFC 3339; upper bound on publication time
}
