package models

import (
	"gorm.io/gorm"
)

// SearchRecord is one executed search, kept as an audit log of queries
// that were actually sent upstream. Results are never stored or replayed
// from here.
type SearchRecord struct {
	gorm.Model
	Pattern        string  `json:"pattern" gorm:"not null;index"`
	Language       string  `json:"language"`
	PostsReturned  int     `json:"posts_returned"`
	MatchesTotal   int     `json:"matches_total"`
	SecondsElapsed float64 `json:"seconds_elapsed"`
	Failed         bool    `json:"failed"`
	ErrorCode      string  `json:"error_code,omitempty"`
}
