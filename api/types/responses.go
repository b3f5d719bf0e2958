package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse is the standard error payload
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`    // Machine-readable error code
	Details string `json:"details,omitempty"` // Additional error context
}

// PostSearchResponse for the search endpoint
type PostSearchResponse struct {
	BaseResponse
	Posts           []Post  `json:"posts"`
	Query           string  `json:"query"`
	Count           int     `json:"count"`           // Number of posts in this response
	Total           int     `json:"total,omitempty"` // Total matches upstream (if known)
	NumberOfAuthors int     `json:"numberOfAuthors,omitempty"`
	SecondsElapsed  float64 `json:"secondsElapsed,omitempty"`
}

// SearchHistoryResponse for the history endpoint
type SearchHistoryResponse struct {
	BaseResponse
	Searches []SearchRecord `json:"searches"`
	Count    int            `json:"count"`
}
