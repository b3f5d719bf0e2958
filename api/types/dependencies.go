package types

import (
	"context"

	"github.com/blogscout/search-api/internal/database"
	"github.com/blogscout/search-api/internal/services/blogsearch"
	"github.com/blogscout/search-api/internal/services/history"
)

// BlogSearcher defines the interface handlers use to reach the upstream
// search API. Satisfied by *blogsearch.Client.
type BlogSearcher interface {
	Search(ctx context.Context, query *blogsearch.Query) (*blogsearch.QueryResult, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB             *database.DB
	SearchClient   BlogSearcher
	HistoryService history.SearchHistoryService
}
