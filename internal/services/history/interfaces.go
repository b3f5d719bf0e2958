package history

import (
	"context"

	"github.com/blogscout/search-api/internal/models"
)

// SearchHistoryRepository defines the interface for search log persistence
type SearchHistoryRepository interface {
	Record(ctx context.Context, record *models.SearchRecord) error
	Recent(ctx context.Context, limit int) ([]models.SearchRecord, error)
	Count(ctx context.Context) (int64, error)
	PruneToLimit(ctx context.Context, keep int) error
}

// SearchHistoryService defines the business logic interface for the search log
type SearchHistoryService interface {
	RecordSearch(ctx context.Context, record *models.SearchRecord) error
	Recent(ctx context.Context, limit int) ([]models.SearchRecord, error)
}
