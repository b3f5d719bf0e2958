package history

import (
	"context"
	"log"

	"github.com/blogscout/search-api/internal/models"
)

const DefaultRecentLimit = 20

// Service implements the SearchHistoryService interface
type Service struct {
	repository   SearchHistoryRepository
	maxRetention int
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithMaxRetention caps how many records are kept; older ones are pruned
// after each write. Zero means unlimited.
func WithMaxRetention(max int) ServiceOption {
	return func(s *Service) {
		if max > 0 {
			s.maxRetention = max
		}
	}
}

// NewService creates a new search history service
func NewService(repository SearchHistoryRepository, opts ...ServiceOption) *Service {
	s := &Service{repository: repository}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ SearchHistoryService = (*Service)(nil)

func (s *Service) RecordSearch(ctx context.Context, record *models.SearchRecord) error {
	if err := s.repository.Record(ctx, record); err != nil {
		return err
	}

	if s.maxRetention > 0 {
		if err := s.repository.PruneToLimit(ctx, s.maxRetention); err != nil {
			// The write succeeded; a failed prune only delays cleanup
			log.Printf("[WARN] pruning search history: %v", err)
		}
	}

	return nil
}

func (s *Service) Recent(ctx context.Context, limit int) ([]models.SearchRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.repository.Recent(ctx, limit)
}
