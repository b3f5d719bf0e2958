package history

import (
	"context"
	"fmt"

	"github.com/blogscout/search-api/internal/models"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements SearchHistoryRepository interface
var _ SearchHistoryRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Record(ctx context.Context, record *models.SearchRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

func (r *Repository) Recent(ctx context.Context, limit int) ([]models.SearchRecord, error) {
	var records []models.SearchRecord
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("listing recent searches: %w", err)
	}
	return records, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SearchRecord{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting searches: %w", err)
	}
	return count, nil
}

// PruneToLimit hard-deletes all but the newest keep records.
func (r *Repository) PruneToLimit(ctx context.Context, keep int) error {
	if keep <= 0 {
		return nil
	}

	subQuery := r.db.WithContext(ctx).
		Model(&models.SearchRecord{}).
		Select("id").
		Order("created_at DESC").
		Limit(keep)

	if err := r.db.WithContext(ctx).
		Unscoped().
		Where("id NOT IN (?)", subQuery).
		Delete(&models.SearchRecord{}).Error; err != nil {
		return fmt.Errorf("pruning search history: %w", err)
	}
	return nil
}
