package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/production"
	"github.com/retailops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormBatchRepository implements BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// Save appends a production batch. Batches are immutable, so this is
// always an insert.
func (r *GormBatchRepository) Save(ctx context.Context, batch *production.Batch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

// FindByID finds a batch by its ID
func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.Batch, error) {
	var batch production.Batch
	if err := r.db.WithContext(ctx).First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindRecent returns the most recent batches, newest first, capped at limit
func (r *GormBatchRepository) FindRecent(ctx context.Context, limit int) ([]production.Batch, error) {
	var batches []production.Batch
	if err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// FindForPeriod returns all batches inside the inclusive day range in
// chronological order. Nil bounds mean unbounded.
func (r *GormBatchRepository) FindForPeriod(ctx context.Context, from, to *time.Time) ([]production.Batch, error) {
	query := r.db.WithContext(ctx)
	if from != nil {
		query = query.Where("date >= ?", dayStart(*from))
	}
	if to != nil {
		query = query.Where("date <= ?", dayEnd(*to))
	}

	var batches []production.Batch
	if err := query.
		Order("date ASC, created_at ASC").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// SumProducedOn returns the total produced quantity for a product on a
// calendar day, summed across batches
func (r *GormBatchRepository) SumProducedOn(ctx context.Context, date time.Time, productID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&production.Batch{}).
		Select("COALESCE(SUM(produced_qty), 0) as total").
		Where("product_id = ? AND date >= ? AND date <= ?",
			productID, dayStart(date), dayEnd(date)).
		Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Count counts all batches
func (r *GormBatchRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&production.Batch{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormBatchRepository implements BatchRepository
var _ production.BatchRepository = (*GormBatchRepository)(nil)
