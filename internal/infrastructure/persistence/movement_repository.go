package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormMovementRepository implements MovementRepository using GORM
type GormMovementRepository struct {
	db *gorm.DB
}

// NewGormMovementRepository creates a new GormMovementRepository
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

// Save appends a movement to the ledger. Movements are immutable, so
// this is always an insert.
func (r *GormMovementRepository) Save(ctx context.Context, movement *ledger.Movement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByID finds a movement by its ID
func (r *GormMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Movement, error) {
	var movement ledger.Movement
	if err := r.db.WithContext(ctx).First(&movement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &movement, nil
}

// FindForPeriod returns all movements matching the filter in
// chronological order
func (r *GormMovementRepository) FindForPeriod(ctx context.Context, filter ledger.PeriodFilter) ([]ledger.Movement, error) {
	var movements []ledger.Movement
	if err := r.applyPeriodFilter(r.db.WithContext(ctx), filter).
		Order("date ASC, created_at ASC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// SumConsumedOn returns the total quantity of production-consuming
// operations for a product on a calendar day
func (r *GormMovementRepository) SumConsumedOn(ctx context.Context, date time.Time, productID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&ledger.Movement{}).
		Select("COALESCE(SUM(quantity), 0) as total").
		Where("product_id = ? AND date >= ? AND date <= ? AND operation_type IN ?",
			productID, dayStart(date), dayEnd(date), ledger.ConsumingOperationTypes()).
		Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// Count counts all movements
func (r *GormMovementRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.Movement{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyPeriodFilter narrows a movement query to the filter's day range
// and optional district/store. Nil fields leave that predicate off.
func (r *GormMovementRepository) applyPeriodFilter(query *gorm.DB, filter ledger.PeriodFilter) *gorm.DB {
	if filter.From != nil {
		query = query.Where("date >= ?", dayStart(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", dayEnd(*filter.To))
	}
	if filter.DistrictID != nil {
		query = query.Where("district_id = ?", *filter.DistrictID)
	}
	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}
	return query
}

// Ensure GormMovementRepository implements MovementRepository
var _ ledger.MovementRepository = (*GormMovementRepository)(nil)
