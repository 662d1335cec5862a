package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/planning"
	"github.com/retailops/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormRevenuePlanRepository implements RevenuePlanRepository using GORM
type GormRevenuePlanRepository struct {
	db *gorm.DB
}

// NewGormRevenuePlanRepository creates a new GormRevenuePlanRepository
func NewGormRevenuePlanRepository(db *gorm.DB) *GormRevenuePlanRepository {
	return &GormRevenuePlanRepository{db: db}
}

// FindByID finds a revenue plan by its ID
func (r *GormRevenuePlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.RevenuePlan, error) {
	var plan planning.RevenuePlan
	if err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// FindAll returns all revenue plans, most recent period first
func (r *GormRevenuePlanRepository) FindAll(ctx context.Context) ([]planning.RevenuePlan, error) {
	var plans []planning.RevenuePlan
	if err := r.db.WithContext(ctx).
		Order("period_start DESC, created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// Save creates or updates a revenue plan
func (r *GormRevenuePlanRepository) Save(ctx context.Context, plan *planning.RevenuePlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

// Delete deletes a revenue plan
func (r *GormRevenuePlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&planning.RevenuePlan{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all revenue plans
func (r *GormRevenuePlanRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&planning.RevenuePlan{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormRevenuePlanRepository implements RevenuePlanRepository
var _ planning.RevenuePlanRepository = (*GormRevenuePlanRepository)(nil)
