package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormDistrictRepository implements DistrictRepository using GORM
type GormDistrictRepository struct {
	db *gorm.DB
}

// NewGormDistrictRepository creates a new GormDistrictRepository
func NewGormDistrictRepository(db *gorm.DB) *GormDistrictRepository {
	return &GormDistrictRepository{db: db}
}

// FindByID finds a district by its ID
func (r *GormDistrictRepository) FindByID(ctx context.Context, id uuid.UUID) (*network.District, error) {
	var district network.District
	if err := r.db.WithContext(ctx).First(&district, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &district, nil
}

// FindAll returns all districts ordered by name
func (r *GormDistrictRepository) FindAll(ctx context.Context) ([]network.District, error) {
	var districts []network.District
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&districts).Error; err != nil {
		return nil, err
	}
	return districts, nil
}

// Save creates or updates a district
func (r *GormDistrictRepository) Save(ctx context.Context, district *network.District) error {
	return r.db.WithContext(ctx).Save(district).Error
}

// Delete deletes a district
func (r *GormDistrictRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&network.District{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all districts
func (r *GormDistrictRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&network.District{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormDistrictRepository implements DistrictRepository
var _ network.DistrictRepository = (*GormDistrictRepository)(nil)
