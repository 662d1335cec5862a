package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormStoreRepository implements StoreRepository using GORM
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// FindByID finds a store by its ID
func (r *GormStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*network.Store, error) {
	var store network.Store
	if err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &store, nil
}

// FindAll returns all stores ordered by name
func (r *GormStoreRepository) FindAll(ctx context.Context) ([]network.Store, error) {
	var stores []network.Store
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// FindByDistrict returns all stores assigned to a district
func (r *GormStoreRepository) FindByDistrict(ctx context.Context, districtID uuid.UUID) ([]network.Store, error) {
	var stores []network.Store
	if err := r.db.WithContext(ctx).
		Where("district_id = ?", districtID).
		Order("name ASC").
		Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// UnassignDistrict clears the district reference on every store of the
// district and returns the number of stores touched
func (r *GormStoreRepository) UnassignDistrict(ctx context.Context, districtID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&network.Store{}).
		Where("district_id = ?", districtID).
		Update("district_id", nil)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Save creates or updates a store
func (r *GormStoreRepository) Save(ctx context.Context, store *network.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

// Delete deletes a store
func (r *GormStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&network.Store{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts all stores
func (r *GormStoreRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&network.Store{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormStoreRepository implements StoreRepository
var _ network.StoreRepository = (*GormStoreRepository)(nil)
