package network

import (
	"context"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/shared"
)

// DistrictRepository manages District persistence
type DistrictRepository interface {
	shared.Repository[District]
}

// StoreRepository manages Store persistence
type StoreRepository interface {
	shared.Repository[Store]
	// FindByDistrict returns all stores assigned to a district
	FindByDistrict(ctx context.Context, districtID uuid.UUID) ([]Store, error)
	// UnassignDistrict clears the district reference on every store of the
	// district and returns the number of stores touched. Used by the
	// district delete cascade.
	UnassignDistrict(ctx context.Context, districtID uuid.UUID) (int64, error)
}
