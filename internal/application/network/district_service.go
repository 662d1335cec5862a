package network

import (
	"context"

	"github.com/google/uuid"

	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/shared"
)

// DistrictService handles district lifecycle operations
type DistrictService struct {
	districtRepo   network.DistrictRepository
	storeRepo      network.StoreRepository
	eventPublisher shared.EventPublisher
}

// NewDistrictService creates a new DistrictService
func NewDistrictService(
	districtRepo network.DistrictRepository,
	storeRepo network.StoreRepository,
) *DistrictService {
	return &DistrictService{
		districtRepo: districtRepo,
		storeRepo:    storeRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *DistrictService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// List returns all districts
func (s *DistrictService) List(ctx context.Context) ([]DistrictResponse, error) {
	districts, err := s.districtRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToDistrictResponses(districts), nil
}

// Create creates a new district
func (s *DistrictService) Create(ctx context.Context, req CreateDistrictRequest) (*DistrictResponse, error) {
	district, err := network.NewDistrict(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.districtRepo.Save(ctx, district); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, district)

	response := ToDistrictResponse(district)
	return &response, nil
}

// Update renames a district
func (s *DistrictService) Update(ctx context.Context, districtID uuid.UUID, req UpdateDistrictRequest) (*DistrictResponse, error) {
	district, err := s.districtRepo.FindByID(ctx, districtID)
	if err != nil {
		return nil, err
	}

	if err := district.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.districtRepo.Save(ctx, district); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, district)

	response := ToDistrictResponse(district)
	return &response, nil
}

// Delete removes a district and detaches its stores. The two writes are
// sequential, not transactional: a failure after the detach leaves stores
// unassigned but the district present, which is safe to retry.
func (s *DistrictService) Delete(ctx context.Context, districtID uuid.UUID) error {
	district, err := s.districtRepo.FindByID(ctx, districtID)
	if err != nil {
		return err
	}

	unassigned, err := s.storeRepo.UnassignDistrict(ctx, districtID)
	if err != nil {
		return err
	}

	if err := s.districtRepo.Delete(ctx, districtID); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		event := network.NewDistrictDeletedEvent(district, int(unassigned))
		_ = s.eventPublisher.Publish(ctx, event)
	}
	return nil
}

func (s *DistrictService) publishEvents(ctx context.Context, district *network.District) {
	if s.eventPublisher == nil {
		return
	}
	events := district.DomainEvents()
	if len(events) == 0 {
		return
	}
	// Publish errors are logged by the event bus, not propagated.
	_ = s.eventPublisher.Publish(ctx, events...)
	district.ClearDomainEvents()
}
