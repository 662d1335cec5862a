package network

import (
	"context"

	"github.com/google/uuid"

	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/shared"
)

// StoreService handles store lifecycle operations
type StoreService struct {
	storeRepo      network.StoreRepository
	districtRepo   network.DistrictRepository
	eventPublisher shared.EventPublisher
}

// NewStoreService creates a new StoreService
func NewStoreService(
	storeRepo network.StoreRepository,
	districtRepo network.DistrictRepository,
) *StoreService {
	return &StoreService{
		storeRepo:    storeRepo,
		districtRepo: districtRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *StoreService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// List returns all stores
func (s *StoreService) List(ctx context.Context) ([]StoreResponse, error) {
	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToStoreResponses(stores), nil
}

// Create creates a new store. A referenced district must exist.
func (s *StoreService) Create(ctx context.Context, req CreateStoreRequest) (*StoreResponse, error) {
	if req.DistrictID != nil {
		if _, err := s.districtRepo.FindByID(ctx, *req.DistrictID); err != nil {
			return nil, err
		}
	}

	store, err := network.NewStore(req.Name, req.DistrictID, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, store)

	response := ToStoreResponse(store)
	return &response, nil
}

// Update applies a partial update. Absent fields keep their value; a
// district change is validated against the district collection.
func (s *StoreService) Update(ctx context.Context, storeID uuid.UUID, req UpdateStoreRequest) (*StoreResponse, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := store.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	districtPresent, districtID, err := req.DistrictChange()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "districtId must be a UUID or null")
	}
	if districtPresent {
		if districtID != nil {
			if _, err := s.districtRepo.FindByID(ctx, *districtID); err != nil {
				return nil, err
			}
			store.AssignDistrict(*districtID)
		} else {
			store.UnassignDistrict()
		}
	}

	if req.Address != nil {
		store.UpdateAddress(*req.Address)
	}

	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, store)

	response := ToStoreResponse(store)
	return &response, nil
}

// Delete removes a store. Historical movements keep their store reference
// and surface under a placeholder name in reports.
func (s *StoreService) Delete(ctx context.Context, storeID uuid.UUID) error {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return err
	}

	if err := s.storeRepo.Delete(ctx, storeID); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, network.NewStoreDeletedEvent(store))
	}
	return nil
}

func (s *StoreService) publishEvents(ctx context.Context, store *network.Store) {
	if s.eventPublisher == nil {
		return
	}
	events := store.DomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	store.ClearDomainEvents()
}
