package network

import (
	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeDistrict = "District"
	AggregateTypeStore    = "Store"
)

// Event type constants
const (
	EventTypeDistrictCreated = "DistrictCreated"
	EventTypeDistrictUpdated = "DistrictUpdated"
	EventTypeDistrictDeleted = "DistrictDeleted"
	EventTypeStoreCreated    = "StoreCreated"
	EventTypeStoreUpdated    = "StoreUpdated"
	EventTypeStoreDeleted    = "StoreDeleted"
)

// DistrictCreatedEvent is published when a new district is created
type DistrictCreatedEvent struct {
	shared.BaseDomainEvent
	DistrictID uuid.UUID `json:"district_id"`
	Name       string    `json:"name"`
}

// NewDistrictCreatedEvent creates a new DistrictCreatedEvent
func NewDistrictCreatedEvent(district *District) *DistrictCreatedEvent {
	return &DistrictCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDistrictCreated, AggregateTypeDistrict, district.ID),
		DistrictID:      district.ID,
		Name:            district.Name,
	}
}

// DistrictUpdatedEvent is published when a district is renamed
type DistrictUpdatedEvent struct {
	shared.BaseDomainEvent
	DistrictID uuid.UUID `json:"district_id"`
	Name       string    `json:"name"`
}

// NewDistrictUpdatedEvent creates a new DistrictUpdatedEvent
func NewDistrictUpdatedEvent(district *District) *DistrictUpdatedEvent {
	return &DistrictUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDistrictUpdated, AggregateTypeDistrict, district.ID),
		DistrictID:      district.ID,
		Name:            district.Name,
	}
}

// DistrictDeletedEvent is published when a district is deleted.
// Stores of the district are unassigned, not deleted.
type DistrictDeletedEvent struct {
	shared.BaseDomainEvent
	DistrictID    uuid.UUID `json:"district_id"`
	Name          string    `json:"name"`
	UnassignedQty int       `json:"unassigned_stores"`
}

// NewDistrictDeletedEvent creates a new DistrictDeletedEvent
func NewDistrictDeletedEvent(district *District, unassignedStores int) *DistrictDeletedEvent {
	return &DistrictDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDistrictDeleted, AggregateTypeDistrict, district.ID),
		DistrictID:      district.ID,
		Name:            district.Name,
		UnassignedQty:   unassignedStores,
	}
}

// StoreCreatedEvent is published when a new store is created
type StoreCreatedEvent struct {
	shared.BaseDomainEvent
	StoreID    uuid.UUID  `json:"store_id"`
	Name       string     `json:"name"`
	DistrictID *uuid.UUID `json:"district_id,omitempty"`
}

// NewStoreCreatedEvent creates a new StoreCreatedEvent
func NewStoreCreatedEvent(store *Store) *StoreCreatedEvent {
	return &StoreCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStoreCreated, AggregateTypeStore, store.ID),
		StoreID:         store.ID,
		Name:            store.Name,
		DistrictID:      store.DistrictID,
	}
}

// StoreUpdatedEvent is published when a store is renamed, moved, or readdressed
type StoreUpdatedEvent struct {
	shared.BaseDomainEvent
	StoreID    uuid.UUID  `json:"store_id"`
	Name       string     `json:"name"`
	DistrictID *uuid.UUID `json:"district_id,omitempty"`
}

// NewStoreUpdatedEvent creates a new StoreUpdatedEvent
func NewStoreUpdatedEvent(store *Store) *StoreUpdatedEvent {
	return &StoreUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStoreUpdated, AggregateTypeStore, store.ID),
		StoreID:         store.ID,
		Name:            store.Name,
		DistrictID:      store.DistrictID,
	}
}

// StoreDeletedEvent is published when a store is deleted
type StoreDeletedEvent struct {
	shared.BaseDomainEvent
	StoreID uuid.UUID `json:"store_id"`
	Name    string    `json:"name"`
}

// NewStoreDeletedEvent creates a new StoreDeletedEvent
func NewStoreDeletedEvent(store *Store) *StoreDeletedEvent {
	return &StoreDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStoreDeleted, AggregateTypeStore, store.ID),
		StoreID:         store.ID,
		Name:            store.Name,
	}
}
