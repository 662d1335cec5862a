package network

import (
	"strings"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/shared"
)

// Store is a retail outlet. It belongs to at most one district and may be
// unassigned; historical movements keep their store reference even after
// the store is deleted.
type Store struct {
	shared.BaseAggregateRoot
	Name       string     `gorm:"type:varchar(100);not null"`
	DistrictID *uuid.UUID `gorm:"type:uuid;index"`
	Address    string     `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a new store, optionally assigned to a district
func NewStore(name string, districtID *uuid.UUID, address string) (*Store, error) {
	if err := validateStoreName(name); err != nil {
		return nil, err
	}

	store := &Store{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		DistrictID:        districtID,
		Address:           strings.TrimSpace(address),
	}
	store.AddDomainEvent(NewStoreCreatedEvent(store))

	return store, nil
}

// Rename updates the store name
func (s *Store) Rename(name string) error {
	if err := validateStoreName(name); err != nil {
		return err
	}

	s.Name = strings.TrimSpace(name)
	s.Touch()
	s.AddDomainEvent(NewStoreUpdatedEvent(s))

	return nil
}

// AssignDistrict moves the store into a district
func (s *Store) AssignDistrict(districtID uuid.UUID) {
	s.DistrictID = &districtID
	s.Touch()
	s.AddDomainEvent(NewStoreUpdatedEvent(s))
}

// UnassignDistrict detaches the store from its district
func (s *Store) UnassignDistrict() {
	s.DistrictID = nil
	s.Touch()
	s.AddDomainEvent(NewStoreUpdatedEvent(s))
}

// UpdateAddress updates the store address
func (s *Store) UpdateAddress(address string) {
	s.Address = strings.TrimSpace(address)
	s.Touch()
	s.AddDomainEvent(NewStoreUpdatedEvent(s))
}

func validateStoreName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Store name cannot be empty")
	}
	if len(trimmed) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Store name cannot exceed 100 characters")
	}
	return nil
}
