package network

import (
	"strings"

	"github.com/retailops/backend/internal/domain/shared"
)

// District is a top-level geographic grouping of stores
type District struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (District) TableName() string {
	return "districts"
}

// NewDistrict creates a new district
func NewDistrict(name string) (*District, error) {
	if err := validateDistrictName(name); err != nil {
		return nil, err
	}

	district := &District{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
	}
	district.AddDomainEvent(NewDistrictCreatedEvent(district))

	return district, nil
}

// Rename updates the district name
func (d *District) Rename(name string) error {
	if err := validateDistrictName(name); err != nil {
		return err
	}

	d.Name = strings.TrimSpace(name)
	d.Touch()
	d.AddDomainEvent(NewDistrictUpdatedEvent(d))

	return nil
}

func validateDistrictName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "District name cannot be empty")
	}
	if len(trimmed) > 100 {
		return shared.NewDomainError("INVALID_NAME", "District name cannot exceed 100 characters")
	}
	return nil
}
