package network

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/retailops/backend/internal/domain/network"
)

// DistrictResponse is the wire representation of a district
type DistrictResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateDistrictRequest carries the payload for POST /api/districts
type CreateDistrictRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateDistrictRequest carries the payload for PUT /api/districts/{id}
type UpdateDistrictRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// StoreResponse is the wire representation of a store
type StoreResponse struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	DistrictID *uuid.UUID `json:"districtId"`
	Address    string     `json:"address,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// CreateStoreRequest carries the payload for POST /api/stores
type CreateStoreRequest struct {
	Name       string     `json:"name" binding:"required,min=1,max=100"`
	DistrictID *uuid.UUID `json:"districtId"`
	Address    string     `json:"address" binding:"max=255"`
}

// UpdateStoreRequest carries the partial payload for PATCH /api/stores/{id}.
// Absent fields are left unchanged. districtId is raw JSON so an explicit
// null (clear the assignment) can be told apart from an absent key.
type UpdateStoreRequest struct {
	Name       *string         `json:"name" binding:"omitempty,min=1,max=100"`
	DistrictID json.RawMessage `json:"districtId"`
	Address    *string         `json:"address" binding:"omitempty,max=255"`
}

// DistrictChange decodes the districtId field. present is false when the
// key was absent; a present nil id means the assignment should be cleared.
func (r UpdateStoreRequest) DistrictChange() (present bool, id *uuid.UUID, err error) {
	if len(r.DistrictID) == 0 {
		return false, nil, nil
	}
	if string(r.DistrictID) == "null" {
		return true, nil, nil
	}
	var parsed uuid.UUID
	if err := json.Unmarshal(r.DistrictID, &parsed); err != nil {
		return false, nil, err
	}
	return true, &parsed, nil
}

// ToDistrictResponse maps a district entity to its response
func ToDistrictResponse(d *network.District) DistrictResponse {
	return DistrictResponse{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDistrictResponses maps a district collection to responses
func ToDistrictResponses(districts []network.District) []DistrictResponse {
	out := make([]DistrictResponse, 0, len(districts))
	for i := range districts {
		out = append(out, ToDistrictResponse(&districts[i]))
	}
	return out
}

// ToStoreResponse maps a store entity to its response
func ToStoreResponse(s *network.Store) StoreResponse {
	return StoreResponse{
		ID:         s.ID,
		Name:       s.Name,
		DistrictID: s.DistrictID,
		Address:    s.Address,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// ToStoreResponses maps a store collection to responses
func ToStoreResponses(stores []network.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for i := range stores {
		out = append(out, ToStoreResponse(&stores[i]))
	}
	return out
}
