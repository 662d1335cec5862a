package network

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/shared"
)

// MockDistrictRepository is a mock implementation of DistrictRepository
type MockDistrictRepository struct {
	mock.Mock
}

func (m *MockDistrictRepository) FindByID(ctx context.Context, id uuid.UUID) (*network.District, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*network.District), args.Error(1)
}

func (m *MockDistrictRepository) FindAll(ctx context.Context) ([]network.District, error) {
	args := m.Called(ctx)
	return args.Get(0).([]network.District), args.Error(1)
}

func (m *MockDistrictRepository) Save(ctx context.Context, district *network.District) error {
	args := m.Called(ctx, district)
	return args.Error(0)
}

func (m *MockDistrictRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDistrictRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockStoreRepository is a mock implementation of StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*network.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*network.Store), args.Error(1)
}

func (m *MockStoreRepository) FindAll(ctx context.Context) ([]network.Store, error) {
	args := m.Called(ctx)
	return args.Get(0).([]network.Store), args.Error(1)
}

func (m *MockStoreRepository) FindByDistrict(ctx context.Context, districtID uuid.UUID) ([]network.Store, error) {
	args := m.Called(ctx, districtID)
	return args.Get(0).([]network.Store), args.Error(1)
}

func (m *MockStoreRepository) UnassignDistrict(ctx context.Context, districtID uuid.UUID) (int64, error) {
	args := m.Called(ctx, districtID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStoreRepository) Save(ctx context.Context, store *network.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoreRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
