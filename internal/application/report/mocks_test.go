package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/planning"
	"github.com/retailops/backend/internal/domain/production"
	"github.com/retailops/backend/internal/domain/report"
)

// MockMovementRepository is a mock implementation of MovementRepository
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Save(ctx context.Context, movement *ledger.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.Movement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindForPeriod(ctx context.Context, filter ledger.PeriodFilter) ([]ledger.Movement, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.Movement), args.Error(1)
}

func (m *MockMovementRepository) SumConsumedOn(ctx context.Context, date time.Time, productID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, date, productID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockMovementRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockStorePaymentRepository is a mock implementation of StorePaymentRepository
type MockStorePaymentRepository struct {
	mock.Mock
}

func (m *MockStorePaymentRepository) Save(ctx context.Context, payment *ledger.StorePayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockStorePaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.StorePayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.StorePayment), args.Error(1)
}

func (m *MockStorePaymentRepository) FindForPeriod(ctx context.Context, filter ledger.PeriodFilter) ([]ledger.StorePayment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ledger.StorePayment), args.Error(1)
}

func (m *MockStorePaymentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockBatchRepository is a mock implementation of BatchRepository
type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) Save(ctx context.Context, batch *production.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*production.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindRecent(ctx context.Context, limit int) ([]production.Batch, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]production.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindForPeriod(ctx context.Context, from, to *time.Time) ([]production.Batch, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]production.Batch), args.Error(1)
}

func (m *MockBatchRepository) SumProducedOn(ctx context.Context, date time.Time, productID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, date, productID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBatchRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRevenuePlanRepository is a mock implementation of RevenuePlanRepository
type MockRevenuePlanRepository struct {
	mock.Mock
}

func (m *MockRevenuePlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.RevenuePlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.RevenuePlan), args.Error(1)
}

func (m *MockRevenuePlanRepository) FindAll(ctx context.Context) ([]planning.RevenuePlan, error) {
	args := m.Called(ctx)
	return args.Get(0).([]planning.RevenuePlan), args.Error(1)
}

func (m *MockRevenuePlanRepository) Save(ctx context.Context, plan *planning.RevenuePlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockRevenuePlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRevenuePlanRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

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

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// MockCache is a mock implementation of Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

// MockSnapshotRepository is a mock implementation of SnapshotRepository
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Upsert(ctx context.Context, snapshot *report.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepository) FindByKeyAndDay(ctx context.Context, reportKey string, day time.Time) (*report.Snapshot, error) {
	args := m.Called(ctx, reportKey, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Snapshot), args.Error(1)
}

func (m *MockSnapshotRepository) FindLatest(ctx context.Context, reportKey string) (*report.Snapshot, error) {
	args := m.Called(ctx, reportKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Snapshot), args.Error(1)
}
