package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/planning"
	"github.com/retailops/backend/internal/domain/production"
)

// MockDistrictRepository implements network.DistrictRepository for testing
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

// MockStoreRepository implements network.StoreRepository for testing
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

// MockProductRepository implements catalog.ProductRepository for testing
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

// MockMovementRepository implements ledger.MovementRepository for testing
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

// MockStorePaymentRepository implements ledger.StorePaymentRepository for testing
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

// MockBatchRepository implements production.BatchRepository for testing
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

// MockRevenuePlanRepository implements planning.RevenuePlanRepository for testing
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

// Test setup helpers

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
