package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/shared"
)

type movementFixture struct {
	movements *MockMovementRepository
	batches   *MockBatchRepository
	districts *MockDistrictRepository
	stores    *MockStoreRepository
	products  *MockProductRepository
	district  *network.District
	store     *network.Store
	product   *catalog.Product
}

func newMovementFixture(t *testing.T) *movementFixture {
	t.Helper()

	district, err := network.NewDistrict("North")
	assert.NoError(t, err)
	store, err := network.NewStore("Main Street", &district.ID, "")
	assert.NoError(t, err)
	product, err := catalog.NewProduct("Bread", decimal.NewFromInt(40), decimal.NewFromInt(60))
	assert.NoError(t, err)

	return &movementFixture{
		movements: new(MockMovementRepository),
		batches:   new(MockBatchRepository),
		districts: new(MockDistrictRepository),
		stores:    new(MockStoreRepository),
		products:  new(MockProductRepository),
		district:  district,
		store:     store,
		product:   product,
	}
}

func (f *movementFixture) service(enforceCap bool) *MovementService {
	return NewMovementService(f.movements, f.batches, f.districts, f.stores, f.products, enforceCap)
}

func (f *movementFixture) expectReferencesResolve(ctx context.Context) {
	f.districts.On("FindByID", ctx, f.district.ID).Return(f.district, nil)
	f.products.On("FindByID", ctx, f.product.ID).Return(f.product, nil)
	f.stores.On("FindByID", ctx, f.store.ID).Return(f.store, nil)
}

func (f *movementFixture) saleRequest() RecordMovementRequest {
	price := decimal.NewFromInt(55)
	return RecordMovementRequest{
		Date:          "2024-07-15",
		DistrictID:    f.district.ID,
		StoreID:       &f.store.ID,
		ProductID:     f.product.ID,
		OperationType: "sale",
		PaymentType:   "credit",
		Quantity:      decimal.NewFromInt(10),
		UnitPrice:     &price,
	}
}

func TestMovementService_Record_Success(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(false)
	ctx := context.Background()

	f.expectReferencesResolve(ctx)
	f.movements.On("Save", ctx, mock.AnythingOfType("*ledger.Movement")).Return(nil)

	response, err := service.Record(ctx, f.saleRequest())

	assert.NoError(t, err)
	assert.Equal(t, "2024-07-15", response.Date)
	assert.Equal(t, "sale", response.OperationType)
	assert.Equal(t, "credit", response.PaymentType)
	assert.True(t, response.Amount.Equal(decimal.NewFromInt(550)))
	f.movements.AssertExpectations(t)
}

func TestMovementService_Record_DefaultsUnitPriceFromCatalog(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(false)
	ctx := context.Background()

	f.expectReferencesResolve(ctx)
	f.movements.On("Save", ctx, mock.AnythingOfType("*ledger.Movement")).Return(nil)

	req := f.saleRequest()
	req.UnitPrice = nil

	response, err := service.Record(ctx, req)

	assert.NoError(t, err)
	// Product sale price is 60.
	assert.True(t, response.UnitPrice.Equal(decimal.NewFromInt(60)))
	assert.True(t, response.Amount.Equal(decimal.NewFromInt(600)))
}

func TestMovementService_Record_BadDate(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(false)
	ctx := context.Background()

	req := f.saleRequest()
	req.Date = "15.07.2024"

	response, err := service.Record(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, response)
	f.movements.AssertNotCalled(t, "Save")
}

func TestMovementService_Record_UnknownOperationType(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(false)
	ctx := context.Background()

	req := f.saleRequest()
	req.OperationType = "restock"

	response, err := service.Record(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, response)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_OPERATION_TYPE", domainErr.Code)
}

func TestMovementService_Record_UnknownPaymentType(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(false)
	ctx := context.Background()

	req := f.saleRequest()
	req.PaymentType = "barter"

	response, err := service.Record(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, response)
}

func TestMovementService_Record_UnknownDistrict(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(false)
	ctx := context.Background()

	f.districts.On("FindByID", ctx, f.district.ID).Return(nil, shared.ErrNotFound)

	response, err := service.Record(ctx, f.saleRequest())

	assert.Error(t, err)
	assert.Nil(t, response)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_DISTRICT", domainErr.Code)
	f.movements.AssertNotCalled(t, "Save")
}

func TestMovementService_Record_UnknownProduct(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(false)
	ctx := context.Background()

	f.districts.On("FindByID", ctx, f.district.ID).Return(f.district, nil)
	f.products.On("FindByID", ctx, f.product.ID).Return(nil, shared.ErrNotFound)

	response, err := service.Record(ctx, f.saleRequest())

	assert.Error(t, err)
	assert.Nil(t, response)
	f.movements.AssertNotCalled(t, "Save")
}

func TestMovementService_Record_UnknownStore(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(false)
	ctx := context.Background()

	f.districts.On("FindByID", ctx, f.district.ID).Return(f.district, nil)
	f.products.On("FindByID", ctx, f.product.ID).Return(f.product, nil)
	f.stores.On("FindByID", ctx, f.store.ID).Return(nil, shared.ErrNotFound)

	response, err := service.Record(ctx, f.saleRequest())

	assert.Error(t, err)
	assert.Nil(t, response)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STORE", domainErr.Code)
}

func TestMovementService_Record_StoreOptional(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(false)
	ctx := context.Background()

	f.districts.On("FindByID", ctx, f.district.ID).Return(f.district, nil)
	f.products.On("FindByID", ctx, f.product.ID).Return(f.product, nil)
	f.movements.On("Save", ctx, mock.AnythingOfType("*ledger.Movement")).Return(nil)

	req := f.saleRequest()
	req.StoreID = nil
	req.PaymentType = "cash"

	response, err := service.Record(ctx, req)

	assert.NoError(t, err)
	assert.Nil(t, response.StoreID)
	f.stores.AssertNotCalled(t, "FindByID")
}

func TestMovementService_Record_CapBlocksOverconsumption(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(true)
	ctx := context.Background()
	day := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	f.expectReferencesResolve(ctx)
	f.batches.On("SumProducedOn", ctx, day, f.product.ID).Return(decimal.NewFromInt(100), nil)
	f.movements.On("SumConsumedOn", ctx, day, f.product.ID).Return(decimal.NewFromInt(95), nil)

	// 95 consumed + 10 requested > 100 produced.
	response, err := service.Record(ctx, f.saleRequest())

	assert.Error(t, err)
	assert.Nil(t, response)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PRODUCTION_CAP_EXCEEDED", domainErr.Code)
	f.movements.AssertNotCalled(t, "Save")
}

func TestMovementService_Record_CapAllowsExactFit(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(true)
	ctx := context.Background()
	day := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	f.expectReferencesResolve(ctx)
	f.batches.On("SumProducedOn", ctx, day, f.product.ID).Return(decimal.NewFromInt(100), nil)
	f.movements.On("SumConsumedOn", ctx, day, f.product.ID).Return(decimal.NewFromInt(90), nil)
	f.movements.On("Save", ctx, mock.AnythingOfType("*ledger.Movement")).Return(nil)

	// 90 consumed + 10 requested == 100 produced: allowed.
	response, err := service.Record(ctx, f.saleRequest())

	assert.NoError(t, err)
	assert.NotNil(t, response)
	f.movements.AssertExpectations(t)
}

func TestMovementService_Record_CapIgnoresNonConsumingOps(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(true)
	ctx := context.Background()

	f.expectReferencesResolve(ctx)
	f.movements.On("Save", ctx, mock.AnythingOfType("*ledger.Movement")).Return(nil)

	req := f.saleRequest()
	req.OperationType = "load"
	req.PaymentType = "cash"

	response, err := service.Record(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, response)
	f.batches.AssertNotCalled(t, "SumProducedOn")
}

func TestMovementService_Record_CapDisabled(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(false)
	ctx := context.Background()

	f.expectReferencesResolve(ctx)
	f.movements.On("Save", ctx, mock.AnythingOfType("*ledger.Movement")).Return(nil)

	response, err := service.Record(ctx, f.saleRequest())

	assert.NoError(t, err)
	assert.NotNil(t, response)
	f.batches.AssertNotCalled(t, "SumProducedOn")
	f.movements.AssertNotCalled(t, "SumConsumedOn")
}

func TestMovementService_Record_PublishesRecordedEvent(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(false)
	mockPublisher := new(MockEventPublisher)
	service.SetEventPublisher(mockPublisher)
	ctx := context.Background()

	f.expectReferencesResolve(ctx)
	f.movements.On("Save", ctx, mock.AnythingOfType("*ledger.Movement")).Return(nil)
	mockPublisher.On("Publish", ctx, mock.MatchedBy(func(events []shared.DomainEvent) bool {
		return len(events) == 1 && events[0].EventType() == ledger.EventTypeMovementRecorded
	})).Return(nil)

	_, err := service.Record(ctx, f.saleRequest())

	assert.NoError(t, err)
	mockPublisher.AssertExpectations(t)
}

func TestMovementService_List_PassesFilter(t *testing.T) {
	f := newMovementFixture(t)
	service := f.service(false)
	ctx := context.Background()

	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	filter := ledger.PeriodFilter{From: &from, StoreID: &f.store.ID}

	movement, err := ledger.NewMovement(
		time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC),
		f.district.ID, &f.store.ID, f.product.ID,
		ledger.OperationSale, ledger.PaymentCash,
		decimal.NewFromInt(3), decimal.NewFromInt(60), "",
	)
	assert.NoError(t, err)

	f.movements.On("FindForPeriod", ctx, filter).Return([]ledger.Movement{*movement}, nil)

	responses, err := service.List(ctx, filter)

	assert.NoError(t, err)
	assert.Len(t, responses, 1)
	assert.Equal(t, "2024-07-02", responses[0].Date)
	assert.True(t, responses[0].Amount.Equal(decimal.NewFromInt(180)))
}
