package report

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/planning"
	"github.com/retailops/backend/internal/domain/report"
	"github.com/retailops/backend/internal/domain/shared"
)

type serviceFixture struct {
	movements *MockMovementRepository
	payments  *MockStorePaymentRepository
	batches   *MockBatchRepository
	plans     *MockRevenuePlanRepository
	districts *MockDistrictRepository
	stores    *MockStoreRepository
	products  *MockProductRepository

	district *network.District
	store    *network.Store
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	district, err := network.NewDistrict("North")
	assert.NoError(t, err)
	store, err := network.NewStore("Corner Shop", &district.ID, "")
	assert.NoError(t, err)

	return &serviceFixture{
		movements: new(MockMovementRepository),
		payments:  new(MockStorePaymentRepository),
		batches:   new(MockBatchRepository),
		plans:     new(MockRevenuePlanRepository),
		districts: new(MockDistrictRepository),
		stores:    new(MockStoreRepository),
		products:  new(MockProductRepository),
		district:  district,
		store:     store,
	}
}

func (f *serviceFixture) service(cache Cache) *Service {
	return NewService(
		f.movements, f.payments, f.batches, f.plans,
		f.districts, f.stores, f.products,
		cache, time.Minute, nil,
	)
}

// creditSale builds a credit movement for the fixture's store so the debt
// report has something to sum.
func (f *serviceFixture) creditSale(t *testing.T, qty, price int64) ledger.Movement {
	t.Helper()
	m, err := ledger.NewMovement(
		time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC),
		f.district.ID,
		&f.store.ID,
		uuid.New(),
		ledger.OperationSale,
		ledger.PaymentCredit,
		decimal.NewFromInt(qty),
		decimal.NewFromInt(price),
		"",
	)
	assert.NoError(t, err)
	return *m
}

func (f *serviceFixture) payment(t *testing.T, amount int64) ledger.StorePayment {
	t.Helper()
	p, err := ledger.NewStorePayment(
		time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC),
		nil,
		f.store.ID,
		decimal.NewFromInt(amount),
		"cash",
		"",
	)
	assert.NoError(t, err)
	return *p
}

func (f *serviceFixture) expectDebtInputs(t *testing.T, ctx context.Context) {
	t.Helper()
	f.movements.On("FindForPeriod", ctx, mock.Anything).Return([]ledger.Movement{f.creditSale(t, 10, 50)}, nil)
	f.payments.On("FindForPeriod", ctx, mock.Anything).Return([]ledger.StorePayment{f.payment(t, 200)}, nil)
	f.districts.On("FindAll", ctx).Return([]network.District{*f.district}, nil)
	f.stores.On("FindAll", ctx).Return([]network.Store{*f.store}, nil)
}

func TestReportService_Debts_ComputesFromRepositories(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.expectDebtInputs(t, ctx)

	rows, err := f.service(nil).Debts(ctx, report.DebtFilter{})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, f.store.ID, rows[0].StoreID)
	assert.Equal(t, "Corner Shop", rows[0].StoreName)
	assert.True(t, rows[0].CreditAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, rows[0].Payments.Equal(decimal.NewFromInt(200)))
	assert.True(t, rows[0].Balance.Equal(decimal.NewFromInt(300)))
	f.movements.AssertExpectations(t)
}

func TestReportService_Debts_CacheMissStoresResult(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.expectDebtInputs(t, ctx)

	wantKey := "reports:debts:-:-:-:-"
	cache := new(MockCache)
	cache.On("Get", ctx, wantKey).Return(nil, nil)
	cache.On("Set", ctx, wantKey, mock.Anything, time.Minute).Return(nil)

	rows, err := f.service(cache).Debts(ctx, report.DebtFilter{})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	cache.AssertExpectations(t)
}

func TestReportService_Debts_CacheHitSkipsRepositories(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	cached := []report.DebtRow{{
		DistrictID:   f.district.ID,
		DistrictName: "North",
		StoreID:      f.store.ID,
		StoreName:    "Corner Shop",
		CreditAmount: decimal.NewFromInt(500),
		Payments:     decimal.NewFromInt(200),
		Balance:      decimal.NewFromInt(300),
	}}
	raw, err := json.Marshal(cached)
	assert.NoError(t, err)

	cache := new(MockCache)
	cache.On("Get", ctx, mock.Anything).Return(raw, nil)

	rows, err := f.service(cache).Debts(ctx, report.DebtFilter{})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.True(t, rows[0].Balance.Equal(decimal.NewFromInt(300)))
	f.movements.AssertNotCalled(t, "FindForPeriod", mock.Anything, mock.Anything)
	f.payments.AssertNotCalled(t, "FindForPeriod", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportService_Debts_CacheReadFailureRecomputes(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.expectDebtInputs(t, ctx)

	cache := new(MockCache)
	cache.On("Get", ctx, mock.Anything).Return(nil, assert.AnError)
	cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	rows, err := f.service(cache).Debts(ctx, report.DebtFilter{})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	f.movements.AssertExpectations(t)
}

func TestReportService_Debts_CacheWriteFailureStillReturnsRows(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.expectDebtInputs(t, ctx)

	cache := new(MockCache)
	cache.On("Get", ctx, mock.Anything).Return(nil, nil)
	cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	rows, err := f.service(cache).Debts(ctx, report.DebtFilter{})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReportService_Debts_CorruptCacheEntryRecomputes(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.expectDebtInputs(t, ctx)

	cache := new(MockCache)
	cache.On("Get", ctx, mock.Anything).Return([]byte("{not json"), nil)
	cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	rows, err := f.service(cache).Debts(ctx, report.DebtFilter{})

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	f.movements.AssertExpectations(t)
}

// Payments carry an optional district that falls back to the store's
// assignment, so the fetch must not pre-filter by district.
func TestReportService_Debts_FetchesPaymentsWithoutDistrictPredicate(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)

	f.movements.On("FindForPeriod", ctx, mock.Anything).Return([]ledger.Movement{}, nil)
	f.payments.On("FindForPeriod", ctx, mock.MatchedBy(func(filter ledger.PeriodFilter) bool {
		return filter.DistrictID == nil && filter.StoreID == nil &&
			filter.From != nil && filter.From.Equal(from) &&
			filter.To != nil && filter.To.Equal(to)
	})).Return([]ledger.StorePayment{}, nil)
	f.districts.On("FindAll", ctx).Return([]network.District{}, nil)
	f.stores.On("FindAll", ctx).Return([]network.Store{}, nil)

	_, err := f.service(nil).Debts(ctx, report.DebtFilter{From: &from, To: &to, DistrictID: &f.district.ID})

	assert.NoError(t, err)
	f.payments.AssertExpectations(t)
}

// Plan periods can start before and end after the requested window, so
// actuals are summed over an unbounded movement fetch.
func TestReportService_PlanVsActual_FetchesMovementsUnbounded(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)

	f.plans.On("FindAll", ctx).Return([]planning.RevenuePlan{}, nil)
	f.movements.On("FindForPeriod", ctx, mock.MatchedBy(func(filter ledger.PeriodFilter) bool {
		return filter.From == nil && filter.To == nil &&
			filter.DistrictID != nil && *filter.DistrictID == f.district.ID
	})).Return([]ledger.Movement{}, nil)
	f.districts.On("FindAll", ctx).Return([]network.District{}, nil)

	_, err := f.service(nil).PlanVsActual(ctx, report.PlanFilter{From: &from, To: &to, DistrictID: &f.district.ID})

	assert.NoError(t, err)
	f.movements.AssertExpectations(t)
}

// Stock accumulates from the first movement ever recorded, so only the
// upper bound is pushed down to the repository.
func TestReportService_Stock_FetchesFullHistoryUpToCutoff(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	asOf := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)

	f.movements.On("FindForPeriod", ctx, mock.MatchedBy(func(filter ledger.PeriodFilter) bool {
		return filter.From == nil && filter.To != nil && filter.To.Equal(asOf)
	})).Return([]ledger.Movement{}, nil)
	f.stores.On("FindAll", ctx).Return([]network.Store{}, nil)
	f.products.On("FindAll", ctx).Return([]catalog.Product{}, nil)

	_, err := f.service(nil).Stock(ctx, report.StockFilter{AsOf: &asOf})

	assert.NoError(t, err)
	f.movements.AssertExpectations(t)
}

// Equal forecast queries must share a cache key, so zero options are
// normalized before the key is built.
func TestReportService_Forecast_NormalizesOptionsIntoCacheKey(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	asOf := time.Date(2024, 7, 15, 10, 30, 0, 0, time.UTC)

	wantKey := "reports:forecast:2024-07-15:14:7:3:-"
	cached := []report.ForecastRow{}
	raw, err := json.Marshal(cached)
	assert.NoError(t, err)

	cache := new(MockCache)
	cache.On("Get", ctx, wantKey).Return(raw, nil)

	_, err = f.service(cache).Forecast(ctx, report.ForecastOptions{AsOf: asOf})

	assert.NoError(t, err)
	cache.AssertExpectations(t)
	f.movements.AssertNotCalled(t, "FindForPeriod", mock.Anything, mock.Anything)
}

func TestReportService_ExportDebtsPDF_DisabledWithoutRenderer(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.service(nil).ExportDebtsPDF(ctx, report.DebtFilter{})

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PRINTING_DISABLED", domainErr.Code)
	f.movements.AssertNotCalled(t, "FindForPeriod", mock.Anything, mock.Anything)
}

type stubDebtRenderer struct {
	rows []report.DebtRow
}

func (r *stubDebtRenderer) RenderDebtReport(_ context.Context, rows []report.DebtRow, _ time.Time) ([]byte, error) {
	r.rows = rows
	return []byte("%PDF-1.4 debts"), nil
}

func TestReportService_ExportDebtsPDF_RendersComputedRows(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.expectDebtInputs(t, ctx)

	renderer := &stubDebtRenderer{}
	service := f.service(nil)
	service.SetPDFRenderer(renderer)

	pdf, err := service.ExportDebtsPDF(ctx, report.DebtFilter{})

	assert.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 debts"), pdf)
	assert.Len(t, renderer.rows, 1)
	assert.True(t, renderer.rows[0].Balance.Equal(decimal.NewFromInt(300)))
}

func TestReportService_Finance_PropagatesRepositoryError(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	f.movements.On("FindForPeriod", ctx, mock.Anything).Return([]ledger.Movement{}, assert.AnError)

	_, err := f.service(nil).Finance(ctx, report.FinanceFilter{})

	assert.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
