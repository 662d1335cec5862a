package report

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/planning"
	"github.com/retailops/backend/internal/domain/production"
	"github.com/retailops/backend/internal/domain/report"
	"github.com/retailops/backend/internal/domain/shared"
)

// DebtPDFRenderer renders debt report rows into a PDF document.
type DebtPDFRenderer interface {
	RenderDebtReport(ctx context.Context, rows []report.DebtRow, generatedAt time.Time) ([]byte, error)
}

// Service computes dashboard reports. Every report loads full entity
// snapshots through the repositories and runs a pure aggregator on them;
// results are kept in the cache until a ledger write invalidates them.
type Service struct {
	movementRepo ledger.MovementRepository
	paymentRepo  ledger.StorePaymentRepository
	batchRepo    production.BatchRepository
	planRepo     planning.RevenuePlanRepository
	districtRepo network.DistrictRepository
	storeRepo    network.StoreRepository
	productRepo  catalog.ProductRepository

	cache    Cache
	cacheTTL time.Duration
	renderer DebtPDFRenderer
	logger   *zap.Logger
}

// NewService creates a new report Service. cache may be nil, in which
// case every request recomputes.
func NewService(
	movementRepo ledger.MovementRepository,
	paymentRepo ledger.StorePaymentRepository,
	batchRepo production.BatchRepository,
	planRepo planning.RevenuePlanRepository,
	districtRepo network.DistrictRepository,
	storeRepo network.StoreRepository,
	productRepo catalog.ProductRepository,
	cache Cache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		movementRepo: movementRepo,
		paymentRepo:  paymentRepo,
		batchRepo:    batchRepo,
		planRepo:     planRepo,
		districtRepo: districtRepo,
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// SetPDFRenderer wires the printable export. A nil renderer leaves the
// export endpoint disabled.
func (s *Service) SetPDFRenderer(renderer DebtPDFRenderer) {
	s.renderer = renderer
}

// Debts computes the per-store debt balance report.
func (s *Service) Debts(ctx context.Context, filter report.DebtFilter) ([]report.DebtRow, error) {
	key := cacheKey("debts", dayToken(filter.From), dayToken(filter.To), idToken(filter.DistrictID), idToken(filter.StoreID))
	return loadCached(ctx, s, key, func(ctx context.Context) ([]report.DebtRow, error) {
		movements, err := s.movementRepo.FindForPeriod(ctx, ledger.PeriodFilter{From: filter.From, To: filter.To})
		if err != nil {
			return nil, err
		}
		// Payments are fetched district-unfiltered: a payment without an
		// explicit district resolves through its store inside the
		// aggregator, which a repository predicate cannot replicate.
		payments, err := s.paymentRepo.FindForPeriod(ctx, ledger.PeriodFilter{From: filter.From, To: filter.To})
		if err != nil {
			return nil, err
		}
		districts, err := s.districtRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		stores, err := s.storeRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return report.DebtSummary(movements, payments, districts, stores, filter), nil
	})
}

// Production computes the day/product production reconciliation report.
func (s *Service) Production(ctx context.Context, filter report.ProductionFilter) ([]report.ProductionRow, error) {
	key := cacheKey("production", dayToken(filter.From), dayToken(filter.To))
	return loadCached(ctx, s, key, func(ctx context.Context) ([]report.ProductionRow, error) {
		batches, err := s.batchRepo.FindForPeriod(ctx, filter.From, filter.To)
		if err != nil {
			return nil, err
		}
		movements, err := s.movementRepo.FindForPeriod(ctx, ledger.PeriodFilter{From: filter.From, To: filter.To})
		if err != nil {
			return nil, err
		}
		products, err := s.productRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return report.ProductionSummary(batches, movements, products, filter), nil
	})
}

// Stock computes per-store stock balances as of a cutoff day.
func (s *Service) Stock(ctx context.Context, filter report.StockFilter) ([]report.StockRow, error) {
	key := cacheKey("stock", dayToken(filter.AsOf), idToken(filter.StoreID))
	return loadCached(ctx, s, key, func(ctx context.Context) ([]report.StockRow, error) {
		// Stock accumulates from the first movement, so only the upper
		// bound narrows the fetch.
		movements, err := s.movementRepo.FindForPeriod(ctx, ledger.PeriodFilter{To: filter.AsOf, StoreID: filter.StoreID})
		if err != nil {
			return nil, err
		}
		stores, err := s.storeRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		products, err := s.productRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return report.StockBalance(movements, stores, products, filter), nil
	})
}

// Finance computes the profit and loss report.
func (s *Service) Finance(ctx context.Context, filter report.FinanceFilter) (report.FinanceReport, error) {
	key := cacheKey("finance", "pnl", dayToken(filter.From), dayToken(filter.To), idToken(filter.DistrictID), idToken(filter.StoreID))
	return loadCached(ctx, s, key, func(ctx context.Context) (report.FinanceReport, error) {
		movements, districts, stores, err := s.loadFinanceInputs(ctx, filter)
		if err != nil {
			return report.FinanceReport{}, err
		}
		products, err := s.productRepo.FindAll(ctx)
		if err != nil {
			return report.FinanceReport{}, err
		}
		return report.FinanceSummary(movements, districts, stores, products, filter), nil
	})
}

// Revenue computes the lighter revenue-mode finance report.
func (s *Service) Revenue(ctx context.Context, filter report.FinanceFilter) (report.RevenueReport, error) {
	key := cacheKey("finance", "revenue", dayToken(filter.From), dayToken(filter.To), idToken(filter.DistrictID), idToken(filter.StoreID))
	return loadCached(ctx, s, key, func(ctx context.Context) (report.RevenueReport, error) {
		movements, districts, stores, err := s.loadFinanceInputs(ctx, filter)
		if err != nil {
			return report.RevenueReport{}, err
		}
		return report.RevenueSummary(movements, districts, stores, filter), nil
	})
}

func (s *Service) loadFinanceInputs(ctx context.Context, filter report.FinanceFilter) ([]ledger.Movement, []network.District, []network.Store, error) {
	movements, err := s.movementRepo.FindForPeriod(ctx, ledger.PeriodFilter{
		From:       filter.From,
		To:         filter.To,
		DistrictID: filter.DistrictID,
		StoreID:    filter.StoreID,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	districts, err := s.districtRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return movements, districts, stores, nil
}

// Forecast computes production recommendations per product.
func (s *Service) Forecast(ctx context.Context, opts report.ForecastOptions) ([]report.ForecastRow, error) {
	opts = opts.Normalized()
	key := cacheKey("forecast",
		report.DayKey(opts.AsOf),
		strconv.Itoa(opts.HorizonDays),
		strconv.Itoa(opts.PlanDays),
		strconv.Itoa(opts.SafetyDays),
		idToken(opts.StoreID),
	)
	return loadCached(ctx, s, key, func(ctx context.Context) ([]report.ForecastRow, error) {
		// Stock needs the full history up to the horizon end.
		to := report.DayEnd(opts.AsOf)
		movements, err := s.movementRepo.FindForPeriod(ctx, ledger.PeriodFilter{To: &to, StoreID: opts.StoreID})
		if err != nil {
			return nil, err
		}
		products, err := s.productRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return report.Forecast(movements, products, opts), nil
	})
}

// Anomalies computes the store and product anomaly alerts.
func (s *Service) Anomalies(ctx context.Context, filter report.AnomalyFilter) (report.AnomalyReport, error) {
	key := cacheKey("anomalies", dayToken(filter.From), dayToken(filter.To), idToken(filter.DistrictID), idToken(filter.StoreID))
	return loadCached(ctx, s, key, func(ctx context.Context) (report.AnomalyReport, error) {
		movements, err := s.movementRepo.FindForPeriod(ctx, ledger.PeriodFilter{
			From:       filter.From,
			To:         filter.To,
			DistrictID: filter.DistrictID,
			StoreID:    filter.StoreID,
		})
		if err != nil {
			return report.AnomalyReport{}, err
		}
		stores, err := s.storeRepo.FindAll(ctx)
		if err != nil {
			return report.AnomalyReport{}, err
		}
		products, err := s.productRepo.FindAll(ctx)
		if err != nil {
			return report.AnomalyReport{}, err
		}
		return report.Anomalies(movements, stores, products, filter), nil
	})
}

// PlanVsActual compares district revenue plans against recorded sales.
func (s *Service) PlanVsActual(ctx context.Context, filter report.PlanFilter) ([]report.PlanRow, error) {
	key := cacheKey("plan-vs-actual", dayToken(filter.From), dayToken(filter.To), idToken(filter.DistrictID))
	return loadCached(ctx, s, key, func(ctx context.Context) ([]report.PlanRow, error) {
		plans, err := s.planRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		// Actual revenue spans each plan's full period, which can reach
		// outside the filter window, so movements are fetched unbounded.
		movements, err := s.movementRepo.FindForPeriod(ctx, ledger.PeriodFilter{DistrictID: filter.DistrictID})
		if err != nil {
			return nil, err
		}
		districts, err := s.districtRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return report.PlanVsActual(plans, movements, districts, filter), nil
	})
}

// ExportDebtsPDF renders the debt report as a PDF document. Returns a
// PRINTING_DISABLED domain error when no renderer is wired.
func (s *Service) ExportDebtsPDF(ctx context.Context, filter report.DebtFilter) ([]byte, error) {
	if s.renderer == nil {
		return nil, shared.NewDomainError("PRINTING_DISABLED", "PDF export is not enabled on this server")
	}
	rows, err := s.Debts(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.renderer.RenderDebtReport(ctx, rows, time.Now().UTC())
}

// loadCached wraps compute with a cache-aside read and write. Cache
// failures are logged and degrade to a recompute; they never fail the
// request.
func loadCached[T any](ctx context.Context, s *Service, key string, compute func(context.Context) (T, error)) (T, error) {
	var zero T
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		case raw != nil:
			var out T
			if err := json.Unmarshal(raw, &out); err == nil {
				return out, nil
			}
			s.logger.Warn("report cache entry corrupt, recomputing", zap.String("key", key))
		}
	}

	out, err := compute(ctx)
	if err != nil {
		return zero, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
				s.logger.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return out, nil
}
