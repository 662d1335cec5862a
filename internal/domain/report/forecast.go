package report

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
)

// Forecast tuning. The clamp bounds and the flat boost for products that
// only just started selling are product decisions; changing them changes
// what the report recommends.
const (
	DefaultForecastHorizonDays = 14
	DefaultForecastPlanDays    = 7
	DefaultForecastSafetyDays  = 3

	trendClampMin  = 0.7
	trendClampMax  = 1.5
	trendFreshBump = 1.2

	lowCoverageDays = 2.0
)

// ForecastOptions parameterizes the demand heuristic. AsOf anchors the
// lookback window (its calendar day is the last day of the window).
// Zero-valued day counts fall back to the defaults above.
type ForecastOptions struct {
	AsOf        time.Time
	HorizonDays int
	PlanDays    int
	SafetyDays  int
	StoreID     *uuid.UUID
}

// Normalized fills zero fields with their defaults. AsOf snaps to the
// current UTC day so equal queries share a cache key.
func (o ForecastOptions) Normalized() ForecastOptions {
	if o.AsOf.IsZero() {
		o.AsOf = time.Now().UTC()
	}
	if o.HorizonDays <= 0 {
		o.HorizonDays = DefaultForecastHorizonDays
	}
	if o.PlanDays <= 0 {
		o.PlanDays = DefaultForecastPlanDays
	}
	if o.SafetyDays <= 0 {
		o.SafetyDays = DefaultForecastSafetyDays
	}
	return o
}

// ForecastRow is a production recommendation for one product.
// CoverageDays is +Inf when there is stock but no sales velocity.
type ForecastRow struct {
	ProductID            uuid.UUID `json:"productId"`
	ProductName          string    `json:"productName"`
	AvgDailySales        float64   `json:"avgDailySales"`
	TrendFactor          float64   `json:"trendFactor"`
	EffectiveDailyDemand float64   `json:"effectiveDailyDemand"`
	ForecastDemand       float64   `json:"forecastDemand"`
	SafetyStock          float64   `json:"safetyStock"`
	TargetStock          float64   `json:"targetStock"`
	CurrentStock         float64   `json:"currentStock"`
	ProductionNeed       float64   `json:"productionNeed"`
	CoverageDays         float64   `json:"coverageDays"`
	HasRecentSales       bool      `json:"hasRecentSales"`
}

// Forecast projects per-product demand from recent sales velocity and a
// coarse half-window trend, then recommends production to reach target
// stock. Products with comfortable coverage and no recent sales are
// suppressed so the report only surfaces actionable rows. This is a
// heuristic, not a statistical forecast: no seasonality, no confidence
// interval, and the trend clamp deliberately prevents runaway
// extrapolation. Rows come back sorted by production need descending.
func Forecast(
	movements []ledger.Movement,
	products []catalog.Product,
	opts ForecastOptions,
) []ForecastRow {
	opts = opts.Normalized()
	windowStart := DayStart(AddDays(opts.AsOf, -(opts.HorizonDays - 1)))
	windowEnd := DayEnd(opts.AsOf)

	type state struct {
		stock      float64
		salesByDay map[string]float64
	}
	states := make(map[uuid.UUID]*state, len(products))
	productState := func(id uuid.UUID) *state {
		s, ok := states[id]
		if !ok {
			s = &state{salesByDay: make(map[string]float64)}
			states[id] = s
		}
		return s
	}

	for i := range movements {
		m := &movements[i]
		if opts.StoreID != nil && (m.StoreID == nil || *m.StoreID != *opts.StoreID) {
			continue
		}
		if m.Date.After(windowEnd) {
			continue
		}
		s := productState(m.ProductID)
		s.stock += float64(m.OperationType.StockSign()) * m.Quantity.InexactFloat64()
		if m.OperationType == ledger.OperationSale && !m.Date.Before(windowStart) {
			s.salesByDay[DayKey(m.Date)] += m.Quantity.InexactFloat64()
		}
	}

	// Chronological day keys of the window, oldest first, so the two
	// trend halves line up with real time.
	days := make([]string, 0, opts.HorizonDays)
	for d := 0; d < opts.HorizonDays; d++ {
		days = append(days, DayKey(AddDays(windowStart, d)))
	}

	rows := make([]ForecastRow, 0, len(products))
	for i := range products {
		p := &products[i]
		s, ok := states[p.ID]
		if !ok {
			s = &state{salesByDay: map[string]float64{}}
		}

		var totalSales float64
		for _, qty := range s.salesByDay {
			totalSales += qty
		}
		avgDaily := totalSales / float64(opts.HorizonDays)

		half := opts.HorizonDays / 2
		var firstSum, secondSum float64
		for d, dayKey := range days {
			if d < half {
				firstSum += s.salesByDay[dayKey]
			} else {
				secondSum += s.salesByDay[dayKey]
			}
		}
		var firstAvg float64
		if half > 0 {
			firstAvg = firstSum / float64(half)
		}
		secondAvg := secondSum / float64(opts.HorizonDays-half)

		trend := 1.0
		switch {
		case firstAvg == 0 && secondAvg > 0:
			trend = trendFreshBump
		case firstAvg == 0 && secondAvg == 0:
			trend = 1.0
		default:
			trend = math.Min(trendClampMax, math.Max(trendClampMin, secondAvg/firstAvg))
		}

		effective := avgDaily * trend
		forecastDemand := math.Ceil(effective * float64(opts.PlanDays))
		safetyStock := math.Ceil(effective * float64(opts.SafetyDays))
		targetStock := forecastDemand + safetyStock
		productionNeed := math.Max(0, targetStock-s.stock)

		var coverage float64
		switch {
		case avgDaily > 0:
			coverage = s.stock / avgDaily
		case s.stock > 0:
			coverage = math.Inf(1)
		default:
			coverage = 0
		}

		hasRecentSales := totalSales > 0
		if productionNeed <= 0 && !(hasRecentSales && coverage < lowCoverageDays) {
			continue
		}

		rows = append(rows, ForecastRow{
			ProductID:            p.ID,
			ProductName:          p.Name,
			AvgDailySales:        avgDaily,
			TrendFactor:          trend,
			EffectiveDailyDemand: effective,
			ForecastDemand:       forecastDemand,
			SafetyStock:          safetyStock,
			TargetStock:          targetStock,
			CurrentStock:         s.stock,
			ProductionNeed:       productionNeed,
			CoverageDays:         coverage,
			HasRecentSales:       hasRecentSales,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].ProductionNeed != rows[j].ProductionNeed {
			return rows[i].ProductionNeed > rows[j].ProductionNeed
		}
		return rows[i].ProductName < rows[j].ProductName
	})
	return rows
}
