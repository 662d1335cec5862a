package report

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
)

// Anomaly thresholds, in percent of the sales movement count. A breach
// requires strictly exceeding the threshold: a store at exactly 10%
// returns is not flagged.
const (
	ReturnRateThreshold   = 10
	BonusRateThreshold    = 5
	ExchangeRateThreshold = 10

	ProductIssueRateThreshold = 15
	ProductSalesNoiseFloor    = 5
)

// Anomaly metric labels.
const (
	MetricReturns   = "returns"
	MetricBonuses   = "bonuses"
	MetricExchanges = "exchanges"
)

// AnomalyFilter bounds anomaly detection. Nil fields leave the dimension
// unfiltered.
type AnomalyFilter struct {
	From       *time.Time
	To         *time.Time
	DistrictID *uuid.UUID
	StoreID    *uuid.UUID
}

// StoreAlert flags one breached metric at one store. Percent is rounded to
// the nearest integer for display; the breach check runs on the raw rate.
type StoreAlert struct {
	StoreID    uuid.UUID `json:"storeId"`
	StoreName  string    `json:"storeName"`
	Metric     string    `json:"metric"`
	Percent    int       `json:"percent"`
	Threshold  int       `json:"threshold"`
	SalesCount int       `json:"salesCount"`
	Count      int       `json:"count"`
}

// ProductAlert flags a store and product pair whose combined return and
// exchange rate signals a quality problem.
type ProductAlert struct {
	StoreID        uuid.UUID `json:"storeId"`
	StoreName      string    `json:"storeName"`
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName"`
	SalesCount     int       `json:"salesCount"`
	ReturnsCount   int       `json:"returnsCount"`
	ExchangesCount int       `json:"exchangesCount"`
	Rate           float64   `json:"rate"`
}

// AnomalyReport bundles both alert levels.
type AnomalyReport struct {
	Stores   []StoreAlert   `json:"stores"`
	Products []ProductAlert `json:"products"`
}

type anomalyCounts struct {
	sales     int
	returns   int
	bonuses   int
	exchanges int
}

func (c *anomalyCounts) observe(op ledger.OperationType) {
	switch op {
	case ledger.OperationSale:
		c.sales++
	case ledger.OperationReturn:
		c.returns++
	case ledger.OperationBonus:
		c.bonuses++
	case ledger.OperationExchange:
		c.exchanges++
	}
}

// Anomalies flags stores whose return, bonus or exchange movement counts
// are out of proportion to their sales, and store-product pairs whose
// combined return and exchange rate exceeds the quality threshold. Rates
// are movement counts relative to the sales movement count; stores without
// sales are never flagged, and product pairs below the noise floor are
// ignored. Product alerts come back sorted by rate descending.
func Anomalies(
	movements []ledger.Movement,
	stores []network.Store,
	products []catalog.Product,
	filter AnomalyFilter,
) AnomalyReport {
	storeNames := make(map[uuid.UUID]string, len(stores))
	for i := range stores {
		storeNames[stores[i].ID] = stores[i].Name
	}
	productNames := productNameIndex(products)

	type pairKey struct {
		store   uuid.UUID
		product uuid.UUID
	}
	storeCounts := make(map[uuid.UUID]*anomalyCounts)
	pairCounts := make(map[pairKey]*anomalyCounts)

	for i := range movements {
		m := &movements[i]
		if m.StoreID == nil {
			continue
		}
		if !InRange(m.Date, filter.From, filter.To) {
			continue
		}
		if filter.DistrictID != nil && m.DistrictID != *filter.DistrictID {
			continue
		}
		if filter.StoreID != nil && *m.StoreID != *filter.StoreID {
			continue
		}
		if _, known := storeNames[*m.StoreID]; !known {
			continue
		}

		sc, ok := storeCounts[*m.StoreID]
		if !ok {
			sc = &anomalyCounts{}
			storeCounts[*m.StoreID] = sc
		}
		sc.observe(m.OperationType)

		if _, known := productNames[m.ProductID]; !known {
			continue
		}
		pk := pairKey{store: *m.StoreID, product: m.ProductID}
		pc, ok := pairCounts[pk]
		if !ok {
			pc = &anomalyCounts{}
			pairCounts[pk] = pc
		}
		pc.observe(m.OperationType)
	}

	report := AnomalyReport{Stores: []StoreAlert{}, Products: []ProductAlert{}}

	for storeID, c := range storeCounts {
		if c.sales == 0 {
			continue
		}
		checks := []struct {
			metric    string
			count     int
			threshold int
		}{
			{MetricReturns, c.returns, ReturnRateThreshold},
			{MetricBonuses, c.bonuses, BonusRateThreshold},
			{MetricExchanges, c.exchanges, ExchangeRateThreshold},
		}
		for _, chk := range checks {
			rate := float64(chk.count) / float64(c.sales) * 100
			if rate <= float64(chk.threshold) {
				continue
			}
			report.Stores = append(report.Stores, StoreAlert{
				StoreID:    storeID,
				StoreName:  storeNames[storeID],
				Metric:     chk.metric,
				Percent:    int(math.Round(rate)),
				Threshold:  chk.threshold,
				SalesCount: c.sales,
				Count:      chk.count,
			})
		}
	}
	sort.SliceStable(report.Stores, func(i, j int) bool {
		a, b := report.Stores[i], report.Stores[j]
		if a.Percent != b.Percent {
			return a.Percent > b.Percent
		}
		if a.StoreName != b.StoreName {
			return a.StoreName < b.StoreName
		}
		return a.Metric < b.Metric
	})

	for pk, c := range pairCounts {
		if c.sales < ProductSalesNoiseFloor {
			continue
		}
		rate := float64(c.returns+c.exchanges) / float64(c.sales) * 100
		if rate <= ProductIssueRateThreshold {
			continue
		}
		report.Products = append(report.Products, ProductAlert{
			StoreID:        pk.store,
			StoreName:      storeNames[pk.store],
			ProductID:      pk.product,
			ProductName:    productNames[pk.product],
			SalesCount:     c.sales,
			ReturnsCount:   c.returns,
			ExchangesCount: c.exchanges,
			Rate:           rate,
		})
	}
	sort.SliceStable(report.Products, func(i, j int) bool {
		a, b := report.Products[i], report.Products[j]
		if a.Rate != b.Rate {
			return a.Rate > b.Rate
		}
		if a.StoreName != b.StoreName {
			return a.StoreName < b.StoreName
		}
		return a.ProductName < b.ProductName
	})
	return report
}
