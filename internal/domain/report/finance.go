package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
)

// FinanceFilter bounds the financial summary. Nil fields leave the
// dimension unfiltered.
type FinanceFilter struct {
	From       *time.Time
	To         *time.Time
	DistrictID *uuid.UUID
	StoreID    *uuid.UUID
}

// OperationTally accumulates quantity and movement count for one
// operation type inside a rollup bucket.
type OperationTally struct {
	Quantity decimal.Decimal `json:"quantity"`
	Count    int             `json:"count"`
}

// DistrictFinanceRow is the P&L position of one district.
type DistrictFinanceRow struct {
	DistrictID      uuid.UUID                                `json:"districtId"`
	DistrictName    string                                   `json:"districtName"`
	Operations      map[ledger.OperationType]*OperationTally `json:"operations"`
	TotalRevenue    decimal.Decimal                          `json:"totalRevenue"`
	TotalCost       decimal.Decimal                          `json:"totalCost"`
	TotalProfit     decimal.Decimal                          `json:"totalProfit"`
	UniqueSalesDays int                                      `json:"uniqueSalesDays"`
}

// StoreFinanceRow is the P&L position of one store. StoreID is nil for the
// synthetic bucket that absorbs movements booked against a district with
// no store.
type StoreFinanceRow struct {
	StoreID         *uuid.UUID                               `json:"storeId"`
	StoreName       string                                   `json:"storeName"`
	DistrictID      uuid.UUID                                `json:"districtId"`
	DistrictName    string                                   `json:"districtName"`
	Operations      map[ledger.OperationType]*OperationTally `json:"operations"`
	TotalRevenue    decimal.Decimal                          `json:"totalRevenue"`
	TotalCost       decimal.Decimal                          `json:"totalCost"`
	TotalProfit     decimal.Decimal                          `json:"totalProfit"`
	UniqueSalesDays int                                      `json:"uniqueSalesDays"`
}

// FinanceReport bundles both rollup levels of the P&L summary.
type FinanceReport struct {
	Districts []DistrictFinanceRow `json:"districts"`
	Stores    []StoreFinanceRow    `json:"stores"`
}

// financeEffect is the P&L contribution of a single movement.
type financeEffect struct {
	amount decimal.Decimal
	cost   decimal.Decimal
}

// financeOperationEffect prices a movement for the P&L summary. Sales book
// full revenue and cost, returns reverse both, and giveaway types (bonus,
// exchange, write-off) book zero revenue against full cost. Pure stock
// moves carry no P&L effect at all.
func financeOperationEffect(m *ledger.Movement, costPrice decimal.Decimal) (financeEffect, bool) {
	base := m.Amount()
	cost := m.Quantity.Mul(costPrice)
	switch m.OperationType {
	case ledger.OperationSale:
		return financeEffect{amount: base, cost: cost}, true
	case ledger.OperationReturn:
		return financeEffect{amount: base.Neg(), cost: cost.Neg()}, true
	case ledger.OperationExchange, ledger.OperationBonus, ledger.OperationWriteoff:
		return financeEffect{amount: decimal.Zero, cost: cost}, true
	default:
		return financeEffect{}, false
	}
}

// FinanceSummary computes the profit-and-loss rollup at district and store
// granularity. Profit = revenue - cost per bucket; bonuses, exchanges and
// write-offs therefore show up as pure cost. Movements whose product no
// longer resolves are skipped because their cost cannot be priced.
// Both rollups come back sorted by total profit descending.
func FinanceSummary(
	movements []ledger.Movement,
	districts []network.District,
	stores []network.Store,
	products []catalog.Product,
	filter FinanceFilter,
) FinanceReport {
	districtNames := districtNameIndex(districts)
	storeNames := make(map[uuid.UUID]string, len(stores))
	for i := range stores {
		storeNames[stores[i].ID] = stores[i].Name
	}
	costPrices := make(map[uuid.UUID]decimal.Decimal, len(products))
	for i := range products {
		costPrices[products[i].ID] = products[i].CostPrice
	}

	districtRows := make(map[uuid.UUID]*DistrictFinanceRow)
	type storeKey struct {
		district uuid.UUID
		store    uuid.UUID // uuid.Nil marks the synthetic no-store bucket
	}
	storeRows := make(map[storeKey]*StoreFinanceRow)
	districtSalesDays := make(map[uuid.UUID]map[string]struct{})
	storeSalesDays := make(map[storeKey]map[string]struct{})

	for i := range movements {
		m := &movements[i]
		if !InRange(m.Date, filter.From, filter.To) {
			continue
		}
		if filter.DistrictID != nil && m.DistrictID != *filter.DistrictID {
			continue
		}
		if filter.StoreID != nil && (m.StoreID == nil || *m.StoreID != *filter.StoreID) {
			continue
		}
		costPrice, ok := costPrices[m.ProductID]
		if !ok {
			continue
		}
		effect, ok := financeOperationEffect(m, costPrice)
		if !ok {
			continue
		}

		districtName := nameOrDefault(districtNames[m.DistrictID], UnknownDistrictName)

		dr, ok := districtRows[m.DistrictID]
		if !ok {
			dr = &DistrictFinanceRow{
				DistrictID:   m.DistrictID,
				DistrictName: districtName,
				Operations:   make(map[ledger.OperationType]*OperationTally),
				TotalRevenue: decimal.Zero,
				TotalCost:    decimal.Zero,
				TotalProfit:  decimal.Zero,
			}
			districtRows[m.DistrictID] = dr
			districtSalesDays[m.DistrictID] = make(map[string]struct{})
		}
		applyFinanceEffect(dr.Operations, &dr.TotalRevenue, &dr.TotalCost, m, effect)
		if m.OperationType == ledger.OperationSale {
			districtSalesDays[m.DistrictID][DayKey(m.Date)] = struct{}{}
		}

		sk := storeKey{district: m.DistrictID}
		storeName := districtName + " (no store)"
		if m.StoreID != nil {
			sk.store = *m.StoreID
			storeName = nameOrDefault(storeNames[*m.StoreID], UnknownStoreName)
		}
		sr, ok := storeRows[sk]
		if !ok {
			sr = &StoreFinanceRow{
				StoreName:    storeName,
				DistrictID:   m.DistrictID,
				DistrictName: districtName,
				Operations:   make(map[ledger.OperationType]*OperationTally),
				TotalRevenue: decimal.Zero,
				TotalCost:    decimal.Zero,
				TotalProfit:  decimal.Zero,
			}
			if m.StoreID != nil {
				id := *m.StoreID
				sr.StoreID = &id
			}
			storeRows[sk] = sr
			storeSalesDays[sk] = make(map[string]struct{})
		}
		applyFinanceEffect(sr.Operations, &sr.TotalRevenue, &sr.TotalCost, m, effect)
		if m.OperationType == ledger.OperationSale {
			storeSalesDays[sk][DayKey(m.Date)] = struct{}{}
		}
	}

	report := FinanceReport{
		Districts: make([]DistrictFinanceRow, 0, len(districtRows)),
		Stores:    make([]StoreFinanceRow, 0, len(storeRows)),
	}
	for id, r := range districtRows {
		r.TotalProfit = r.TotalRevenue.Sub(r.TotalCost)
		r.UniqueSalesDays = len(districtSalesDays[id])
		report.Districts = append(report.Districts, *r)
	}
	for k, r := range storeRows {
		r.TotalProfit = r.TotalRevenue.Sub(r.TotalCost)
		r.UniqueSalesDays = len(storeSalesDays[k])
		report.Stores = append(report.Stores, *r)
	}
	sort.SliceStable(report.Districts, func(i, j int) bool {
		a, b := report.Districts[i], report.Districts[j]
		if !a.TotalProfit.Equal(b.TotalProfit) {
			return a.TotalProfit.GreaterThan(b.TotalProfit)
		}
		return a.DistrictName < b.DistrictName
	})
	sort.SliceStable(report.Stores, func(i, j int) bool {
		a, b := report.Stores[i], report.Stores[j]
		if !a.TotalProfit.Equal(b.TotalProfit) {
			return a.TotalProfit.GreaterThan(b.TotalProfit)
		}
		if a.DistrictName != b.DistrictName {
			return a.DistrictName < b.DistrictName
		}
		return a.StoreName < b.StoreName
	})
	return report
}

func applyFinanceEffect(
	ops map[ledger.OperationType]*OperationTally,
	revenue, cost *decimal.Decimal,
	m *ledger.Movement,
	effect financeEffect,
) {
	t, ok := ops[m.OperationType]
	if !ok {
		t = &OperationTally{Quantity: decimal.Zero}
		ops[m.OperationType] = t
	}
	t.Quantity = t.Quantity.Add(m.Quantity)
	t.Count++
	*revenue = revenue.Add(effect.amount)
	*cost = cost.Add(effect.cost)
}
