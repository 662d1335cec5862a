package report

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
)

// RevenueRow is the cost-free rollup of one bucket: a district, a store,
// or the synthetic no-store bucket of a district (StoreID nil, district
// fields set). ReturnRate and BonusShare are percentages of the sales
// movement count; both are zero when the bucket has no sales.
type RevenueRow struct {
	DistrictID     uuid.UUID       `json:"districtId"`
	DistrictName   string          `json:"districtName"`
	StoreID        *uuid.UUID      `json:"storeId,omitempty"`
	StoreName      string          `json:"storeName,omitempty"`
	SalesCount     int             `json:"salesCount"`
	ReturnsCount   int             `json:"returnsCount"`
	ExchangesCount int             `json:"exchangesCount"`
	BonusesCount   int             `json:"bonusesCount"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	ReturnRate     float64         `json:"returnRate"`
	BonusShare     float64         `json:"bonusShare"`
}

// RevenueReport bundles both rollup levels of the revenue summary.
type RevenueReport struct {
	Districts []RevenueRow `json:"districts"`
	Stores    []RevenueRow `json:"stores"`
}

// RevenueSummary is the finance rollup without cost data, for networks
// that do not track cost prices. Sales add revenue, returns subtract it,
// exchanges and bonuses are counted but contribute nothing. The derived
// rates flag buckets with unusual return or giveaway pressure. Rows come
// back sorted by revenue descending.
func RevenueSummary(
	movements []ledger.Movement,
	districts []network.District,
	stores []network.Store,
	filter FinanceFilter,
) RevenueReport {
	districtNames := districtNameIndex(districts)
	storeNames := make(map[uuid.UUID]string, len(stores))
	for i := range stores {
		storeNames[stores[i].ID] = stores[i].Name
	}

	districtRows := make(map[uuid.UUID]*RevenueRow)
	type storeKey struct {
		district uuid.UUID
		store    uuid.UUID
	}
	storeRows := make(map[storeKey]*RevenueRow)

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
		switch m.OperationType {
		case ledger.OperationSale, ledger.OperationReturn,
			ledger.OperationExchange, ledger.OperationBonus:
		default:
			continue
		}

		districtName := nameOrDefault(districtNames[m.DistrictID], UnknownDistrictName)

		dr, ok := districtRows[m.DistrictID]
		if !ok {
			dr = &RevenueRow{
				DistrictID:   m.DistrictID,
				DistrictName: districtName,
				TotalRevenue: decimal.Zero,
			}
			districtRows[m.DistrictID] = dr
		}
		applyRevenueMovement(dr, m)

		sk := storeKey{district: m.DistrictID}
		storeName := districtName + " (no store)"
		if m.StoreID != nil {
			sk.store = *m.StoreID
			storeName = nameOrDefault(storeNames[*m.StoreID], UnknownStoreName)
		}
		sr, ok := storeRows[sk]
		if !ok {
			sr = &RevenueRow{
				DistrictID:   m.DistrictID,
				DistrictName: districtName,
				StoreName:    storeName,
				TotalRevenue: decimal.Zero,
			}
			if m.StoreID != nil {
				id := *m.StoreID
				sr.StoreID = &id
			}
			storeRows[sk] = sr
		}
		applyRevenueMovement(sr, m)
	}

	report := RevenueReport{
		Districts: make([]RevenueRow, 0, len(districtRows)),
		Stores:    make([]RevenueRow, 0, len(storeRows)),
	}
	for _, r := range districtRows {
		finishRevenueRow(r)
		report.Districts = append(report.Districts, *r)
	}
	for _, r := range storeRows {
		finishRevenueRow(r)
		report.Stores = append(report.Stores, *r)
	}
	sortRevenueRows(report.Districts)
	sortRevenueRows(report.Stores)
	return report
}

func applyRevenueMovement(r *RevenueRow, m *ledger.Movement) {
	switch m.OperationType {
	case ledger.OperationSale:
		r.SalesCount++
		r.TotalRevenue = r.TotalRevenue.Add(m.Amount())
	case ledger.OperationReturn:
		r.ReturnsCount++
		r.TotalRevenue = r.TotalRevenue.Sub(m.Amount())
	case ledger.OperationExchange:
		r.ExchangesCount++
	case ledger.OperationBonus:
		r.BonusesCount++
	}
}

func finishRevenueRow(r *RevenueRow) {
	if r.SalesCount == 0 {
		return
	}
	r.ReturnRate = float64(r.ReturnsCount+r.ExchangesCount) / float64(r.SalesCount) * 100
	r.BonusShare = float64(r.BonusesCount) / float64(r.SalesCount) * 100
}

func sortRevenueRows(rows []RevenueRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.TotalRevenue.Equal(b.TotalRevenue) {
			return a.TotalRevenue.GreaterThan(b.TotalRevenue)
		}
		if a.DistrictName != b.DistrictName {
			return a.DistrictName < b.DistrictName
		}
		return a.StoreName < b.StoreName
	})
}
