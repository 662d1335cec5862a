package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
)

// Placeholder names used when a referenced aggregate no longer resolves.
// The ledger is append-only, so rows can outlive the stores and districts
// they point at.
const (
	UnknownDistrictName = "Unknown district"
	UnknownStoreName    = "Unknown store"
)

// DebtFilter narrows the debt ledger to a window and an optional slice of
// the network. Nil fields leave the dimension unfiltered.
type DebtFilter struct {
	From       *time.Time
	To         *time.Time
	DistrictID *uuid.UUID
	StoreID    *uuid.UUID
}

// DebtRow is the receivable position of one store within one district.
// Balance = CreditAmount - PaymentsAmount; positive means the store still
// owes money.
type DebtRow struct {
	DistrictID   uuid.UUID       `json:"districtId"`
	DistrictName string          `json:"districtName"`
	StoreID      uuid.UUID       `json:"storeId"`
	StoreName    string          `json:"storeName"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Payments     decimal.Decimal `json:"payments"`
	Balance      decimal.Decimal `json:"balance"`
}

// DebtSummary builds the receivables ledger from credit movements and store
// payments. Only movements whose payment type is credit and that name a
// store participate; returns reduce the debt, payments reduce it further.
// Stores that only ever paid (no credit movements in the window) still get
// a row with a negative balance. Rows come back sorted by balance
// descending so the largest debtors lead.
func DebtSummary(
	movements []ledger.Movement,
	payments []ledger.StorePayment,
	districts []network.District,
	stores []network.Store,
	filter DebtFilter,
) []DebtRow {
	districtNames := districtNameIndex(districts)
	storeIndex := storeIndex(stores)

	type key struct {
		district uuid.UUID
		store    uuid.UUID
	}
	rows := make(map[key]*DebtRow)

	row := func(districtID, storeID uuid.UUID) *DebtRow {
		k := key{district: districtID, store: storeID}
		if r, ok := rows[k]; ok {
			return r
		}
		r := &DebtRow{
			DistrictID:   districtID,
			DistrictName: nameOrDefault(districtNames[districtID], UnknownDistrictName),
			StoreID:      storeID,
			StoreName:    UnknownStoreName,
			CreditAmount: decimal.Zero,
			Payments:     decimal.Zero,
			Balance:      decimal.Zero,
		}
		if s, ok := storeIndex[storeID]; ok {
			r.StoreName = s.Name
		}
		rows[k] = r
		return r
	}

	for i := range movements {
		m := &movements[i]
		if !m.IsCredit() {
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

		amount := m.Amount()
		if m.OperationType == ledger.OperationReturn {
			amount = amount.Neg()
		}
		r := row(m.DistrictID, *m.StoreID)
		r.CreditAmount = r.CreditAmount.Add(amount)
		r.Balance = r.Balance.Add(amount)
	}

	for i := range payments {
		p := &payments[i]
		if !InRange(p.Date, filter.From, filter.To) {
			continue
		}
		districtID, ok := resolvePaymentDistrict(p, storeIndex)
		if !ok {
			continue
		}
		if filter.DistrictID != nil && districtID != *filter.DistrictID {
			continue
		}
		if filter.StoreID != nil && p.StoreID != *filter.StoreID {
			continue
		}

		r := row(districtID, p.StoreID)
		r.Payments = r.Payments.Add(p.Amount)
		r.Balance = r.Balance.Sub(p.Amount)
	}

	out := make([]DebtRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Balance.Equal(out[j].Balance) {
			return out[i].Balance.GreaterThan(out[j].Balance)
		}
		if out[i].DistrictName != out[j].DistrictName {
			return out[i].DistrictName < out[j].DistrictName
		}
		return out[i].StoreName < out[j].StoreName
	})
	return out
}

// resolvePaymentDistrict picks the payment's own district when set, falling
// back to the paying store's district. Payments with no resolvable district
// cannot be bucketed and are dropped.
func resolvePaymentDistrict(p *ledger.StorePayment, stores map[uuid.UUID]*network.Store) (uuid.UUID, bool) {
	if p.DistrictID != nil {
		return *p.DistrictID, true
	}
	if s, ok := stores[p.StoreID]; ok && s.DistrictID != nil {
		return *s.DistrictID, true
	}
	return uuid.Nil, false
}

func districtNameIndex(districts []network.District) map[uuid.UUID]string {
	idx := make(map[uuid.UUID]string, len(districts))
	for i := range districts {
		idx[districts[i].ID] = districts[i].Name
	}
	return idx
}

func storeIndex(stores []network.Store) map[uuid.UUID]*network.Store {
	idx := make(map[uuid.UUID]*network.Store, len(stores))
	for i := range stores {
		idx[stores[i].ID] = &stores[i]
	}
	return idx
}

func nameOrDefault(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
