package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
)

// StockFilter selects the stock snapshot. AsOf bounds the ledger at the end
// of that calendar day; nil means the whole history.
type StockFilter struct {
	AsOf    *time.Time
	StoreID *uuid.UUID
}

// StockRow is the computed on-hand position of one product at one store.
type StockRow struct {
	StoreID     uuid.UUID       `json:"storeId"`
	StoreName   string          `json:"storeName"`
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	TotalIn     decimal.Decimal `json:"totalIn"`
	TotalOut    decimal.Decimal `json:"totalOut"`
	Balance     decimal.Decimal `json:"balance"`
}

// StockBalance derives per-store per-product stock by replaying the
// movement ledger up to the cutoff. Loads, returns and incoming transfers
// add; sales, bonuses, exchanges, write-offs and outgoing transfers
// subtract. Movements without a store cannot be located and are skipped,
// as are movements whose store or product no longer resolves. Rows are
// sorted by store name, then product name, using Unicode collation so
// non-ASCII names order the way people expect.
func StockBalance(
	movements []ledger.Movement,
	stores []network.Store,
	products []catalog.Product,
	filter StockFilter,
) []StockRow {
	storeNames := make(map[uuid.UUID]string, len(stores))
	for i := range stores {
		storeNames[stores[i].ID] = stores[i].Name
	}
	productNames := productNameIndex(products)

	type key struct {
		store   uuid.UUID
		product uuid.UUID
	}
	rows := make(map[key]*StockRow)

	for i := range movements {
		m := &movements[i]
		if m.StoreID == nil {
			continue
		}
		if filter.StoreID != nil && *m.StoreID != *filter.StoreID {
			continue
		}
		if filter.AsOf != nil && m.Date.After(DayEnd(*filter.AsOf)) {
			continue
		}
		sign := m.OperationType.StockSign()
		if sign == 0 {
			continue
		}
		storeName, storeKnown := storeNames[*m.StoreID]
		productName, productKnown := productNames[m.ProductID]
		if !storeKnown || !productKnown {
			continue
		}

		k := key{store: *m.StoreID, product: m.ProductID}
		r, ok := rows[k]
		if !ok {
			r = &StockRow{
				StoreID:     *m.StoreID,
				StoreName:   storeName,
				ProductID:   m.ProductID,
				ProductName: productName,
				TotalIn:     decimal.Zero,
				TotalOut:    decimal.Zero,
				Balance:     decimal.Zero,
			}
			rows[k] = r
		}
		if sign > 0 {
			r.TotalIn = r.TotalIn.Add(m.Quantity)
			r.Balance = r.Balance.Add(m.Quantity)
		} else {
			r.TotalOut = r.TotalOut.Add(m.Quantity)
			r.Balance = r.Balance.Sub(m.Quantity)
		}
	}

	out := make([]StockRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	coll := collate.New(language.Und)
	sort.SliceStable(out, func(i, j int) bool {
		if c := coll.CompareString(out[i].StoreName, out[j].StoreName); c != 0 {
			return c < 0
		}
		return coll.CompareString(out[i].ProductName, out[j].ProductName) < 0
	})
	return out
}
