package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/production"
)

// UnknownProductName labels rows whose product id no longer resolves.
const UnknownProductName = "Unknown product"

// ProductionFilter bounds the reconciliation window. Nil boundaries leave
// that side open.
type ProductionFilter struct {
	From *time.Time
	To   *time.Time
}

// ProductionRow reconciles one production day of one product against the
// movements booked on that same day. TheoreticalRest is what should still
// be on hand from that day's output.
type ProductionRow struct {
	Date            time.Time       `json:"date"`
	ProductID       uuid.UUID       `json:"productId"`
	ProductName     string          `json:"productName"`
	ProducedQty     decimal.Decimal `json:"producedQty"`
	BonusPoolQty    decimal.Decimal `json:"bonusPoolQty"`
	SalesQty        decimal.Decimal `json:"salesQty"`
	BonusQty        decimal.Decimal `json:"bonusQty"`
	ReturnsQty      decimal.Decimal `json:"returnsQty"`
	ExchangesQty    decimal.Decimal `json:"exchangesQty"`
	NetOutflowQty   decimal.Decimal `json:"netOutflowQty"`
	TheoreticalRest decimal.Decimal `json:"theoreticalRest"`
}

// ProductionSummary reconciles production batches against same-day
// movements. Rows are keyed by calendar day and product; batches sharing a
// key are summed. Movements only count when a batch exists for their
// day+product key, so sales of goods with no recorded production never
// surface here. NetOutflow = sales + bonuses + exchanges - returns and
// TheoreticalRest = produced - netOutflow. Rows come back sorted by date
// descending, then product name.
func ProductionSummary(
	batches []production.Batch,
	movements []ledger.Movement,
	products []catalog.Product,
	filter ProductionFilter,
) []ProductionRow {
	productNames := productNameIndex(products)

	type key struct {
		day     string
		product uuid.UUID
	}
	rows := make(map[key]*ProductionRow)

	for i := range batches {
		b := &batches[i]
		if !InRange(b.Date, filter.From, filter.To) {
			continue
		}
		k := key{day: DayKey(b.Date), product: b.ProductID}
		r, ok := rows[k]
		if !ok {
			r = &ProductionRow{
				Date:            DayStart(b.Date),
				ProductID:       b.ProductID,
				ProductName:     nameOrDefault(productNames[b.ProductID], UnknownProductName),
				ProducedQty:     decimal.Zero,
				BonusPoolQty:    decimal.Zero,
				SalesQty:        decimal.Zero,
				BonusQty:        decimal.Zero,
				ReturnsQty:      decimal.Zero,
				ExchangesQty:    decimal.Zero,
				NetOutflowQty:   decimal.Zero,
				TheoreticalRest: decimal.Zero,
			}
			rows[k] = r
		}
		r.ProducedQty = r.ProducedQty.Add(b.ProducedQty)
		r.BonusPoolQty = r.BonusPoolQty.Add(b.BonusPoolQty)
	}

	// Movements attach to existing production keys only. A movement on a
	// day without a batch for that product is not reconciled anywhere.
	for i := range movements {
		m := &movements[i]
		r, ok := rows[key{day: DayKey(m.Date), product: m.ProductID}]
		if !ok {
			continue
		}
		switch m.OperationType {
		case ledger.OperationSale:
			r.SalesQty = r.SalesQty.Add(m.Quantity)
		case ledger.OperationBonus:
			r.BonusQty = r.BonusQty.Add(m.Quantity)
		case ledger.OperationReturn:
			r.ReturnsQty = r.ReturnsQty.Add(m.Quantity)
		case ledger.OperationExchange:
			r.ExchangesQty = r.ExchangesQty.Add(m.Quantity)
		}
	}

	out := make([]ProductionRow, 0, len(rows))
	for _, r := range rows {
		r.NetOutflowQty = r.SalesQty.Add(r.BonusQty).Add(r.ExchangesQty).Sub(r.ReturnsQty)
		r.TheoreticalRest = r.ProducedQty.Sub(r.NetOutflowQty)
		out = append(out, *r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ProductName < out[j].ProductName
	})
	return out
}

func productNameIndex(products []catalog.Product) map[uuid.UUID]string {
	idx := make(map[uuid.UUID]string, len(products))
	for i := range products {
		idx[products[i].ID] = products[i].Name
	}
	return idx
}
