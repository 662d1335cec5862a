package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/planning"
)

// PlanFilter narrows plan-vs-actual to plans overlapping the window and
// optionally to one district.
type PlanFilter struct {
	From       *time.Time
	To         *time.Time
	DistrictID *uuid.UUID
}

// PlanRow compares one revenue plan against the realized revenue of its
// district over the plan period. Completion is a percentage and stays
// zero when the plan itself is zero.
type PlanRow struct {
	PlanID        uuid.UUID       `json:"planId"`
	DistrictID    uuid.UUID       `json:"districtId"`
	DistrictName  string          `json:"districtName"`
	PeriodStart   time.Time       `json:"periodStart"`
	PeriodEnd     time.Time       `json:"periodEnd"`
	PlanRevenue   decimal.Decimal `json:"planRevenue"`
	ActualRevenue decimal.Decimal `json:"actualRevenue"`
	Completion    float64         `json:"completion"`
}

// PlanVsActual scores revenue plans against the movement ledger. Actual
// revenue counts sales minus returns booked in the plan's district during
// its period; other operation types carry no revenue. A plan that overlaps
// the filter window at all is included whole. Rows come back sorted by
// period start descending, then district name.
func PlanVsActual(
	plans []planning.RevenuePlan,
	movements []ledger.Movement,
	districts []network.District,
	filter PlanFilter,
) []PlanRow {
	districtNames := districtNameIndex(districts)

	rows := make([]PlanRow, 0, len(plans))
	for i := range plans {
		p := &plans[i]
		if filter.DistrictID != nil && p.DistrictID != *filter.DistrictID {
			continue
		}
		if filter.From != nil && p.PeriodEnd.Before(DayStart(*filter.From)) {
			continue
		}
		if filter.To != nil && p.PeriodStart.After(DayEnd(*filter.To)) {
			continue
		}

		actual := decimal.Zero
		for j := range movements {
			m := &movements[j]
			if m.DistrictID != p.DistrictID || !p.Covers(m.Date) {
				continue
			}
			switch m.OperationType {
			case ledger.OperationSale:
				actual = actual.Add(m.Amount())
			case ledger.OperationReturn:
				actual = actual.Sub(m.Amount())
			}
		}

		var completion float64
		if p.PlanRevenue.IsPositive() {
			completion = actual.Div(p.PlanRevenue).InexactFloat64() * 100
		}

		rows = append(rows, PlanRow{
			PlanID:        p.ID,
			DistrictID:    p.DistrictID,
			DistrictName:  nameOrDefault(districtNames[p.DistrictID], UnknownDistrictName),
			PeriodStart:   p.PeriodStart,
			PeriodEnd:     p.PeriodEnd,
			PlanRevenue:   p.PlanRevenue,
			ActualRevenue: actual,
			Completion:    completion,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].PeriodStart.Equal(rows[j].PeriodStart) {
			return rows[i].PeriodStart.After(rows[j].PeriodStart)
		}
		return rows[i].DistrictName < rows[j].DistrictName
	})
	return rows
}
