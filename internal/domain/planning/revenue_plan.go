package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RevenuePlan is a revenue target for a district over a period, compared
// against actual sales in the plan-vs-actual report.
type RevenuePlan struct {
	shared.BaseAggregateRoot
	DistrictID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	PeriodStart time.Time       `gorm:"type:date;not null"`
	PeriodEnd   time.Time       `gorm:"type:date;not null"`
	PlanRevenue decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for GORM
func (RevenuePlan) TableName() string {
	return "revenue_plans"
}

// NewRevenuePlan creates a new revenue plan
func NewRevenuePlan(
	districtID uuid.UUID,
	periodStart, periodEnd time.Time,
	planRevenue decimal.Decimal,
) (*RevenuePlan, error) {
	if districtID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DISTRICT", "Plan district is required")
	}
	if periodStart.IsZero() || periodEnd.IsZero() {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Plan period is required")
	}
	if periodEnd.Before(periodStart) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Plan period end cannot precede its start")
	}
	if planRevenue.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Plan revenue cannot be negative")
	}

	plan := &RevenuePlan{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DistrictID:        districtID,
		PeriodStart:       periodStart,
		PeriodEnd:         periodEnd,
		PlanRevenue:       planRevenue,
	}
	plan.AddDomainEvent(NewRevenuePlanCreatedEvent(plan))

	return plan, nil
}

// Covers reports whether the given timestamp falls inside the plan period.
// Comparison is day-granular and inclusive on both ends.
func (p *RevenuePlan) Covers(day time.Time) bool {
	d := truncateToDay(day)
	return !d.Before(truncateToDay(p.PeriodStart)) && !d.After(truncateToDay(p.PeriodEnd))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
