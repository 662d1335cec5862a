package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeRevenuePlan = "RevenuePlan"

// Event type constant
const EventTypeRevenuePlanCreated = "RevenuePlanCreated"

// RevenuePlanCreatedEvent is published when a revenue plan is created
type RevenuePlanCreatedEvent struct {
	shared.BaseDomainEvent
	PlanID      uuid.UUID       `json:"plan_id"`
	DistrictID  uuid.UUID       `json:"district_id"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	PlanRevenue decimal.Decimal `json:"plan_revenue"`
}

// NewRevenuePlanCreatedEvent creates a new RevenuePlanCreatedEvent
func NewRevenuePlanCreatedEvent(plan *RevenuePlan) *RevenuePlanCreatedEvent {
	return &RevenuePlanCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeRevenuePlanCreated, AggregateTypeRevenuePlan, plan.ID),
		PlanID:          plan.ID,
		DistrictID:      plan.DistrictID,
		PeriodStart:     plan.PeriodStart,
		PeriodEnd:       plan.PeriodEnd,
		PlanRevenue:     plan.PlanRevenue,
	}
}
