package planning

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/backend/internal/domain/planning"
)

const dayFormat = "2006-01-02"

// PlanResponse is the wire representation of a revenue plan
type PlanResponse struct {
	ID          uuid.UUID       `json:"id"`
	DistrictID  uuid.UUID       `json:"districtId"`
	PeriodStart string          `json:"periodStart"`
	PeriodEnd   string          `json:"periodEnd"`
	PlanRevenue decimal.Decimal `json:"planRevenue"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreatePlanRequest carries the payload for POST /api/revenue-plans
type CreatePlanRequest struct {
	DistrictID  uuid.UUID       `json:"districtId" binding:"required"`
	PeriodStart string          `json:"periodStart" binding:"required"`
	PeriodEnd   string          `json:"periodEnd" binding:"required"`
	PlanRevenue decimal.Decimal `json:"planRevenue" binding:"required"`
}

// ToPlanResponse maps a plan to its response
func ToPlanResponse(p *planning.RevenuePlan) PlanResponse {
	return PlanResponse{
		ID:          p.ID,
		DistrictID:  p.DistrictID,
		PeriodStart: p.PeriodStart.Format(dayFormat),
		PeriodEnd:   p.PeriodEnd.Format(dayFormat),
		PlanRevenue: p.PlanRevenue,
		CreatedAt:   p.CreatedAt,
	}
}

// ToPlanResponses maps a plan collection to responses
func ToPlanResponses(plans []planning.RevenuePlan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, ToPlanResponse(&plans[i]))
	}
	return out
}
