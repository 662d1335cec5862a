package planning

import (
	"context"
	"errors"
	"time"

	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/planning"
	"github.com/retailops/backend/internal/domain/shared"
)

// PlanService records and lists district revenue plans
type PlanService struct {
	planRepo       planning.RevenuePlanRepository
	districtRepo   network.DistrictRepository
	eventPublisher shared.EventPublisher
}

// NewPlanService creates a new PlanService
func NewPlanService(
	planRepo planning.RevenuePlanRepository,
	districtRepo network.DistrictRepository,
) *PlanService {
	return &PlanService{
		planRepo:     planRepo,
		districtRepo: districtRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PlanService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// List returns all revenue plans
func (s *PlanService) List(ctx context.Context) ([]PlanResponse, error) {
	plans, err := s.planRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToPlanResponses(plans), nil
}

// Create records a new revenue plan. The district must exist.
func (s *PlanService) Create(ctx context.Context, req CreatePlanRequest) (*PlanResponse, error) {
	periodStart, err := time.Parse(dayFormat, req.PeriodStart)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "periodStart must be in yyyy-MM-dd format")
	}
	periodEnd, err := time.Parse(dayFormat, req.PeriodEnd)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "periodEnd must be in yyyy-MM-dd format")
	}

	if _, err := s.districtRepo.FindByID(ctx, req.DistrictID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_DISTRICT", "District not found")
		}
		return nil, err
	}

	plan, err := planning.NewRevenuePlan(req.DistrictID, periodStart, periodEnd, req.PlanRevenue)
	if err != nil {
		return nil, err
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, plan)

	response := ToPlanResponse(plan)
	return &response, nil
}

func (s *PlanService) publishEvents(ctx context.Context, plan *planning.RevenuePlan) {
	if s.eventPublisher == nil {
		return
	}
	events := plan.DomainEvents()
	if len(events) == 0 {
		return
	}
	// Publish errors are logged by the event bus, not propagated.
	_ = s.eventPublisher.Publish(ctx, events...)
	plan.ClearDomainEvents()
}
