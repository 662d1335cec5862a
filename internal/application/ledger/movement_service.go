package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/production"
	"github.com/retailops/backend/internal/domain/shared"
)

// MovementService records and lists ledger movements
type MovementService struct {
	movementRepo   ledger.MovementRepository
	batchRepo      production.BatchRepository
	districtRepo   network.DistrictRepository
	storeRepo      network.StoreRepository
	productRepo    catalog.ProductRepository
	enforceCap     bool
	eventPublisher shared.EventPublisher
}

// NewMovementService creates a new MovementService. enforceCap gates the
// daily production cap on consuming operations.
func NewMovementService(
	movementRepo ledger.MovementRepository,
	batchRepo production.BatchRepository,
	districtRepo network.DistrictRepository,
	storeRepo network.StoreRepository,
	productRepo catalog.ProductRepository,
	enforceCap bool,
) *MovementService {
	return &MovementService{
		movementRepo: movementRepo,
		batchRepo:    batchRepo,
		districtRepo: districtRepo,
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		enforceCap:   enforceCap,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *MovementService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// List returns movements matching the period filter
func (s *MovementService) List(ctx context.Context, filter ledger.PeriodFilter) ([]MovementResponse, error) {
	movements, err := s.movementRepo.FindForPeriod(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToMovementResponses(movements), nil
}

// Record appends a movement to the ledger. Referenced entities must
// exist; when the production cap is on, a consuming operation that would
// push the day's consumption past the day's production is rejected.
func (s *MovementService) Record(ctx context.Context, req RecordMovementRequest) (*MovementResponse, error) {
	date, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}

	operationType := ledger.OperationType(req.OperationType)
	if !operationType.IsValid() {
		return nil, shared.NewDomainError("INVALID_OPERATION_TYPE", "Unknown operation type: "+req.OperationType)
	}
	paymentType := ledger.PaymentType(req.PaymentType)
	if !paymentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Unknown payment type: "+req.PaymentType)
	}

	if _, err := s.districtRepo.FindByID(ctx, req.DistrictID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_DISTRICT", "District not found")
		}
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product not found")
		}
		return nil, err
	}

	if req.StoreID != nil {
		if _, err := s.storeRepo.FindByID(ctx, *req.StoreID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_STORE", "Store not found")
			}
			return nil, err
		}
	}

	if s.enforceCap && operationType.ConsumesProduction() {
		if err := s.checkProductionCap(ctx, date, req); err != nil {
			return nil, err
		}
	}

	// Snapshot the catalog sale price when the caller does not quote one.
	unitPrice := product.SalePrice
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}

	movement, err := ledger.NewMovement(
		date,
		req.DistrictID,
		req.StoreID,
		req.ProductID,
		operationType,
		paymentType,
		req.Quantity,
		unitPrice,
		req.Comment,
	)
	if err != nil {
		return nil, err
	}

	if err := s.movementRepo.Save(ctx, movement); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, movement)

	response := ToMovementResponse(movement)
	return &response, nil
}

// checkProductionCap rejects the write when the day's consuming total,
// including this request, would exceed the day's produced quantity.
func (s *MovementService) checkProductionCap(ctx context.Context, date time.Time, req RecordMovementRequest) error {
	produced, err := s.batchRepo.SumProducedOn(ctx, date, req.ProductID)
	if err != nil {
		return err
	}
	consumed, err := s.movementRepo.SumConsumedOn(ctx, date, req.ProductID)
	if err != nil {
		return err
	}
	if consumed.Add(req.Quantity).GreaterThan(produced) {
		return shared.NewDomainError(
			"PRODUCTION_CAP_EXCEEDED",
			"Operation would consume more than the day's recorded production for this product",
		)
	}
	return nil
}

func (s *MovementService) publishEvents(ctx context.Context, movement *ledger.Movement) {
	if s.eventPublisher == nil {
		return
	}
	events := movement.DomainEvents()
	if len(events) == 0 {
		return
	}
	// Publish errors are logged by the event bus, not propagated.
	_ = s.eventPublisher.Publish(ctx, events...)
	movement.ClearDomainEvents()
}
