package production

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/production"
	"github.com/retailops/backend/internal/domain/shared"
)

// RecentBatchLimit caps the batch listing. The dashboard only renders
// the most recent runs; reconciliation reads batches through
// FindForPeriod instead.
const RecentBatchLimit = 500

// BatchService records and lists production batches
type BatchService struct {
	batchRepo      production.BatchRepository
	productRepo    catalog.ProductRepository
	eventPublisher shared.EventPublisher
}

// NewBatchService creates a new BatchService
func NewBatchService(
	batchRepo production.BatchRepository,
	productRepo catalog.ProductRepository,
) *BatchService {
	return &BatchService{
		batchRepo:   batchRepo,
		productRepo: productRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *BatchService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// ListRecent returns the most recent batches, newest first
func (s *BatchService) ListRecent(ctx context.Context) ([]BatchResponse, error) {
	batches, err := s.batchRepo.FindRecent(ctx, RecentBatchLimit)
	if err != nil {
		return nil, err
	}
	return ToBatchResponses(batches), nil
}

// Record appends a production batch. The product must exist.
func (s *BatchService) Record(ctx context.Context, req RecordBatchRequest) (*BatchResponse, error) {
	date, err := time.Parse(dayFormat, req.Date)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "Date must be in yyyy-MM-dd format")
	}

	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_PRODUCT", "Product not found")
		}
		return nil, err
	}

	bonusPool := decimal.Zero
	if req.BonusPoolQty != nil {
		bonusPool = *req.BonusPoolQty
	}

	batch, err := production.NewBatch(date, req.ProductID, req.ProducedQty, bonusPool, req.Comment)
	if err != nil {
		return nil, err
	}

	if err := s.batchRepo.Save(ctx, batch); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, batch)

	response := ToBatchResponse(batch)
	return &response, nil
}

func (s *BatchService) publishEvents(ctx context.Context, batch *production.Batch) {
	if s.eventPublisher == nil {
		return
	}
	events := batch.DomainEvents()
	if len(events) == 0 {
		return
	}
	// Publish errors are logged by the event bus, not propagated.
	_ = s.eventPublisher.Publish(ctx, events...)
	batch.ClearDomainEvents()
}
