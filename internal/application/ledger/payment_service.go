package ledger

import (
	"context"
	"errors"

	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/shared"
)

// PaymentService records and lists store payments
type PaymentService struct {
	paymentRepo    ledger.StorePaymentRepository
	storeRepo      network.StoreRepository
	districtRepo   network.DistrictRepository
	eventPublisher shared.EventPublisher
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo ledger.StorePaymentRepository,
	storeRepo network.StoreRepository,
	districtRepo network.DistrictRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		storeRepo:    storeRepo,
		districtRepo: districtRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PaymentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// List returns payments matching the period filter
func (s *PaymentService) List(ctx context.Context, filter ledger.PeriodFilter) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindForPeriod(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToPaymentResponses(payments), nil
}

// Record appends a payment to the ledger. The store must exist; the
// district, when given, must exist too.
func (s *PaymentService) Record(ctx context.Context, req RecordPaymentRequest) (*PaymentResponse, error) {
	date, err := parseDay(req.Date)
	if err != nil {
		return nil, err
	}

	if _, err := s.storeRepo.FindByID(ctx, req.StoreID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_STORE", "Store not found")
		}
		return nil, err
	}
	if req.DistrictID != nil {
		if _, err := s.districtRepo.FindByID(ctx, *req.DistrictID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_DISTRICT", "District not found")
			}
			return nil, err
		}
	}

	payment, err := ledger.NewStorePayment(date, req.DistrictID, req.StoreID, req.Amount, req.Method, req.Comment)
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, payment)

	response := ToPaymentResponse(payment)
	return &response, nil
}

func (s *PaymentService) publishEvents(ctx context.Context, payment *ledger.StorePayment) {
	if s.eventPublisher == nil {
		return
	}
	events := payment.DomainEvents()
	if len(events) == 0 {
		return
	}
	// Publish errors are logged by the event bus, not propagated.
	_ = s.eventPublisher.Publish(ctx, events...)
	payment.ClearDomainEvents()
}
