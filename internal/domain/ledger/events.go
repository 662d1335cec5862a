package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeMovement     = "Movement"
	AggregateTypeStorePayment = "StorePayment"
)

// Event type constants
const (
	EventTypeMovementRecorded     = "MovementRecorded"
	EventTypeStorePaymentRecorded = "StorePaymentRecorded"
)

// MovementRecordedEvent is published when a movement fact is appended
type MovementRecordedEvent struct {
	shared.BaseDomainEvent
	MovementID    uuid.UUID       `json:"movement_id"`
	Date          time.Time       `json:"date"`
	DistrictID    uuid.UUID       `json:"district_id"`
	StoreID       *uuid.UUID      `json:"store_id,omitempty"`
	ProductID     uuid.UUID       `json:"product_id"`
	OperationType OperationType   `json:"operation_type"`
	PaymentType   PaymentType     `json:"payment_type"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
}

// NewMovementRecordedEvent creates a new MovementRecordedEvent
func NewMovementRecordedEvent(movement *Movement) *MovementRecordedEvent {
	return &MovementRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMovementRecorded, AggregateTypeMovement, movement.ID),
		MovementID:      movement.ID,
		Date:            movement.Date,
		DistrictID:      movement.DistrictID,
		StoreID:         movement.StoreID,
		ProductID:       movement.ProductID,
		OperationType:   movement.OperationType,
		PaymentType:     movement.PaymentType,
		Quantity:        movement.Quantity,
		UnitPrice:       movement.UnitPrice,
	}
}

// StorePaymentRecordedEvent is published when a payment fact is appended
type StorePaymentRecordedEvent struct {
	shared.BaseDomainEvent
	PaymentID  uuid.UUID       `json:"payment_id"`
	Date       time.Time       `json:"date"`
	DistrictID *uuid.UUID      `json:"district_id,omitempty"`
	StoreID    uuid.UUID       `json:"store_id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
}

// NewStorePaymentRecordedEvent creates a new StorePaymentRecordedEvent
func NewStorePaymentRecordedEvent(payment *StorePayment) *StorePaymentRecordedEvent {
	return &StorePaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStorePaymentRecorded, AggregateTypeStorePayment, payment.ID),
		PaymentID:       payment.ID,
		Date:            payment.Date,
		DistrictID:      payment.DistrictID,
		StoreID:         payment.StoreID,
		Amount:          payment.Amount,
		Method:          payment.Method,
	}
}
