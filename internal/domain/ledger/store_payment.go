package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StorePayment is a cash inflow recorded against a store's debt. Like
// movements, payments are append-only facts. DistrictID is optional; the
// debt ledger falls back to the store's district when it is absent.
type StorePayment struct {
	shared.BaseAggregateRoot
	Date       time.Time       `gorm:"type:date;not null;index"`
	DistrictID *uuid.UUID      `gorm:"type:uuid;index"`
	StoreID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Method     string          `gorm:"type:varchar(50);not null"`
	Comment    string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (StorePayment) TableName() string {
	return "store_payments"
}

// NewStorePayment creates a new payment fact
func NewStorePayment(
	date time.Time,
	districtID *uuid.UUID,
	storeID uuid.UUID,
	amount decimal.Decimal,
	method string,
	comment string,
) (*StorePayment, error) {
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Payment date is required")
	}
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Payment store is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if strings.TrimSpace(method) == "" {
		return nil, shared.NewDomainError("INVALID_METHOD", "Payment method is required")
	}

	payment := &StorePayment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Date:              date,
		DistrictID:        districtID,
		StoreID:           storeID,
		Amount:            amount,
		Method:            strings.TrimSpace(method),
		Comment:           strings.TrimSpace(comment),
	}
	payment.AddDomainEvent(NewStorePaymentRecordedEvent(payment))

	return payment, nil
}
