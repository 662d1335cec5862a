package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Movement is an immutable fact recording a quantity of a product changing
// hands at a store or district. Movements are append-only: there is no
// update or delete path, and corrections are recorded as counter-movements.
type Movement struct {
	shared.BaseAggregateRoot
	Date          time.Time       `gorm:"type:date;not null;index"`
	DistrictID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	StoreID       *uuid.UUID      `gorm:"type:uuid;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	OperationType OperationType   `gorm:"type:varchar(20);not null;index"`
	PaymentType   PaymentType     `gorm:"type:varchar(20);not null"`
	Quantity      decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Comment       string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Movement) TableName() string {
	return "movements"
}

// NewMovement creates a new movement fact
func NewMovement(
	date time.Time,
	districtID uuid.UUID,
	storeID *uuid.UUID,
	productID uuid.UUID,
	operationType OperationType,
	paymentType PaymentType,
	quantity decimal.Decimal,
	unitPrice decimal.Decimal,
	comment string,
) (*Movement, error) {
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Movement date is required")
	}
	if districtID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DISTRICT", "Movement district is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Movement product is required")
	}
	if !operationType.IsValid() {
		return nil, shared.NewDomainError("INVALID_OPERATION_TYPE", "Unknown operation type: "+string(operationType))
	}
	if !paymentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Unknown payment type: "+string(paymentType))
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	movement := &Movement{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Date:              date,
		DistrictID:        districtID,
		StoreID:           storeID,
		ProductID:         productID,
		OperationType:     operationType,
		PaymentType:       paymentType,
		Quantity:          quantity,
		UnitPrice:         unitPrice,
		Comment:           strings.TrimSpace(comment),
	}
	movement.AddDomainEvent(NewMovementRecordedEvent(movement))

	return movement, nil
}

// Amount returns quantity * unit price, the movement's gross value
func (m *Movement) Amount() decimal.Decimal {
	return m.Quantity.Mul(m.UnitPrice)
}

// IsCredit reports whether the movement accrues store debt
func (m *Movement) IsCredit() bool {
	return m.PaymentType.IsCredit() && m.StoreID != nil
}
