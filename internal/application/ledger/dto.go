package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/shared"
)

// dayFormat is the wire format for ledger dates.
const dayFormat = "2006-01-02"

// parseDay parses a yyyy-MM-dd wire date.
func parseDay(value string) (time.Time, error) {
	t, err := time.Parse(dayFormat, value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date must be in yyyy-MM-dd format")
	}
	return t, nil
}

// MovementResponse is the wire representation of a movement
type MovementResponse struct {
	ID            uuid.UUID       `json:"id"`
	Date          string          `json:"date"`
	DistrictID    uuid.UUID       `json:"districtId"`
	StoreID       *uuid.UUID      `json:"storeId,omitempty"`
	ProductID     uuid.UUID       `json:"productId"`
	OperationType string          `json:"operationType"`
	PaymentType   string          `json:"paymentType"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Amount        decimal.Decimal `json:"amount"`
	Comment       string          `json:"comment,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// RecordMovementRequest carries the payload for POST /api/movements
type RecordMovementRequest struct {
	Date          string           `json:"date" binding:"required"`
	DistrictID    uuid.UUID        `json:"districtId" binding:"required"`
	StoreID       *uuid.UUID       `json:"storeId"`
	ProductID     uuid.UUID        `json:"productId" binding:"required"`
	OperationType string           `json:"operationType" binding:"required"`
	PaymentType   string           `json:"paymentType" binding:"required"`
	Quantity      decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"`
	Comment       string           `json:"comment" binding:"max=500"`
}

// PaymentResponse is the wire representation of a store payment
type PaymentResponse struct {
	ID         uuid.UUID       `json:"id"`
	Date       string          `json:"date"`
	DistrictID *uuid.UUID      `json:"districtId,omitempty"`
	StoreID    uuid.UUID       `json:"storeId"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Comment    string          `json:"comment,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// RecordPaymentRequest carries the payload for POST /api/store-payments
type RecordPaymentRequest struct {
	Date       string          `json:"date" binding:"required"`
	DistrictID *uuid.UUID      `json:"districtId"`
	StoreID    uuid.UUID       `json:"storeId" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Method     string          `json:"method" binding:"required,min=1,max=50"`
	Comment    string          `json:"comment" binding:"max=500"`
}

// ToMovementResponse maps a movement fact to its response
func ToMovementResponse(m *ledger.Movement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		Date:          m.Date.Format(dayFormat),
		DistrictID:    m.DistrictID,
		StoreID:       m.StoreID,
		ProductID:     m.ProductID,
		OperationType: string(m.OperationType),
		PaymentType:   string(m.PaymentType),
		Quantity:      m.Quantity,
		UnitPrice:     m.UnitPrice,
		Amount:        m.Amount(),
		Comment:       m.Comment,
		CreatedAt:     m.CreatedAt,
	}
}

// ToMovementResponses maps a movement collection to responses
func ToMovementResponses(movements []ledger.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for i := range movements {
		out = append(out, ToMovementResponse(&movements[i]))
	}
	return out
}

// ToPaymentResponse maps a payment fact to its response
func ToPaymentResponse(p *ledger.StorePayment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		Date:       p.Date.Format(dayFormat),
		DistrictID: p.DistrictID,
		StoreID:    p.StoreID,
		Amount:     p.Amount,
		Method:     p.Method,
		Comment:    p.Comment,
		CreatedAt:  p.CreatedAt,
	}
}

// ToPaymentResponses maps a payment collection to responses
func ToPaymentResponses(payments []ledger.StorePayment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, ToPaymentResponse(&payments[i]))
	}
	return out
}
