package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/retailops/backend/internal/domain/production"
)

const dayFormat = "2006-01-02"

// BatchResponse is the wire representation of a production batch
type BatchResponse struct {
	ID           uuid.UUID       `json:"id"`
	Date         string          `json:"date"`
	ProductID    uuid.UUID       `json:"productId"`
	ProducedQty  decimal.Decimal `json:"producedQty"`
	BonusPoolQty decimal.Decimal `json:"bonusPoolQty"`
	Comment      string          `json:"comment,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// RecordBatchRequest carries the payload for POST /api/production-batches
type RecordBatchRequest struct {
	Date         string           `json:"date" binding:"required"`
	ProductID    uuid.UUID        `json:"productId" binding:"required"`
	ProducedQty  decimal.Decimal  `json:"producedQty" binding:"required"`
	BonusPoolQty *decimal.Decimal `json:"bonusPoolQty"`
	Comment      string           `json:"comment" binding:"max=500"`
}

// ToBatchResponse maps a batch to its response
func ToBatchResponse(b *production.Batch) BatchResponse {
	return BatchResponse{
		ID:           b.ID,
		Date:         b.Date.Format(dayFormat),
		ProductID:    b.ProductID,
		ProducedQty:  b.ProducedQty,
		BonusPoolQty: b.BonusPoolQty,
		Comment:      b.Comment,
		CreatedAt:    b.CreatedAt,
	}
}

// ToBatchResponses maps a batch collection to responses
func ToBatchResponses(batches []production.Batch) []BatchResponse {
	out := make([]BatchResponse, 0, len(batches))
	for i := range batches {
		out = append(out, ToBatchResponse(&batches[i]))
	}
	return out
}
