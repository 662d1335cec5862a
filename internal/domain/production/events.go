package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeBatch = "ProductionBatch"

// Event type constant
const EventTypeBatchRecorded = "ProductionBatchRecorded"

// BatchRecordedEvent is published when a production batch is appended
type BatchRecordedEvent struct {
	shared.BaseDomainEvent
	BatchID      uuid.UUID       `json:"batch_id"`
	Date         time.Time       `json:"date"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProducedQty  decimal.Decimal `json:"produced_qty"`
	BonusPoolQty decimal.Decimal `json:"bonus_pool_qty"`
}

// NewBatchRecordedEvent creates a new BatchRecordedEvent
func NewBatchRecordedEvent(batch *Batch) *BatchRecordedEvent {
	return &BatchRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBatchRecorded, AggregateTypeBatch, batch.ID),
		BatchID:         batch.ID,
		Date:            batch.Date,
		ProductID:       batch.ProductID,
		ProducedQty:     batch.ProducedQty,
		BonusPoolQty:    batch.BonusPoolQty,
	}
}
