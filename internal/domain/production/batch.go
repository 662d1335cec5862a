package production

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Batch records one production run of a product on a calendar day. The
// day's produced total (batches may repeat per day/product and are summed)
// caps how much of the product can be consumed that day when the cap is
// enabled, and seeds the production reconciliation report.
type Batch struct {
	shared.BaseAggregateRoot
	Date         time.Time       `gorm:"type:date;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProducedQty  decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	BonusPoolQty decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	Comment      string          `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Batch) TableName() string {
	return "production_batches"
}

// NewBatch creates a new production batch
func NewBatch(
	date time.Time,
	productID uuid.UUID,
	producedQty decimal.Decimal,
	bonusPoolQty decimal.Decimal,
	comment string,
) (*Batch, error) {
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Batch date is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Batch product is required")
	}
	if !producedQty.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Produced quantity must be positive")
	}
	if bonusPoolQty.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Bonus pool quantity cannot be negative")
	}
	if bonusPoolQty.GreaterThan(producedQty) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Bonus pool cannot exceed produced quantity")
	}

	batch := &Batch{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Date:              date,
		ProductID:         productID,
		ProducedQty:       producedQty,
		BonusPoolQty:      bonusPoolQty,
		Comment:           strings.TrimSpace(comment),
	}
	batch.AddDomainEvent(NewBatchRecordedEvent(batch))

	return batch, nil
}
