package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchRepository manages production batch persistence. Batches are
// append-only like the movement ledger.
type BatchRepository interface {
	Save(ctx context.Context, batch *Batch) error
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)
	// FindRecent returns the most recent batches ordered by date then
	// creation time, newest first, capped at limit.
	FindRecent(ctx context.Context, limit int) ([]Batch, error)
	// FindForPeriod returns all batches with a date inside the inclusive
	// day range. Nil bounds mean unbounded.
	FindForPeriod(ctx context.Context, from, to *time.Time) ([]Batch, error)
	// SumProducedOn returns the total produced quantity for a product on
	// a calendar day, summed across batches.
	SumProducedOn(ctx context.Context, date time.Time, productID uuid.UUID) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
}
