package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodFilter narrows ledger queries to an inclusive day range and an
// optional district/store. Nil fields mean "all".
type PeriodFilter struct {
	From       *time.Time
	To         *time.Time
	DistrictID *uuid.UUID
	StoreID    *uuid.UUID
}

// MovementRepository manages the append-only movement ledger. There are
// deliberately no update or delete methods.
type MovementRepository interface {
	Save(ctx context.Context, movement *Movement) error
	FindByID(ctx context.Context, id uuid.UUID) (*Movement, error)
	// FindForPeriod returns the full movement slice for the filter;
	// reports aggregate over complete snapshots.
	FindForPeriod(ctx context.Context, filter PeriodFilter) ([]Movement, error)
	// SumConsumedOn returns the total quantity of production-consuming
	// operations (sale, exchange, bonus, writeoff) for a product on a
	// calendar day. Used by the production cap check.
	SumConsumedOn(ctx context.Context, date time.Time, productID uuid.UUID) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
}

// StorePaymentRepository manages the append-only payment ledger
type StorePaymentRepository interface {
	Save(ctx context.Context, payment *StorePayment) error
	FindByID(ctx context.Context, id uuid.UUID) (*StorePayment, error)
	FindForPeriod(ctx context.Context, filter PeriodFilter) ([]StorePayment, error)
	Count(ctx context.Context) (int64, error)
}
