package telemetry

import (
	"context"

	"go.uber.org/zap"

	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/planning"
	"github.com/retailops/backend/internal/domain/production"
	"github.com/retailops/backend/internal/domain/shared"
)

// LedgerMetrics counts write-side domain events: movements, payments,
// production batches and revenue plans. It subscribes to the in-process
// event bus, so counts reflect accepted writes only.
type LedgerMetrics struct {
	movements *Counter
	payments  *Counter
	batches   *Counter
	plans     *Counter
	logger    *zap.Logger
}

// NewLedgerMetrics creates the write-side metric instruments on the
// given meter provider.
func NewLedgerMetrics(mp *MeterProvider, logger *zap.Logger) (*LedgerMetrics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	meter := mp.Meter("retailops.ledger")

	movements, err := NewCounter(meter,
		"ledger_movements_recorded_total",
		"Total movements appended to the ledger",
		"{movement}")
	if err != nil {
		return nil, err
	}
	payments, err := NewCounter(meter,
		"ledger_store_payments_recorded_total",
		"Total store payments appended to the ledger",
		"{payment}")
	if err != nil {
		return nil, err
	}
	batches, err := NewCounter(meter,
		"production_batches_recorded_total",
		"Total production batches recorded",
		"{batch}")
	if err != nil {
		return nil, err
	}
	plans, err := NewCounter(meter,
		"revenue_plans_created_total",
		"Total revenue plans created",
		"{plan}")
	if err != nil {
		return nil, err
	}

	return &LedgerMetrics{
		movements: movements,
		payments:  payments,
		batches:   batches,
		plans:     plans,
		logger:    logger,
	}, nil
}

// EventTypes returns the write events this handler counts
func (m *LedgerMetrics) EventTypes() []string {
	return []string{
		ledger.EventTypeMovementRecorded,
		ledger.EventTypeStorePaymentRecorded,
		production.EventTypeBatchRecorded,
		planning.EventTypeRevenuePlanCreated,
	}
}

// Handle increments the counter matching the event type
func (m *LedgerMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *ledger.MovementRecordedEvent:
		m.movements.Inc(ctx, AttrOperationType.String(string(e.OperationType)))
	case *ledger.StorePaymentRecordedEvent:
		m.payments.Inc(ctx)
	case *production.BatchRecordedEvent:
		m.batches.Inc(ctx)
	case *planning.RevenuePlanCreatedEvent:
		m.plans.Inc(ctx)
	default:
		m.logger.Debug("unexpected event type in ledger metrics",
			zap.String("event_type", event.EventType()))
	}
	return nil
}
