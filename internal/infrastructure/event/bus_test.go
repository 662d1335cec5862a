package event

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/production"
	"github.com/retailops/backend/internal/domain/shared"
	"github.com/retailops/backend/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// recordingHandler records every event it receives
type recordingHandler struct {
	mu     sync.Mutex
	types  []string
	events []shared.DomainEvent
	err    error
	panics bool
}

func (h *recordingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler exploded")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func (h *recordingHandler) received() []shared.DomainEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.events
}

func movementEvent() shared.DomainEvent {
	event := shared.NewBaseDomainEvent(ledger.EventTypeMovementRecorded, "movement", uuid.New())
	return &event
}

func batchEvent() shared.DomainEvent {
	event := shared.NewBaseDomainEvent(production.EventTypeBatchRecorded, "production_batch", uuid.New())
	return &event
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	t.Run("delivers to handler subscribed to the event type", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{ledger.EventTypeMovementRecorded}}
		bus.Subscribe(handler)

		err := bus.Publish(context.Background(), movementEvent())

		require.NoError(t, err)
		assert.Len(t, handler.received(), 1)
	})

	t.Run("skips handler subscribed to other types", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{production.EventTypeBatchRecorded}}
		bus.Subscribe(handler)

		err := bus.Publish(context.Background(), movementEvent())

		require.NoError(t, err)
		assert.Empty(t, handler.received())
	})

	t.Run("wildcard handler receives all events", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{}
		bus.Subscribe(handler)

		err := bus.Publish(context.Background(), movementEvent(), batchEvent())

		require.NoError(t, err)
		assert.Len(t, handler.received(), 2)
	})

	t.Run("failing handler is logged and does not fail the publish", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		bus := NewInMemoryEventBus(zap.New(core))

		failing := &recordingHandler{
			types: []string{ledger.EventTypeMovementRecorded},
			err:   assert.AnError,
		}
		healthy := &recordingHandler{types: []string{ledger.EventTypeMovementRecorded}}
		bus.Subscribe(failing)
		bus.Subscribe(healthy)

		err := bus.Publish(context.Background(), movementEvent())

		require.NoError(t, err)
		assert.Len(t, healthy.received(), 1, "other handlers still run")
		assert.Equal(t, 1, logs.FilterMessage("handler failed to process event").Len())
	})

	t.Run("handler error does not stop later events", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := testutil.NewMockEventHandler(ledger.EventTypeMovementRecorded)
		bus.Subscribe(handler)

		handler.SetError(assert.AnError)
		require.NoError(t, bus.Publish(context.Background(), movementEvent()))
		handler.SetError(nil)
		require.NoError(t, bus.Publish(context.Background(), movementEvent()))

		assert.Equal(t, 2, handler.HandledCount())
	})

	t.Run("handler sees the published payload", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := testutil.NewMockEventHandler("report.cache.test")
		bus.Subscribe(handler)

		event := testutil.NewTestEvent("report.cache.test")
		require.NoError(t, bus.Publish(context.Background(), event))

		handled := handler.Handled()
		require.Len(t, handled, 1)
		assert.Equal(t, event.EventID(), handled[0].EventID())
	})

	t.Run("panicking handler is recovered", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		bus := NewInMemoryEventBus(zap.New(core))

		panicking := &recordingHandler{
			types:  []string{ledger.EventTypeMovementRecorded},
			panics: true,
		}
		healthy := &recordingHandler{types: []string{ledger.EventTypeMovementRecorded}}
		bus.Subscribe(panicking)
		bus.Subscribe(healthy)

		require.NotPanics(t, func() {
			_ = bus.Publish(context.Background(), movementEvent())
		})
		assert.Len(t, healthy.received(), 1)
		assert.Equal(t, 1, logs.FilterMessage("handler panicked").Len())
	})
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	t.Run("unsubscribed handler receives nothing", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{ledger.EventTypeMovementRecorded}}
		bus.Subscribe(handler)
		bus.Unsubscribe(handler)

		err := bus.Publish(context.Background(), movementEvent())

		require.NoError(t, err)
		assert.Empty(t, handler.received())
	})
}

func TestInMemoryEventBus_Lifecycle(t *testing.T) {
	t.Run("start and stop", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		ctx := context.Background()

		require.NoError(t, bus.Start(ctx))
		require.NoError(t, bus.Stop(ctx))
	})
}

func TestHandlerRegistry(t *testing.T) {
	t.Run("combines type handlers with wildcard handlers", func(t *testing.T) {
		registry := NewHandlerRegistry()
		typed := &recordingHandler{types: []string{ledger.EventTypeMovementRecorded}}
		wildcard := &recordingHandler{}

		registry.Register(typed, typed.EventTypes()...)
		registry.Register(wildcard)

		handlers := registry.GetHandlers(ledger.EventTypeMovementRecorded)
		assert.Len(t, handlers, 2)

		handlers = registry.GetHandlers(production.EventTypeBatchRecorded)
		assert.Len(t, handlers, 1, "only the wildcard handler matches")
	})

	t.Run("unregister removes the handler everywhere", func(t *testing.T) {
		registry := NewHandlerRegistry()
		handler := &recordingHandler{types: []string{
			ledger.EventTypeMovementRecorded,
			ledger.EventTypeStorePaymentRecorded,
		}}

		registry.Register(handler, handler.EventTypes()...)
		registry.Unregister(handler)

		assert.Empty(t, registry.GetHandlers(ledger.EventTypeMovementRecorded))
		assert.Empty(t, registry.GetHandlers(ledger.EventTypeStorePaymentRecorded))
	})
}
