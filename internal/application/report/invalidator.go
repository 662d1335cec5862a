package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/planning"
	"github.com/retailops/backend/internal/domain/production"
	"github.com/retailops/backend/internal/domain/shared"
)

// CacheInvalidator drops cached reports whenever a write lands anywhere
// in the data the reports aggregate over. Every report depends on several
// collections, so invalidation is whole-prefix rather than per key.
type CacheInvalidator struct {
	cache  Cache
	logger *zap.Logger
}

// NewCacheInvalidator creates a new CacheInvalidator
func NewCacheInvalidator(cache Cache, logger *zap.Logger) *CacheInvalidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheInvalidator{cache: cache, logger: logger}
}

// EventTypes returns the write events that stale the report cache
func (h *CacheInvalidator) EventTypes() []string {
	return []string{
		ledger.EventTypeMovementRecorded,
		ledger.EventTypeStorePaymentRecorded,
		production.EventTypeBatchRecorded,
		planning.EventTypeRevenuePlanCreated,
		catalog.EventTypeProductCreated,
		network.EventTypeDistrictCreated,
		network.EventTypeDistrictUpdated,
		network.EventTypeDistrictDeleted,
		network.EventTypeStoreCreated,
		network.EventTypeStoreUpdated,
		network.EventTypeStoreDeleted,
	}
}

// Handle drops every cached report
func (h *CacheInvalidator) Handle(ctx context.Context, event shared.DomainEvent) error {
	if err := h.cache.DeleteByPrefix(ctx, CacheKeyPrefix); err != nil {
		h.logger.Warn("report cache invalidation failed",
			zap.String("event_type", event.EventType()),
			zap.Error(err))
		return err
	}
	h.logger.Debug("report cache invalidated",
		zap.String("event_type", event.EventType()))
	return nil
}
