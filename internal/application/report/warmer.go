package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/retailops/backend/internal/domain/report"
)

// SnapshotWarmer recomputes the headline reports with open filters and
// persists the marshaled rows. The scheduler runs it once per day; the
// snapshots double as a warm start for dashboards after a cold deploy.
type SnapshotWarmer struct {
	service   *Service
	snapshots report.SnapshotRepository
	logger    *zap.Logger
}

// NewSnapshotWarmer creates a new SnapshotWarmer
func NewSnapshotWarmer(service *Service, snapshots report.SnapshotRepository, logger *zap.Logger) *SnapshotWarmer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotWarmer{service: service, snapshots: snapshots, logger: logger}
}

// WarmDaily computes and stores the unfiltered report set for the given
// day. Each report is warmed independently; one failure does not stop
// the others.
func (w *SnapshotWarmer) WarmDaily(ctx context.Context, day time.Time) error {
	var firstErr error

	warm := func(key string, compute func(context.Context) (any, error)) {
		rows, err := compute(ctx)
		if err != nil {
			w.logger.Error("report snapshot compute failed", zap.String("report", key), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("warm %s: %w", key, err)
			}
			return
		}
		payload, err := json.Marshal(rows)
		if err != nil {
			w.logger.Error("report snapshot marshal failed", zap.String("report", key), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("warm %s: %w", key, err)
			}
			return
		}
		snapshot, err := report.NewSnapshot(key, day, payload)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("warm %s: %w", key, err)
			}
			return
		}
		if err := w.snapshots.Upsert(ctx, snapshot); err != nil {
			w.logger.Error("report snapshot write failed", zap.String("report", key), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("warm %s: %w", key, err)
			}
			return
		}
		w.logger.Info("report snapshot warmed",
			zap.String("report", key),
			zap.String("day", report.DayKey(day)),
			zap.Int("bytes", len(payload)))
	}

	warm(report.SnapshotKeyDebts, func(ctx context.Context) (any, error) {
		return w.service.Debts(ctx, report.DebtFilter{})
	})
	warm(report.SnapshotKeyStock, func(ctx context.Context) (any, error) {
		return w.service.Stock(ctx, report.StockFilter{})
	})
	warm(report.SnapshotKeyFinance, func(ctx context.Context) (any, error) {
		return w.service.Finance(ctx, report.FinanceFilter{})
	})
	warm(report.SnapshotKeyAnomalies, func(ctx context.Context) (any, error) {
		return w.service.Anomalies(ctx, report.AnomalyFilter{})
	})

	return firstErr
}
