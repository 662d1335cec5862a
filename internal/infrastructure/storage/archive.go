package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"go.uber.org/zap"

	"github.com/retailops/backend/internal/domain/report"
	"github.com/retailops/backend/internal/domain/shared"
)

// SnapshotArchiver copies warmed report snapshots into object storage.
// The archive gives the daily report trail a retention home outside the
// database; a missing snapshot for a day is skipped, not an error.
type SnapshotArchiver struct {
	store     ObjectStore
	snapshots report.SnapshotRepository
	prefix    string
	logger    *zap.Logger
}

// NewSnapshotArchiver creates a new SnapshotArchiver
func NewSnapshotArchiver(store ObjectStore, snapshots report.SnapshotRepository, prefix string, logger *zap.Logger) *SnapshotArchiver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotArchiver{
		store:     store,
		snapshots: snapshots,
		prefix:    prefix,
		logger:    logger,
	}
}

// ArchiveDay uploads every warmed snapshot for the given day. One failed
// upload does not stop the rest; the first error is returned.
func (a *SnapshotArchiver) ArchiveDay(ctx context.Context, day time.Time) error {
	keys := []string{
		report.SnapshotKeyDebts,
		report.SnapshotKeyStock,
		report.SnapshotKeyFinance,
		report.SnapshotKeyAnomalies,
	}

	var firstErr error
	for _, key := range keys {
		snapshot, err := a.snapshots.FindByKeyAndDay(ctx, key, day)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				a.logger.Debug("no snapshot to archive",
					zap.String("report", key),
					zap.String("day", report.DayKey(day)))
				continue
			}
			if firstErr == nil {
				firstErr = fmt.Errorf("load snapshot %s: %w", key, err)
			}
			continue
		}

		objectKey := a.objectKey(key, day)
		if err := a.store.Put(ctx, objectKey, snapshot.Payload, "application/json"); err != nil {
			a.logger.Error("snapshot archive upload failed",
				zap.String("report", key),
				zap.String("object_key", objectKey),
				zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("archive snapshot %s: %w", key, err)
			}
			continue
		}

		a.logger.Info("snapshot archived",
			zap.String("report", key),
			zap.String("object_key", objectKey),
			zap.Int("bytes", len(snapshot.Payload)))
	}

	return firstErr
}

// ArchiveURL returns a presigned download URL for an archived snapshot.
func (a *SnapshotArchiver) ArchiveURL(ctx context.Context, reportKey string, day time.Time, expiresIn time.Duration) (string, error) {
	url, _, err := a.store.PresignDownload(ctx, a.objectKey(reportKey, day), expiresIn)
	return url, err
}

func (a *SnapshotArchiver) objectKey(reportKey string, day time.Time) string {
	return path.Join(a.prefix, "snapshots", reportKey, report.DayKey(day)+".json")
}
