package scheduler

import (
	"context"

	"go.uber.org/zap"

	reportapp "github.com/retailops/backend/internal/application/report"
	"github.com/retailops/backend/internal/infrastructure/storage"
)

// SnapshotExecutor runs a snapshot warm-up job through the report warmer
// and, when an archiver is configured, copies the results to object storage.
type SnapshotExecutor struct {
	warmer   *reportapp.SnapshotWarmer
	archiver *storage.SnapshotArchiver
	logger   *zap.Logger
}

// NewSnapshotExecutor creates a new SnapshotExecutor. The archiver may be
// nil when S3 archiving is disabled.
func NewSnapshotExecutor(warmer *reportapp.SnapshotWarmer, archiver *storage.SnapshotArchiver, logger *zap.Logger) *SnapshotExecutor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotExecutor{warmer: warmer, archiver: archiver, logger: logger}
}

// Execute warms the report snapshots for the job's day, then archives them.
func (e *SnapshotExecutor) Execute(ctx context.Context, job *Job) error {
	if err := e.warmer.WarmDaily(ctx, job.Day); err != nil {
		return err
	}

	if e.archiver != nil {
		// Archival failure is logged but does not fail the job: the
		// snapshots are already persisted in the database.
		if err := e.archiver.ArchiveDay(ctx, job.Day); err != nil {
			e.logger.Warn("snapshot archive failed", zap.Error(err))
		}
	}

	return nil
}
