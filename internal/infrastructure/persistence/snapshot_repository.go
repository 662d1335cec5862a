package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/retailops/backend/internal/domain/report"
	"github.com/retailops/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSnapshotRepository implements SnapshotRepository using GORM
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a new GormSnapshotRepository
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// Upsert inserts the snapshot or replaces the payload for the same
// report key and day. Re-running a warm cycle overwrites rather than
// duplicates.
func (r *GormSnapshotRepository) Upsert(ctx context.Context, snapshot *report.Snapshot) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "report_key"}, {Name: "snapshot_day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"payload",
			"generated_at",
			"updated_at",
		}),
	}).Create(snapshot).Error
}

// FindByKeyAndDay finds the snapshot for a report key on a calendar day
func (r *GormSnapshotRepository) FindByKeyAndDay(ctx context.Context, reportKey string, day time.Time) (*report.Snapshot, error) {
	var snapshot report.Snapshot
	if err := r.db.WithContext(ctx).
		Where("report_key = ? AND snapshot_day >= ? AND snapshot_day <= ?",
			reportKey, dayStart(day), dayEnd(day)).
		First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

// FindLatest returns the most recent snapshot for a report key
func (r *GormSnapshotRepository) FindLatest(ctx context.Context, reportKey string) (*report.Snapshot, error) {
	var snapshot report.Snapshot
	if err := r.db.WithContext(ctx).
		Where("report_key = ?", reportKey).
		Order("snapshot_day DESC").
		First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &snapshot, nil
}

// Ensure GormSnapshotRepository implements SnapshotRepository
var _ report.SnapshotRepository = (*GormSnapshotRepository)(nil)
