package report

import (
	"context"
	"time"

	"github.com/retailops/backend/internal/domain/shared"
)

// Snapshot keys for the daily warmed reports.
const (
	SnapshotKeyDebts     = "debts"
	SnapshotKeyStock     = "stock"
	SnapshotKeyFinance   = "finance"
	SnapshotKeyAnomalies = "anomalies"
)

// Snapshot is a report computed on schedule and persisted as marshaled
// rows. Snapshots give the dashboard a warm first paint after restarts
// and keep a daily trail of report outputs.
type Snapshot struct {
	shared.BaseEntity
	ReportKey   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_report_snapshots_key_day,priority:1"`
	SnapshotDay time.Time `gorm:"type:date;not null;uniqueIndex:idx_report_snapshots_key_day,priority:2"`
	Payload     []byte    `gorm:"type:jsonb;not null"`
	GeneratedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Snapshot) TableName() string {
	return "report_snapshots"
}

// NewSnapshot creates a snapshot of a report for a day
func NewSnapshot(reportKey string, day time.Time, payload []byte) (*Snapshot, error) {
	if reportKey == "" {
		return nil, shared.NewDomainError("INVALID_REPORT_KEY", "Snapshot report key is required")
	}
	if day.IsZero() {
		return nil, shared.NewDomainError("INVALID_DATE", "Snapshot day is required")
	}
	if len(payload) == 0 {
		return nil, shared.NewDomainError("INVALID_PAYLOAD", "Snapshot payload is required")
	}
	return &Snapshot{
		BaseEntity:  shared.NewBaseEntity(),
		ReportKey:   reportKey,
		SnapshotDay: DayStart(day),
		Payload:     payload,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// SnapshotRepository persists warmed report snapshots
type SnapshotRepository interface {
	// Upsert inserts the snapshot or replaces the payload for the same
	// report key and day.
	Upsert(ctx context.Context, snapshot *Snapshot) error
	FindByKeyAndDay(ctx context.Context, reportKey string, day time.Time) (*Snapshot, error)
	// FindLatest returns the most recent snapshot for a report key.
	FindLatest(ctx context.Context, reportKey string) (*Snapshot, error)
}
