package storage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/retailops/backend/internal/domain/report"
	"github.com/retailops/backend/internal/domain/shared"
)

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: make(map[string][]byte)}
}

func (m *memoryStore) Put(_ context.Context, key string, data []byte, _ string) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *memoryStore) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok, nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memoryStore) PresignDownload(_ context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	return "https://archive.test/" + key, time.Now().Add(expiresIn), nil
}

type mockSnapshotRepository struct {
	mock.Mock
}

func (m *mockSnapshotRepository) Upsert(ctx context.Context, snapshot *report.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *mockSnapshotRepository) FindByKeyAndDay(ctx context.Context, reportKey string, day time.Time) (*report.Snapshot, error) {
	args := m.Called(ctx, reportKey, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Snapshot), args.Error(1)
}

func (m *mockSnapshotRepository) FindLatest(ctx context.Context, reportKey string) (*report.Snapshot, error) {
	args := m.Called(ctx, reportKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Snapshot), args.Error(1)
}

func TestSnapshotArchiverArchiveDay(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("uploads every available snapshot", func(t *testing.T) {
		store := newMemoryStore()
		repo := new(mockSnapshotRepository)
		for _, key := range []string{report.SnapshotKeyDebts, report.SnapshotKeyStock, report.SnapshotKeyFinance, report.SnapshotKeyAnomalies} {
			snapshot, err := report.NewSnapshot(key, day, []byte(`[{"row":1}]`))
			require.NoError(t, err)
			repo.On("FindByKeyAndDay", mock.Anything, key, day).Return(snapshot, nil)
		}

		archiver := NewSnapshotArchiver(store, repo, "retailops", nil)
		require.NoError(t, archiver.ArchiveDay(context.Background(), day))

		assert.Len(t, store.objects, 4)
		assert.Contains(t, store.objects, "retailops/snapshots/debts/2026-03-14.json")
		assert.Equal(t, []byte(`[{"row":1}]`), store.objects["retailops/snapshots/debts/2026-03-14.json"])
	})

	t.Run("skips missing snapshots", func(t *testing.T) {
		store := newMemoryStore()
		repo := new(mockSnapshotRepository)
		debts, err := report.NewSnapshot(report.SnapshotKeyDebts, day, []byte(`[]`))
		require.NoError(t, err)
		repo.On("FindByKeyAndDay", mock.Anything, report.SnapshotKeyDebts, day).Return(debts, nil)
		repo.On("FindByKeyAndDay", mock.Anything, mock.Anything, day).Return(nil, shared.ErrNotFound)

		archiver := NewSnapshotArchiver(store, repo, "", nil)
		require.NoError(t, archiver.ArchiveDay(context.Background(), day))

		assert.Len(t, store.objects, 1)
		assert.Contains(t, store.objects, "snapshots/debts/2026-03-14.json")
	})

	t.Run("reports first upload failure but continues", func(t *testing.T) {
		store := newMemoryStore()
		store.putErr = errors.New("bucket unavailable")
		repo := new(mockSnapshotRepository)
		for _, key := range []string{report.SnapshotKeyDebts, report.SnapshotKeyStock, report.SnapshotKeyFinance, report.SnapshotKeyAnomalies} {
			snapshot, err := report.NewSnapshot(key, day, []byte(`[]`))
			require.NoError(t, err)
			repo.On("FindByKeyAndDay", mock.Anything, key, day).Return(snapshot, nil)
		}

		archiver := NewSnapshotArchiver(store, repo, "", nil)
		err := archiver.ArchiveDay(context.Background(), day)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket unavailable")
		repo.AssertNumberOfCalls(t, "FindByKeyAndDay", 4)
	})
}

func TestSnapshotArchiverArchiveURL(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	archiver := NewSnapshotArchiver(newMemoryStore(), new(mockSnapshotRepository), "retailops", nil)

	url, err := archiver.ArchiveURL(context.Background(), report.SnapshotKeyFinance, day, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "https://archive.test/retailops/snapshots/finance/2026-03-14.json", url)
}

func TestNoopStore(t *testing.T) {
	store := NewNoopStore()
	ctx := context.Background()

	assert.NoError(t, store.Put(ctx, "k", []byte("v"), "text/plain"))

	exists, err := store.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, store.Delete(ctx, "k"))

	_, _, err = store.PresignDownload(ctx, "k", time.Minute)
	assert.Error(t, err)

	assert.Error(t, store.Put(ctx, "", nil, ""))
}
