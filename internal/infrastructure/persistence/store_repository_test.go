package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/network"
	"github.com/retailops/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockStoreRepository creates a GormStoreRepository with a mocked SQL connection
func newMockStoreRepository(t *testing.T) (*GormStoreRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormStoreRepository(gormDB), mock, mockDB
}

var storeColumns = []string{"id", "created_at", "updated_at", "name", "district_id", "address"}

func TestGormStoreRepository_FindByID(t *testing.T) {
	t.Run("finds existing store", func(t *testing.T) {
		repo, mock, mockDB := newMockStoreRepository(t)
		defer mockDB.Close()

		storeID := uuid.New()
		districtID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows(storeColumns).
			AddRow(storeID, now, now, "Corner Shop", districtID, "12 Main St")

		mock.ExpectQuery(`SELECT \* FROM "stores" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(storeID, 1).
			WillReturnRows(rows)

		store, err := repo.FindByID(context.Background(), storeID)

		assert.NoError(t, err)
		require.NotNil(t, store)
		assert.Equal(t, "Corner Shop", store.Name)
		require.NotNil(t, store.DistrictID)
		assert.Equal(t, districtID, *store.DistrictID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing store", func(t *testing.T) {
		repo, mock, mockDB := newMockStoreRepository(t)
		defer mockDB.Close()

		storeID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "stores" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(storeID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		store, err := repo.FindByID(context.Background(), storeID)

		assert.Error(t, err)
		assert.Nil(t, store)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormStoreRepository_FindByDistrict(t *testing.T) {
	t.Run("returns stores of the district ordered by name", func(t *testing.T) {
		repo, mock, mockDB := newMockStoreRepository(t)
		defer mockDB.Close()

		districtID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows(storeColumns).
			AddRow(uuid.New(), now, now, "Central", districtID, "").
			AddRow(uuid.New(), now, now, "East End", districtID, "")

		mock.ExpectQuery(`SELECT \* FROM "stores" WHERE district_id = \$1 ORDER BY name ASC`).
			WithArgs(districtID).
			WillReturnRows(rows)

		stores, err := repo.FindByDistrict(context.Background(), districtID)

		assert.NoError(t, err)
		assert.Len(t, stores, 2)
		assert.Equal(t, "Central", stores[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStoreRepository_UnassignDistrict(t *testing.T) {
	t.Run("clears district on every store and reports the count", func(t *testing.T) {
		repo, mock, mockDB := newMockStoreRepository(t)
		defer mockDB.Close()

		districtID := uuid.New()

		mock.ExpectExec(`UPDATE "stores" SET "district_id"=\$1`).
			WithArgs(nil, sqlmock.AnyArg(), districtID).
			WillReturnResult(sqlmock.NewResult(0, 3))

		touched, err := repo.UnassignDistrict(context.Background(), districtID)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), touched)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports zero for a district without stores", func(t *testing.T) {
		repo, mock, mockDB := newMockStoreRepository(t)
		defer mockDB.Close()

		districtID := uuid.New()

		mock.ExpectExec(`UPDATE "stores" SET "district_id"=\$1`).
			WithArgs(nil, sqlmock.AnyArg(), districtID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		touched, err := repo.UnassignDistrict(context.Background(), districtID)

		assert.NoError(t, err)
		assert.Zero(t, touched)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStoreRepository_Save(t *testing.T) {
	t.Run("saves store", func(t *testing.T) {
		repo, mock, mockDB := newMockStoreRepository(t)
		defer mockDB.Close()

		store, err := network.NewStore("Corner Shop", nil, "12 Main St")
		require.NoError(t, err)

		mock.ExpectExec(`UPDATE "stores" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Save(context.Background(), store)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStoreRepository_Delete(t *testing.T) {
	t.Run("deletes existing store", func(t *testing.T) {
		repo, mock, mockDB := newMockStoreRepository(t)
		defer mockDB.Close()

		storeID := uuid.New()

		mock.ExpectExec(`DELETE FROM "stores" WHERE id = \$1`).
			WithArgs(storeID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), storeID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing store", func(t *testing.T) {
		repo, mock, mockDB := newMockStoreRepository(t)
		defer mockDB.Close()

		storeID := uuid.New()

		mock.ExpectExec(`DELETE FROM "stores" WHERE id = \$1`).
			WithArgs(storeID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), storeID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormStoreRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements StoreRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockStoreRepository(t)
		defer mockDB.Close()

		var _ network.StoreRepository = repo
	})
}
