package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/shared"
	"github.com/retailops/backend/tests/testutil"
)

var storePaymentColumns = []string{
	"id", "created_at", "updated_at", "date", "district_id", "store_id",
	"amount", "method", "comment",
}

func TestGormStorePaymentRepository_Save(t *testing.T) {
	t.Run("inserts a payment", func(t *testing.T) {
		db := testutil.NewMockDB(t)
		defer db.Close()
		repo := NewGormStorePaymentRepository(db.DB)

		districtID := testutil.TestDistrictID()
		payment, err := ledger.NewStorePayment(
			time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
			&districtID, testutil.TestStoreID(),
			decimal.NewFromInt(250), "cash", "",
		)
		require.NoError(t, err)

		db.Mock.ExpectExec(`INSERT INTO "store_payments"`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err = repo.Save(context.Background(), payment)

		assert.NoError(t, err)
		db.ExpectationsWereMet(t)
	})
}

func TestGormStorePaymentRepository_FindByID(t *testing.T) {
	t.Run("finds existing payment", func(t *testing.T) {
		db := testutil.NewMockDB(t)
		defer db.Close()
		repo := NewGormStorePaymentRepository(db.DB)

		paymentID := uuid.New()
		storeID := testutil.TestStoreID()
		now := time.Now()
		day := time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows(storePaymentColumns).
			AddRow(paymentID, now, now, day, nil, storeID, "250", "cash", "weekly settlement")

		db.Mock.ExpectQuery(`SELECT \* FROM "store_payments" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(paymentID, 1).
			WillReturnRows(rows)

		payment, err := repo.FindByID(context.Background(), paymentID)

		assert.NoError(t, err)
		require.NotNil(t, payment)
		assert.Equal(t, paymentID, payment.ID)
		assert.Equal(t, storeID, payment.StoreID)
		assert.Nil(t, payment.DistrictID)
		assert.Equal(t, "250", payment.Amount.String())
		db.ExpectationsWereMet(t)
	})

	t.Run("returns ErrNotFound for missing payment", func(t *testing.T) {
		db := testutil.NewMockDB(t)
		defer db.Close()
		repo := NewGormStorePaymentRepository(db.DB)

		paymentID := uuid.New()

		db.Mock.ExpectQuery(`SELECT \* FROM "store_payments" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(paymentID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		payment, err := repo.FindByID(context.Background(), paymentID)

		assert.Error(t, err)
		assert.Nil(t, payment)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormStorePaymentRepository_FindForPeriod(t *testing.T) {
	t.Run("applies the full calendar-day window", func(t *testing.T) {
		db := testutil.NewMockDB(t)
		defer db.Close()
		repo := NewGormStorePaymentRepository(db.DB)

		from := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
		to := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)
		storeID := testutil.TestStoreID()
		now := time.Now()

		rows := sqlmock.NewRows(storePaymentColumns).
			AddRow(uuid.New(), now, now, from, nil, storeID, "100", "cash", "").
			AddRow(uuid.New(), now, now, to, nil, storeID, "150", "card", "")

		db.Mock.ExpectQuery(`SELECT \* FROM "store_payments" WHERE date >= \$1 AND date <= \$2 AND store_id = \$3 ORDER BY date ASC, created_at ASC`).
			WithArgs(dayStart(from), dayEnd(to), storeID).
			WillReturnRows(rows)

		payments, err := repo.FindForPeriod(context.Background(), ledger.PeriodFilter{
			From:    &from,
			To:      &to,
			StoreID: &storeID,
		})

		assert.NoError(t, err)
		require.Len(t, payments, 2)
		assert.Equal(t, "100", payments[0].Amount.String())
		db.ExpectationsWereMet(t)
	})

	t.Run("empty filter fetches everything", func(t *testing.T) {
		db := testutil.NewMockDB(t)
		defer db.Close()
		repo := NewGormStorePaymentRepository(db.DB)

		db.Mock.ExpectQuery(`SELECT \* FROM "store_payments" ORDER BY date ASC, created_at ASC`).
			WillReturnRows(sqlmock.NewRows(storePaymentColumns))

		payments, err := repo.FindForPeriod(context.Background(), ledger.PeriodFilter{})

		assert.NoError(t, err)
		assert.Empty(t, payments)
		db.ExpectationsWereMet(t)
	})
}

func TestGormStorePaymentRepository_Count(t *testing.T) {
	t.Run("counts payments", func(t *testing.T) {
		db := testutil.NewMockDB(t)
		defer db.Close()
		repo := NewGormStorePaymentRepository(db.DB)

		db.Mock.ExpectQuery(`SELECT count\(\*\) FROM "store_payments"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.Count(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(7), count)
		db.ExpectationsWereMet(t)
	})
}
