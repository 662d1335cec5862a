package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailops/backend/internal/domain/catalog"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/network"
)

func TestStockBalance(t *testing.T) {
	district := testDistrict("North")
	store := testStore("Main Street", &district.ID)
	bread := testProduct("Bread", 10, 100)
	feb10 := day(2025, time.February, 10)

	movement := func(date time.Time, op ledger.OperationType, qty float64) ledger.Movement {
		return testMovement(movementSpec{
			date: date, district: district.ID, store: &store.ID,
			product: bread.ID, op: op, qty: qty, price: 100,
		})
	}

	t.Run("load then sale nets the balance", func(t *testing.T) {
		rows := StockBalance(
			[]ledger.Movement{
				movement(feb10, ledger.OperationLoad, 50),
				movement(feb10, ledger.OperationSale, 20),
			},
			[]network.Store{store},
			[]catalog.Product{bread},
			StockFilter{},
		)
		require.Len(t, rows, 1)
		assert.True(t, decEq(rows[0].TotalIn, 50))
		assert.True(t, decEq(rows[0].TotalOut, 20))
		assert.True(t, decEq(rows[0].Balance, 30))
	})

	t.Run("sign table covers every stock-moving operation", func(t *testing.T) {
		rows := StockBalance(
			[]ledger.Movement{
				movement(feb10, ledger.OperationLoad, 100),
				movement(feb10, ledger.OperationReturn, 10),
				movement(feb10, ledger.OperationTransferIn, 5),
				movement(feb10, ledger.OperationSale, 40),
				movement(feb10, ledger.OperationBonus, 3),
				movement(feb10, ledger.OperationExchange, 2),
				movement(feb10, ledger.OperationWriteoff, 1),
				movement(feb10, ledger.OperationTransferOut, 4),
			},
			[]network.Store{store},
			[]catalog.Product{bread},
			StockFilter{},
		)
		require.Len(t, rows, 1)
		assert.True(t, decEq(rows[0].TotalIn, 115))
		assert.True(t, decEq(rows[0].TotalOut, 50))
		assert.True(t, decEq(rows[0].Balance, 65))
	})

	t.Run("movement without store is skipped", func(t *testing.T) {
		m := testMovement(movementSpec{
			date: feb10, district: district.ID, store: nil,
			product: bread.ID, op: ledger.OperationLoad, qty: 10, price: 0,
		})
		rows := StockBalance(
			[]ledger.Movement{m},
			[]network.Store{store},
			[]catalog.Product{bread},
			StockFilter{},
		)
		assert.Empty(t, rows)
	})

	t.Run("unknown store or product is dropped", func(t *testing.T) {
		ghostStore := uuid.New()
		unknownStore := testMovement(movementSpec{
			date: feb10, district: district.ID, store: &ghostStore,
			product: bread.ID, op: ledger.OperationLoad, qty: 10, price: 0,
		})
		unknownProduct := testMovement(movementSpec{
			date: feb10, district: district.ID, store: &store.ID,
			product: uuid.New(), op: ledger.OperationLoad, qty: 10, price: 0,
		})
		rows := StockBalance(
			[]ledger.Movement{unknownStore, unknownProduct},
			[]network.Store{store},
			[]catalog.Product{bread},
			StockFilter{},
		)
		assert.Empty(t, rows)
	})

	t.Run("cutoff includes the whole cutoff day", func(t *testing.T) {
		rows := StockBalance(
			[]ledger.Movement{
				movement(feb10, ledger.OperationLoad, 50),
				movement(day(2025, time.February, 11), ledger.OperationSale, 20),
			},
			[]network.Store{store},
			[]catalog.Product{bread},
			StockFilter{AsOf: datePtr(feb10)},
		)
		require.Len(t, rows, 1)
		assert.True(t, decEq(rows[0].Balance, 50))
	})

	t.Run("store filter narrows rows", func(t *testing.T) {
		other := testStore("Side Street", &district.ID)
		otherLoad := testMovement(movementSpec{
			date: feb10, district: district.ID, store: &other.ID,
			product: bread.ID, op: ledger.OperationLoad, qty: 5, price: 0,
		})
		rows := StockBalance(
			[]ledger.Movement{movement(feb10, ledger.OperationLoad, 50), otherLoad},
			[]network.Store{store, other},
			[]catalog.Product{bread},
			StockFilter{StoreID: &other.ID},
		)
		require.Len(t, rows, 1)
		assert.Equal(t, other.ID, rows[0].StoreID)
		assert.True(t, decEq(rows[0].Balance, 5))
	})

	t.Run("sorted by store then product name", func(t *testing.T) {
		alpha := testStore("Alpha", &district.ID)
		beta := testStore("Beta", &district.ID)
		milk := testProduct("Milk", 20, 60)
		mk := func(storeID uuid.UUID, productID uuid.UUID) ledger.Movement {
			return testMovement(movementSpec{
				date: feb10, district: district.ID, store: &storeID,
				product: productID, op: ledger.OperationLoad, qty: 1, price: 0,
			})
		}
		rows := StockBalance(
			[]ledger.Movement{
				mk(beta.ID, bread.ID),
				mk(alpha.ID, milk.ID),
				mk(alpha.ID, bread.ID),
			},
			[]network.Store{alpha, beta},
			[]catalog.Product{bread, milk},
			StockFilter{},
		)
		require.Len(t, rows, 3)
		assert.Equal(t, "Alpha", rows[0].StoreName)
		assert.Equal(t, "Bread", rows[0].ProductName)
		assert.Equal(t, "Alpha", rows[1].StoreName)
		assert.Equal(t, "Milk", rows[1].ProductName)
		assert.Equal(t, "Beta", rows[2].StoreName)
	})

	t.Run("idempotent over the same input", func(t *testing.T) {
		movements := []ledger.Movement{
			movement(feb10, ledger.OperationLoad, 50),
			movement(feb10, ledger.OperationSale, 20),
		}
		first := StockBalance(movements, []network.Store{store}, []catalog.Product{bread}, StockFilter{})
		second := StockBalance(movements, []network.Store{store}, []catalog.Product{bread}, StockFilter{})
		assert.Equal(t, first, second)
	})
}
