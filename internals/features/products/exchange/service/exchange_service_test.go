package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	productModel "klubku_backend/internals/features/products/product/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func productRows(id uuid.UUID, price, stock int, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"product_id", "product_name", "product_price", "product_stock", "product_status",
	}).AddRow(id, "Tumbler Klub", price, stock, status)
}

func expectProductLookup(mock sqlmock.Sqlmock, id uuid.UUID, rows *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE product_id =`).
		WillReturnRows(rows)
}

func expectBalancePrecheck(mock sqlmock.Sqlmock, userID uuid.UUID, points int) {
	mock.ExpectQuery(`SELECT points FROM users WHERE id =`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(points))
}

func TestExchangeProduct(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	t.Run("penukaran sukses: debit, decrement, catat", func(t *testing.T) {
		db, mock := newMockDB(t)

		// harga 50 x 2 = 100 poin, saldo 120, stok 5
		expectProductLookup(mock, productID, productRows(productID, 50, 5, productModel.ProductStatusActive))
		expectBalancePrecheck(mock, userID, 120)

		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE users\s+SET points = points -`).
			WithArgs(100, userID, 100).
			WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(20))
		mock.ExpectQuery(`UPDATE products\s+SET product_stock = product_stock -`).
			WithArgs(2, productID, 2).
			WillReturnRows(sqlmock.NewRows([]string{"product_stock"}).AddRow(3))
		mock.ExpectQuery(`INSERT INTO "exchanges"`).
			WillReturnRows(sqlmock.NewRows([]string{"exchange_id"}).AddRow(uuid.New()))
		mock.ExpectQuery(`INSERT INTO "points_history"`).
			WillReturnRows(sqlmock.NewRows([]string{"points_history_id"}).AddRow(uuid.New()))
		mock.ExpectCommit()

		result, err := ExchangeProduct(db, userID, productID, 2)
		require.NoError(t, err)
		assert.Equal(t, 20, result.RemainingPoints)
		assert.Equal(t, 2, result.Exchange.ExchangeQuantity)
		assert.Equal(t, 100, result.Exchange.ExchangePointsUsed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("poin tidak cukup: rincian kekurangan, tanpa mutasi", func(t *testing.T) {
		db, mock := newMockDB(t)

		expectProductLookup(mock, productID, productRows(productID, 50, 5, productModel.ProductStatusActive))
		expectBalancePrecheck(mock, userID, 30)

		_, err := ExchangeProduct(db, userID, productID, 2)
		require.Error(t, err)

		var insufficientErr *InsufficientPointsError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, 100, insufficientErr.Required)
		assert.Equal(t, 30, insufficientErr.Current)
		assert.Equal(t, 70, insufficientErr.Shortage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stok keburu habis saat write: rollback kembalikan saldo", func(t *testing.T) {
		db, mock := newMockDB(t)

		expectProductLookup(mock, productID, productRows(productID, 50, 5, productModel.ProductStatusActive))
		expectBalancePrecheck(mock, userID, 120)

		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE users\s+SET points = points -`).
			WithArgs(100, userID, 100).
			WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(20))
		// decrement kalah balapan: 0 baris
		mock.ExpectQuery(`UPDATE products\s+SET product_stock = product_stock -`).
			WithArgs(2, productID, 2).
			WillReturnRows(sqlmock.NewRows([]string{"product_stock"}))
		mock.ExpectRollback()

		_, err := ExchangeProduct(db, userID, productID, 2)
		assert.ErrorIs(t, err, ErrStockConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("saldo keburu berubah saat write", func(t *testing.T) {
		db, mock := newMockDB(t)

		expectProductLookup(mock, productID, productRows(productID, 50, 5, productModel.ProductStatusActive))
		expectBalancePrecheck(mock, userID, 120)

		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE users\s+SET points = points -`).
			WithArgs(100, userID, 100).
			WillReturnRows(sqlmock.NewRows([]string{"points"}))
		mock.ExpectRollback()

		_, err := ExchangeProduct(db, userID, productID, 2)
		assert.ErrorIs(t, err, ErrBalanceConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("produk tidak ditemukan", func(t *testing.T) {
		db, mock := newMockDB(t)

		expectProductLookup(mock, productID, sqlmock.NewRows([]string{"product_id"}))

		_, err := ExchangeProduct(db, userID, productID, 1)
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("produk nonaktif", func(t *testing.T) {
		db, mock := newMockDB(t)

		expectProductLookup(mock, productID, productRows(productID, 50, 5, productModel.ProductStatusInactive))

		_, err := ExchangeProduct(db, userID, productID, 1)
		assert.ErrorIs(t, err, ErrProductInactive)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stok kurang dari jumlah diminta", func(t *testing.T) {
		db, mock := newMockDB(t)

		expectProductLookup(mock, productID, productRows(productID, 50, 1, productModel.ProductStatusActive))

		_, err := ExchangeProduct(db, userID, productID, 2)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("jumlah nol ditolak tanpa sentuh DB", func(t *testing.T) {
		db, mock := newMockDB(t)

		_, err := ExchangeProduct(db, userID, productID, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
