// internals/features/products/exchange/service/exchange_service.go
//
// Exchange engine: debit saldo poin + decrement stok produk + catat
// exchange & ledger dalam SATU transaksi database. Decrement-nya tetap
// conditional UPDATE (guard balapan read-check vs write); kalau stok
// keburu habis, rollback transaksi otomatis mengembalikan saldo —
// tidak perlu kompensasi manual.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pointsModel "klubku_backend/internals/features/points/points_history/model"
	exchangeModel "klubku_backend/internals/features/products/exchange/model"
	productModel "klubku_backend/internals/features/products/product/model"
)

var (
	ErrInvalidQuantity   = errors.New("jumlah penukaran harus lebih dari 0")
	ErrProductNotFound   = errors.New("produk tidak ditemukan")
	ErrProductInactive   = errors.New("produk sudah tidak aktif")
	ErrInsufficientStock = errors.New("stok produk tidak mencukupi")
	ErrUserNotFound      = errors.New("user tidak ditemukan")

	// saldo/stok keburu berubah di antara pengecekan dan penulisan
	ErrBalanceConflict = errors.New("saldo poin berubah, silakan coba lagi")
	ErrStockConflict   = errors.New("stok produk berubah, silakan coba lagi")
)

// InsufficientPointsError membawa rincian kekurangan untuk ditampilkan UI.
type InsufficientPointsError struct {
	Required int `json:"required"`
	Current  int `json:"current"`
	Shortage int `json:"shortage"`
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("poin tidak mencukupi: butuh %d, punya %d, kurang %d",
		e.Required, e.Current, e.Shortage)
}

// ExchangeResult hasil penukaran yang sukses.
type ExchangeResult struct {
	Exchange        exchangeModel.ExchangeModel `json:"exchange"`
	RemainingPoints int                         `json:"remaining_points"`
}

// ExchangeProduct menjalankan satu penukaran untuk userID.
func ExchangeProduct(db *gorm.DB, userID, productID uuid.UUID, quantity int) (*ExchangeResult, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var product productModel.ProductModel
	if err := db.First(&product, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if product.ProductStatus != productModel.ProductStatusActive {
		return nil, ErrProductInactive
	}
	if product.ProductStock < quantity {
		return nil, ErrInsufficientStock
	}

	totalPoints := product.ProductPrice * quantity

	// pre-check saldo supaya respons kekurangan poin informatif;
	// otoritas sebenarnya tetap conditional UPDATE di bawah
	var currentPoints int
	row := db.Raw(`SELECT points FROM users WHERE id = ? AND deleted_at IS NULL`, userID).Scan(&currentPoints)
	if row.Error != nil {
		return nil, row.Error
	}
	if row.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	if currentPoints < totalPoints {
		return nil, &InsufficientPointsError{
			Required: totalPoints,
			Current:  currentPoints,
			Shortage: totalPoints - currentPoints,
		}
	}

	result := &ExchangeResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		// 1) Debit saldo, hanya kalau saldonya masih cukup saat write.
		var remaining int
		debit := tx.Raw(`
			UPDATE users
			SET points = points - ?, updated_at = NOW()
			WHERE id = ? AND points >= ? AND deleted_at IS NULL
			RETURNING points
		`, totalPoints, userID, totalPoints).Scan(&remaining)
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return ErrBalanceConflict
		}

		// 2) Decrement stok, hanya kalau stoknya masih cukup.
		//    Kalau gagal, rollback transaksi mengembalikan saldo.
		var newStock int
		dec := tx.Raw(`
			UPDATE products
			SET product_stock = product_stock - ?, product_updated_at = NOW()
			WHERE product_id = ? AND product_stock >= ? AND product_deleted_at IS NULL
			RETURNING product_stock
		`, quantity, productID, quantity).Scan(&newStock)
		if dec.Error != nil {
			return dec.Error
		}
		if dec.RowsAffected == 0 {
			return ErrStockConflict
		}

		// 3) Catat exchange.
		exchange := exchangeModel.ExchangeModel{
			ExchangeUserID:     userID,
			ExchangeProductID:  productID,
			ExchangeQuantity:   quantity,
			ExchangePointsUsed: totalPoints,
			ExchangeStatus:     exchangeModel.ExchangeStatusCompleted,
			ExchangeTime:       time.Now(),
		}
		if err := tx.Create(&exchange).Error; err != nil {
			return err
		}

		// 4) Baris ledger (spent).
		exchangeID := exchange.ExchangeID
		history := pointsModel.PointsHistoryModel{
			PointsHistoryUserID:      userID,
			PointsHistoryPoints:      totalPoints,
			PointsHistoryType:        pointsModel.PointsTypeSpent,
			PointsHistoryDescription: fmt.Sprintf("Tukar produk: %s x%d", product.ProductName, quantity),
			PointsHistoryExchangeID:  &exchangeID,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		result.Exchange = exchange
		result.RemainingPoints = remaining
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
