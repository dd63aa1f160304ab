package dto

import (
	"github.com/google/uuid"

	m "klubku_backend/internals/features/products/exchange/model"
)

type ExchangeRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

// ExchangeItemResponse: baris riwayat penukaran + ringkasan produk.
type ExchangeItemResponse struct {
	m.ExchangeModel

	ProductName  string  `json:"product_name" gorm:"column:product_name"`
	ProductImage *string `json:"product_image,omitempty" gorm:"column:product_image"`

	// hanya diisi di listing admin
	UserName      string `json:"user_name,omitempty" gorm:"column:user_name"`
	UserStudentID string `json:"user_student_id,omitempty" gorm:"column:student_id"`
}
