package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// ProductModel: katalog produk yang bisa ditukar poin.
// product_stock hanya turun lewat conditional decrement di exchange engine.
type ProductModel struct {
	ProductID          uuid.UUID `gorm:"column:product_id;type:uuid;default:gen_random_uuid();primaryKey" json:"product_id"`
	ProductName        string    `gorm:"column:product_name;type:varchar(120);not null" json:"product_name"`
	ProductDescription string    `gorm:"column:product_description;type:text" json:"product_description"`
	ProductImage       *string   `gorm:"column:product_image;type:text" json:"product_image,omitempty"`

	// harga dalam poin
	ProductPrice int `gorm:"column:product_price;not null;check:product_price >= 0" json:"product_price"`
	ProductStock int `gorm:"column:product_stock;not null;default:0;check:product_stock >= 0" json:"product_stock"`

	ProductStatus string `gorm:"column:product_status;type:varchar(20);not null;default:'active'" json:"product_status"`

	ProductCreatedAt time.Time      `gorm:"column:product_created_at;not null;autoCreateTime" json:"product_created_at"`
	ProductUpdatedAt time.Time      `gorm:"column:product_updated_at;not null;autoUpdateTime" json:"product_updated_at"`
	ProductDeletedAt gorm.DeletedAt `gorm:"column:product_deleted_at;index" json:"product_deleted_at,omitempty"`
}

func (ProductModel) TableName() string { return "products" }
