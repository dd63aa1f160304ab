package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExchangeStatusPending   = "pending"
	ExchangeStatusCompleted = "completed"
	ExchangeStatusCancelled = "cancelled"
)

// ExchangeModel: catatan permanen satu penukaran poin → produk.
// Dibuat atomik bersama decrement saldo & stok; immutable setelahnya.
type ExchangeModel struct {
	ExchangeID        uuid.UUID `gorm:"column:exchange_id;type:uuid;default:gen_random_uuid();primaryKey" json:"exchange_id"`
	ExchangeUserID    uuid.UUID `gorm:"column:exchange_user_id;type:uuid;not null;index" json:"exchange_user_id"`
	ExchangeProductID uuid.UUID `gorm:"column:exchange_product_id;type:uuid;not null;index" json:"exchange_product_id"`

	ExchangeQuantity   int `gorm:"column:exchange_quantity;not null;check:exchange_quantity >= 1" json:"exchange_quantity"`
	ExchangePointsUsed int `gorm:"column:exchange_points_used;not null;check:exchange_points_used >= 0" json:"exchange_points_used"`

	ExchangeStatus string    `gorm:"column:exchange_status;type:varchar(20);not null;default:'completed';index" json:"exchange_status"`
	ExchangeTime   time.Time `gorm:"column:exchange_time;not null" json:"exchange_time"`
	ExchangeNote   *string   `gorm:"column:exchange_note;type:text" json:"exchange_note,omitempty"`

	ExchangeCreatedAt time.Time `gorm:"column:exchange_created_at;not null;autoCreateTime" json:"exchange_created_at"`
	ExchangeUpdatedAt time.Time `gorm:"column:exchange_updated_at;not null;autoUpdateTime" json:"exchange_updated_at"`
}

func (ExchangeModel) TableName() string { return "exchanges" }
