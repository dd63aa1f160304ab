package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	PointsTypeEarned = "earned"
	PointsTypeSpent  = "spent"
)

// PointsHistoryModel adalah ledger append-only: satu baris per award
// atau spend, immutable setelah dibuat. Kolom points menyimpan magnitude;
// arahnya ada di points_history_type.
type PointsHistoryModel struct {
	PointsHistoryID     uuid.UUID `gorm:"column:points_history_id;type:uuid;default:gen_random_uuid();primaryKey" json:"points_history_id"`
	PointsHistoryUserID uuid.UUID `gorm:"column:points_history_user_id;type:uuid;not null;index" json:"points_history_user_id"`

	PointsHistoryPoints      int    `gorm:"column:points_history_points;not null;check:points_history_points >= 0" json:"points_history_points"`
	PointsHistoryType        string `gorm:"column:points_history_type;type:varchar(10);not null;index" json:"points_history_type"`
	PointsHistoryDescription string `gorm:"column:points_history_description;type:text;not null" json:"points_history_description"`

	PointsHistoryActivityID *uuid.UUID `gorm:"column:points_history_activity_id;type:uuid;index" json:"points_history_activity_id,omitempty"`
	PointsHistoryExchangeID *uuid.UUID `gorm:"column:points_history_exchange_id;type:uuid" json:"points_history_exchange_id,omitempty"`

	PointsHistoryCreatedAt time.Time `gorm:"column:points_history_created_at;not null;autoCreateTime;index:,sort:desc" json:"points_history_created_at"`
}

func (PointsHistoryModel) TableName() string { return "points_history" }
