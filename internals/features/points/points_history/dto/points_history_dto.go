package dto

import (
	m "klubku_backend/internals/features/points/points_history/model"
)

// PointsHistoryItemResponse: baris ledger + konteks activity (kalau ada).
type PointsHistoryItemResponse struct {
	m.PointsHistoryModel

	ActivityTitle *string `json:"activity_title,omitempty" gorm:"column:activity_title"`

	// hanya diisi di listing admin
	UserName      string `json:"user_name,omitempty" gorm:"column:user_name"`
	UserStudentID string `json:"user_student_id,omitempty" gorm:"column:student_id"`
}
