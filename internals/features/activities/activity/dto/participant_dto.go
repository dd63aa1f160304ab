package dto

import (
	"time"

	"github.com/google/uuid"

	m "klubku_backend/internals/features/activities/activity/model"
)

/* =========================================================
   JOIN
   ========================================================= */

type JoinActivityRequest struct {
	// wajib untuk activity tim, diabaikan untuk activity individu
	TeamMembers []m.TeamMember `json:"team_members" validate:"omitempty,dive"`
}

type JoinActivityResponse struct {
	ParticipantID     uuid.UUID `json:"participant_id"`
	ParticipantStatus string    `json:"participant_status"`
	ParticipantsCount int64     `json:"participants_count"`
}

/* =========================================================
   CHECK-IN
   ========================================================= */

type CheckinRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

type CheckinResponse struct {
	CheckinStatus string    `json:"checkin_status"`
	CheckinTime   time.Time `json:"checkin_time"`
	DistanceM     float64   `json:"distance_m"`
}

type CheckinStatusResponse struct {
	HasCheckin    bool       `json:"has_checkin"`
	CheckinStatus *string    `json:"checkin_status,omitempty"`
	CheckinTime   *time.Time `json:"checkin_time,omitempty"`
}

/* =========================================================
   ADMIN APPROVAL
   ========================================================= */

type ApproveParticipantRequest struct {
	Status string  `json:"status" validate:"required,oneof=approved rejected"`
	Note   *string `json:"note" validate:"omitempty,max=500"`
}

type ApproveCheckinRequest struct {
	Status string  `json:"status" validate:"required,oneof=approved rejected"`
	Note   *string `json:"note" validate:"omitempty,max=500"`
}

/* =========================================================
   PARTICIPANT LIST (admin)
   ========================================================= */

type ParticipantResponse struct {
	m.ParticipantModel

	// ringkasan user hasil join ke tabel users
	UserName      string `json:"user_name" gorm:"column:user_name"`
	UserEmail     string `json:"user_email" gorm:"column:email"`
	UserStudentID string `json:"user_student_id" gorm:"column:student_id"`
	UserPoints    int    `json:"user_points" gorm:"column:points"`
}
