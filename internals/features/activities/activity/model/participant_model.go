// internals/features/activities/activity/model/participant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status pendaftaran & check-in participant
const (
	ParticipantStatusPending  = "pending"
	ParticipantStatusApproved = "approved"
	ParticipantStatusRejected = "rejected"
)

// TeamMember entri anggota tim (disimpan sebagai JSONB).
type TeamMember struct {
	Name      string `json:"name"`
	StudentID string `json:"student_id"`
}

// ParticipantModel: satu baris per (activity, user). Unique index
// uq_participant_activity_user menegakkan "tidak boleh daftar dua kali";
// daftar ulang setelah rejected memakai baris yang sama.
// participant_points_awarded adalah guard idempotensi settlement —
// flip-nya selalu lewat conditional UPDATE, bukan save utuh.
type ParticipantModel struct {
	ParticipantID         uuid.UUID `gorm:"column:participant_id;type:uuid;default:gen_random_uuid();primaryKey" json:"participant_id"`
	ParticipantActivityID uuid.UUID `gorm:"column:participant_activity_id;type:uuid;not null;uniqueIndex:uq_participant_activity_user;index" json:"participant_activity_id"`
	ParticipantUserID     uuid.UUID `gorm:"column:participant_user_id;type:uuid;not null;uniqueIndex:uq_participant_activity_user;index" json:"participant_user_id"`

	ParticipantStatus   string    `gorm:"column:participant_status;type:varchar(20);not null;default:'pending'" json:"participant_status"`
	ParticipantJoinTime time.Time `gorm:"column:participant_join_time;not null" json:"participant_join_time"`
	ParticipantNote     *string   `gorm:"column:participant_note;type:text" json:"participant_note,omitempty"`

	ParticipantTeamMembers datatypes.JSON `gorm:"column:participant_team_members;type:jsonb" json:"participant_team_members,omitempty"`

	// Sub-state check-in: NULL = belum pernah check-in
	ParticipantCheckinStatus *string    `gorm:"column:participant_checkin_status;type:varchar(20)" json:"participant_checkin_status,omitempty"`
	ParticipantCheckinTime   *time.Time `gorm:"column:participant_checkin_time" json:"participant_checkin_time,omitempty"`
	ParticipantCheckinLat    *float64   `gorm:"column:participant_checkin_lat" json:"participant_checkin_lat,omitempty"`
	ParticipantCheckinLng    *float64   `gorm:"column:participant_checkin_lng" json:"participant_checkin_lng,omitempty"`
	ParticipantCheckinNote   *string    `gorm:"column:participant_checkin_note;type:text" json:"participant_checkin_note,omitempty"`

	ParticipantPointsAwarded bool `gorm:"column:participant_points_awarded;not null;default:false" json:"participant_points_awarded"`

	ParticipantCreatedAt time.Time `gorm:"column:participant_created_at;not null;autoCreateTime" json:"participant_created_at"`
	ParticipantUpdatedAt time.Time `gorm:"column:participant_updated_at;not null;autoUpdateTime" json:"participant_updated_at"`
}

func (ParticipantModel) TableName() string { return "activity_participants" }

// HasCheckedIn true kalau check-in sudah disetujui.
func (p *ParticipantModel) HasCheckedIn() bool {
	return p.ParticipantCheckinStatus != nil && *p.ParticipantCheckinStatus == ParticipantStatusApproved
}

// IsRegistered true untuk status yang masih menghitung sebagai terdaftar
// (pending/approved). Rejected TIDAK menghalangi daftar ulang — asimetri
// ini disengaja.
func (p *ParticipantModel) IsRegistered() bool {
	return p.ParticipantStatus == ParticipantStatusPending ||
		p.ParticipantStatus == ParticipantStatusApproved
}
