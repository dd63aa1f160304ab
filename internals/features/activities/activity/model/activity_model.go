// internals/features/activities/activity/model/activity_model.go
package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status activity
const (
	ActivityStatusDraft     = "draft"
	ActivityStatusPublished = "published"
	ActivityStatusCancelled = "cancelled"
	ActivityStatusCompleted = "completed"
)

// NOTE:
// - participants TIDAK embedded di sini; mereka tabel sendiri
//   (activity_participants) dengan unique index per (activity, user)
//   supaya mutasi per-participant bisa atomic (conditional UPDATE),
//   bukan rewrite satu dokumen besar.
// - radius check-in adalah field per-activity, default diisi controller
//   dari config (CHECKIN_RADIUS_M).
type ActivityModel struct {
	ActivityID          uuid.UUID `gorm:"column:activity_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_id"`
	ActivityTitle       string    `gorm:"column:activity_title;type:varchar(200);not null" json:"activity_title"`
	ActivityDescription string    `gorm:"column:activity_description;type:text;not null" json:"activity_description"`

	// Kategori activity (referensi ke activity_types)
	ActivityTypeID uuid.UUID `gorm:"column:activity_type_id;type:uuid;not null;index" json:"activity_type_id"`

	// Reward poin per participant yang disetujui
	ActivityPoints int `gorm:"column:activity_points;not null;check:activity_points >= 0" json:"activity_points"`

	ActivityStartTime           time.Time `gorm:"column:activity_start_time;not null" json:"activity_start_time"`
	ActivityEndTime             time.Time `gorm:"column:activity_end_time;not null" json:"activity_end_time"`
	ActivityRegistrationEndTime time.Time `gorm:"column:activity_registration_end_time;not null" json:"activity_registration_end_time"`

	ActivityLocation  *string  `gorm:"column:activity_location;type:varchar(255)" json:"activity_location,omitempty"`
	ActivityLatitude  *float64 `gorm:"column:activity_latitude" json:"activity_latitude,omitempty"`
	ActivityLongitude *float64 `gorm:"column:activity_longitude" json:"activity_longitude,omitempty"`

	ActivityStatus string `gorm:"column:activity_status;type:varchar(20);not null;default:'draft'" json:"activity_status"`

	ActivityMaxParticipants *int `gorm:"column:activity_max_participants" json:"activity_max_participants,omitempty"`

	ActivityIsTeam      bool `gorm:"column:activity_is_team;not null;default:false" json:"activity_is_team"`
	ActivityMinTeamSize int  `gorm:"column:activity_min_team_size;not null;default:1" json:"activity_min_team_size"`
	ActivityMaxTeamSize int  `gorm:"column:activity_max_team_size;not null;default:1" json:"activity_max_team_size"`

	ActivityCheckinRequired bool       `gorm:"column:activity_checkin_required;not null;default:false" json:"activity_checkin_required"`
	ActivityCheckinEndTime  *time.Time `gorm:"column:activity_checkin_end_time" json:"activity_checkin_end_time,omitempty"`
	ActivityCheckinRadiusM  int        `gorm:"column:activity_checkin_radius_m;not null;default:300" json:"activity_checkin_radius_m"`

	ActivityCreatedBy uuid.UUID `gorm:"column:activity_created_by;type:uuid;not null" json:"activity_created_by"`

	ActivityCreatedAt time.Time      `gorm:"column:activity_created_at;not null;autoCreateTime" json:"activity_created_at"`
	ActivityUpdatedAt time.Time      `gorm:"column:activity_updated_at;not null;autoUpdateTime" json:"activity_updated_at"`
	ActivityDeletedAt gorm.DeletedAt `gorm:"column:activity_deleted_at;index" json:"activity_deleted_at,omitempty"`
}

func (ActivityModel) TableName() string { return "activities" }

// Validate menjaga invariant waktu & konfigurasi check-in.
// Dipanggil dari BeforeSave supaya data yang melanggar tidak pernah persist.
func (a *ActivityModel) Validate() error {
	if !a.ActivityEndTime.After(a.ActivityStartTime) {
		return errors.New("waktu selesai harus setelah waktu mulai")
	}
	// Pilihan invariant: pendaftaran harus tutup sebelum activity mulai.
	if a.ActivityRegistrationEndTime.After(a.ActivityStartTime) {
		return errors.New("batas pendaftaran harus sebelum waktu mulai")
	}
	if a.ActivityCheckinRequired {
		if a.ActivityCheckinEndTime == nil {
			return errors.New("activity dengan check-in wajib harus punya batas waktu check-in")
		}
		if a.ActivityCheckinEndTime.Before(a.ActivityStartTime) {
			return errors.New("batas waktu check-in tidak boleh sebelum waktu mulai")
		}
	}
	if a.ActivityCheckinRadiusM <= 0 {
		return errors.New("radius check-in harus lebih dari 0 meter")
	}
	if a.ActivityIsTeam {
		if a.ActivityMinTeamSize < 1 || a.ActivityMaxTeamSize < a.ActivityMinTeamSize {
			return errors.New("ukuran tim tidak valid")
		}
	}
	if a.ActivityPoints < 0 {
		return errors.New("poin activity tidak boleh negatif")
	}
	return nil
}

func (a *ActivityModel) BeforeSave(tx *gorm.DB) error {
	return a.Validate()
}
