package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "klubku_backend/internals/features/activities/activity/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateActivityRequest struct {
	Title       string    `json:"activity_title" validate:"required,min=1,max=200"`
	Description string    `json:"activity_description" validate:"required"`
	TypeID      uuid.UUID `json:"activity_type_id" validate:"required"`
	Points      int       `json:"activity_points" validate:"gte=0"`

	StartTime           time.Time `json:"activity_start_time" validate:"required"`
	EndTime             time.Time `json:"activity_end_time" validate:"required"`
	RegistrationEndTime time.Time `json:"activity_registration_end_time" validate:"required"`

	Location  *string  `json:"activity_location" validate:"omitempty,max=255"`
	Latitude  *float64 `json:"activity_latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"activity_longitude" validate:"omitempty,gte=-180,lte=180"`

	MaxParticipants *int `json:"activity_max_participants" validate:"omitempty,gte=1"`

	IsTeam      bool `json:"activity_is_team"`
	MinTeamSize *int `json:"activity_min_team_size" validate:"omitempty,gte=1"`
	MaxTeamSize *int `json:"activity_max_team_size" validate:"omitempty,gte=1"`

	CheckinRequired bool       `json:"activity_checkin_required"`
	CheckinEndTime  *time.Time `json:"activity_checkin_end_time"`
	CheckinRadiusM  *int       `json:"activity_checkin_radius_m" validate:"omitempty,gte=1"`
}

func (r *CreateActivityRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	if r.Location != nil {
		l := strings.TrimSpace(*r.Location)
		if l == "" {
			r.Location = nil
		} else {
			r.Location = &l
		}
	}
}

// ToModel membangun ActivityModel; radius default dari config dipakai
// kalau request tidak menyebut radius sendiri.
func (r *CreateActivityRequest) ToModel(createdBy uuid.UUID, defaultRadiusM int) m.ActivityModel {
	model := m.ActivityModel{
		ActivityTitle:               r.Title,
		ActivityDescription:         r.Description,
		ActivityTypeID:              r.TypeID,
		ActivityPoints:              r.Points,
		ActivityStartTime:           r.StartTime,
		ActivityEndTime:             r.EndTime,
		ActivityRegistrationEndTime: r.RegistrationEndTime,
		ActivityLocation:            r.Location,
		ActivityLatitude:            r.Latitude,
		ActivityLongitude:           r.Longitude,
		ActivityStatus:              m.ActivityStatusDraft,
		ActivityMaxParticipants:     r.MaxParticipants,
		ActivityIsTeam:              r.IsTeam,
		ActivityMinTeamSize:         1,
		ActivityMaxTeamSize:         1,
		ActivityCheckinRequired:     r.CheckinRequired,
		ActivityCheckinEndTime:      r.CheckinEndTime,
		ActivityCheckinRadiusM:      defaultRadiusM,
		ActivityCreatedBy:           createdBy,
	}
	if r.MinTeamSize != nil {
		model.ActivityMinTeamSize = *r.MinTeamSize
	}
	if r.MaxTeamSize != nil {
		model.ActivityMaxTeamSize = *r.MaxTeamSize
	}
	if r.CheckinRadiusM != nil {
		model.ActivityCheckinRadiusM = *r.CheckinRadiusM
	}
	return model
}

/* =========================================================
   UPDATE STATUS
   ========================================================= */

type UpdateActivityStatusRequest struct {
	Status string `json:"activity_status" validate:"required,oneof=draft published cancelled completed"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type ActivityResponse struct {
	m.ActivityModel
	ParticipantsCount int64 `json:"participants_count"`

	// nama tipe ikut di-join supaya klien tidak perlu request kedua
	ActivityTypeName *string `gorm:"column:activity_type_name" json:"activity_type_name,omitempty"`

	// diisi hanya di detail untuk user yang login
	CurrentUserStatus        *string    `json:"current_user_status,omitempty"`
	CurrentUserCheckinStatus *string    `json:"current_user_checkin_status,omitempty"`
	CurrentUserCheckinTime   *time.Time `json:"current_user_checkin_time,omitempty"`
}

func FromActivityModel(model m.ActivityModel, participantsCount int64) ActivityResponse {
	return ActivityResponse{
		ActivityModel:     model,
		ParticipantsCount: participantsCount,
	}
}
