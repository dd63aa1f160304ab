// internals/features/activities/activity/service/eligibility.go
//
// Keputusan boleh/tidaknya join & check-in dipisah sebagai fungsi murni
// atas snapshot data + jam, supaya aturan state machine-nya bisa dites
// tanpa DB. Controller tinggal memetakan error ke status HTTP.
package service

import (
	"errors"
	"math"
	"time"

	"klubku_backend/internals/helpers/geo"

	activityModel "klubku_backend/internals/features/activities/activity/model"
)

var (
	ErrActivityNotPublished = errors.New("activity belum dipublikasikan")
	ErrRegistrationClosed   = errors.New("pendaftaran activity sudah ditutup")
	ErrActivityEnded        = errors.New("activity sudah berakhir")
	ErrAlreadyRegistered    = errors.New("Anda sudah terdaftar di activity ini")
	ErrCapacityExceeded     = errors.New("kuota peserta activity sudah penuh")

	ErrNotRegistered       = errors.New("Anda belum terdaftar di activity ini")
	ErrOutsideWindow       = errors.New("di luar rentang waktu check-in")
	ErrAlreadyCheckedIn    = errors.New("Anda sudah check-in di activity ini")
	ErrNoCheckinLocation   = errors.New("activity belum mengatur lokasi check-in")
	ErrInvalidCoordinates  = errors.New("koordinat tidak valid")
	ErrOutOfCheckinRange   = errors.New("di luar jangkauan lokasi check-in")
)

// CheckJoinEligibility memutuskan apakah user boleh mendaftar.
// existing nil artinya user belum pernah punya baris participant;
// baris rejected tidak menghalangi daftar ulang.
func CheckJoinEligibility(a *activityModel.ActivityModel, existing *activityModel.ParticipantModel, participantCount int64, now time.Time) error {
	if a.ActivityStatus != activityModel.ActivityStatusPublished {
		return ErrActivityNotPublished
	}
	if now.After(a.ActivityRegistrationEndTime) {
		return ErrRegistrationClosed
	}
	if now.After(a.ActivityEndTime) {
		return ErrActivityEnded
	}
	if existing != nil && existing.IsRegistered() {
		return ErrAlreadyRegistered
	}
	if a.ActivityMaxParticipants != nil && participantCount >= int64(*a.ActivityMaxParticipants) {
		return ErrCapacityExceeded
	}
	return nil
}

// CheckinDecision hasil evaluasi check-in yang lolos.
type CheckinDecision struct {
	DistanceM float64
	RadiusM   int
}

// CheckCheckinEligibility memutuskan apakah check-in diterima.
// Urutan pemeriksaan mengikuti alur handler: terdaftar dulu, jendela
// waktu, sudah check-in, baru geofence.
func CheckCheckinEligibility(a *activityModel.ActivityModel, p *activityModel.ParticipantModel, lat, lng float64, now time.Time) (*CheckinDecision, error) {
	if p == nil || !p.IsRegistered() {
		return nil, ErrNotRegistered
	}

	// checkinEndTime wajib ada; tanpa itu check-in tidak pernah boleh
	if a.ActivityCheckinEndTime == nil ||
		now.Before(a.ActivityStartTime) ||
		now.After(*a.ActivityCheckinEndTime) {
		return nil, ErrOutsideWindow
	}

	if p.HasCheckedIn() {
		return nil, ErrAlreadyCheckedIn
	}

	if a.ActivityLatitude == nil || a.ActivityLongitude == nil {
		return nil, ErrNoCheckinLocation
	}

	distance := geo.Distance(lat, lng, *a.ActivityLatitude, *a.ActivityLongitude)
	if math.IsNaN(distance) {
		return nil, ErrInvalidCoordinates
	}

	radius := a.ActivityCheckinRadiusM
	if distance > float64(radius) {
		return nil, ErrOutOfCheckinRange
	}

	return &CheckinDecision{DistanceM: distance, RadiusM: radius}, nil
}
