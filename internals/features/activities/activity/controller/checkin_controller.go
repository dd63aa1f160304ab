// internals/features/activities/activity/controller/checkin_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityDTO "klubku_backend/internals/features/activities/activity/dto"
	activityModel "klubku_backend/internals/features/activities/activity/model"
	activityService "klubku_backend/internals/features/activities/activity/service"
	helper "klubku_backend/internals/helpers"
	"klubku_backend/internals/helpers/geo"
)

type CheckinController struct {
	DB *gorm.DB
}

/* =========================================================
   CHECK-IN
   POST /api/activities/:id/checkin  body {latitude, longitude}
   ========================================================= */
func (h *CheckinController) CheckIn(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID activity tidak valid")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req activityDTO.CheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Koordinat wajib diisi dan harus valid")
	}

	var activity activityModel.ActivityModel
	if err := h.DB.First(&activity, "activity_id = ?", activityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Activity tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil activity")
	}

	var participant *activityModel.ParticipantModel
	var found activityModel.ParticipantModel
	err = h.DB.Where("participant_activity_id = ? AND participant_user_id = ?", activityID, userID).
		First(&found).Error
	switch {
	case err == nil:
		participant = &found
	case errors.Is(err, gorm.ErrRecordNotFound):
		participant = nil
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data pendaftaran")
	}

	now := time.Now()
	decision, err := activityService.CheckCheckinEligibility(&activity, participant, *req.Latitude, *req.Longitude, now)
	if err != nil {
		switch {
		case errors.Is(err, activityService.ErrNotRegistered),
			errors.Is(err, activityService.ErrOutsideWindow):
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		case errors.Is(err, activityService.ErrOutOfCheckinRange):
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(
				"Anda berjarak %.2f km dari lokasi activity, di luar radius check-in (%d m)",
				decisionDistanceKm(&activity, *req.Latitude, *req.Longitude), activity.ActivityCheckinRadiusM))
		default:
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	// Flip sub-state per baris, conditional: dua request bersamaan
	// tidak bisa sama-sama lolos.
	res := h.DB.Exec(`
		UPDATE activity_participants
		SET participant_checkin_status = 'approved',
		    participant_checkin_time = ?,
		    participant_checkin_lat = ?,
		    participant_checkin_lng = ?,
		    participant_updated_at = NOW()
		WHERE participant_id = ?
		  AND (participant_checkin_status IS NULL OR participant_checkin_status <> 'approved')
	`, now, *req.Latitude, *req.Longitude, participant.ParticipantID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Check-in gagal, silakan coba lagi")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusBadRequest, activityService.ErrAlreadyCheckedIn.Error())
	}

	return helper.JsonOK(c, "Check-in berhasil", activityDTO.CheckinResponse{
		CheckinStatus: activityModel.ParticipantStatusApproved,
		CheckinTime:   now,
		DistanceM:     decision.DistanceM,
	})
}

func decisionDistanceKm(a *activityModel.ActivityModel, lat, lng float64) float64 {
	if a.ActivityLatitude == nil || a.ActivityLongitude == nil {
		return 0
	}
	return geo.Distance(lat, lng, *a.ActivityLatitude, *a.ActivityLongitude) / 1000
}

/* =========================================================
   STATUS CHECK-IN
   GET /api/activities/:id/checkin
   ========================================================= */
func (h *CheckinController) GetCheckinStatus(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID activity tidak valid")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var p activityModel.ParticipantModel
	if err := h.DB.Where("participant_activity_id = ? AND participant_user_id = ?", activityID, userID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusForbidden, activityService.ErrNotRegistered.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil status check-in")
	}

	return helper.JsonOK(c, "Status check-in", activityDTO.CheckinStatusResponse{
		HasCheckin:    p.HasCheckedIn(),
		CheckinStatus: p.ParticipantCheckinStatus,
		CheckinTime:   p.ParticipantCheckinTime,
	})
}
