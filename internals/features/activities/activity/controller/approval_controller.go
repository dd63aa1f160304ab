// internals/features/activities/activity/controller/approval_controller.go
//
// Jalur approval admin. Pemberian poinnya tetap lewat otoritas
// settlement yang sama dengan sweeper, jadi dua jalur tidak mungkin
// double-award untuk participant yang sama.
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityDTO "klubku_backend/internals/features/activities/activity/dto"
	activityModel "klubku_backend/internals/features/activities/activity/model"
	settlementService "klubku_backend/internals/features/activities/settlement/service"
	helper "klubku_backend/internals/helpers"
)

type ApprovalController struct {
	DB *gorm.DB
}

func parseApprovalParams(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	activityID, err := uuid.Parse(strings.TrimSpace(c.Params("activityId")))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID activity tidak valid")
	}
	participantID, err := uuid.Parse(strings.TrimSpace(c.Params("participantId")))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "ID participant tidak valid")
	}
	return activityID, participantID, nil
}

/* =========================================================
   APPROVE PENDAFTARAN (admin)
   POST /api/a/activities/:activityId/participants/:participantId/approve

   Untuk activity TANPA check-in, approve di sini sekaligus men-settle
   poinnya (activity ber-check-in di-settle sweeper / approve check-in).
   ========================================================= */
func (h *ApprovalController) ApproveParticipant(c *fiber.Ctx) error {
	activityID, participantID, err := parseApprovalParams(c)
	if err != nil {
		return err
	}

	var req activityDTO.ApproveParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Status harus 'approved' atau 'rejected'")
	}

	var awarded bool
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var activity activityModel.ActivityModel
		if err := tx.First(&activity, "activity_id = ?", activityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Activity tidak ditemukan")
			}
			return err
		}

		var participant activityModel.ParticipantModel
		if err := tx.Where("participant_id = ? AND participant_activity_id = ?", participantID, activityID).
			First(&participant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Participant tidak ditemukan")
			}
			return err
		}

		updates := map[string]interface{}{"participant_status": req.Status}
		if req.Note != nil {
			updates["participant_note"] = *req.Note
		}
		if err := tx.Model(&activityModel.ParticipantModel{}).
			Where("participant_id = ?", participantID).
			Updates(updates).Error; err != nil {
			return err
		}

		if req.Status == activityModel.ParticipantStatusApproved && !activity.ActivityCheckinRequired {
			ok, err := settlementService.AwardParticipantPoints(tx, &activity, participantID, participant.ParticipantUserID)
			if err != nil {
				return err
			}
			awarded = ok
		}
		return nil
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses approval participant")
	}

	msg := "Participant ditolak"
	if req.Status == activityModel.ParticipantStatusApproved {
		msg = "Participant disetujui"
	}
	return helper.JsonUpdated(c, msg, fiber.Map{
		"participant_id": participantID,
		"status":         req.Status,
		"points_awarded": awarded,
	})
}

/* =========================================================
   APPROVE CHECK-IN (admin, sinkron + settle poin)
   POST /api/a/activities/:activityId/participants/:participantId/checkin/approve
   ========================================================= */
func (h *ApprovalController) ApproveCheckin(c *fiber.Ctx) error {
	activityID, participantID, err := parseApprovalParams(c)
	if err != nil {
		return err
	}

	var req activityDTO.ApproveCheckinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Status harus 'approved' atau 'rejected'")
	}

	var awarded bool
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var activity activityModel.ActivityModel
		if err := tx.First(&activity, "activity_id = ?", activityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Activity tidak ditemukan")
			}
			return err
		}

		var participant activityModel.ParticipantModel
		if err := tx.Where("participant_id = ? AND participant_activity_id = ?", participantID, activityID).
			First(&participant).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Participant tidak ditemukan")
			}
			return err
		}

		if participant.ParticipantCheckinTime == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Participant belum check-in")
		}

		// Audit boleh menimpa status check-in yang sudah ada (pending
		// ataupun hasil auto-approve); guard anti double-award-nya ada
		// di flag points_awarded, bukan di status.
		res := tx.Exec(`
			UPDATE activity_participants
			SET participant_checkin_status = ?,
			    participant_checkin_note = ?,
			    participant_updated_at = NOW()
			WHERE participant_id = ? AND participant_checkin_status IS NOT NULL
		`, req.Status, req.Note, participantID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Participant belum check-in")
		}

		if req.Status == activityModel.ParticipantStatusApproved {
			ok, err := settlementService.AwardParticipantPoints(tx, &activity, participantID, participant.ParticipantUserID)
			if err != nil {
				return err
			}
			awarded = ok
		}
		return nil
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses approval check-in")
	}

	msg := "Check-in ditolak"
	if req.Status == activityModel.ParticipantStatusApproved {
		msg = "Check-in disetujui dan poin diberikan"
	}
	return helper.JsonUpdated(c, msg, fiber.Map{
		"participant_id": participantID,
		"checkin_status": req.Status,
		"points_awarded": awarded,
	})
}
