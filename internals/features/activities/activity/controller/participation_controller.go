// internals/features/activities/activity/controller/participation_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityDTO "klubku_backend/internals/features/activities/activity/dto"
	activityModel "klubku_backend/internals/features/activities/activity/model"
	activityService "klubku_backend/internals/features/activities/activity/service"
	helper "klubku_backend/internals/helpers"
)

type ParticipationController struct {
	DB *gorm.DB
}

func joinErrorToHTTP(err error) error {
	switch {
	case errors.Is(err, activityService.ErrAlreadyRegistered),
		errors.Is(err, activityService.ErrCapacityExceeded):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, activityService.ErrActivityNotPublished),
		errors.Is(err, activityService.ErrRegistrationClosed),
		errors.Is(err, activityService.ErrActivityEnded):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Pendaftaran gagal, silakan coba lagi")
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

/* =========================================================
   JOIN
   POST /api/activities/:id/join
   ========================================================= */
func (h *ParticipationController) JoinActivity(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID activity tidak valid")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	// body opsional (anggota tim)
	var req activityDTO.JoinActivityRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
		}
	}

	var resp activityDTO.JoinActivityResponse
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		// Kunci baris activity supaya pengecekan kuota tidak balapan
		// dengan join lain yang bersamaan.
		var activity activityModel.ActivityModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&activity, "activity_id = ?", activityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Activity tidak ditemukan")
			}
			return err
		}

		var existing *activityModel.ParticipantModel
		var found activityModel.ParticipantModel
		err := tx.Where("participant_activity_id = ? AND participant_user_id = ?", activityID, userID).
			First(&found).Error
		switch {
		case err == nil:
			existing = &found
		case errors.Is(err, gorm.ErrRecordNotFound):
			existing = nil
		default:
			return err
		}

		var count int64
		if err := tx.Model(&activityModel.ParticipantModel{}).
			Where("participant_activity_id = ? AND participant_status IN ('pending','approved')", activityID).
			Count(&count).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := activityService.CheckJoinEligibility(&activity, existing, count, now); err != nil {
			return joinErrorToHTTP(err)
		}

		if activity.ActivityIsTeam {
			n := len(req.TeamMembers)
			if n < activity.ActivityMinTeamSize || n > activity.ActivityMaxTeamSize {
				return fiber.NewError(fiber.StatusBadRequest, "Jumlah anggota tim tidak sesuai ketentuan activity")
			}
		}

		var teamJSON datatypes.JSON
		if len(req.TeamMembers) > 0 {
			raw, err := json.Marshal(req.TeamMembers)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Data anggota tim tidak valid")
			}
			teamJSON = datatypes.JSON(raw)
		}

		if existing != nil {
			// daftar ulang setelah rejected: pakai baris yang sama,
			// conditional supaya tidak balapan dengan daftar ulang lain
			res := tx.Model(&activityModel.ParticipantModel{}).
				Where("participant_id = ? AND participant_status = 'rejected'", existing.ParticipantID).
				Updates(map[string]interface{}{
					"participant_status":       activityModel.ParticipantStatusApproved,
					"participant_join_time":    now,
					"participant_team_members": teamJSON,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusConflict, activityService.ErrAlreadyRegistered.Error())
			}
			resp.ParticipantID = existing.ParticipantID
		} else {
			// jalur live: langsung approved, tanpa tahap review
			participant := activityModel.ParticipantModel{
				ParticipantActivityID:  activityID,
				ParticipantUserID:      userID,
				ParticipantStatus:      activityModel.ParticipantStatusApproved,
				ParticipantJoinTime:    now,
				ParticipantTeamMembers: teamJSON,
			}
			if err := tx.Create(&participant).Error; err != nil {
				if isUniqueViolation(err) {
					return fiber.NewError(fiber.StatusConflict, activityService.ErrAlreadyRegistered.Error())
				}
				return err
			}
			resp.ParticipantID = participant.ParticipantID
		}

		resp.ParticipantStatus = activityModel.ParticipantStatusApproved
		resp.ParticipantsCount = count + 1
		return nil
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Pendaftaran gagal, silakan coba lagi")
	}

	return helper.JsonOK(c, "Pendaftaran berhasil", resp)
}

/* =========================================================
   JOINED LIST
   GET /api/activities/joined
   ========================================================= */
func (h *ParticipationController) GetJoinedActivities(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 10, 100)

	base := h.DB.Model(&activityModel.ActivityModel{}).
		Joins(`JOIN activity_participants p ON p.participant_activity_id = activities.activity_id`).
		Where(`p.participant_user_id = ? AND p.participant_status IN ('pending','approved')`, userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung activity")
	}

	var items []activityDTO.ActivityResponse
	if err := base.
		Select("activities.*, activity_types.activity_type_name, " + participantsCountExpr).
		Joins("LEFT JOIN activity_types ON activity_types.activity_type_id = activities.activity_type_id").
		Order("activity_start_time DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil activity yang diikuti")
	}

	return helper.JsonList(c, "Activity yang diikuti", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================================
   PARTICIPANTS (admin)
   GET /api/a/activities/:id/participants
   ========================================================= */
func (h *ParticipationController) GetActivityParticipants(c *fiber.Ctx) error {
	activityID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID activity tidak valid")
	}

	var exists int64
	if err := h.DB.Model(&activityModel.ActivityModel{}).
		Where("activity_id = ?", activityID).
		Count(&exists).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil activity")
	}
	if exists == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Activity tidak ditemukan")
	}

	var items []activityDTO.ParticipantResponse
	if err := h.DB.Model(&activityModel.ParticipantModel{}).
		Select("activity_participants.*, users.user_name, users.email, users.student_id, users.points").
		Joins("JOIN users ON users.id = activity_participants.participant_user_id").
		Where("participant_activity_id = ?", activityID).
		Order("participant_join_time ASC").
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar participant")
	}

	return helper.JsonOK(c, "Daftar participant", items)
}
