// internals/features/activities/activity/controller/activity_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"klubku_backend/internals/configs"
	activityDTO "klubku_backend/internals/features/activities/activity/dto"
	activityModel "klubku_backend/internals/features/activities/activity/model"
	typeModel "klubku_backend/internals/features/activities/activity_type/model"
	helper "klubku_backend/internals/helpers"
)

var validate = validator.New()

type ActivityController struct {
	DB *gorm.DB
}

// subquery hitung peserta yang masih terdaftar (pending/approved)
const participantsCountExpr = `(
	SELECT COUNT(*) FROM activity_participants p
	WHERE p.participant_activity_id = activities.activity_id
	  AND p.participant_status IN ('pending','approved')
) AS participants_count`

// CREATE
// POST /api/a/activities
func (h *ActivityController) CreateActivity(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req activityDTO.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// FK violation jangan bocor sebagai 500; cek dulu tipenya ada
	var typeExists int64
	if err := h.DB.Model(&typeModel.ActivityTypeModel{}).
		Where("activity_type_id = ?", req.TypeID).
		Count(&typeExists).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa tipe activity")
	}
	if typeExists == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tipe activity tidak ditemukan")
	}

	model := req.ToModel(adminID, configs.DefaultCheckinRadiusM)

	// BeforeSave menjaga invariant waktu; pelanggarannya 400, bukan 500
	if err := model.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Create(&model).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat activity")
	}

	return helper.JsonCreated(c, "Activity berhasil dibuat", activityDTO.FromActivityModel(model, 0))
}

/* =========================================================
   LIST (public)
   GET /api/activities[?status=published&open=true]
   ========================================================= */
func (h *ActivityController) GetActivities(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := h.DB.Model(&activityModel.ActivityModel{})

	// non-admin hanya lihat yang published
	status := strings.TrimSpace(c.Query("status", activityModel.ActivityStatusPublished))
	role, _ := c.Locals("user_role").(string)
	if role != "admin" {
		status = activityModel.ActivityStatusPublished
	}
	if status != "" && status != "all" {
		q = q.Where("activity_status = ?", status)
	}

	// open=true: pendaftaran masih dibuka
	if strings.EqualFold(c.Query("open"), "true") {
		q = q.Where("activity_registration_end_time >= NOW()")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung activity")
	}

	var items []activityDTO.ActivityResponse
	if err := q.
		Select("activities.*, activity_types.activity_type_name, " + participantsCountExpr).
		Joins("LEFT JOIN activity_types ON activity_types.activity_type_id = activities.activity_type_id").
		Order("activity_start_time DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar activity")
	}

	return helper.JsonList(c, "Daftar activity", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================================
   DETAIL (public; diperkaya status user kalau login)
   GET /api/activities/:id
   ========================================================= */
func (h *ActivityController) GetActivity(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID activity tidak valid")
	}

	var item activityDTO.ActivityResponse
	if err := h.DB.Model(&activityModel.ActivityModel{}).
		Select("activities.*, activity_types.activity_type_name, "+participantsCountExpr).
		Joins("LEFT JOIN activity_types ON activity_types.activity_type_id = activities.activity_type_id").
		Where("activity_id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Activity tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil activity")
	}

	// enrich untuk user yang login (opsional, tanpa paksa auth)
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		var p activityModel.ParticipantModel
		if err := h.DB.
			Where("participant_activity_id = ? AND participant_user_id = ?", id, userID).
			First(&p).Error; err == nil {
			item.CurrentUserStatus = &p.ParticipantStatus
			item.CurrentUserCheckinStatus = p.ParticipantCheckinStatus
			item.CurrentUserCheckinTime = p.ParticipantCheckinTime
		}
	}

	return helper.JsonOK(c, "Detail activity", item)
}

/* =========================================================
   UPDATE STATUS (admin)
   PATCH /api/a/activities/:id/status
   ========================================================= */
func (h *ActivityController) UpdateActivityStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID activity tidak valid")
	}

	var req activityDTO.UpdateActivityStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// SkipHooks: update kolom tunggal ini tidak boleh lewat BeforeSave —
	// hook itu memvalidasi model utuh, padahal di sini modelnya kosong
	// (hanya WHERE + satu kolom). Status sendiri sudah divalidasi DTO.
	res := h.DB.Session(&gorm.Session{SkipHooks: true}).
		Model(&activityModel.ActivityModel{}).
		Where("activity_id = ?", id).
		Update("activity_status", req.Status)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah status activity")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Activity tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Status activity diperbarui", fiber.Map{
		"activity_id":     id,
		"activity_status": req.Status,
	})
}

/* =========================================================
   DELETE (admin, soft delete — participants ikut tidak terlihat)
   DELETE /api/a/activities/:id
   ========================================================= */
func (h *ActivityController) DeleteActivity(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID activity tidak valid")
	}

	res := h.DB.Delete(&activityModel.ActivityModel{}, "activity_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus activity")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Activity tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Activity dihapus", fiber.Map{"activity_id": id})
}
