// internals/features/points/points_history/controller/points_history_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pointsDTO "klubku_backend/internals/features/points/points_history/dto"
	pointsModel "klubku_backend/internals/features/points/points_history/model"
	helper "klubku_backend/internals/helpers"
)

type PointsHistoryController struct {
	DB *gorm.DB
}

/* =========================================================
   RIWAYAT POIN SAYA
   GET /api/points/history/my[?type=earned|spent]
   ========================================================= */
func (h *PointsHistoryController) GetMyHistory(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 10, 100)

	base := h.DB.Model(&pointsModel.PointsHistoryModel{}).
		Where("points_history_user_id = ?", userID)
	if t := c.Query("type"); t == pointsModel.PointsTypeEarned || t == pointsModel.PointsTypeSpent {
		base = base.Where("points_history_type = ?", t)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung riwayat poin")
	}

	var items []pointsDTO.PointsHistoryItemResponse
	if err := base.
		Select("points_history.*, activities.activity_title").
		Joins("LEFT JOIN activities ON activities.activity_id = points_history.points_history_activity_id").
		Order("points_history_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat poin")
	}

	return helper.JsonList(c, "Riwayat poin", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================================
   SEMUA RIWAYAT POIN (admin)
   GET /api/a/points/history
   ========================================================= */
func (h *PointsHistoryController) GetAllHistory(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	base := h.DB.Model(&pointsModel.PointsHistoryModel{})
	if t := c.Query("type"); t == pointsModel.PointsTypeEarned || t == pointsModel.PointsTypeSpent {
		base = base.Where("points_history_type = ?", t)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung riwayat poin")
	}

	var items []pointsDTO.PointsHistoryItemResponse
	if err := base.
		Select(`points_history.*, activities.activity_title,
			users.user_name, users.student_id`).
		Joins("LEFT JOIN activities ON activities.activity_id = points_history.points_history_activity_id").
		Joins("JOIN users ON users.id = points_history.points_history_user_id").
		Order("points_history_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat poin")
	}

	return helper.JsonList(c, "Riwayat poin semua user", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
