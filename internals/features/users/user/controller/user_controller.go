// internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pointsModel "klubku_backend/internals/features/points/points_history/model"
	userDTO "klubku_backend/internals/features/users/user/dto"
	userModel "klubku_backend/internals/features/users/user/model"
	helper "klubku_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

/* =========================================================
   PROFIL SAYA
   GET /api/users/me
   ========================================================= */
func (h *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	resp := userDTO.FromUserModel(&user)
	return helper.JsonOK(c, "Profil user", resp)
}

/* =========================================================
   UPDATE PROFIL SAYA
   PUT /api/users/me
   ========================================================= */
func (h *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req userDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := h.DB.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		if strings.Contains(res.Error.Error(), "duplicate") {
			return fiber.NewError(fiber.StatusConflict, "Username atau wallet sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui profil")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membaca profil terbaru")
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", userDTO.FromUserModel(&user))
}

/* =========================================================
   SALDO POIN SAYA
   GET /api/users/me/points

   Catatan: saldo dibaca langsung dari users.points — nilai ini
   hanya pernah berubah lewat settlement & exchange.
   ========================================================= */
func (h *UserController) GetMyPoints(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var points int
	res := h.DB.Raw(
		`SELECT points FROM users WHERE id = ? AND deleted_at IS NULL`,
		userID,
	).Scan(&points)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil saldo poin")
	}
	// user terhapus/tidak ada: jangan jawab saldo 0 seolah valid
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	var recent []pointsModel.PointsHistoryModel
	if err := h.DB.
		Where("points_history_user_id = ?", userID).
		Order("points_history_created_at DESC").
		Limit(10).
		Find(&recent).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat poin")
	}

	return helper.JsonOK(c, "Saldo poin", userDTO.MyPointsResponse{
		UserID:        userID,
		Points:        points,
		RecentHistory: recent,
	})
}

/* =========================================================
   DAFTAR USER (admin)
   GET /api/a/users[?search=&role=]
   ========================================================= */
func (h *UserController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	base := h.DB.Model(&userModel.UserModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		base = base.Where(
			"user_name ILIKE ? OR email ILIKE ? OR student_id ILIKE ?",
			like, like, like,
		)
	}
	if role := c.Query("role"); role == "user" || role == "admin" {
		base = base.Where("role = ?", role)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []userModel.UserModel
	if err := base.
		Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	items := make([]userDTO.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, userDTO.FromUserModel(&users[i]))
	}

	return helper.JsonList(c, "Daftar user", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
