// internals/features/activities/activity_type/controller/activity_type_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	typeDTO "klubku_backend/internals/features/activities/activity_type/dto"
	typeModel "klubku_backend/internals/features/activities/activity_type/model"
	helper "klubku_backend/internals/helpers"
)

var validate = validator.New()

type ActivityTypeController struct {
	DB *gorm.DB
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

/* =========================================================
   CREATE (admin)
   POST /api/a/activities/types
   ========================================================= */
func (h *ActivityTypeController) CreateActivityType(c *fiber.Ctx) error {
	var req typeDTO.CreateActivityTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()

	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	model := typeModel.ActivityTypeModel{
		ActivityTypeName:        req.Name,
		ActivityTypeDescription: req.Description,
	}
	if err := h.DB.Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Nama tipe activity sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat tipe activity")
	}

	return helper.JsonCreated(c, "Tipe activity berhasil dibuat", model)
}

/* =========================================================
   LIST (public)
   GET /api/activities/types
   ========================================================= */
func (h *ActivityTypeController) GetActivityTypes(c *fiber.Ctx) error {
	var items []typeModel.ActivityTypeModel
	if err := h.DB.
		Order("activity_type_created_at DESC").
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tipe activity")
	}

	return helper.JsonOK(c, "Daftar tipe activity", items)
}
