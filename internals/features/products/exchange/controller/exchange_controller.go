// internals/features/products/exchange/controller/exchange_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exchangeDTO "klubku_backend/internals/features/products/exchange/dto"
	exchangeModel "klubku_backend/internals/features/products/exchange/model"
	exchangeService "klubku_backend/internals/features/products/exchange/service"
	helper "klubku_backend/internals/helpers"
)

var validate = validator.New()

type ExchangeController struct {
	DB *gorm.DB
}

/* =========================================================
   TUKAR PRODUK
   POST /api/products/exchange  body {product_id, quantity}
   ========================================================= */
func (h *ExchangeController) ExchangeProduct(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req exchangeDTO.ExchangeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "product_id dan quantity (>=1) wajib diisi")
	}

	result, err := exchangeService.ExchangeProduct(h.DB, userID, req.ProductID, req.Quantity)
	if err != nil {
		var insufficient *exchangeService.InsufficientPointsError
		switch {
		case errors.As(err, &insufficient):
			// rincian kekurangan ikut dikirim untuk ditampilkan UI
			return helper.JsonErrorWithData(c, fiber.StatusBadRequest, "Poin tidak mencukupi", insufficient)
		case errors.Is(err, exchangeService.ErrInvalidQuantity):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.Is(err, exchangeService.ErrProductNotFound),
			errors.Is(err, exchangeService.ErrUserNotFound):
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		case errors.Is(err, exchangeService.ErrProductInactive),
			errors.Is(err, exchangeService.ErrInsufficientStock):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.Is(err, exchangeService.ErrBalanceConflict),
			errors.Is(err, exchangeService.ErrStockConflict):
			return fiber.NewError(fiber.StatusConflict, err.Error())
		default:
			log.Printf("[ERROR] exchange user=%s product=%s: %v", userID, req.ProductID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Penukaran gagal, silakan coba lagi")
		}
	}

	return helper.JsonOK(c, "Penukaran berhasil", result)
}

/* =========================================================
   RIWAYAT PENUKARAN SAYA
   GET /api/products/exchanges/my
   ========================================================= */
func (h *ExchangeController) GetMyExchanges(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 10, 100)

	base := h.DB.Model(&exchangeModel.ExchangeModel{}).
		Where("exchange_user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung riwayat penukaran")
	}

	var items []exchangeDTO.ExchangeItemResponse
	if err := base.
		Select("exchanges.*, products.product_name, products.product_image").
		Joins("JOIN products ON products.product_id = exchanges.exchange_product_id").
		Order("exchange_time DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat penukaran")
	}

	return helper.JsonList(c, "Riwayat penukaran", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================================
   SEMUA PENUKARAN (admin)
   GET /api/a/products/exchanges[?status=completed]
   ========================================================= */
func (h *ExchangeController) GetAllExchanges(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	base := h.DB.Model(&exchangeModel.ExchangeModel{})
	if s := c.Query("status"); s != "" && s != "all" {
		base = base.Where("exchange_status = ?", s)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung penukaran")
	}

	var items []exchangeDTO.ExchangeItemResponse
	if err := base.
		Select(`exchanges.*, products.product_name, products.product_image,
			users.user_name, users.student_id`).
		Joins("JOIN products ON products.product_id = exchanges.exchange_product_id").
		Joins("JOIN users ON users.id = exchanges.exchange_user_id").
		Order("exchange_time DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar penukaran")
	}

	return helper.JsonList(c, "Daftar penukaran", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
