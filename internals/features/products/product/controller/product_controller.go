// internals/features/products/product/controller/product_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	productDTO "klubku_backend/internals/features/products/product/dto"
	productModel "klubku_backend/internals/features/products/product/model"
	helper "klubku_backend/internals/helpers"
)

var validate = validator.New()

type ProductController struct {
	DB *gorm.DB
}

// CREATE (admin)
// POST /api/a/products
func (h *ProductController) CreateProduct(c *fiber.Ctx) error {
	var req productDTO.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	model := req.ToModel()
	if err := h.DB.Create(&model).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat produk")
	}

	return helper.JsonCreated(c, "Produk berhasil dibuat", model)
}

// LIST (public)
// GET /api/products[?status=active]
func (h *ProductController) GetProducts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := h.DB.Model(&productModel.ProductModel{})

	// non-admin hanya lihat produk aktif
	role, _ := c.Locals("user_role").(string)
	if role != "admin" {
		q = q.Where("product_status = ?", productModel.ProductStatusActive)
	} else if s := strings.TrimSpace(c.Query("status")); s != "" && s != "all" {
		q = q.Where("product_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung produk")
	}

	var items []productModel.ProductModel
	if err := q.
		Order("product_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar produk")
	}

	return helper.JsonList(c, "Daftar produk", items,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// DETAIL (public)
// GET /api/products/:id
func (h *ProductController) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID produk tidak valid")
	}

	var item productModel.ProductModel
	if err := h.DB.First(&item, "product_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil produk")
	}

	return helper.JsonOK(c, "Detail produk", item)
}

// UPDATE (admin)
// PATCH /api/a/products/:id
func (h *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID produk tidak valid")
	}

	var req productDTO.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := h.DB.Model(&productModel.ProductModel{}).
		Where("product_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui produk")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	var item productModel.ProductModel
	if err := h.DB.First(&item, "product_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil produk")
	}
	return helper.JsonUpdated(c, "Produk diperbarui", item)
}

// DELETE (admin, soft delete; tolak bila pernah ditukar)
// DELETE /api/a/products/:id
func (h *ProductController) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID produk tidak valid")
	}

	var exchangeCount int64
	if err := h.DB.Table("exchanges").
		Where("exchange_product_id = ?", id).
		Count(&exchangeCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek riwayat penukaran")
	}
	if exchangeCount > 0 {
		return fiber.NewError(fiber.StatusConflict,
			"Produk sudah pernah ditukar; nonaktifkan saja, jangan dihapus")
	}

	res := h.DB.Delete(&productModel.ProductModel{}, "product_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus produk")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Produk tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Produk dihapus", fiber.Map{"product_id": id})
}
