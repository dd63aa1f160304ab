package dto

import (
	"strings"

	m "klubku_backend/internals/features/products/product/model"
)

type CreateProductRequest struct {
	Name        string  `json:"product_name" validate:"required,min=1,max=120"`
	Description string  `json:"product_description"`
	Image       *string `json:"product_image"`
	Price       int     `json:"product_price" validate:"gte=0"`
	Stock       int     `json:"product_stock" validate:"gte=0"`
	Status      *string `json:"product_status" validate:"omitempty,oneof=active inactive"`
}

func (r *CreateProductRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateProductRequest) ToModel() m.ProductModel {
	model := m.ProductModel{
		ProductName:        r.Name,
		ProductDescription: r.Description,
		ProductImage:       r.Image,
		ProductPrice:       r.Price,
		ProductStock:       r.Stock,
		ProductStatus:      m.ProductStatusActive,
	}
	if r.Status != nil {
		model.ProductStatus = *r.Status
	}
	return model
}

// UpdateProductRequest: semua field opsional (partial update).
// CATATAN: stok di sini hanya untuk koreksi admin; pengurangan karena
// penukaran selalu lewat exchange engine.
type UpdateProductRequest struct {
	Name        *string `json:"product_name" validate:"omitempty,min=1,max=120"`
	Description *string `json:"product_description"`
	Image       *string `json:"product_image"`
	Price       *int    `json:"product_price" validate:"omitempty,gte=0"`
	Stock       *int    `json:"product_stock" validate:"omitempty,gte=0"`
	Status      *string `json:"product_status" validate:"omitempty,oneof=active inactive"`
}

func (r *UpdateProductRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["product_name"] = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		updates["product_description"] = strings.TrimSpace(*r.Description)
	}
	if r.Image != nil {
		updates["product_image"] = *r.Image
	}
	if r.Price != nil {
		updates["product_price"] = *r.Price
	}
	if r.Stock != nil {
		updates["product_stock"] = *r.Stock
	}
	if r.Status != nil {
		updates["product_status"] = *r.Status
	}
	return updates
}
