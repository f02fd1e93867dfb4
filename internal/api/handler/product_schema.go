package handler

import (
	"github.com/stocklane/inventory-system/internal/core/domain"
	"github.com/stocklane/inventory-system/internal/core/ports"
)

// Request / response types owned by the transport layer. These are
// intentionally separate from ports/domain types so the JSON contract is not
// coupled to internal service changes.

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Type        string   `json:"type"`
	SKU         string   `json:"sku"         validate:"required"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Quantity    *int     `json:"quantity"    validate:"required,gte=0"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
}

type createProductResponse struct {
	ProductID int64 `json:"product_id"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

// paginatedProductsResponse is returned by GET /products when a valid window
// was supplied. Without one the endpoint responds with a bare array instead.
type paginatedProductsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
}

// countedProductsResponse is the recent/valuable shape: page plus true total.
type countedProductsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
}

type valuedProductsResponse struct {
	Products []ports.ValuedProduct `json:"products"`
	Total    int64                 `json:"total"`
}

type paginatedUsersResponse struct {
	Users []domain.User `json:"users"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}
