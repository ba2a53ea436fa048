package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/campus-pos/backend/internal/domain/entity"
)

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity int             `json:"quantity"`
	Barcode  string          `json:"barcode"`
	Category string          `json:"category" binding:"required"`
	ImageURL string          `json:"image_url"`
}

// UpdateProductRequest represents the request body for a product update.
type UpdateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity int             `json:"quantity"`
	Barcode  string          `json:"barcode"`
	Category string          `json:"category" binding:"required"`
	ImageURL string          `json:"image_url"`
}

// DecrementStockRequest represents the request body for a stock decrement.
type DecrementStockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Barcode   string          `json:"barcode,omitempty"`
	Category  string          `json:"category"`
	ImageURL  string          `json:"image_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse represents the product catalog listing.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID.String(),
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  product.Quantity,
		Barcode:   product.Barcode,
		Category:  string(product.Category),
		ImageURL:  product.ImageURL,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

// ToProductListResponse converts domain products to the listing DTO.
func ToProductListResponse(products []*entity.Product) ProductListResponse {
	resp := ProductListResponse{Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, ToProductResponse(p))
	}
	return resp
}
