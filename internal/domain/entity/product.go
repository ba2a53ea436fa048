// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductCategory represents the shelf category of a product.
type ProductCategory string

const (
	CategoryDrinks   ProductCategory = "drinks"
	CategoryJunkfood ProductCategory = "junkfood"
	CategoryOthers   ProductCategory = "others"
)

// ValidCategory reports whether the given category is one of the known values.
func ValidCategory(c ProductCategory) bool {
	switch c {
	case CategoryDrinks, CategoryJunkfood, CategoryOthers:
		return true
	}
	return false
}

// Product represents a sellable item identified by its barcode.
type Product struct {
	ID        uuid.UUID
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Barcode   string
	Category  ProductCategory
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct creates a new Product.
func NewProduct(name string, price decimal.Decimal, quantity int, barcode string, category ProductCategory, imageURL string) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		Quantity:  quantity,
		Barcode:   barcode,
		Category:  category,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// InStock reports whether at least qty units are on hand.
func (p *Product) InStock(qty int) bool {
	return p.Quantity >= qty
}
