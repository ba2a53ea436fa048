// Package product contains product catalog use cases.
package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// UpdateProductInput represents the input for product update.
type UpdateProductInput struct {
	ID       uuid.UUID
	Name     string
	Price    decimal.Decimal
	Quantity int
	Barcode  string
	Category string
	ImageURL string
}

// UpdateProductOutput represents the output of product update.
type UpdateProductOutput struct {
	Product *entity.Product
}

// UpdateProductUseCase handles product update logic.
type UpdateProductUseCase struct {
	productRepo  adapter.ProductRepository
	productCache adapter.ProductCache
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(productRepo adapter.ProductRepository, productCache adapter.ProductCache) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo:  productRepo,
		productCache: productCache,
	}
}

// Execute performs the product update. The barcode cache entry is dropped for
// both the old and the new barcode so lookups never serve stale data.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*UpdateProductOutput, error) {
	if err := validateProductFields(input.Name, input.Price, input.Quantity, input.Category); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNotFound,
			"product not found",
			domainerror.ErrProductNotFound,
		)
	}

	// Barcode change must not collide with another product
	if input.Barcode != "" && input.Barcode != product.Barcode {
		exists, err := uc.productRepo.ExistsByBarcode(ctx, input.Barcode)
		if err != nil {
			return nil, fmt.Errorf("failed to check barcode existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeBarcodeExists,
				"a product with this barcode already exists",
				domainerror.ErrBarcodeAlreadyExists,
			)
		}
	}

	oldBarcode := product.Barcode

	product.Name = input.Name
	product.Price = input.Price
	product.Quantity = input.Quantity
	product.Barcode = input.Barcode
	product.Category = entity.ProductCategory(input.Category)
	product.ImageURL = input.ImageURL

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	uc.invalidate(ctx, oldBarcode)
	if product.Barcode != oldBarcode {
		uc.invalidate(ctx, product.Barcode)
	}

	return &UpdateProductOutput{Product: product}, nil
}

func (uc *UpdateProductUseCase) invalidate(ctx context.Context, barcode string) {
	if uc.productCache == nil || barcode == "" {
		return
	}
	// Cache invalidation is best-effort; entries expire on their own
	_ = uc.productCache.InvalidateBarcode(ctx, barcode)
}
