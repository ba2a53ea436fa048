// Package product contains product catalog use cases.
package product

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
	Barcode  string
	Category string
	ImageURL string
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase handles product creation logic.
type CreateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	if err := validateProductFields(input.Name, input.Price, input.Quantity, input.Category); err != nil {
		return nil, err
	}

	if input.Barcode != "" {
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

	product := entity.NewProduct(input.Name, input.Price, input.Quantity, input.Barcode, entity.ProductCategory(input.Category), input.ImageURL)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreateProductOutput{Product: product}, nil
}

// validateProductFields checks the invariants shared by create and update.
func validateProductFields(name string, price decimal.Decimal, quantity int, category string) error {
	if name == "" {
		return domainerror.NewProductError(
			domainerror.ErrCodeMissingProductFields,
			"product name is required",
			nil,
		)
	}
	if price.IsNegative() {
		return domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductPrice,
			"product price must not be negative",
			domainerror.ErrInvalidProductPrice,
		)
	}
	if quantity < 0 {
		return domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductQuantity,
			"product quantity must not be negative",
			domainerror.ErrInvalidProductQuantity,
		)
	}
	if !entity.ValidCategory(entity.ProductCategory(category)) {
		return domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductCategory,
			"product category must be one of: drinks, junkfood, others",
			domainerror.ErrInvalidProductCategory,
		)
	}
	return nil
}
