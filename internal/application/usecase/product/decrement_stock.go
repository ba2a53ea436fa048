// Package product contains product catalog use cases.
package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// DecrementStockInput represents the input for a stock decrement.
type DecrementStockInput struct {
	ID       uuid.UUID
	Quantity int
}

// DecrementStockOutput represents the output of a stock decrement.
type DecrementStockOutput struct {
	Product *entity.Product
}

// DecrementStockUseCase decreases the on-hand quantity of a product. The
// repository applies the decrement as a guarded update so concurrent sales
// cannot drive stock below zero.
type DecrementStockUseCase struct {
	productRepo  adapter.ProductRepository
	productCache adapter.ProductCache
}

// NewDecrementStockUseCase creates a new DecrementStockUseCase instance.
func NewDecrementStockUseCase(productRepo adapter.ProductRepository, productCache adapter.ProductCache) *DecrementStockUseCase {
	return &DecrementStockUseCase{
		productRepo:  productRepo,
		productCache: productCache,
	}
}

// Execute performs the stock decrement.
func (uc *DecrementStockUseCase) Execute(ctx context.Context, input DecrementStockInput) (*DecrementStockOutput, error) {
	if input.Quantity <= 0 {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductQuantity,
			"decrement quantity must be positive",
			domainerror.ErrInvalidProductQuantity,
		)
	}

	err := uc.productRepo.DecrementStock(ctx, input.ID, input.Quantity)
	if err != nil {
		if errors.Is(err, domainerror.ErrInsufficientStock) {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeInsufficientStock,
				"not enough stock to cover this quantity",
				domainerror.ErrInsufficientStock,
			)
		}
		if errors.Is(err, domainerror.ErrProductNotFound) {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductNotFound,
				"product not found",
				domainerror.ErrProductNotFound,
			)
		}
		return nil, fmt.Errorf("failed to decrement stock: %w", err)
	}

	product, err := uc.productRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload product: %w", err)
	}

	if uc.productCache != nil && product.Barcode != "" {
		_ = uc.productCache.InvalidateBarcode(ctx, product.Barcode)
	}

	return &DecrementStockOutput{Product: product}, nil
}
