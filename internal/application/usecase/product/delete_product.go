// Package product contains product catalog use cases.
package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campus-pos/backend/internal/application/adapter"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// DeleteProductInput represents the input for product deletion.
type DeleteProductInput struct {
	ID uuid.UUID
}

// DeleteProductOutput represents the output of product deletion.
type DeleteProductOutput struct {
	Message string
}

// DeleteProductUseCase handles product deletion logic.
type DeleteProductUseCase struct {
	productRepo  adapter.ProductRepository
	productCache adapter.ProductCache
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(productRepo adapter.ProductRepository, productCache adapter.ProductCache) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo:  productRepo,
		productCache: productCache,
	}
}

// Execute performs the product deletion. Past transaction line items keep
// their own snapshot of the product name and price, so deleting the catalog
// row does not rewrite history.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) (*DeleteProductOutput, error) {
	product, err := uc.productRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNotFound,
			"product not found",
			domainerror.ErrProductNotFound,
		)
	}

	if err := uc.productRepo.Delete(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	if uc.productCache != nil && product.Barcode != "" {
		_ = uc.productCache.InvalidateBarcode(ctx, product.Barcode)
	}

	return &DeleteProductOutput{Message: "Product deleted successfully"}, nil
}
