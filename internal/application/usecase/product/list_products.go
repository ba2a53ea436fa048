// Package product contains product catalog use cases.
package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// ListProductsOutput represents the output of listing products.
type ListProductsOutput struct {
	Products []*entity.Product
}

// ListProductsUseCase lists the product catalog.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// Execute returns all products ordered by name.
func (uc *ListProductsUseCase) Execute(ctx context.Context) (*ListProductsOutput, error) {
	products, err := uc.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return &ListProductsOutput{Products: products}, nil
}

// GetProductInput represents the input for fetching a single product.
type GetProductInput struct {
	ID uuid.UUID
}

// GetProductOutput represents the output of fetching a single product.
type GetProductOutput struct {
	Product *entity.Product
}

// GetProductUseCase fetches a single product by ID.
type GetProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewGetProductUseCase creates a new GetProductUseCase instance.
func NewGetProductUseCase(productRepo adapter.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{productRepo: productRepo}
}

// Execute returns the product with the given ID.
func (uc *GetProductUseCase) Execute(ctx context.Context, input GetProductInput) (*GetProductOutput, error) {
	product, err := uc.productRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNotFound,
			"product not found",
			domainerror.ErrProductNotFound,
		)
	}
	return &GetProductOutput{Product: product}, nil
}
