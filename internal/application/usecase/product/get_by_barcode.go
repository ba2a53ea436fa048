// Package product contains product catalog use cases.
package product

import (
	"context"
	"log/slog"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// GetByBarcodeInput represents the input for a barcode lookup.
type GetByBarcodeInput struct {
	Barcode string
}

// GetByBarcodeOutput represents the output of a barcode lookup.
type GetByBarcodeOutput struct {
	Product *entity.Product
}

// GetByBarcodeUseCase resolves a scanned barcode to a product. Lookups go
// through a cache first since the same handful of products is scanned over
// and over during a rush.
type GetByBarcodeUseCase struct {
	productRepo  adapter.ProductRepository
	productCache adapter.ProductCache
}

// NewGetByBarcodeUseCase creates a new GetByBarcodeUseCase instance.
func NewGetByBarcodeUseCase(productRepo adapter.ProductRepository, productCache adapter.ProductCache) *GetByBarcodeUseCase {
	return &GetByBarcodeUseCase{
		productRepo:  productRepo,
		productCache: productCache,
	}
}

// Execute resolves the barcode, preferring the cache.
func (uc *GetByBarcodeUseCase) Execute(ctx context.Context, input GetByBarcodeInput) (*GetByBarcodeOutput, error) {
	if input.Barcode == "" {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeMissingProductFields,
			"barcode is required",
			nil,
		)
	}

	if uc.productCache != nil {
		cached, err := uc.productCache.GetByBarcode(ctx, input.Barcode)
		if err != nil {
			// Cache trouble falls through to the database
			slog.Warn("Barcode cache lookup failed", "error", err, "barcode", input.Barcode)
		} else if cached != nil {
			return &GetByBarcodeOutput{Product: cached}, nil
		}
	}

	product, err := uc.productRepo.FindByBarcode(ctx, input.Barcode)
	if err != nil {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNotFound,
			"no product matches this barcode",
			domainerror.ErrProductNotFound,
		)
	}

	if uc.productCache != nil {
		if err := uc.productCache.SetByBarcode(ctx, product); err != nil {
			slog.Warn("Barcode cache store failed", "error", err, "barcode", input.Barcode)
		}
	}

	return &GetByBarcodeOutput{Product: product}, nil
}
