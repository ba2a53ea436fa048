// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/campus-pos/backend/internal/domain/entity"
)

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create creates a new product in the database.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByBarcode retrieves a product by its barcode.
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)

	// FindAll retrieves all products ordered by name.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Update updates an existing product in the database.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByBarcode checks if a product with the given barcode exists.
	ExistsByBarcode(ctx context.Context, barcode string) (bool, error)

	// DecrementStock atomically decreases the on-hand quantity by qty. The
	// update is guarded so quantity never goes negative; when stock is short
	// it returns ErrInsufficientStock and leaves the row unchanged.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
}

// ProductCache defines the interface for the barcode lookup cache.
type ProductCache interface {
	// GetByBarcode returns the cached product for a barcode, or nil on a miss.
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)

	// SetByBarcode stores a product under its barcode.
	SetByBarcode(ctx context.Context, product *entity.Product) error

	// InvalidateBarcode drops the cached entry for a barcode.
	InvalidateBarcode(ctx context.Context, barcode string) error
}
