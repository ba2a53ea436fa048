// Package checkout contains purchase and settlement use cases.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// CheckoutItem is one cart entry. A product may be referenced by ID or, when
// the client only has the scanned code, by barcode.
type CheckoutItem struct {
	ProductID uuid.UUID
	Barcode   string
	Quantity  int
}

// CreateTransactionInput represents the input for checkout.
type CreateTransactionInput struct {
	UserID        uuid.UUID
	PaymentMethod string
	Items         []CheckoutItem
}

// CreateTransactionOutput represents the output of checkout.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles the checkout flow: it resolves cart
// entries against the catalog, snapshots name and unit price into line
// items, and commits the purchase together with its stock decrements as
// one atomic write.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	productRepo     adapter.ProductRepository
	productCache    adapter.ProductCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	productRepo adapter.ProductRepository,
	productCache adapter.ProductCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		productCache:    productCache,
	}
}

// Execute performs the checkout. Stock is deducted for every item or for
// none: a single out-of-stock product rolls the whole purchase back.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	method := entity.PaymentMethod(input.PaymentMethod)
	if !entity.ValidPaymentMethod(method) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPaymentMethod,
			`payment method must be "Cash" or "Pay Later"`,
			domainerror.ErrInvalidPaymentMethod,
		)
	}
	if len(input.Items) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyCart,
			"cart must contain at least one item",
			domainerror.ErrEmptyCart,
		)
	}

	txn := entity.NewTransaction(input.UserID, method, time.Now())
	decrements := make([]adapter.StockDecrement, 0, len(input.Items))
	touchedBarcodes := make([]string, 0, len(input.Items))

	for _, cartItem := range input.Items {
		if cartItem.Quantity <= 0 {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidItemQuantity,
				"item quantity must be positive",
				domainerror.ErrInvalidItemQuantity,
			)
		}

		product, err := uc.resolveProduct(ctx, cartItem)
		if err != nil {
			return nil, err
		}

		txn.AddItem(product.Name, product.Price, cartItem.Quantity)
		decrements = append(decrements, adapter.StockDecrement{
			ProductID: product.ID,
			Quantity:  cartItem.Quantity,
		})
		if product.Barcode != "" {
			touchedBarcodes = append(touchedBarcodes, product.Barcode)
		}
	}

	if err := uc.transactionRepo.Create(ctx, txn, decrements); err != nil {
		if errors.Is(err, domainerror.ErrInsufficientStock) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeCheckoutOutOfStock,
				"one or more items do not have enough stock",
				domainerror.ErrInsufficientStock,
			)
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	// Stock counts changed; drop cached catalog entries for what was sold
	if uc.productCache != nil {
		for _, barcode := range touchedBarcodes {
			_ = uc.productCache.InvalidateBarcode(ctx, barcode)
		}
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}

func (uc *CreateTransactionUseCase) resolveProduct(ctx context.Context, cartItem CheckoutItem) (*entity.Product, error) {
	if cartItem.ProductID != uuid.Nil {
		product, err := uc.productRepo.FindByID(ctx, cartItem.ProductID)
		if err != nil {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductNotFound,
				"product not found: "+cartItem.ProductID.String(),
				domainerror.ErrProductNotFound,
			)
		}
		return product, nil
	}
	if cartItem.Barcode != "" {
		product, err := uc.productRepo.FindByBarcode(ctx, cartItem.Barcode)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeUnknownBarcode,
				"no product matches barcode: "+cartItem.Barcode,
				domainerror.ErrProductNotFound,
			)
		}
		return product, nil
	}
	return nil, domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidItemQuantity,
		"cart item must reference a product by id or barcode",
		nil,
	)
}
