// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/campus-pos/backend/internal/domain/entity"
)

// StockDecrement names one product quantity to deduct during checkout.
type StockDecrement struct {
	ProductID uuid.UUID
	Quantity  int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create persists a transaction with its line items and applies the given
	// stock decrements, all in one database transaction. Any insufficient
	// stock rolls the whole checkout back with ErrInsufficientStock.
	Create(ctx context.Context, txn *entity.Transaction, decrements []StockDecrement) error

	// FindByID retrieves a transaction with its line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a user, newest first, with
	// line items loaded.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// SettleLineItems settles the pending line items owned by userID, all in
	// one database transaction. Each item's payment status flips from Pay
	// Later to Paid with a guarded conditional update and a PaidItem history
	// record is appended. Any failure rolls the whole batch back: either
	// every requested item settles or none does. A missing, already settled
	// or foreign item yields ErrLineItemNotFound; an item without a name or
	// a positive price yields ErrIncompleteLineItem. Two concurrent
	// settlements of the same item are self-excluding: the second matches no
	// pending row.
	SettleLineItems(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) ([]*entity.TransactionItem, error)

	// FindPaidItems retrieves a user's settlement history, newest first.
	FindPaidItems(ctx context.Context, userID uuid.UUID) ([]*entity.PaidItem, error)
}
