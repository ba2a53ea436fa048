// Package checkout contains purchase and settlement use cases.
package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing a user's purchases.
type ListTransactionsInput struct {
	UserID uuid.UUID
}

// ListTransactionsOutput represents the output of listing purchases.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	PaidItems    []*entity.PaidItem
}

// ListTransactionsUseCase returns a user's purchase history together with
// their pay-later settlement history.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute returns the user's transactions, newest first, plus their
// settlement history.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	paidItems, err := uc.transactionRepo.FindPaidItems(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list paid items: %w", err)
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
		PaidItems:    paidItems,
	}, nil
}
