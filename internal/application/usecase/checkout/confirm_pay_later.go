// Package checkout contains purchase and settlement use cases.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// ConfirmPayLaterInput represents the input for settling pay-later items.
type ConfirmPayLaterInput struct {
	UserID  uuid.UUID
	ItemIDs []uuid.UUID
}

// ConfirmPayLaterOutput represents the output of a settlement.
type ConfirmPayLaterOutput struct {
	SettledItems []*entity.TransactionItem
	Message      string
}

// ConfirmPayLaterUseCase settles pending pay-later line items for a user.
// Each item is flipped from Pay Later to Paid by a guarded update, so a
// repeated confirmation of the same item cannot double-settle it and items
// of other users are untouchable. The batch is all-or-nothing: a single
// failing item rolls back every item in the request.
type ConfirmPayLaterUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewConfirmPayLaterUseCase creates a new ConfirmPayLaterUseCase instance.
func NewConfirmPayLaterUseCase(transactionRepo adapter.TransactionRepository) *ConfirmPayLaterUseCase {
	return &ConfirmPayLaterUseCase{transactionRepo: transactionRepo}
}

// Execute settles the given line items in one database transaction. Any
// failure leaves every item unchanged; nothing is partially settled.
func (uc *ConfirmPayLaterUseCase) Execute(ctx context.Context, input ConfirmPayLaterInput) (*ConfirmPayLaterOutput, error) {
	if len(input.ItemIDs) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingSettlementIDs,
			"at least one item id is required",
			nil,
		)
	}
	for _, id := range input.ItemIDs {
		if id == uuid.Nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeIncompleteLineItem,
				"item id must not be empty",
				domainerror.ErrIncompleteLineItem,
			)
		}
	}

	settled, err := uc.transactionRepo.SettleLineItems(ctx, input.UserID, input.ItemIDs)
	if err != nil {
		if errors.Is(err, domainerror.ErrLineItemNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeLineItemNotFound,
				"no pending item found for one of the requested ids; nothing was settled",
				domainerror.ErrLineItemNotFound,
			)
		}
		if errors.Is(err, domainerror.ErrIncompleteLineItem) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeIncompleteLineItem,
				"a requested item is missing required data; nothing was settled",
				domainerror.ErrIncompleteLineItem,
			)
		}
		return nil, fmt.Errorf("failed to settle items: %w", err)
	}

	return &ConfirmPayLaterOutput{
		SettledItems: settled,
		Message:      fmt.Sprintf("%d item(s) marked as paid", len(settled)),
	}, nil
}
