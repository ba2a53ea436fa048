// Package user contains account management use cases.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campus-pos/backend/internal/application/adapter"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// DeleteUserInput represents the input for user deletion.
type DeleteUserInput struct {
	UserID uuid.UUID

	// RequestedBy is the admin performing the deletion; an admin cannot
	// delete their own account.
	RequestedBy uuid.UUID
}

// DeleteUserOutput represents the output of user deletion.
type DeleteUserOutput struct {
	Message string
}

// DeleteUserUseCase handles account removal by an admin.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo}
}

// Execute deletes the user. Transactions and settlement history are kept;
// they carry their own snapshots of the data the report needs.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) (*DeleteUserOutput, error) {
	if input.UserID == input.RequestedBy {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeNotAdmin,
			"admins cannot delete their own account",
			nil,
		)
	}

	if _, err := uc.userRepo.FindByID(ctx, input.UserID); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if err := uc.userRepo.Delete(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	slog.Info("User deleted", "userID", input.UserID, "by", input.RequestedBy)

	return &DeleteUserOutput{Message: "User deleted successfully"}, nil
}
