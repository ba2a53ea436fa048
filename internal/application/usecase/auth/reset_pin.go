// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campus-pos/backend/internal/application/adapter"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// ResetPINInput represents the input for PIN reset.
type ResetPINInput struct {
	Token string
}

// ResetPINOutput represents the output of PIN reset.
type ResetPINOutput struct {
	Message string
}

// ResetPINUseCase handles PIN reset logic. The PIN is restored to the
// configured default value rather than a caller-supplied one, so a reset
// link alone is enough to regain access at the counter.
type ResetPINUseCase struct {
	userRepo          adapter.UserRepository
	pinService        adapter.PINService
	resetTokenService adapter.PINResetTokenService
	defaultPIN        string
}

// NewResetPINUseCase creates a new ResetPINUseCase instance.
func NewResetPINUseCase(
	userRepo adapter.UserRepository,
	pinService adapter.PINService,
	resetTokenService adapter.PINResetTokenService,
	defaultPIN string,
) *ResetPINUseCase {
	return &ResetPINUseCase{
		userRepo:          userRepo,
		pinService:        pinService,
		resetTokenService: resetTokenService,
		defaultPIN:        defaultPIN,
	}
}

// Execute performs the PIN reset.
func (uc *ResetPINUseCase) Execute(ctx context.Context, input ResetPINInput) (*ResetPINOutput, error) {
	if input.Token == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidResetToken,
			"reset token is required",
			domainerror.ErrInvalidResetToken,
		)
	}

	// Validate reset token
	resetToken, err := uc.resetTokenService.ValidateResetToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidResetToken,
			"invalid or expired reset token",
			err,
		)
	}

	// Find user
	user, err := uc.userRepo.FindByID(ctx, resetToken.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	// Hash the default PIN and store it
	pinHash, err := uc.pinService.HashPIN(uc.defaultPIN)
	if err != nil {
		return nil, fmt.Errorf("failed to hash PIN: %w", err)
	}
	user.PINHash = pinHash
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	// Invalidate the used reset token (single use)
	if err := uc.resetTokenService.InvalidateResetToken(ctx, input.Token); err != nil {
		slog.Error("Failed to invalidate reset token", "error", err, "userID", user.ID)
	}

	slog.Info("PIN reset completed", "userID", user.ID)

	return &ResetPINOutput{
		Message: "Your PIN has been reset to the default value. Please log in and change it.",
	}, nil
}
