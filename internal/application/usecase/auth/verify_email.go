// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/campus-pos/backend/internal/application/adapter"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// VerifyEmailInput represents the input for email verification.
type VerifyEmailInput struct {
	Token string
}

// VerifyEmailOutput represents the output of email verification.
type VerifyEmailOutput struct {
	Message string
}

// VerifyEmailUseCase handles email verification logic.
type VerifyEmailUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewVerifyEmailUseCase creates a new VerifyEmailUseCase instance.
func NewVerifyEmailUseCase(
	userRepo adapter.UserRepository,
	tokenService adapter.TokenService,
) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute verifies the account the token was issued for.
func (uc *VerifyEmailUseCase) Execute(ctx context.Context, input VerifyEmailInput) (*VerifyEmailOutput, error) {
	if input.Token == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"verification token is required",
			domainerror.ErrInvalidToken,
		)
	}

	claims, err := uc.tokenService.ValidateVerificationToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired verification token",
			err,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	// Re-verification is harmless; report success either way.
	if !user.IsVerified {
		user.MarkVerified()
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	return &VerifyEmailOutput{
		Message: "Email verified successfully. You can now log in.",
	}, nil
}
