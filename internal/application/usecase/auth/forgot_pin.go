// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campus-pos/backend/internal/application/adapter"
)

// ForgotPINInput represents the input for PIN reset request.
type ForgotPINInput struct {
	Email string
}

// ForgotPINOutput represents the output of PIN reset request.
type ForgotPINOutput struct {
	Message string
}

// ForgotPINUseCase handles PIN reset request logic.
type ForgotPINUseCase struct {
	userRepo          adapter.UserRepository
	resetTokenService adapter.PINResetTokenService
	emailService      adapter.EmailService
	appBaseURL        string
}

// NewForgotPINUseCase creates a new ForgotPINUseCase instance.
func NewForgotPINUseCase(
	userRepo adapter.UserRepository,
	resetTokenService adapter.PINResetTokenService,
	emailService adapter.EmailService,
	appBaseURL string,
) *ForgotPINUseCase {
	return &ForgotPINUseCase{
		userRepo:          userRepo,
		resetTokenService: resetTokenService,
		emailService:      emailService,
		appBaseURL:        appBaseURL,
	}
}

// Execute performs the PIN reset request. Always returns success to prevent
// email enumeration.
func (uc *ForgotPINUseCase) Execute(ctx context.Context, input ForgotPINInput) (*ForgotPINOutput, error) {
	successOutput := &ForgotPINOutput{
		Message: "If an account exists with this email, a PIN reset link has been sent.",
	}

	// Find user by email; do not reveal whether the account exists
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		slog.Info("PIN reset requested for unknown email", "email", input.Email)
		return successOutput, nil
	}

	// Generate reset token
	resetToken, err := uc.resetTokenService.GenerateResetToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}

	// Queue the PIN reset email
	if uc.emailService != nil {
		resetURL := fmt.Sprintf("%s/reset-pin?token=%s", uc.appBaseURL, resetToken.Token)
		err = uc.emailService.QueuePINResetEmail(ctx, adapter.QueuePINResetInput{
			UserID:    user.ID.String(),
			UserEmail: user.Email,
			UserName:  user.FullName(),
			ResetURL:  resetURL,
			ExpiresIn: "1 hour",
		})
		if err != nil {
			slog.Error("Failed to queue PIN reset email", "error", err, "userID", user.ID)
		} else {
			slog.Info("PIN reset email queued", "userID", user.ID, "email", user.Email)
		}
	}

	return successOutput, nil
}
