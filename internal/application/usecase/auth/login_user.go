// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email string
	PIN   string

	// RequireAdmin rejects non-admin accounts; used by the admin login route.
	RequireAdmin bool
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	userRepo     adapter.UserRepository
	pinService   adapter.PINService
	tokenService adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	pinService adapter.PINService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:     userRepo,
		pinService:   pinService,
		tokenService: tokenService,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	// Find user by email
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Return generic error to prevent email enumeration
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or PIN",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Unverified accounts cannot log in
	if !user.IsVerified {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeNotVerified,
			"account email has not been verified",
			domainerror.ErrAccountNotVerified,
		)
	}

	// Verify PIN
	if err := uc.pinService.VerifyPIN(user.PINHash, input.PIN); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or PIN",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Admin route requires the admin flag
	if input.RequireAdmin && !user.IsAdmin {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeNotAdmin,
			"admin privileges required",
			domainerror.ErrNotAdmin,
		)
	}

	// Record login time; a failure here should not block the login
	user.TouchLogin()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		slog.Warn("Failed to record last login", "error", err, "userID", user.ID)
	}

	// Generate tokens
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &LoginUserOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}
