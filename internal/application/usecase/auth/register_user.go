// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	PIN       string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	User    *entity.User
	Message string
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo     adapter.UserRepository
	pinService   adapter.PINService
	tokenService adapter.TokenService
	emailService adapter.EmailService
	appBaseURL   string
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	pinService adapter.PINService,
	tokenService adapter.TokenService,
	emailService adapter.EmailService,
	appBaseURL string,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:     userRepo,
		pinService:   pinService,
		tokenService: tokenService,
		emailService: emailService,
		appBaseURL:   appBaseURL,
	}
}

// Execute performs the user registration. The account starts unverified; a
// verification email is queued best-effort and its failure does not fail the
// registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	// Validate email format
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	// Validate PIN format (six numeric digits)
	if err := uc.pinService.ValidatePINFormat(input.PIN); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPIN,
			"PIN must be exactly six digits",
			domainerror.ErrInvalidPIN,
		)
	}

	// Check if email already exists
	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	// Hash PIN
	pinHash, err := uc.pinService.HashPIN(input.PIN)
	if err != nil {
		return nil, fmt.Errorf("failed to hash PIN: %w", err)
	}

	// Create user entity (unverified)
	user := entity.NewUser(input.FirstName, input.LastName, input.Email, pinHash)

	// Save user to database
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Issue verification token and queue the verification email. Email
	// delivery failure must not fail registration.
	token, err := uc.tokenService.GenerateVerificationToken(ctx, user.ID, user.Email)
	if err != nil {
		slog.Error("Failed to generate verification token", "error", err, "userID", user.ID)
	} else if uc.emailService != nil {
		verifyURL := fmt.Sprintf("%s/verify-email?token=%s", uc.appBaseURL, token)
		err = uc.emailService.QueueVerificationEmail(ctx, adapter.QueueVerificationInput{
			UserID:    user.ID.String(),
			UserEmail: user.Email,
			UserName:  user.FullName(),
			VerifyURL: verifyURL,
			ExpiresIn: "24 hours",
		})
		if err != nil {
			slog.Error("Failed to queue verification email", "error", err, "userID", user.ID)
		} else {
			slog.Info("Verification email queued", "userID", user.ID, "email", user.Email)
		}
	}

	return &RegisterUserOutput{
		User:    user,
		Message: "Registration successful. Please check your email to verify your account.",
	}, nil
}

// isValidEmail validates email format using a simple regex.
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
