// Package user contains account management use cases.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for a profile update. Nil pointer
// fields are left unchanged.
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName *string
	LastName  *string
	ImageURL  *string

	// NewPIN changes the login PIN; CurrentPIN must match when it is set.
	CurrentPIN *string
	NewPIN     *string
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles partial profile updates, including PIN changes.
type UpdateProfileUseCase struct {
	userRepo   adapter.UserRepository
	pinService adapter.PINService
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository, pinService adapter.PINService) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:   userRepo,
		pinService: pinService,
	}
}

// Execute applies the requested changes.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.ImageURL != nil {
		user.ImageURL = *input.ImageURL
	}

	if input.NewPIN != nil {
		// A PIN change requires proof of the current PIN
		if input.CurrentPIN == nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeMissingFields,
				"current PIN is required to set a new PIN",
				nil,
			)
		}
		if err := uc.pinService.VerifyPIN(user.PINHash, *input.CurrentPIN); err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidCredentials,
				"current PIN is incorrect",
				domainerror.ErrInvalidCredentials,
			)
		}
		if err := uc.pinService.ValidatePINFormat(*input.NewPIN); err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidPIN,
				"PIN must be exactly six digits",
				domainerror.ErrInvalidPIN,
			)
		}
		pinHash, err := uc.pinService.HashPIN(*input.NewPIN)
		if err != nil {
			return nil, fmt.Errorf("failed to hash PIN: %w", err)
		}
		user.PINHash = pinHash
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}
