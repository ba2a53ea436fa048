// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/campus-pos/backend/internal/application/adapter"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// bcryptCost defines the cost factor for bcrypt hashing.
const bcryptCost = 12

var pinFormat = regexp.MustCompile(`^\d{6}$`)

// pinService implements the adapter.PINService interface using bcrypt.
type pinService struct{}

// NewPINService creates a new PIN service instance.
func NewPINService() adapter.PINService {
	return &pinService{}
}

// HashPIN hashes a plain text PIN using bcrypt.
func (s *pinService) HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}
	return string(hash), nil
}

// VerifyPIN compares a plain text PIN with a hashed PIN.
func (s *pinService) VerifyPIN(hashedPIN, pin string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPIN), []byte(pin))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domainerror.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to verify PIN: %w", err)
	}
	return nil
}

// ValidatePINFormat validates that a PIN is exactly six numeric digits.
func (s *pinService) ValidatePINFormat(pin string) error {
	if !pinFormat.MatchString(pin) {
		return domainerror.ErrInvalidPIN
	}
	return nil
}
