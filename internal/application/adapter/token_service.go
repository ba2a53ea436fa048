// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair represents an access and refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	IsAdmin   bool
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string, isAdmin bool) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// ValidateRefreshToken validates a refresh token and returns its claims.
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateRefreshToken invalidates a refresh token.
	InvalidateRefreshToken(ctx context.Context, token string) error

	// IsRefreshTokenValid checks if a refresh token is still valid (not invalidated).
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)

	// GenerateVerificationToken issues a time-limited email verification token.
	GenerateVerificationToken(ctx context.Context, userID uuid.UUID, email string) (string, error)

	// ValidateVerificationToken validates an email verification token and
	// returns its claims. Expiry is checked before signature verification.
	ValidateVerificationToken(ctx context.Context, token string) (*TokenClaims, error)
}

// PINResetToken represents a PIN reset token.
type PINResetToken struct {
	Token     string
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// PINResetTokenService defines the interface for PIN reset token operations.
type PINResetTokenService interface {
	// GenerateResetToken generates a new PIN reset token.
	GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (*PINResetToken, error)

	// ValidateResetToken validates a PIN reset token.
	ValidateResetToken(ctx context.Context, token string) (*PINResetToken, error)

	// InvalidateResetToken invalidates a PIN reset token after use.
	InvalidateResetToken(ctx context.Context, token string) error
}
