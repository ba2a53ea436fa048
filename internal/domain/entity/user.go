// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a student or admin account in the campus POS system.
type User struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	Email      string
	PINHash    string
	IsAdmin    bool
	IsVerified bool
	ImageURL   string
	LastLogin  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUser creates a new unverified User with default values.
func NewUser(firstName, lastName, email, pinHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:         uuid.New(),
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		PINHash:    pinHash,
		IsAdmin:    false,
		IsVerified: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// MarkVerified flips the account to verified.
func (u *User) MarkVerified() {
	u.IsVerified = true
	u.UpdatedAt = time.Now().UTC()
}

// TouchLogin records a successful login.
func (u *User) TouchLogin() {
	now := time.Now().UTC()
	u.LastLogin = &now
	u.UpdatedAt = now
}
