// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PINService defines the interface for PIN hashing operations.
type PINService interface {
	// HashPIN hashes a plain text PIN.
	HashPIN(pin string) (string, error)

	// VerifyPIN compares a plain text PIN with a hashed PIN.
	VerifyPIN(hashedPIN, pin string) error

	// ValidatePINFormat validates that a PIN is exactly six numeric digits.
	ValidatePINFormat(pin string) error
}
