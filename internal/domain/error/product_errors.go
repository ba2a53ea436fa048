// Package error defines domain-specific errors for the campus POS application.
package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found in the system.
	ErrProductNotFound = errors.New("product not found")

	// ErrBarcodeAlreadyExists is returned when creating a product with an existing barcode.
	ErrBarcodeAlreadyExists = errors.New("barcode already exists")

	// ErrInvalidProductPrice is returned when the product price is negative.
	ErrInvalidProductPrice = errors.New("product price must not be negative")

	// ErrInvalidProductQuantity is returned when the product quantity is negative.
	ErrInvalidProductQuantity = errors.New("product quantity must not be negative")

	// ErrInvalidProductCategory is returned when the category is not a known value.
	ErrInvalidProductCategory = errors.New("invalid product category")

	// ErrInsufficientStock is returned when a decrement would make quantity negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductErrorCode defines error codes for product errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidProductPrice    ProductErrorCode = "PRD-010001"
	ErrCodeInvalidProductQuantity ProductErrorCode = "PRD-010002"
	ErrCodeInvalidProductCategory ProductErrorCode = "PRD-010003"
	ErrCodeMissingProductFields   ProductErrorCode = "PRD-010004"

	// Lookup errors (02XXXX)
	ErrCodeProductNotFound ProductErrorCode = "PRD-020001"
	ErrCodeBarcodeExists   ProductErrorCode = "PRD-020002"

	// Stock errors (03XXXX)
	ErrCodeInsufficientStock ProductErrorCode = "PRD-030001"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
