// Package error defines domain-specific errors for the campus POS application.
package error

import "errors"

// Transaction and settlement domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrLineItemNotFound is returned when no pending line item matches the
	// given id for the given user. A second settlement attempt against an
	// already-settled item reports this as well.
	ErrLineItemNotFound = errors.New("pending line item not found")

	// ErrIncompleteLineItem is returned when a matched line item is missing
	// required fields (name or price).
	ErrIncompleteLineItem = errors.New("line item is missing required data")

	// ErrInvalidPaymentMethod is returned when the payment method is not a known value.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrEmptyCart is returned when a checkout carries no line items.
	ErrEmptyCart = errors.New("checkout requires at least one item")

	// ErrInvalidItemQuantity is returned when a line item quantity is below one.
	ErrInvalidItemQuantity = errors.New("item quantity must be at least one")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Checkout errors (01XXXX)
	ErrCodeInvalidPaymentMethod TransactionErrorCode = "TXN-010001"
	ErrCodeEmptyCart            TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidItemQuantity  TransactionErrorCode = "TXN-010003"
	ErrCodeCheckoutOutOfStock   TransactionErrorCode = "TXN-010004"
	ErrCodeUnknownBarcode       TransactionErrorCode = "TXN-010005"

	// Settlement errors (02XXXX)
	ErrCodeMissingSettlementIDs TransactionErrorCode = "TXN-020001"
	ErrCodeLineItemNotFound     TransactionErrorCode = "TXN-020002"
	ErrCodeIncompleteLineItem   TransactionErrorCode = "TXN-020003"

	// Lookup errors (03XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-030001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
