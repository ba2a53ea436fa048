// Package error defines domain-specific errors for the campus POS application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportDate is returned when the requested report date cannot be parsed.
	ErrInvalidReportDate = errors.New("invalid report date")
)

// ReportErrorCode defines error codes for report errors.
type ReportErrorCode string

const (
	ErrCodeInvalidReportDate ReportErrorCode = "RPT-010001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
