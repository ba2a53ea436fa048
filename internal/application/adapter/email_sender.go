// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueVerificationEmail queues an account verification email.
	QueueVerificationEmail(ctx context.Context, input QueueVerificationInput) error

	// QueuePINResetEmail queues a PIN reset email.
	QueuePINResetEmail(ctx context.Context, input QueuePINResetInput) error
}

// QueueVerificationInput represents the input for queueing a verification email.
type QueueVerificationInput struct {
	UserID    string
	UserEmail string
	UserName  string
	VerifyURL string
	ExpiresIn string
}

// QueuePINResetInput represents the input for queueing a PIN reset email.
type QueuePINResetInput struct {
	UserID    string
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}
