// Package email provides email sending functionality.
package email

import (
	"context"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueVerificationEmail queues an account verification email.
func (s *Service) QueueVerificationEmail(ctx context.Context, input adapter.QueueVerificationInput) error {
	subject := "Verify your email - Campus POS"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"verify_url": input.VerifyURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplateVerification,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue verification email",
			err,
		)
	}

	return nil
}

// QueuePINResetEmail queues a PIN reset email.
func (s *Service) QueuePINResetEmail(ctx context.Context, input adapter.QueuePINResetInput) error {
	subject := "Reset your PIN - Campus POS"

	templateData := map[string]interface{}{
		"user_name":  input.UserName,
		"reset_url":  input.ResetURL,
		"expires_in": input.ExpiresIn,
	}

	job := entity.NewEmailJob(
		entity.TemplatePINReset,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue PIN reset email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
