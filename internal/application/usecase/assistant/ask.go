// Package assistant contains the admin store-assistant use case.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/campus-pos/backend/internal/application/adapter"
)

const maxQuestionLength = 2000

// AskInput represents the input for an assistant question.
type AskInput struct {
	Question string
}

// AskOutput represents the assistant's answer.
type AskOutput struct {
	Answer string
}

// AskUseCase forwards admin questions about inventory and sales to the
// assistant backend.
type AskUseCase struct {
	assistant adapter.AssistantService
}

// NewAskUseCase creates a new AskUseCase instance.
func NewAskUseCase(assistant adapter.AssistantService) *AskUseCase {
	return &AskUseCase{assistant: assistant}
}

// Execute answers the question.
func (uc *AskUseCase) Execute(ctx context.Context, input AskInput) (*AskOutput, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, fmt.Errorf("question must not be empty")
	}
	if len(question) > maxQuestionLength {
		return nil, fmt.Errorf("question exceeds %d characters", maxQuestionLength)
	}

	answer, err := uc.assistant.Ask(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("assistant request failed: %w", err)
	}

	return &AskOutput{Answer: answer}, nil
}
