// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// AssistantService answers natural-language questions about the store,
// backed by a language model with access to inventory and sales tools.
type AssistantService interface {
	// Ask sends a question and returns the assistant's answer.
	Ask(ctx context.Context, question string) (string, error)
}
