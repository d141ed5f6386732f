package llm

import (
	"context"
	"fmt"
)

// ChatRequest contains a single user turn
type ChatRequest struct {
	SessionID string
	Message   string
	Model     string
}

// ChatResponse contains the provider reply
type ChatResponse struct {
	Content string
	Model   string
}

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Chat answers one message of a chat session
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// PlaceholderReply is the canned answer returned until real model calls are wired in
func PlaceholderReply(message string) string {
	return fmt.Sprintf("This is a placeholder response for: %s. LLM integration will be implemented in the UI phase.", message)
}
