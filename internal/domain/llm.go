package domain

// Provider names accepted by the LLM endpoint
const (
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
)

// LLMChatRequest represents a chat completion request
type LLMChatRequest struct {
	Message   string `json:"message" validate:"required,min=1"`
	SessionID string `json:"sessionId" validate:"required"`
	Provider  string `json:"provider" validate:"required,oneof=claude openai"`
}

// LLMChatResponse represents a chat completion reply
type LLMChatResponse struct {
	Response  string `json:"response"`
	Provider  string `json:"provider"`
	SessionID string `json:"sessionId"`
}

// ProviderInfo describes a registered provider
type ProviderInfo struct {
	Name       string `json:"name"`
	Model      string `json:"model,omitempty"`
	Configured bool   `json:"configured"`
	Default    bool   `json:"default"`
}
