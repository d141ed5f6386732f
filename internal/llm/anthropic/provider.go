package anthropic

import (
	"context"

	"github.com/Rrens/taskchat/internal/domain"
	"github.com/Rrens/taskchat/internal/llm"
)

// Provider implements llm.Provider for Anthropic. Chat answers with a
// placeholder until real completions are implemented.
type Provider struct {
	apiKey       string
	defaultModel string
}

// NewProvider creates a new Anthropic provider
func NewProvider(apiKey, defaultModel string) llm.Provider {
	if defaultModel == "" {
		defaultModel = "claude-3-5-sonnet-20241022"
	}
	return &Provider{
		apiKey:       apiKey,
		defaultModel: defaultModel,
	}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return domain.ProviderClaude
}

// DefaultModel returns the default model
func (p *Provider) DefaultModel() string {
	return p.defaultModel
}

// IsConfigured checks if provider has valid credentials
func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

func (p *Provider) Chat(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = p.defaultModel
	}
	return &llm.ChatResponse{
		Content: llm.PlaceholderReply(req.Message),
		Model:   model,
	}, nil
}
