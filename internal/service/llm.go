package service

import (
	"context"
	"fmt"

	"github.com/Rrens/taskchat/internal/domain"
	"github.com/Rrens/taskchat/internal/llm"
	"github.com/Rrens/taskchat/internal/validation"
)

// LLMService answers chat messages through the registered providers
type LLMService struct {
	router *llm.Router
}

// NewLLMService creates a new LLM service
func NewLLMService(router *llm.Router) *LLMService {
	return &LLMService{router: router}
}

// Chat replies to a message. Any configured credential enables every provider.
func (s *LLMService) Chat(ctx context.Context, input domain.LLMChatRequest) (*domain.LLMChatResponse, error) {
	if err := validation.Struct(&input); err != nil {
		return nil, err
	}

	if !s.router.AnyConfigured() {
		return nil, domain.ErrNoLLMCredentials
	}

	provider, err := s.router.GetProvider(input.Provider)
	if err != nil {
		return nil, err
	}

	resp, err := provider.Chat(ctx, llm.ChatRequest{
		SessionID: input.SessionID,
		Message:   input.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("%s chat failed: %w", provider.Name(), err)
	}

	return &domain.LLMChatResponse{
		Response:  resp.Content,
		Provider:  input.Provider,
		SessionID: input.SessionID,
	}, nil
}

// Providers lists every registered provider
func (s *LLMService) Providers() []domain.ProviderInfo {
	return s.router.ProvidersInfo()
}
