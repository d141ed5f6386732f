package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Rrens/taskchat/internal/domain"
	"github.com/Rrens/taskchat/internal/llm"
	"github.com/Rrens/taskchat/internal/llm/anthropic"
	"github.com/Rrens/taskchat/internal/llm/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLLMRouter(anthropicKey, openaiKey string) *llm.Router {
	router := llm.NewRouter(domain.ProviderClaude)
	router.RegisterProvider(anthropic.NewProvider(anthropicKey, ""))
	router.RegisterProvider(openai.NewProvider(openaiKey, ""))
	return router
}

func TestLLMService_Chat(t *testing.T) {
	ctx := context.Background()
	req := domain.LLMChatRequest{Message: "hi", SessionID: "s1", Provider: domain.ProviderOpenAI}

	t.Run("no credentials", func(t *testing.T) {
		_, err := NewLLMService(newLLMRouter("", "")).Chat(ctx, req)
		assert.ErrorIs(t, err, domain.ErrNoLLMCredentials)
	})

	t.Run("any credential enables every provider", func(t *testing.T) {
		resp, err := NewLLMService(newLLMRouter("sk-ant", "")).Chat(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "This is a placeholder response for: hi. LLM integration will be implemented in the UI phase.", resp.Response)
		assert.Equal(t, domain.ProviderOpenAI, resp.Provider)
		assert.Equal(t, "s1", resp.SessionID)
	})

	t.Run("invalid provider", func(t *testing.T) {
		_, err := NewLLMService(newLLMRouter("sk-ant", "")).Chat(ctx, domain.LLMChatRequest{Message: "hi", SessionID: "s1", Provider: "gemini"})
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "provider")
	})

	t.Run("provider failure", func(t *testing.T) {
		provider := new(MockLLMProvider)
		provider.On("Name").Return(domain.ProviderClaude)
		provider.On("IsConfigured").Return(true)
		provider.On("Chat", ctx, llm.ChatRequest{SessionID: "s1", Message: "hi"}).Return(nil, errors.New("upstream down"))

		router := llm.NewRouter(domain.ProviderClaude)
		router.RegisterProvider(provider)

		_, err := NewLLMService(router).Chat(ctx, domain.LLMChatRequest{Message: "hi", SessionID: "s1", Provider: domain.ProviderClaude})
		assert.EqualError(t, err, "claude chat failed: upstream down")
		provider.AssertExpectations(t)
	})
}

func TestLLMService_Providers(t *testing.T) {
	infos := NewLLMService(newLLMRouter("", "sk-openai")).Providers()
	require.Len(t, infos, 2)
	assert.False(t, infos[0].Configured)
	assert.True(t, infos[1].Configured)
}
