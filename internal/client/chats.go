package client

import (
	"context"
	"net/http"

	"github.com/Rrens/taskchat/internal/domain"
	"github.com/google/uuid"
)

func (c *Client) ListSessions(ctx context.Context) (Envelope[[]domain.ChatSession], error) {
	return do[[]domain.ChatSession](ctx, c, http.MethodGet, "/chats", nil)
}

func (c *Client) CreateSession(ctx context.Context, input domain.ChatSessionCreate) (Envelope[domain.ChatSession], error) {
	return do[domain.ChatSession](ctx, c, http.MethodPost, "/chats", input)
}

func (c *Client) ListMessages(ctx context.Context, sessionID uuid.UUID) (Envelope[[]domain.ChatMessage], error) {
	return do[[]domain.ChatMessage](ctx, c, http.MethodGet, "/chats/"+sessionID.String()+"/messages", nil)
}

func (c *Client) SendMessage(ctx context.Context, sessionID uuid.UUID, input domain.ChatMessageCreate) (Envelope[domain.ChatMessage], error) {
	return do[domain.ChatMessage](ctx, c, http.MethodPost, "/chats/"+sessionID.String()+"/messages", input)
}

func (c *Client) DeleteSession(ctx context.Context, sessionID uuid.UUID) (Envelope[Message], error) {
	return do[Message](ctx, c, http.MethodDelete, "/chats/"+sessionID.String(), nil)
}

func (c *Client) ClearHistory(ctx context.Context, sessionID uuid.UUID) (Envelope[Message], error) {
	return do[Message](ctx, c, http.MethodPost, "/chats/"+sessionID.String()+"/clear", nil)
}

// SendToLLM asks the model endpoint for a reply
func (c *Client) SendToLLM(ctx context.Context, input domain.LLMChatRequest) (Envelope[domain.LLMChatResponse], error) {
	return do[domain.LLMChatResponse](ctx, c, http.MethodPost, "/llm/chat", input)
}

func (c *Client) ListProviders(ctx context.Context) (Envelope[[]domain.ProviderInfo], error) {
	return do[[]domain.ProviderInfo](ctx, c, http.MethodGet, "/llm/providers", nil)
}
