package store

import (
	"context"
	"sync"

	"github.com/Rrens/taskchat/internal/client"
	"github.com/Rrens/taskchat/internal/domain"
	"github.com/google/uuid"
)

// ChatAPI is the part of the API client the chat store needs
type ChatAPI interface {
	ListSessions(ctx context.Context) (client.Envelope[[]domain.ChatSession], error)
	CreateSession(ctx context.Context, input domain.ChatSessionCreate) (client.Envelope[domain.ChatSession], error)
	ListMessages(ctx context.Context, sessionID uuid.UUID) (client.Envelope[[]domain.ChatMessage], error)
	SendMessage(ctx context.Context, sessionID uuid.UUID, input domain.ChatMessageCreate) (client.Envelope[domain.ChatMessage], error)
	DeleteSession(ctx context.Context, sessionID uuid.UUID) (client.Envelope[client.Message], error)
	ClearHistory(ctx context.Context, sessionID uuid.UUID) (client.Envelope[client.Message], error)
	SendToLLM(ctx context.Context, input domain.LLMChatRequest) (client.Envelope[domain.LLMChatResponse], error)
}

// ChatStore holds the session list, the selected session and its messages
type ChatStore struct {
	api      ChatAPI
	provider string

	mu       sync.RWMutex
	sessions []domain.ChatSession
	current  *domain.ChatSession
	messages []domain.ChatMessage
	loading  bool
	err      string
}

// ChatOption configures a ChatStore
type ChatOption func(*ChatStore)

// WithProvider sets the model provider used by SendMessage
func WithProvider(name string) ChatOption {
	return func(s *ChatStore) {
		if name != "" {
			s.provider = name
		}
	}
}

// NewChatStore creates an empty store backed by api
func NewChatStore(api ChatAPI, opts ...ChatOption) *ChatStore {
	s := &ChatStore{api: api, provider: domain.ProviderClaude}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ChatStore) Sessions() []domain.ChatSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ChatSession(nil), s.sessions...)
}

// CurrentSession returns the selected session or nil
func (s *ChatStore) CurrentSession() *domain.ChatSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cur := *s.current
	return &cur
}

func (s *ChatStore) Messages() []domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ChatMessage(nil), s.messages...)
}

func (s *ChatStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *ChatStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *ChatStore) ClearError() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *ChatStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *ChatStore) fail(e *Error) error {
	s.mu.Lock()
	s.err = e.Message
	s.loading = false
	s.mu.Unlock()
	return e
}

func (s *ChatStore) FetchSessions(ctx context.Context) error {
	s.begin()
	env, err := s.api.ListSessions(ctx)
	if err != nil || !env.Success || env.Data == nil {
		return s.fail(failure(env.Error, err, "Failed to fetch sessions"))
	}

	s.mu.Lock()
	s.sessions = append([]domain.ChatSession(nil), *env.Data...)
	s.loading = false
	s.mu.Unlock()
	return nil
}

// CreateSession stores a new session, prepends it and makes it current
func (s *ChatStore) CreateSession(ctx context.Context, input domain.ChatSessionCreate) (*domain.ChatSession, error) {
	s.begin()
	env, err := s.api.CreateSession(ctx, input)
	if err != nil || !env.Success || env.Data == nil {
		return nil, s.fail(failure(env.Error, err, "Failed to create session"))
	}

	session := *env.Data
	s.mu.Lock()
	s.sessions = append([]domain.ChatSession{session}, s.sessions...)
	s.current = &session
	s.messages = []domain.ChatMessage{}
	s.loading = false
	s.mu.Unlock()
	return &session, nil
}

// SelectSession makes a cached session current and loads its messages
func (s *ChatStore) SelectSession(ctx context.Context, id uuid.UUID) error {
	s.begin()

	session, ok := s.cachedSession(id)
	if !ok {
		return s.fail(&Error{Message: "Chat session not found", Err: domain.ErrSessionNotFound})
	}

	env, err := s.api.ListMessages(ctx, id)
	if err != nil || !env.Success || env.Data == nil {
		return s.fail(failure(env.Error, err, "Failed to load messages"))
	}

	s.mu.Lock()
	s.current = &session
	s.messages = append([]domain.ChatMessage{}, *env.Data...)
	s.loading = false
	s.mu.Unlock()
	return nil
}

// SendMessage persists the user's message, asks the model for a reply and
// persists that reply. If the second or third step fails the user message
// stays in the list and no reply is appended.
func (s *ChatStore) SendMessage(ctx context.Context, content string) error {
	current := s.CurrentSession()
	if current == nil {
		return ErrNoSession
	}

	s.begin()
	userEnv, err := s.api.SendMessage(ctx, current.ID, domain.ChatMessageCreate{
		Content: content,
		Role:    domain.RoleUser,
	})
	if err != nil || !userEnv.Success || userEnv.Data == nil {
		return s.fail(failure(userEnv.Error, err, "Failed to send message"))
	}
	s.appendMessage(current.ID, *userEnv.Data)

	llmEnv, err := s.api.SendToLLM(ctx, domain.LLMChatRequest{
		Message:   content,
		SessionID: current.ID.String(),
		Provider:  s.provider,
	})
	if err != nil || !llmEnv.Success || llmEnv.Data == nil {
		return s.fail(failure(llmEnv.Error, err, "Failed to get LLM response"))
	}

	replyEnv, err := s.api.SendMessage(ctx, current.ID, domain.ChatMessageCreate{
		Content: llmEnv.Data.Response,
		Role:    domain.RoleAssistant,
	})
	if err != nil || !replyEnv.Success || replyEnv.Data == nil {
		return s.fail(failure(replyEnv.Error, err, "Failed to send message"))
	}
	s.appendMessage(current.ID, *replyEnv.Data)

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	return nil
}

// DeleteSession drops the session and resets the view if it was current
func (s *ChatStore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	s.begin()
	env, err := s.api.DeleteSession(ctx, id)
	if err != nil || !env.Success {
		return s.fail(failure(env.Error, err, "Failed to delete session"))
	}

	s.mu.Lock()
	kept := s.sessions[:0:0]
	for _, sess := range s.sessions {
		if sess.ID != id {
			kept = append(kept, sess)
		}
	}
	s.sessions = kept
	if s.current != nil && s.current.ID == id {
		s.current = nil
		s.messages = []domain.ChatMessage{}
	}
	s.loading = false
	s.mu.Unlock()
	return nil
}

// ClearHistory removes every message of the session. The session stays.
func (s *ChatStore) ClearHistory(ctx context.Context, id uuid.UUID) error {
	s.begin()
	env, err := s.api.ClearHistory(ctx, id)
	if err != nil || !env.Success {
		return s.fail(failure(env.Error, err, "Failed to clear history"))
	}

	s.mu.Lock()
	if s.current != nil && s.current.ID == id {
		s.messages = []domain.ChatMessage{}
	}
	s.loading = false
	s.mu.Unlock()
	return nil
}

func (s *ChatStore) cachedSession(id uuid.UUID) (domain.ChatSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return domain.ChatSession{}, false
}

// appendMessage adds msg unless the user switched sessions meanwhile
func (s *ChatStore) appendMessage(sessionID uuid.UUID, msg domain.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.current.ID == sessionID {
		s.messages = append(s.messages, msg)
	}
}
