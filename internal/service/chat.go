package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/taskchat/internal/domain"
	"github.com/Rrens/taskchat/internal/validation"
	"github.com/google/uuid"
)

// ChatService handles chat sessions and their messages
type ChatService struct {
	sessionRepo domain.SessionRepository
	messageRepo domain.MessageRepository
	now         func() time.Time
}

// NewChatService creates a new chat service
func NewChatService(sessionRepo domain.SessionRepository, messageRepo domain.MessageRepository) *ChatService {
	return &ChatService{
		sessionRepo: sessionRepo,
		messageRepo: messageRepo,
		now:         now,
	}
}

// ListSessions returns sessions most recently updated first
func (s *ChatService) ListSessions(ctx context.Context) ([]domain.ChatSession, error) {
	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// CreateSession creates an empty session
func (s *ChatService) CreateSession(ctx context.Context, input domain.ChatSessionCreate) (*domain.ChatSession, error) {
	if err := validation.Struct(&input); err != nil {
		return nil, err
	}

	at := s.now()
	session := &domain.ChatSession{
		ID:        uuid.New(),
		Name:      input.Name,
		CreatedAt: at,
		UpdatedAt: at,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// ListMessages returns the messages of a session oldest first
func (s *ChatService) ListMessages(ctx context.Context, sessionID uuid.UUID) ([]domain.ChatMessage, error) {
	messages, err := s.messageRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// SendMessage appends a message to an existing session
func (s *ChatService) SendMessage(ctx context.Context, sessionID uuid.UUID, input domain.ChatMessageCreate) (*domain.ChatMessage, error) {
	if err := validation.Struct(&input); err != nil {
		return nil, err
	}

	message := &domain.ChatMessage{
		ID:        uuid.New(),
		Content:   input.Content,
		Role:      input.Role,
		SessionID: sessionID,
		CreatedAt: s.now(),
	}

	if err := s.messageRepo.Append(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return message, nil
}

// DeleteSession removes a session and everything it owns
func (s *ChatService) DeleteSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ClearHistory removes every message but keeps the session
func (s *ChatService) ClearHistory(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := s.messageRepo.DeleteBySession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
