package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MessageRole represents the author of a chat message
type MessageRole string

const (
	RoleUser      MessageRole = "USER"
	RoleAssistant MessageRole = "ASSISTANT"
)

// ChatSession represents a named conversation
type ChatSession struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	MessageCount int64     `json:"messageCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ChatSessionCreate represents session creation data
type ChatSessionCreate struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

func (c *ChatSessionCreate) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
}

// ChatMessage represents one turn in a session
type ChatMessage struct {
	ID        uuid.UUID   `json:"id"`
	Content   string      `json:"content"`
	Role      MessageRole `json:"role"`
	SessionID uuid.UUID   `json:"sessionId"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ChatMessageCreate represents message creation data
type ChatMessageCreate struct {
	Content string      `json:"content" validate:"required,min=1"`
	Role    MessageRole `json:"role" validate:"required,oneof=USER ASSISTANT"`
}

// ContextFile is a file attached to a session. It only exists in the schema;
// it is removed together with its session.
type ContextFile struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	Filepath   string    `json:"filepath"`
	SessionID  uuid.UUID `json:"sessionId"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// SessionRepository defines the interface for chat session storage
type SessionRepository interface {
	// List returns sessions most recently updated first, with message counts
	List(ctx context.Context) ([]ChatSession, error)
	Get(ctx context.Context, id uuid.UUID) (*ChatSession, error)
	Create(ctx context.Context, session *ChatSession) error
	// Delete removes the session with its messages and context files
	Delete(ctx context.Context, id uuid.UUID) error
}

// MessageRepository defines the interface for chat message storage
type MessageRepository interface {
	// ListBySession returns messages oldest first. The session must exist.
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]ChatMessage, error)
	// Append stores the message and bumps the session updatedAt in one transaction
	Append(ctx context.Context, message *ChatMessage) error
	// DeleteBySession removes every message of an existing session
	DeleteBySession(ctx context.Context, sessionID uuid.UUID) (int64, error)
}
