package orm

import (
	"fmt"
	"time"

	"github.com/Rrens/taskchat/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID          uuid.UUID `gorm:"column:id;type:varchar(36);primaryKey"`
	Title       string    `gorm:"column:title;size:255;not null"`
	Description *string   `gorm:"column:description;type:text"`
	Notes       *string   `gorm:"column:notes;type:text"`
	Status      string    `gorm:"column:status;size:20;not null"`
	Priority    bool      `gorm:"column:priority;not null;index:idx_tasks_priority_created,priority:1"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;index:idx_tasks_priority_created,priority:2"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (Task) TableName() string { return "tasks" }

func (t Task) toDomain() domain.Task {
	return domain.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Notes:       t.Notes,
		Status:      domain.TaskStatus(t.Status),
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func taskFromDomain(t *domain.Task) Task {
	return Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Notes:       t.Notes,
		Status:      string(t.Status),
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type ChatSession struct {
	ID           uuid.UUID     `gorm:"column:id;type:varchar(36);primaryKey"`
	Name         string        `gorm:"column:name;size:255;not null"`
	CreatedAt    time.Time     `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time     `gorm:"column:updated_at;not null;index:idx_chat_sessions_updated"`
	Messages     []ChatMessage `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	ContextFiles []ContextFile `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

func (ChatSession) TableName() string { return "chat_sessions" }

func (s ChatSession) toDomain() domain.ChatSession {
	return domain.ChatSession{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type ChatMessage struct {
	ID        uuid.UUID `gorm:"column:id;type:varchar(36);primaryKey"`
	Content   string    `gorm:"column:content;type:text;not null"`
	Role      string    `gorm:"column:role;size:20;not null"`
	SessionID uuid.UUID `gorm:"column:session_id;type:varchar(36);not null;index:idx_chat_messages_session_created,priority:1"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_chat_messages_session_created,priority:2"`
}

func (ChatMessage) TableName() string { return "chat_messages" }

func (m ChatMessage) toDomain() domain.ChatMessage {
	return domain.ChatMessage{
		ID:        m.ID,
		Content:   m.Content,
		Role:      domain.MessageRole(m.Role),
		SessionID: m.SessionID,
		CreatedAt: m.CreatedAt,
	}
}

type ContextFile struct {
	ID         uuid.UUID `gorm:"column:id;type:varchar(36);primaryKey"`
	Filename   string    `gorm:"column:filename;size:255;not null"`
	Filepath   string    `gorm:"column:filepath;type:text;not null"`
	SessionID  uuid.UUID `gorm:"column:session_id;type:varchar(36);not null;index"`
	UploadedAt time.Time `gorm:"column:uploaded_at;not null"`
}

func (ContextFile) TableName() string { return "context_files" }

// AutoMigrate creates or updates every table from the models
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Task{},
		&ChatSession{},
		&ChatMessage{},
		&ContextFile{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
