package orm

import (
	"context"
	"fmt"

	"github.com/Rrens/taskchat/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository implements domain.MessageRepository
type MessageRepository struct {
	db *gorm.DB
}

var _ domain.MessageRepository = (*MessageRepository)(nil)

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *DB) *MessageRepository {
	return &MessageRepository{db: db.Gorm}
}

func (r *MessageRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.ChatMessage, error) {
	var rows []ChatMessage
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := sessionExists(tx, sessionID); err != nil {
			return err
		}
		return tx.Where("session_id = ?", sessionID).
			Order("created_at ASC").
			Find(&rows).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]domain.ChatMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toDomain())
	}
	return messages, nil
}

func (r *MessageRepository) Append(ctx context.Context, message *domain.ChatMessage) error {
	row := ChatMessage{
		ID:        message.ID,
		Content:   message.Content,
		Role:      string(message.Role),
		SessionID: message.SessionID,
		CreatedAt: message.CreatedAt,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := sessionExists(tx, message.SessionID); err != nil {
			return err
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return tx.Model(&ChatSession{}).
			Where("id = ?", message.SessionID).
			Update("updated_at", message.CreatedAt).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *MessageRepository) DeleteBySession(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := sessionExists(tx, sessionID); err != nil {
			return err
		}
		res := tx.Where("session_id = ?", sessionID).Delete(&ChatMessage{})
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to clear messages: %w", err)
	}
	return deleted, nil
}
