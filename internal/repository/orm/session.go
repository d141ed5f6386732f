package orm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rrens/taskchat/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionRepository implements domain.SessionRepository
type SessionRepository struct {
	db *gorm.DB
}

var _ domain.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db.Gorm}
}

type sessionWithCount struct {
	ID           uuid.UUID `gorm:"column:id"`
	Name         string    `gorm:"column:name"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
	MessageCount int64     `gorm:"column:message_count"`
}

func (r *SessionRepository) List(ctx context.Context) ([]domain.ChatSession, error) {
	var rows []sessionWithCount
	err := r.db.WithContext(ctx).
		Model(&ChatSession{}).
		Select("chat_sessions.id, chat_sessions.name, chat_sessions.created_at, chat_sessions.updated_at, " +
			"(SELECT COUNT(*) FROM chat_messages WHERE chat_messages.session_id = chat_sessions.id) AS message_count").
		Order("chat_sessions.updated_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]domain.ChatSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, domain.ChatSession{
			ID:           row.ID,
			Name:         row.Name,
			MessageCount: row.MessageCount,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return sessions, nil
}

func (r *SessionRepository) Get(ctx context.Context, id uuid.UUID) (*domain.ChatSession, error) {
	var row ChatSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&ChatMessage{}).Where("session_id = ?", id).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	s := row.toDomain()
	s.MessageCount = count
	return &s, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.ChatSession) error {
	row := ChatSession{
		ID:        session.ID,
		Name:      session.Name,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&ChatMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", id).Delete(&ContextFile{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&ChatSession{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrSessionNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// sessionExists must run on the transaction handle when called inside one
func sessionExists(tx *gorm.DB, id uuid.UUID) error {
	var count int64
	if err := tx.Model(&ChatSession{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
