package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// Valid reports whether s is a known status
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task represents a user tracked unit of work
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Notes       *string    `json:"notes"`
	Status      TaskStatus `json:"status"`
	Priority    bool       `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskCreate represents task creation data
type TaskCreate struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Priority    *bool   `json:"priority,omitempty"`
}

// Normalize trims the title before validation
func (c *TaskCreate) Normalize() {
	c.Title = strings.TrimSpace(c.Title)
}

// TaskUpdate represents a partial task update. Nil fields are left untouched.
type TaskUpdate struct {
	Title       *string     `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string     `json:"description,omitempty"`
	Notes       *string     `json:"notes,omitempty"`
	Status      *TaskStatus `json:"status,omitempty" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	Priority    *bool       `json:"priority,omitempty"`
}

// Normalize trims a present title before validation
func (u *TaskUpdate) Normalize() {
	if u.Title != nil {
		trimmed := strings.TrimSpace(*u.Title)
		u.Title = &trimmed
	}
}

// Empty reports whether the update carries no field at all
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Notes == nil && u.Status == nil && u.Priority == nil
}

// TaskRepository defines the interface for task storage
type TaskRepository interface {
	// List returns every task, priority tasks first, newest first within each group
	List(ctx context.Context) ([]Task, error)
	Get(ctx context.Context, id uuid.UUID) (*Task, error)
	Create(ctx context.Context, task *Task) error
	// Update applies the non-nil fields of update and stamps updatedAt with at
	Update(ctx context.Context, id uuid.UUID, update TaskUpdate, at time.Time) (*Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// TogglePriority negates priority atomically and returns the stored row
	TogglePriority(ctx context.Context, id uuid.UUID, at time.Time) (*Task, error)
}
