package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/taskchat/internal/domain"
	"github.com/Rrens/taskchat/internal/validation"
	"github.com/google/uuid"
)

// TaskService handles task operations
type TaskService struct {
	taskRepo domain.TaskRepository
	now      func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo domain.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, now: now}
}

// List returns all tasks, priority first then newest first
func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create validates input and stores a new TODO task
func (s *TaskService) Create(ctx context.Context, input domain.TaskCreate) (*domain.Task, error) {
	if err := validation.Struct(&input); err != nil {
		return nil, err
	}

	at := s.now()
	task := &domain.Task{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Notes:       input.Notes,
		Status:      domain.TaskStatusTodo,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// Update applies a partial update
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, input domain.TaskUpdate) (*domain.Task, error) {
	if err := validation.Struct(&input); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.Update(ctx, id, input, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// Delete removes a task
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// TogglePriority flips the priority flag
func (s *TaskService) TogglePriority(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.TogglePriority(ctx, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to toggle priority: %w", err)
	}
	return task, nil
}

// now truncates to microseconds, the finest precision every supported database keeps
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
