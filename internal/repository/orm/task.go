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

// TaskRepository implements domain.TaskRepository
type TaskRepository struct {
	db *gorm.DB
}

var _ domain.TaskRepository = (*TaskRepository)(nil)

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db.Gorm}
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	var rows []Task
	err := r.db.WithContext(ctx).
		Order("priority DESC").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, row.toDomain())
	}
	return tasks, nil
}

func (r *TaskRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	return getTask(r.db.WithContext(ctx), id)
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	row := taskFromDomain(task)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, update domain.TaskUpdate, at time.Time) (*domain.Task, error) {
	changes := map[string]any{"updated_at": at}
	if update.Title != nil {
		changes["title"] = *update.Title
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if update.Notes != nil {
		changes["notes"] = *update.Notes
	}
	if update.Status != nil {
		changes["status"] = string(*update.Status)
	}
	if update.Priority != nil {
		changes["priority"] = *update.Priority
	}

	var task *domain.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Task{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrTaskNotFound
		}

		var err error
		task, err = getTask(tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Task{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// TogglePriority flips the flag with a single UPDATE so concurrent toggles
// never read the same prior value.
func (r *TaskRepository) TogglePriority(ctx context.Context, id uuid.UUID, at time.Time) (*domain.Task, error) {
	var task *domain.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Task{}).Where("id = ?", id).Updates(map[string]any{
			"priority":   gorm.Expr("NOT priority"),
			"updated_at": at,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrTaskNotFound
		}

		var err error
		task, err = getTask(tx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle task priority: %w", err)
	}
	return task, nil
}

func getTask(db *gorm.DB, id uuid.UUID) (*domain.Task, error) {
	var row Task
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	task := row.toDomain()
	return &task, nil
}
