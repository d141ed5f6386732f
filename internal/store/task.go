package store

import (
	"context"
	"sync"

	"github.com/Rrens/taskchat/internal/client"
	"github.com/Rrens/taskchat/internal/domain"
	"github.com/google/uuid"
)

// TaskAPI is the part of the API client the task store needs
type TaskAPI interface {
	ListTasks(ctx context.Context) (client.Envelope[[]domain.Task], error)
	CreateTask(ctx context.Context, input domain.TaskCreate) (client.Envelope[domain.Task], error)
	UpdateTask(ctx context.Context, id uuid.UUID, input domain.TaskUpdate) (client.Envelope[domain.Task], error)
	DeleteTask(ctx context.Context, id uuid.UUID) (client.Envelope[client.Message], error)
	ToggleTaskPriority(ctx context.Context, id uuid.UUID) (client.Envelope[domain.Task], error)
}

// TaskFilter selects which tasks a view shows
type TaskFilter struct {
	PriorityOnly bool
	Status       domain.TaskStatus
}

// Match reports whether t passes the filter
func (f TaskFilter) Match(t domain.Task) bool {
	if f.PriorityOnly && !t.Priority {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	return true
}

// TaskStore holds the task list
type TaskStore struct {
	api TaskAPI

	mu      sync.RWMutex
	tasks   []domain.Task
	loading bool
	err     string
}

// NewTaskStore creates an empty store backed by api
func NewTaskStore(api TaskAPI) *TaskStore {
	return &TaskStore{api: api}
}

// Tasks returns a copy of the cached list
func (s *TaskStore) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Task(nil), s.tasks...)
}

// Filtered returns the cached tasks matching f, in list order
func (s *TaskStore) Filtered(f TaskFilter) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s *TaskStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last error message, empty if none
func (s *TaskStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *TaskStore) ClearError() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *TaskStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *TaskStore) fail(e *Error) error {
	s.mu.Lock()
	s.err = e.Message
	s.loading = false
	s.mu.Unlock()
	return e
}

// Fetch replaces the cached list with the server's
func (s *TaskStore) Fetch(ctx context.Context) error {
	s.begin()
	env, err := s.api.ListTasks(ctx)
	if err != nil || !env.Success || env.Data == nil {
		return s.fail(failure(env.Error, err, "Failed to fetch tasks"))
	}

	s.mu.Lock()
	s.tasks = append([]domain.Task(nil), *env.Data...)
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Create stores a new task and puts it at the head of the list
func (s *TaskStore) Create(ctx context.Context, input domain.TaskCreate) (*domain.Task, error) {
	s.begin()
	env, err := s.api.CreateTask(ctx, input)
	if err != nil || !env.Success || env.Data == nil {
		return nil, s.fail(failure(env.Error, err, "Failed to create task"))
	}

	task := *env.Data
	s.mu.Lock()
	s.tasks = append([]domain.Task{task}, s.tasks...)
	s.loading = false
	s.mu.Unlock()
	return &task, nil
}

func (s *TaskStore) Update(ctx context.Context, id uuid.UUID, input domain.TaskUpdate) (*domain.Task, error) {
	s.begin()
	env, err := s.api.UpdateTask(ctx, id, input)
	if err != nil || !env.Success || env.Data == nil {
		return nil, s.fail(failure(env.Error, err, "Failed to update task"))
	}
	return s.replace(*env.Data), nil
}

func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.begin()
	env, err := s.api.DeleteTask(ctx, id)
	if err != nil || !env.Success {
		return s.fail(failure(env.Error, err, "Failed to delete task"))
	}

	s.mu.Lock()
	kept := s.tasks[:0:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.loading = false
	s.mu.Unlock()
	return nil
}

func (s *TaskStore) TogglePriority(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	s.begin()
	env, err := s.api.ToggleTaskPriority(ctx, id)
	if err != nil || !env.Success || env.Data == nil {
		return nil, s.fail(failure(env.Error, err, "Failed to toggle task priority"))
	}
	return s.replace(*env.Data), nil
}

// replace swaps the cached entry with the same id in place
func (s *TaskStore) replace(task domain.Task) *domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = task
			break
		}
	}
	s.loading = false
	return &task
}
