package handler

import (
	"net/http"

	"github.com/Rrens/taskchat/internal/api/response"
	"github.com/Rrens/taskchat/internal/domain"
	"github.com/Rrens/taskchat/internal/service"
)

// TaskHandler handles task endpoints
type TaskHandler struct {
	taskService *service.TaskService
	errors      ErrorRenderer
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *service.TaskService, errors ErrorRenderer) *TaskHandler {
	return &TaskHandler{taskService: taskService, errors: errors}
}

// List handles listing every task
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	response.OK(w, tasks)
}

// Create handles task creation
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.TaskCreate
	if !readJSON(w, r, &input) {
		return
	}

	task, err := h.taskService.Create(r.Context(), input)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	response.Created(w, task)
}

// Update handles partial task updates
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "invalid task ID")
	if !ok {
		return
	}

	var input domain.TaskUpdate
	if !readJSON(w, r, &input) {
		return
	}

	task, err := h.taskService.Update(r.Context(), id, input)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	response.OK(w, task)
}

// Delete handles task deletion
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "invalid task ID")
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		h.errors.Render(w, r, err)
		return
	}

	response.Message(w, "Task deleted successfully")
}

// TogglePriority handles flipping the priority flag
func (h *TaskHandler) TogglePriority(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "invalid task ID")
	if !ok {
		return
	}

	task, err := h.taskService.TogglePriority(r.Context(), id)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	response.OK(w, task)
}
