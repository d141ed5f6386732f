package client

import (
	"context"
	"net/http"

	"github.com/Rrens/taskchat/internal/domain"
	"github.com/google/uuid"
)

func (c *Client) ListTasks(ctx context.Context) (Envelope[[]domain.Task], error) {
	return do[[]domain.Task](ctx, c, http.MethodGet, "/tasks", nil)
}

func (c *Client) CreateTask(ctx context.Context, input domain.TaskCreate) (Envelope[domain.Task], error) {
	return do[domain.Task](ctx, c, http.MethodPost, "/tasks", input)
}

func (c *Client) UpdateTask(ctx context.Context, id uuid.UUID, input domain.TaskUpdate) (Envelope[domain.Task], error) {
	return do[domain.Task](ctx, c, http.MethodPut, "/tasks/"+id.String(), input)
}

func (c *Client) DeleteTask(ctx context.Context, id uuid.UUID) (Envelope[Message], error) {
	return do[Message](ctx, c, http.MethodDelete, "/tasks/"+id.String(), nil)
}

func (c *Client) ToggleTaskPriority(ctx context.Context, id uuid.UUID) (Envelope[domain.Task], error) {
	return do[domain.Task](ctx, c, http.MethodPatch, "/tasks/"+id.String()+"/priority", nil)
}
