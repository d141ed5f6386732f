package store

import (
	"context"

	"github.com/Rrens/taskchat/internal/client"
	"github.com/Rrens/taskchat/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTaskAPI struct {
	mock.Mock
}

func (m *MockTaskAPI) ListTasks(ctx context.Context) (client.Envelope[[]domain.Task], error) {
	args := m.Called(ctx)
	return args.Get(0).(client.Envelope[[]domain.Task]), args.Error(1)
}

func (m *MockTaskAPI) CreateTask(ctx context.Context, input domain.TaskCreate) (client.Envelope[domain.Task], error) {
	args := m.Called(ctx, input)
	return args.Get(0).(client.Envelope[domain.Task]), args.Error(1)
}

func (m *MockTaskAPI) UpdateTask(ctx context.Context, id uuid.UUID, input domain.TaskUpdate) (client.Envelope[domain.Task], error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(client.Envelope[domain.Task]), args.Error(1)
}

func (m *MockTaskAPI) DeleteTask(ctx context.Context, id uuid.UUID) (client.Envelope[client.Message], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(client.Envelope[client.Message]), args.Error(1)
}

func (m *MockTaskAPI) ToggleTaskPriority(ctx context.Context, id uuid.UUID) (client.Envelope[domain.Task], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(client.Envelope[domain.Task]), args.Error(1)
}

type MockChatAPI struct {
	mock.Mock
}

func (m *MockChatAPI) ListSessions(ctx context.Context) (client.Envelope[[]domain.ChatSession], error) {
	args := m.Called(ctx)
	return args.Get(0).(client.Envelope[[]domain.ChatSession]), args.Error(1)
}

func (m *MockChatAPI) CreateSession(ctx context.Context, input domain.ChatSessionCreate) (client.Envelope[domain.ChatSession], error) {
	args := m.Called(ctx, input)
	return args.Get(0).(client.Envelope[domain.ChatSession]), args.Error(1)
}

func (m *MockChatAPI) ListMessages(ctx context.Context, sessionID uuid.UUID) (client.Envelope[[]domain.ChatMessage], error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(client.Envelope[[]domain.ChatMessage]), args.Error(1)
}

func (m *MockChatAPI) SendMessage(ctx context.Context, sessionID uuid.UUID, input domain.ChatMessageCreate) (client.Envelope[domain.ChatMessage], error) {
	args := m.Called(ctx, sessionID, input)
	return args.Get(0).(client.Envelope[domain.ChatMessage]), args.Error(1)
}

func (m *MockChatAPI) DeleteSession(ctx context.Context, sessionID uuid.UUID) (client.Envelope[client.Message], error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(client.Envelope[client.Message]), args.Error(1)
}

func (m *MockChatAPI) ClearHistory(ctx context.Context, sessionID uuid.UUID) (client.Envelope[client.Message], error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(client.Envelope[client.Message]), args.Error(1)
}

func (m *MockChatAPI) SendToLLM(ctx context.Context, input domain.LLMChatRequest) (client.Envelope[domain.LLMChatResponse], error) {
	args := m.Called(ctx, input)
	return args.Get(0).(client.Envelope[domain.LLMChatResponse]), args.Error(1)
}

func ok[T any](v T) client.Envelope[T] {
	return client.Envelope[T]{Success: true, Data: &v}
}

func failed[T any](msg string) client.Envelope[T] {
	return client.Envelope[T]{Success: false, Error: msg}
}
