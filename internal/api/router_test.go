package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Rrens/taskchat/internal/config"
	"github.com/Rrens/taskchat/internal/domain"
	"github.com/Rrens/taskchat/internal/repository/orm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *testServer {
	t.Helper()

	db, err := orm.NewDB(context.Background(), config.DatabaseConfig{
		Driver:      config.DriverSQLite,
		Path:        ":memory:",
		AutoMigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	cfg := &config.Config{
		Env:    "development",
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		LLM: config.LLMConfig{
			DefaultProvider: domain.ProviderClaude,
			Anthropic:       config.AnthropicConfig{APIKey: "sk-ant-test"},
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}
	for _, m := range mutate {
		m(cfg)
	}

	return &testServer{t: t, handler: NewRouter(cfg, db, nil)}
}

func (s *testServer) do(method, path string, body any) (int, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestTasks_CreateScenario(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodPost, "/api/tasks", map[string]any{"title": "Write report"})
	require.Equal(t, http.StatusCreated, code, env.Error)
	assert.True(t, env.Success)

	raw := decode[map[string]any](t, env)
	assert.Equal(t, "Write report", raw["title"])
	assert.Equal(t, "TODO", raw["status"])
	assert.Equal(t, false, raw["priority"])
	assert.Nil(t, raw["description"])
	assert.Nil(t, raw["notes"])
	assert.Equal(t, raw["createdAt"], raw["updatedAt"])
	_, err := uuid.Parse(raw["id"].(string))
	assert.NoError(t, err)
}

func TestTasks_Lifecycle(t *testing.T) {
	s := newTestServer(t)

	_, env := s.do(http.MethodPost, "/api/tasks", map[string]any{"title": "first"})
	first := decode[domain.Task](t, env)
	_, env = s.do(http.MethodPost, "/api/tasks", map[string]any{"title": "second", "priority": true})
	second := decode[domain.Task](t, env)
	assert.True(t, second.Priority)

	code, env := s.do(http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, code)
	tasks := decode[[]domain.Task](t, env)
	require.Len(t, tasks, 2)
	assert.Equal(t, second.ID, tasks[0].ID)

	// update
	code, env = s.do(http.MethodPut, "/api/tasks/"+first.ID.String(), map[string]any{"status": "IN_PROGRESS", "notes": "halfway"})
	require.Equal(t, http.StatusOK, code, env.Error)
	updated := decode[domain.Task](t, env)
	assert.Equal(t, domain.TaskStatusInProgress, updated.Status)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "halfway", *updated.Notes)
	assert.Equal(t, "first", updated.Title)
	assert.False(t, updated.UpdatedAt.Before(first.UpdatedAt))

	code, env = s.do(http.MethodPut, "/api/tasks/"+first.ID.String(), map[string]any{"title": ""})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, env.Error, "title")

	code, _ = s.do(http.MethodPut, "/api/tasks/"+first.ID.String(), map[string]any{"status": "ARCHIVED"})
	assert.Equal(t, http.StatusBadRequest, code)

	// double toggle returns to the original value
	code, env = s.do(http.MethodPatch, "/api/tasks/"+first.ID.String()+"/priority", nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, decode[domain.Task](t, env).Priority)
	_, env = s.do(http.MethodPatch, "/api/tasks/"+first.ID.String()+"/priority", nil)
	assert.False(t, decode[domain.Task](t, env).Priority)

	// delete twice
	code, env = s.do(http.MethodDelete, "/api/tasks/"+first.ID.String(), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Task deleted successfully", decode[map[string]string](t, env)["message"])

	code, env = s.do(http.MethodDelete, "/api/tasks/"+first.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Task not found", env.Error)
}

func TestTasks_BadInput(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodPost, "/api/tasks", map[string]any{"title": strings.Repeat("x", 256)})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)

	code, env = s.do(http.MethodPost, "/api/tasks", "{not json")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid request body", env.Error)

	code, env = s.do(http.MethodPatch, "/api/tasks/not-a-uuid/priority", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid task ID", env.Error)

	code, env = s.do(http.MethodPatch, "/api/tasks/"+uuid.NewString()+"/priority", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Task not found", env.Error)
}

func TestChats_Scenario(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodPost, "/api/chats", map[string]any{"name": "Planning"})
	require.Equal(t, http.StatusCreated, code, env.Error)
	session := decode[domain.ChatSession](t, env)
	assert.Equal(t, "Planning", session.Name)

	base := "/api/chats/" + session.ID.String()

	code, env = s.do(http.MethodPost, base+"/messages", map[string]any{"content": "hello", "role": "USER"})
	require.Equal(t, http.StatusCreated, code, env.Error)
	msg := decode[map[string]any](t, env)
	assert.Equal(t, session.ID.String(), msg["sessionId"])

	code, env = s.do(http.MethodGet, base+"/messages", nil)
	require.Equal(t, http.StatusOK, code)
	messages := decode[[]domain.ChatMessage](t, env)
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].Content)
	assert.Equal(t, domain.RoleUser, messages[0].Role)

	_, env = s.do(http.MethodGet, "/api/chats", nil)
	sessions := decode[[]map[string]any](t, env)
	require.Len(t, sessions, 1)
	assert.Equal(t, float64(1), sessions[0]["messageCount"])

	// clear keeps the session
	code, env = s.do(http.MethodPost, base+"/clear", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Chat history cleared successfully", decode[map[string]string](t, env)["message"])

	code, env = s.do(http.MethodGet, base+"/messages", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]domain.ChatMessage](t, env))

	// delete removes messages with the session
	s.do(http.MethodPost, base+"/messages", map[string]any{"content": "again", "role": "ASSISTANT"})
	code, env = s.do(http.MethodDelete, base, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Chat session deleted successfully", decode[map[string]string](t, env)["message"])

	code, env = s.do(http.MethodGet, base+"/messages", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Chat session not found", env.Error)
}

func TestChats_UnknownSession(t *testing.T) {
	s := newTestServer(t)
	base := "/api/chats/" + uuid.NewString()

	code, env := s.do(http.MethodPost, base+"/messages", map[string]any{"content": "hello", "role": "USER"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Chat session not found", env.Error)

	code, _ = s.do(http.MethodPost, base+"/clear", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodPost, "/api/chats", map[string]any{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestLLM_Chat(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodPost, "/api/llm/chat", map[string]any{"message": "hi", "sessionId": "abc", "provider": "openai"})
	require.Equal(t, http.StatusOK, code, env.Error)
	resp := decode[domain.LLMChatResponse](t, env)
	assert.Equal(t, "This is a placeholder response for: hi. LLM integration will be implemented in the UI phase.", resp.Response)
	assert.Equal(t, "openai", resp.Provider)
	assert.Equal(t, "abc", resp.SessionID)

	code, _ = s.do(http.MethodPost, "/api/llm/chat", map[string]any{"message": "hi", "sessionId": "abc", "provider": "gemini"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = s.do(http.MethodGet, "/api/llm/providers", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]domain.ProviderInfo](t, env), 2)
}

func TestLLM_ChatWithoutCredentials(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.LLM.Anthropic.APIKey = ""
	})

	code, env := s.do(http.MethodPost, "/api/llm/chat", map[string]any{"message": "hi", "sessionId": "abc", "provider": "claude"})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "No LLM API keys configured", env.Error)
}

func TestHealthAndSecurityHeaders(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	code, _ := s.do(http.MethodGet, "/api/ready", nil)
	assert.Equal(t, http.StatusOK, code)
}
