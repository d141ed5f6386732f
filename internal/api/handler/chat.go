package handler

import (
	"net/http"

	"github.com/Rrens/taskchat/internal/api/response"
	"github.com/Rrens/taskchat/internal/domain"
	"github.com/Rrens/taskchat/internal/service"
)

// ChatHandler handles chat session endpoints
type ChatHandler struct {
	chatService *service.ChatService
	errors      ErrorRenderer
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService, errors ErrorRenderer) *ChatHandler {
	return &ChatHandler{chatService: chatService, errors: errors}
}

func (h *ChatHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.chatService.ListSessions(r.Context())
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	response.OK(w, sessions)
}

func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var input domain.ChatSessionCreate
	if !readJSON(w, r, &input) {
		return
	}

	session, err := h.chatService.CreateSession(r.Context(), input)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	response.Created(w, session)
}

func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "invalid session ID")
	if !ok {
		return
	}

	messages, err := h.chatService.ListMessages(r.Context(), id)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	response.OK(w, messages)
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "invalid session ID")
	if !ok {
		return
	}

	var input domain.ChatMessageCreate
	if !readJSON(w, r, &input) {
		return
	}

	message, err := h.chatService.SendMessage(r.Context(), id, input)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	response.Created(w, message)
}

func (h *ChatHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "invalid session ID")
	if !ok {
		return
	}

	if err := h.chatService.DeleteSession(r.Context(), id); err != nil {
		h.errors.Render(w, r, err)
		return
	}

	response.Message(w, "Chat session deleted successfully")
}

func (h *ChatHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "invalid session ID")
	if !ok {
		return
	}

	if err := h.chatService.ClearHistory(r.Context(), id); err != nil {
		h.errors.Render(w, r, err)
		return
	}

	response.Message(w, "Chat history cleared successfully")
}
