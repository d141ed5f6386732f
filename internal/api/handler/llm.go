package handler

import (
	"net/http"

	"github.com/Rrens/taskchat/internal/api/response"
	"github.com/Rrens/taskchat/internal/domain"
	"github.com/Rrens/taskchat/internal/service"
)

// LLMHandler handles the language model endpoints
type LLMHandler struct {
	llmService *service.LLMService
	errors     ErrorRenderer
}

// NewLLMHandler creates a new LLM handler
func NewLLMHandler(llmService *service.LLMService, errors ErrorRenderer) *LLMHandler {
	return &LLMHandler{llmService: llmService, errors: errors}
}

// Chat answers a single message
func (h *LLMHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var input domain.LLMChatRequest
	if !readJSON(w, r, &input) {
		return
	}

	resp, err := h.llmService.Chat(r.Context(), input)
	if err != nil {
		h.errors.Render(w, r, err)
		return
	}

	response.OK(w, resp)
}

// Providers lists the registered providers
func (h *LLMHandler) Providers(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.llmService.Providers())
}
