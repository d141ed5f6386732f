package validation

import (
	"strings"
	"testing"

	"github.com/Rrens/taskchat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestStruct_TaskCreate(t *testing.T) {
	tests := []struct {
		name      string
		input     domain.TaskCreate
		wantField string
	}{
		{name: "valid", input: domain.TaskCreate{Title: "Write report"}},
		{name: "trimmed to empty", input: domain.TaskCreate{Title: "   "}, wantField: "title"},
		{name: "missing", input: domain.TaskCreate{}, wantField: "title"},
		{name: "too long", input: domain.TaskCreate{Title: strings.Repeat("a", 256)}, wantField: "title"},
		{name: "max length", input: domain.TaskCreate{Title: strings.Repeat("a", 255)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			err := Struct(&input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields, tt.wantField)
		})
	}
}

func TestStruct_TrimsTitle(t *testing.T) {
	input := domain.TaskCreate{Title: "  Write report  "}
	require.NoError(t, Struct(&input))
	assert.Equal(t, "Write report", input.Title)
}

func TestStruct_TaskUpdate(t *testing.T) {
	status := domain.TaskStatus("ARCHIVED")

	err := Struct(&domain.TaskUpdate{Title: strPtr("")})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "must not be empty", vErr.Fields["title"])

	err = Struct(&domain.TaskUpdate{Status: &status})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "must be one of: TODO, IN_PROGRESS, DONE", vErr.Fields["status"])

	assert.NoError(t, Struct(&domain.TaskUpdate{}))
	assert.NoError(t, Struct(&domain.TaskUpdate{Notes: strPtr("")}))
}

func TestStruct_ChatMessageCreate(t *testing.T) {
	err := Struct(&domain.ChatMessageCreate{Content: "hello", Role: "SYSTEM"})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "role")

	assert.NoError(t, Struct(&domain.ChatMessageCreate{Content: "hello", Role: domain.RoleUser}))
}

func TestStruct_LLMChatRequest(t *testing.T) {
	err := Struct(&domain.LLMChatRequest{Message: "hi", SessionID: "abc", Provider: "gemini"})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "provider: must be one of: claude, openai", vErr.Error())
}
