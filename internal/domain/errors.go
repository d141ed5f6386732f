package domain

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is matched by every NotFoundError
var ErrNotFound = errors.New("not found")

var (
	ErrTaskNotFound    = &NotFoundError{Resource: "Task"}
	ErrSessionNotFound = &NotFoundError{Resource: "Chat session"}
)

// NotFoundError reports a missing entity
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ErrNoLLMCredentials is returned when no provider has an API key
var ErrNoLLMCredentials = &UpstreamConfigError{Message: "No LLM API keys configured"}

// UpstreamConfigError reports a server side misconfiguration of an upstream service
type UpstreamConfigError struct {
	Message string
}

func (e *UpstreamConfigError) Error() string {
	return e.Message
}

// ValidationError maps request fields to what is wrong with them
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return strings.Join(parts, "; ")
}
