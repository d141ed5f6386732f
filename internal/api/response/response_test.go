package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_EmptyListIsKept(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, []string{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "Task not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Nil(t, body.Data)
	assert.Equal(t, "Task not found", body.Error)
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, "Task deleted successfully")

	assert.JSONEq(t, `{"success":true,"data":{"message":"Task deleted successfully"}}`, rec.Body.String())
}
