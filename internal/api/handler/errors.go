package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Rrens/taskchat/internal/api/response"
	"github.com/Rrens/taskchat/internal/domain"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrorRenderer maps service errors onto response envelopes
type ErrorRenderer struct {
	production bool
}

// NewErrorRenderer creates a renderer. In production unclassified errors are
// reported with a generic message.
func NewErrorRenderer(production bool) ErrorRenderer {
	return ErrorRenderer{production: production}
}

// Render writes the response for err
func (e ErrorRenderer) Render(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		upstreamErr   *domain.UpstreamConfigError
	)

	switch {
	case errors.As(err, &validationErr):
		response.BadRequest(w, validationErr.Error())

	case errors.As(err, &notFoundErr):
		response.NotFound(w, notFoundErr.Error())

	case errors.As(err, &upstreamErr):
		log.Error().Str("request_id", chimw.GetReqID(r.Context())).Msg(upstreamErr.Error())
		response.InternalError(w, upstreamErr.Error())

	default:
		log.Error().
			Err(err).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Unhandled error")

		message := err.Error()
		if e.production {
			message = "Internal server error"
		}
		response.InternalError(w, message)
	}
}

// readJSON decodes the request body into v. It writes the error response and
// returns false when the body is unusable.
func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
		} else {
			response.BadRequest(w, "invalid request body")
		}
		return false
	}
	return true
}

// parseID reads the {id} URL parameter
func parseID(w http.ResponseWriter, r *http.Request, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, message)
		return uuid.Nil, false
	}
	return id, true
}
