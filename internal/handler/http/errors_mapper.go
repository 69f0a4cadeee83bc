package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/go-chi/chi/v5"
)

// Messages rendered in the 404 error envelope. The field name in the envelope
// tells the caller which path segment failed the existence check.
const (
	msgUserNotFound  = "Specified user doesn't exist"
	msgPostNotFound  = "Specified post doesn't exist"
	msgUsernameTaken = "Username is already taken"
)

// renderError maps a service/store error onto an HTTP status and the uniform
// `{"errors": {field: message}}` envelope.
//
// Validation failures carry their own field map and render as 400. Missing
// referenced entities render as 404 keyed by the offending id field. A
// username uniqueness conflict renders as 409. Anything else is an internal
// error and deliberately exposes no detail to the caller.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErrs models.ValidationErrors
	if errors.As(err, &validationErrs) {
		log.Error().Err(err).Msg("request validation failed")
		utils.WriteJSON(w, models.ErrorResponse{Errors: validationErrs}, http.StatusBadRequest) //nolint:errcheck // response already committed
		return
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		writeErrorEnvelope(w, "user_id", msgUserNotFound, http.StatusNotFound)
	case errors.Is(err, store.ErrPostNotFound):
		writeErrorEnvelope(w, "post_id", msgPostNotFound, http.StatusNotFound)
	case errors.Is(err, store.ErrUsernameTaken):
		writeErrorEnvelope(w, "username", msgUsernameTaken, http.StatusConflict)
	default:
		log.Err(err).Msg("unexpected error occurred")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func writeErrorEnvelope(w http.ResponseWriter, field, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{ //nolint:errcheck // response already committed
		Errors: map[string]string{field: message},
	}, statusCode)
}

// pathID extracts a numeric path parameter. A non-numeric value renders a
// 400 envelope keyed by the parameter name and reports false. Numeric ids
// with no matching row (0 included) are left to the store's existence
// checks, which produce the 404 envelope.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeErrorEnvelope(w, name, "must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// queryLimit extracts the optional ?limit= query parameter. An absent limit
// reports a negative sentinel, which the service layer replaces with its
// configured default; an explicit `limit=0` passes through and yields an
// empty page.
func queryLimit(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return -1, true
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		writeErrorEnvelope(w, "limit", "must be a non-negative integer", http.StatusBadRequest)
		return 0, false
	}
	return limit, true
}
