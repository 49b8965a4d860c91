package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/validator"
)

// Envelope is the body of every API response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Envelope{Data: data})
}

// writeError maps err to a status code and error code. Client errors are
// logged at warn level, anything unexpected at error level.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	detail := &ErrorDetail{Message: err.Error()}
	status := http.StatusInternalServerError

	switch verrs := validator.ExtractValidationErrors(err); {
	case verrs != nil:
		status, detail.Code = http.StatusUnprocessableEntity, "validation_failed"
		detail.Message = validator.ErrValidationFailed.Error()
		detail.Details = verrs.Map()
	case errors.Is(err, ErrUnsupportedMediaType):
		status, detail.Code = http.StatusUnsupportedMediaType, "unsupported_media_type"
	case errors.Is(err, ErrInvalidJSON):
		status, detail.Code = http.StatusBadRequest, "invalid_json"
	default:
		detail.Code = "internal"
		detail.Message = http.StatusText(status)
	}

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	log.Log(r.Context(), level, "request failed",
		slog.Int("status", status),
		logger.Error(err),
	)

	writeJSON(w, status, Envelope{Error: detail})
}
