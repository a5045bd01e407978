package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"tradesouq/internal/model"

	"github.com/rs/zerolog"
)

// SessionTokenHeader carries the session token issued at login.
const SessionTokenHeader = "X-Session-Token"

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Str("code", code).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a service error onto an HTTP status. Domain errors
// carry their own code; anything else is an internal error.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	status := http.StatusBadRequest
	switch domainErr.Code {
	case model.ErrCodeAuthRequired:
		status = http.StatusUnauthorized
	case model.ErrCodeProductNotFound, model.ErrCodeOrderNotFound:
		status = http.StatusNotFound
	case model.ErrCodePaymentDeclined:
		status = http.StatusPaymentRequired
	case model.ErrCodeInvalidTransition, model.ErrCodeDuplicateRequest:
		status = http.StatusConflict
	case model.ErrCodeInternalError:
		status = http.StatusInternalServerError
	}

	writeError(w, status, domainErr.Code, domainErr.Message, logger)
}

// decodeJSON decodes the request body into dst, reporting INVALID_JSON on
// malformed payloads.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	return true
}
