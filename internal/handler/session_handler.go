package handler

import (
	"net/http"
	"strings"

	"tradesouq/internal/commerce"
	"tradesouq/internal/model"
	"tradesouq/internal/session"

	"github.com/rs/zerolog"
)

// SessionHandler handles favourites, notifications and session settings —
// the parts of the API that act directly on the commerce engine without a
// backing service.
type SessionHandler struct {
	sessions *session.Manager
	logger   zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessions *session.Manager, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		logger:   logger.With().Str("handler", "session").Logger(),
	}
}

func (h *SessionHandler) engine(w http.ResponseWriter, r *http.Request) (*commerce.Engine, bool) {
	engine, err := h.sessions.Lookup(r.Header.Get(SessionTokenHeader))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return nil, false
	}
	return engine, true
}

// ToggleFavorite handles POST /api/favorites/{id} requests.
func (h *SessionHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/favorites/")
	if id == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	favorite := engine.ToggleFavorite(id)
	writeJSON(w, http.StatusOK, map[string]bool{"favorite": favorite})
}

// ListFavorites handles GET /api/favorites requests.
func (h *SessionHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, engine.Favorites())
}

// ListNotifications handles GET /api/notifications requests.
func (h *SessionHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": engine.Notifications(),
		"unread":        engine.UnreadNotifications(),
	})
}

// MarkNotificationRead handles POST /api/notifications/{id}/read requests.
// Marking a missing notification is a no-op.
func (h *SessionHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/notifications/")
	id := strings.TrimSuffix(path, "/read")
	if id == "" || id == path {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "notification ID is required", h.logger)
		return
	}

	engine.MarkNotificationRead(id)
	w.WriteHeader(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/notifications/read-all requests.
func (h *SessionHandler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	engine.MarkAllNotificationsRead()
	w.WriteHeader(http.StatusNoContent)
}

type countryRequest struct {
	Country string `json:"country"`
}

// SetCountry handles PUT /api/session/country requests, switching the
// active market used for display prices.
func (h *SessionHandler) SetCountry(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	var req countryRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	if err := engine.SetCountry(req.Country); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, engine.Country())
}
