package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tradesouq/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_ToggleFavorite(t *testing.T) {
	sessions, token, engine := newTestSession(t)
	h := NewSessionHandler(sessions, zerolog.Nop())

	toggle := func() map[string]bool {
		req := httptest.NewRequest(http.MethodPost, "/api/favorites/p1", nil)
		req.Header.Set(SessionTokenHeader, token)
		rec := httptest.NewRecorder()
		h.ToggleFavorite(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]bool
		decodeBody(t, rec, &resp)
		return resp
	}

	assert.True(t, toggle()["favorite"])
	assert.True(t, engine.IsFavorite("p1"))

	assert.False(t, toggle()["favorite"])
	assert.False(t, engine.IsFavorite("p1"))
}

func TestSessionHandler_ListFavorites(t *testing.T) {
	sessions, token, engine := newTestSession(t)
	engine.ToggleFavorite("p1")
	h := NewSessionHandler(sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	req.Header.Set(SessionTokenHeader, token)
	rec := httptest.NewRecorder()

	h.ListFavorites(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []string
	decodeBody(t, rec, &resp)
	assert.Equal(t, []string{"p1"}, resp)
}

func TestSessionHandler_Notifications(t *testing.T) {
	sessions, token, engine := newTestSession(t)
	_, err := engine.CreateOrder(model.Product{
		ID:    "p1",
		Name:  model.LocalizedText{"en": "Industrial Pump"},
		Price: 25,
		MOQ:   1,
		Stock: 500,
	}, 4)
	require.NoError(t, err)

	h := NewSessionHandler(sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.Header.Set(SessionTokenHeader, token)
	rec := httptest.NewRecorder()

	h.ListNotifications(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Notifications []model.Notification `json:"notifications"`
		Unread        int                  `json:"unread"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, 1, resp.Unread)
	assert.Equal(t, "Order created successfully!", resp.Notifications[0].Title)
	assert.Equal(t, "4x Industrial Pump", resp.Notifications[0].Body)

	// Mark it read
	id := resp.Notifications[0].ID
	markReq := httptest.NewRequest(http.MethodPost, "/api/notifications/"+id+"/read", nil)
	markReq.Header.Set(SessionTokenHeader, token)
	markRec := httptest.NewRecorder()

	h.MarkNotificationRead(markRec, markReq)

	assert.Equal(t, http.StatusNoContent, markRec.Code)
	assert.Equal(t, 0, engine.UnreadNotifications())
}

func TestSessionHandler_MarkAllNotificationsRead(t *testing.T) {
	sessions, token, engine := newTestSession(t)
	p := model.Product{ID: "p1", Name: model.LocalizedText{"en": "Industrial Pump"}, Price: 25, MOQ: 1, Stock: 500}
	for i := 0; i < 3; i++ {
		_, err := engine.CreateOrder(p, 1)
		require.NoError(t, err)
	}
	require.Equal(t, 3, engine.UnreadNotifications())

	h := NewSessionHandler(sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/notifications/read-all", nil)
	req.Header.Set(SessionTokenHeader, token)
	rec := httptest.NewRecorder()

	h.MarkAllNotificationsRead(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 0, engine.UnreadNotifications())
}

func TestSessionHandler_SetCountry(t *testing.T) {
	sessions, token, engine := newTestSession(t)
	h := NewSessionHandler(sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPut, "/api/session/country",
		jsonBody(t, map[string]string{"country": "SA"}))
	req.Header.Set(SessionTokenHeader, token)
	rec := httptest.NewRecorder()

	h.SetCountry(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SA", engine.Country().Code)

	var resp struct {
		Code     string `json:"code"`
		Currency string `json:"currency"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "SAR", resp.Currency)
}

func TestSessionHandler_SetCountry_Unknown(t *testing.T) {
	sessions, token, engine := newTestSession(t)
	h := NewSessionHandler(sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPut, "/api/session/country",
		jsonBody(t, map[string]string{"country": "XX"}))
	req.Header.Set(SessionTokenHeader, token)
	rec := httptest.NewRecorder()

	h.SetCountry(rec, req)

	assertErrorCode(t, rec, http.StatusBadRequest, model.ErrCodeCountryNotFound)
	assert.Equal(t, "US", engine.Country().Code)
}
