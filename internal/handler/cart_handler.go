package handler

import (
	"net/http"
	"strings"

	"tradesouq/internal/commerce"
	"tradesouq/internal/model"
	"tradesouq/internal/service"
	"tradesouq/internal/session"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests against the session's commerce
// engine.
type CartHandler struct {
	catalog  service.CatalogService
	sessions *session.Manager
	logger   zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(catalog service.CatalogService, sessions *session.Manager, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		catalog:  catalog,
		sessions: sessions,
		logger:   logger.With().Str("handler", "cart").Logger(),
	}
}

// engine resolves the session engine, writing the authentication-required
// signal when no valid session exists.
func (h *CartHandler) engine(w http.ResponseWriter, r *http.Request) (*commerce.Engine, bool) {
	engine, err := h.sessions.Lookup(r.Header.Get(SessionTokenHeader))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return nil, false
	}
	return engine, true
}

type cartResponse struct {
	Items        []model.CartItem `json:"items"`
	Subtotal     float64          `json:"subtotal"`
	DisplayTotal string           `json:"displayTotal"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	subtotal := engine.CartSubtotal()
	writeJSON(w, http.StatusOK, cartResponse{
		Items:        engine.Cart(),
		Subtotal:     subtotal,
		DisplayTotal: engine.FormatPrice(subtotal),
	})
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// AddItem handles POST /api/cart/items requests, merging into an existing
// entry for the same product.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "productId is required", h.logger)
		return
	}

	product, err := h.catalog.GetByID(r.Context(), req.ProductID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeProductNotFound, "product not found", h.logger)
		return
	}

	qty := req.Quantity
	if qty == 0 {
		qty = product.MOQ
	}

	if err := engine.AddToCart(*product, qty); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, cartResponse{
		Items:        engine.Cart(),
		Subtotal:     engine.CartSubtotal(),
		DisplayTotal: engine.FormatPrice(engine.CartSubtotal()),
	})
}

type updateItemRequest struct {
	Delta int `json:"delta"`
}

// UpdateItem handles PATCH /api/cart/items/{id} requests, applying a signed
// quantity delta.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/cart/items/")
	if id == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	var req updateItemRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	engine.UpdateQuantity(id, req.Delta)
	writeJSON(w, http.StatusOK, cartResponse{
		Items:        engine.Cart(),
		Subtotal:     engine.CartSubtotal(),
		DisplayTotal: engine.FormatPrice(engine.CartSubtotal()),
	})
}

// RemoveItem handles DELETE /api/cart/items/{id} requests. Removing an
// absent entry is a no-op, not an error.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/cart/items/")
	if id == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	engine.RemoveFromCart(id)
	w.WriteHeader(http.StatusNoContent)
}
