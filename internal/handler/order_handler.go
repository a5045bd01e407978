package handler

import (
	"net/http"
	"strings"

	"tradesouq/internal/commerce"
	"tradesouq/internal/model"
	"tradesouq/internal/service"
	"tradesouq/internal/session"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles order placement, history and fulfilment status
// updates.
type OrderHandler struct {
	checkout    service.CheckoutService
	fulfillment service.FulfillmentService
	sessions    *session.Manager
	logger      zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(
	checkout service.CheckoutService,
	fulfillment service.FulfillmentService,
	sessions *session.Manager,
	logger zerolog.Logger,
) *OrderHandler {
	return &OrderHandler{
		checkout:    checkout,
		fulfillment: fulfillment,
		sessions:    sessions,
		logger:      logger.With().Str("handler", "order").Logger(),
	}
}

func (h *OrderHandler) engine(w http.ResponseWriter, r *http.Request) (*commerce.Engine, bool) {
	engine, err := h.sessions.Lookup(r.Header.Get(SessionTokenHeader))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return nil, false
	}
	return engine, true
}

// BuyNow handles POST /api/orders requests: a single-product order placed
// directly from a listing.
func (h *OrderHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	var req service.CheckoutRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	order, err := h.checkout.BuyNow(r.Context(), engine, req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// Checkout handles POST /api/checkout requests: the cart is drained into
// one order per line.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	var req service.CheckoutRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	orders, err := h.checkout.CheckoutCart(r.Context(), engine, req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, orders)
}

// List handles GET /api/orders requests, returning the session's order
// history most recent first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engine(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, engine.Orders())
}

// UpdateStatus handles PATCH /api/orders/{id}/status requests on behalf of
// the external fulfilment process.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	idStr := strings.TrimSuffix(path, "/status")
	if idStr == "" || idStr == path {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "order ID is required", h.logger)
		return
	}

	orderID, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "invalid order ID format", h.logger)
		return
	}

	var req model.StatusRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	order, svcErr := h.fulfillment.ApplyStatus(r.Context(), orderID, req.Status)
	if svcErr != nil {
		writeDomainError(w, svcErr, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
