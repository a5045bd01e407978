package handler

import (
	"net/http"
	"strconv"
	"strings"

	"tradesouq/internal/currency"
	"tradesouq/internal/model"
	"tradesouq/internal/repository"
	"tradesouq/internal/service"
	"tradesouq/internal/session"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests. Responses carry display
// prices derived from the session's active country; anonymous requests fall
// back to the base currency.
type ProductHandler struct {
	catalog  service.CatalogService
	sessions *session.Manager
	table    currency.Table
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog service.CatalogService, sessions *session.Manager, table currency.Table, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog:  catalog,
		sessions: sessions,
		table:    table,
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

type productView struct {
	model.Product
	DisplayPrice    string `json:"displayPrice"`
	DisplayOldPrice string `json:"displayOldPrice,omitempty"`
}

// displayCountry resolves the country used for price rendering: the
// session's active country when a valid token is present, the base market
// otherwise.
func (h *ProductHandler) displayCountry(r *http.Request) currency.Country {
	if engine, err := h.sessions.Lookup(r.Header.Get(SessionTokenHeader)); err == nil {
		return engine.Country()
	}
	c, _ := h.table.Lookup("US")
	return c
}

func renderProduct(p model.Product, c currency.Country) productView {
	view := productView{Product: p, DisplayPrice: currency.Format(p.Price, c)}
	if p.OldPrice != nil {
		view.DisplayOldPrice = currency.Format(*p.OldPrice, c)
	}
	return view
}

// GetAll handles GET /api/products requests with optional category, search
// and pagination query parameters.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidJSON, "method not allowed", h.logger)
		return
	}

	filter := repository.ProductFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("q"),
		Limit:    queryInt(r, "limit", 50),
		Offset:   queryInt(r, "offset", 0),
	}

	products, err := h.catalog.GetAll(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	country := h.displayCountry(r)
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, renderProduct(p, country))
	}

	writeJSON(w, http.StatusOK, views)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidJSON, "method not allowed", h.logger)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if id == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	product, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeProductNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, renderProduct(*product, h.displayCountry(r)))
}

// queryInt parses an integer query parameter with a default.
func queryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
