package router

import (
	"net/http"
	"strings"

	"tradesouq/internal/handler"
	"tradesouq/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	sessionHandler *handler.SessionHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.HandleFunc("/api/auth/logout", authHandler.Logout)

	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}
		productHandler.GetAll(w, r)
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	mux.HandleFunc("/api/cart", cartHandler.Get)
	cartItemsHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			cartHandler.AddItem(w, r)
		case r.Method == http.MethodPatch:
			cartHandler.UpdateItem(w, r)
		case r.Method == http.MethodDelete:
			cartHandler.RemoveItem(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/cart/items", cartItemsHandler)
	mux.HandleFunc("/api/cart/items/", cartItemsHandler)

	mux.HandleFunc("/api/checkout", orderHandler.Checkout)

	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && (r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/"):
			orderHandler.BuyNow(w, r)
		case r.Method == http.MethodGet && (r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/"):
			orderHandler.List(w, r)
		case r.Method == http.MethodPatch && strings.HasSuffix(r.URL.Path, "/status"):
			orderHandler.UpdateStatus(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	mux.HandleFunc("/api/favorites", sessionHandler.ListFavorites)
	mux.HandleFunc("/api/favorites/", sessionHandler.ToggleFavorite)

	notificationRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			sessionHandler.ListNotifications(w, r)
		case r.Method == http.MethodPost && r.URL.Path == "/api/notifications/read-all":
			sessionHandler.MarkAllNotificationsRead(w, r)
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/read"):
			sessionHandler.MarkNotificationRead(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/notifications", notificationRouteHandler)
	mux.HandleFunc("/api/notifications/", notificationRouteHandler)

	mux.HandleFunc("/api/session/country", sessionHandler.SetCountry)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
