package commerce

import (
	"fmt"
	"sync"
	"time"

	"tradesouq/internal/currency"
	"tradesouq/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultCountryCode is the market assumed until the session picks one.
const DefaultCountryCode = "US"

// orderCreatedTitles localises the notification emitted on order placement.
// Languages without an entry fall back to English.
var orderCreatedTitles = map[string]string{
	"en": "Order created successfully!",
	"ar": "تم إنشاء الطلب بنجاح!",
}

// Engine owns all commerce state for one authenticated session: cart
// contents, the favourite set, order history and the notification list.
// It is handed to consumers by reference; a single constructor establishes
// initial state and Clear tears it down on logout.
//
// The engine itself never checks authentication. It only exists for a
// signed-in user; the session layer surfaces AUTHENTICATION_REQUIRED before
// an engine is ever reached.
type Engine struct {
	mu      sync.Mutex
	user    model.User
	country currency.Country
	table   currency.Table
	cart    []model.CartItem
	favs    map[string]struct{}
	orders  []model.Order
	notifs  []model.Notification
	logger  zerolog.Logger
}

// NewEngine creates an engine with empty state for the given user. The
// active country starts as the default market.
func NewEngine(user model.User, table currency.Table, logger zerolog.Logger) *Engine {
	country, _ := table.Lookup(DefaultCountryCode)
	return &Engine{
		user:    user,
		country: country,
		table:   table,
		favs:    make(map[string]struct{}),
		logger:  logger.With().Str("component", "commerce-engine").Str("user_id", user.ID).Logger(),
	}
}

// User returns the session owner.
func (e *Engine) User() model.User {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.user
}

// SetCountry switches the active market. Display prices derive from the
// active country from that point on; base prices never change.
func (e *Engine) SetCountry(code string) error {
	c, ok := e.table.Lookup(code)
	if !ok {
		return model.ErrCountryNotFound
	}

	e.mu.Lock()
	e.country = c
	e.mu.Unlock()

	e.logger.Debug().Str("country", code).Str("currency", c.Currency).Msg("active country changed")
	return nil
}

// Country returns the active market.
func (e *Engine) Country() currency.Country {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.country
}

// FormatPrice renders a base-currency amount in the active country's
// currency. Recomputed on every call, never cached.
func (e *Engine) FormatPrice(amount float64) string {
	return currency.Format(amount, e.Country())
}

// AddToCart merges quantity into an existing entry for the product, or
// inserts a new entry. A fresh entry must meet the product's MOQ; the
// accumulated quantity may never exceed stock.
func (e *Engine) AddToCart(p model.Product, qty int) error {
	if qty <= 0 {
		return model.ErrInvalidQuantity
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.cart {
		if e.cart[i].Product.ID == p.ID {
			if e.cart[i].Quantity+qty > p.Stock {
				return model.ErrStockExceeded
			}
			e.cart[i].Quantity += qty
			e.logger.Debug().Str("product_id", p.ID).Int("quantity", e.cart[i].Quantity).Msg("cart entry merged")
			return nil
		}
	}

	if qty < p.MOQ {
		return model.ErrBelowMOQ
	}
	if qty > p.Stock {
		return model.ErrStockExceeded
	}

	e.cart = append(e.cart, model.CartItem{Product: p, Quantity: qty})
	e.logger.Debug().Str("product_id", p.ID).Int("quantity", qty).Msg("cart entry added")
	return nil
}

// RemoveFromCart deletes the entry for the product id. No-op if absent.
func (e *Engine) RemoveFromCart(productID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeFromCartLocked(productID)
}

func (e *Engine) removeFromCartLocked(productID string) {
	for i := range e.cart {
		if e.cart[i].Product.ID == productID {
			e.cart = append(e.cart[:i], e.cart[i+1:]...)
			return
		}
	}
}

// UpdateQuantity applies a signed delta to the entry's quantity, flooring
// at 1 and capping at stock. Removal goes through RemoveFromCart, never a
// negative delta. No-op if the entry is absent.
func (e *Engine) UpdateQuantity(productID string, delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.cart {
		if e.cart[i].Product.ID != productID {
			continue
		}
		qty := e.cart[i].Quantity + delta
		if qty < 1 {
			qty = 1
		}
		if stock := e.cart[i].Product.Stock; qty > stock {
			qty = stock
		}
		e.cart[i].Quantity = qty
		return
	}
}

// Cart returns a copy of the cart contents in insertion order.
func (e *Engine) Cart() []model.CartItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := make([]model.CartItem, len(e.cart))
	copy(items, e.cart)
	return items
}

// CartSubtotal returns the base-currency sum over all cart lines.
func (e *Engine) CartSubtotal() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	var total float64
	for _, item := range e.cart {
		total += item.LineTotal()
	}
	return total
}

// ToggleFavorite flips membership of the product id in the favourite set
// and reports the resulting state. Calling it twice restores the prior set.
func (e *Engine) ToggleFavorite(productID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.favs[productID]; ok {
		delete(e.favs, productID)
		return false
	}
	e.favs[productID] = struct{}{}
	return true
}

// IsFavorite reports membership in the favourite set.
func (e *Engine) IsFavorite(productID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.favs[productID]
	return ok
}

// Favorites returns the favourite product ids. No ordering is guaranteed.
func (e *Engine) Favorites() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	ids := make([]string, 0, len(e.favs))
	for id := range e.favs {
		ids = append(ids, id)
	}
	return ids
}

// CreateOrder places an order for the product. The total is fixed at
// price * quantity, status starts as pending, the order is prepended to
// history (most recent first), a notification is emitted, and any cart
// entry for the product is dropped. A zero quantity defaults to the
// product's MOQ ("buy now").
func (e *Engine) CreateOrder(p model.Product, qty int) (model.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.createOrderLocked(p, qty)
}

func (e *Engine) createOrderLocked(p model.Product, qty int) (model.Order, error) {
	if qty == 0 {
		qty = p.MOQ
	}
	if qty < 0 {
		return model.Order{}, model.ErrInvalidQuantity
	}
	if qty < p.MOQ {
		return model.Order{}, model.ErrBelowMOQ
	}
	if qty > p.Stock {
		return model.Order{}, model.ErrStockExceeded
	}

	now := time.Now()
	order := model.Order{
		ID:        uuid.New(),
		UserID:    e.user.ID,
		Product:   p,
		Quantity:  qty,
		Total:     p.Price * float64(qty),
		Status:    model.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	e.orders = append([]model.Order{order}, e.orders...)
	e.notifyLocked(model.NotificationOrder, e.orderCreatedTitleLocked(), fmt.Sprintf("%dx %s", qty, p.Name.In(e.country.Lang)))
	e.removeFromCartLocked(p.ID)

	e.logger.Info().
		Str("order_id", order.ID.String()).
		Str("product_id", p.ID).
		Int("quantity", qty).
		Float64("total", order.Total).
		Msg("order placed")

	return order, nil
}

// CheckoutCart drains the cart by placing one order per cart line, sharing
// the CreateOrder primitive with buy-now. Lines are processed in cart
// order; a failing line aborts and leaves the remaining lines intact.
func (e *Engine) CheckoutCart() ([]model.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.cart) == 0 {
		return nil, model.ErrEmptyCart
	}

	lines := make([]model.CartItem, len(e.cart))
	copy(lines, e.cart)

	orders := make([]model.Order, 0, len(lines))
	for _, line := range lines {
		order, err := e.createOrderLocked(line.Product, line.Quantity)
		if err != nil {
			return orders, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// Orders returns a copy of the order history, most recent first.
func (e *Engine) Orders() []model.Order {
	e.mu.Lock()
	defer e.mu.Unlock()

	orders := make([]model.Order, len(e.orders))
	copy(orders, e.orders)
	return orders
}

// RecordOrder inserts an externally persisted order at the head of the
// session history without re-running placement rules.
func (e *Engine) RecordOrder(order model.Order) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.orders = append([]model.Order{order}, e.orders...)
}

func (e *Engine) orderCreatedTitleLocked() string {
	if title, ok := orderCreatedTitles[e.country.Lang]; ok {
		return title
	}
	return orderCreatedTitles["en"]
}

func (e *Engine) notifyLocked(typ model.NotificationType, title, body string) {
	n := model.Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	e.notifs = append([]model.Notification{n}, e.notifs...)
}

// Notifications returns a copy of the notification list, most recent first.
func (e *Engine) Notifications() []model.Notification {
	e.mu.Lock()
	defer e.mu.Unlock()

	notifs := make([]model.Notification, len(e.notifs))
	copy(notifs, e.notifs)
	return notifs
}

// MarkNotificationRead sets the read flag on the matching notification and
// reports whether one was found. The flag only moves false to true.
func (e *Engine) MarkNotificationRead(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.notifs {
		if e.notifs[i].ID == id {
			e.notifs[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllNotificationsRead sets the read flag on every notification.
func (e *Engine) MarkAllNotificationsRead() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.notifs {
		e.notifs[i].Read = true
	}
}

// UnreadNotifications returns the number of unread notifications.
func (e *Engine) UnreadNotifications() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, n := range e.notifs {
		if !n.Read {
			count++
		}
	}
	return count
}

// Clear drops all session state: cart, favourites, orders and
// notifications. Called explicitly on logout.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cart = nil
	e.favs = make(map[string]struct{})
	e.orders = nil
	e.notifs = nil
	e.logger.Debug().Msg("session state cleared")
}
