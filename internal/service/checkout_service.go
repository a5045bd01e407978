package service

import (
	"context"
	"fmt"

	"tradesouq/internal/commerce"
	"tradesouq/internal/model"
	"tradesouq/internal/payment"
	"tradesouq/internal/repository"
	"tradesouq/internal/stock"

	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService. The session engine remains
// the source of truth for session state; the order repository is the
// external persistence collaborator written after the engine commits.
type checkoutService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	reserver    stock.Reserver
	flow        *payment.Flow
	logger      zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	reserver stock.Reserver,
	flow *payment.Flow,
	logger zerolog.Logger,
) CheckoutService {
	return &checkoutService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		reserver:    reserver,
		flow:        flow,
		logger:      logger.With().Str("service", "checkout").Logger(),
	}
}

// BuyNow places a single order: resolve the product, reserve stock, charge
// the gateway, then run the engine's order primitive and persist the result.
func (s *checkoutService) BuyNow(ctx context.Context, engine *commerce.Engine, req CheckoutRequest) (*model.Order, error) {
	if req.ProductID == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "productId is required")
	}

	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	qty := req.Quantity
	if qty == 0 {
		// Buy-now defaults to the smallest purchasable quantity.
		qty = product.MOQ
	}
	if qty < 0 {
		return nil, model.ErrInvalidQuantity
	}
	if qty < product.MOQ {
		return nil, model.ErrBelowMOQ
	}

	if err := s.begin(ctx, req.IdempotencyKey); err != nil {
		return nil, err
	}

	ok, err := s.reserver.Reserve(ctx, product.ID, qty)
	if err != nil {
		return nil, fmt.Errorf("stock reservation failed: %w", err)
	}
	if !ok {
		return nil, model.ErrStockExceeded
	}

	total := product.Price * float64(qty)
	if err := s.charge(ctx, engine, req.CardNumber, total); err != nil {
		s.release(ctx, product.ID, qty)
		return nil, err
	}

	order, err := engine.CreateOrder(*product, qty)
	if err != nil {
		s.release(ctx, product.ID, qty)
		return nil, err
	}

	if err := s.orderRepo.Insert(ctx, &order); err != nil {
		// The session already holds the order; surfacing the failed
		// external write is the caller's cue to retry persistence.
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("order persisted in session only")
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("product_id", product.ID).
		Int("quantity", qty).
		Msg("buy-now order placed")

	return &order, nil
}

// CheckoutCart drains the cart: validate every line, reserve every line,
// charge the subtotal once, then run the engine's drain primitive and
// persist each order. Money only moves once the drain is known to succeed.
func (s *checkoutService) CheckoutCart(ctx context.Context, engine *commerce.Engine, req CheckoutRequest) ([]model.Order, error) {
	lines := engine.Cart()
	if len(lines) == 0 {
		return nil, model.ErrEmptyCart
	}

	if err := s.validateLines(ctx, lines); err != nil {
		return nil, err
	}

	if err := s.begin(ctx, req.IdempotencyKey); err != nil {
		return nil, err
	}

	var reserved []model.CartItem
	for _, line := range lines {
		ok, err := s.reserver.Reserve(ctx, line.Product.ID, line.Quantity)
		if err != nil {
			s.releaseAll(ctx, reserved)
			return nil, fmt.Errorf("stock reservation failed: %w", err)
		}
		if !ok {
			s.releaseAll(ctx, reserved)
			return nil, model.ErrStockExceeded
		}
		reserved = append(reserved, line)
	}

	if err := s.charge(ctx, engine, req.CardNumber, engine.CartSubtotal()); err != nil {
		s.releaseAll(ctx, reserved)
		return nil, err
	}

	orders, err := engine.CheckoutCart()
	if err != nil {
		s.releaseAll(ctx, reserved)
		return nil, err
	}

	for i := range orders {
		if err := s.orderRepo.Insert(ctx, &orders[i]); err != nil {
			s.logger.Error().Err(err).Str("order_id", orders[i].ID.String()).Msg("order persisted in session only")
			return orders, fmt.Errorf("failed to persist order: %w", err)
		}
	}

	s.logger.Info().Int("orders", len(orders)).Msg("cart checked out")
	return orders, nil
}

// RestoreOrders hydrates a fresh session's order history from persistence.
func (s *checkoutService) RestoreOrders(ctx context.Context, engine *commerce.Engine) error {
	orders, err := s.orderRepo.GetByUser(ctx, engine.User().ID)
	if err != nil {
		return fmt.Errorf("failed to load order history: %w", err)
	}

	// GetByUser returns most recent first; RecordOrder prepends, so walk
	// backwards to preserve that ordering.
	for i := len(orders) - 1; i >= 0; i-- {
		engine.RecordOrder(orders[i])
	}

	return nil
}

// validateLines checks that every cart line is still placeable. A quantity
// edited below the product's MOQ after it entered the cart must fail here,
// before any charge, not mid-drain after one. Both the cart snapshot and
// the current catalogue row are checked: the snapshot is what the drain
// validates, the row is what the seller currently offers.
func (s *checkoutService) validateLines(ctx context.Context, lines []model.CartItem) error {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.Product.ID)
	}

	current, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to resolve cart products: %w", err)
	}
	byID := make(map[string]model.Product, len(current))
	for _, p := range current {
		byID[p.ID] = p
	}

	for _, line := range lines {
		p, ok := byID[line.Product.ID]
		if !ok {
			return model.ErrProductNotFound
		}
		if line.Quantity < line.Product.MOQ || line.Quantity < p.MOQ {
			return model.ErrBelowMOQ
		}
		if line.Quantity > line.Product.Stock || line.Quantity > p.Stock {
			return model.ErrStockExceeded
		}
	}
	return nil
}

// begin applies the optional idempotency guard.
func (s *checkoutService) begin(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	ok, err := s.reserver.Begin(ctx, "checkout:"+key)
	if err != nil {
		return fmt.Errorf("idempotency check failed: %w", err)
	}
	if !ok {
		return model.ErrDuplicateRequest
	}
	return nil
}

// charge runs the payment flow for the amount in the session's currency.
func (s *checkoutService) charge(ctx context.Context, engine *commerce.Engine, card string, amount float64) error {
	country := engine.Country()
	result, err := s.flow.Run(ctx, payment.Request{
		UserID:     engine.User().ID,
		CardNumber: card,
		Amount:     amount,
		Currency:   country.Currency,
	}, func(state payment.State) {
		s.logger.Debug().Str("state", string(state)).Msg("payment flow")
	})
	if err != nil {
		if result.Status == payment.StatusDeclined {
			return model.ErrPaymentDeclined
		}
		return fmt.Errorf("payment failed: %w", err)
	}
	return nil
}

func (s *checkoutService) release(ctx context.Context, productID string, qty int) {
	if err := s.reserver.Release(ctx, productID, qty); err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to release stock reservation")
	}
}

func (s *checkoutService) releaseAll(ctx context.Context, lines []model.CartItem) {
	for _, line := range lines {
		s.release(ctx, line.Product.ID, line.Quantity)
	}
}
