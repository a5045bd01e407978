package service

import (
	"context"
	"fmt"

	"tradesouq/internal/model"
	"tradesouq/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// fulfillmentService implements FulfillmentService. Status changes come
// from the external fulfilment process; the commerce engine treats status
// as opaque data once set at creation.
type fulfillmentService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewFulfillmentService creates a new fulfilment service.
func NewFulfillmentService(orderRepo repository.OrderRepository, logger zerolog.Logger) FulfillmentService {
	return &fulfillmentService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "fulfillment").Logger(),
	}
}

// ApplyStatus moves an order to the next status. Transitions run forward
// only: pending -> shipped -> delivered, or pending -> cancelled.
func (s *fulfillmentService) ApplyStatus(ctx context.Context, id uuid.UUID, next model.OrderStatus) (*model.Order, error) {
	if !next.Valid() {
		return nil, model.NewDomainError(model.ErrCodeInvalidTransition, fmt.Sprintf("unknown order status %q", next))
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if !order.Status.CanTransitionTo(next) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("current", string(order.Status)).
			Str("next", string(next)).
			Msg("rejected status transition")
		return nil, model.ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, order.Status, next); err != nil {
		return nil, err
	}

	order.Status = next

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", string(next)).
		Msg("order status advanced")

	return order, nil
}
