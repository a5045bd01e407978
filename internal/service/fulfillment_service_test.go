package service

import (
	"context"
	"testing"

	"tradesouq/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrder(id uuid.UUID) *model.Order {
	return &model.Order{
		ID:       id,
		UserID:   "user-1",
		Product:  model.Product{ID: "p1", Name: model.LocalizedText{"en": "Industrial Pump"}, Price: 25, MOQ: 10, Stock: 500},
		Quantity: 10,
		Total:    250,
		Status:   model.OrderStatusPending,
	}
}

func TestFulfillmentService_ApplyStatus_PendingToShipped(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewFulfillmentService(orderRepo, zerolog.Nop())
	ctx := context.Background()

	id := uuid.New()
	orderRepo.On("GetByID", ctx, id).Return(pendingOrder(id), nil)
	orderRepo.On("UpdateStatus", ctx, id, model.OrderStatusPending, model.OrderStatusShipped).Return(nil)

	order, err := svc.ApplyStatus(ctx, id, model.OrderStatusShipped)

	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, order.Status)
	orderRepo.AssertExpectations(t)
}

func TestFulfillmentService_ApplyStatus_PendingToCancelled(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewFulfillmentService(orderRepo, zerolog.Nop())
	ctx := context.Background()

	id := uuid.New()
	orderRepo.On("GetByID", ctx, id).Return(pendingOrder(id), nil)
	orderRepo.On("UpdateStatus", ctx, id, model.OrderStatusPending, model.OrderStatusCancelled).Return(nil)

	order, err := svc.ApplyStatus(ctx, id, model.OrderStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, order.Status)
}

func TestFulfillmentService_ApplyStatus_RejectsBackwards(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewFulfillmentService(orderRepo, zerolog.Nop())
	ctx := context.Background()

	id := uuid.New()
	delivered := pendingOrder(id)
	delivered.Status = model.OrderStatusDelivered
	orderRepo.On("GetByID", ctx, id).Return(delivered, nil)

	order, err := svc.ApplyStatus(ctx, id, model.OrderStatusPending)

	assert.ErrorIs(t, err, model.ErrInvalidTransition)
	assert.Nil(t, order)
	orderRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestFulfillmentService_ApplyStatus_RejectsSkip(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewFulfillmentService(orderRepo, zerolog.Nop())
	ctx := context.Background()

	id := uuid.New()
	orderRepo.On("GetByID", ctx, id).Return(pendingOrder(id), nil)

	// pending cannot jump straight to delivered
	_, err := svc.ApplyStatus(ctx, id, model.OrderStatusDelivered)
	assert.ErrorIs(t, err, model.ErrInvalidTransition)
}

func TestFulfillmentService_ApplyStatus_UnknownStatus(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewFulfillmentService(orderRepo, zerolog.Nop())

	_, err := svc.ApplyStatus(context.Background(), uuid.New(), "returned")

	require.Error(t, err)
	var domainErr *model.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, model.ErrCodeInvalidTransition, domainErr.Code)
	orderRepo.AssertNotCalled(t, "GetByID")
}

func TestFulfillmentService_ApplyStatus_OrderNotFound(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewFulfillmentService(orderRepo, zerolog.Nop())
	ctx := context.Background()

	id := uuid.New()
	orderRepo.On("GetByID", ctx, id).Return(nil, nil)

	_, err := svc.ApplyStatus(ctx, id, model.OrderStatusShipped)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestFulfillmentService_ApplyStatus_ConcurrentUpdateLoses(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	svc := NewFulfillmentService(orderRepo, zerolog.Nop())
	ctx := context.Background()

	// Another writer moved the order between read and update
	id := uuid.New()
	orderRepo.On("GetByID", ctx, id).Return(pendingOrder(id), nil)
	orderRepo.On("UpdateStatus", ctx, id, model.OrderStatusPending, model.OrderStatusShipped).
		Return(model.ErrInvalidTransition)

	_, err := svc.ApplyStatus(ctx, id, model.OrderStatusShipped)
	assert.ErrorIs(t, err, model.ErrInvalidTransition)
}
