package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tradesouq/internal/model"
	"tradesouq/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_BuyNow(t *testing.T) {
	sessions, token, _ := newTestSession(t)
	checkout := new(MockCheckoutService)
	placed := &model.Order{
		ID:       uuid.New(),
		UserID:   "user-1",
		Quantity: 10,
		Total:    250,
		Status:   model.OrderStatusPending,
	}
	checkout.On("BuyNow", mock.Anything, mock.Anything, service.CheckoutRequest{
		ProductID:  "p1",
		Quantity:   10,
		CardNumber: "4111111111111111",
	}).Return(placed, nil)

	h := NewOrderHandler(checkout, new(MockFulfillmentService), sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/orders",
		jsonBody(t, map[string]interface{}{
			"productId":  "p1",
			"quantity":   10,
			"cardNumber": "4111111111111111",
		}))
	req.Header.Set(SessionTokenHeader, token)
	rec := httptest.NewRecorder()

	h.BuyNow(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp model.Order
	decodeBody(t, rec, &resp)
	assert.Equal(t, placed.ID, resp.ID)
	checkout.AssertExpectations(t)
}

func TestOrderHandler_BuyNow_Unauthenticated(t *testing.T) {
	sessions, _, _ := newTestSession(t)
	h := NewOrderHandler(new(MockCheckoutService), new(MockFulfillmentService), sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/orders",
		jsonBody(t, map[string]string{"productId": "p1"}))
	rec := httptest.NewRecorder()

	h.BuyNow(rec, req)

	assertErrorCode(t, rec, http.StatusUnauthorized, model.ErrCodeAuthRequired)
}

func TestOrderHandler_BuyNow_PaymentDeclined(t *testing.T) {
	sessions, token, _ := newTestSession(t)
	checkout := new(MockCheckoutService)
	checkout.On("BuyNow", mock.Anything, mock.Anything, mock.Anything).Return(nil, model.ErrPaymentDeclined)

	h := NewOrderHandler(checkout, new(MockFulfillmentService), sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/orders",
		jsonBody(t, map[string]string{"productId": "p1", "cardNumber": "0000111122223333"}))
	req.Header.Set(SessionTokenHeader, token)
	rec := httptest.NewRecorder()

	h.BuyNow(rec, req)

	assertErrorCode(t, rec, http.StatusPaymentRequired, model.ErrCodePaymentDeclined)
}

func TestOrderHandler_Checkout(t *testing.T) {
	sessions, token, _ := newTestSession(t)
	checkout := new(MockCheckoutService)
	checkout.On("CheckoutCart", mock.Anything, mock.Anything, mock.Anything).Return([]model.Order{
		{ID: uuid.New(), Status: model.OrderStatusPending},
		{ID: uuid.New(), Status: model.OrderStatusPending},
	}, nil)

	h := NewOrderHandler(checkout, new(MockFulfillmentService), sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/checkout",
		jsonBody(t, map[string]string{"cardNumber": "4111111111111111"}))
	req.Header.Set(SessionTokenHeader, token)
	rec := httptest.NewRecorder()

	h.Checkout(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp []model.Order
	decodeBody(t, rec, &resp)
	assert.Len(t, resp, 2)
}

func TestOrderHandler_List(t *testing.T) {
	sessions, token, engine := newTestSession(t)
	order, err := engine.CreateOrder(model.Product{
		ID:    "p1",
		Name:  model.LocalizedText{"en": "Industrial Pump"},
		Price: 25,
		MOQ:   1,
		Stock: 500,
	}, 4)
	require.NoError(t, err)

	h := NewOrderHandler(new(MockCheckoutService), new(MockFulfillmentService), sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set(SessionTokenHeader, token)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []model.Order
	decodeBody(t, rec, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, order.ID, resp[0].ID)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	sessions, _, _ := newTestSession(t)
	fulfillment := new(MockFulfillmentService)
	id := uuid.New()
	fulfillment.On("ApplyStatus", mock.Anything, id, model.OrderStatusShipped).Return(&model.Order{
		ID:     id,
		Status: model.OrderStatusShipped,
	}, nil)

	h := NewOrderHandler(new(MockCheckoutService), fulfillment, sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+id.String()+"/status",
		jsonBody(t, map[string]string{"status": "shipped"}))
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp model.Order
	decodeBody(t, rec, &resp)
	assert.Equal(t, model.OrderStatusShipped, resp.Status)
}

func TestOrderHandler_UpdateStatus_InvalidTransition(t *testing.T) {
	sessions, _, _ := newTestSession(t)
	fulfillment := new(MockFulfillmentService)
	id := uuid.New()
	fulfillment.On("ApplyStatus", mock.Anything, id, model.OrderStatusPending).Return(nil, model.ErrInvalidTransition)

	h := NewOrderHandler(new(MockCheckoutService), fulfillment, sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/"+id.String()+"/status",
		jsonBody(t, map[string]string{"status": "pending"}))
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)

	assertErrorCode(t, rec, http.StatusConflict, model.ErrCodeInvalidTransition)
}

func TestOrderHandler_UpdateStatus_BadID(t *testing.T) {
	sessions, _, _ := newTestSession(t)
	h := NewOrderHandler(new(MockCheckoutService), new(MockFulfillmentService), sessions, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/not-a-uuid/status",
		jsonBody(t, map[string]string{"status": "shipped"}))
	rec := httptest.NewRecorder()

	h.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
