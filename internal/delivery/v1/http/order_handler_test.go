package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/nahid177/afwan-shop-sub001/internal/domain"
	"github.com/nahid177/afwan-shop-sub001/internal/usecase"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

// stubOrderUC отдаёт заранее заданные ответы и записывает входные запросы.
type stubOrderUC struct {
	orderRes    *usecase.OrderRes
	storeRes    *usecase.StoreOrderRes
	err         error
	lastCreate  *usecase.CreateOrderReq
	lastOrderID int64
}

func (s *stubOrderUC) CreateOrder(ctx context.Context, req *usecase.CreateOrderReq) (*usecase.OrderRes, error) {
	s.lastCreate = req
	return s.orderRes, s.err
}

func (s *stubOrderUC) ConfirmOrder(ctx context.Context, orderID int64) (*usecase.OrderRes, error) {
	s.lastOrderID = orderID
	return s.orderRes, s.err
}

func (s *stubOrderUC) ApproveOrder(ctx context.Context, orderID int64) error {
	s.lastOrderID = orderID
	return s.err
}

func (s *stubOrderUC) CloseOrder(ctx context.Context, orderID int64) error {
	s.lastOrderID = orderID
	return s.err
}

func (s *stubOrderUC) CreateStoreOrder(ctx context.Context, req *usecase.CreateStoreOrderReq) (*usecase.StoreOrderRes, error) {
	return s.storeRes, s.err
}

func newOrderRouter(stub *stubOrderUC) *chi.Mux {
	h := NewOrderHandler(stub, noopLogger{})

	r := chi.NewRouter()
	r.Post("/orders", h.createOrder)
	r.Post("/orders/{id}/confirm", h.confirmOrder)
	r.Post("/orders/{id}/approve", h.approveOrder)
	r.Post("/orders/{id}/close", h.closeOrder)
	r.Post("/store-orders", h.createStoreOrder)
	return r
}

func TestCreateOrderHandler(t *testing.T) {
	stub := &stubOrderUC{orderRes: &usecase.OrderRes{
		OrderID:     1,
		Status:      domain.OrderOpen,
		TotalAmount: 59999,
	}}
	router := newOrderRouter(stub)

	body := `{
		"customer_name": "Иван",
		"phone": "+79990001122",
		"address": "Москва",
		"items": [{"product_id": 42, "color": "black", "size": "M", "quantity": 1}]
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var res orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, int64(1), res.OrderID)
	assert.Equal(t, "open", res.Status)
	assert.Equal(t, int64(59999), res.TotalAmount)

	require.NotNil(t, stub.lastCreate)
	require.Len(t, stub.lastCreate.Items, 1)
	assert.Equal(t, int64(42), stub.lastCreate.Items[0].ProductID)
	assert.Equal(t, "black", stub.lastCreate.Items[0].Color)
}

func TestCreateOrderHandlerBadJSON(t *testing.T) {
	router := newOrderRouter(&stubOrderUC{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{broken")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfirmOrderHandler(t *testing.T) {
	stub := &stubOrderUC{orderRes: &usecase.OrderRes{
		OrderID: 7,
		Status:  domain.OrderConfirmed,
	}}
	router := newOrderRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders/7/confirm", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), stub.lastOrderID)

	var res orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "confirmed", res.Status)
}

func TestConfirmOrderHandlerErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.Wrap("OrderUseCase.ConfirmOrder", e.ErrOrderNotFound), http.StatusNotFound},
		{e.Wrap("OrderUseCase.ConfirmOrder", e.ErrAlreadyConfirmed), http.StatusConflict},
		{e.Wrap("OrderUseCase.ConfirmOrder", e.NewInsufficientStockError(42, "color", "black", 5, 2)), http.StatusConflict},
	}
	for _, tc := range cases {
		router := newOrderRouter(&stubOrderUC{err: tc.err})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders/7/confirm", nil))

		assert.Equal(t, tc.code, rec.Code, tc.err.Error())

		var res ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, tc.code, res.Code)
	}
}

func TestConfirmOrderHandlerBadID(t *testing.T) {
	router := newOrderRouter(&stubOrderUC{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders/abc/confirm", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateStoreOrderHandler(t *testing.T) {
	stub := &stubOrderUC{storeRes: &usecase.StoreOrderRes{
		StoreOrderID: "6f1c5bc2-7cbb-4fa1-9095-c1f59e3f8f6e",
		TotalAmount:  120000,
	}}
	router := newOrderRouter(stub)

	body := `{"items": [{"product_id": 42, "size": "M", "quantity": 2}]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/store-orders", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var res storeOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "6f1c5bc2-7cbb-4fa1-9095-c1f59e3f8f6e", res.StoreOrderID)
	assert.Equal(t, int64(120000), res.TotalAmount)
}
