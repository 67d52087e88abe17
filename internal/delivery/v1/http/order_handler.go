package http

import (
	"net/http"

	"github.com/nahid177/afwan-shop-sub001/internal/usecase"
	"github.com/nahid177/afwan-shop-sub001/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type orderItemBody struct {
	ProductID int64  `json:"product_id"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int32  `json:"quantity"`
}

type createOrderBody struct {
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Items        []orderItemBody `json:"items"`
}

type createStoreOrderBody struct {
	Items []orderItemBody `json:"items"`
}

type orderResponse struct {
	OrderID     int64  `json:"order_id"`
	Status      string `json:"status"`
	Approved    bool   `json:"approved"`
	TotalAmount int64  `json:"total_amount"`
}

type storeOrderResponse struct {
	StoreOrderID string `json:"store_order_id"`
	TotalAmount  int64  `json:"total_amount"`
}

// createOrder
//
//	@Summary		Оформление заказа
//	@Description	Создает открытый заказ со снимком цен из каталога, без списания остатков
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createOrderBody	true	"Позиции заказа"
//	@Success		201		{object}	orderResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/orders [post]
func (h *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var body createOrderBody
	if err := decodeJSONBody(r, &body); err != nil {
		h.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.orderUsecase.CreateOrder(r.Context(), &usecase.CreateOrderReq{
		CustomerName: body.CustomerName,
		Phone:        body.Phone,
		Address:      body.Address,
		Items:        toItemSpecs(body.Items),
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(res))
}

// confirmOrder
//
//	@Summary		Подтверждение заказа
//	@Description	Атомарно списывает остатки по всем позициям: либо все, либо ничего
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"ID заказа"
//	@Success		200	{object}	orderResponse
//	@Failure		404	{object}	ErrorResponse	"Заказ не найден"
//	@Failure		409	{object}	ErrorResponse	"Недостаточно остатка или заказ уже подтверждён"
//	@Router			/orders/{id}/confirm [post]
func (h *OrderHandler) confirmOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.orderUsecase.ConfirmOrder(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(res))
}

// approveOrder
//
//	@Summary		Одобрение заказа
//	@Description	Включает заказ в учёт прибыли
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"ID заказа"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	ErrorResponse	"Заказ не найден"
//	@Router			/orders/{id}/approve [post]
func (h *OrderHandler) approveOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.orderUsecase.ApproveOrder(r.Context(), id); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Approved": true,
	})
}

// closeOrder
//
//	@Summary		Закрытие заказа
//	@Description	Переводит одобренный заказ в терминальный статус
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"ID заказа"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	ErrorResponse	"Заказ не найден"
//	@Failure		409	{object}	ErrorResponse	"Заказ не одобрен или уже закрыт"
//	@Router			/orders/{id}/close [post]
func (h *OrderHandler) closeOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.orderUsecase.CloseOrder(r.Context(), id); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Closed": true,
	})
}

// createStoreOrder
//
//	@Summary		Регистрация офлайн-продажи
//	@Description	Создает офлайн-продажу с немедленным списанием остатков
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		createStoreOrderBody	true	"Позиции продажи"
//	@Success		201		{object}	storeOrderResponse
//	@Failure		409		{object}	ErrorResponse	"Недостаточно остатка"
//	@Router			/store-orders [post]
func (h *OrderHandler) createStoreOrder(w http.ResponseWriter, r *http.Request) {
	var body createStoreOrderBody
	if err := decodeJSONBody(r, &body); err != nil {
		h.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.orderUsecase.CreateStoreOrder(r.Context(), &usecase.CreateStoreOrderReq{
		Items: toItemSpecs(body.Items),
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, &storeOrderResponse{
		StoreOrderID: res.StoreOrderID,
		TotalAmount:  res.TotalAmount,
	})
}

func toItemSpecs(items []orderItemBody) []usecase.NewOrderItemSpec {
	specs := make([]usecase.NewOrderItemSpec, 0, len(items))
	for _, item := range items {
		specs = append(specs, usecase.NewOrderItemSpec{
			ProductID: item.ProductID,
			Color:     item.Color,
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}
	return specs
}

func toOrderResponse(res *usecase.OrderRes) *orderResponse {
	return &orderResponse{
		OrderID:     res.OrderID,
		Status:      string(res.Status),
		Approved:    res.Approved,
		TotalAmount: res.TotalAmount,
	}
}
