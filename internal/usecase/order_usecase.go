package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nahid177/afwan-shop-sub001/internal/domain"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/nahid177/afwan-shop-sub001/pkg/logger"
	"github.com/nahid177/afwan-shop-sub001/pkg/tr"
)

// OrderUseCase реализует жизненный цикл заказов: оформление, подтверждение
// со списанием остатков, ручное одобрение и закрытие.
type OrderUseCase struct {
	orderRepo      OrderRepository
	storeOrderRepo StoreOrderRepository
	catalogRepo    CatalogRepository
	outboxRepo     OutboxRepository
	cacheRepo      CacheRepository
	dbPool         transaction.Transactional
	logger         logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	storeOrderRepo StoreOrderRepository,
	catalogRepo CatalogRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:      orderRepo,
		storeOrderRepo: storeOrderRepo,
		catalogRepo:    catalogRepo,
		outboxRepo:     outboxRepo,
		cacheRepo:      cacheRepo,
		dbPool:         dbPool,
		logger:         logger,
	}
}

// orderEventPayload — JSON-представление события заказа для Kafka.
type orderEventPayload struct {
	EventID     string           `json:"event_id"`
	OrderID     string           `json:"order_id"`
	TotalAmount int64            `json:"total_amount"`
	Items       []orderEventItem `json:"items"`
}

type orderEventItem struct {
	ProductID int64  `json:"product_id"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
	Quantity  int32  `json:"quantity"`
}

// CreateOrder оформляет онлайн-заказ в состоянии open без списания остатков.
// Позиции фиксируются снимком из каталога: цена, название и закупочная цена
// на момент оформления.
func (o *OrderUseCase) CreateOrder(ctx context.Context, req *CreateOrderReq) (*OrderRes, error) {
	const op = "OrderUseCase.CreateOrder"

	if err := validateItemSpecs(req.Items); err != nil {
		return nil, e.Wrap(op, err)
	}

	items, total, err := o.snapshotItems(ctx, req.Items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	order := domain.NewOrder(req.CustomerName, req.Phone, req.Address, items, total)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	created, err := o.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewOrderRes(created), nil
}

// ConfirmOrder подтверждает заказ, атомарно списывая остатки по всем позициям.
// Любая позиция с нехваткой остатка откатывает подтверждение целиком: каталог
// остаётся нетронутым. Событие order.confirmed уходит в outbox той же транзакцией.
func (o *OrderUseCase) ConfirmOrder(ctx context.Context, orderID int64) (*OrderRes, error) {
	const op = "OrderUseCase.ConfirmOrder"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	order, err := o.orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	switch order.Status {
	case domain.OrderConfirmed:
		err = e.ErrAlreadyConfirmed
		return nil, e.Wrap(op, err)
	case domain.OrderClosed:
		err = e.ErrOrderClosed
		return nil, e.Wrap(op, err)
	}

	touched, err := o.decrementItems(ctx, order.Items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.orderRepo.SetConfirmed(ctx, orderID); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.enqueueOrderEvent(ctx, OrderConfirmedEvent, strconv.FormatInt(orderID, 10), order.TotalAmount, order.Items); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Остатки изменились — карточки затронутых продуктов убираются из кэша
	if err := o.cacheRepo.DeleteProducts(ctx, touched); err != nil {
		o.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	order.Status = domain.OrderConfirmed
	return NewOrderRes(order), nil
}

// ApproveOrder выставляет признак ручного одобрения заказа.
func (o *OrderUseCase) ApproveOrder(ctx context.Context, orderID int64) error {
	const op = "OrderUseCase.ApproveOrder"

	if err := o.orderRepo.SetApproved(ctx, orderID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// CloseOrder переводит заказ в терминальное состояние closed.
// Требует предварительного ручного одобрения.
func (o *OrderUseCase) CloseOrder(ctx context.Context, orderID int64) error {
	const op = "OrderUseCase.CloseOrder"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	order, err := o.orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return e.Wrap(op, err)
	}

	if order.Status == domain.OrderClosed {
		err = e.ErrAlreadyClosed
		return e.Wrap(op, err)
	}

	if !order.Approved {
		err = e.ErrNotApproved
		return e.Wrap(op, err)
	}

	if err = o.orderRepo.SetClosed(ctx, orderID); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// CreateStoreOrder регистрирует офлайн-продажу: остатки списываются сразу,
// продажа создаётся уже одобренной. Списание и запись — одна транзакция.
func (o *OrderUseCase) CreateStoreOrder(ctx context.Context, req *CreateStoreOrderReq) (*StoreOrderRes, error) {
	const op = "OrderUseCase.CreateStoreOrder"

	if err := validateItemSpecs(req.Items); err != nil {
		return nil, e.Wrap(op, err)
	}

	items, total, err := o.snapshotItems(ctx, req.Items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	storeOrder := domain.NewStoreOrder(uuid.NewString(), toStoreItems(items), total)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	touched, err := o.decrementItems(ctx, items)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	created, err := o.storeOrderRepo.Create(ctx, storeOrder)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.enqueueOrderEvent(ctx, StoreOrderCreatedEvent, created.ID, created.TotalAmount, items); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := o.cacheRepo.DeleteProducts(ctx, touched); err != nil {
		o.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return NewStoreOrderRes(created), nil
}

// decrementItems списывает остатки по позициям в порядке их следования.
// Отсутствие варианта с нужной меткой пропускается; нехватка остатка — ошибка
// с указанием позиции, транзакция будет откатана вызывающей стороной.
func (o *OrderUseCase) decrementItems(ctx context.Context, items []domain.OrderItem) ([]int64, error) {
	touched := make([]int64, 0, len(items))

	for i, item := range items {
		product, err := o.catalogRepo.GetProduct(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}

		if item.Color != "" {
			if _, err := o.catalogRepo.DecrementStock(ctx, product.ID, domain.DimensionColor, item.Color, item.Quantity); err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}

		if item.Size != "" {
			if _, err := o.catalogRepo.DecrementStock(ctx, product.ID, domain.DimensionSize, item.Size, item.Quantity); err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}

		touched = append(touched, product.ID)
	}

	return touched, nil
}

// snapshotItems собирает неизменяемые позиции заказа из текущего каталога.
func (o *OrderUseCase) snapshotItems(ctx context.Context, specs []NewOrderItemSpec) ([]domain.OrderItem, int64, error) {
	items := make([]domain.OrderItem, 0, len(specs))
	var total int64

	for i, spec := range specs {
		product, err := o.catalogRepo.GetProduct(ctx, spec.ProductID)
		if err != nil {
			return nil, 0, fmt.Errorf("item %d: %w", i, err)
		}

		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Color:       spec.Color,
			Size:        spec.Size,
			Quantity:    spec.Quantity,
			Price:       product.OfferPrice,
			BuyingPrice: product.BuyingPrice,
		})
		total += product.OfferPrice * int64(spec.Quantity)
	}

	return items, total, nil
}

// enqueueOrderEvent кладёт событие заказа в outbox в рамках текущей транзакции.
func (o *OrderUseCase) enqueueOrderEvent(ctx context.Context, eventType OutboxEventType, aggregateID string, total int64, items []domain.OrderItem) error {
	eventID := uuid.NewString()

	payloadItems := make([]orderEventItem, 0, len(items))
	for _, item := range items {
		payloadItems = append(payloadItems, orderEventItem{
			ProductID: item.ProductID,
			Color:     item.Color,
			Size:      item.Size,
			Quantity:  item.Quantity,
		})
	}

	payload, err := json.Marshal(orderEventPayload{
		EventID:     eventID,
		OrderID:     aggregateID,
		TotalAmount: total,
		Items:       payloadItems,
	})
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(eventID, eventType, aggregateID, payload))
	return err
}

func validateItemSpecs(specs []NewOrderItemSpec) error {
	if len(specs) == 0 {
		return e.ErrNoOrderItems
	}

	for _, spec := range specs {
		if spec.Quantity <= 0 {
			return e.ErrNegativeQuantity
		}
	}

	return nil
}

func toStoreItems(items []domain.OrderItem) []domain.StoreOrderItem {
	storeItems := make([]domain.StoreOrderItem, 0, len(items))
	for _, item := range items {
		storeItems = append(storeItems, domain.StoreOrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Color:       item.Color,
			Size:        item.Size,
			Quantity:    item.Quantity,
			Price:       item.Price,
			BuyingPrice: item.BuyingPrice,
		})
	}
	return storeItems
}
