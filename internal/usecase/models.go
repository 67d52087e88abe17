package usecase

import (
	"time"

	"github.com/nahid177/afwan-shop-sub001/internal/domain"
)

// CATALOG USECASE

// VariantInfo — вариант продукта с остатком для внешнего использования.
type VariantInfo struct {
	Label    string
	Quantity int32
}

// ProductDetail — DTO карточки продукта с привязкой к категории и типу.
type ProductDetail struct {
	ID            int64
	Name          string
	CategoryName  string
	TypeName      string
	Codes         []string
	OriginalPrice int64
	OfferPrice    int64
	Colors        []VariantInfo
	Sizes         []VariantInfo
}

// ProductLocation — продукт вместе с владеющей категорией и типом.
type ProductLocation struct {
	Product  *domain.Product
	Category *domain.Category
	Type     *domain.ProductType
}

// NewProductSpec — описание нового продукта при пополнении категории.
type NewProductSpec struct {
	Name          string
	Codes         []string
	OriginalPrice int64
	OfferPrice    int64
	BuyingPrice   int64
	Colors        []VariantInfo
	Sizes         []VariantInfo
}

// AppendProductsReq — запрос на добавление продуктов в существующую категорию.
type AppendProductsReq struct {
	TypeID       int64
	CategoryName string
	Products     []NewProductSpec
}

// AppendProductsRes — идентификаторы созданных продуктов.
type AppendProductsRes struct {
	ProductIDs []int64
}

// ORDER USECASE

// NewOrderItemSpec — позиция заказа при оформлении; снимок цены и названия
// делается из каталога на момент оформления.
type NewOrderItemSpec struct {
	ProductID int64
	Color     string
	Size      string
	Quantity  int32
}

// CreateOrderReq — запрос на оформление онлайн-заказа.
type CreateOrderReq struct {
	CustomerName string
	Phone        string
	Address      string
	Items        []NewOrderItemSpec
}

// CreateStoreOrderReq — запрос на регистрацию офлайн-продажи.
type CreateStoreOrderReq struct {
	Items []NewOrderItemSpec
}

// OrderRes — ответ с текущим состоянием заказа.
type OrderRes struct {
	OrderID     int64
	Status      domain.OrderStatus
	Approved    bool
	TotalAmount int64
}

// StoreOrderRes — ответ с данными зарегистрированной офлайн-продажи.
type StoreOrderRes struct {
	StoreOrderID string
	TotalAmount  int64
}

// PROFIT USECASE

// RevenueTotals — агрегат по источникам выручки, всегда пересчитывается с нуля.
type RevenueTotals struct {
	UnitsSold   int64
	Revenue     int64
	CostOfGoods int64
}

// PeriodSummary — DTO учётного периода.
type PeriodSummary struct {
	PeriodID          int64
	TotalProductsSold int64
	TotalRevenue      int64
	OurProfit         int64
	OtherCosts        []domain.OtherCost
	Titles            []string
	Status            domain.PeriodStatus
	ClosedAt          *time.Time
}

// AddOtherCostReq — запрос на добавление прочего расхода в открытый период.
type AddOtherCostReq struct {
	Name   string
	Amount int64
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderConfirmedEvent    OutboxEventType = "order.confirmed"
	StoreOrderCreatedEvent OutboxEventType = "store_order.created"
)

// OutboxEvent — событие для надёжной публикации в Kafka через outbox-таблицу.
type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   OutboxEventType
	AggregateID string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// WriteRawMessageReq — готовый payload для записи в Kafka.
type WriteRawMessageReq struct {
	AggregateID string
	Payload     []byte
}

// MAPPERS

func NewRevenueTotals(events []domain.RevenueEvent) *RevenueTotals {
	totals := &RevenueTotals{}
	for _, ev := range events {
		totals.UnitsSold += ev.UnitsSold()
		totals.Revenue += ev.Revenue()
		totals.CostOfGoods += ev.CostOfGoods()
	}
	return totals
}

func NewPeriodSummary(period *domain.ProfitPeriod) *PeriodSummary {
	return &PeriodSummary{
		PeriodID:          period.ID,
		TotalProductsSold: period.TotalProductsSold,
		TotalRevenue:      period.TotalRevenue,
		OurProfit:         period.OurProfit,
		OtherCosts:        period.OtherCosts,
		Titles:            period.Titles,
		Status:            period.Status,
		ClosedAt:          period.ClosedAt,
	}
}

func NewOrderRes(order *domain.Order) *OrderRes {
	return &OrderRes{
		OrderID:     order.ID,
		Status:      order.Status,
		Approved:    order.Approved,
		TotalAmount: order.TotalAmount,
	}
}

func NewStoreOrderRes(order *domain.StoreOrder) *StoreOrderRes {
	return &StoreOrderRes{
		StoreOrderID: order.ID,
		TotalAmount:  order.TotalAmount,
	}
}

func NewProductLocation(product *domain.Product, category *domain.Category, productType *domain.ProductType) *ProductLocation {
	return &ProductLocation{
		Product:  product,
		Category: category,
		Type:     productType,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, aggregateID string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   time.Now().UTC(),
	}
}

func NewWriteRawMessageReq(aggregateID string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		AggregateID: aggregateID,
		Payload:     payload,
	}
}

func NewProductDetail(product *domain.Product, categoryName, typeName string) *ProductDetail {
	toInfo := func(variants []domain.Variant) []VariantInfo {
		infos := make([]VariantInfo, 0, len(variants))
		for _, v := range variants {
			infos = append(infos, VariantInfo{Label: v.Label, Quantity: v.Quantity})
		}
		return infos
	}

	return &ProductDetail{
		ID:            product.ID,
		Name:          product.Name,
		CategoryName:  categoryName,
		TypeName:      typeName,
		Codes:         product.Codes,
		OriginalPrice: product.OriginalPrice,
		OfferPrice:    product.OfferPrice,
		Colors:        toInfo(product.Colors),
		Sizes:         toInfo(product.Sizes),
	}
}
