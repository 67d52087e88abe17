package domain

import "time"

// OrderStatus — состояние жизненного цикла заказа.
// Переходы: open → confirmed → closed; подтверждение необратимо.
type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderConfirmed OrderStatus = "confirmed"
	OrderClosed    OrderStatus = "closed"
)

// OrderItem — неизменяемый снимок позиции на момент оформления заказа.
// Цена, название и закупочная цена фиксируются и не зависят от
// последующих правок каталога.
type OrderItem struct {
	ID          int64
	ProductID   int64
	ProductName string
	Color       string
	Size        string
	Quantity    int32
	Price       int64
	BuyingPrice int64
}

// Order описывает заказ покупателя
type Order struct {
	ID           int64
	CustomerName string
	Phone        string
	Address      string
	Items        []OrderItem
	TotalAmount  int64
	Status       OrderStatus
	Approved     bool
	CreatedAt    time.Time
	ConfirmedAt  *time.Time
	ClosedAt     *time.Time
}

func NewOrder(customerName, phone, address string, items []OrderItem, totalAmount int64) *Order {
	return &Order{
		CustomerName: customerName,
		Phone:        phone,
		Address:      address,
		Items:        items,
		TotalAmount:  totalAmount,
		Status:       OrderOpen,
	}
}

// UnitsSold возвращает суммарное количество единиц по позициям заказа.
func (o *Order) UnitsSold() int64 {
	var total int64
	for _, item := range o.Items {
		total += int64(item.Quantity)
	}
	return total
}

// Revenue возвращает выручку заказа.
func (o *Order) Revenue() int64 {
	return o.TotalAmount
}

// CostOfGoods возвращает себестоимость заказа: Σ закупочная цена × количество.
func (o *Order) CostOfGoods() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.BuyingPrice * int64(item.Quantity)
	}
	return total
}
