package domain

import "time"

// StoreOrderItem — позиция продажи в офлайн-магазине.
type StoreOrderItem struct {
	ID          int64
	ProductID   int64
	ProductName string
	Color       string
	Size        string
	Quantity    int32
	Price       int64
	BuyingPrice int64
}

// StoreOrder описывает продажу в офлайн-магазине (POS).
// Списывается со склада сразу и сразу помечается approved —
// ручное подтверждение, как у онлайн-заказов, не требуется.
type StoreOrder struct {
	ID          string // uuid
	Items       []StoreOrderItem
	TotalAmount int64
	Approved    bool
	SoldAt      time.Time
}

func NewStoreOrder(id string, items []StoreOrderItem, totalAmount int64) *StoreOrder {
	return &StoreOrder{
		ID:          id,
		Items:       items,
		TotalAmount: totalAmount,
		Approved:    true,
	}
}

// UnitsSold возвращает суммарное количество единиц по позициям продажи.
func (s *StoreOrder) UnitsSold() int64 {
	var total int64
	for _, item := range s.Items {
		total += int64(item.Quantity)
	}
	return total
}

// Revenue возвращает выручку продажи.
func (s *StoreOrder) Revenue() int64 {
	return s.TotalAmount
}

// CostOfGoods возвращает себестоимость продажи.
func (s *StoreOrder) CostOfGoods() int64 {
	var total int64
	for _, item := range s.Items {
		total += item.BuyingPrice * int64(item.Quantity)
	}
	return total
}
