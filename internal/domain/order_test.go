package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderRevenueEvent(t *testing.T) {
	order := NewOrder("Иван", "+79990001122", "Москва", []OrderItem{
		{ProductID: 1, Quantity: 2, Price: 1000, BuyingPrice: 600},
		{ProductID: 2, Quantity: 1, Price: 500, BuyingPrice: 200},
	}, 2500)

	assert.Equal(t, OrderOpen, order.Status)
	assert.False(t, order.Approved)

	assert.Equal(t, int64(3), order.UnitsSold())
	assert.Equal(t, int64(2500), order.Revenue())
	// 2×600 + 1×200
	assert.Equal(t, int64(1400), order.CostOfGoods())
}

func TestStoreOrderRevenueEvent(t *testing.T) {
	storeOrder := NewStoreOrder("so-1", []StoreOrderItem{
		{ProductID: 1, Quantity: 4, Price: 250, BuyingPrice: 100},
	}, 1000)

	// Офлайн-продажа одобрена с момента создания
	assert.True(t, storeOrder.Approved)

	assert.Equal(t, int64(4), storeOrder.UnitsSold())
	assert.Equal(t, int64(1000), storeOrder.Revenue())
	assert.Equal(t, int64(400), storeOrder.CostOfGoods())
}
