package domain

// RevenueEvent — единая абстракция источника выручки для учёта прибыли.
// Онлайн-заказы и офлайн-продажи агрегируются одинаково, без дублирования
// логики в бухгалтерии.
type RevenueEvent interface {
	UnitsSold() int64
	Revenue() int64
	CostOfGoods() int64
}

var (
	_ RevenueEvent = (*Order)(nil)
	_ RevenueEvent = (*StoreOrder)(nil)
)
