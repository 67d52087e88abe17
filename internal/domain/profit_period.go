package domain

import "time"

// PeriodStatus — состояние учётного периода.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "open"
	PeriodClosed PeriodStatus = "closed"
)

// OtherCost — прочий расход периода (аренда, доставка и т.п.).
type OtherCost struct {
	ID     int64
	Name   string
	Amount int64
}

// ProfitPeriod — учётный период прибыли.
// В любой момент ровно один период открыт; закрытый период неизменяем.
// Инвариант: OurProfit = TotalRevenue − себестоимость − Σ OtherCosts.Amount.
type ProfitPeriod struct {
	ID                int64
	TotalProductsSold int64
	TotalRevenue      int64
	OurProfit         int64
	OtherCosts        []OtherCost
	Titles            []string
	Status            PeriodStatus
	CreatedAt         time.Time
	ClosedAt          *time.Time
}

func NewProfitPeriod(titles []string, otherCosts []OtherCost) *ProfitPeriod {
	return &ProfitPeriod{
		OtherCosts: otherCosts,
		Titles:     titles,
		Status:     PeriodOpen,
	}
}

// OtherCostsTotal возвращает сумму прочих расходов периода.
func (p *ProfitPeriod) OtherCostsTotal() int64 {
	var total int64
	for _, c := range p.OtherCosts {
		total += c.Amount
	}
	return total
}
