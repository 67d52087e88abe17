package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID            int64      `db:"id"`
	CategoryID    int64      `db:"category_id"`
	Name          string     `db:"name"`
	Codes         []string   `db:"codes"`
	OriginalPrice int64      `db:"original_price"`
	OfferPrice    int64      `db:"offer_price"`
	BuyingPrice   int64      `db:"buying_price"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
	IsArchived    bool       `db:"is_archived"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID            int64      `db:"id"`
	ProductTypeID int64      `db:"product_type_id"`
	Name          string     `db:"name"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
}

// ProductTypeModel представляет запись таблицы product_types в PostgreSQL.
type ProductTypeModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
// Позиции заказа читаются отдельно из order_items.
type OrderModel struct {
	ID           int64      `db:"id"`
	CustomerName string     `db:"customer_name"`
	Phone        string     `db:"phone"`
	Address      string     `db:"address"`
	TotalAmount  int64      `db:"total_amount"`
	Status       string     `db:"status"`
	Approved     bool       `db:"approved"`
	CreatedAt    time.Time  `db:"created_at"`
	ConfirmedAt  *time.Time `db:"confirmed_at"`
	ClosedAt     *time.Time `db:"closed_at"`
}

// ProfitPeriodModel представляет запись таблицы profit_periods в PostgreSQL.
// Прочие расходы читаются отдельно из period_costs.
type ProfitPeriodModel struct {
	ID                int64      `db:"id"`
	TotalProductsSold int64      `db:"total_products_sold"`
	TotalRevenue      int64      `db:"total_revenue"`
	OurProfit         int64      `db:"our_profit"`
	Titles            []string   `db:"titles"`
	Status            string     `db:"status"`
	CreatedAt         time.Time  `db:"created_at"`
	ClosedAt          *time.Time `db:"closed_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	AggregateID string     `db:"aggregate_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
