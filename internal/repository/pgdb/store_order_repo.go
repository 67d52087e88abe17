package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/nahid177/afwan-shop-sub001/internal/domain"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/nahid177/afwan-shop-sub001/pkg/tr"
)

// StoreOrderRepo реализует репозиторий офлайн-продаж поверх PostgreSQL.
type StoreOrderRepo struct {
	pool *pgxpool.Pool
}

func NewStoreOrderRepo(pool *pgxpool.Pool) *StoreOrderRepo {
	return &StoreOrderRepo{pool: pool}
}

// Create сохраняет офлайн-продажу с позициями в рамках транзакции.
func (s *StoreOrderRepo) Create(ctx context.Context, order *domain.StoreOrder) (*domain.StoreOrder, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	orderQuery := `
		INSERT INTO store_orders (id, total_amount, approved)
		VALUES ($1, $2, $3)
		RETURNING sold_at
	`

	created := *order
	if err := tx.QueryRow(ctx, orderQuery, order.ID, order.TotalAmount, order.Approved).Scan(&created.SoldAt); err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrConcurrencyConflict)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO store_order_items (store_order_id, product_id, product_name, color, size, quantity, price, buying_price, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	created.Items = make([]domain.StoreOrderItem, len(order.Items))
	copy(created.Items, order.Items)
	for i := range created.Items {
		item := &created.Items[i]
		err := tx.QueryRow(ctx, itemQuery,
			created.ID, item.ProductID, item.ProductName, item.Color, item.Size,
			item.Quantity, item.Price, item.BuyingPrice, i,
		).Scan(&item.ID)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return &created, nil
}

// ListUnaccounted возвращает одобренные офлайн-продажи с позициями, ещё не
// учтённые в закрытом периоде.
func (s *StoreOrderRepo) ListUnaccounted(ctx context.Context) ([]*domain.StoreOrder, error) {
	q := pick(ctx, s.pool)

	query := `
		SELECT id, total_amount, approved, sold_at
		FROM store_orders
		WHERE approved AND profit_period_id IS NULL
		ORDER BY sold_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	orders := make([]*domain.StoreOrder, 0)
	for rows.Next() {
		var order domain.StoreOrder
		if err := rows.Scan(&order.ID, &order.TotalAmount, &order.Approved, &order.SoldAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	for _, order := range orders {
		order.Items, err = s.loadItems(ctx, q, order.ID)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return orders, nil
}

// MarkAccounted закрепляет неучтённые офлайн-продажи за периодом в рамках
// транзакции закрытия периода.
func (s *StoreOrderRepo) MarkAccounted(ctx context.Context, periodID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE store_orders
		SET profit_period_id = $1
		WHERE approved AND profit_period_id IS NULL
	`

	if _, err := tx.Exec(ctx, query, periodID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *StoreOrderRepo) loadItems(ctx context.Context, q querier, orderID string) ([]domain.StoreOrderItem, error) {
	query := `
		SELECT id, product_id, product_name, color, size, quantity, price, buying_price
		FROM store_order_items
		WHERE store_order_id = $1
		ORDER BY position
	`

	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.StoreOrderItem, 0)
	for rows.Next() {
		var item domain.StoreOrderItem
		if err := rows.Scan(
			&item.ID, &item.ProductID, &item.ProductName, &item.Color, &item.Size,
			&item.Quantity, &item.Price, &item.BuyingPrice,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
