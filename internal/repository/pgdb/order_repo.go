package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/nahid177/afwan-shop-sub001/internal/domain"
	"github.com/nahid177/afwan-shop-sub001/internal/repository/pgdb/converter"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/nahid177/afwan-shop-sub001/pkg/tr"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет заказ вместе со снимком позиций в рамках транзакции.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	orderQuery := `
		INSERT INTO orders (customer_name, phone, address, total_amount, status, approved)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	model := o.conv.ToModel(order)
	created := *order
	err = tx.QueryRow(ctx, orderQuery,
		model.CustomerName, model.Phone, model.Address,
		model.TotalAmount, model.Status, model.Approved,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, product_name, color, size, quantity, price, buying_price, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	created.Items = make([]domain.OrderItem, len(order.Items))
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

// GetForUpdate читает заказ с позициями, блокируя строку заказа до конца транзакции.
func (o *OrderRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.get(ctx, tx, id, true)
}

// Get читает заказ с позициями без блокировки.
func (o *OrderRepo) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return o.get(ctx, pick(ctx, o.pool), id, false)
}

func (o *OrderRepo) get(ctx context.Context, q querier, id int64, forUpdate bool) (*domain.Order, error) {
	query := `
		SELECT id, customer_name, phone, address, total_amount, status, approved,
		       created_at, confirmed_at, closed_at
		FROM orders
		WHERE id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var model converter.OrderModel
	err := q.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.CustomerName, &model.Phone, &model.Address,
		&model.TotalAmount, &model.Status, &model.Approved,
		&model.CreatedAt, &model.ConfirmedAt, &model.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	order := o.conv.ToEntity(&model)
	order.Items, err = o.loadItems(ctx, q, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return order, nil
}

// SetConfirmed помечает заказ подтверждённым в рамках транзакции подтверждения.
func (o *OrderRepo) SetConfirmed(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE orders
		SET status = $1, confirmed_at = NOW()
		WHERE id = $2 AND status = $3
	`

	cmd, err := tx.Exec(ctx, query, string(domain.OrderConfirmed), id, string(domain.OrderOpen))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if cmd.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrAlreadyConfirmed)
	}

	return nil
}

// SetApproved выставляет признак ручного одобрения.
func (o *OrderRepo) SetApproved(ctx context.Context, id int64) error {
	query := `UPDATE orders SET approved = true WHERE id = $1`

	cmd, err := pick(ctx, o.pool).Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if cmd.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return nil
}

// SetClosed переводит заказ в терминальное состояние в рамках транзакции.
func (o *OrderRepo) SetClosed(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE orders
		SET status = $1, closed_at = NOW()
		WHERE id = $2 AND status <> $1 AND approved
	`

	cmd, err := tx.Exec(ctx, query, string(domain.OrderClosed), id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if cmd.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrNotApproved)
	}

	return nil
}

// ListUnaccounted возвращает одобренные заказы с позициями, выручка которых
// ещё не учтена в закрытом периоде.
func (o *OrderRepo) ListUnaccounted(ctx context.Context) ([]*domain.Order, error) {
	q := pick(ctx, o.pool)

	query := `
		SELECT id, customer_name, phone, address, total_amount, status, approved,
		       created_at, confirmed_at, closed_at
		FROM orders
		WHERE approved AND profit_period_id IS NULL
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		var model converter.OrderModel
		if err := rows.Scan(
			&model.ID, &model.CustomerName, &model.Phone, &model.Address,
			&model.TotalAmount, &model.Status, &model.Approved,
			&model.CreatedAt, &model.ConfirmedAt, &model.ClosedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		orders = append(orders, o.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	for _, order := range orders {
		order.Items, err = o.loadItems(ctx, q, order.ID)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return orders, nil
}

// MarkAccounted закрепляет неучтённые одобренные заказы за периодом в рамках
// транзакции закрытия периода.
func (o *OrderRepo) MarkAccounted(ctx context.Context, periodID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE orders
		SET profit_period_id = $1
		WHERE approved AND profit_period_id IS NULL
	`

	if _, err := tx.Exec(ctx, query, periodID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// loadItems дочитывает позиции заказа в порядке их следования.
func (o *OrderRepo) loadItems(ctx context.Context, q querier, orderID int64) ([]domain.OrderItem, error) {
	query := `
		SELECT id, product_id, product_name, color, size, quantity, price, buying_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`

	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
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
