package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/nahid177/afwan-shop-sub001/internal/domain"
	"github.com/nahid177/afwan-shop-sub001/internal/repository/pgdb/converter"
	"github.com/nahid177/afwan-shop-sub001/internal/usecase"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/nahid177/afwan-shop-sub001/pkg/tr"
)

// ProfitRepo реализует репозиторий учётных периодов поверх PostgreSQL.
// Частичный уникальный индекс по status='open' гарантирует единственность
// открытого периода; его нарушение транслируется в конфликт конкурентной записи.
type ProfitRepo struct {
	pool *pgxpool.Pool
	conv converter.ProfitPeriodConverter
}

func NewProfitRepo(pool *pgxpool.Pool, conv converter.ProfitPeriodConverter) *ProfitRepo {
	return &ProfitRepo{
		pool: pool,
		conv: conv,
	}
}

// GetOpenPeriod возвращает единственный открытый период с прочими расходами.
// В транзакции строка периода блокируется до её конца.
func (p *ProfitRepo) GetOpenPeriod(ctx context.Context) (*domain.ProfitPeriod, error) {
	q := pick(ctx, p.pool)

	query := `
		SELECT id, total_products_sold, total_revenue, our_profit, titles, status, created_at, closed_at
		FROM profit_periods
		WHERE status = 'open'
	`
	if _, err := tr.TxFromCtx(ctx); err == nil {
		query += " FOR UPDATE"
	}

	var model converter.ProfitPeriodModel
	err := q.QueryRow(ctx, query).Scan(
		&model.ID, &model.TotalProductsSold, &model.TotalRevenue, &model.OurProfit,
		&model.Titles, &model.Status, &model.CreatedAt, &model.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNoOpenPeriod)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	period := p.conv.ToEntity(&model)
	period.OtherCosts, err = p.loadCosts(ctx, q, period.ID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return period, nil
}

// CreatePeriod создаёт новый период. Второй открытый период отклоняется
// частичным уникальным индексом.
func (p *ProfitRepo) CreatePeriod(ctx context.Context, period *domain.ProfitPeriod) (*domain.ProfitPeriod, error) {
	q := pick(ctx, p.pool)

	query := `
		INSERT INTO profit_periods (total_products_sold, total_revenue, our_profit, titles, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	model := p.conv.ToModel(period)
	created := *period
	err := q.QueryRow(ctx, query,
		model.TotalProductsSold, model.TotalRevenue, model.OurProfit, model.Titles, model.Status,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if postgresDuplicate(err) || postgresSerializationFailure(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrConcurrencyConflict)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	costQuery := `
		INSERT INTO period_costs (period_id, name, amount)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	created.OtherCosts = make([]domain.OtherCost, len(period.OtherCosts))
	copy(created.OtherCosts, period.OtherCosts)
	for i := range created.OtherCosts {
		cost := &created.OtherCosts[i]
		if err := q.QueryRow(ctx, costQuery, created.ID, cost.Name, cost.Amount).Scan(&cost.ID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return &created, nil
}

// UpdateTotals перезаписывает итоги открытого периода результатом пересчёта.
func (p *ProfitRepo) UpdateTotals(ctx context.Context, periodID int64, totals *usecase.RevenueTotals, ourProfit int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE profit_periods
		SET total_products_sold = $1, total_revenue = $2, our_profit = $3
		WHERE id = $4 AND status = 'open'
	`

	cmd, err := tx.Exec(ctx, query, totals.UnitsSold, totals.Revenue, ourProfit, periodID)
	if err != nil {
		if postgresSerializationFailure(err) {
			return e.Wrap(whereami.WhereAmI(), e.ErrConcurrencyConflict)
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if cmd.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrConcurrencyConflict)
	}

	return nil
}

// ClosePeriod помечает период закрытым; закрытый период больше не меняется.
func (p *ProfitRepo) ClosePeriod(ctx context.Context, periodID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE profit_periods
		SET status = 'closed', closed_at = NOW()
		WHERE id = $1 AND status = 'open'
	`

	cmd, err := tx.Exec(ctx, query, periodID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if cmd.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrConcurrencyConflict)
	}

	return nil
}

// AddCost добавляет прочий расход, только пока период открыт.
func (p *ProfitRepo) AddCost(ctx context.Context, periodID int64, name string, amount int64) (*domain.OtherCost, error) {
	q := pick(ctx, p.pool)

	query := `
		INSERT INTO period_costs (period_id, name, amount)
		SELECT id, $2, $3 FROM profit_periods WHERE id = $1 AND status = 'open'
		RETURNING id
	`

	cost := domain.OtherCost{Name: name, Amount: amount}
	err := q.QueryRow(ctx, query, periodID, name, amount).Scan(&cost.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrNoOpenPeriod)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &cost, nil
}

// ListClosedPeriods возвращает закрытые периоды, начиная с последнего.
func (p *ProfitRepo) ListClosedPeriods(ctx context.Context) ([]*domain.ProfitPeriod, error) {
	q := pick(ctx, p.pool)

	query := `
		SELECT id, total_products_sold, total_revenue, our_profit, titles, status, created_at, closed_at
		FROM profit_periods
		WHERE status = 'closed'
		ORDER BY closed_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	periods := make([]*domain.ProfitPeriod, 0)
	for rows.Next() {
		var model converter.ProfitPeriodModel
		if err := rows.Scan(
			&model.ID, &model.TotalProductsSold, &model.TotalRevenue, &model.OurProfit,
			&model.Titles, &model.Status, &model.CreatedAt, &model.ClosedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		periods = append(periods, p.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	for _, period := range periods {
		period.OtherCosts, err = p.loadCosts(ctx, q, period.ID)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return periods, nil
}

func (p *ProfitRepo) loadCosts(ctx context.Context, q querier, periodID int64) ([]domain.OtherCost, error) {
	query := `
		SELECT id, name, amount
		FROM period_costs
		WHERE period_id = $1
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	costs := make([]domain.OtherCost, 0)
	for rows.Next() {
		var cost domain.OtherCost
		if err := rows.Scan(&cost.ID, &cost.Name, &cost.Amount); err != nil {
			return nil, err
		}
		costs = append(costs, cost)
	}

	return costs, rows.Err()
}
