package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/nahid177/afwan-shop-sub001/internal/cfg"
	"github.com/nahid177/afwan-shop-sub001/internal/domain"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/nahid177/afwan-shop-sub001/pkg/jitter"
	"github.com/nahid177/afwan-shop-sub001/pkg/logger"
	"github.com/nahid177/afwan-shop-sub001/pkg/tr"
)

// ProfitUseCase ведёт учёт прибыли: пересчёт итогов открытого периода из
// одобренных заказов и закрытие периода с открытием следующего.
// Итоги всегда выводятся заново из исходных заказов, а не накапливаются
// дельтами — повторный запуск после частичного сбоя безопасен.
type ProfitUseCase struct {
	profitRepo     ProfitRepository
	orderRepo      OrderRepository
	storeOrderRepo StoreOrderRepository
	dbPool         transaction.Transactional
	cfg            *cfg.ProfitCfg
	logger         logger.Logger
}

func NewProfitUC(
	profitRepo ProfitRepository,
	orderRepo OrderRepository,
	storeOrderRepo StoreOrderRepository,
	dbPool transaction.Transactional,
	cfg *cfg.ProfitCfg,
	logger logger.Logger,
) *ProfitUseCase {
	return &ProfitUseCase{
		profitRepo:     profitRepo,
		orderRepo:      orderRepo,
		storeOrderRepo: storeOrderRepo,
		dbPool:         dbPool,
		cfg:            cfg,
		logger:         logger,
	}
}

// RecalculateProfit пересчитывает итоги открытого периода с нуля.
// Если открытого периода нет, он создаётся. Идемпотентна.
func (p *ProfitUseCase) RecalculateProfit(ctx context.Context) (*PeriodSummary, error) {
	const op = "ProfitUseCase.RecalculateProfit"

	var summary *PeriodSummary
	err := p.withConflictRetry(ctx, op, func(ctx context.Context) error {
		res, err := p.recalculate(ctx)
		if err != nil {
			return err
		}
		summary = res
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return summary, nil
}

func (p *ProfitUseCase) recalculate(ctx context.Context) (*PeriodSummary, error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	period, err := p.openPeriod(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := p.aggregate(ctx)
	if err != nil {
		return nil, err
	}

	ourProfit := totals.Revenue - totals.CostOfGoods - period.OtherCostsTotal()

	if err = p.profitRepo.UpdateTotals(ctx, period.ID, totals, ourProfit); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	period.TotalProductsSold = totals.UnitsSold
	period.TotalRevenue = totals.Revenue
	period.OurProfit = ourProfit

	return NewPeriodSummary(period), nil
}

// CloseProfitPeriod закрывает открытый период и открывает следующий одной
// транзакцией: либо происходит и то и другое, либо ничего. Итоги закрываемого
// периода пересчитываются тем же агрегированием, что и RecalculateProfit;
// новый период стартует с нулевыми итогами, перенимая otherCosts и titles.
func (p *ProfitUseCase) CloseProfitPeriod(ctx context.Context) (*PeriodSummary, error) {
	const op = "ProfitUseCase.CloseProfitPeriod"

	var summary *PeriodSummary
	err := p.withConflictRetry(ctx, op, func(ctx context.Context) error {
		res, err := p.closePeriod(ctx)
		if err != nil {
			return err
		}
		summary = res
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return summary, nil
}

func (p *ProfitUseCase) closePeriod(ctx context.Context) (*PeriodSummary, error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	period, err := p.profitRepo.GetOpenPeriod(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := p.aggregate(ctx)
	if err != nil {
		return nil, err
	}

	ourProfit := totals.Revenue - totals.CostOfGoods - period.OtherCostsTotal()

	if err = p.profitRepo.UpdateTotals(ctx, period.ID, totals, ourProfit); err != nil {
		return nil, err
	}

	if err = p.profitRepo.ClosePeriod(ctx, period.ID); err != nil {
		return nil, err
	}

	// Учтённая выручка уходит вместе с закрытым периодом: следующий период
	// начинается с нулевых итогов
	if err = p.orderRepo.MarkAccounted(ctx, period.ID); err != nil {
		return nil, err
	}
	if err = p.storeOrderRepo.MarkAccounted(ctx, period.ID); err != nil {
		return nil, err
	}

	// Следующий период перенимает прочие расходы и заголовки дословно
	next := domain.NewProfitPeriod(period.Titles, period.OtherCosts)
	if _, err = p.profitRepo.CreatePeriod(ctx, next); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	period.Status = domain.PeriodClosed
	period.ClosedAt = &now
	period.TotalProductsSold = totals.UnitsSold
	period.TotalRevenue = totals.Revenue
	period.OurProfit = ourProfit

	return NewPeriodSummary(period), nil
}

// AddOtherCost добавляет прочий расход в текущий открытый период.
func (p *ProfitUseCase) AddOtherCost(ctx context.Context, req *AddOtherCostReq) (*PeriodSummary, error) {
	const op = "ProfitUseCase.AddOtherCost"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrCostNameRequired)
	}

	if req.Amount < 0 {
		return nil, e.Wrap(op, e.ErrCostMustBeNonNegative)
	}

	period, err := p.profitRepo.GetOpenPeriod(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cost, err := p.profitRepo.AddCost(ctx, period.ID, req.Name, req.Amount)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	period.OtherCosts = append(period.OtherCosts, *cost)
	return NewPeriodSummary(period), nil
}

// GetProfitHistory возвращает закрытые периоды, начиная с последнего.
func (p *ProfitUseCase) GetProfitHistory(ctx context.Context) ([]PeriodSummary, error) {
	const op = "ProfitUseCase.GetProfitHistory"

	periods, err := p.profitRepo.ListClosedPeriods(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	summaries := make([]PeriodSummary, 0, len(periods))
	for _, period := range periods {
		summaries = append(summaries, *NewPeriodSummary(period))
	}

	return summaries, nil
}

// aggregate собирает итоги по одобренным источникам выручки — онлайн-заказам
// и офлайн-продажам — через общую абстракцию RevenueEvent. Заказы, уже
// закреплённые за закрытым периодом, в выборку не попадают: их выручка учтена
// ровно один раз.
func (p *ProfitUseCase) aggregate(ctx context.Context) (*RevenueTotals, error) {
	orders, err := p.orderRepo.ListUnaccounted(ctx)
	if err != nil {
		return nil, err
	}

	storeOrders, err := p.storeOrderRepo.ListUnaccounted(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]domain.RevenueEvent, 0, len(orders)+len(storeOrders))
	for _, order := range orders {
		events = append(events, order)
	}
	for _, storeOrder := range storeOrders {
		events = append(events, storeOrder)
	}

	return NewRevenueTotals(events), nil
}

// openPeriod возвращает открытый период, создавая его при отсутствии.
func (p *ProfitUseCase) openPeriod(ctx context.Context) (*domain.ProfitPeriod, error) {
	period, err := p.profitRepo.GetOpenPeriod(ctx)
	if err == nil {
		return period, nil
	}

	if !errors.Is(err, e.ErrNoOpenPeriod) {
		return nil, err
	}

	return p.profitRepo.CreatePeriod(ctx, domain.NewProfitPeriod(nil, nil))
}

// withConflictRetry выполняет fn, повторяя её при конфликтах конкурентной
// записи с экспоненциальной паузой. Прочие ошибки возвращаются сразу.
func (p *ProfitUseCase) withConflictRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := jitter.ExponentialBackoff(p.cfg.RetryBackoff, time.Second, attempt-1, jitter.DefaultJitter)
			p.logger.Warnf("%s: write conflict, retrying in %s (attempt %d/%d)", op, backoff, attempt, p.cfg.MaxRetries)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err = fn(ctx)
		if err == nil || !errors.Is(err, e.ErrConcurrencyConflict) {
			return err
		}
	}

	return err
}
