// Package tr передаёт открытую usecase-слоем транзакцию в репозитории
// через контекст.
package tr

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
)

const ctxKey = "tx"

// CtxWithTx кладёт транзакцию в контекст. Менеджер транзакций отдаёт её
// нетипизированной, поэтому проверка типа происходит при извлечении.
func CtxWithTx(ctx context.Context, tx any) context.Context {
	return context.WithValue(ctx, ctxKey, tx)
}

// TxFromCtx извлекает транзакцию из контекста.
// e.ErrTransactionNotFound, если запрос выполняется вне транзакции.
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(ctxKey).(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}
