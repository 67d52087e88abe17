package tr

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTx struct {
	pgx.Tx
}

func TestTxRoundTrip(t *testing.T) {
	tx := &stubTx{}

	// менеджер транзакций отдаёт транзакцию как interface{}
	var raw any = tx
	ctx := CtxWithTx(context.Background(), raw)

	got, err := TxFromCtx(ctx)
	require.NoError(t, err)
	assert.Same(t, tx, got)
}

func TestTxFromCtxOutsideTransaction(t *testing.T) {
	_, err := TxFromCtx(context.Background())
	assert.ErrorIs(t, err, e.ErrTransactionNotFound)
}

func TestTxFromCtxForeignValue(t *testing.T) {
	ctx := CtxWithTx(context.Background(), "not a transaction")

	_, err := TxFromCtx(ctx)
	assert.ErrorIs(t, err, e.ErrTransactionNotFound)
}
