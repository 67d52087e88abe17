package e

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	wrapped := Wrap("OrderUseCase.ConfirmOrder", ErrOrderNotFound)

	assert.ErrorIs(t, wrapped, ErrOrderNotFound)
	assert.Equal(t, "OrderUseCase.ConfirmOrder: order not found", wrapped.Error())
}

func TestInsufficientStockError(t *testing.T) {
	err := NewInsufficientStockError(42, "color", "black", 5, 2)

	// Типизированная ошибка сопоставляется с общим сентинелом
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// И доступна через errors.As даже после оборачивания
	wrapped := fmt.Errorf("item 1: %w", err)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, wrapped, &stockErr)
	assert.Equal(t, int64(42), stockErr.ProductID)
	assert.Equal(t, "black", stockErr.Label)
	assert.Equal(t, int32(5), stockErr.Requested)
	assert.Equal(t, int32(2), stockErr.Available)

	assert.Equal(t,
		`insufficient stock: product 42, color "black", requested 5, available 2`,
		err.Error(),
	)

	// С другими сентинелами не совпадает
	assert.False(t, errors.Is(err, ErrConcurrencyConflict))
}
