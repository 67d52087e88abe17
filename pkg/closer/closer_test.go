package closer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseLIFO(t *testing.T) {
	c := NewCloser(0)

	var order []int
	for i := 1; i <= 3; i++ {
		c.Add(func(ctx context.Context) error {
			order = append(order, i)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestCloseCollectsErrors(t *testing.T) {
	c := NewCloser(0)

	errFirst := errors.New("db close failed")
	errSecond := errors.New("cache close failed")

	c.Add(func(ctx context.Context) error { return errFirst })
	c.Add(func(ctx context.Context) error { return nil })
	c.Add(func(ctx context.Context) error { return errSecond })

	err := c.Close(context.Background())
	require.Error(t, err)
	// Сбой одной функции не мешает остальным
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errSecond)
}

func TestCloseOnlyOnce(t *testing.T) {
	c := NewCloser(0)

	var calls int
	c.Add(func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, c.Close(context.Background()))
	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestCloseForcedOnContextCancel(t *testing.T) {
	c := NewCloser(100 * time.Millisecond)

	var forced bool
	c.Add(func(ctx context.Context) error {
		forced = true
		return nil
	})
	c.Add(func(ctx context.Context) error {
		// Первая закрываемая функция висит дольше, чем разрешает контекст
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted")
	assert.True(t, forced)
}
