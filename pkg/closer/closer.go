// Package closer собирает функции освобождения ресурсов и закрывает их
// в порядке LIFO при остановке приложения.
package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Closer обеспечивает потокобезопасное закрытие ресурсов.
type Closer struct {
	funcs         []Func
	mu            sync.Mutex
	once          sync.Once
	forcedTimeout time.Duration
}

// Func — сигнатура функции закрытия ресурса.
type Func func(ctx context.Context) error

// NewCloser создает новый экземпляр Closer.
// forcedTimeout — время на принудительное закрытие остатка при отмене контекста в Close.
func NewCloser(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout == 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{
		forcedTimeout: forcedTimeout,
	}
}

// Add добавляет функцию в список закрытия
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
}

// Close последовательно запускает закрытие всех зарегистрированных функций (LIFO).
// Если контекст отменяется до завершения, оставшиеся функции закрываются принудительно.
func (c *Closer) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		stopIdx, closeErrs := c.gracefulClose(ctx, funcs)
		if stopIdx < 0 { // все ресурсы закрылись до отмены контекста
			if joined := errors.Join(closeErrs...); joined != nil {
				err = fmt.Errorf("shutdown finished with error(s): %w", joined)
			}

			return
		}

		// Остаток закрываем принудительно с собственным таймаутом
		remaining := funcs[:stopIdx+1]
		closeErrs = append(closeErrs, c.forcedClose(remaining)...)

		err = fmt.Errorf(
			"shutdown interrupted after %d/%d funcs: %w",
			len(funcs)-1-stopIdx,
			len(funcs),
			errors.Join(closeErrs...),
		)
	})

	return err
}

// gracefulClose закрывает функции в порядке LIFO, собирая ошибки.
// При отмене контекста возвращает индекс первой незакрытой функции.
func (c *Closer) gracefulClose(ctx context.Context, funcs []Func) (int, []error) {
	var closeErrs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		var (
			f    = funcs[i]
			done = make(chan error, 1)
		)

		go func() {
			done <- f(ctx)
		}()

		select {
		case err := <-done:
			if err != nil {
				closeErrs = append(closeErrs, err)
			}
		case <-ctx.Done():
			return i, closeErrs
		}
	}

	return -1, closeErrs
}

// forcedClose параллельно запускает оставшиеся функции закрытия.
func (c *Closer) forcedClose(funcs []Func) []error {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		closeErrs []error
	)

	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	for _, f := range funcs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f(ctx); err != nil {
				mu.Lock()
				closeErrs = append(closeErrs, fmt.Errorf("forced: %w", err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return closeErrs
}
