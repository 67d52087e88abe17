package kafka

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nahid177/afwan-shop-sub001/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

// fakeOutboxRepo повторяет контракт SQL-реализации: claim забирает ожидающие
// события и processing-события, зависшие дольше пяти минут.
type fakeOutboxRepo struct {
	pending   []*usecase.OutboxEvent
	startedAt map[int64]time.Time
	claimed   int
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *usecase.OutboxEvent) (*usecase.OutboxEvent, error) {
	f.pending = append(f.pending, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*usecase.OutboxEvent, error) {
	if f.startedAt == nil {
		f.startedAt = make(map[int64]time.Time)
	}

	var batch []*usecase.OutboxEvent
	for _, event := range f.pending {
		if len(batch) >= limit {
			break
		}
		stale := event.Status == usecase.Processing && time.Since(f.startedAt[event.ID]) > 5*time.Minute
		if event.Status == usecase.Pending || stale {
			event.Status = usecase.Processing
			f.startedAt[event.ID] = time.Now()
			batch = append(batch, event)
			f.claimed++
		}
	}
	return batch, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	for _, event := range f.pending {
		if event.ID == id {
			event.Status = usecase.Processed
		}
	}
	return nil
}

type fakeProducer struct {
	written []*usecase.WriteRawMessageReq
	err     error
}

func (f *fakeProducer) WriteRawMessage(ctx context.Context, req *usecase.WriteRawMessageReq) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, req)
	return nil
}

func seedEvents(repo *fakeOutboxRepo, n int) {
	for i := 0; i < n; i++ {
		event := usecase.NewOutboxEvent(
			fmt.Sprintf("event-%d", i),
			usecase.OrderConfirmedEvent,
			fmt.Sprintf("%d", i),
			[]byte(`{"order_id":"1"}`),
		)
		event.ID = int64(i + 1)
		repo.pending = append(repo.pending, event)
	}
}

func TestProcessBatch(t *testing.T) {
	repo := &fakeOutboxRepo{}
	producer := &fakeProducer{}
	seedEvents(repo, 3)

	w := NewOutboxWorker(repo, noopLogger{}, producer, "")

	hasMore, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.True(t, hasMore)

	require.Len(t, producer.written, 3)
	assert.Equal(t, "0", producer.written[0].AggregateID)
	for _, event := range repo.pending {
		assert.Equal(t, usecase.Processed, event.Status)
	}

	// Очередь пуста — следующий вызов сообщает, что добирать нечего
	hasMore, err = w.processBatch(context.Background())
	require.NoError(t, err)
	assert.False(t, hasMore)
}

func TestProcessBatchRespectsLimit(t *testing.T) {
	repo := &fakeOutboxRepo{}
	seedEvents(repo, 15)

	w := NewOutboxWorker(repo, noopLogger{}, &fakeProducer{}, "")

	hasMore, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.True(t, hasMore)
	assert.Equal(t, 10, repo.claimed)
}

func TestProcessBatchProducerFailure(t *testing.T) {
	repo := &fakeOutboxRepo{}
	seedEvents(repo, 2)

	producer := &fakeProducer{err: errors.New("kafka: broken pipe")}
	w := NewOutboxWorker(repo, noopLogger{}, producer, "")

	// Сбой продюсера не помечает события обработанными: они останутся
	// в статусе processing и будут подобраны позже
	hasMore, err := w.processBatch(context.Background())
	require.NoError(t, err)
	assert.True(t, hasMore)

	for _, event := range repo.pending {
		assert.Equal(t, usecase.Processing, event.Status)
	}
}

func TestProcessBatchReclaimsStaleProcessing(t *testing.T) {
	repo := &fakeOutboxRepo{}
	seedEvents(repo, 1)

	producer := &fakeProducer{err: errors.New("kafka: broken pipe")}
	w := NewOutboxWorker(repo, noopLogger{}, producer, "")

	_, err := w.processBatch(context.Background())
	require.NoError(t, err)
	require.Equal(t, usecase.Processing, repo.pending[0].Status)

	// Пока claim свежий, событие никому не раздаётся
	_, err = w.processBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.claimed)

	// Воркер, упавший после claim, не хоронит событие: по истечении
	// тайм-аута его забирает следующий цикл
	repo.startedAt[repo.pending[0].ID] = time.Now().Add(-10 * time.Minute)
	producer.err = nil

	_, err = w.processBatch(context.Background())
	require.NoError(t, err)
	require.Len(t, producer.written, 1)
	assert.Equal(t, usecase.Processed, repo.pending[0].Status)
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))

	retryable := []string{
		"dial tcp 10.0.0.1:9092: connection refused",
		"read tcp: i/o timeout",
		"Broker Not Available",
		"write: broken pipe",
		"lookup kafka: no such host",
	}
	for _, msg := range retryable {
		assert.True(t, isRetryableError(errors.New(msg)), msg)
	}

	assert.False(t, isRetryableError(errors.New("invalid message size")))
	assert.False(t, isRetryableError(errors.New("unknown topic or partition")))
}
