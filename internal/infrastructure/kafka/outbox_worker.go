package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nahid177/afwan-shop-sub001/internal/usecase"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/nahid177/afwan-shop-sub001/pkg/logger"
)

const (
	outboxChannel     = "outbox_pending"
	claimBatchSize    = 10
	notifyWaitTimeout = 30 * time.Second
	reconnectPause    = 2 * time.Second
	reconnectFailWait = 5 * time.Second
)

// OutboxWorker перекладывает события заказов из таблицы outbox в Kafka.
// Просыпается по NOTIFY и добивает хвост при старте.
type OutboxWorker struct {
	repo      usecase.OutboxRepository
	logger    logger.Logger
	producer  usecase.MessageProducer
	stop      chan struct{}
	wg        sync.WaitGroup
	dbConnStr string
}

func NewOutboxWorker(
	repo usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	dbConnStr string,
) *OutboxWorker {
	return &OutboxWorker{
		repo:      repo,
		logger:    logger,
		producer:  producer,
		stop:      make(chan struct{}),
		dbConnStr: dbConnStr,
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	w.wg.Add(2)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
	go func() {
		defer w.wg.Done()
		w.listenOutboxNotifications(ctx)
	}()
}

func (w *OutboxWorker) Stop() {
	close(w.stop)
	w.wg.Wait()
}

// run добивает хвост необработанных событий, оставшийся с прошлого запуска.
func (w *OutboxWorker) run(ctx context.Context) {
	w.logger.Infof("Draining pending outbox events on startup...")
	w.drain(ctx)

	<-ctx.Done()
	w.logger.Infof("Outbox worker stopped")
}

// drain обрабатывает события пачками, пока очередь не опустеет.
func (w *OutboxWorker) drain(ctx context.Context) {
	for {
		hasMore, err := w.processBatch(ctx)
		if err != nil {
			w.logger.Warnf("outbox batch failed: %v", err)
			return
		}
		if !hasMore {
			return
		}
	}
}

// listenOutboxNotifications держит выделенное соединение с LISTEN и запускает
// разбор очереди на каждый NOTIFY. Таймаут ожидания страхует от потерянных
// уведомлений, обрыв соединения лечится переподключением.
func (w *OutboxWorker) listenOutboxNotifications(ctx context.Context) {
	conn, err := w.subscribe(ctx)
	if err != nil {
		w.logger.Warnf("Initial connect failed: %v", err)
		return
	}
	defer conn.Close(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		default:
		}

		waitCtx, cancel := context.WithTimeout(ctx, notifyWaitTimeout)
		notif, err := conn.WaitForNotification(waitCtx)
		cancel()

		switch {
		case err == nil:
			if notif != nil && notif.Channel == outboxChannel {
				w.logger.Debugf("Received outbox notification, draining queue")
				w.drain(ctx)
			}
		case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
			// Периодическое пробуждение без уведомления
		default:
			w.logger.Warnf("LISTEN connection lost: %v. Reconnecting...", err)
			conn.Close(ctx)

			time.Sleep(reconnectPause)
			if conn, err = w.subscribe(ctx); err != nil {
				w.logger.Warnf("Reconnect failed: %v", err)
				time.Sleep(reconnectFailWait)
			}
		}
	}
}

func (w *OutboxWorker) subscribe(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, w.dbConnStr)
	if err != nil {
		return nil, e.Wrap("failed to connect for LISTEN", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+outboxChannel); err != nil {
		conn.Close(ctx)
		return nil, e.Wrap("failed to LISTEN", err)
	}

	w.logger.Infof("Subscribed to %q channel", outboxChannel)
	return conn, nil
}

// processBatch забирает пачку pending-событий и публикует их.
// Возвращает true, если в очереди могло что-то остаться.
func (w *OutboxWorker) processBatch(ctx context.Context) (bool, error) {
	events, err := w.repo.GetAndMarkAsProcessing(ctx, claimBatchSize)
	if err != nil {
		return false, err
	}

	if len(events) == 0 {
		return false, nil
	}

	for _, event := range events {
		if err := w.processEvent(ctx, event); err != nil {
			// Событие остаётся в processing и будет подобрано повторно
			w.logger.Warnf("event %s failed: %v", event.EventID, err)
			continue
		}
		if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
			w.logger.Warnf("mark processed failed: %v", err)
		}
	}

	return true, nil
}

func (w *OutboxWorker) processEvent(ctx context.Context, event *usecase.OutboxEvent) error {
	err := w.producer.WriteRawMessage(ctx, usecase.NewWriteRawMessageReq(event.AggregateID, event.Payload))
	if err == nil {
		return nil
	}

	if isRetryableError(err) {
		return e.Wrap("temporary Kafka failure, will retry", err)
	}
	return e.Wrap("permanent Kafka failure", err)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, phrase := range []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	} {
		if strings.Contains(msg, phrase) {
			return true
		}
	}

	return false
}
