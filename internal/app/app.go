package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/nahid177/afwan-shop-sub001/internal/cfg"
	v1Http "github.com/nahid177/afwan-shop-sub001/internal/delivery/v1/http"
	"github.com/nahid177/afwan-shop-sub001/internal/infrastructure/kafka"
	"github.com/nahid177/afwan-shop-sub001/internal/repository/pgdb"
	pgdbConv "github.com/nahid177/afwan-shop-sub001/internal/repository/pgdb/converter/generated"
	"github.com/nahid177/afwan-shop-sub001/internal/repository/redis"
	redisConv "github.com/nahid177/afwan-shop-sub001/internal/repository/redis/converter/generated"
	"github.com/nahid177/afwan-shop-sub001/internal/usecase"
	"github.com/nahid177/afwan-shop-sub001/pkg/clients"
	"github.com/nahid177/afwan-shop-sub001/pkg/closer"
	"github.com/nahid177/afwan-shop-sub001/pkg/e"
	"github.com/nahid177/afwan-shop-sub001/pkg/logger"
	"github.com/nahid177/afwan-shop-sub001/pkg/postgres"
)

// App связывает слои приложения и управляет их жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	db      *postgres.PgDatabase
	httpSrv *v1Http.Server
	worker  *kafka.OutboxWorker
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cl := closer.NewCloser(0)
	cl.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	prConv := pgdbConv.NewProductConverterImpl()
	categoryConv := pgdbConv.NewCategoryConverterImpl()
	typeConv := pgdbConv.NewProductTypeConverterImpl()
	orderConv := pgdbConv.NewOrderConverterImpl()
	periodConv := pgdbConv.NewProfitPeriodConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	detailConv := redisConv.NewProductDetailConverterImpl()

	catalogRepo := pgdb.NewCatalogRepo(db.Pool, prConv, categoryConv, typeConv)
	orderRepo := pgdb.NewOrderRepo(db.Pool, orderConv)
	storeOrderRepo := pgdb.NewStoreOrderRepo(db.Pool)
	profitRepo := pgdb.NewProfitRepo(db.Pool, periodConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, detailConv, cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	worker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	catalogUC := usecase.NewCatalogUC(catalogRepo, cacheRepo, db.Pool, log)
	orderUC := usecase.NewOrderUC(orderRepo, storeOrderRepo, catalogRepo, outboxRepo, cacheRepo, db.Pool, log)
	profitUC := usecase.NewProfitUC(profitRepo, orderRepo, storeOrderRepo, db.Pool, cfg.Profit, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC, orderUC, profitUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	cl.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	return &App{
		cfg:     cfg,
		logger:  log,
		db:      db,
		httpSrv: httpSrv,
		worker:  worker,
		closer:  cl,
	}, nil
}

// Run запускает outbox-воркер и HTTP-сервер, затем блокируется до сигнала
// остановки или фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.worker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	workerCancel()
	a.worker.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown error: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
