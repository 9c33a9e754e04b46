package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/billing-backend/internal/cfg"
	v1Grpc "github.com/DRSN-tech/billing-backend/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/billing-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/billing-backend/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/billing-backend/internal/infrastructure/minio"
	"github.com/DRSN-tech/billing-backend/internal/infrastructure/pdf"
	s3Repo "github.com/DRSN-tech/billing-backend/internal/repository/minio"
	"github.com/DRSN-tech/billing-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/billing-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/billing-backend/internal/repository/redis"
	"github.com/DRSN-tech/billing-backend/internal/usecase"
	"github.com/DRSN-tech/billing-backend/pkg/clients"
	"github.com/DRSN-tech/billing-backend/pkg/closer"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/DRSN-tech/billing-backend/pkg/logger"
	"github.com/DRSN-tech/billing-backend/pkg/postgres"
	"github.com/DRSN-tech/billing-backend/pkg/tr"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
	topicTimeout    = 10 * time.Second
)

// App связывает хранилища, сценарии и транспорт в один процесс.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	httpSrv      *v1Http.Server
	grpcSrv      *v1Grpc.GRPCServer
	outboxWorker *kafka.OutboxWorker
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.New(2 * time.Second),
	}

	if err := a.init(); err != nil {
		if cerr := a.closer.Close(context.Background()); cerr != nil {
			log.Warnf("cleanup after failed init: %v", cerr)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a, nil
}

func (a *App) init() error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := initPGDB(ctx, a.logger, a.cfg)
	if err != nil {
		return err
	}
	a.closer.AddFunc("postgres", db.Close)

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	if err := redisClient.Ping(ctx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.AddErrFunc("redis", redisClient.Close)

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client")
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if err := clients.EnsureBucket(ctx, minioClient, a.cfg.Minio.BucketName); err != nil {
		a.logger.Errorf(err, "failed to initialize MinIO bucket")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	a.closer.AddErrFunc("kafka producer", producer.Close)
	if err := producer.EnsureTopic(topicTimeout); err != nil {
		a.logger.Errorf(err, "failed to ensure kafka topic")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	// REPOSITORIES
	txm := tr.NewManager(db.Pool)
	invoiceConv := pgdbConv.NewInvoiceConverter()

	customerRepo := pgdb.NewCustomerRepo(db.Pool, pgdbConv.NewCustomerConverter())
	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverter())
	invoiceRepo := pgdb.NewInvoiceRepo(db.Pool, invoiceConv)
	invoiceItemRepo := pgdb.NewInvoiceItemRepo(db.Pool, invoiceConv)
	profileRepo := pgdb.NewUserProfileRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, pgdbConv.NewOutboxEventConverter(), a.cfg.Outbox.ListenChannel)

	categoryStore := redis.NewCategoryStore(redisClient, a.logger)
	tenantCache := redis.NewTenantCacheRepo(redisClient, a.cfg.Redis, a.logger)

	archiver := minioInfra.NewDocumentArchiver(s3Repo.NewDocumentRepo(minioClient, a.cfg.Minio), a.logger)

	// USECASES
	tenants := usecase.NewTenantResolver(profileRepo, tenantCache, a.logger)

	uc := v1Http.UseCases{
		Customers:  usecase.NewCustomerUC(customerRepo, tenants, txm, outboxRepo, a.logger),
		Products:   usecase.NewProductUC(productRepo, tenants, txm, outboxRepo, categoryStore, a.logger),
		Categories: usecase.NewCategoryUC(categoryStore, tenants, a.logger),
		Invoices: usecase.NewInvoiceUC(
			invoiceRepo,
			invoiceItemRepo,
			tenants,
			txm,
			outboxRepo,
			pdf.NewInvoiceRenderer(),
			archiver,
			a.logger,
		),
	}

	// TRANSPORT
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := chi.NewRouter()
	v1Http.NewRouter(r, a.logger, registry).Init(uc, a.cfg.Http.SwaggerURL)
	a.httpSrv = v1Http.NewServer(r, a.cfg.Http)

	a.grpcSrv = v1Grpc.NewGRPCServer(a.cfg.Grpc, a.logger,
		v1Grpc.ReadinessCheck{Name: "postgres", Ping: db.Ping},
		v1Grpc.ReadinessCheck{Name: "redis", Ping: redisClient.Ping},
		v1Grpc.ReadinessCheck{Name: "categories storage", Ping: categoryStore.CheckWritable},
	)

	a.outboxWorker = kafka.NewOutboxWorker(outboxRepo, a.logger, producer, a.cfg.Outbox, db.Dsn)

	return nil
}

// Run запускает серверы и воркер outbox и блокируется до сигнала или фатальной ошибки.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.outboxWorker.Start(workerCtx)
	a.closer.AddFunc("outbox worker", func() {
		workerCancel()
		a.outboxWorker.Stop()
	})

	grpcErrCh := make(chan error, 1)
	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			a.logger.Errorf(err, "gRPC server failed")
			grpcErrCh <- err
		}
	}()
	a.closer.Add("gRPC server", a.grpcSrv.Stop)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()
	a.closer.Add("HTTP server", a.httpSrv.Stop)

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		a.logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown error")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(ctx context.Context, logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
