package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"webapp/internal/adapters/eventbroker"
	"webapp/internal/adapters/eventbroker/nats"
	"webapp/internal/adapters/handlers/http/chi"
	"webapp/internal/adapters/handlers/http/chi/health"
	file2 "webapp/internal/adapters/handlers/http/chi/v1/file"
	"webapp/internal/adapters/instrumented"
	promsink "webapp/internal/adapters/metrics/prometheus"
	"webapp/internal/adapters/repository/postgres"
	"webapp/internal/adapters/storage/minio"
	"webapp/internal/config"
	"webapp/internal/core/domain"
	"webapp/internal/core/port"
	"webapp/internal/core/service/file"
	healthservice "webapp/internal/core/service/health"

	charmlog "github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Env.Env)

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sqlx.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}(db)
	logger.Info("db connection established")

	//metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	sink, err := promsink.NewSink(registry, cfg.Metrics.Namespace)
	if err != nil {
		logger.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}
	locator, err := domain.NewObjectLocator(cfg.Storage.BaseURL())
	if err != nil {
		logger.Error("invalid storage base url", "error", err)
		os.Exit(1)
	}

	//events
	publisher, err := initPublisher(ctx, cfg.Events, logger)
	if err != nil {
		logger.Error("failed to init event publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close event publisher", "error", err)
		}
	}()

	//repositories
	fileRepo := instrumented.NewFileRepository(postgres.NewSqlFileRepository(db), sink, logger)
	heartbeatRepo := instrumented.NewHeartbeatRepository(postgres.NewSqlHeartbeatRepository(db), sink, logger)
	fileStorage := instrumented.NewFileStorage(minioAdapter, sink, logger)

	fileService := file.NewFileService(fileRepo, fileStorage, publisher, locator, logger)
	healthService := healthservice.NewHealthService(heartbeatRepo)

	//http
	healthHandler := health.NewHandler(healthService, logger)
	fileHandler := file2.NewFileHandlerV1(fileService, logger)

	router := chi.NewRouter(logger, sink, healthHandler, fileHandler, chi.Options{
		Env:            cfg.Env.Env,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		MetricsPath:    cfg.Metrics.Path,
		MetricsHandler: sink.Handler(),
	})
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func newLogger(env string) *slog.Logger {
	if env == "prod" {
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return slog.New(charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           charmlog.DebugLevel,
	}))
}

func initDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {

	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initPublisher(ctx context.Context, cfg config.EventsConfig, logger *slog.Logger) (port.InconsistencyPublisher, error) {
	if cfg.NATSURL == "" {
		logger.Warn("EVENTS_NATS_URL not set, inconsistency events are only logged")
		return eventbroker.NewNoopPublisher(), nil
	}
	return nats.NewNATSPublisher(ctx, cfg, logger)
}
