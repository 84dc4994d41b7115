package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/project/catalog/config"
	"github.com/project/catalog/db"
	"github.com/project/catalog/internal/controller"
	"github.com/project/catalog/internal/usecase/library"
	"github.com/project/catalog/internal/usecase/repository"
	"github.com/project/catalog/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const (
	serviceName              = "library"
	shutDownSeconds          = 3
	metricsReadHeaderSeconds = 5
)

// Run wires the storage chosen in cfg to the menu and serves it over in/out
// until the user exits, the input ends or the process is interrupted.
func Run(l *zap.Logger, cfg *config.Config, in io.Reader, out io.Writer) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tp := newTracerProvider()
	otel.SetTracerProvider(tp)
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), time.Second*shutDownSeconds)
		defer done()
		_ = tp.Shutdown(shutdownCtx)
	}()

	repo, transactor, closeStorage, err := newStorage(ctx, l, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	if cfg.Observability.MetricsPort != "" {
		stopMetrics := runMetrics(cfg.Observability.MetricsPort, l)
		defer stopMetrics()
	}

	useCases := library.New(logger.Enabled(l, cfg.Log.LogUseCase), repo, transactor)
	ctrl := controller.New(logger.Enabled(l, cfg.Log.LogController), useCases, in, out)

	err = ctrl.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func newStorage(
	ctx context.Context,
	l *zap.Logger,
	cfg *config.Config,
) (repository.LibraryRepository, repository.Transactor, func(), error) {
	logRepo := logger.Enabled(l, cfg.Log.LogRepo)

	switch cfg.Storage.Kind {
	case config.StoragePostgres:
		dbPool, err := pgxpool.New(ctx, cfg.PG.URL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("can not create pgxpool: %w", err)
		}

		if err = db.SetupPostgres(dbPool, l); err != nil {
			dbPool.Close()
			return nil, nil, nil, err
		}

		return repository.NewPostgres(logRepo, dbPool), repository.NewTransactor(logRepo, dbPool), dbPool.Close, nil
	default:
		repo, err := repository.NewJSON(logRepo, cfg.Storage.DataFile)
		if err != nil {
			return nil, nil, nil, err
		}

		return repo, repository.NopTransactor{}, func() {}, nil
	}
}

func newTracerProvider() *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
	)
}

func runMetrics(port string, l *zap.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderSeconds * time.Second,
	}

	go func() {
		logger.MakeInfo(l, "metrics server listening at port", zap.String("port", port))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.CheckError(err, l, "metrics server listen error", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*shutDownSeconds)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
}
