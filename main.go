package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mrops-br/storefront-api/internal/app/service"
	"github.com/mrops-br/storefront-api/internal/infrastructure/config"
	"github.com/mrops-br/storefront-api/internal/infrastructure/http"
	"github.com/mrops-br/storefront-api/internal/infrastructure/http/handler"
	"github.com/mrops-br/storefront-api/internal/infrastructure/notify"
	"github.com/mrops-br/storefront-api/internal/infrastructure/repository/memory"
	"github.com/mrops-br/storefront-api/internal/infrastructure/telemetry"
	"golang.org/x/sync/errgroup"
)

const (
	instrumentationName = "storefront-api"
	shutdownTimeout     = 5 * time.Second
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	telem, err := newTelemetry(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}

	exitCode := 0
	if err := run(ctx, cfg, telem); err != nil {
		telem.Logger.Error("Storefront stopped with error", slog.String("error", err.Error()))
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := telem.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down telemetry: %v", err)
	}

	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
}

func newTelemetry(ctx context.Context, cfg *config.Config) (*telemetry.Telemetry, error) {
	if cfg.OTLP.ExportEnabled {
		return telemetry.NewTelemetry(ctx, &cfg.OTLP, cfg.LogLevel)
	}
	return telemetry.NewNoOpTelemetry(ctx, &cfg.OTLP, cfg.LogLevel)
}

func run(ctx context.Context, cfg *config.Config, telem *telemetry.Telemetry) error {
	tracer := telem.TracerProvider.Tracer(instrumentationName)
	meter := telem.MeterProvider.Meter(instrumentationName)
	logger := telem.Logger

	logger.Info("Starting Storefront API")

	catalog, err := memory.NewCatalog(memory.DefaultProducts(), cfg.Storefront.Locale, tracer, logger)
	if err != nil {
		return err
	}
	cart := memory.NewCartStore(catalog, tracer, logger)
	sink := notify.NewSink(cfg.Storefront.NotificationTTL, meter, logger)

	storefront := service.NewStorefrontService(catalog, cart, sink, cfg.Storefront.FeaturedCount, tracer, meter, logger)

	server := http.NewServer(
		&cfg.Server,
		handler.NewStorefrontHandler(storefront, sink, logger),
		handler.NewPageHandler(storefront, sink, logger),
		telem,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Server stopped")
	return nil
}
