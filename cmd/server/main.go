package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/agency-portal/internal/adapter"
	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/MKhiriev/agency-portal/internal/handler"
	"github.com/MKhiriev/agency-portal/internal/limiter"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/server"
	"github.com/MKhiriev/agency-portal/internal/service"
	"github.com/MKhiriev/agency-portal/internal/store"
	"github.com/MKhiriev/agency-portal/internal/workers"
	"github.com/MKhiriev/agency-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	printBuildInfo(buildInfo)

	if err := run(context.Background(), buildInfo); err != nil {
		fmt.Fprintf(os.Stderr, "portal server: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, buildInfo models.AppBuildInfo) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("portal-server", logger.ForEnvironment(cfg.App.IsProduction())...)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("environment", cfg.App.Environment).
		Bool("s3", cfg.Storage.S3.Enabled()).
		Bool("redis", cfg.Storage.Redis.Addr != "").
		Msg("received configs")

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return err
	}

	adapters, err := adapter.NewAdapters(*cfg, log)
	if err != nil {
		return fmt.Errorf("error creating adapters: %w", err)
	}

	services, err := service.NewServices(store.NewStorages(db, log), adapters, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	lim, background, closeLimiter, err := newLimiter(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating rate limiter: %w", err)
	}
	defer closeLimiter()

	handlers, err := handler.NewHandlers(services, lim, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.Run(ctx)
}

// newLimiter prefers Redis when an address is configured. The in-memory
// limiter comes with its sweeper worker.
func newLimiter(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (limiter.Limiter, *workers.Workers, func(), error) {
	settings := limiter.Settings{Limit: cfg.Server.RateLimit, Window: cfg.Server.RateWindow}

	if cfg.Storage.Redis.Addr != "" {
		client, err := limiter.Connect(ctx, cfg.Storage.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		redisLimiter, err := limiter.NewRedis(client, settings)
		if err != nil {
			_ = client.Close()
			return nil, nil, nil, err
		}
		log.Info().Str("addr", cfg.Storage.Redis.Addr).Msg("rate limiter uses redis")
		return redisLimiter, workers.New(), func() { _ = client.Close() }, nil
	}

	memory, err := limiter.NewMemory(settings)
	if err != nil {
		return nil, nil, nil, err
	}
	sweeper := limiter.NewSweeper(memory, cfg.Workers.LimiterSweepInterval, log.WithRole("limiter-sweeper"))
	log.Info().Msg("rate limiter uses process memory")
	return memory, workers.New(sweeper), func() {}, nil
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
