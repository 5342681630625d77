package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/MKhiriev/agency-portal/internal/handler"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/internal/workers"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}
	if background == nil {
		background = workers.New()
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    background,
		logger:     logger,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(s.httpServer.run)

	g.Go(func() error {
		s.logger.Info().Int("count", s.workers.Len()).Msg("launching workers")
		return s.workers.Run(ctx)
	})

	// stop the HTTP server once a signal arrives or a component fails
	g.Go(func() error {
		<-ctx.Done()
		return s.httpServer.shutdown()
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Info().Msg("server shut down gracefully")
	return nil
}
