package limiter

import (
	"context"
	"time"

	"github.com/MKhiriev/agency-portal/internal/logger"
)

const DefaultSweepInterval = time.Minute

// Sweeper periodically removes expired windows from a Memory limiter.
type Sweeper struct {
	limiter  *Memory
	interval time.Duration
	logger   *logger.Logger
}

func NewSweeper(limiter *Memory, interval time.Duration, log *logger.Logger) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{limiter: limiter, interval: interval, logger: log}
}

// Run blocks until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("limiter sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("limiter sweeper stopped")
			return nil
		case <-ticker.C:
			if removed := s.limiter.Sweep(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired rate limit windows dropped")
			}
		}
	}
}
