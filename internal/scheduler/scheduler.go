package scheduler

import (
	"context"
	"log/slog"
	"time"

	"reputation_pulse/internal/domain"
)

// Scanner defines the interface for scan operations.
type Scanner interface {
	RunAndStore(ctx context.Context, handle string) (domain.ScanResult, error)
}

// Scheduler re-scans a fixed list of handles on an interval so their score
// history accumulates without operator action.
type Scheduler struct {
	scanner  Scanner
	handles  []string
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(scanner Scanner, handles []string, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		scanner:  scanner,
		handles:  handles,
		interval: interval,
		logger:   logger,
	}
}

// Start runs one pass immediately and then once per interval until ctx is
// cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "handles", len(s.handles), "interval", s.interval)

	s.runPass(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runPass(ctx)
		}
	}
}

// runPass scans every watched handle. A failing handle is logged and
// skipped so one broken upstream does not starve the rest.
func (s *Scheduler) runPass(ctx context.Context) {
	for _, handle := range s.handles {
		scanCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		result, err := s.scanner.RunAndStore(scanCtx, handle)
		cancel()

		if err != nil {
			s.logger.Error("watch scan failed", "handle", handle, "error", err)
			continue
		}

		s.logger.Info("watch scan stored",
			"handle", result.Handle,
			"score", result.Score.Normalized,
			"trend", result.Trend.Direction,
		)
	}
}
