package core

// scheduler.go provides background job scheduling for maintenance tasks.
//
// Currently implements session expiry: idle sessions (and the carts and
// tables they hold) are evicted from memory periodically. The scheduler is
// long-running and stops when its context is cancelled.

import (
	"context"
	"log/slog"
	"time"
)

// SweepConfig holds configuration for the session sweeper.
type SweepConfig struct {
	TTL           time.Duration // Idle time before a session is evicted (default: 12h)
	CheckInterval time.Duration // How often to sweep (default: 10m)
}

const (
	defaultSessionTTL    = 12 * time.Hour
	defaultSweepInterval = 10 * time.Minute
)

// StartSessionSweeper runs until ctx is cancelled, evicting idle sessions
// every CheckInterval.
func (s *Service) StartSessionSweeper(ctx context.Context, cfg SweepConfig) {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultSessionTTL
	}
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = defaultSweepInterval
	}

	slog.Info("session sweeper started",
		"ttl", cfg.TTL.String(),
		"interval", cfg.CheckInterval.String(),
	)

	ticker := time.NewTicker(cfg.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("session sweeper stopped")
			return
		case <-ticker.C:
			s.runSweep(cfg.TTL)
		}
	}
}

// runSweep performs one eviction pass.
func (s *Service) runSweep(ttl time.Duration) {
	start := time.Now()
	removed := s.sessions.Sweep(ttl)
	if removed == 0 {
		slog.Debug("session sweep completed", "live", s.sessions.Len())
		return
	}
	slog.Info("expired idle sessions",
		"removed", removed,
		"live", s.sessions.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
