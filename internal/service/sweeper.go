package service

import (
	"context"
	"time"

	"todo_backend/internal/logger"
	"todo_backend/internal/repository"
)

const (
	defaultActivityRetention = 30 * 24 * time.Hour
	defaultSweepInterval     = time.Hour
)

// SweeperService deletes activity events older than the retention window.
type SweeperService struct {
	eventRepo repository.EventRepo
	retention time.Duration
	log       *logger.Logger
}

func NewSweeperService(eventRepo repository.EventRepo, retention time.Duration, log *logger.Logger) *SweeperService {
	if retention <= 0 {
		retention = defaultActivityRetention
	}
	return &SweeperService{eventRepo: eventRepo, retention: retention, log: log}
}

// Run sweeps once per tick until ctx is canceled. A non-positive tick uses the default.
func (s *SweeperService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = defaultSweepInterval
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			_, _ = s.sweepOnce(ctx, now)
		}
	}
}

func (s *SweeperService) sweepOnce(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.UTC().Add(-s.retention)
	n, err := s.eventRepo.DeleteBefore(ctx, cutoff)
	if err != nil {
		if s.log != nil {
			s.log.Errorw("activity_sweep_failed", "err", err, "cutoff", cutoff)
		}
		return 0, err
	}
	if n > 0 && s.log != nil {
		s.log.Infow("activity_swept", "deleted", n, "cutoff", cutoff)
	}
	return n, nil
}
