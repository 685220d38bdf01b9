package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/sablehq/enrolld/internal/enroll/store"
)

// HousekeepingService periodically surveys the user table for dead-end
// registrations, i.e. accounts whose validation code expired before being
// used. There is no re-issue path, so these accounts can never authenticate
// again; the survey keeps their count visible in the logs until a recovery
// flow exists.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop() to
// gracefully shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress survey.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

// run is the main background worker loop.
func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run a survey immediately on startup
	s.survey()

	for {
		select {
		case <-ticker.C:
			s.survey()
		case <-s.stopCh:
			return
		}
	}
}

// survey counts and reports dead-end accounts.
func (s *HousekeepingService) survey() {
	ctx := context.Background()

	count, err := s.Store.Users().CountDeadEnd(ctx, time.Now().UTC())
	if err != nil {
		s.Logger.Error("failed to count dead-end accounts", "error", err)
		return
	}

	if count > 0 {
		s.Logger.Warn("dead-end accounts present", "count", count)
	} else {
		s.Logger.Debug("no dead-end accounts")
	}
}
