// Package sweeper runs the periodic storage sweep that removes audio
// artifacts older than the configured TTL.
package sweeper

import (
	"time"

	"go.uber.org/zap"
)

// Cleaner is the sweep operation driven by this service.
type Cleaner interface {
	Cleanup() (int, error)
}

// Service handles background cleanup of expired audio artifacts
type Service struct {
	cleaner  Cleaner
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewService creates a new sweeper service running every interval.
func NewService(cleaner Cleaner, interval time.Duration, logger *zap.Logger) *Service {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Service{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins the background cleanup process
func (s *Service) Start() {
	go s.sweepLoop()
	s.logger.Info("Storage sweeper started", zap.Duration("interval", s.interval))
}

// Stop gracefully stops the sweeper
func (s *Service) Stop() {
	close(s.stopChan)
	s.logger.Info("Storage sweeper stopped")
}

// sweepLoop runs the sweep periodically, with an initial short delay so
// a restart loop does not hammer the storage backend.
func (s *Service) sweepLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	initialTimer := time.NewTimer(1 * time.Minute)
	defer initialTimer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-initialTimer.C:
			s.runSweep()
		case <-ticker.C:
			s.runSweep()
		}
	}
}

// runSweep performs one sweep of the storage location.
func (s *Service) runSweep() {
	s.logger.Info("Starting storage sweep")

	deleted, err := s.cleaner.Cleanup()
	if err != nil {
		// Partial failures are skipped inside Cleanup; the count
		// still reflects what was removed.
		s.logger.Error("Storage sweep finished with errors",
			zap.Int("deleted", deleted),
			zap.Error(err))
		return
	}

	s.logger.Info("Storage sweep completed", zap.Int("deleted", deleted))
}
