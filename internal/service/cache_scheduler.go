package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
)

// DefaultPurgeSchedule runs the cache purge once an hour
const DefaultPurgeSchedule = "@every 1h"

const purgeTimeout = time.Minute

// CacheScheduler periodically removes expired places lookups
type CacheScheduler struct {
	places *PlacesService
	cron   *cron.Cron
	logger arbor.ILogger
}

// NewCacheScheduler creates a new cache scheduler
func NewCacheScheduler(places *PlacesService, logger arbor.ILogger) *CacheScheduler {
	return &CacheScheduler{
		places: places,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start begins the scheduled purge; an empty schedule means DefaultPurgeSchedule
func (s *CacheScheduler) Start(schedule string) error {
	if schedule == "" {
		schedule = DefaultPurgeSchedule
	}

	if _, err := s.cron.AddFunc(schedule, s.runPurge); err != nil {
		return fmt.Errorf("invalid purge schedule %q: %w", schedule, err)
	}

	s.cron.Start()
	s.logger.Info().
		Str("schedule", schedule).
		Msg("Places cache purge scheduler started")

	return nil
}

// Stop stops the scheduler and waits for a running purge to return
func (s *CacheScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info().Msg("Places cache purge scheduler stopped")
}

func (s *CacheScheduler) runPurge() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	if _, err := s.places.PurgeExpired(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Places cache purge failed")
	}
}
