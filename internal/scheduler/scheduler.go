package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	log "github.com/sirupsen/logrus"
)

// DefaultInterval is used when no positive interval is configured.
const DefaultInterval = 10 * time.Minute

// Refresher is implemented by weather.Service.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Purger is implemented by store.MemoryStore.
type Purger interface {
	Purge() int
}

// Scheduler periodically refreshes cached provider conditions and drops
// expired cache entries.
type Scheduler struct {
	scheduler *gocron.Scheduler
	refresher Refresher
	cache     Purger
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler. cache may be nil.
func New(interval time.Duration, refresher Refresher, cache Purger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		refresher: refresher,
		cache:     cache,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Interval returns the refresh interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start schedules the refresh job, runs it once immediately and starts the
// underlying scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).Do(s.run); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) run() {
	log.WithFields(log.Fields{"interval": s.interval}).Debug("Running conditions refresh")

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.refresher.Refresh(ctx); err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Conditions refresh failed")
	}

	if s.cache != nil {
		if n := s.cache.Purge(); n > 0 {
			log.WithFields(log.Fields{"purged": n}).Debug("Dropped expired conditions")
		}
	}
}
