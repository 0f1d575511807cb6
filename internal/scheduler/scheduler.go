package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/i474232898/monthly-forecast/internal/cache"
)

// Sweeper periodically evicts expired report cache entries.
type Sweeper struct {
	scheduler *gocron.Scheduler
	cache     *cache.ReportCache
	interval  time.Duration
}

// New creates a new Sweeper.
func New(c *cache.ReportCache, interval time.Duration) *Sweeper {
	return &Sweeper{
		scheduler: gocron.NewScheduler(time.UTC),
		cache:     c,
		interval:  interval,
	}
}

// Start schedules the periodic sweep and starts the underlying scheduler.
func (s *Sweeper) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		if removed := s.cache.PurgeExpired(); removed > 0 {
			log.Printf("cache sweep: evicted %d expired entries", removed)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future sweeps.
func (s *Sweeper) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
