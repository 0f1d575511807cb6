package cache

import (
	"sync"
	"time"

	"github.com/i474232898/monthly-forecast/internal/forecast"
)

// ReportCache memoizes completed monthly fetches for a bounded time window.
// Keys come from forecast.MonthQuery.Key. Entries overwrite in place; there
// is no size bound because the key space is the handful of months a user
// asks about.
type ReportCache struct {
	mu      sync.RWMutex
	entries map[string]entry

	ttl           time.Duration
	cacheFailures bool

	hitCount  int
	missCount int
}

type entry struct {
	outcome  forecast.Outcome
	storedAt time.Time
}

// New creates a ReportCache with the given time-to-live. When cacheFailures
// is true, failed fetch outcomes are remembered for the full TTL as well;
// otherwise only successes are kept, so a transient upstream blip is not
// replayed until the entry expires.
func New(ttl time.Duration, cacheFailures bool) *ReportCache {
	return &ReportCache{
		entries:       make(map[string]entry),
		ttl:           ttl,
		cacheFailures: cacheFailures,
	}
}

// Get returns the cached outcome for key if present and not expired.
func (c *ReportCache) Get(key string) (forecast.Outcome, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Since(e.storedAt) >= c.ttl {
		c.mu.Lock()
		c.missCount++
		c.mu.Unlock()
		return forecast.Outcome{}, false
	}

	c.mu.Lock()
	c.hitCount++
	c.mu.Unlock()
	return e.outcome, true
}

// Put stores a completed fetch outcome. Failure outcomes are dropped unless
// failure caching was enabled.
func (c *ReportCache) Put(key string, o forecast.Outcome) {
	if o.Err != nil && !c.cacheFailures {
		return
	}

	c.mu.Lock()
	c.entries[key] = entry{outcome: o, storedAt: time.Now()}
	c.mu.Unlock()
}

// PurgeExpired drops entries past their TTL and returns how many were removed.
func (c *ReportCache) PurgeExpired() int {
	cutoff := time.Now().Add(-c.ttl)

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.entries {
		if e.storedAt.Before(cutoff) {
			delete(c.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, expired or not.
func (c *ReportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns cumulative hit and miss counts.
func (c *ReportCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hitCount, c.missCount
}

var _ forecast.Cache = (*ReportCache)(nil)
