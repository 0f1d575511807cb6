package forecast

import "context"

// TimelineProvider abstracts the upstream timeline weather API.
type TimelineProvider interface {
	Name() string
	FetchRange(ctx context.Context, location string, r DateRange) ([]DailyRecord, error)
}

// Outcome is a completed fetch: either a report or the error it failed with.
type Outcome struct {
	Report MonthlyReport
	Err    error
}

// Cache is the contract the memoization layer must satisfy.
type Cache interface {
	Get(key string) (Outcome, bool)
	Put(key string, o Outcome)
}

// LocationResolver optionally rewrites a free-text place name into a form the
// provider resolves more reliably, e.g. "lat,lon" coordinates.
type LocationResolver interface {
	Resolve(location string) (string, error)
}
