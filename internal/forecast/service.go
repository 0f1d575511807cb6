package forecast

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Service orchestrates the timeline provider and the memoization cache.
type Service struct {
	provider TimelineProvider
	cache    Cache
	resolver LocationResolver
}

// NewService creates a new Service. resolver may be nil, in which case
// locations are passed to the provider as entered.
func NewService(provider TimelineProvider, cache Cache, resolver LocationResolver) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		resolver: resolver,
	}
}

// MonthlyReport returns the report for the given location and month, serving
// from the cache when a fresh entry exists. On a miss exactly one outbound
// provider call is made; a failure at any point discards everything fetched
// for that call and is returned whole.
func (s *Service) MonthlyReport(ctx context.Context, location string, year, month int) (MonthlyReport, error) {
	if month < 1 || month > 12 {
		return MonthlyReport{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if strings.TrimSpace(location) == "" {
		return MonthlyReport{}, fmt.Errorf("location must not be empty")
	}

	query := MonthQuery{Location: location, Year: year, Month: month}
	if o, ok := s.cache.Get(query.Key()); ok {
		return o.Report, o.Err
	}

	r := MonthRange(year, month)

	// Geocoding is best effort: a resolver failure falls back to the raw
	// location string, which the provider also accepts.
	target := location
	if s.resolver != nil {
		resolved, err := s.resolver.Resolve(location)
		if err != nil {
			log.Printf("forecast: geocoding failed for %q, using raw location: %v", location, err)
		} else {
			target = resolved
		}
	}

	days, err := s.provider.FetchRange(ctx, target, r)
	if err != nil {
		log.Printf("provider %s fetch failed for %s: %v", s.provider.Name(), query.Key(), err)
		s.cache.Put(query.Key(), Outcome{Err: err})
		return MonthlyReport{}, err
	}

	report := MonthlyReport{
		Location: location,
		Year:     year,
		Month:    month,
		Range:    r,
		Days:     days,
		Summary:  Summarize(days),
	}
	s.cache.Put(query.Key(), Outcome{Report: report})

	return report, nil
}
