package forecast_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/i474232898/monthly-forecast/internal/cache"
	"github.com/i474232898/monthly-forecast/internal/forecast"
)

// fakeProvider returns one synthetic record per day in the requested range
// and counts how often it is called.
type fakeProvider struct {
	calls int
	err   error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) FetchRange(_ context.Context, _ string, r forecast.DateRange) ([]forecast.DailyRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}

	var days []forecast.DailyRecord
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, forecast.DailyRecord{
			Date:       d,
			TempMaxC:   30,
			TempMinC:   22,
			TempAvgC:   26,
			Conditions: "Clear",
			PrecipMM:   1,
		})
	}
	return days, nil
}

func TestMonthlyReport(t *testing.T) {
	provider := &fakeProvider{}
	svc := forecast.NewService(provider, cache.New(time.Hour, false), nil)

	report, err := svc.MonthlyReport(context.Background(), "Chennai", 2025, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Days) != 30 {
		t.Fatalf("expected 30 records, got %d", len(report.Days))
	}
	first := report.Days[0].Date
	last := report.Days[len(report.Days)-1].Date
	if got, want := first.Format("2006-01-02"), "2025-11-01"; got != want {
		t.Errorf("first record date = %s, want %s", got, want)
	}
	if got, want := last.Format("2006-01-02"), "2025-11-30"; got != want {
		t.Errorf("last record date = %s, want %s", got, want)
	}

	// Records stay in ascending order and inside the requested range.
	for i, d := range report.Days {
		if !report.Range.Contains(d.Date) {
			t.Errorf("record %d date %v outside range", i, d.Date)
		}
		if i > 0 && !report.Days[i-1].Date.Before(d.Date) {
			t.Errorf("records not in ascending order at index %d", i)
		}
	}

	if report.Summary.TotalPrecipMM != 30 {
		t.Errorf("TotalPrecipMM = %v, want 30", report.Summary.TotalPrecipMM)
	}
}

func TestMonthlyReportRejectsBadInput(t *testing.T) {
	provider := &fakeProvider{}
	svc := forecast.NewService(provider, cache.New(time.Hour, false), nil)

	if _, err := svc.MonthlyReport(context.Background(), "Chennai", 2025, 13); err == nil {
		t.Error("expected error for month 13")
	}
	if _, err := svc.MonthlyReport(context.Background(), "Chennai", 2025, 0); err == nil {
		t.Error("expected error for month 0")
	}
	if _, err := svc.MonthlyReport(context.Background(), "  ", 2025, 5); err == nil {
		t.Error("expected error for blank location")
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times for invalid input", provider.calls)
	}
}

func TestMonthlyReportMemoizes(t *testing.T) {
	provider := &fakeProvider{}
	svc := forecast.NewService(provider, cache.New(time.Hour, false), nil)

	for i := 0; i < 3; i++ {
		if _, err := svc.MonthlyReport(context.Background(), "Chennai", 2025, 11); err != nil {
			t.Fatalf("unexpected error on call %d: %v", i, err)
		}
	}
	if provider.calls != 1 {
		t.Errorf("expected a single provider call, got %d", provider.calls)
	}

	// A different month is a different cache entry.
	if _, err := svc.MonthlyReport(context.Background(), "Chennai", 2025, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.calls != 2 {
		t.Errorf("expected a second provider call, got %d", provider.calls)
	}
}

func TestMonthlyReportRefetchesAfterExpiry(t *testing.T) {
	provider := &fakeProvider{}
	svc := forecast.NewService(provider, cache.New(20*time.Millisecond, false), nil)

	if _, err := svc.MonthlyReport(context.Background(), "Chennai", 2025, 11); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if _, err := svc.MonthlyReport(context.Background(), "Chennai", 2025, 11); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.calls != 2 {
		t.Errorf("expected refetch after TTL expiry, got %d calls", provider.calls)
	}
}

func TestMonthlyReportDoesNotCacheFailuresByDefault(t *testing.T) {
	provider := &fakeProvider{err: errors.New("upstream down")}
	svc := forecast.NewService(provider, cache.New(time.Hour, false), nil)

	for i := 0; i < 2; i++ {
		if _, err := svc.MonthlyReport(context.Background(), "Chennai", 2025, 11); err == nil {
			t.Fatal("expected error")
		}
	}
	if provider.calls != 2 {
		t.Errorf("failures should not be memoized by default, got %d calls", provider.calls)
	}
}

func TestMonthlyReportCachesFailuresWhenEnabled(t *testing.T) {
	provider := &fakeProvider{err: errors.New("upstream down")}
	svc := forecast.NewService(provider, cache.New(time.Hour, true), nil)

	for i := 0; i < 2; i++ {
		if _, err := svc.MonthlyReport(context.Background(), "Chennai", 2025, 11); err == nil {
			t.Fatal("expected error")
		}
	}
	if provider.calls != 1 {
		t.Errorf("failure should be served from cache, got %d calls", provider.calls)
	}
}

// staticResolver rewrites every location to a fixed string.
type staticResolver struct {
	target string
	err    error
}

func (r *staticResolver) Resolve(string) (string, error) {
	return r.target, r.err
}

// recordingProvider remembers the location it was asked for.
type recordingProvider struct {
	fakeProvider
	location string
}

func (p *recordingProvider) FetchRange(ctx context.Context, location string, r forecast.DateRange) ([]forecast.DailyRecord, error) {
	p.location = location
	return p.fakeProvider.FetchRange(ctx, location, r)
}

func TestMonthlyReportUsesResolver(t *testing.T) {
	provider := &recordingProvider{}
	svc := forecast.NewService(provider, cache.New(time.Hour, false), &staticResolver{target: "13.08,80.27"})

	report, err := svc.MonthlyReport(context.Background(), "Chennai", 2025, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.location != "13.08,80.27" {
		t.Errorf("provider received %q, want resolved coordinates", provider.location)
	}
	// The report keeps the name the user typed.
	if report.Location != "Chennai" {
		t.Errorf("report location = %q, want Chennai", report.Location)
	}
}

func TestMonthlyReportResolverFailureFallsBack(t *testing.T) {
	provider := &recordingProvider{}
	svc := forecast.NewService(provider, cache.New(time.Hour, false), &staticResolver{err: errors.New("quota exceeded")})

	if _, err := svc.MonthlyReport(context.Background(), "Chennai", 2025, 11); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.location != "Chennai" {
		t.Errorf("provider received %q, want raw location fallback", provider.location)
	}
}
