package forecast

import (
	"fmt"
	"strings"
	"time"
)

// DateRange is an inclusive span of calendar days within a single month.
// Both endpoints are midnight UTC dates.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days returns the number of calendar days in the range, inclusive.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Contains reports whether d falls within the range (inclusive).
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// DailyRecord is one normalized day of provider data, metric units.
type DailyRecord struct {
	Date       time.Time `json:"date"`
	TempMaxC   float64   `json:"tempMaxC"`
	TempMinC   float64   `json:"tempMinC"`
	TempAvgC   float64   `json:"tempAvgC"`
	Conditions string    `json:"conditions"`
	PrecipMM   float64   `json:"precipMm"`
}

// Summary holds the monthly aggregate figures shown alongside the day table.
type Summary struct {
	AvgHighC         float64 `json:"avgHighC"`
	AvgLowC          float64 `json:"avgLowC"`
	TotalPrecipMM    float64 `json:"totalPrecipMm"`
	AvgDailyPrecipMM float64 `json:"avgDailyPrecipMm"`
}

// MonthQuery identifies one requested report.
type MonthQuery struct {
	Location string `json:"location"`
	Year     int    `json:"year"`
	Month    int    `json:"month"`
}

// Key returns a canonical string key for indexing this query in the cache.
// The API credential is not part of the key: any valid credential yields the
// same data for a given month and location.
func (q MonthQuery) Key() string {
	return fmt.Sprintf("%s:%04d-%02d", strings.ToLower(strings.TrimSpace(q.Location)), q.Year, q.Month)
}

// MonthlyReport is the complete outcome for one (location, year, month):
// per-day records in ascending date order plus the computed summary.
type MonthlyReport struct {
	Location string        `json:"location"`
	Year     int           `json:"year"`
	Month    int           `json:"month"`
	Range    DateRange     `json:"range"`
	Days     []DailyRecord `json:"days"`
	Summary  Summary       `json:"summary"`
}
