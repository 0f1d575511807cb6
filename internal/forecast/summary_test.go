package forecast

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarize(t *testing.T) {
	days := []DailyRecord{
		{Date: date(2025, time.November, 1), TempMaxC: 30, TempMinC: 22, TempAvgC: 26, Conditions: "Clear", PrecipMM: 0},
		{Date: date(2025, time.November, 2), TempMaxC: 32, TempMinC: 24, TempAvgC: 28, Conditions: "Rain", PrecipMM: 12.5},
		{Date: date(2025, time.November, 3), TempMaxC: 28, TempMinC: 20, TempAvgC: 24, Conditions: "Cloudy", PrecipMM: 2.5},
	}

	s := Summarize(days)

	if !almostEqual(s.AvgHighC, 30) {
		t.Errorf("AvgHighC = %v, want 30", s.AvgHighC)
	}
	if !almostEqual(s.AvgLowC, 22) {
		t.Errorf("AvgLowC = %v, want 22", s.AvgLowC)
	}
	if !almostEqual(s.TotalPrecipMM, 15) {
		t.Errorf("TotalPrecipMM = %v, want 15", s.TotalPrecipMM)
	}
	if !almostEqual(s.AvgDailyPrecipMM, 5) {
		t.Errorf("AvgDailyPrecipMM = %v, want 5", s.AvgDailyPrecipMM)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero Summary", s)
	}
}

func TestMonthQueryKey(t *testing.T) {
	q := MonthQuery{Location: "  Chennai ", Year: 2025, Month: 3}
	if got, want := q.Key(), "chennai:2025-03"; got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}

	// Same place in different casing maps to the same entry.
	other := MonthQuery{Location: "CHENNAI", Year: 2025, Month: 3}
	if q.Key() != other.Key() {
		t.Errorf("keys differ: %q vs %q", q.Key(), other.Key())
	}
}
