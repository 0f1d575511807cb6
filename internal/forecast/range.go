package forecast

import "time"

// MonthRange returns the inclusive first and last calendar day of the given
// month. The end is computed as the day before the first of the following
// month rather than from a days-per-month table, so leap years fall out of
// the calendar arithmetic. Month 12 is pinned to December 31 of the same
// year. Month must be in [1, 12]; bounds are a caller concern.
func MonthRange(year, month int) DateRange {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	var end time.Time
	if month == 12 {
		end = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	} else {
		end = time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}

	return DateRange{Start: start, End: end}
}
