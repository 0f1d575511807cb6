package forecast

// Summarize computes the monthly aggregates from the per-day records.
// Temperature highs and lows are averaged; precipitation is totalled and
// averaged per day. An empty slice yields a zero Summary.
func Summarize(days []DailyRecord) Summary {
	if len(days) == 0 {
		return Summary{}
	}

	var (
		sumHigh   float64
		sumLow    float64
		sumPrecip float64
	)

	for _, d := range days {
		sumHigh += d.TempMaxC
		sumLow += d.TempMinC
		sumPrecip += d.PrecipMM
	}

	n := float64(len(days))

	return Summary{
		AvgHighC:         sumHigh / n,
		AvgLowC:          sumLow / n,
		TotalPrecipMM:    sumPrecip,
		AvgDailyPrecipMM: sumPrecip / n,
	}
}
