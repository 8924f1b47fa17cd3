package telemetry

import "math"

// SpeedStats is the headline statistic block for the speed column. Mean, Max,
// and Min are nil when no valid samples exist; values are stored already
// rounded to two decimals.
type SpeedStats struct {
	Mean  *float64
	Max   *float64
	Min   *float64
	Count int
}

// ColumnStats is one numeric-summary row, rounded to two decimals.
type ColumnStats struct {
	Column string
	Mean   float64
	Max    float64
	Min    float64
}

// SpeedStatistics computes mean/max/min/count over the valid speed samples.
// With zero valid samples it returns the zero value: nil stats, count 0.
func SpeedStatistics(d *Dataset) SpeedStats {
	vals, _ := d.Column(SpeedColumn)
	valid := dropMissing(vals)
	if len(valid) == 0 {
		return SpeedStats{}
	}
	mean, max, min := aggregate(valid)
	mean, max, min = round2(mean), round2(max), round2(min)
	return SpeedStats{Mean: &mean, Max: &max, Min: &min, Count: len(valid)}
}

// Summarize builds one stats row per numeric column holding at least one
// valid value. Output order follows the schema's numeric column order, not
// the input column order.
func Summarize(d *Dataset, s *Schema) []ColumnStats {
	var out []ColumnStats
	for _, col := range s.Numeric {
		vals, ok := d.Column(col)
		if !ok {
			continue
		}
		valid := dropMissing(vals)
		if len(valid) == 0 {
			continue
		}
		mean, max, min := aggregate(valid)
		out = append(out, ColumnStats{Column: col, Mean: round2(mean), Max: round2(max), Min: round2(min)})
	}
	return out
}

func dropMissing(vals []*float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// aggregate expects a non-empty slice.
func aggregate(vals []float64) (mean, max, min float64) {
	max, min = vals[0], vals[0]
	var sum float64
	for _, v := range vals {
		sum += v
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return sum / float64(len(vals)), max, min
}

// round2 rounds to two decimals, halves away from zero. Applied uniformly to
// speed statistics, the numeric summary, and displayed breach values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
