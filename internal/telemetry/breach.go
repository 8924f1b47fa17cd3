package telemetry

// Breach is one observation outside a configured limit. Value keeps the full
// parsed precision; rounding happens only at render time. Limit is "max" or
// "min".
type Breach struct {
	Timestamp  string
	Column     string
	Value      float64
	Limit      string
	LimitValue float64
}

// DetectBreaches scans the threshold table against the coerced dataset and
// emits one record per breaching observation. Ordering is column-major in
// threshold declaration order, the max bound before the min bound within a
// column, and ascending row order within a bound. Equality with a bound is
// not a breach, and no deduplication is applied: every unsafe observation
// stays traceable to its timestamp.
func DetectBreaches(d *Dataset, s *Schema) []Breach {
	tsIdx, _ := d.Table.ColumnIndex("timestamp")

	var out []Breach
	for _, th := range s.Thresholds {
		vals, ok := d.Column(th.Column)
		if !ok {
			continue
		}
		if th.Max != nil {
			for i, v := range vals {
				if v != nil && *v > *th.Max {
					out = append(out, Breach{
						Timestamp:  d.Table.cell(i, tsIdx),
						Column:     th.Column,
						Value:      *v,
						Limit:      "max",
						LimitValue: *th.Max,
					})
				}
			}
		}
		if th.Min != nil {
			for i, v := range vals {
				if v != nil && *v < *th.Min {
					out = append(out, Breach{
						Timestamp:  d.Table.cell(i, tsIdx),
						Column:     th.Column,
						Value:      *v,
						Limit:      "min",
						LimitValue: *th.Min,
					})
				}
			}
		}
	}
	return out
}
