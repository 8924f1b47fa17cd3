package telemetry

import (
	"math"
	"strconv"
	"strings"
)

// Dataset is the numeric view of a table: for each numeric column present in
// the source, one parsed value per row, nil where the cell was empty or
// unparseable. The source table itself is left untouched.
type Dataset struct {
	Table   *Table
	Numeric map[string][]*float64
}

// Column returns the parsed values for a numeric column, or false when the
// column was not present in the source table.
func (d *Dataset) Column(name string) ([]*float64, bool) {
	vals, ok := d.Numeric[name]
	return vals, ok
}

// Coerce parses every cell of the schema's numeric columns into float64.
// It is total: unparseable cells degrade to missing, never to an error.
// Numeric columns absent from the table are skipped.
func Coerce(t *Table, s *Schema) *Dataset {
	d := &Dataset{Table: t, Numeric: make(map[string][]*float64, len(s.Numeric))}
	for _, col := range s.Numeric {
		idx, ok := t.ColumnIndex(col)
		if !ok {
			continue
		}
		vals := make([]*float64, len(t.Rows))
		for i := range t.Rows {
			if v, ok := parseCell(t.cell(i, idx)); ok {
				vals[i] = &v
			}
		}
		d.Numeric[col] = vals
	}
	return d
}

// parseCell converts one raw cell to a float64. Empty cells, parse failures,
// and NaN all count as missing.
func parseCell(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
