package telemetry

// Table is a loaded telemetry capture: an ordered header plus raw row-major
// cells. The loader guarantees every row has exactly len(Columns) cells.
// Tables are never mutated after loading; downstream steps derive new values.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of a column by name, or -1 and false when
// the column is absent. The -1 composes with cell, which maps out-of-range
// positions to the empty string.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// cell returns the raw value at (row, col), tolerating short rows from
// hand-built tables.
func (t *Table) cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}
