package telemetry

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from a loaded table. It names
// every missing column and the columns that were actually found.
type SchemaError struct {
	Missing []string
	Found   []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s (found: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// ValidateColumns checks that every required column is present after header
// normalization. Missing columns are reported in schema order. A validation
// failure is terminal for the run: no report is produced.
func ValidateColumns(t *Table, s *Schema) error {
	present := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		present[c] = struct{}{}
	}
	var missing []string
	for _, c := range s.Required {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing, Found: append([]string(nil), t.Columns...)}
	}
	return nil
}
