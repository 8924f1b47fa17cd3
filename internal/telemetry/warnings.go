package telemetry

import "strings"

// Warning is one logged warning event: the row's timestamp and description.
type Warning struct {
	Timestamp   string
	Description string
}

// ExtractWarnings returns the rows whose event type equals "WARNING"
// case-insensitively (exact match, no substring). Duplicate
// (timestamp, event type, description) triples collapse to the first
// occurrence; original row order is preserved. An absent event_type column
// yields an empty result even though validation normally guarantees it.
func ExtractWarnings(t *Table) []Warning {
	etIdx, ok := t.ColumnIndex("event_type")
	if !ok {
		return nil
	}
	tsIdx, _ := t.ColumnIndex("timestamp")
	descIdx, _ := t.ColumnIndex("event_description")

	var out []Warning
	seen := make(map[string]struct{})
	for i := range t.Rows {
		et := t.cell(i, etIdx)
		if strings.ToUpper(et) != "WARNING" {
			continue
		}
		ts := t.cell(i, tsIdx)
		desc := t.cell(i, descIdx)
		// Dedup on the raw triple: rows differing only in event type casing
		// stay distinct records.
		key := ts + "\x00" + et + "\x00" + desc
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Warning{Timestamp: ts, Description: desc})
	}
	return out
}
