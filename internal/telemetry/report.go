package telemetry

import (
	"fmt"
	"strconv"
	"strings"
)

// Report bundles every analysis result for rendering.
type Report struct {
	Speed    SpeedStats
	Summary  []ColumnStats
	Warnings []Warning
	Breaches []Breach
}

// Markdown renders the fixed four-section report. It is a pure formatting
// pass over already-computed results: the same inputs always render the same
// bytes, and every section appears, as a table or as its sentinel line.
func (r *Report) Markdown() string {
	lines := []string{
		"# Telemetry Analysis Report",
		"",
		"## 1. Speed statistics",
		"",
	}
	if r.Speed.Count == 0 {
		lines = append(lines, "No valid speed data.")
	} else {
		lines = append(lines,
			fmt.Sprintf("- **Mean speed:** %s km/h", formatStat(r.Speed.Mean)),
			fmt.Sprintf("- **Max speed:** %s km/h", formatStat(r.Speed.Max)),
			fmt.Sprintf("- **Min speed:** %s km/h", formatStat(r.Speed.Min)),
			fmt.Sprintf("- **Samples:** %d", r.Speed.Count),
			"",
		)
	}

	lines = append(lines, "## 2. Numeric summary (mean, max, min)", "")
	if len(r.Summary) == 0 {
		lines = append(lines, "No numeric summary available.")
	} else {
		lines = append(lines,
			"| Column | Mean | Max | Min |",
			"|--------|------|-----|-----|",
		)
		for _, cs := range r.Summary {
			lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s |",
				cs.Column, formatValue(cs.Mean), formatValue(cs.Max), formatValue(cs.Min)))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "## 3. Warnings (event_type = WARNING)", "")
	if len(r.Warnings) == 0 {
		lines = append(lines, "No WARNING events found.")
	} else {
		lines = append(lines,
			"| Timestamp | Event description |",
			"|-----------|--------------------|",
		)
		for _, w := range r.Warnings {
			// Literal pipes would split the table cell.
			desc := strings.ReplaceAll(w.Description, "|", "\\|")
			lines = append(lines, fmt.Sprintf("| %s | %s |", w.Timestamp, desc))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		"## 4. Threshold breaches (with timestamp)",
		"",
		"When a value exceeds the configured max or goes below the configured min, the timestamp is recorded below.",
		"",
	)
	if len(r.Breaches) == 0 {
		lines = append(lines, "No threshold breaches detected.")
	} else {
		lines = append(lines,
			"| Timestamp | Column | Value | Limit (max/min) |",
			"|-----------|--------|-------|-----------------|",
		)
		for _, b := range r.Breaches {
			lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s=%s |",
				b.Timestamp, b.Column, formatValue(round2(b.Value)), b.Limit, formatLimit(b.LimitValue)))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// formatValue prints a rounded statistic in shortest decimal form with at
// least one fractional digit (130 -> "130.0", 12.35 -> "12.35").
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatLimit prints a configured bound in its shortest form (120 -> "120").
func formatLimit(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatStat(p *float64) string {
	if p == nil {
		return ""
	}
	return formatValue(*p)
}
