package telemetry

import (
	"strings"
	"testing"
)

func TestMarkdownAllSentinels(t *testing.T) {
	md := (&Report{}).Markdown()
	want := `# Telemetry Analysis Report

## 1. Speed statistics

No valid speed data.
## 2. Numeric summary (mean, max, min)

No numeric summary available.
## 3. Warnings (event_type = WARNING)

No WARNING events found.
## 4. Threshold breaches (with timestamp)

When a value exceeds the configured max or goes below the configured min, the timestamp is recorded below.

No threshold breaches detected.`
	if md != want {
		t.Fatalf("sentinel report:\n%s\nwant:\n%s", md, want)
	}
}

func TestMarkdownPopulatedSections(t *testing.T) {
	mean, max, min := 115.0, 130.0, 100.0
	rep := &Report{
		Speed:    SpeedStats{Mean: &mean, Max: &max, Min: &min, Count: 3},
		Summary:  []ColumnStats{{Column: "speed_kmh", Mean: 115, Max: 130, Min: 100}},
		Warnings: []Warning{{Timestamp: "t1", Description: "coolant | pump"}},
		Breaches: []Breach{{Timestamp: "t1", Column: "speed_kmh", Value: 130.456789, Limit: "max", LimitValue: 120}},
	}
	md := rep.Markdown()

	for _, line := range []string{
		"- **Mean speed:** 115.0 km/h",
		"- **Max speed:** 130.0 km/h",
		"- **Min speed:** 100.0 km/h",
		"- **Samples:** 3",
		"| speed_kmh | 115.0 | 130.0 | 100.0 |",
		`| t1 | coolant \| pump |`,
		"| t1 | speed_kmh | 130.46 | max=120 |",
	} {
		if !strings.Contains(md, line) {
			t.Fatalf("markdown missing %q:\n%s", line, md)
		}
	}

	sections := []string{
		"## 1. Speed statistics",
		"## 2. Numeric summary (mean, max, min)",
		"## 3. Warnings (event_type = WARNING)",
		"## 4. Threshold breaches (with timestamp)",
	}
	last := -1
	for _, h := range sections {
		idx := strings.Index(md, h)
		if idx <= last {
			t.Fatalf("section %q out of order:\n%s", h, md)
		}
		last = idx
	}
}

func TestMarkdownRendersSameBytes(t *testing.T) {
	mean := 80.0
	rep := &Report{Speed: SpeedStats{Mean: &mean, Max: &mean, Min: &mean, Count: 1}}
	if rep.Markdown() != rep.Markdown() {
		t.Fatalf("renders differ for identical input")
	}
}

func TestValueFormatting(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{130, "130.0"},
		{12.35, "12.35"},
		{-0.5, "-0.5"},
		{0, "0.0"},
	}
	for _, c := range cases {
		if got := formatValue(c.in); got != c.want {
			t.Fatalf("formatValue(%v) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := formatLimit(120); got != "120" {
		t.Fatalf("formatLimit(120) = %q, want 120", got)
	}
	if got := formatLimit(40.5); got != "40.5" {
		t.Fatalf("formatLimit(40.5) = %q, want 40.5", got)
	}
}
