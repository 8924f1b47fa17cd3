package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, rows []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.csv")
	if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadCSVNormalizesAliasHeader(t *testing.T) {
	path := writeCSV(t, []string{
		"timestamp,event_type,event_descirption",
		"2024-05-01T10:00:00,INFO,startup",
	})
	tbl, err := LoadCSV(path, LoadOptions{Aliases: DefaultSchema().Aliases})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if _, ok := tbl.ColumnIndex("event_description"); !ok {
		t.Fatalf("alias not normalized, columns = %v", tbl.Columns)
	}
	if _, ok := tbl.ColumnIndex("event_descirption"); ok {
		t.Fatalf("misspelled header survived: %v", tbl.Columns)
	}
}

func TestLoadCSVStripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.csv")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("timestamp,speed_kmh\n2024-05-01T10:00:00,80\n")...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	tbl, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if tbl.Columns[0] != "timestamp" {
		t.Fatalf("first column = %q, want timestamp", tbl.Columns[0])
	}
}

func TestLoadCSVPadsShortRows(t *testing.T) {
	path := writeCSV(t, []string{
		"timestamp,speed_kmh,event_type",
		"2024-05-01T10:00:00,80",
	})
	tbl, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(tbl.Rows) != 1 || len(tbl.Rows[0]) != 3 {
		t.Fatalf("rows = %#v, want one row of width 3", tbl.Rows)
	}
	if tbl.Rows[0][2] != "" {
		t.Fatalf("padded cell = %q, want empty", tbl.Rows[0][2])
	}
}

func TestLoadCSVRejectsExtraFields(t *testing.T) {
	path := writeCSV(t, []string{
		"timestamp,speed_kmh",
		"2024-05-01T10:00:00,80,EXTRA",
	})
	if _, err := LoadCSV(path, LoadOptions{}); err == nil {
		t.Fatalf("expected error for row wider than header")
	} else if !strings.Contains(err.Error(), "expected 2 fields") {
		t.Fatalf("error = %v, want field count mismatch", err)
	}
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeCSV(t, nil)
	if _, err := LoadCSV(path, LoadOptions{}); err == nil {
		t.Fatalf("expected error for empty input")
	} else if !strings.Contains(err.Error(), "missing header row") {
		t.Fatalf("error = %v, want missing header row", err)
	}
}

func TestLoadCSVHeaderOnly(t *testing.T) {
	path := writeCSV(t, []string{"timestamp,speed_kmh"})
	tbl, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(tbl.Rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(tbl.Rows))
	}
}

func TestLoadCSVDelimiter(t *testing.T) {
	path := writeCSV(t, []string{
		"timestamp;speed_kmh",
		"2024-05-01T10:00:00;80",
	})
	tbl, err := LoadCSV(path, LoadOptions{Delimiter: ';'})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(tbl.Columns) != 2 || tbl.Rows[0][1] != "80" {
		t.Fatalf("table = %#v, want two columns with speed 80", tbl)
	}
}
