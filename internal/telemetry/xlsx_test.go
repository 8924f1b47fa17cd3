package telemetry

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "capture.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}
	return path
}

func TestLoadXLSX(t *testing.T) {
	path := writeXLSX(t, "Sheet1", [][]any{
		{"timestamp", "speed_kmh", "event_type", "event_descirption"},
		{"2024-05-01T10:00:00", 130.5, "WARNING", "overheat"},
		{"2024-05-01T10:00:05", "90"},
	})
	tbl, err := LoadXLSX(path, LoadOptions{Aliases: DefaultSchema().Aliases})
	if err != nil {
		t.Fatalf("LoadXLSX: %v", err)
	}
	if tbl.Columns[3] != "event_description" {
		t.Fatalf("alias not normalized: %v", tbl.Columns)
	}
	if tbl.Rows[0][1] != "130.5" {
		t.Fatalf("numeric cell = %q, want 130.5", tbl.Rows[0][1])
	}
	if len(tbl.Rows[1]) != 4 || tbl.Rows[1][2] != "" {
		t.Fatalf("short row not padded: %#v", tbl.Rows[1])
	}
}

func TestLoadXLSXSheetSelection(t *testing.T) {
	path := writeXLSX(t, "Telemetry", [][]any{
		{"timestamp", "speed_kmh"},
		{"2024-05-01T10:00:00", "80"},
	})
	tbl, err := LoadXLSX(path, LoadOptions{Sheet: "Telemetry"})
	if err != nil {
		t.Fatalf("LoadXLSX: %v", err)
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0][1] != "80" {
		t.Fatalf("rows = %#v", tbl.Rows)
	}

	if _, err := LoadXLSX(path, LoadOptions{Sheet: "Nope"}); err == nil {
		t.Fatalf("expected error for unknown sheet")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("error = %v, want sheet not found", err)
	}
}

func TestLoadDispatchesByExtension(t *testing.T) {
	path := writeXLSX(t, "Sheet1", [][]any{
		{"timestamp", "speed_kmh"},
		{"2024-05-01T10:00:00", "80"},
	})
	tbl, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tbl.Columns) != 2 || tbl.Columns[1] != "speed_kmh" {
		t.Fatalf("columns = %v", tbl.Columns)
	}
}
