package telemetry

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads one worksheet of an XLSX workbook into a Table, applying the
// same header normalization and row-width rules as the CSV loader. Worksheet
// cells arrive as their formatted string values, so numeric coercion behaves
// exactly as it does for CSV input.
func LoadXLSX(path string, opts LoadOptions) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	sheet := opts.Sheet
	if sheet == "" {
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		return nil, fmt.Errorf("sheet %q not found (have: %s)", sheet, strings.Join(sheets, ", "))
	}

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(all) == 0 {
		return nil, errors.New("empty input: missing header row")
	}
	header := all[0]
	normalizeHeader(header, opts.Aliases)
	ncol := len(header)

	rows := make([][]string, 0, len(all)-1)
	for i, rec := range all[1:] {
		if len(rec) > ncol {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", i+1, ncol, len(rec))
		}
		if len(rec) < ncol {
			tmp := make([]string, ncol)
			copy(tmp, rec)
			rec = tmp
		}
		rows = append(rows, rec)
	}
	return &Table{Columns: header, Rows: rows}, nil
}
