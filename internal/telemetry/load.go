package telemetry

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadOptions controls how a capture file is read.
type LoadOptions struct {
	// Delimiter for CSV input. 0 means comma.
	Delimiter rune
	// Sheet selects the worksheet for XLSX input. Empty means the first sheet.
	Sheet string
	// Aliases maps accepted header misspellings to canonical column names.
	// Applied to the header before the table is returned.
	Aliases map[string]string
}

// Load reads a capture from path, dispatching on the file extension:
// .xlsx is read as a workbook, everything else as CSV.
func Load(path string, opts LoadOptions) (*Table, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return LoadXLSX(path, opts)
	}
	return LoadCSV(path, opts)
}

// LoadCSV reads a CSV file into a Table. The first row is the header; rows
// shorter than the header are padded with empty cells, rows longer than the
// header are a parse error. Header aliases are normalized before returning.
func LoadCSV(path string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	// Strip a UTF-8 BOM so the first header name survives validation.
	if lead, err := br.Peek(3); err == nil && bytes.Equal(lead, []byte{0xEF, 0xBB, 0xBF}) {
		_, _ = br.Discard(3)
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	if opts.Delimiter != 0 {
		r.Comma = opts.Delimiter
	}

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input: missing header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	normalizeHeader(header, opts.Aliases)
	ncol := len(header)

	var rows [][]string
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		if len(rec) > ncol {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", len(rows)+1, ncol, len(rec))
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

func normalizeHeader(header []string, aliases map[string]string) {
	for i, name := range header {
		if canon, ok := aliases[name]; ok {
			header[i] = canon
		}
	}
}
