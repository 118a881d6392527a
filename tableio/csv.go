// Package tableio: CSV table ingestion.

package tableio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iimkit/iim/matrix"
)

// Table is a parsed CSV input-output table: the header's sector names
// and the numeric cell block beneath it. Whether the block is flows
// plus a total-output row or a pre-built interdependency matrix is
// decided by the caller, not by the parser.
type Table struct {
	Sectors []string    // header row, whitespace-trimmed
	Cells   [][]float64 // data rows, one slice per CSV row
}

// ReadCSV loads and parses a CSV table from a file.
// Errors: *os.PathError on open, plus everything ParseCSV returns.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}
	defer f.Close()

	t, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %s: %w", path, err)
	}

	return t, nil
}

// ParseCSV parses a CSV table from a reader.
//
// Implementation:
//   - Stage 1: read the header; trim each sector name.
//   - Stage 2: read data rows; every cell must parse as float64 and
//     every row must match the header width.
//
// Row-count validation against the declared form happens later, in the
// model constructor — the parser has no form to check against.
//
// Errors: ErrEmptyTable, ErrRaggedRow, ErrNotNumeric, wrapped with the
// offending position.
func ParseCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // widths checked here, with a better error
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ParseCSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("ParseCSV: %d rows: %w", len(records), ErrEmptyTable)
	}

	sectors := make([]string, len(records[0]))
	for i, name := range records[0] {
		sectors[i] = strings.TrimSpace(name)
	}

	cells := make([][]float64, 0, len(records)-1)
	for line, record := range records[1:] {
		if len(record) != len(sectors) {
			return nil, fmt.Errorf("ParseCSV: row %d has %d cells, want %d: %w",
				line+2, len(record), len(sectors), ErrRaggedRow)
		}
		row := make([]float64, len(record))
		for col, cell := range record {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, fmt.Errorf("ParseCSV: row %d col %d %q: %w",
					line+2, col+1, cell, ErrNotNumeric)
			}
			row[col] = v
		}
		cells = append(cells, row)
	}

	return &Table{Sectors: sectors, Cells: cells}, nil
}

// Matrix converts the cell block into a dense matrix ready for the
// model constructor.
func (t *Table) Matrix() (*matrix.Dense, error) {
	m, err := matrix.NewDenseFromRows(t.Cells)
	if err != nil {
		return nil, fmt.Errorf("Matrix: %w", err)
	}

	return m, nil
}
