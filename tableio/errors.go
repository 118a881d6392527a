// Package tableio: sentinel error set.
// File readers wrap these with file/line context; callers match them
// via errors.Is.

package tableio

import "errors"

var (
	// ErrEmptyTable is returned when a CSV source has no header or no
	// data rows.
	ErrEmptyTable = errors.New("tableio: empty table")

	// ErrRaggedRow is returned when a data row's cell count differs from
	// the header's sector count.
	ErrRaggedRow = errors.New("tableio: ragged row")

	// ErrNotNumeric is returned when a data cell cannot be parsed as a
	// floating-point number.
	ErrNotNumeric = errors.New("tableio: non-numeric cell")

	// ErrBadScenario is returned when a scenario file is structurally
	// invalid (missing table path, unknown form or mode tag).
	ErrBadScenario = errors.New("tableio: invalid scenario")

	// ErrBadReport is returned when a report file does not contain a
	// parseable result table.
	ErrBadReport = errors.New("tableio: unparseable report")
)
