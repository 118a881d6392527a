// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests
// MUST check them via errors.Is. No kernel panics on user-triggered
// error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Sentinels are returned plain from validators;
// kernels wrap them with an operation tag via fmt.Errorf("Op: %w", err)
// so callers still match with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, Mul where a.Cols != b.Rows, or a
	// square matrix required but not supplied.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when a zero pivot is encountered during LU or
	// inversion in the non-pivoting scheme (intentional for determinism).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNegativePower marks a matrix power request with exponent < 0.
	ErrNegativePower = errors.New("matrix: negative power")
)
