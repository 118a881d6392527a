package matrix_test

import (
	"testing"

	"github.com/iimkit/iim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_InvalidDimensions verifies that non-positive shapes are
// rejected with ErrInvalidDimensions before any allocation.
func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "zero rows must error")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "negative cols must error")
}

// TestDense_AtSet exercises round-trip element access and bounds checks.
func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err, "2x3 allocation should succeed")

	// Fresh Dense is zero-initialized.
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "new Dense must be zero-initialized")

	// Write then read back.
	require.NoError(t, m.Set(1, 2, 4.25))
	v, err = m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.25, v, "Set/At round-trip")

	// Out-of-range indices surface ErrIndexOutOfBounds, never panic.
	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "row out of range")
	err = m.Set(0, 3, 1.0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "col out of range")
	_, err = m.At(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "negative row")
}

// TestNewDenseFromRows verifies bulk construction and the ragged-row guard.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	v, _ := m.At(1, 0)
	assert.Equal(t, 3.0, v)

	// Ragged input must fail with the dimension sentinel.
	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "ragged rows must error")

	// Empty input must fail with the shape sentinel.
	_, err = matrix.NewDenseFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "empty input must error")
}

// TestDense_CloneIndependence confirms Clone yields a deep, detached copy.
func TestDense_CloneIndependence(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, m.Set(0, 0, 99))

	v, _ := c.At(0, 0)
	assert.Equal(t, 1.0, v, "clone must not observe writes to the original")
}

// TestDense_RowCopies confirms Row returns an independent slice.
func TestDense_RowCopies(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, row)

	// Mutating the returned slice must not touch the matrix.
	row[0] = 42
	v, _ := m.At(1, 0)
	assert.Equal(t, 3.0, v, "Row must hand out a copy")

	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}
