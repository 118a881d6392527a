package matrix_test

import (
	"testing"

	"github.com/iimkit/iim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLU_Reconstruction verifies L*U reproduces the input and that L is
// unit lower triangular while U is upper triangular.
func TestLU_Reconstruction(t *testing.T) {
	a := mustDense(t, [][]float64{
		{4, 3},
		{6, 3},
	})

	lower, upper, err := matrix.LU(a)
	require.NoError(t, err)

	// L has unit diagonal and no entries above it.
	assertMatrixEqual(t, [][]float64{{1, 0}, {1.5, 1}}, lower, 1e-12)
	// U carries the eliminated rows.
	assertMatrixEqual(t, [][]float64{{4, 3}, {0, -1.5}}, upper, 1e-12)

	// Reconstruction: L*U == A.
	prod, err := matrix.Mul(lower, upper)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{4, 3}, {6, 3}}, prod, 1e-12)
}

// TestLU_Singular confirms the zero-pivot guard fires on a singular input.
func TestLU_Singular(t *testing.T) {
	a := mustDense(t, [][]float64{
		{0, 1},
		{0, 2},
	})

	_, _, err := matrix.LU(a)
	assert.ErrorIs(t, err, matrix.ErrSingular, "zero first pivot must error")
}

// TestInverse_Known checks A·A⁻¹ == I for a hand-computed 2x2 inverse.
func TestInverse_Known(t *testing.T) {
	a := mustDense(t, [][]float64{
		{4, 7},
		{2, 6},
	})

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}, inv, 1e-12)

	// A·A⁻¹ must be the identity.
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	assertMatrixEqual(t, [][]float64{{1, 0}, {0, 1}}, prod, 1e-12)
}

// TestInverse_Resolvent inverts (I − A*) for the Haimes & Jiang two-sector
// operator, the exact shape the inoperability solver relies on.
func TestInverse_Resolvent(t *testing.T) {
	astar := mustDense(t, [][]float64{
		{0, 0.8},
		{0.2, 0},
	})
	id, err := matrix.Identity(2)
	require.NoError(t, err)
	op, err := matrix.Sub(id, astar)
	require.NoError(t, err)

	s, err := matrix.Inverse(op)
	require.NoError(t, err)

	// (I − A*)⁻¹ = 1/(1−0.16) · [[1, 0.8], [0.2, 1]]
	const det = 1 - 0.16
	assertMatrixEqual(t, [][]float64{
		{1 / det, 0.8 / det},
		{0.2 / det, 1 / det},
	}, s, 1e-12)
}

// TestInverse_Singular verifies the solver refuses a singular operator
// instead of producing a best-effort pseudo-inverse.
func TestInverse_Singular(t *testing.T) {
	// Rows are linearly dependent: det == 0.
	a := mustDense(t, [][]float64{
		{1, 2},
		{2, 4},
	})

	_, err := matrix.Inverse(a)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverse_NonSquare verifies the shape guard.
func TestInverse_NonSquare(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := matrix.Inverse(a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
