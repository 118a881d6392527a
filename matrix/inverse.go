// Package matrix: Doolittle LU factorization and exact inversion.
// Both routines are deliberately pivot-free: the operators solved here
// are small and diagonally dominant in practice, and a fixed traversal
// keeps results reproducible bit-for-bit. A zero pivot is reported as
// ErrSingular, never approximated.

package matrix

import "fmt"

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// LU computes the Doolittle factorization A = L*U with unit diagonal on L.
//
// Implementation:
//   - Stage 1: validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: for i=0..n-1, build row i of U and column i of L in fixed order,
//     guarding the pivot U[i,i] after each row.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular (U[i,i]==0).
// Determinism: fixed i→{j≥i} for U, then {j>i}→i for L.
// Complexity: Time O(n³), Space O(n²).
func LU(m Matrix) (Matrix, Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Allocate L and U
	n := m.Rows()
	lower, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	upper, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular)
	for i := 0; i < n; i++ {
		lower.data[i*n+i] = IdentityDiag
	}

	// Detect fast-path on *Dense
	mRaw, useFast := m.(*Dense)
	var i, j, k int // loop iterators
	var sum, pivot float64
	if useFast {
		// Fast-path: operate directly on flat slices
		var baseI, baseJ int
		for i = 0; i < n; i++ {
			// Compute U[i][j] for j >= i
			baseI = i * n
			for j = i; j < n; j++ {
				sum = ZeroSum
				for k = 0; k < i; k++ {
					sum += lower.data[baseI+k] * upper.data[k*n+j]
				}
				upper.data[baseI+j] = mRaw.data[baseI+j] - sum
			}

			// Zero-pivot guard (deterministic singularity detection)
			pivot = upper.data[baseI+i]
			if pivot == ZeroPivot {
				return nil, nil, matrixErrorf(opLU, ErrSingular)
			}

			// Compute L[j][i] for j > i
			for j = i + 1; j < n; j++ {
				sum = ZeroSum
				baseJ = j * n
				for k = 0; k < i; k++ {
					sum += lower.data[baseJ+k] * upper.data[k*n+i]
				}
				lower.data[baseJ+i] = (mRaw.data[baseJ+i] - sum) / pivot
			}
		}

		return lower, upper, nil
	}

	// Fallback: generic interface version
	var a, l, u float64
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l, _ = lower.At(i, k)
				u, _ = upper.At(k, j)
				sum += l * u
			}
			a, err = m.At(i, j)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			_ = upper.Set(i, j, a-sum)
		}

		// Zero-pivot guard (generic path)
		pivot, _ = upper.At(i, i)
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l, _ = lower.At(j, k)
				u, _ = upper.At(k, i)
				sum += l * u
			}
			a, err = m.At(j, i)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, i, err))
			}
			_ = lower.Set(j, i, (a-sum)/pivot)
		}
	}

	// Return L and U
	return lower, upper, nil
}

// Inverse computes A⁻¹ using Doolittle LU factorization without pivoting.
//
// Implementation:
//   - Stage 1: validate m (not nil, square); factorize via LU(m) → L, U;
//     allocate the result and the y/x substitution workspaces.
//   - Stage 2: for each canonical basis column e_col, forward-solve
//     L·y = e_col (top-down) then backward-solve U·x = y (bottom-up,
//     zero-pivot guarded), and write x into column col of the result.
//
// Behavior highlights:
//   - Fully deterministic loop orders (col↑, forward i↑, backward i↓).
//   - Input m is read-only; factors L and U are freshly allocated by LU.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: Time O(n³), Space O(n²).
//
// AI-Hints:
//   - If you only need A⁻¹·b, a single LU plus two triangular solves is
//     cheaper than forming the full inverse; here the resolvent matrix
//     itself is the published model artifact, so we materialize it.
func Inverse(m Matrix) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// LU decomposition (Doolittle)
	lower, upper, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Prepare result container and scratch arrays
	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k  int // loop iterators
		sum, pivot float64
		y          = make([]float64, n) // forward substitution workspace
		x          = make([]float64, n) // backward substitution workspace
	)
	// LU always returns *Dense; keep flat row-major access throughout.
	ld := lower.(*Dense)
	ud := upper.(*Dense)
	var baseLi, baseUi int
	for col = 0; col < n; col++ { // for each basis vector e_col
		// Forward substitution: L·y = e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			baseLi = i * n
			for k = 0; k < i; k++ {
				sum += ld.data[baseLi+k] * y[k]
			}
			if i == col { // basis entry: e_col[i] == 1
				y[i] = IdentityDiag - sum
			} else { // e_col[i] == 0
				y[i] = -sum
			}
		}
		// Backward substitution: U·x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			baseUi = i * n
			for k = i + 1; k < n; k++ {
				sum += ud.data[baseUi+k] * x[k]
			}
			pivot = ud.data[baseUi+i]
			if pivot == ZeroPivot { // singular check
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		// Write solution x into column col of inv
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	// Return computed inverse
	return inv, nil
}
