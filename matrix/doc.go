// Package matrix offers the dense linear-algebra kernels backing the
// inoperability model.
//
// The matrix package provides:
//
//   - A minimal Matrix interface plus a row-major Dense implementation
//     with a flat backing slice for cache friendliness.
//   - Element-wise kernels (Add, Sub), multiplication (Mul, MatVec),
//     structural operators (Transpose, Identity, Pow).
//   - Doolittle LU factorization and exact inversion (Inverse) with a
//     deterministic zero-pivot singularity guard.
//
// All kernels validate fail-fast through the canonical validators,
// return package sentinel errors matched via errors.Is, and never
// mutate their operands. Dense operators of tens to low hundreds of
// rows are the intended scale; the routines perform no pivoting and no
// iterative refinement, so identical inputs give bit-identical results.
//
// See the examples in this package and iim for usage patterns.
package matrix
