// Package iim: derived indices.
// Everything in this file reads the operators built by New and performs
// no mutation; all methods are safe for concurrent use on one Model.

package iim

import (
	"fmt"

	"github.com/iimkit/iim/matrix"
)

// maxInoperability caps q: a sector cannot be more than fully inoperable.
const maxInoperability = 1.0

// Inoperability returns the steady-state inoperability vector
// q = S·c*, clamped above at 1 (Haimes et al. 2005, eq. 38). Values
// below zero are reported as computed: a negative entry signals an
// inconsistent A* rather than a recoverable state, and hiding it would
// mask the modeling error.
// Complexity: Time O(n²), Space O(n).
func (m *Model) Inoperability() []float64 {
	q, _ := matrix.MatVec(m.smat, m.cstar) // shapes fixed by New
	for i, v := range q {
		if v > maxInoperability {
			q[i] = maxInoperability
		}
	}

	return q
}

// Dependency returns the first-order dependency index δ(i): the row
// average of A* with the diagonal excluded, divided by N−1 (Setola et
// al. 2009, eq. 3). δ(i) > 1 means sector i fails completely even when
// the rest of the economy is only partially degraded.
//
// Errors: ErrUnsupportedMode in supply-driven mode, where the index
// family is not defined.
//
// Edge case: a single-sector model has no off-diagonal couplings and
// yields the zero vector.
func (m *Model) Dependency() ([]float64, error) {
	if err := m.requireDemand("Dependency"); err != nil {
		return nil, err
	}

	return offDiagonalRowMeans(m.astar, len(m.sectors)), nil
}

// OverallDependency returns δ̄(i), the dependency index computed over
// the resolvent S instead of A*, so that indirect (cascaded) couplings
// are included (Setola et al. 2009, eq. 9).
// Errors: ErrUnsupportedMode in supply-driven mode.
func (m *Model) OverallDependency() ([]float64, error) {
	if err := m.requireDemand("OverallDependency"); err != nil {
		return nil, err
	}

	return offDiagonalRowMeans(m.smat, len(m.sectors)), nil
}

// Influence returns the first-order influence index ρ(j): the column
// average of A* with the diagonal excluded, divided by N−1 (Setola et
// al. 2009, eq. 4). It measures how strongly a failure of sector j
// degrades the rest of the economy.
// Errors: ErrUnsupportedMode in supply-driven mode.
func (m *Model) Influence() ([]float64, error) {
	if err := m.requireDemand("Influence"); err != nil {
		return nil, err
	}

	return offDiagonalColMeans(m.astar, len(m.sectors)), nil
}

// OverallInfluence returns ρ̄(j), the influence index computed over the
// resolvent S (Setola et al. 2009, eq. 10).
// Errors: ErrUnsupportedMode in supply-driven mode.
func (m *Model) OverallInfluence() ([]float64, error) {
	if err := m.requireDemand("OverallInfluence"); err != nil {
		return nil, err
	}

	return offDiagonalColMeans(m.smat, len(m.sectors)), nil
}

// InterdependencyIndex returns the order-th-hop coupling of sector si
// on sector sj: the (i,j) entry of A* raised to the given power.
// Order 1 is the direct coupling A*[i,j]; order 0 degenerates to the
// identity (1 on the diagonal, 0 elsewhere).
//
// Errors:
//   - ErrInvalidOrder for a negative order.
//   - ErrUnknownSector when either name is absent.
//
// Complexity: Time O(order·n³) for the matrix power.
func (m *Model) InterdependencyIndex(si, sj string, order int) (float64, error) {
	if order < 0 {
		return 0, fmt.Errorf("InterdependencyIndex: order %d: %w", order, ErrInvalidOrder)
	}
	i, ok := m.index[si]
	if !ok {
		return 0, fmt.Errorf("InterdependencyIndex: sector %q: %w", si, ErrUnknownSector)
	}
	j, ok := m.index[sj]
	if !ok {
		return 0, fmt.Errorf("InterdependencyIndex: sector %q: %w", sj, ErrUnknownSector)
	}

	powered, err := matrix.Pow(m.astar, order)
	if err != nil {
		return 0, fmt.Errorf("InterdependencyIndex: %w", err)
	}
	v, _ := powered.At(i, j) // indices resolved from the sector map

	return v, nil
}

// MaxNthOrderInterdependency reports, for every sector, the partner
// sector with the strongest order-th-hop coupling: the per-row maximum
// of A*^order. Ties resolve to the lowest column index, keeping the
// report deterministic. Results follow the sector-list order.
//
// Errors: ErrInvalidOrder when order < 1 — the identity rows of order 0
// carry no coupling information.
func (m *Model) MaxNthOrderInterdependency(order int) ([]MaxInterdependency, error) {
	if order < 1 {
		return nil, fmt.Errorf("MaxNthOrderInterdependency: order %d: %w", order, ErrInvalidOrder)
	}
	powered, err := matrix.Pow(m.astar, order)
	if err != nil {
		return nil, fmt.Errorf("MaxNthOrderInterdependency: %w", err)
	}

	n := len(m.sectors)
	out := make([]MaxInterdependency, n)
	var v float64
	for i := 0; i < n; i++ {
		best, bestAt := 0.0, 0
		for j := 0; j < n; j++ {
			v, _ = powered.At(i, j)
			if j == 0 || v > best { // strict >: first maximum wins
				best, bestAt = v, j
			}
		}
		out[i] = MaxInterdependency{
			SectorI: m.sectors[i],
			SectorJ: m.sectors[bestAt],
			Value:   best,
		}
	}

	return out, nil
}

// Get bundles the five per-sector results — inoperability, dependency,
// overall dependency, influence, overall influence — into one
// SectorReport, in the column order of the published report layout.
//
// Errors:
//   - ErrUnknownSector when the name is absent.
//   - ErrUnsupportedMode in supply-driven mode (four of the five
//     columns are undefined there; query Inoperability directly).
func (m *Model) Get(sector string) (SectorReport, error) {
	i, ok := m.index[sector]
	if !ok {
		return SectorReport{}, fmt.Errorf("Get: sector %q: %w", sector, ErrUnknownSector)
	}
	if err := m.requireDemand("Get"); err != nil {
		return SectorReport{}, err
	}

	n := len(m.sectors)

	return SectorReport{
		Inoperability:     m.Inoperability()[i],
		Dependency:        offDiagonalRowMeans(m.astar, n)[i],
		OverallDependency: offDiagonalRowMeans(m.smat, n)[i],
		Influence:         offDiagonalColMeans(m.astar, n)[i],
		OverallInfluence:  offDiagonalColMeans(m.smat, n)[i],
	}, nil
}

// requireDemand gates the dependency/influence index family, which
// Setola et al. (2009) define only for the demand-driven model.
func (m *Model) requireDemand(op string) error {
	if m.mode == Supply {
		return fmt.Errorf("%s: %w", op, ErrUnsupportedMode)
	}

	return nil
}

// offDiagonalRowMeans averages each row of a square matrix with the
// diagonal excluded, normalizing by n−1. A 1×1 matrix has no
// off-diagonal entries and yields {0}.
func offDiagonalRowMeans(mat matrix.Matrix, n int) []float64 {
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	var v float64
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			v, _ = mat.At(i, j)
			sum += v
		}
		out[i] = sum / float64(n-1)
	}

	return out
}

// offDiagonalColMeans is the column-wise counterpart of
// offDiagonalRowMeans.
func offDiagonalColMeans(mat matrix.Matrix, n int) []float64 {
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	var v float64
	for j := 0; j < n; j++ {
		sum := 0.0
		for i := 0; i < n; i++ {
			if i == j {
				continue
			}
			v, _ = mat.At(i, j)
			sum += v
		}
		out[j] = sum / float64(n-1)
	}

	return out
}
