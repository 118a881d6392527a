// Package iim: model construction pipeline.
// A Model is built once, in a strict order — sector index, perturbation
// vector, technical coefficients, interdependency matrix, resolvent —
// and is read-only afterwards. Every failure edge is detected at the
// stage that owns it and surfaces synchronously as a sentinel error.

package iim

import (
	"errors"
	"fmt"

	"github.com/iimkit/iim/matrix"
)

const (
	// zeroOutput marks a sector with no recorded total output; ratios with
	// such a denominator are defined as zero, not as a division failure.
	zeroOutput = 0.0

	// minFraction and maxFraction bound a valid perturbation fraction.
	minFraction = 0.0
	maxFraction = 1.0
)

// Model holds the immutable state of one IIM instance: the fixed sector
// ordering, the derived operators and the perturbation vector. All
// fields are set by New (or Reperturb) and never mutated afterwards.
type Model struct {
	sectors []string       // ordered sector names; fixes every index
	index   map[string]int // name → position, built once
	form    TableForm      // RawTable or Interdependency
	mode    Mode           // Demand or Supply

	xoutput []float64     // as-planned production per sector (RawTable only)
	amat    matrix.Matrix // Leontief technical coefficients A (RawTable only)
	astar   matrix.Matrix // interdependency matrix A*
	smat    matrix.Matrix // resolvent S = (I − A*)⁻¹
	cstar   []float64     // perturbation vector c*
}

// New constructs a Model from an ordered sector list, an ingested table
// and the perturbation set.
//
// Implementation:
//   - Stage 1: validate sectors (non-empty, unique) and build the index.
//   - Stage 2: validate the table shape against form and sector count.
//   - Stage 3: build c* — perturbation errors fire before any matrix work.
//   - Stage 4: split flows / total output (RawTable), derive A and A*.
//   - Stage 5: solve the resolvent S = (I − A*)⁻¹.
//
// Inputs:
//   - sectors: unique names; their order indexes every matrix and vector.
//   - table:   RawTable → N+1×N flows with trailing total-output row;
//     Interdependency → N×N, taken as A* without transformation.
//   - form, mode: interpretation selectors, see TableForm and Mode.
//   - perts:   zero or more named perturbations; empty is a valid baseline.
//
// Errors:
//   - ErrNoSectors, ErrDuplicateSector (Stage 1).
//   - ErrInputShape                    (Stage 2).
//   - ErrUnknownSector, ErrInvalidPerturbation (Stage 3).
//   - ErrSingularOperator              (Stage 5).
//
// Complexity: Time O(n³) dominated by the resolvent, Space O(n²).
func New(sectors []string, table matrix.Matrix, form TableForm, mode Mode, perts []Perturbation) (*Model, error) {
	// Stage 1: sector list defines the dimension of everything else.
	n := len(sectors)
	if n == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoSectors)
	}
	index := make(map[string]int, n)
	for i, name := range sectors {
		if _, seen := index[name]; seen {
			return nil, fmt.Errorf("New: %q: %w", name, ErrDuplicateSector)
		}
		index[name] = i
	}

	// Stage 2: shape check against the declared input form.
	if err := matrix.ValidateNotNil(table); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	wantRows := n
	if form == RawTable {
		wantRows = n + 1 // trailing total-output row
	}
	if table.Rows() != wantRows || table.Cols() != n {
		return nil, fmt.Errorf("New: %s table is %dx%d, want %dx%d: %w",
			form, table.Rows(), table.Cols(), wantRows, n, ErrInputShape)
	}

	// Stage 3: perturbation vector; fails before any matrix arithmetic.
	cstar, err := buildPerturbation(index, n, perts)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	m := &Model{
		sectors: append([]string(nil), sectors...),
		index:   index,
		form:    form,
		mode:    mode,
		cstar:   cstar,
	}

	// Stage 4: derive the operators for the declared form.
	if form == RawTable {
		flows, xoutput := splitRawTable(table, n)
		m.xoutput = xoutput
		m.amat = techCoeffMatrix(flows, xoutput, n)
		m.astar = interdependencyMatrix(flows, xoutput, m.amat, mode, n)
	} else {
		// Pre-built A*: identity pass-through, detached from the caller.
		m.astar = table.Clone()
	}

	// Stage 5: resolvent S = (I − A*)⁻¹.
	m.smat, err = resolvent(m.astar, n)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return m, nil
}

// ZipPerturbations pairs parallel name and fraction lists, the shape in
// which command lines deliver them. Mismatched lengths are an
// ErrInvalidPerturbation, mirroring the published CLI contract.
func ZipPerturbations(names []string, fractions []float64) ([]Perturbation, error) {
	if len(names) != len(fractions) {
		return nil, fmt.Errorf("ZipPerturbations: %d names vs %d fractions: %w",
			len(names), len(fractions), ErrInvalidPerturbation)
	}
	perts := make([]Perturbation, len(names))
	for i := range names {
		perts[i] = Perturbation{Sector: names[i], Fraction: fractions[i]}
	}

	return perts, nil
}

// Reperturb returns a new Model sharing this model's operators (A, A*,
// S are read-only after construction, so sharing is safe — see the
// concurrency note in the package doc) with a freshly built c*.
// Errors: ErrUnknownSector, ErrInvalidPerturbation.
// Complexity: Time O(n + len(perts)), no matrix work is repeated.
func (m *Model) Reperturb(perts []Perturbation) (*Model, error) {
	cstar, err := buildPerturbation(m.index, len(m.sectors), perts)
	if err != nil {
		return nil, fmt.Errorf("Reperturb: %w", err)
	}
	clone := *m // shallow copy: operators shared, both sides read-only
	clone.cstar = cstar

	return &clone, nil
}

// buildPerturbation maps named perturbations onto a dense zero-initialized
// vector aligned with the sector ordering. Validation is all-or-nothing:
// on any error the caller receives no partially filled vector.
func buildPerturbation(index map[string]int, n int, perts []Perturbation) ([]float64, error) {
	cstar := make([]float64, n)
	for _, p := range perts {
		// Fraction must be a valid degradation share.
		if p.Fraction < minFraction || p.Fraction > maxFraction {
			return nil, fmt.Errorf("sector %q fraction %g outside [0,1]: %w",
				p.Sector, p.Fraction, ErrInvalidPerturbation)
		}
		// Name must resolve against the fixed ordering.
		pos, ok := index[p.Sector]
		if !ok {
			return nil, fmt.Errorf("sector %q: %w", p.Sector, ErrUnknownSector)
		}
		cstar[pos] = p.Fraction
	}

	return cstar, nil
}

// splitRawTable separates the N×N flow block from the trailing
// total-output row. Shapes were validated by New; reads cannot fail.
func splitRawTable(table matrix.Matrix, n int) (matrix.Matrix, []float64) {
	flows, _ := matrix.NewDense(n, n)
	xoutput := make([]float64, n)
	var v float64
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v, _ = table.At(i, j)
			_ = flows.Set(i, j, v)
		}
		xoutput[j], _ = table.At(n, j) // last row = as-planned output
	}

	return flows, xoutput
}

// techCoeffMatrix derives the Leontief technical coefficient matrix
// A[i,j] = T[i,j] / x[j] (Santos & Haimes 2004, eq. 2). A sector with
// zero output yields zero coefficients in its column: it is numerically
// isolated rather than a division failure.
func techCoeffMatrix(flows matrix.Matrix, xoutput []float64, n int) matrix.Matrix {
	amat, _ := matrix.NewDense(n, n)
	var v float64
	for j := 0; j < n; j++ {
		if xoutput[j] == zeroOutput {
			continue // column stays zero: no outgoing dependency
		}
		for i := 0; i < n; i++ {
			v, _ = flows.At(i, j)
			_ = amat.Set(i, j, v/xoutput[j])
		}
	}

	return amat
}

// interdependencyMatrix derives A* from the raw flows for the given mode:
//
//   - Demand: A*[i,j] = T[i,j] / x[i] — row-normalized by the consuming
//     sector's own output (Santos & Haimes 2004, eq. 28), with the same
//     zero-output guard as the coefficient builder. The direct
//     P⁻¹·A·P similarity form would go singular on x[i] == 0.
//   - Supply: A* = Aᵀ (Leung et al. 2007, p. 301).
func interdependencyMatrix(flows matrix.Matrix, xoutput []float64, amat matrix.Matrix, mode Mode, n int) matrix.Matrix {
	if mode == Supply {
		astar, _ := matrix.Transpose(amat) // amat is n×n, cannot fail
		return astar
	}

	astar, _ := matrix.NewDense(n, n)
	var v float64
	for i := 0; i < n; i++ {
		if xoutput[i] == zeroOutput {
			continue // row stays zero
		}
		for j := 0; j < n; j++ {
			v, _ = flows.At(i, j)
			_ = astar.Set(i, j, v/xoutput[i])
		}
	}

	return astar
}

// resolvent solves S = (I − A*)⁻¹ (Setola et al. 2009, eq. 7). A
// singular operator is a legitimate model failure — the economy has no
// stable equilibrium under A* — and is surfaced as ErrSingularOperator.
func resolvent(astar matrix.Matrix, n int) (matrix.Matrix, error) {
	id, err := matrix.Identity(n)
	if err != nil {
		return nil, err
	}
	op, err := matrix.Sub(id, astar)
	if err != nil {
		return nil, err
	}
	smat, err := matrix.Inverse(op)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("resolvent: %w", ErrSingularOperator)
		}

		return nil, err
	}

	return smat, nil
}

// Len returns the number of sectors in the model.
func (m *Model) Len() int { return len(m.sectors) }

// Form returns the declared input form.
func (m *Model) Form() TableForm { return m.form }

// Mode returns the declared computation mode.
func (m *Model) Mode() Mode { return m.mode }

// Sectors returns a copy of the ordered sector list.
func (m *Model) Sectors() []string {
	return append([]string(nil), m.sectors...)
}

// Output returns a copy of the as-planned production per sector, or nil
// when the model was built from a pre-built interdependency matrix.
func (m *Model) Output() []float64 {
	if m.xoutput == nil {
		return nil
	}

	return append([]float64(nil), m.xoutput...)
}

// TechCoeff returns a copy of the Leontief technical coefficient matrix
// A, or nil when the model was built from a pre-built interdependency
// matrix (A is undefined in that form).
func (m *Model) TechCoeff() matrix.Matrix {
	if m.amat == nil {
		return nil
	}

	return m.amat.Clone()
}

// Interdependency returns a copy of the interdependency matrix A*.
func (m *Model) Interdependency() matrix.Matrix {
	return m.astar.Clone()
}

// Resolvent returns a copy of the resolvent matrix S = (I − A*)⁻¹.
func (m *Model) Resolvent() matrix.Matrix {
	return m.smat.Clone()
}

// Perturbation returns a copy of the dense perturbation vector c*.
func (m *Model) Perturbation() []float64 {
	return append([]float64(nil), m.cstar...)
}
