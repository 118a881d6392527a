// Package iim defines the input selectors and result records of the model.
package iim

import "fmt"

// TableForm selects how the ingested table is interpreted.
//
//   - RawTable       — industry×industry input-output flows with a trailing
//     total-output row (N+1 rows × N columns). Technical
//     coefficients and the interdependency matrix are derived.
//   - Interdependency — the caller already supplies A* (N×N); it is taken
//     as-is, and the caller is responsible for orienting it
//     to the intended computation mode.
type TableForm int

const (
	// RawTable mode: derive A and A* from flows and total output.
	RawTable TableForm = iota

	// Interdependency mode: the table IS A*; identity pass-through.
	Interdependency
)

// String returns the CSV/CLI tag of the form ("IO" or "A"), mirroring
// the selector names used by published IIM tooling.
func (f TableForm) String() string {
	if f == Interdependency {
		return "A"
	}

	return "IO"
}

// ParseTableForm maps the CLI tags "IO" and "A" onto TableForm values.
func ParseTableForm(s string) (TableForm, error) {
	switch s {
	case "IO":
		return RawTable, nil
	case "A":
		return Interdependency, nil
	default:
		return RawTable, fmt.Errorf("ParseTableForm: %q: %w", s, ErrInputShape)
	}
}

// Mode selects the propagation orientation of the interdependency matrix.
//
//   - Demand — demand-driven: A* rows are normalized by the consuming
//     sector's own output (Santos & Haimes 2004, eq. 28).
//   - Supply — supply-driven: A* is the transpose of the technical
//     coefficient matrix (Leung et al. 2007, p. 301).
type Mode int

const (
	// Demand is the demand-driven IIM; all indices are defined.
	Demand Mode = iota

	// Supply is the supply-driven IIM; dependency/influence indices are
	// not defined and return ErrUnsupportedMode.
	Supply
)

// String returns the CLI tag of the mode ("Demand" or "Supply").
func (m Mode) String() string {
	if m == Supply {
		return "Supply"
	}

	return "Demand"
}

// ParseMode maps the CLI tags "Demand" and "Supply" onto Mode values.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "Demand":
		return Demand, nil
	case "Supply":
		return Supply, nil
	default:
		return Demand, fmt.Errorf("ParseMode: %q: %w", s, ErrInputShape)
	}
}

// Perturbation names one perturbed sector and the fraction of demand
// (or supply) degradation applied to it. Fraction must lie in [0,1].
type Perturbation struct {
	Sector   string  // sector name; must exist in the model's sector list
	Fraction float64 // degradation c*[i] ∈ [0,1]
}

// SectorReport bundles the five per-sector results returned by Get, in
// the column order of the published report layout.
type SectorReport struct {
	Inoperability     float64 // q(i) = (S·c*)(i), clamped above at 1
	Dependency        float64 // δ(i): row average of A*, diagonal excluded
	OverallDependency float64 // δ̄(i): row average of S, diagonal excluded
	Influence         float64 // ρ(i): column average of A*, diagonal excluded
	OverallInfluence  float64 // ρ̄(i): column average of S, diagonal excluded
}

// MaxInterdependency records, for sector SectorI, the sector SectorJ
// whose order-th-hop interdependency on/with SectorI is strongest, and
// that maximum value. Ties break toward the lowest column index.
type MaxInterdependency struct {
	SectorI string  // row sector, in sector-list order
	SectorJ string  // argmax column sector
	Value   float64 // (A*^order)[i,j] at the argmax
}
