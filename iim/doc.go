// Package iim implements the static Inoperability Input-Output Model
// (IIM) for interdependent infrastructure sectors.
//
// 🚀 What does it compute?
//
//	Given an industry-by-industry input-output table (or a pre-built
//	interdependency matrix) and a set of perturbed sectors, the model
//	derives:
//	  • Leontief technical coefficients A (Santos & Haimes 2004, eq. 2)
//	  • the demand- or supply-driven interdependency matrix A*
//	    (Santos & Haimes 2004, eq. 28; Leung et al. 2007, p. 301)
//	  • the resolvent S = (I − A*)⁻¹ (Setola et al. 2009, eq. 7)
//	  • steady-state inoperability q = S·c*, clamped above at 1
//	    (Haimes & Jiang 2001, eq. 14; Haimes et al. 2005, eq. 38)
//	  • dependency / influence indices, direct and overall
//	    (Setola et al. 2009, eq. 3, 4, 9, 10)
//	  • n-th order interdependency indices and per-sector maxima
//
// ⚙️ Usage:
//
//	model, err := iim.New(sectors, table, iim.RawTable, iim.Demand,
//		[]iim.Perturbation{{Sector: "Electric", Fraction: 0.6}})
//	if err != nil { ... }
//	q := model.Inoperability()
//
// A Model is immutable after construction: every accessor hands out
// copies, so distinct perturbation scenarios built with Reperturb may
// be evaluated concurrently against the shared resolvent.
//
// All failure edges surface as package sentinel errors (ErrInputShape,
// ErrUnknownSector, ErrInvalidPerturbation, ErrSingularOperator,
// ErrUnsupportedMode, ErrInvalidOrder) matched via errors.Is; the core
// performs no logging and no recovery.
package iim
