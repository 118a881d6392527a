// Package iimkit is a pure-Go toolkit for static Inoperability
// Input-Output Modelling (IIM) of interdependent infrastructure sectors.
//
// 🚀 What is IIM?
//
//	The Inoperability Input-Output Model propagates a shock (reduced
//	output) in one or more economic/infrastructure sectors through a
//	Leontief-style interdependency operator to obtain the steady-state
//	fractional loss of function ("inoperability") of every sector:
//	  • demand-driven and supply-driven formulations
//	  • dependency / influence indices (direct and overall)
//	  • n-th order interdependency analysis
//
// ✨ Why choose this toolkit?
//
//   - Deterministic – fixed loop orders, no hidden randomness
//   - Fail-fast – sentinel errors, no best-effort pseudo-inverses
//   - Pure Go – no cgo, dense kernels sized for small operators
//
// Everything is organized under three subpackages and one command:
//
//	matrix/  — dense Matrix interface, kernels, LU inversion
//	iim/     — the model core: pipeline, inoperability, indices
//	tableio/ — CSV input-output tables and YAML scenarios
//	cmd/iim  — command-line runner and post-processing
//
// The model follows Haimes & Jiang (2001), Santos & Haimes (2004),
// Leung et al. (2007) and Setola et al. (2009).
//
//	go get github.com/iimkit/iim
package iimkit
