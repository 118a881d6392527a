// Package iim: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// model. Constructors and operations MUST return these sentinels
// (wrapped with call-site context) and tests MUST check them via
// errors.Is. The core never panics on user-triggered conditions.

package iim

import "errors"

var (
	// ErrNoSectors is returned when the sector list is empty.
	ErrNoSectors = errors.New("iim: sector list is empty")

	// ErrDuplicateSector is returned when the sector list repeats a name;
	// name-based lookups would be ambiguous otherwise.
	ErrDuplicateSector = errors.New("iim: duplicate sector name")

	// ErrInputShape indicates table dimensions inconsistent with the
	// declared input form and sector count (RawTable wants N+1×N with a
	// trailing total-output row, Interdependency wants N×N).
	ErrInputShape = errors.New("iim: input table shape mismatch")

	// ErrUnknownSector indicates a referenced sector name absent from the
	// sector list (perturbation, index lookup, single-sector query).
	ErrUnknownSector = errors.New("iim: unknown sector")

	// ErrInvalidPerturbation indicates a perturbation fraction outside
	// [0,1] or mismatched name/value list lengths.
	ErrInvalidPerturbation = errors.New("iim: invalid perturbation")

	// ErrSingularOperator is returned when (I − A*) is singular: the
	// economy described by A* has no stable equilibrium under this
	// operator. Surfaced from construction, never masked by a
	// best-effort pseudo-inverse.
	ErrSingularOperator = errors.New("iim: singular interdependency operator")

	// ErrUnsupportedMode marks the dependency/influence index family
	// invoked for the supply-driven mode, where Setola et al. (2009)
	// define no such indices.
	ErrUnsupportedMode = errors.New("iim: index not defined for supply-driven mode")

	// ErrInvalidOrder marks an out-of-domain interdependency order
	// (negative for index queries, < 1 for per-sector maxima).
	ErrInvalidOrder = errors.New("iim: invalid interdependency order")
)
