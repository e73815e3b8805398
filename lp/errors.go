// Package lp: sentinel error set.
// All constructors MUST return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX)) and tests MUST check them via errors.Is.
// No constructor panics on user input.

package lp

import "errors"

var (
	// ErrNoCoefficients is returned when a constraint or objective is built
	// from an empty coefficient list.
	ErrNoCoefficients = errors.New("lp: coefficient list is empty")

	// ErrNonFinite is returned when a coefficient or right-hand side is NaN
	// or ±Inf. Finite values are required by the numeric policy.
	ErrNonFinite = errors.New("lp: NaN or Inf encountered")

	// ErrBadRelation is returned when a Relation outside {LessEq, GreaterEq,
	// Equal} is supplied.
	ErrBadRelation = errors.New("lp: unknown constraint relation")

	// ErrBadDirection is returned when a Direction outside {Minimize,
	// Maximize} is supplied.
	ErrBadDirection = errors.New("lp: unknown optimization direction")
)
