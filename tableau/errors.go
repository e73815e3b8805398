// Package tableau: sentinel error set.
// All public operations return these sentinels (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX)); callers match them via errors.Is.

package tableau

import "errors"

var (
	// ErrNoConstraints is returned when a tableau is requested for an empty
	// constraint set. The simplex package treats that case as a "no problem"
	// no-op before ever reaching the builder.
	ErrNoConstraints = errors.New("tableau: constraint set is empty")

	// ErrDimensionMismatch is returned when a constraint's coefficient count
	// differs from the objective's decision-variable count.
	ErrDimensionMismatch = errors.New("tableau: dimension mismatch")

	// ErrOutOfRange is returned by Pivot when the pivot coordinates fall
	// outside the constraint rows or the variable columns.
	ErrOutOfRange = errors.New("tableau: pivot position out of range")

	// ErrZeroPivot is returned by Pivot when the pivot element is zero and
	// the Gauss-Jordan step would divide by it.
	ErrZeroPivot = errors.New("tableau: zero pivot element")
)
