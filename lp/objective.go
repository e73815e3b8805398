package lp

import (
	"fmt"
	"math"
)

// Objective is the linear function being optimized:
//
//	(minimize | maximize)  coeffs · x
//
// Like Constraint, an Objective is immutable once built.
type Objective struct {
	coeffs []float64
	dir    Direction
}

// NewObjective builds an objective from its coefficients and direction.
//
// Validation (in order):
//  1. coeffs must be non-empty (ErrNoCoefficients).
//  2. dir must be Minimize or Maximize (ErrBadDirection).
//  3. every coefficient must be finite (ErrNonFinite).
//
// Complexity: O(n) time and memory for the defensive copy.
func NewObjective(coeffs []float64, dir Direction) (Objective, error) {
	if len(coeffs) == 0 {
		return Objective{}, ErrNoCoefficients
	}
	if !dir.valid() {
		return Objective{}, fmt.Errorf("direction %d: %w", int(dir), ErrBadDirection)
	}
	for j, v := range coeffs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Objective{}, fmt.Errorf("coefficient %d: %w", j, ErrNonFinite)
		}
	}

	cp := make([]float64, len(coeffs))
	copy(cp, coeffs)

	return Objective{coeffs: cp, dir: dir}, nil
}

// NumVars returns the number of decision variables the objective spans.
func (o Objective) NumVars() int { return len(o.coeffs) }

// Coefficient returns the objective coefficient of decision variable j.
// Out-of-range indices read as 0.
func (o Objective) Coefficient(j int) float64 {
	if j < 0 || j >= len(o.coeffs) {
		return 0
	}

	return o.coeffs[j]
}

// Coefficients returns a copy of the coefficient vector.
func (o Objective) Coefficients() []float64 {
	cp := make([]float64, len(o.coeffs))
	copy(cp, o.coeffs)

	return cp
}

// Direction returns whether the objective is minimized or maximized.
func (o Objective) Direction() Direction { return o.dir }

// String renders the objective for debugging, e.g. "maximize [2 5]".
func (o Objective) String() string {
	return fmt.Sprintf("%s %v", o.dir, o.coeffs)
}
