package lp

import (
	"fmt"
	"math"
)

// Constraint is one linear inequality or equality row:
//
//	coeffs · x  (relation)  rhs
//
// A Constraint is immutable once built: the constructor copies the
// coefficient slice and every accessor returns a copy or a scalar.
type Constraint struct {
	coeffs []float64
	rel    Relation
	rhs    float64
}

// NewConstraint builds a constraint row from its coefficients, relation and
// right-hand side.
//
// Validation (in order):
//  1. coeffs must be non-empty (ErrNoCoefficients).
//  2. rel must be LessEq, GreaterEq or Equal (ErrBadRelation).
//  3. every coefficient and rhs must be finite (ErrNonFinite).
//
// Complexity: O(n) time and memory for the defensive copy.
func NewConstraint(coeffs []float64, rel Relation, rhs float64) (Constraint, error) {
	if len(coeffs) == 0 {
		return Constraint{}, ErrNoCoefficients
	}
	if !rel.valid() {
		return Constraint{}, fmt.Errorf("relation %d: %w", int(rel), ErrBadRelation)
	}
	for j, v := range coeffs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Constraint{}, fmt.Errorf("coefficient %d: %w", j, ErrNonFinite)
		}
	}
	if math.IsNaN(rhs) || math.IsInf(rhs, 0) {
		return Constraint{}, fmt.Errorf("right-hand side: %w", ErrNonFinite)
	}

	cp := make([]float64, len(coeffs))
	copy(cp, coeffs)

	return Constraint{coeffs: cp, rel: rel, rhs: rhs}, nil
}

// NumVars returns the number of decision-variable coefficients.
func (c Constraint) NumVars() int { return len(c.coeffs) }

// Coefficient returns the coefficient of decision variable j.
// Out-of-range indices read as 0, matching a variable absent from the row.
func (c Constraint) Coefficient(j int) float64 {
	if j < 0 || j >= len(c.coeffs) {
		return 0
	}

	return c.coeffs[j]
}

// Coefficients returns a copy of the full coefficient row.
func (c Constraint) Coefficients() []float64 {
	cp := make([]float64, len(c.coeffs))
	copy(cp, c.coeffs)

	return cp
}

// Relation returns the row's comparison relation.
func (c Constraint) Relation() Relation { return c.rel }

// RHS returns the right-hand-side scalar.
func (c Constraint) RHS() float64 { return c.rhs }

// String renders the row for debugging, e.g. "[1 2] <= 8".
func (c Constraint) String() string {
	return fmt.Sprintf("%v %s %g", c.coeffs, c.rel, c.rhs)
}
