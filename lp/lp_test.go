package lp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linprog/lp"
)

// TestNewConstraint_Valid verifies a well-formed row round-trips through the
// accessors.
func TestNewConstraint_Valid(t *testing.T) {
	c, err := lp.NewConstraint([]float64{1, 2}, lp.LessEq, 8)
	require.NoError(t, err)

	assert.Equal(t, 2, c.NumVars())
	assert.Equal(t, 1.0, c.Coefficient(0))
	assert.Equal(t, 2.0, c.Coefficient(1))
	assert.Equal(t, []float64{1, 2}, c.Coefficients())
	assert.Equal(t, lp.LessEq, c.Relation())
	assert.Equal(t, 8.0, c.RHS())
}

// TestNewConstraint_Empty verifies empty coefficient lists are rejected.
func TestNewConstraint_Empty(t *testing.T) {
	_, err := lp.NewConstraint(nil, lp.LessEq, 0)
	assert.ErrorIs(t, err, lp.ErrNoCoefficients)
}

// TestNewConstraint_BadRelation verifies unknown relations are rejected.
func TestNewConstraint_BadRelation(t *testing.T) {
	_, err := lp.NewConstraint([]float64{1}, lp.Relation(42), 0)
	assert.ErrorIs(t, err, lp.ErrBadRelation)
}

// TestNewConstraint_NonFinite verifies NaN/Inf coefficients and right-hand
// sides are rejected at construction time.
func TestNewConstraint_NonFinite(t *testing.T) {
	_, err := lp.NewConstraint([]float64{1, math.NaN()}, lp.LessEq, 0)
	assert.ErrorIs(t, err, lp.ErrNonFinite, "NaN coefficient must error")

	_, err = lp.NewConstraint([]float64{1, math.Inf(1)}, lp.GreaterEq, 0)
	assert.ErrorIs(t, err, lp.ErrNonFinite, "+Inf coefficient must error")

	_, err = lp.NewConstraint([]float64{1}, lp.Equal, math.Inf(-1))
	assert.ErrorIs(t, err, lp.ErrNonFinite, "-Inf right-hand side must error")
}

// TestConstraint_Immutable verifies the constructor copies its input and the
// accessors copy their output.
func TestConstraint_Immutable(t *testing.T) {
	in := []float64{1, 2, 3}
	c, err := lp.NewConstraint(in, lp.Equal, 5)
	require.NoError(t, err)

	in[0] = 99
	assert.Equal(t, 1.0, c.Coefficient(0), "mutating the input must not reach the constraint")

	out := c.Coefficients()
	out[1] = 99
	assert.Equal(t, 2.0, c.Coefficient(1), "mutating an accessor copy must not reach the constraint")
}

// TestConstraint_CoefficientOutOfRange verifies out-of-range reads yield 0.
func TestConstraint_CoefficientOutOfRange(t *testing.T) {
	c, err := lp.NewConstraint([]float64{7}, lp.LessEq, 1)
	require.NoError(t, err)

	assert.Equal(t, 0.0, c.Coefficient(-1))
	assert.Equal(t, 0.0, c.Coefficient(1))
}

// TestNewObjective_Valid verifies a well-formed objective round-trips.
func TestNewObjective_Valid(t *testing.T) {
	o, err := lp.NewObjective([]float64{2, 5}, lp.Maximize)
	require.NoError(t, err)

	assert.Equal(t, 2, o.NumVars())
	assert.Equal(t, []float64{2, 5}, o.Coefficients())
	assert.Equal(t, lp.Maximize, o.Direction())
}

// TestNewObjective_Invalid exercises the objective validation order.
func TestNewObjective_Invalid(t *testing.T) {
	_, err := lp.NewObjective(nil, lp.Minimize)
	assert.ErrorIs(t, err, lp.ErrNoCoefficients)

	_, err = lp.NewObjective([]float64{1}, lp.Direction(7))
	assert.ErrorIs(t, err, lp.ErrBadDirection)

	_, err = lp.NewObjective([]float64{math.NaN()}, lp.Minimize)
	assert.ErrorIs(t, err, lp.ErrNonFinite)
}

// TestStringers pins the human-readable spellings used in logs and debug
// output.
func TestStringers(t *testing.T) {
	assert.Equal(t, "<=", lp.LessEq.String())
	assert.Equal(t, ">=", lp.GreaterEq.String())
	assert.Equal(t, "=", lp.Equal.String())
	assert.Equal(t, "?", lp.Relation(9).String())

	assert.Equal(t, "minimize", lp.Minimize.String())
	assert.Equal(t, "maximize", lp.Maximize.String())
	assert.Equal(t, "?", lp.Direction(9).String())

	c, err := lp.NewConstraint([]float64{1, 2}, lp.LessEq, 8)
	require.NoError(t, err)
	assert.Equal(t, "[1 2] <= 8", c.String())

	o, err := lp.NewObjective([]float64{2, 5}, lp.Maximize)
	require.NoError(t, err)
	assert.Equal(t, "maximize [2 5]", o.String())
}
