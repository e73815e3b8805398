// Package simplex: statuses, options, snapshots and the sentinel error set
// for the tableau simplex engine.
package simplex

import (
	"context"
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/tableau"
)

// Sentinel errors returned by Solve.
var (
	// ErrInfeasible is returned when phase 1 terminates with a positive sum
	// of artificial variables: no point satisfies every constraint.
	ErrInfeasible = errors.New("simplex: problem is infeasible")

	// ErrIterationLimit is returned when the engine needs more pivots than
	// Options.MaxIterations allows. It is the "did not converge" outcome
	// guarding against cycling on degenerate tableaus.
	ErrIterationLimit = errors.New("simplex: iteration limit reached")
)

// ErrDimensionMismatch is the tableau builder's sentinel, re-exported so
// callers of Solve can match malformed input without importing tableau.
var ErrDimensionMismatch = tableau.ErrDimensionMismatch

const (
	// DefaultMaxIterations bounds the total pivot count across both phases.
	DefaultMaxIterations = 1000

	// DefaultEps is the tolerance used for all floating-point comparisons:
	// entering-column negativity, ratio-test positivity, zero reduced costs.
	DefaultEps = 1e-9
)

// Status classifies a terminated solve.
type Status int

const (
	// StatusOptimal: a unique optimal basic feasible solution was reached.
	StatusOptimal Status = iota

	// StatusOptimalAlternatives: an optimum was reached and a non-basic
	// column has zero reduced cost, so the optimum is attained on a face
	// rather than a single vertex.
	StatusOptimalAlternatives

	// StatusUnbounded: an entering column had no positive ratio-test
	// candidate; the objective improves without limit and no numeric
	// solution exists.
	StatusUnbounded
)

// String returns a short human-readable status tag.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusOptimalAlternatives:
		return "optimal-with-alternatives"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "?"
	}
}

// PivotRule selects the entering/leaving variable strategy.
//
//   - Dantzig — most negative objective entry enters; smallest ratio leaves,
//     first-seen row on ties. Fast in practice, can cycle on degenerate
//     tableaus (hence MaxIterations).
//   - Bland — lowest-index negative objective entry enters; on ratio ties
//     the row whose basic variable has the lowest column index leaves.
//     Provably cycle-free.
type PivotRule int

const (
	// Dantzig is the classic most-negative-coefficient rule.
	Dantzig PivotRule = iota

	// Bland is the smallest-index anti-cycling rule.
	Bland
)

// String returns "dantzig" or "bland".
func (p PivotRule) String() string {
	switch p {
	case Dantzig:
		return "dantzig"
	case Bland:
		return "bland"
	default:
		return "?"
	}
}

// Snapshot is one post-pivot tableau, recorded in solve order. The initial
// pre-pivot tableau is not published.
type Snapshot struct {
	Phase    int        // 1 (feasibility search) or 2 (optimization)
	Entering int        // column brought into the basis by this pivot
	Leaving  int        // column driven out of the basis
	Basis    []int      // basis after the pivot (copy)
	Data     *mat.Dense // full tableau after the pivot (deep copy)
}

// Options configures a single Solve invocation.
//
//	Ctx           – checked once per iteration for cooperative cancellation.
//	Rule          – entering/leaving strategy (Dantzig or Bland).
//	MaxIterations – total pivot budget across both phases (> 0).
//	Eps           – floating-point comparison tolerance (> 0).
//	KeepHistory   – record a Snapshot after every pivot.
type Options struct {
	Ctx           context.Context
	Rule          PivotRule
	MaxIterations int
	Eps           float64
	KeepHistory   bool
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithContext installs a context checked at every iteration, bounding
// worst-case latency on adversarial inputs.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithPivotRule selects the pivot strategy. Use Bland when degenerate
// problems make Dantzig cycle.
func WithPivotRule(rule PivotRule) Option {
	return func(o *Options) {
		o.Rule = rule
	}
}

// WithMaxIterations caps the total pivot count. Must be positive; invalid
// values panic to signal a programming error at configuration time.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("simplex: MaxIterations must be positive")
		}
		o.MaxIterations = n
	}
}

// WithEps overrides the comparison tolerance. Must be positive; invalid
// values panic to signal a programming error at configuration time.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			panic("simplex: Eps must be positive")
		}
		o.Eps = eps
	}
}

// WithoutHistory disables snapshot recording; Solution.History is nil.
func WithoutHistory() Option {
	return func(o *Options) {
		o.KeepHistory = false
	}
}

// DefaultOptions returns the production defaults: background context,
// Dantzig rule, DefaultMaxIterations, DefaultEps, history on.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Rule:          Dantzig,
		MaxIterations: DefaultMaxIterations,
		Eps:           DefaultEps,
		KeepHistory:   true,
	}
}

// Solution is the report of one Solve invocation.
type Solution struct {
	// Status tags the terminal outcome.
	Status Status

	// Value is the optimal objective value. It is meaningless when Status
	// is StatusUnbounded.
	Value float64

	// X is the decision-variable vector (length = number of decision
	// variables, 0 for non-basic variables). nil when unbounded.
	X []float64

	// Iterations counts pivots performed across both phases.
	Iterations int

	// History holds one post-pivot Snapshot per pivot, in order. nil when
	// WithoutHistory() is set.
	History []Snapshot
}
