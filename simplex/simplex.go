// Package simplex implements the tableau simplex method for linear programs:
// build the augmented tableau, pivot until terminal, extract the report.
//
// Pipeline (one Solve call):
//
//  1. Builder — tableau.New pads the constraints with slack/surplus columns,
//     adds artificial columns for ≥/= rows and installs the objective row.
//  2. Pivot Engine — repeatedly picks an entering column (Dantzig or Bland),
//     runs the minimum-ratio test for the leaving row, performs the
//     Gauss-Jordan pivot and snapshots the tableau. Problems that need them
//     get a phase-1 pass first (maximize −Σ artificials) before the real
//     objective is optimized.
//  3. Extractor — reads the terminal tableau and basis into a Solution:
//     decision-variable values, objective value, unboundedness or
//     alternate-optima flags.
//
// Complexity: O(M·(N+M)) per pivot; the pivot count is bounded by
// Options.MaxIterations. A single Solve runs to completion on the calling
// goroutine; every invocation owns its tableau and history, so concurrent
// solves never share state.
package simplex

import (
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/linprog/logger"
	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/tableau"
)

// Solve optimizes obj subject to cons and returns the report plus the
// ordered pivot history.
//
// Terminal outcomes:
//
//   - StatusOptimal / StatusOptimalAlternatives — Value and X are set.
//   - StatusUnbounded — no numeric solution; Value is meaningless, X nil.
//
// Errors:
//
//   - (nil, nil) for an empty constraint set — the deliberate "no problem"
//     no-op; callers must check for it explicitly.
//   - ErrDimensionMismatch for constraint rows narrower or wider than the
//     objective.
//   - ErrInfeasible when phase 1 proves no feasible point exists.
//   - ErrIterationLimit when the pivot budget is exhausted (cycling guard).
//   - The context's error when Options.Ctx is canceled mid-solve.
//
// Determinism: identical inputs and options produce identical histories and
// reports.
func Solve(obj lp.Objective, cons []lp.Constraint, opts ...Option) (*Solution, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Empty constraint set: nothing to solve, nothing to report.
	if len(cons) == 0 {
		return nil, nil
	}

	t, err := tableau.New(obj, cons)
	if err != nil {
		return nil, fmt.Errorf("simplex: %w", err)
	}

	r := &runner{
		t:   t,
		cfg: cfg,
		dir: obj.Direction(),
		log: logger.Logger().With().Str("component", "simplex").Logger(),
	}

	return r.run()
}

// runner holds the mutable state of a single Solve invocation.
type runner struct {
	t       *tableau.Tableau
	cfg     Options
	dir     lp.Direction
	log     zerolog.Logger
	history []Snapshot
	iters   int
}

// run orchestrates the phases and builds the final Solution.
func (r *runner) run() (*Solution, error) {
	// Phase 1: only when the builder had to introduce artificial variables
	// (any ≥ or = row). All-≤ problems start from a feasible slack basis and
	// go straight to phase 2.
	if r.t.NumArtificials() > 0 {
		if err := r.phaseOne(); err != nil {
			return nil, err
		}
		r.t.LoadObjective()
	}

	status, err := r.iterate(2)
	if err != nil {
		return nil, err
	}

	if status == StatusUnbounded {
		return &Solution{
			Status:     StatusUnbounded,
			Iterations: r.iters,
			History:    r.history,
		}, nil
	}

	return r.extract(), nil
}

// phaseOne drives the sum of artificial variables to zero, proving
// feasibility and leaving a feasible basis for phase 2.
func (r *runner) phaseOne() error {
	r.t.LoadPhaseOneObjective()

	status, err := r.iterate(1)
	if err != nil {
		return err
	}
	// Phase 1 maximizes −Σ artificials, which is bounded above by 0, so an
	// unbounded report here means the tableau lost feasibility numerically.
	if status == StatusUnbounded {
		return fmt.Errorf("simplex: phase 1 diverged: %w", ErrInfeasible)
	}

	// Residual infeasibility: some artificial is still positive.
	if resid := -r.t.ObjectiveValue(); resid > r.cfg.Eps {
		return fmt.Errorf("simplex: residual infeasibility %g: %w", resid, ErrInfeasible)
	}

	r.driveOutArtificials()

	return nil
}

// driveOutArtificials pivots degenerate artificial variables (basic at zero)
// out of the basis wherever a non-artificial column offers a usable pivot.
// A row with no such column is linearly dependent; its artificial stays
// basic at zero and, being excluded from entering scans, never moves again.
func (r *runner) driveOutArtificials() {
	nonArt := r.t.NumVars() + r.t.NumConstraints()
	for i := 0; i < r.t.NumConstraints(); i++ {
		if !r.t.IsArtificial(r.t.BasicVar(i)) {
			continue
		}
		for j := 0; j < nonArt; j++ {
			if scalar.EqualWithinAbs(r.t.At(i, j), 0, r.cfg.Eps) {
				continue
			}
			leaving := r.t.BasicVar(i)
			if err := r.t.Pivot(i, j); err != nil {
				continue
			}
			r.iters++
			r.record(1, j, leaving)

			break
		}
	}
}

// iterate runs the entering/ratio/pivot loop until a terminal outcome.
func (r *runner) iterate(phase int) (Status, error) {
	for {
		// Cooperative cancellation, checked once per iteration.
		if err := r.cfg.Ctx.Err(); err != nil {
			return 0, fmt.Errorf("simplex: %w", err)
		}

		col := r.enteringColumn()
		if col < 0 {
			return StatusOptimal, nil
		}

		if r.iters >= r.cfg.MaxIterations {
			return 0, fmt.Errorf("simplex: %d pivots: %w", r.iters, ErrIterationLimit)
		}

		row := r.leavingRow(col)
		if row < 0 {
			r.log.Debug().Int("phase", phase).Int("entering", col).
				Msg("entering column has no positive ratio candidate: unbounded")

			return StatusUnbounded, nil
		}

		leaving := r.t.BasicVar(row)
		if err := r.t.Pivot(row, col); err != nil {
			// Unreachable: the ratio test only selects entries > Eps.
			return 0, fmt.Errorf("simplex: %w", err)
		}
		r.iters++
		r.record(phase, col, leaving)

		r.log.Debug().
			Int("phase", phase).
			Int("iteration", r.iters).
			Int("entering", col).
			Int("leaving", leaving).
			Float64("objective", r.t.ObjectiveValue()).
			Msg("pivot")
	}
}

// enteringColumn scans the objective row over decision and slack columns
// (artificials never re-enter) for a negative entry.
//
// Dantzig: most negative entry, first index on ties (stable scan).
// Bland:   lowest index with a negative entry.
//
// Returns -1 when no entry is below -Eps: the tableau is optimal.
func (r *runner) enteringColumn() int {
	limit := r.t.NumVars() + r.t.NumConstraints()

	best, bestCol := -r.cfg.Eps, -1
	for j := 0; j < limit; j++ {
		v := r.t.Objective(j)
		if v >= -r.cfg.Eps {
			continue
		}
		if r.cfg.Rule == Bland {
			return j
		}
		if v < best {
			best, bestCol = v, j
		}
	}

	return bestCol
}

// leavingRow runs the minimum-ratio test on the entering column: among
// constraint rows with entry > Eps, pick the smallest RHS/entry.
//
// Ties: first-seen row under Dantzig; under Bland, the row whose basic
// variable has the lowest column index.
//
// Returns -1 when no row qualifies: the problem is unbounded along col.
func (r *runner) leavingRow(col int) int {
	bestRow := -1
	var bestRatio float64

	for i := 0; i < r.t.NumConstraints(); i++ {
		entry := r.t.At(i, col)
		if entry <= r.cfg.Eps {
			continue
		}
		rhs := r.t.RHS(i)
		if rhs < 0 && rhs > -r.cfg.Eps {
			rhs = 0 // clamp float dust so degenerate rows stay eligible
		}
		ratio := rhs / entry

		switch {
		case bestRow < 0 || ratio < bestRatio-r.cfg.Eps:
			bestRow, bestRatio = i, ratio
		case r.cfg.Rule == Bland && scalar.EqualWithinAbs(ratio, bestRatio, r.cfg.Eps) &&
			r.t.BasicVar(i) < r.t.BasicVar(bestRow):
			bestRow, bestRatio = i, ratio
		}
	}

	return bestRow
}

// record appends a post-pivot snapshot unless history is disabled.
func (r *runner) record(phase, entering, leaving int) {
	if !r.cfg.KeepHistory {
		return
	}
	r.history = append(r.history, Snapshot{
		Phase:    phase,
		Entering: entering,
		Leaving:  leaving,
		Basis:    r.t.Basis(),
		Data:     r.t.Matrix(),
	})
}

// extract reads the terminal tableau into a Solution.
func (r *runner) extract() *Solution {
	t, eps := r.t, r.cfg.Eps

	// Solution vector: zero for non-basic variables, RHS for basic ones.
	x := make([]float64, t.NumVars())
	basic := make(map[int]bool, t.NumConstraints())
	for i := 0; i < t.NumConstraints(); i++ {
		b := t.BasicVar(i)
		basic[b] = true
		if b < t.NumVars() {
			v := t.RHS(i)
			if v < 0 && v > -eps {
				v = 0
			}
			x[b] = v
		}
	}

	// Objective value: the internal row always maximizes, so a minimization
	// reads back negated.
	value := t.ObjectiveValue()
	if r.dir == lp.Minimize {
		value = -value
	}

	// Alternative optima: zero reduced cost on a non-basic, non-artificial
	// column. All-zero columns (the placeholder slack of = rows) are not
	// variables and do not count.
	status := StatusOptimal
	limit := t.NumVars() + t.NumConstraints()
	for j := 0; j < limit; j++ {
		if basic[j] || !scalar.EqualWithinAbs(t.Objective(j), 0, eps) {
			continue
		}
		if r.columnIsZero(j) {
			continue
		}
		status = StatusOptimalAlternatives

		break
	}

	return &Solution{
		Status:     status,
		Value:      value,
		X:          x,
		Iterations: r.iters,
		History:    r.history,
	}
}

// columnIsZero reports whether column j is zero in every constraint row.
func (r *runner) columnIsZero(j int) bool {
	for i := 0; i < r.t.NumConstraints(); i++ {
		if !scalar.EqualWithinAbs(r.t.At(i, j), 0, r.cfg.Eps) {
			return false
		}
	}

	return true
}
