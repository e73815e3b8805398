// Package linprog is a small, inspectable toolkit for solving linear
// programs with the tableau simplex method.
//
// 🚀 What is linprog?
//
//	A library that takes an objective function and a set of linear
//	constraints and walks them through the classic Builder → Pivot →
//	Extractor pipeline:
//		• lp/      — immutable problem primitives: Objective, Constraint,
//		             relations (≤, ≥, =) and optimization directions
//		• tableau/ — the augmented simplex tableau: slack/surplus/artificial
//		             padding, basis bookkeeping and the Gauss-Jordan pivot
//		• simplex/ — the iteration engine: Dantzig or Bland pivot rules,
//		             two-phase handling of ≥/= rows, unbounded and
//		             alternate-optima detection, full tableau history
//		• logger/  — zerolog-backed tracing of every pivot step
//
// ✨ Why choose linprog?
//
//   - Deterministic – identical inputs produce identical pivot histories
//   - Inspectable – every intermediate tableau is recorded for review
//   - Safe – sentinel errors for malformed input, iteration caps against
//     cycling, cooperative context cancellation
//   - Pure Go numerics on gonum dense matrices – no cgo, no external solver
//
// Quick start:
//
//	obj, _ := lp.NewObjective([]float64{2, 5}, lp.Maximize)
//	c1, _ := lp.NewConstraint([]float64{1, 2}, lp.LessEq, 8)
//	c2, _ := lp.NewConstraint([]float64{1, 1}, lp.LessEq, 6)
//
//	sol, err := simplex.Solve(obj, []lp.Constraint{c1, c2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sol.Status, sol.Value, sol.X)
//
// Dive into the simplex package documentation for the full option surface
// and the tableau package for the underlying matrix mechanics.
//
//	go get github.com/katalvlaran/linprog
package linprog
