package simplex_test

import (
	"fmt"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/simplex"
)

// ExampleSolve walks the classic two-variable profit model through the
// solver and prints the report.
//
// Scenario:
//
//	maximize 2x1 + 5x2
//	s.t.     x1 + 2x2 <= 8
//	         x1 +  x2 <= 6
//	         x1 + 3x2 >= 3
//
// The ≥ row forces a phase-1 feasibility pass before the profit itself is
// optimized; the optimum sits at the vertex (0, 4).
func ExampleSolve() {
	obj, _ := lp.NewObjective([]float64{2, 5}, lp.Maximize)
	c1, _ := lp.NewConstraint([]float64{1, 2}, lp.LessEq, 8)
	c2, _ := lp.NewConstraint([]float64{1, 1}, lp.LessEq, 6)
	c3, _ := lp.NewConstraint([]float64{1, 3}, lp.GreaterEq, 3)

	sol, err := simplex.Solve(obj, []lp.Constraint{c1, c2, c3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("status=%s\n", sol.Status)
	fmt.Printf("value=%.2f\n", sol.Value)
	fmt.Printf("x=[%.2f %.2f]\n", sol.X[0], sol.X[1])
	fmt.Printf("pivots=%d\n", sol.Iterations)
	// Output:
	// status=optimal
	// value=20.00
	// x=[0.00 4.00]
	// pivots=2
}

// ExampleSolve_unbounded shows the unbounded terminal outcome: the
// objective can grow without limit, so no numeric solution is reported.
func ExampleSolve_unbounded() {
	obj, _ := lp.NewObjective([]float64{0, 1}, lp.Maximize)
	c, _ := lp.NewConstraint([]float64{1, -1}, lp.LessEq, 1)

	sol, err := simplex.Solve(obj, []lp.Constraint{c})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("status=%s\n", sol.Status)
	fmt.Printf("solution=%v\n", sol.X)
	// Output:
	// status=unbounded
	// solution=[]
}

// ExampleSolve_bland selects the anti-cycling pivot rule for a degenerate
// problem.
func ExampleSolve_bland() {
	obj, _ := lp.NewObjective([]float64{3, 2}, lp.Maximize)
	c1, _ := lp.NewConstraint([]float64{1, 1}, lp.LessEq, 4)
	c2, _ := lp.NewConstraint([]float64{1, 0}, lp.LessEq, 4)

	sol, err := simplex.Solve(obj, []lp.Constraint{c1, c2},
		simplex.WithPivotRule(simplex.Bland),
		simplex.WithoutHistory(),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("status=%s value=%.2f\n", sol.Status, sol.Value)
	// Output:
	// status=optimal value=12.00
}
