package tableau

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/lp"
)

// Tableau is the augmented simplex matrix plus basis bookkeeping.
//
// Shape: (nCons+1) × (nVars+nCons+nArt+1). The last row is the objective
// row, the last column the right-hand side. Column blocks, left to right:
// decision variables, slack/surplus (one per constraint, positionally), then
// artificial columns for ≥/= rows.
//
// The zero value is not usable; build a Tableau with New.
type Tableau struct {
	m     *mat.Dense // dense backing matrix, row-major
	basis []int      // basis[i] = column basic in constraint row i
	nVars int        // decision variables (N)
	nCons int        // constraints (M)
	nArt  int        // artificial variables (A)

	// phase-2 objective, retained so LoadObjective can reinstall it after
	// phase 1 rewrites the objective row.
	objCoeffs []float64
	objDir    lp.Direction
}

// New builds the initial tableau and basis for the given problem.
//
// Stage 1 (Validate): at least one constraint; every constraint as wide as
// the objective.
// Stage 2 (Normalize): rows with negative right-hand sides are multiplied by
// −1 and their relation flipped, so all right-hand sides are non-negative.
// Stage 3 (Assemble): decision block, slack/surplus block (+1 for ≤, −1 for
// ≥, none for =), artificial block for ≥/= rows, right-hand-side column,
// initial basis, and the canonical phase-2 objective row.
//
// Complexity: O(M·(N+M+A)) time and memory.
func New(obj lp.Objective, cons []lp.Constraint) (*Tableau, error) {
	if len(cons) == 0 {
		return nil, ErrNoConstraints
	}

	nVars := obj.NumVars()
	for i, c := range cons {
		if c.NumVars() != nVars {
			return nil, fmt.Errorf("constraint %d has %d coefficients, objective has %d: %w",
				i, c.NumVars(), nVars, ErrDimensionMismatch)
		}
	}

	nCons := len(cons)

	// Count artificial columns after normalization: one per ≥ or = row.
	nArt := 0
	for _, c := range cons {
		if normalizedRelation(c) != lp.LessEq {
			nArt++
		}
	}

	cols := nVars + nCons + nArt + 1
	t := &Tableau{
		m:         mat.NewDense(nCons+1, cols, nil),
		basis:     make([]int, nCons),
		nVars:     nVars,
		nCons:     nCons,
		nArt:      nArt,
		objCoeffs: obj.Coefficients(),
		objDir:    obj.Direction(),
	}

	art := 0
	for i, c := range cons {
		coeffs, rel, rhs := c.Coefficients(), c.Relation(), c.RHS()
		if rhs < 0 {
			for j := range coeffs {
				coeffs[j] = -coeffs[j]
			}
			rhs = -rhs
			rel = flip(rel)
		}

		for j, v := range coeffs {
			t.m.Set(i, j, v)
		}
		t.m.Set(i, t.rhsCol(), rhs)

		switch rel {
		case lp.LessEq:
			t.m.Set(i, nVars+i, 1)
			t.basis[i] = nVars + i
		case lp.GreaterEq:
			t.m.Set(i, nVars+i, -1)
			t.m.Set(i, nVars+nCons+art, 1)
			t.basis[i] = nVars + nCons + art
			art++
		case lp.Equal:
			t.m.Set(i, nVars+nCons+art, 1)
			t.basis[i] = nVars + nCons + art
			art++
		}
	}

	t.LoadObjective()

	return t, nil
}

// normalizedRelation returns the relation of c after sign normalization.
func normalizedRelation(c lp.Constraint) lp.Relation {
	if c.RHS() < 0 {
		return flip(c.Relation())
	}

	return c.Relation()
}

// flip mirrors a relation across a multiplication by −1.
func flip(r lp.Relation) lp.Relation {
	switch r {
	case lp.LessEq:
		return lp.GreaterEq
	case lp.GreaterEq:
		return lp.LessEq
	default:
		return r
	}
}

// Rows returns the total row count, objective row included.
func (t *Tableau) Rows() int { return t.nCons + 1 }

// Cols returns the total column count, right-hand side included.
func (t *Tableau) Cols() int { return t.nVars + t.nCons + t.nArt + 1 }

// NumVars returns the number of decision variables (N).
func (t *Tableau) NumVars() int { return t.nVars }

// NumConstraints returns the number of constraint rows (M).
func (t *Tableau) NumConstraints() int { return t.nCons }

// NumArtificials returns the number of artificial columns (A).
func (t *Tableau) NumArtificials() int { return t.nArt }

// IsArtificial reports whether column j belongs to the artificial block.
func (t *Tableau) IsArtificial(j int) bool {
	return j >= t.nVars+t.nCons && j < t.nVars+t.nCons+t.nArt
}

// At returns the entry at (i, j). Like gonum's mat.Dense it panics when the
// indices are out of range; use Rows/Cols to stay in bounds.
func (t *Tableau) At(i, j int) float64 { return t.m.At(i, j) }

// RHS returns the right-hand side of constraint row i.
func (t *Tableau) RHS(i int) float64 { return t.m.At(i, t.rhsCol()) }

// Objective returns the objective-row entry in column j.
func (t *Tableau) Objective(j int) float64 { return t.m.At(t.objRow(), j) }

// ObjectiveValue returns the right-hand side of the objective row.
func (t *Tableau) ObjectiveValue() float64 { return t.m.At(t.objRow(), t.rhsCol()) }

// BasicVar returns the column currently basic in constraint row i.
func (t *Tableau) BasicVar(i int) int { return t.basis[i] }

// Basis returns a copy of the basis vector.
func (t *Tableau) Basis() []int {
	cp := make([]int, len(t.basis))
	copy(cp, t.basis)

	return cp
}

// Matrix returns a deep copy of the backing matrix, suitable for history
// snapshots and external inspection.
func (t *Tableau) Matrix() *mat.Dense { return mat.DenseCopyOf(t.m) }

// Clone returns an independent deep copy of the tableau.
func (t *Tableau) Clone() *Tableau {
	cp := *t
	cp.m = mat.DenseCopyOf(t.m)
	cp.basis = t.Basis()
	cp.objCoeffs = make([]float64, len(t.objCoeffs))
	copy(cp.objCoeffs, t.objCoeffs)

	return &cp
}

// objRow returns the index of the objective row.
func (t *Tableau) objRow() int { return t.nCons }

// rhsCol returns the index of the right-hand-side column.
func (t *Tableau) rhsCol() int { return t.nVars + t.nCons + t.nArt }

// Pivot performs one Gauss-Jordan step on (row, col): the pivot row is
// scaled so the pivot entry becomes exactly 1, the pivot column is
// eliminated from every other row (objective row included), and the basis is
// updated so col is basic in row.
//
// Postcondition: tableau[row][col] == 1 and the pivot column is zero
// everywhere else — the canonical-form invariant.
//
// Errors: ErrOutOfRange when row is not a constraint row or col is not a
// variable column; ErrZeroPivot when the pivot element is zero.
//
// Complexity: O(rows·cols).
func (t *Tableau) Pivot(row, col int) error {
	if row < 0 || row >= t.nCons || col < 0 || col >= t.rhsCol() {
		return fmt.Errorf("pivot (%d,%d): %w", row, col, ErrOutOfRange)
	}
	p := t.m.At(row, col)
	if p == 0 {
		return fmt.Errorf("pivot (%d,%d): %w", row, col, ErrZeroPivot)
	}

	cols := t.Cols()

	// Scale the pivot row so the pivot entry becomes exactly 1.
	for j := 0; j < cols; j++ {
		t.m.Set(row, j, t.m.At(row, j)/p)
	}
	t.m.Set(row, col, 1)

	// Eliminate the pivot column from every other row.
	for i := 0; i < t.Rows(); i++ {
		if i == row {
			continue
		}
		f := t.m.At(i, col)
		if f == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			t.m.Set(i, j, t.m.At(i, j)-f*t.m.At(row, j))
		}
		t.m.Set(i, col, 0)
	}

	t.basis[row] = col

	return nil
}

// LoadObjective installs the phase-2 objective row: negated coefficients for
// a maximization (the engine always drives objective-row entries toward
// non-negative, i.e. maximizes), raw coefficients for a minimization
// (internally the maximum of the negated objective), zero slack and
// artificial entries, zero right-hand side — then canonicalizes the row
// against the current basis so basic columns read 0.
//
// Complexity: O(M·cols).
func (t *Tableau) LoadObjective() {
	or := t.objRow()
	for j := 0; j < t.Cols(); j++ {
		t.m.Set(or, j, 0)
	}
	for j, c := range t.objCoeffs {
		if t.objDir == lp.Maximize {
			t.m.Set(or, j, -c)
		} else {
			t.m.Set(or, j, c)
		}
	}

	t.canonicalizeObjective()
}

// LoadPhaseOneObjective installs the phase-1 infeasibility objective:
// maximize −Σ artificials, i.e. +1 in every artificial column, then
// canonicalizes against the current basis (which holds the artificials).
// At the phase-1 optimum the objective-row right-hand side equals
// −Σ artificials, so 0 certifies feasibility.
//
// Complexity: O(M·cols).
func (t *Tableau) LoadPhaseOneObjective() {
	or := t.objRow()
	for j := 0; j < t.Cols(); j++ {
		t.m.Set(or, j, 0)
	}
	for j := t.nVars + t.nCons; j < t.nVars+t.nCons+t.nArt; j++ {
		t.m.Set(or, j, 1)
	}

	t.canonicalizeObjective()
}

// canonicalizeObjective zeroes the objective-row entries of all basic
// columns by subtracting multiples of the constraint rows, restoring the
// canonical-form invariant for the freshly installed row.
func (t *Tableau) canonicalizeObjective() {
	or := t.objRow()
	cols := t.Cols()
	for i := 0; i < t.nCons; i++ {
		f := t.m.At(or, t.basis[i])
		if f == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			t.m.Set(or, j, t.m.At(or, j)-f*t.m.At(i, j))
		}
		t.m.Set(or, t.basis[i], 0)
	}
}
