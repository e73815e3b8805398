// Package lp: domain enumerations used across problem definitions.
package lp

// Relation classifies how a constraint row compares its left-hand side
// against its right-hand side.
type Relation int

const (
	// LessEq is the ≤ relation; the builder pads it with a +1 slack column.
	LessEq Relation = iota

	// GreaterEq is the ≥ relation; the builder pads it with a −1 surplus
	// column and an artificial variable for the phase-1 start.
	GreaterEq

	// Equal is the = relation; no slack, artificial variable only.
	Equal
)

// String returns the conventional ASCII spelling of the relation.
func (r Relation) String() string {
	switch r {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Equal:
		return "="
	default:
		return "?"
	}
}

// valid reports whether r is one of the three known relations.
func (r Relation) valid() bool {
	return r == LessEq || r == GreaterEq || r == Equal
}

// Direction selects whether the objective is minimized or maximized.
type Direction int

const (
	// Minimize seeks the smallest objective value.
	Minimize Direction = iota

	// Maximize seeks the largest objective value.
	Maximize
)

// String returns "minimize" or "maximize".
func (d Direction) String() string {
	switch d {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return "?"
	}
}

// valid reports whether d is a known direction.
func (d Direction) valid() bool {
	return d == Minimize || d == Maximize
}
