// Package lp defines the immutable problem primitives shared by the
// tableau and simplex packages: an Objective (coefficients + optimization
// direction) and Constraints (coefficients, relation, right-hand side).
//
// All values are built through validating constructors that take defensive
// copies, so a problem definition can be shared between solver invocations
// without any risk of aliasing. NaN and ±Inf coefficients are rejected at
// construction time; the solver never has to re-check them.
//
// See the simplex package for the solve entry point.
package lp
