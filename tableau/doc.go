// Package tableau builds and mutates the augmented matrix at the heart of
// the simplex method.
//
// A Tableau holds, in one dense gonum matrix:
//
//   - one row per constraint plus a trailing objective row,
//   - one column per decision variable, one slack/surplus column per
//     constraint (+1 for ≤ rows, −1 for ≥ rows, all-zero for = rows), one
//     artificial column per ≥/= row, and a trailing right-hand-side column,
//
// together with a basis vector mapping each constraint row to the column of
// the variable currently basic in that row.
//
// Rows whose right-hand side is negative are multiplied by −1 (flipping the
// relation) during construction, so the initial basis of slack and
// artificial columns is always feasible.
//
// The only mutators are Pivot — a Gauss-Jordan step that re-establishes the
// canonical-form invariant (each basic column holds a single 1 in its own
// row and 0 elsewhere) — and the two objective loaders used by the phases of
// the simplex engine. Everything else is read-only; Clone and Matrix return
// deep copies.
//
// Complexity: construction O(M·(N+M)), Pivot O(M·(N+M)) per call.
package tableau
