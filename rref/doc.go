// Package rref reduces matrices to reduced row echelon form (RREF) using
// Gauss–Jordan elimination with partial pivoting.
//
// It provides three operations on any matrix.Matrix:
//
//   - Reduce — returns a reduced copy plus the pivot column indices.
//
//   - ReduceInPlace — same reduction, mutating the argument.
//
//   - IsReduced — reports whether a matrix already satisfies the RREF
//     invariants under the configured tolerance.
//
// The reduced form satisfies, within tolerance:
//   - each nonzero row leads with an exact 1 (its pivot);
//   - every pivot column is zero in all other rows;
//   - pivots move strictly right as rows go down;
//   - all-zero rows sit below every nonzero row.
//
// Zero-row ordering is a consequence of the elimination order (rows holding
// usable pivots are consumed first), never a separate sorting step, and the
// reduction is idempotent: reducing an already reduced matrix returns it
// unchanged.
//
// Entries with magnitude ≤ eps are treated as zero during pivot selection
// (DefaultEpsilon when not overridden via WithEpsilon). Singular, non-square,
// rank-deficient and zero-size inputs are all valid and produce a well-formed
// result; the only rejected inputs are nil matrices and ragged row slices,
// and the latter are already screened out by matrix.FromRows.
//
// Complexity: O(rows · cols · min(rows, cols)) time, O(rows · cols) space for
// the copying variant, O(1) extra space in place.
//
// Use this package directly for the canonical form, or through linsys to
// classify and solve A·x = b systems.
package rref
