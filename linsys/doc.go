// Package linsys classifies and solves linear systems A·x = b through the
// reduced row echelon form of the augmented matrix [A|b].
//
// Entry points:
//
//   - Classify — reduces [A|b] and reports the full picture: solution Kind
//     (Unique, None, Infinite), rank, pivot columns, free variables, the
//     unique solution vector when one exists and the reduced matrix itself.
//
//   - Solve — convenience for callers holding A and b separately: augments,
//     classifies and returns the unique solution or a sentinel
//     (ErrInconsistent, ErrUnderdetermined).
//
//   - SolveAugmented — the same surface for callers that already hold [A|b].
//
// The classification rules, read off the reduced matrix:
//   - a pivot in the last (augmented) column means no solution: the system
//     contains a row equivalent to 0 = 1;
//   - otherwise, rank equal to the number of unknowns means exactly one
//     solution, read directly from the last column;
//   - otherwise the system is consistent with free variables, one per
//     pivot-free coefficient column: infinitely many solutions.
//
// Singular, rank-deficient and equation-free systems are classifications,
// not failures; the only rejected inputs are nil matrices, augmented
// matrices with fewer than two columns, and mismatched A/b shapes.
//
// The tolerance policy follows the rref package: entries within eps of zero
// are treated as zero (DefaultEpsilon, override per call via WithEpsilon).
//
// Complexity is dominated by the reduction: O(rows · cols · min(rows, cols)).
package linsys
