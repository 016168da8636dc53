// SPDX-License-Identifier: MIT
// Package linsys - convenience solvers on top of Classify.
//
// Two shapes of the same operation:
//
//   - Solve: caller holds A and b separately; the augmented matrix is
//     built here via matrix.Augment.
//   - SolveAugmented: caller already holds [A|b].
//
// Both return the unique solution vector or a strict sentinel describing
// why none exists.

package linsys

import "github.com/katalvlaran/linsolve/matrix"

// Operation name constants for unified error wrapping.
const (
	opSolve          = "Solve"
	opSolveAugmented = "SolveAugmented"
)

// Solve builds [A|b], classifies it, and returns the unique solution.
//
// Implementation:
//   - Stage 1: matrix.Augment(a, b) validates shapes and builds [A|b].
//   - Stage 2: delegate to the shared classify-and-extract path.
//
// Inputs:
//   - a: coefficient matrix, shape r × n with n ≥ 1.
//   - b: right-hand side, len(b) == r.
//   - opts: WithEpsilon to override DefaultEpsilon.
//
// Returns:
//   - []float64: the unique solution x with len == n.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch (from Augment),
//     ErrInconsistent (no solution), ErrUnderdetermined (infinitely many).
//
// Complexity:
//   - Time O(r·(n+1)·min(r, n+1)), Space O(r·(n+1)).
//
// AI-Hints:
//   - Use Classify directly when free variables or the reduced matrix are
//     of interest; Solve deliberately flattens those cases into sentinels.
func Solve(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	// Stage 1 - build the augmented matrix (validates a and b agree).
	aug, err := matrix.Augment(a, b)
	if err != nil {
		return nil, linsysErrorf(opSolve, err)
	}

	// Stage 2 - classify and extract.
	return solveClassified(opSolve, aug, opts...)
}

// SolveAugmented classifies an already-augmented [A|b] and returns the
// unique solution. Same contract and sentinels as Solve.
//
// Errors:
//   - ErrNilMatrix, ErrTooFewColumns (from Classify),
//     ErrInconsistent, ErrUnderdetermined.
//
// Complexity: same as Solve minus the augmentation pass.
func SolveAugmented(aug matrix.Matrix, opts ...Option) ([]float64, error) {
	return solveClassified(opSolveAugmented, aug, opts...)
}

// solveClassified runs Classify and maps non-unique kinds onto sentinels
// under the public caller's tag. Classification errors are forwarded as-is
// (they already carry their op tag).
func solveClassified(tag string, aug matrix.Matrix, opts ...Option) ([]float64, error) {
	sol, err := Classify(aug, opts...)
	if err != nil {
		return nil, err
	}

	switch sol.Kind {
	case Unique:
		return sol.Values, nil
	case None:
		return nil, linsysErrorf(tag, ErrInconsistent)
	default:
		return nil, linsysErrorf(tag, ErrUnderdetermined)
	}
}
