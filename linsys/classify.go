// SPDX-License-Identifier: MIT
// Package linsys - classification of augmented systems via RREF.
//
// This file provides the canonical entry point:
//
//   - Classify: validate [A|b], reduce it, and interpret the pivot layout
//     into a Solution (kind, rank, pivots, free variables, values).
//
// Design principles:
//   - Deterministic: delegates to the rref kernel's fixed loop order.
//   - Degenerate systems classify, they do not fail: singular,
//     rank-deficient and equation-free inputs are all answers.
//   - Strict sentinels from types.go; op-tag wrapping via linsysErrorf.

package linsys

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/rref"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const opClassify = "Classify"

// linsysErrorf wraps err with the failing operation tag, preserving the
// underlying sentinel for errors.Is/errors.As. Use only when err != nil.
func linsysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// freeColumns lists the pivot-free coefficient columns in ascending order.
// pivots must be ascending; a pivot at or past the augmented column (index
// unknowns) never matches and is naturally ignored.
// Complexity: O(unknowns).
func freeColumns(pivots []int, unknowns int) []int {
	free := make([]int, 0, unknowns)

	var next int // cursor into pivots
	for col := 0; col < unknowns; col++ {
		if next < len(pivots) && pivots[next] == col {
			next++ // coefficient column holds a pivot

			continue
		}
		free = append(free, col)
	}

	return free
}

// Classify reduces the augmented matrix [A|b] and reads the solution-set
// classification off its pivot layout.
//
// Implementation:
//   - Stage 1: structural validation (non-nil, at least two columns).
//   - Stage 2: copying reduction via rref.Reduce under the resolved eps.
//   - Stage 3: interpretation. A pivot in the last column means None
//     (a row 0 = 1 exists). Otherwise an empty free list means Unique and
//     the solution is read from the last column, one value per pivot row;
//     any free columns mean Infinite.
//
// Behavior highlights:
//   - The input is never modified; Solution.RREF is a fresh *Dense.
//   - Rank == len(Pivots); for consistent systems Pivots and Free
//     partition the coefficient columns.
//   - Zero-row (equation-free) and all-zero systems classify as Infinite
//     whenever at least one unknown exists.
//
// Inputs:
//   - aug: augmented matrix, shape r × (n+1) with n ≥ 1 unknowns.
//   - opts: WithEpsilon to override DefaultEpsilon.
//
// Returns:
//   - Solution: kind, rank, pivots, free columns, values (Unique only),
//     reduced matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrTooFewColumns (cols < 2); element
//     access errors from generic sources, wrapped.
//
// Complexity:
//   - Time O(r·(n+1)·min(r, n+1)), Space O(r·(n+1)) for the reduction copy.
//
// AI-Hints:
//   - Inspect Kind before touching Values; Values is nil unless Unique.
//   - Free indexes coefficient columns, so it is directly usable to pick
//     parameters when writing the general solution by hand.
func Classify(aug matrix.Matrix, opts ...Option) (Solution, error) {
	// Stage 1 - structural validation.
	if err := matrix.ValidateNotNil(aug); err != nil {
		return Solution{}, linsysErrorf(opClassify, err)
	}
	cols := aug.Cols()
	if cols < 2 {
		return Solution{}, linsysErrorf(opClassify, ErrTooFewColumns)
	}

	// Stage 2 - reduce a private copy of the augmented matrix.
	o := gatherOptions(opts...)
	red, pivots, err := rref.Reduce(aug, rref.WithEpsilon(o.eps))
	if err != nil {
		return Solution{}, linsysErrorf(opClassify, err)
	}

	// Stage 3 - interpret the pivot layout.
	unknowns := cols - 1
	sol := Solution{
		Kind:   Infinite,
		Rank:   len(pivots),
		Pivots: pivots,
		Free:   freeColumns(pivots, unknowns),
		RREF:   red,
	}

	// A pivot in the augmented column is the row 0 = 1: no solution.
	if len(pivots) > 0 && pivots[len(pivots)-1] == cols-1 {
		sol.Kind = None

		return sol, nil
	}

	// No free coefficient columns: rank == unknowns, exactly one solution.
	// Pivot row k carries unknown Pivots[k]; its value sits in the last column.
	if len(sol.Free) == 0 {
		values := make([]float64, unknowns)
		data := red.RawData()

		var row, p int
		for row, p = range pivots {
			values[p] = data[row*cols+cols-1]
		}
		sol.Kind = Unique
		sol.Values = values
	}

	return sol, nil
}
