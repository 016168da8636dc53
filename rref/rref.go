// SPDX-License-Identifier: MIT
// Package: rref
//
// Purpose:
//   - Canonical Gauss–Jordan reduction to reduced row echelon form with a
//     deterministic loop order and partial pivoting.
//   - Shared by Reduce/ReduceInPlace/Rank; in-place kernel,
//     O(r·c·min(r,c)) time, O(1) extra space beyond pivot bookkeeping.
//
// Contract:
//   - An entry x counts as zero during pivot selection when |x| ≤ eps.
//   - Any shape is legal, including zero-size; only nil input is rejected.
//   - Finite entries are assumed; the matrix package's default numeric
//     policy guarantees them on ingestion.

package rref

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opReduce        = "Reduce"
	opReduceInPlace = "ReduceInPlace"
	opRank          = "Rank"
)

// rrefErrorf wraps err with the failing operation tag, preserving the
// underlying sentinel for errors.Is/errors.As. Use only when err != nil.
func rrefErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// materializeDense produces a private *Dense working copy of m.
//
// Fast path: Clone() of a *Dense (keeps the source numeric policy).
// Fallback: element-by-element copy through At/Set into a fresh Dense with
// the default policy; element errors are wrapped under the caller's tag.
// Complexity: O(r*c).
func materializeDense(tag string, m matrix.Matrix) (*matrix.Dense, error) {
	// Fast path: Clone's dynamic type is documented as *Dense.
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}

	// Generic interface fallback.
	rows, cols := m.Rows(), m.Cols()
	work, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, rrefErrorf(tag, err)
	}

	var (
		i, j int     // loop indices
		v    float64 // current element
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, rrefErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = work.Set(i, j, v); err != nil {
				return nil, rrefErrorf(tag, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return work, nil
}

// gaussJordanInPlace reduces a *Dense to reduced row echelon form in-place
// and returns the pivot column indices in ascending order.
//
// Policy (assumed by callers):
//   - eps ≥ 0 and finite (gatherOptions/WithEpsilon enforce this upstream).
//   - Entries are finite; NaN poisons pivot selection.
//
// Loop order is fixed (column → candidate rows → elimination rows) and ties
// in partial pivoting keep the lowest row index, so equal inputs yield
// bitwise-equal outputs. Zero rows end up below every pivot row because rows
// holding usable pivots are swapped up and consumed first; no sorting pass
// runs afterwards.
//
// Time: O(r·c·min(r,c)); Extra space: O(min(r,c)) for the pivot list.
// No allocations inside the hot loops.
func gaussJordanInPlace(d *matrix.Dense, eps float64) []int {
	rows, cols := d.Rows(), d.Cols()

	// At most min(rows, cols) pivots can exist.
	pivots := make([]int, 0, min(rows, cols))

	// Local alias to the flat row-major buffer; this does not change bounds
	// checks, it just shortens the access path in the hot loops.
	data := d.RawData()

	// Predeclare all loop counters and temporaries to avoid per-iteration allocations.
	var (
		pivotRow           int     // next row to receive a pivot (cursor)
		col, row, j        int     // loop indices
		bestRow            int     // row of the largest candidate magnitude
		best, cand         float64 // best magnitude so far; current candidate magnitude
		basePivot, baseRow int     // row base offsets in the flat buffer
		scale, factor, v   float64 // pivot value, elimination factor, scratch
	)

	for col = 0; col < cols && pivotRow < rows; col++ {
		// Partial pivoting: largest |entry| at or below the cursor wins.
		bestRow = pivotRow
		best = data[pivotRow*cols+col]
		if best < 0 {
			best = -best
		}
		for row = pivotRow + 1; row < rows; row++ {
			cand = data[row*cols+col]
			if cand < 0 {
				cand = -cand
			}
			if cand > best { // strict: ties keep the lowest row index
				best = cand
				bestRow = row
			}
		}

		// Numerically-zero column below the cursor: no pivot, cursor stays.
		if best <= eps {
			continue
		}

		basePivot = pivotRow * cols

		// Swap the winning row up to the cursor.
		if bestRow != pivotRow {
			baseRow = bestRow * cols
			for j = 0; j < cols; j++ {
				data[basePivot+j], data[baseRow+j] = data[baseRow+j], data[basePivot+j]
			}
		}

		// Scale the pivot row so the pivot entry becomes exactly 1.
		scale = data[basePivot+col]
		for j = 0; j < cols; j++ {
			v = data[basePivot+j] / scale
			if v == 0 {
				v = 0 // 0/negative yields -0.0; store the canonical zero
			}
			data[basePivot+j] = v
		}
		data[basePivot+col] = 1.0 // pivot entry is exactly 1 in the output

		// Eliminate the pivot column from every other row.
		for row = 0; row < rows; row++ {
			if row == pivotRow {
				continue
			}
			baseRow = row * cols
			factor = data[baseRow+col]
			if factor == 0 {
				continue // column already clear; keeps re-reduction bitwise stable
			}
			for j = 0; j < cols; j++ {
				data[baseRow+j] -= factor * data[basePivot+j]
			}
			data[baseRow+col] = 0.0 // pivot column is exactly 0 outside the pivot row
		}

		// Record the pivot and advance the cursor.
		pivots = append(pivots, col)
		pivotRow++
	}

	return pivots
}

// Reduce returns the reduced row echelon form of m plus the pivot column
// indices in ascending order. The input is never modified.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); resolve options against defaults.
//   - Stage 2: materialize a private *Dense working copy (Clone fast path).
//   - Stage 3: run the in-place Gauss–Jordan kernel on the copy.
//
// Behavior highlights:
//   - Singular, non-square, rank-deficient and zero-size inputs all succeed
//     and yield invariant-satisfying output; len(pivots) is the rank.
//   - Columns whose candidates are all ≤ eps in magnitude hold no pivot.
//
// Inputs:
//   - m: matrix of any shape (r × c).
//   - opts: WithEpsilon to override DefaultEpsilon.
//
// Returns:
//   - *matrix.Dense: freshly allocated reduced matrix (r × c).
//   - []int: pivot column indices, strictly increasing; empty for rank 0.
//
// Errors:
//   - ErrNilMatrix (nil input); element access errors from generic sources.
//
// Determinism:
//   - Fixed loop order, lowest-row tie break: equal inputs give
//     bitwise-equal outputs, and reducing a reduced matrix returns it
//     unchanged.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c) for the returned copy.
//
// AI-Hints:
//   - Pass *Dense to hit the Clone fast path; generic sources pay an
//     At/Set copy first.
//   - For A·x = b questions prefer linsys.Classify over inspecting the raw
//     reduced matrix.
func Reduce(m matrix.Matrix, opts ...Option) (*matrix.Dense, []int, error) {
	// Validate: non-nil input.
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, nil, rrefErrorf(opReduce, err)
	}

	// Resolve tolerance against documented defaults.
	o := gatherOptions(opts...)

	// Private working copy; the caller's matrix stays untouched.
	work, err := materializeDense(opReduce, m)
	if err != nil {
		return nil, nil, err
	}

	// Single source of truth for the elimination.
	pivots := gaussJordanInPlace(work, o.eps)

	return work, pivots, nil
}

// ReduceInPlace reduces m to reduced row echelon form, mutating it, and
// returns the pivot column indices in ascending order.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); resolve options against defaults.
//   - Stage 2: *Dense runs the kernel directly on the caller's buffer.
//   - Stage 3: generic implementations reduce a dense mirror, then write
//     every entry back through Set.
//
// Behavior highlights:
//   - Same algorithm and same pivot list as Reduce on equal input.
//
// Inputs:
//   - m: matrix of any shape (r × c), mutated on success.
//   - opts: WithEpsilon to override DefaultEpsilon.
//
// Returns:
//   - []int: pivot column indices, strictly increasing; empty for rank 0.
//
// Errors:
//   - ErrNilMatrix (nil input); element access errors from generic sources.
//     If a generic write-back fails midway, m may be partially updated.
//
// Complexity:
//   - Time O(r·c·min(r,c)); Space O(1) extra for *Dense,
//     O(r·c) for the generic mirror.
//
// AI-Hints:
//   - Reach for this only when the original matrix is disposable; Reduce is
//     the safer default.
func ReduceInPlace(m matrix.Matrix, opts ...Option) ([]int, error) {
	// Validate: non-nil input.
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, rrefErrorf(opReduceInPlace, err)
	}

	// Resolve tolerance against documented defaults.
	o := gatherOptions(opts...)

	// Fast path: run the kernel directly on the caller's buffer.
	if d, ok := m.(*matrix.Dense); ok {
		return gaussJordanInPlace(d, o.eps), nil
	}

	// Generic interface fallback: reduce a dense mirror, then write back.
	work, err := materializeDense(opReduceInPlace, m)
	if err != nil {
		return nil, err
	}
	pivots := gaussJordanInPlace(work, o.eps)

	var (
		rows, cols = work.Rows(), work.Cols()
		i, j       int     // loop indices
		v          float64 // current element
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = work.At(i, j) // in-range by construction
			if err = m.Set(i, j, v); err != nil {
				return nil, rrefErrorf(opReduceInPlace, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return pivots, nil
}

// Rank reports the rank of m: the number of pivots its reduced row echelon
// form has. The input is never modified.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); resolve options against defaults.
//   - Stage 2: reduce a private working copy and count pivots.
//
// Inputs:
//   - m: matrix of any shape (r × c).
//   - opts: WithEpsilon to override DefaultEpsilon.
//
// Returns:
//   - int: rank in [0, min(r, c)].
//
// Errors:
//   - ErrNilMatrix (nil input); element access errors from generic sources.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c) for the working copy.
//
// AI-Hints:
//   - Call Reduce instead when the reduced matrix itself is also needed;
//     Rank discards it.
func Rank(m matrix.Matrix, opts ...Option) (int, error) {
	// Validate: non-nil input.
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, rrefErrorf(opRank, err)
	}

	// Resolve tolerance against documented defaults.
	o := gatherOptions(opts...)

	// Reduce a throwaway copy; only the pivot count survives.
	work, err := materializeDense(opRank, m)
	if err != nil {
		return 0, err
	}

	return len(gaussJordanInPlace(work, o.eps)), nil
}
