// SPDX-License-Identifier: MIT
// Package: linsys
//
// Purpose:
//   - Sentinel errors and result types shared by Classify/Solve.
//
// Design principles:
//   - Strict sentinels: callers branch with errors.Is, never on messages.
//   - The result struct carries everything the classification learned, so
//     callers never re-reduce to answer a follow-up question.

package linsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// ErrTooFewColumns is returned when an augmented matrix has fewer than two
// columns: without at least one coefficient column and the right-hand side
// there is no system to classify.
var ErrTooFewColumns = errors.New("linsys: augmented matrix needs at least two columns")

// ErrInconsistent is returned by Solve/SolveAugmented when the system has
// no solution (Classify reports Kind == None).
var ErrInconsistent = errors.New("linsys: system is inconsistent")

// ErrUnderdetermined is returned by Solve/SolveAugmented when the system
// has infinitely many solutions (Classify reports Kind == Infinite), so no
// single vector can be returned.
var ErrUnderdetermined = errors.New("linsys: system is underdetermined")

// Kind classifies the solution set of a linear system.
type Kind int

const (
	// Unique: rank equals the number of unknowns; exactly one solution.
	Unique Kind = iota

	// None: a pivot landed in the augmented column; the reduced system
	// contains a row equivalent to 0 = 1.
	None

	// Infinite: consistent with at least one free variable.
	Infinite
)

// String returns the enum name; unknown values format as Kind(n).
func (k Kind) String() string {
	switch k {
	case Unique:
		return "Unique"
	case None:
		return "None"
	case Infinite:
		return "Infinite"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Solution is the full outcome of classifying an augmented matrix [A|b]
// with n coefficient columns (unknowns) and one right-hand-side column.
type Solution struct {
	// Kind classifies the solution set: Unique, None or Infinite.
	Kind Kind

	// Rank is the number of pivots of the augmented matrix.
	Rank int

	// Pivots lists the pivot column indices in ascending order. For an
	// inconsistent system the last entry is the augmented column itself.
	Pivots []int

	// Free lists the pivot-free coefficient columns in ascending order,
	// one per free variable. Empty exactly when Kind == Unique.
	Free []int

	// Values holds the unique solution vector, len == n.
	// Populated only when Kind == Unique; nil otherwise.
	Values []float64

	// RREF is the reduced augmented matrix the classification was read
	// from. Freshly allocated; the input matrix is never modified.
	RREF *matrix.Dense
}
