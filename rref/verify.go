// SPDX-License-Identifier: MIT
// Package: rref
//
// Purpose:
//   - Invariant verification for reduced row echelon form, shared by tests
//     and by callers that want a cheap "already reduced?" probe.
//
// Contract:
//   - An entry x counts as zero when |x| ≤ eps; a leading entry counts as
//     one when |x − 1| ≤ eps.

package rref

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

const opIsReduced = "IsReduced"

// isReducedDense checks the reduced-form invariants on a *Dense via the flat
// buffer. One top-down row sweep:
//
//	row invariants: a zero row admits no nonzero row below it; a nonzero
//	row leads with a 1 strictly to the right of the previous lead;
//	column invariant: each leading 1 is the only nonzero entry (> eps) in
//	its column.
//
// Complexity: O(r·c).
func isReducedDense(d *matrix.Dense, eps float64) bool {
	rows, cols := d.Rows(), d.Cols()
	data := d.RawData()

	var (
		i, j, r     int     // loop indices
		base, lead  int     // row base offset; leading column of row i
		v           float64 // scratch magnitude
		prevLead    int     // leading column of the previous nonzero row
		seenZeroRow bool    // a zero row has appeared above row i
	)

	prevLead = -1
	for i = 0; i < rows; i++ {
		base = i * cols

		// Locate the leading entry: first column with |v| > eps.
		lead = -1
		for j = 0; j < cols; j++ {
			v = data[base+j]
			if v < 0 {
				v = -v
			}
			if v > eps {
				lead = j

				break
			}
		}

		// Zero row: legal only if every row below is zero too.
		if lead < 0 {
			seenZeroRow = true

			continue
		}
		if seenZeroRow {
			return false // nonzero row below a zero row
		}

		// Pivots must move strictly right as rows go down.
		if lead <= prevLead {
			return false
		}

		// The leading entry must be 1.
		v = data[base+lead] - 1
		if v < 0 {
			v = -v
		}
		if v > eps {
			return false
		}

		// The pivot column must be zero in every other row.
		for r = 0; r < rows; r++ {
			if r == i {
				continue
			}
			v = data[r*cols+lead]
			if v < 0 {
				v = -v
			}
			if v > eps {
				return false
			}
		}

		prevLead = lead
	}

	return true
}

// IsReduced reports whether m already satisfies the reduced row echelon form
// invariants under the configured tolerance:
//
//  1. every nonzero row's leading entry equals 1;
//  2. each leading 1 is the only nonzero entry in its column;
//  3. leading entries move strictly right as rows go down;
//  4. all-zero rows sit below every nonzero row.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); resolve options against defaults.
//   - Stage 2: *Dense runs the flat single-sweep checker; other
//     implementations go through At with wrapped element errors.
//
// Behavior highlights:
//   - Violations are reported as (false, nil); errors are reserved for nil
//     input and failing element access.
//   - Zero-size matrices are vacuously reduced.
//   - Reduce output always passes under the same eps.
//
// Inputs:
//   - m: matrix of any shape (r × c).
//   - opts: WithEpsilon to override DefaultEpsilon.
//
// Returns:
//   - bool: whether all four invariants hold.
//
// Errors:
//   - ErrNilMatrix (nil input); element access errors from generic sources.
//
// Complexity:
//   - Time O(r·c), Space O(1).
//
// AI-Hints:
//   - Use in tests as the oracle for reduction output; in production code
//     prefer calling Reduce unconditionally, it is idempotent.
func IsReduced(m matrix.Matrix, opts ...Option) (bool, error) {
	// Validate: non-nil input.
	if err := matrix.ValidateNotNil(m); err != nil {
		return false, rrefErrorf(opIsReduced, err)
	}

	// Resolve tolerance against documented defaults.
	o := gatherOptions(opts...)

	// Fast path: flat traversal of the backing buffer.
	if d, ok := m.(*matrix.Dense); ok {
		return isReducedDense(d, o.eps), nil
	}

	// Generic interface fallback: same sweep through At.
	rows, cols := m.Rows(), m.Cols()

	var (
		i, j, r     int     // loop indices
		lead        int     // leading column of row i
		v           float64 // current element
		err         error   // element access error
		prevLead    int     // leading column of the previous nonzero row
		seenZeroRow bool    // a zero row has appeared above row i
	)

	prevLead = -1
	for i = 0; i < rows; i++ {
		// Locate the leading entry: first column with |v| > eps.
		lead = -1
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return false, rrefErrorf(opIsReduced, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if v < 0 {
				v = -v
			}
			if v > o.eps {
				lead = j

				break
			}
		}

		// Zero row: legal only if every row below is zero too.
		if lead < 0 {
			seenZeroRow = true

			continue
		}
		if seenZeroRow {
			return false, nil // nonzero row below a zero row
		}

		// Pivots must move strictly right as rows go down.
		if lead <= prevLead {
			return false, nil
		}

		// The leading entry must be 1.
		v, err = m.At(i, lead)
		if err != nil {
			return false, rrefErrorf(opIsReduced, fmt.Errorf("At(%d,%d): %w", i, lead, err))
		}
		v -= 1
		if v < 0 {
			v = -v
		}
		if v > o.eps {
			return false, nil
		}

		// The pivot column must be zero in every other row.
		for r = 0; r < rows; r++ {
			if r == i {
				continue
			}
			v, err = m.At(r, lead)
			if err != nil {
				return false, rrefErrorf(opIsReduced, fmt.Errorf("At(%d,%d): %w", r, lead, err))
			}
			if v < 0 {
				v = -v
			}
			if v > o.eps {
				return false, nil
			}
		}

		prevLead = lead
	}

	return true, nil
}
