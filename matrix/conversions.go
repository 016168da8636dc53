// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge between this package's Dense/Matrix types and gonum's mat.Dense,
//     so callers can hand reduced systems to the wider gonum ecosystem (SVD,
//     condition numbers, solvers) without re-copying by hand.
//
// Conventions:
//   - ToGonum/FromGonum always deep-copy; the two representations never alias.
//   - gonum cannot represent empty matrices (mat.NewDense panics on zero
//     dimensions), so ToGonum reports ErrInvalidDimensions for 0×n, m×0, 0×0.
//
// AI-Hints:
//   - Pass *Dense (ours) or *mat.Dense (gonum) to hit the flat-copy fast paths;
//     any other Matrix/mat.Matrix implementation falls back to At loops.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// ToGonum deep-copies m into a freshly allocated gonum *mat.Dense.
//
// Implementation Stages:
//   - Stage 1: validate m is non-nil and non-empty (gonum rejects zero dims).
//   - Stage 2: materialize a flat row-major copy (fast path for *Dense).
//   - Stage 3: wrap the copy in mat.NewDense.
//
// Inputs:
//   - m : source Matrix (validated; zero-size shapes are not convertible).
//
// Returns:
//   - *mat.Dense : an independent gonum matrix with identical contents.
//   - error      : ErrNilMatrix, ErrInvalidDimensions, or a wrapped At failure.
//
// Determinism: fixed row-major copy order.
// Complexity: O(r*c) time, O(r*c) space.
func ToGonum(m Matrix) (*mat.Dense, error) {
	// Stage 1: structural validation.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		// mat.NewDense panics on zero dimensions; surface an error instead.
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}

	// Stage 2: flat copy. mat.NewDense takes ownership of the backing slice,
	// so the buffer must be fresh even on the fast path.
	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
		return mat.NewDense(r, c, buf), nil
	}

	// Generic fallback via At.
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			buf[i*c+j] = v
		}
	}

	// Stage 3: hand the copy to gonum.
	return mat.NewDense(r, c, buf), nil
}

// FromGonum deep-copies src (any gonum mat.Matrix) into a new *Dense,
// honoring the same functional options as the other constructors.
//
// Implementation Stages:
//   - Stage 1: nil guard and shape read via src.Dims().
//   - Stage 2: row-wise copy (stride-aware fast path for *mat.Dense).
//   - Stage 3: numeric policy scan (NaN/±Inf rejection when enabled).
//
// Inputs:
//   - src  : gonum matrix to copy (nil → ErrNilMatrix).
//   - opts : functional options (WithEpsilon, WithValidateNaNInf, ...).
//
// Returns:
//   - *Dense : independent copy with src's shape and contents.
//   - error  : ErrNilMatrix or ErrNaNInf (wrapped with coordinates).
//
// Determinism: fixed row-major copy order.
// Complexity: O(r*c) time, O(r*c) space.
//
// Notes:
//   - Zero-size gonum values (e.g. an unreset mat.Dense) convert to the legal
//     0×0 Dense; the empty-matrix restriction applies only in the ToGonum
//     direction.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	// Stage 1: presence and shape.
	if src == nil {
		return nil, ctorErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()

	o := gatherOptions(opts...)
	out := &Dense{
		r:              r,
		c:              c,
		data:           make([]float64, r*c),
		validateNaNInf: o.validateNaNInf,
	}

	// Stage 2: copy contents.
	if d, ok := src.(*mat.Dense); ok {
		// Fast path: copy row-by-row from the raw backing slice, honoring the
		// stride (gonum views may be wider than their visible column count).
		rm := d.RawMatrix()
		var i int
		for i = 0; i < r; i++ {
			copy(out.data[i*c:(i+1)*c], rm.Data[i*rm.Stride:i*rm.Stride+c])
		}
	} else {
		// Generic fallback: gonum's At panics only on out-of-bounds access,
		// and the loop stays within Dims. Fixed i→j order.
		var i, j int
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				out.data[i*c+j] = src.At(i, j)
			}
		}
	}

	// Stage 3: numeric policy scan (single pass, first violation wins).
	if o.validateNaNInf {
		if err := out.validateFinite(opFromGonum); err != nil {
			return nil, err
		}
	}

	return out, nil
}
