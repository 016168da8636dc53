// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, matrix-vector products and transpose. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Declare the canonical kernels used across the module (linsys, tests).
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and return plain sentinels wrapped via matrixErrorf at the facade.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot-product style accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opAllClose  = "AllClose"
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Behavior highlights:
//   - Preserves the underlying sentinel/type for errors.Is/errors.As.
//   - Keeps human-readable operation prefixes (e.g., "Mul", "Transpose").
//
// Inputs:
//   - tag: operation name/label (use package-level op* constants; no magic strings).
//   - err: underlying non-nil error to wrap.
//
// Returns:
//   - error: a non-nil error that formats as "<tag>: <underlying>" and still matches Is/As.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loops; no temporary tiles; one allocation for C.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders (i→k→j for fast path, i→j→k for fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
//
// AI-Hints:
//   - If you can keep A as *Dense and cache-friendly by rows, you unlock the best path here.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	// Return result
	return res, nil
}

// MatVec computes the product y = A·x for a dense or generic matrix A.
// Implementation:
//   - Stage 1: Validate A non-nil and len(x) == A.Cols().
//   - Stage 2: If A is *Dense, run a flat row-stride loop; otherwise fall back to At.
//
// Behavior highlights:
//   - Deterministic i→j accumulation; one result allocation; x is never mutated.
//
// Inputs:
//   - m: matrix with shape (r × c).
//   - x: vector of length c.
//
// Returns:
//   - []float64: y of length r with y[i] = Σ_j A[i,j]*x[j].
//
// Errors:
//   - ErrNilMatrix (nil matrix or nil vector), ErrDimensionMismatch (len(x) != c).
//
// Determinism:
//   - Fixed i→j order in both paths; stable accumulation.
//
// Complexity:
//   - Time O(r*c), Space O(r).
//
// AI-Hints:
//   - Use for residual checks (A·x vs b) after solving; pass *Dense for the fast path.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Validate matrix and vector compatibility.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	// One allocation for the result vector.
	y := make([]float64, rows)

	var (
		i, j int     // loop iterators
		sum  float64 // per-row accumulator
		av   float64 // current matrix element
		err  error   // fallback read error
	)

	// Fast path: flat row-stride walk over the backing slice.
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			sum = ZeroSum
			for j = 0; j < cols; j++ {
				sum += d.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	// Generic fallback with wrapped element errors.
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			av, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += av * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Fast-path copies *Dense data via flat indexing; fallback uses At/Set.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic i→j loop.
//
// Behavior highlights:
//   - Deterministic copy order (dense: row blocks; generic: i→j).
//   - One allocation for the result; no temporaries proportional to size.
//
// Inputs:
//   - m: non-nil matrix (r×c).
//
// Returns:
//   - Matrix: newly allocated Dense(c×r) with mᵀ.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Determinism:
//   - Fixed traversal orders independent of data values.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - Keep operands as *Dense to unlock the flat-copy fast-path.
//   - If you only need Aᵀ·x, prefer MatVec on A with indices swapped instead of forming Aᵀ.
func Transpose(m Matrix) (Matrix, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result with swapped shape.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	var v float64

	// Fast path: flat mapping res[j*rows+i] = m[i*cols+j].
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = d.data[base+j]
			}
		}

		return res, nil
	}

	// Generic fallback with wrapped element errors.
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}
