// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Accept zero-size shapes (0×n, m×0, 0×0) as legal degenerate matrices.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_kernels.go): operate on the flat data slice directly.
//   - Use FromRows for literal data; it is the only ingestion path that can reject ragged input.
//   - Use Augment to build [A|b] for linear-system work; see the linsys package.
//   - DefaultValidateNaNInf is on; insert only finite values unless you explicitly disable upstream.
//
// Complexity quicksheet:
//   - NewDense/FromRows/Augment: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for FromRows
	ctxAugment  = "Augment"  // ctor tag for Augment
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/ctxApply/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Returns:
//   - error: wrapped with context
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
//
// AI-Hints:
//   - Prefer to wrap at the nearest detection site for precise coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// ctorErrorf wraps a constructor-level error (no coordinates available).
// Complexity: O(1).
func ctorErrorf(ctor string, err error) error {
	return fmt.Errorf("Dense.%s: %w", ctor, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>=0; zero-size shapes are legal)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation and explicit numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (numeric policy).
//   - Stage 3: allocate zero-filled buffer and initialize policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Zero-size shapes are legal: degenerate matrices are valid inputs for
//     reduction, not an error class.
//
// Inputs:
//   - rows: non-negative number of rows
//   - cols: non-negative number of columns
//   - opts: numeric policy overrides (WithEpsilon, WithNoValidateNaNInf, ...)
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//
// Determinism:
//   - Always allocates the same layout for given (rows, cols).
//   - Fixed zero initialization; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer this ctor for public creation; FromRows for literal data.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape (negatives only; zero-size is legal).
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	// Resolve numeric policy once.
	o := gatherOptions(opts...)
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromRows builds a Dense from row slices, rejecting ragged input.
// MAIN DESCRIPTION:
//   - The literal-data ingestion path; the single place malformed shape can
//     surface (rows of differing lengths).
//
// Implementation:
//   - Stage 1: ValidateRect (ragged check, O(r) over headers).
//   - Stage 2: resolve options; allocate flat buffer; copy row by row.
//   - Stage 3: enforce numeric policy with one pass over the buffer.
//
// Behavior highlights:
//   - A nil or empty outer slice yields the legal 0×0 matrix.
//   - Input slices are copied; the result does not alias caller memory.
//
// Inputs:
//   - rows: row slices, all of equal length.
//   - opts: numeric policy overrides.
//
// Returns:
//   - *Dense: independent matrix of shape len(rows)×len(rows[0]).
//
// Errors:
//   - ErrRaggedRows (differing row lengths); ErrNaNInf (policy violation,
//     reported with the first offending coordinates).
//
// Determinism:
//   - Fixed row-major copy and scan order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - This is the recommended bridge from [][]float64 literals in tests and
//     call sites; use Augment for [A|b] construction.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	// Stage 1: ragged detection before any copying.
	if err := ValidateRect(rows); err != nil {
		return nil, ctorErrorf(ctxFromRows, err)
	}

	// Shape: empty outer slice is the legal 0×0 matrix.
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	// Stage 2: resolve policy and copy.
	o := gatherOptions(opts...)
	buf := make([]float64, r*c)
	var i int
	for i = 0; i < r; i++ {
		copy(buf[i*c:(i+1)*c], rows[i]) // contiguous row copy
	}

	m := &Dense{
		r:              r,
		c:              c,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}

	// Stage 3: numeric policy scan (single pass, first violation wins).
	if o.validateNaNInf {
		if err := m.validateFinite(ctxFromRows); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Augment builds the augmented matrix [A|b] for the system AX = b.
// MAIN DESCRIPTION:
//   - Append b as the final column of a copy of A; the standard input shape
//     for reduction-based system solving.
//
// Implementation:
//   - Stage 1: validate A non-nil and len(b) == A.Rows().
//   - Stage 2: allocate r×(c+1); fast path copies flat rows from *Dense,
//     fallback reads via At.
//   - Stage 3: enforce numeric policy with one pass over the buffer.
//
// Behavior highlights:
//   - A is never mutated; the result is fully independent.
//   - Works for r==0 (empty system) and c==0 (no unknowns) inputs.
//
// Inputs:
//   - a: coefficient matrix (m×n).
//   - b: right-hand side, len(b) == m.
//   - opts: numeric policy overrides.
//
// Returns:
//   - *Dense: m×(n+1) augmented matrix.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch (len(b) != m); ErrNaNInf under the
//     policy; wrapped At errors from exotic implementations.
//
// Determinism:
//   - Fixed row-major assembly order.
//
// Complexity:
//   - Time O(m*n), Space O(m*n).
//
// AI-Hints:
//   - Pass *Dense to hit the flat-copy fast path.
func Augment(a Matrix, b []float64, opts ...Option) (*Dense, error) {
	// Stage 1: structural validation.
	if err := ValidateNotNil(a); err != nil {
		return nil, ctorErrorf(ctxAugment, err)
	}
	r, c := a.Rows(), a.Cols()
	if err := ValidateVecLen(b, r); err != nil {
		return nil, ctorErrorf(ctxAugment, err)
	}

	// Stage 2: assemble the r×(c+1) buffer.
	o := gatherOptions(opts...)
	out := make([]float64, r*(c+1))

	if d, ok := a.(*Dense); ok {
		// Fast path: copy each source row in one shot, then append b[i].
		var i int
		for i = 0; i < r; i++ {
			copy(out[i*(c+1):i*(c+1)+c], d.data[i*c:(i+1)*c])
			out[i*(c+1)+c] = b[i]
		}
	} else {
		// Generic fallback: element reads via the interface.
		var i, j int
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err = a.At(i, j)
				if err != nil {
					return nil, ctorErrorf(ctxAugment, err)
				}
				out[i*(c+1)+j] = v
			}
			out[i*(c+1)+c] = b[i]
		}
	}

	m := &Dense{
		r:              r,
		c:              c + 1,
		data:           out,
		validateNaNInf: o.validateNaNInf,
	}

	// Stage 3: numeric policy scan.
	if o.validateNaNInf {
		if err := m.validateFinite(ctxAugment); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// validateFinite scans the flat buffer and reports the first NaN/±Inf entry.
// Returns a denseErrorf-wrapped ErrNaNInf with the offending coordinates.
// Complexity: O(r*c).
func (m *Dense) validateFinite(ctor string) error {
	var off int
	var v float64
	for off, v = range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return denseErrorf(ctor, off/m.c, off%m.c, ErrNaNInf)
		}
	}

	return nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// RawData returns the backing row-major slice WITHOUT copying.
// Mutations through the returned slice alias the matrix; the caller owns the
// discipline of keeping values finite when the NaN/Inf policy matters.
// Intended for flat kernels in sibling packages (reduction loops, verifiers)
// that need stride-level traversal speed; everyone else should stay on At/Set.
// Complexity: O(1).
func (m *Dense) RawData() []float64 { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: compute row*m.c + col.
//
// Behavior highlights:
//   - Returns a sentinel (ErrOutOfRange) without adding context; public
//     methods (At/Set) will wrap with coordinates and method name.
//
// Inputs:
//   - row, col: coordinates.
//
// Returns:
//   - (offset, nil) on success; (0, ErrOutOfRange) otherwise.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Keep unexported to avoid accidental panics at public surface.
//
// AI-Hints:
//   - Reuse in At/Set to keep identical bound semantics.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Inputs:
//   - row, col: zero-based indices.
//
// Returns:
//   - (value, nil) on success; (0, wrapped ErrOutOfRange) on invalid indices.
//
// Determinism:
//   - Stable access cost; no allocations.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer At in external code; internal hot paths may index directly.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Behavior highlights:
//   - Never panics; returns sentinel errors.
//   - Numeric policy is a per-instance flag preserved by Clone.
//
// Inputs:
//   - row, col: element coordinates.
//   - v      : value to store.
//
// Returns:
//   - nil on success; errors on invalid indices or policy violation.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Determinism:
//   - Stable, no side-effects beyond the cell.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Policy flag is carried by Clone (single source of truth).
//
// AI-Hints:
//   - Keep policy ON in production data flows; disable only in controlled ingestion.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// MAIN DESCRIPTION:
//   - Produce an independent Dense with identical shape/data/policy.
//
// Implementation:
//   - Stage 1: allocate new buffer len==r*c.
//   - Stage 2: copy data and flags.
//
// Behavior highlights:
//   - Independence: mutations do not affect the original.
//
// Returns:
//   - Matrix: *Dense implementing Matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Returned dynamic type is *Dense.
//
// AI-Hints:
//   - For structural copy with transform, consider Apply on clone.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy bytes

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String provides a readable row-wise dump for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//
// Returns:
//   - string: multi-line representation of matrix.
//
// Determinism:
//   - Fixed traversal order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
//
// AI-Hints:
//   - For large matrices prefer printing a few rows/cols or summarize.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Implementation:
//   - Stage 1: nested loops over rows then cols; compute base offset per row.
//   - Stage 2: call f on each element; stop when f returns false.
//
// Behavior highlights:
//   - Read-only with respect to the callback; no allocations; deterministic order.
//
// Inputs:
//   - f: callback returning continue/stop flag (false to stop early).
//
// Determinism:
//   - Fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Use to accumulate stats without temporary allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int // predeclare loop counters and base offset
	var v float64      // temporary for current value

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // compute flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			v = m.data[base+j] // read current element
			if !f(i, j, v) {   // invoke callback; stop if it returns false
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Implementation:
//   - Stage 1: nested loops over rows then cols; compute new value via f.
//   - Stage 2: reject NaN/Inf if policy enabled.
//   - Stage 3: write back.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Early error aborts; elements written before the error remain updated.
//
// Inputs:
//   - f: transformer from (i,j,v) to new value.
//
// Returns:
//   - error: ErrNaNInf when transformer produced non-finite (if policy ON).
//
// Determinism:
//   - Fixed i→j order; side effects are predictable.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// Notes:
//   - For all-or-nothing semantics, transform into a clone and swap on success.
//
// AI-Hints:
//   - Keep transforms pure; avoid capturing external mutable state.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int // predeclare loop counters and base offset
	var v, nv float64  // old and new values

	for i = 0; i < m.r; i++ { // iterate rows
		base = i * m.c            // base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			v = m.data[base+j] // read current value
			nv = f(i, j, v)    // compute new value
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf) // wrap with coordinates
			}
			m.data[base+j] = nv // write back new value
		}
	}

	return nil // success
}
