// Package matrix offers the dense row-major container and kernels that the
// rref and linsys packages build on.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 container with bounds-checked At/Set and
//     error-returning (never panicking) accessors.
//   - Constructors NewDense, FromRows, Augment — FromRows is the single place
//     where malformed (ragged) input is rejected; zero-size shapes are legal.
//   - Kernels Mul, MatVec, Transpose and the comparison helper AllClose, each
//     with a flat fast path for *Dense and an interface fallback.
//   - Functional options (WithEpsilon, WithValidateNaNInf) shared by all
//     constructors, and central validators reused across the module.
//   - ToGonum/FromGonum converters for interop with gonum.org/v1/gonum/mat.
//
// Dense is best for small-to-medium systems where O(r*c) memory and simple
// contiguous storage are acceptable.
//
// See the examples in this package, rref, and linsys for usage patterns.
package matrix
