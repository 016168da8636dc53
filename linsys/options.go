// SPDX-License-Identifier: MIT

// Package linsys: functional configuration forwarded to the reduction.
// Mirrors the rref option surface so classification and reduction always
// agree on what "numerically zero" means.
package linsys

import (
	"math"

	"github.com/katalvlaran/linsolve/rref"
)

// DefaultEpsilon is the zero threshold used when no WithEpsilon option is
// given. It equals rref.DefaultEpsilon; the classification would be
// meaningless under a different tolerance than the reduction it reads.
const DefaultEpsilon = rref.DefaultEpsilon

const panicEpsilonInvalid = "linsys: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported; public entry points accept `...Option`
// and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy, forwarded to rref
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the zero threshold forwarded to the reduction.
// Panics with a stable message on NaN, ±Inf or negative input; eps = 0 is
// legal and demands exact zeros.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user-provided Option setters on top of defaults,
// in order (last-writer-wins). Canonical internal entry for every public
// operation.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps: DefaultEpsilon,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
