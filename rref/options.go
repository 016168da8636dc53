// SPDX-License-Identifier: MIT

// Package rref: functional configuration for the reduction tolerance.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - the documented default tolerance (constant),
//   - WithEpsilon with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Per-call tolerance: eps travels with the call, never with the matrix.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package rref

import (
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon is the absolute magnitude below which an entry counts as
// zero during pivot selection and invariant verification. It deliberately
// equals matrix.DefaultEpsilon so both packages agree on "numerically zero".
const DefaultEpsilon = matrix.DefaultEpsilon

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "rref: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported; public entry points accept `...Option`
// and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy
	eps float64 // >= 0; DefaultEpsilon
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the zero threshold used by pivot selection and by
// IsReduced.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - eps = 0 is legal and demands exact zeros (useful on integer-valued
//     matrices; fragile on data that went through floating-point arithmetic).
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Larger eps treats more columns as degenerate; pivots become scarcer
//     and reported rank can only shrink.
//
// AI-Hints:
//   - Keep the default for double-precision data; raise eps only for inputs
//     known to carry measurement noise.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for every public operation.
// Implementation:
//   - Stage 1: start from documented defaults.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Inputs:
//   - user: sequence of Option setters.
//
// Returns:
//   - Options: fully resolved configuration.
//
// Determinism:
//   - Stable for a given sequence of setters.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps: DefaultEpsilon,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
