// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of dense
// containers. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The numeric policy is explicit and per-matrix:
//   - validateNaNInf controls whether Set()/ingestion rejects NaN/±Inf.
//   - eps is the non-negative tolerance used by structural checks (AllClose).
//   - The policy propagates only at creation; existing matrices keep theirs.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and internally resolve them via
// gatherOptions.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
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
//   - Applies to structural numeric checks (e.g., AllClose). Larger eps
//     relaxes equality checks; use judiciously.
//
// AI-Hints:
//   - Prefer small positive eps (e.g., 1e-9) for double-precision data
//     unless dealing with noisy inputs.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - When enabled, NaN and ±Inf are rejected on Set and ingestion.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Affects newly created matrices; existing matrices keep their policy.
//   - This is the default; use WithNoValidateNaNInf to relax.
//
// AI-Hints:
//   - Keep this enabled in data-clean pipelines; disable only when ingesting
//     external data with known ±Inf placeholders in controlled experiments.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Implementation:
//   - Stage 1: set validateNaNInf=false.
//
// Behavior highlights:
//   - Allows ±Inf/NaN to pass through on newly created matrices.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - This flag propagates only on creation; existing matrices are unaffected.
//
// AI-Hints:
//   - Sanitize downstream if you disable checks; reduction kernels assume
//     finite entries for meaningful pivot selection.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// --------------------------- Option Resolution ---------------------------

// NewMatrixOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from documented defaults (single source of truth).
//   - Stage 2: apply opts in order; last-writer-wins semantics.
//   - Stage 3: return the internal Options value.
//
// Behavior highlights:
//   - Pure function; no side effects beyond producing a value.
//
// Inputs:
//   - opts: zero or more functional setters.
//
// Returns:
//   - Options: internal struct with effective configuration.
//
// Determinism:
//   - Stable for a given sequence of opts.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
//
// AI-Hints:
//   - Compose options close to the constructor call-site for clarity.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry in api/impl layers.
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
//
// AI-Hints:
//   - Prefer gatherOptions(...) over ad-hoc defaulting in callers.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
