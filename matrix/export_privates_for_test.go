// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Options Snapshot
//
// Purpose:
//   - Expose the internal options snapshot to matrix_test ONLY.
//   - Enable verification of defaults and "last writer wins" semantics without
//     widening the prod API.
//
// Behavior & Determinism:
//   - Deterministic wrappers; no side effects.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update snapshotOf(...) accordingly (tests will catch drift).

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// NewMatrixOptionsSnapshot_TestOnly builds Options via public Option funcs and returns a snapshot.
func NewMatrixOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := NewMatrixOptions(opts...)

	return snapshotOf(o)
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
// Keep this wrapper in sync if the internal derivation pipeline changes.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o)
}

// snapshotOf copies internal fields to a public struct. Keep in sync with Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:            o.eps,
		ValidateNaNInf: o.validateNaNInf,
	}
}
