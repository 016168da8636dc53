// SPDX-License-Identifier: MIT

package rref

// Test-Bridge (White-Box) for Options Snapshot
//
// Purpose:
//   - Expose the internal options snapshot to rref_test ONLY.
//   - Enable verification of the default tolerance and "last writer wins"
//     semantics without widening the prod API.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// Panic message export to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Eps float64
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps}
}
