// SPDX-License-Identifier: MIT
// White-box-adjacent tests for the tolerance options, via the test bridge.

package rref_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/rref"
)

// TestOptions_Defaults: no options resolve to DefaultEpsilon, which matches
// the matrix package's tolerance.
func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	snap := rref.GatherOptionsSnapshot_TestOnly()
	if snap.Eps != rref.DefaultEpsilon {
		t.Fatalf("default eps = %g; want %g", snap.Eps, rref.DefaultEpsilon)
	}
	if rref.DefaultEpsilon != matrix.DefaultEpsilon {
		t.Fatalf("rref default %g diverged from matrix default %g",
			rref.DefaultEpsilon, matrix.DefaultEpsilon)
	}
}

// TestOptions_LastWriterWins: later WithEpsilon calls override earlier ones;
// zero is a legal tolerance.
func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	snap := rref.GatherOptionsSnapshot_TestOnly(rref.WithEpsilon(1), rref.WithEpsilon(0.25))
	if snap.Eps != 0.25 {
		t.Fatalf("eps = %g; want 0.25", snap.Eps)
	}

	snap = rref.GatherOptionsSnapshot_TestOnly(rref.WithEpsilon(0))
	if snap.Eps != 0 {
		t.Fatalf("eps = %g; want 0", snap.Eps)
	}
}

// TestOptions_WithEpsilonPanics: NaN, negative and infinite tolerances are
// programmer errors with a stable panic message.
func TestOptions_WithEpsilonPanics(t *testing.T) {
	t.Parallel()

	expectPanicMessage(t, rref.PanicEpsilonInvalid_TestOnly, func() { _ = rref.WithEpsilon(math.NaN()) })
	expectPanicMessage(t, rref.PanicEpsilonInvalid_TestOnly, func() { _ = rref.WithEpsilon(-1) })
	expectPanicMessage(t, rref.PanicEpsilonInvalid_TestOnly, func() { _ = rref.WithEpsilon(math.Inf(1)) })
	expectPanicMessage(t, rref.PanicEpsilonInvalid_TestOnly, func() { _ = rref.WithEpsilon(math.Inf(-1)) })
}
