// SPDX-License-Identifier: MIT
// Package rref_test shared fixtures and assertion helpers.
//
// Purpose:
//   - Deterministic matrix builders (literal and seeded-random).
//   - Assertions aligned with matrix.AllClose so tolerances stay uniform.

package rref_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/rref"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in the code under test.
type hide struct{ matrix.Matrix }

// mustFromRows builds a *Dense from a 2D literal or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// mustDense allocates an r×c zero *Dense or fails the test.
func mustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustReduce runs rref.Reduce and fails the test on error.
func mustReduce(t *testing.T, m matrix.Matrix, opts ...rref.Option) (*matrix.Dense, []int) {
	t.Helper()
	red, pivots, err := rref.Reduce(m, opts...)
	if err != nil {
		t.Fatalf("Reduce: %v", err)
	}

	return red, pivots
}

// wantMatrix asserts got ≈ want element-wise under an absolute tolerance;
// atol = 0 demands exact values.
func wantMatrix(t *testing.T, want [][]float64, got matrix.Matrix, atol float64) {
	t.Helper()
	w, err := matrix.FromRows(want)
	if err != nil {
		t.Fatalf("FromRows(want): %v", err)
	}
	ok, err := matrix.AllClose(got, w, 0, atol)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrix mismatch (atol=%g):\ngot:\n%vwant:\n%v", atol, got, w)
	}
}

// samePivots reports pivot-list equality; lengths first, then elements.
func samePivots(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// wantPivots asserts the pivot list matches exactly.
func wantPivots(t *testing.T, want, got []int) {
	t.Helper()
	if !samePivots(want, got) {
		t.Fatalf("pivots = %v; want %v", got, want)
	}
}

// assertReduced asserts IsReduced(m) under the given options.
func assertReduced(t *testing.T, m matrix.Matrix, opts ...rref.Option) {
	t.Helper()
	ok, err := rref.IsReduced(m, opts...)
	if err != nil {
		t.Fatalf("IsReduced: %v", err)
	}
	if !ok {
		t.Fatalf("IsReduced = false; want true\n%v", m)
	}
}

// assertErrorIs wraps errors.Is with consistent failure text.
func assertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// expectPanicMessage asserts fn() panics with exactly msg.
func expectPanicMessage(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got nil", msg)
		}
		if got, ok := r.(string); !ok || got != msg {
			t.Fatalf("panic message: got %v; want %q", r, msg)
		}
	}()
	fn()
}

// buildRandomDense returns an r×c Dense with deterministic entries in
// (-10, 10) and a sprinkling of exact zeros. Shared by the table tests,
// the property suite and the benchmarks; no testing handle so it can run
// inside property callbacks.
func buildRandomDense(r, c int, seed int64) *matrix.Dense {
	d, err := matrix.NewDense(r, c)
	if err != nil {
		panic(err) // unreachable for non-negative dimensions
	}
	rng := rand.New(rand.NewSource(seed))
	data := d.RawData()
	for i := range data {
		if rng.Intn(4) == 0 {
			continue // keep an exact zero to exercise skip paths
		}
		data[i] = (rng.Float64()*2 - 1) * 10
	}

	return d
}
