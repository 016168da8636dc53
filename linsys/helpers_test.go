// SPDX-License-Identifier: MIT
// Shared fixtures for the linsys test suite.

package linsys_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
)

// hide wraps a Dense behind the plain interface so tests can force the
// generic element-access paths.
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

// mustDense allocates a zero-filled r×c matrix or fails the test.
func mustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// diagDominantSystem builds a random n×n strictly diagonally dominant
// system A·x = b. Dominance keeps A nonsingular and well conditioned, so
// the unique solution is reliable ground for cross-checks.
func diagDominantSystem(n int, seed int64) (*matrix.Dense, []float64) {
	rng := rand.New(rand.NewSource(seed))

	a, err := matrix.NewDense(n, n)
	if err != nil {
		panic(err)
	}
	data := a.RawData()

	var i, j int
	var rowSum float64
	for i = 0; i < n; i++ {
		rowSum = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v := rng.Float64()*2 - 1 // U(-1, 1)
			data[i*n+j] = v
			if v < 0 {
				v = -v
			}
			rowSum += v
		}
		data[i*n+i] = rowSum + 1 + rng.Float64()*3
	}

	b := make([]float64, n)
	for i = 0; i < n; i++ {
		b[i] = rng.Float64()*20 - 10
	}

	return a, b
}
