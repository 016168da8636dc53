// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// mulSizes stay smaller: the product kernel is cubic.
var mulSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
	sinkB bool
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range mulSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 7)
			x := onesVec(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n+8) // rectangular
			fillDenseRand(b, A, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkAllClose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 99)
			B := mustDense(b, n, n)
			fillDenseRand(b, B, 99) // same seed: forces full scan (no early exit)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ok, err := matrix.AllClose(A, B, 0, 1e-12)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = ok
			}
		})
	}
}

func BenchmarkAugment(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 5)
			rhs := onesVec(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Augment(A, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
