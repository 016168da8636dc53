// Package linsolve is your in-memory toolkit for reducing real matrices
// and reading the story they tell — from raw augmented systems to a full
// unique / none / infinitely-many verdict.
//
// 🚀 What is linsolve?
//
//	A small, deterministic, pure-Go linear-algebra library built around
//	one core transform and its interpretation:
//		• Dense matrices: fixed-shape, bounds-checked float64 containers
//		• RREF: Gauss–Jordan reduction with partial pivoting
//		• Pivots & rank: reported alongside every reduction
//		• Classification: unique / inconsistent / free-variable systems
//		• Interop: converters to and from gonum's mat.Dense
//
// ✨ Why choose linsolve?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, no randomness, no goroutines
//   - Honest numerics – explicit epsilon, documented defaults, no globals
//   - Pure Go – no cgo, no hidden state
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ — Dense container, validators, numeric options, gonum bridges
//	rref/   — the reducer: Reduce, ReduceInPlace, IsReduced, pivot columns
//	linsys/ — Classify and Solve for augmented systems [A|b]
//
// Quick ASCII example:
//
//	⎡ 1 -2  2 │ 0 ⎤        ⎡ 1 0 0 │ -1.00 ⎤
//	⎢ 0 -1 -1 │-2 ⎥  ──►   ⎢ 0 1 0 │  0.75 ⎥
//	⎣-2 -1 -1 │ 0 ⎦        ⎣ 0 0 1 │  1.25 ⎦
//
//	an augmented system reduced to RREF; the last column is the solution.
//
// Dive into the per-package docs for contracts, tolerance policy and
// worked examples.
//
//	go get github.com/katalvlaran/linsolve
package linsolve
