// Copyright 2025 The NumGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr provides NumGo's lazy expression-evaluation engine.
//
// # Overview
//
// Arithmetic, mathematical, and reduction operations on tensors are
// represented as composable, shape-aware expression nodes instead of
// materialized results. Constructing a node evaluates nothing; elements
// are computed one at a time when read, and only when read, so nested
// operator compositions never allocate intermediates.
//
// # Basic Usage
//
//	import (
//	    "github.com/numgo-ml/numgo/array"
//	    "github.com/numgo-ml/numgo/expr"
//	)
//
//	func main() {
//	    a, _ := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
//	    b, _ := array.Full(array.Shape{2, 3}, 10.0)
//
//	    // Lazy: nothing is computed here.
//	    sum, _ := expr.NewBinary(expr.Add, a, b)
//	    scaled := expr.NewBinaryScalar(expr.Mul, sum, 2.0)
//
//	    // Eager: one pass over the whole tree.
//	    c, _ := scaled.Materialize()
//	}
//
// # Broadcasting
//
// Binary expressions follow NumPy broadcasting rules: shapes are
// aligned from the trailing axis, extent-1 axes stretch to match, and
// unequal extents both greater than 1 fail with ErrShapeMismatch
// before any element is computed:
//
//	col, _ := array.FromSlice([]float64{1, 2, 3}, array.Shape{3, 1})
//	row, _ := array.FromSlice([]float64{10, 20}, array.Shape{1, 2})
//	grid, _ := expr.NewBinary(expr.Add, col, row) // shape (3, 2)
//
// # Reductions and Accumulation
//
// The Reduce family folds elements with a binary combiner, whole-tensor
// or per-axis, optionally masked and optionally seeded:
//
//	total, err := expr.Reduce(expr.Add, a)            // fails on empty input
//	total := expr.ReduceInit(expr.Add, a, 0.0)        // 0 on empty input
//	cols, err := expr.ReduceAxes(expr.Add, a, []int{0},
//	    expr.ReduceOptions[float64]{})                // shape (3,)
//
// Accumulate is the order-sensitive counterpart, writing every partial
// fold along one axis:
//
//	c, _ := expr.Accumulate(expr.Add, a, 0) // prefix sums
//
// # Concurrency
//
// Expression evaluation is synchronous and performs no internal
// locking. Reads are pure and reentrant, so an expression tree may be
// evaluated from several goroutines concurrently as long as no
// referenced container is mutated at the same time; overlapping a
// mutation with any access is the caller's responsibility to avoid.
//
// # Unchecked Preconditions
//
// Per-element loops are kept branch-free: duplicate axes passed to
// ReduceAxes are not validated, and the result of violating such a
// precondition is unspecified.
package expr
