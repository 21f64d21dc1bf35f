// Copyright 2025 The NumGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/numgo-ml/numgo/array"
	"github.com/numgo-ml/numgo/internal/expr"
)

// Expression node types. All satisfy array.Reader for their result
// element type, nest freely, and evaluate nothing until read.

// Unary is a lazy element-wise application over one operand.
type Unary[A, R any] = expr.Unary[A, R]

// Binary is a lazy broadcasting element-wise application over two
// tensor operands.
type Binary[A, B, R any] = expr.Binary[A, B, R]

// BinaryScalar is a lazy application with a fixed right operand.
type BinaryScalar[A, B, R any] = expr.BinaryScalar[A, B, R]

// ScalarBinary is a lazy application with a fixed left operand.
type ScalarBinary[A, B, R any] = expr.ScalarBinary[A, B, R]

// Outer is a lazy all-pairs (Cartesian product) application.
type Outer[A, B, R any] = expr.Outer[A, B, R]

// Vectorized wraps a scalar binary function (optionally with an
// identity element) for uniform use on scalars and tensors.
type Vectorized[T any] = expr.Vectorized[T]

// Vectorized1 wraps a scalar unary function.
type Vectorized1[A, R any] = expr.Vectorized1[A, R]

// ReduceOptions controls the axis-reduction form of Reduce.
type ReduceOptions[T any] = expr.ReduceOptions[T]

// Sentinel errors, matched with errors.Is.
var (
	ErrShapeMismatch  = expr.ErrShapeMismatch
	ErrEmptyReduction = expr.ErrEmptyReduction
	ErrAllocation     = expr.ErrAllocation
)

// Construction entry points (lazy)

// NewUnary builds a unary expression node over one operand.
//
// Example:
//
//	e := expr.NewUnary(math.Exp, a) // no evaluation yet
//	v := e.At(array.Index{0, 1})    // one element computed
func NewUnary[A, R any](f func(A) R, a array.Reader[A]) *Unary[A, R] {
	return expr.NewUnary(f, a)
}

// Map is a convenience alias for NewUnary.
func Map[A, R any](f func(A) R, a array.Reader[A]) *Unary[A, R] {
	return expr.Map(f, a)
}

// NewBinary builds a broadcasting binary expression node over two
// tensor operands. Fails with ErrShapeMismatch if the shapes cannot be
// broadcast together.
//
// Example:
//
//	e, err := expr.NewBinary(expr.Add, a, b)
//	c, err := e.Materialize()
func NewBinary[A, B, R any](f func(A, B) R, a array.Reader[A], b array.Reader[B]) (*Binary[A, B, R], error) {
	return expr.NewBinary(f, a, b)
}

// NewBinaryScalar builds a tensor-scalar expression node.
func NewBinaryScalar[A, B, R any](f func(A, B) R, a array.Reader[A], scalar B) *BinaryScalar[A, B, R] {
	return expr.NewBinaryScalar(f, a, scalar)
}

// NewScalarBinary builds a scalar-tensor expression node.
func NewScalarBinary[A, B, R any](f func(A, B) R, scalar A, b array.Reader[B]) *ScalarBinary[A, B, R] {
	return expr.NewScalarBinary(f, scalar, b)
}

// NewOuter builds an all-pairs expression node with shape equal to the
// concatenation of the operand shapes.
func NewOuter[A, B, R any](f func(A, B) R, a array.Reader[A], b array.Reader[B]) *Outer[A, B, R] {
	return expr.NewOuter(f, a, b)
}

// Materialize eagerly evaluates any tensor-like source into a new
// concrete container.
func Materialize[T any](src array.Reader[T]) (*array.Dense[T], error) {
	return expr.Materialize(src)
}

// Eager entry points

// Apply fills out with f applied element-wise to a.
func Apply[A, R any](out array.Writer[R], f func(A) R, a array.Reader[A]) error {
	return expr.Apply(out, f, a)
}

// Apply2 fills out with f applied element-wise to a and b, with
// broadcasting.
func Apply2[A, B, R any](out array.Writer[R], f func(A, B) R, a array.Reader[A], b array.Reader[B]) error {
	return expr.Apply2(out, f, a, b)
}

// Apply2Scalar fills out with f(a[i], scalar).
func Apply2Scalar[A, B, R any](out array.Writer[R], f func(A, B) R, a array.Reader[A], scalar B) error {
	return expr.Apply2Scalar(out, f, a, scalar)
}

// ApplyScalar2 fills out with f(scalar, b[i]).
func ApplyScalar2[A, B, R any](out array.Writer[R], f func(A, B) R, scalar A, b array.Reader[B]) error {
	return expr.ApplyScalar2(out, f, scalar, b)
}

// Reduce folds all elements of a into one value. Fails with
// ErrEmptyReduction on an empty input.
//
// Example:
//
//	total, err := expr.Reduce(expr.Add, a)
func Reduce[T any](f func(T, T) T, a array.Reader[T]) (T, error) {
	return expr.Reduce(f, a)
}

// ReduceInit folds all elements of a into init; an empty input returns
// init unchanged.
func ReduceInit[T any](f func(T, T) T, a array.Reader[T], init T) T {
	return expr.ReduceInit(f, a, init)
}

// ReduceWhere folds the elements of a where the mask is true into init.
func ReduceWhere[T any](f func(T, T) T, a array.Reader[T], init T, where array.Reader[bool]) (T, error) {
	return expr.ReduceWhere(f, a, init, where)
}

// ReduceAxes performs a partial reduction over the given axes.
//
// Example:
//
//	sums, err := expr.ReduceAxes(expr.Add, a, []int{0}, expr.ReduceOptions[float64]{})
func ReduceAxes[T any](f func(T, T) T, a array.Reader[T], axes []int, opts ReduceOptions[T]) (*array.Dense[T], error) {
	return expr.ReduceAxes(f, a, axes, opts)
}

// Accumulate returns the prefix folds of a along one axis.
//
// Example:
//
//	c, err := expr.Accumulate(expr.Add, a, 0) // cumulative sums
func Accumulate[T any](f func(T, T) T, a array.Reader[T], axis int) (*array.Dense[T], error) {
	return expr.Accumulate(f, a, axis)
}

// AccumulateInto writes the prefix folds of a along one axis into out.
func AccumulateInto[T any](out array.Writer[T], f func(T, T) T, a array.Reader[T], axis int) error {
	return expr.AccumulateInto(out, f, a, axis)
}

// OuterInto fills out with f applied to every pair of elements of a
// and b.
func OuterInto[A, B, R any](out array.Writer[R], f func(A, B) R, a array.Reader[A], b array.Reader[B]) error {
	return expr.OuterInto(out, f, a, b)
}

// Vectorization

// Vectorize wraps a scalar binary function with no identity element.
func Vectorize[T any](f func(T, T) T) *Vectorized[T] {
	return expr.Vectorize(f)
}

// VectorizeWithIdentity wraps a scalar binary function together with
// its neutral element.
//
// Example:
//
//	sum := expr.VectorizeWithIdentity(expr.Add[float64], 0)
//	total, err := sum.Reduce(a) // 0 on empty input
func VectorizeWithIdentity[T any](f func(T, T) T, identity T) *Vectorized[T] {
	return expr.VectorizeWithIdentity(f, identity)
}

// Vectorize1 wraps a scalar unary function.
func Vectorize1[A, R any](f func(A) R) *Vectorized1[A, R] {
	return expr.Vectorize1(f)
}
