// Copyright 2025 The NumGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API for NumGo's dense containers
// and shape primitives.
//
// The package defines the core types shared by the whole library:
//   - Dense[T]: a storage-backed N-dimensional container
//   - Shape, Index: per-axis extents and element positions
//   - Order: row-major or column-major memory layout
//   - Reader[T], Writer[T]: the tensor-like contracts that containers
//     and lazy expressions both satisfy
//
// Example:
//
//	a, err := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
//	v := a.At(array.Index{1, 2}) // 6
package array

import (
	"iter"

	"gonum.org/v1/gonum/mat"

	"github.com/numgo-ml/numgo/internal/array"
)

// Shape represents the per-axis extents of a tensor.
// Example: Shape{2, 3, 4} describes a 3-D tensor with extents 2×3×4.
type Shape = array.Shape

// Index is a multi-index identifying one element position.
type Index = array.Index

// Order selects memory layout and default iteration order.
type Order = array.Order

// Supported memory layouts.
const (
	RowMajor Order = array.RowMajor
	ColMajor Order = array.ColMajor
)

// Reader is the read-only tensor-like contract satisfied by containers
// and expression nodes alike.
type Reader[T any] = array.Reader[T]

// Writer is the mutable tensor-like contract satisfied by containers.
type Writer[T any] = array.Writer[T]

// Dense is a concrete, storage-backed N-dimensional container.
//
// Example:
//
//	a, err := array.Zeros[float64](array.Shape{2, 3})
//	a.SetAt(array.Index{0, 1}, 5)
type Dense[T any] = array.Dense[T]

// Number constrains the element types accepted by the numeric creation
// helpers.
type Number = array.Number

// Sentinel errors, matched with errors.Is.
var (
	ErrShapeMismatch = array.ErrShapeMismatch
	ErrAllocation    = array.ErrAllocation
)

// Creation functions

// NewDense creates a row-major Dense with the given shape.
func NewDense[T any](shape Shape) (*Dense[T], error) {
	return array.NewDense[T](shape)
}

// NewDenseOrder creates a Dense with the given shape and layout.
func NewDenseOrder[T any](shape Shape, order Order) (*Dense[T], error) {
	return array.NewDenseOrder[T](shape, order)
}

// FromSlice creates a row-major Dense from a flat slice.
//
// Example:
//
//	a, err := array.FromSlice([]float32{1, 2, 3, 4}, array.Shape{2, 2})
func FromSlice[T any](data []T, shape Shape) (*Dense[T], error) {
	return array.FromSlice(data, shape)
}

// FromSliceOrder creates a Dense from a flat slice in the given storage
// order.
func FromSliceOrder[T any](data []T, shape Shape, order Order) (*Dense[T], error) {
	return array.FromSliceOrder(data, shape, order)
}

// Zeros creates a Dense filled with the zero value of T.
func Zeros[T any](shape Shape) (*Dense[T], error) {
	return array.Zeros[T](shape)
}

// Full creates a Dense filled with a specific value.
func Full[T any](shape Shape, value T) (*Dense[T], error) {
	return array.Full(shape, value)
}

// Arange creates a 1-D Dense with values from start to end (exclusive).
//
// Example:
//
//	a, err := array.Arange[float64](0, 10) // [0, 1, ..., 9]
func Arange[T Number](start, end T) (*Dense[T], error) {
	return array.Arange(start, end)
}

// Utility functions

// BroadcastShapes reconciles two shapes under NumPy broadcasting rules.
//
// Example:
//
//	shape, err := array.BroadcastShapes(array.Shape{3, 1}, array.Shape{1, 5})
//	// shape = (3, 5)
func BroadcastShapes(a, b Shape) (Shape, error) {
	return array.BroadcastShapes(a, b)
}

// ConcatShapes concatenates two shapes, as used by outer products.
func ConcatShapes(a, b Shape) Shape {
	return array.ConcatShapes(a, b)
}

// Indices returns a lazy, restartable sequence of every multi-index of
// the shape in the requested order. The yielded Index is reused; Clone
// it before retaining.
func Indices(shape Shape, order Order) iter.Seq[Index] {
	return array.Indices(shape, order)
}

// gonum interop

// ToMat converts a rank-2 float64 Dense into a gonum matrix.
func ToMat(d *Dense[float64]) (*mat.Dense, error) {
	return array.ToMat(d)
}

// FromMat converts a gonum matrix into a rank-2 float64 Dense.
func FromMat(m mat.Matrix) (*Dense[float64], error) {
	return array.FromMat(m)
}
