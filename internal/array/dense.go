package array

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Dense is a concrete, storage-backed N-dimensional container. Elements
// live in a single flat slice in the layout chosen at construction.
//
// Dense satisfies both the Reader and Writer contracts, so it can serve
// as an operand of lazy expressions and as the output of the eager
// algorithms. Its shape is fixed for its lifetime.
type Dense[T any] struct {
	data   []T
	shape  Shape
	stride []int
	order  Order
}

// NewDense creates a row-major Dense with the given shape. Memory is
// zero-initialized.
func NewDense[T any](shape Shape) (*Dense[T], error) {
	return NewDenseOrder[T](shape, RowMajor)
}

// NewDenseOrder creates a Dense with the given shape and memory layout.
// Returns an error wrapping ErrAllocation if the shape is invalid or
// the element count overflows.
func NewDenseOrder[T any](shape Shape, order Order) (*Dense[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrapf(ErrAllocation, "invalid shape: %v", err)
	}

	n := 1
	for _, dim := range shape {
		if dim > 0 && n > math.MaxInt/dim {
			return nil, errors.Wrapf(ErrAllocation, "shape %v element count overflows", shape)
		}
		n *= dim
	}

	return &Dense[T]{
		data:   make([]T, n),
		shape:  shape.Clone(),
		stride: shape.Strides(order),
		order:  order,
	}, nil
}

// Shape returns the container's shape.
func (d *Dense[T]) Shape() Shape {
	return d.shape
}

// Dim returns the extent of one axis.
func (d *Dense[T]) Dim(axis int) int {
	return d.shape[axis]
}

// NumElements returns the total number of elements.
func (d *Dense[T]) NumElements() int {
	return d.shape.NumElements()
}

// Order returns the container's memory layout.
func (d *Dense[T]) Order() Order {
	return d.order
}

// Strides returns the container's memory strides, in elements.
func (d *Dense[T]) Strides() []int {
	return d.stride
}

// flatOffset converts a multi-index into a flat storage offset.
// Panics if the index has the wrong rank or is out of bounds.
func (d *Dense[T]) flatOffset(idx Index) int {
	if len(idx) != len(d.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(d.shape), len(idx)))
	}
	offset := 0
	for i, x := range idx {
		if x < 0 || x >= d.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for axis %d (extent %d)", x, i, d.shape[i]))
		}
		offset += x * d.stride[i]
	}
	return offset
}

// At returns the element at the given multi-index.
// Panics if the index is out of bounds.
func (d *Dense[T]) At(idx Index) T {
	return d.data[d.flatOffset(idx)]
}

// SetAt stores the element at the given multi-index.
// Panics if the index is out of bounds.
func (d *Dense[T]) SetAt(idx Index, value T) {
	d.data[d.flatOffset(idx)] = value
}

// AtFlat returns the element at a flat storage offset, in memory order.
func (d *Dense[T]) AtFlat(i int) T {
	return d.data[i]
}

// Data returns the flat backing slice in storage order.
//
// WARNING: modifications to the returned slice modify the container.
func (d *Dense[T]) Data() []T {
	return d.data
}

// Fill assigns value to every element.
func (d *Dense[T]) Fill(value T) {
	for i := range d.data {
		d.data[i] = value
	}
}

// Item returns the value of a single-element container.
// Panics otherwise.
func (d *Dense[T]) Item() T {
	if len(d.data) != 1 {
		panic(fmt.Sprintf("Item() only works for single-element containers, got shape %v", d.shape))
	}
	return d.data[0]
}

// Clone creates a deep copy of the container.
func (d *Dense[T]) Clone() *Dense[T] {
	clone := &Dense[T]{
		data:   make([]T, len(d.data)),
		shape:  d.shape.Clone(),
		stride: append([]int(nil), d.stride...),
		order:  d.order,
	}
	copy(clone.data, d.data)
	return clone
}

// String returns a human-readable description of the container.
func (d *Dense[T]) String() string {
	return fmt.Sprintf("Dense%v %s", d.shape, d.order)
}
