package array

import "github.com/pkg/errors"

// FromSlice creates a row-major Dense from a flat slice.
// The slice is copied; it must have exactly shape.NumElements()
// elements.
//
// Example:
//
//	a, err := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
func FromSlice[T any](data []T, shape Shape) (*Dense[T], error) {
	return FromSliceOrder(data, shape, RowMajor)
}

// FromSliceOrder creates a Dense from a flat slice, interpreting the
// slice in the given storage order.
func FromSliceOrder[T any](data []T, shape Shape, order Order) (*Dense[T], error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	d, err := NewDenseOrder[T](shape, order)
	if err != nil {
		return nil, err
	}
	copy(d.data, data)
	return d, nil
}

// Zeros creates a Dense filled with the zero value of T.
//
// Example:
//
//	a, err := array.Zeros[float64](array.Shape{3, 4})
func Zeros[T any](shape Shape) (*Dense[T], error) {
	return NewDense[T](shape)
}

// Full creates a Dense filled with a specific value.
//
// Example:
//
//	a, err := array.Full(array.Shape{3, 3}, 3.14)
func Full[T any](shape Shape, value T) (*Dense[T], error) {
	d, err := NewDense[T](shape)
	if err != nil {
		return nil, err
	}
	d.Fill(value)
	return d, nil
}

// Arange creates a 1-D Dense with the values start, start+1, ...
// up to but excluding end. An end at or below start yields an empty
// container.
//
// Example:
//
//	a, err := array.Arange[float64](0, 10) // [0, 1, ..., 9]
func Arange[T Number](start, end T) (*Dense[T], error) {
	n := 0
	for v := start; v < end; v++ {
		n++
	}

	d, err := NewDense[T](Shape{n})
	if err != nil {
		return nil, err
	}
	v := start
	for i := 0; i < n; i++ {
		d.data[i] = v
		v++
	}
	return d, nil
}

// Number is the constraint for element types the numeric creation
// helpers and operator catalog accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
