package expr

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/numgo-ml/numgo/internal/array"
)

// AccumulateInto writes prefix folds of a along one axis into out:
// out[..., k, ...] = f(...f(f(a[..., 0, ...], a[..., 1, ...]), ...), a[..., k, ...]).
//
// Unlike Reduce, the order along the axis is significant: positions are
// always combined left to right in natural index order, regardless of
// layout. The output shape must equal the input shape. A negative axis
// counts from the end.
func AccumulateInto[T any](out array.Writer[T], f func(T, T) T, a array.Reader[T], axis int) error {
	shape := a.Shape()
	axis = normalizeAxis(axis, shape.Rank(), "accumulate")

	if !out.Shape().Equal(shape) {
		return errors.Wrapf(array.ErrShapeMismatch,
			"accumulate: output shape %v does not match input shape %v", out.Shape(), shape)
	}

	n := shape[axis]
	if n == 0 {
		return nil
	}

	// One lane per combination of indices on the other axes.
	laneShape := shape.Clone()
	laneShape[axis] = 1

	idx := make(array.Index, shape.Rank())
	for start := range array.Indices(laneShape, a.Order()) {
		copy(idx, start)
		idx[axis] = 0
		acc := a.At(idx)
		out.SetAt(idx, acc)
		for k := 1; k < n; k++ {
			idx[axis] = k
			acc = f(acc, a.At(idx))
			out.SetAt(idx, acc)
		}
	}
	return nil
}

// Accumulate allocates a container shaped like a and fills it with
// prefix folds along one axis.
func Accumulate[T any](f func(T, T) T, a array.Reader[T], axis int) (*array.Dense[T], error) {
	out, err := array.NewDenseOrder[T](a.Shape(), a.Order())
	if err != nil {
		return nil, err
	}
	if err := AccumulateInto(out, f, a, axis); err != nil {
		return nil, err
	}
	return out, nil
}

// normalizeAxis resolves negative axes and panics on out-of-range ones.
func normalizeAxis(axis, rank int, op string) int {
	if axis < 0 {
		axis = rank + axis
	}
	if axis < 0 || axis >= rank {
		panic(fmt.Sprintf("%s: axis %d out of range for rank %d", op, axis, rank))
	}
	return axis
}
