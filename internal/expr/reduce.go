package expr

import (
	"github.com/pkg/errors"

	"github.com/numgo-ml/numgo/internal/array"
)

// Reduce folds every element of a into one value using f as the
// combiner, seeding the fold with the first element visited. Returns an
// error wrapping ErrEmptyReduction if a has zero elements: there is no
// implicit identity.
//
// For commutative, associative f the result is independent of
// visitation order; for other combiners the fold runs in a's preferred
// order.
func Reduce[T any](f func(T, T) T, a array.Reader[T]) (T, error) {
	var acc T
	first := true
	for idx := range array.Indices(a.Shape(), a.Order()) {
		if first {
			acc = a.At(idx)
			first = false
			continue
		}
		acc = f(acc, a.At(idx))
	}
	if first {
		return acc, errors.Wrapf(ErrEmptyReduction, "reduce over shape %v", a.Shape())
	}
	return acc, nil
}

// ReduceInit folds every element of a into init using f. An empty input
// returns init unchanged; this form never fails.
func ReduceInit[T any](f func(T, T) T, a array.Reader[T], init T) T {
	acc := init
	for idx := range array.Indices(a.Shape(), a.Order()) {
		acc = f(acc, a.At(idx))
	}
	return acc
}

// ReduceWhere folds the elements of a at positions where the mask is
// true into init. Excluded positions never touch the fold, so init and
// the included positions fully determine the result; an all-false mask
// returns init unchanged. Returns an error wrapping ErrShapeMismatch if
// the mask's shape differs from a's.
func ReduceWhere[T any](f func(T, T) T, a array.Reader[T], init T, where array.Reader[bool]) (T, error) {
	if !where.Shape().Equal(a.Shape()) {
		return init, errors.Wrapf(array.ErrShapeMismatch,
			"reduce: mask shape %v does not match input shape %v", where.Shape(), a.Shape())
	}

	acc := init
	for idx := range array.Indices(a.Shape(), a.Order()) {
		if where.At(idx) {
			acc = f(acc, a.At(idx))
		}
	}
	return acc, nil
}

// ReduceOptions controls the axis-reduction form.
type ReduceOptions[T any] struct {
	// KeepDims keeps the reduced axes in place with extent 1 instead of
	// removing them.
	KeepDims bool

	// Init, when non-nil, seeds every per-slice fold. Without it a
	// zero-length slice fails with ErrEmptyReduction.
	Init *T

	// Where, when non-nil, restricts each fold to positions where the
	// mask is true. Its shape must match the input's. Combine with Init
	// so a fully masked slice has a defined result.
	Where array.Reader[bool]
}

// ReduceAxes performs a partial reduction: for every combination of
// indices on the non-reduced axes it folds over the cross-product of
// the reduced axes only.
//
// Axes must be in range and free of duplicates; this is an unchecked
// precondition (the per-element loop stays branch-free), and violating
// it leaves the result unspecified. Axis order within axes does not
// affect the result for associative, commutative f.
func ReduceAxes[T any](f func(T, T) T, a array.Reader[T], axes []int, opts ReduceOptions[T]) (*array.Dense[T], error) {
	shape := a.Shape()
	rank := shape.Rank()

	if opts.Where != nil && !opts.Where.Shape().Equal(shape) {
		return nil, errors.Wrapf(array.ErrShapeMismatch,
			"reduce: mask shape %v does not match input shape %v", opts.Where.Shape(), shape)
	}

	reduced := make([]bool, rank)
	for _, axis := range axes {
		reduced[axis] = true
	}

	var outShape array.Shape
	if opts.KeepDims {
		outShape = shape.Clone()
		for _, axis := range axes {
			outShape[axis] = 1
		}
	} else {
		outShape = make(array.Shape, 0, rank-len(axes))
		for d := 0; d < rank; d++ {
			if !reduced[d] {
				outShape = append(outShape, shape[d])
			}
		}
	}

	out, err := array.NewDenseOrder[T](outShape, a.Order())
	if err != nil {
		return nil, err
	}

	// Sub-shape spanning only the reduced axes.
	subShape := make(array.Shape, 0, len(axes))
	for d := 0; d < rank; d++ {
		if reduced[d] {
			subShape = append(subShape, shape[d])
		}
	}

	full := make(array.Index, rank)
	for outIdx := range array.Indices(outShape, out.Order()) {
		// Scatter the output index into the non-reduced slots.
		if opts.KeepDims {
			copy(full, outIdx)
		} else {
			j := 0
			for d := 0; d < rank; d++ {
				if !reduced[d] {
					full[d] = outIdx[j]
					j++
				}
			}
		}

		var acc T
		seeded := false
		if opts.Init != nil {
			acc = *opts.Init
			seeded = true
		}

		for subIdx := range array.Indices(subShape, array.RowMajor) {
			j := 0
			for d := 0; d < rank; d++ {
				if reduced[d] {
					full[d] = subIdx[j]
					j++
				}
			}
			if opts.Where != nil && !opts.Where.At(full) {
				continue
			}
			if !seeded {
				acc = a.At(full)
				seeded = true
				continue
			}
			acc = f(acc, a.At(full))
		}

		if !seeded {
			return nil, errors.Wrapf(ErrEmptyReduction,
				"reduce over axes %v of shape %v at %v", axes, shape, outIdx)
		}
		out.SetAt(outIdx, acc)
	}

	return out, nil
}
