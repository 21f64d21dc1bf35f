package expr

import (
	"github.com/pkg/errors"

	"github.com/numgo-ml/numgo/internal/array"
)

// Apply eagerly fills out with f applied to every element of a. The
// output shape must equal the input shape; otherwise an error wrapping
// ErrShapeMismatch is returned before any element is computed.
// Iteration follows the output's layout.
func Apply[A, R any](out array.Writer[R], f func(A) R, a array.Reader[A]) error {
	if !out.Shape().Equal(a.Shape()) {
		return errors.Wrapf(array.ErrShapeMismatch,
			"apply: output shape %v does not match input shape %v", out.Shape(), a.Shape())
	}

	for idx := range array.Indices(out.Shape(), out.Order()) {
		out.SetAt(idx, f(a.At(idx)))
	}
	return nil
}

// Apply2 eagerly fills out with f applied element-wise to a and b,
// broadcasting the operands. The output shape must equal the broadcast
// of the input shapes; shape errors are detected before any element is
// computed.
func Apply2[A, B, R any](out array.Writer[R], f func(A, B) R, a array.Reader[A], b array.Reader[B]) error {
	shape, err := array.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return errors.WithMessage(err, "apply2")
	}
	if !out.Shape().Equal(shape) {
		return errors.Wrapf(array.ErrShapeMismatch,
			"apply2: output shape %v does not match broadcast shape %v", out.Shape(), shape)
	}

	ia := make(array.Index, a.Shape().Rank())
	ib := make(array.Index, b.Shape().Rank())
	for idx := range array.Indices(out.Shape(), out.Order()) {
		va := a.At(array.BroadcastIndex(ia, idx, a.Shape()))
		vb := b.At(array.BroadcastIndex(ib, idx, b.Shape()))
		out.SetAt(idx, f(va, vb))
	}
	return nil
}

// Apply2Scalar eagerly fills out with f(a[i], scalar) for every
// position. The output shape must equal a's shape.
func Apply2Scalar[A, B, R any](out array.Writer[R], f func(A, B) R, a array.Reader[A], scalar B) error {
	if !out.Shape().Equal(a.Shape()) {
		return errors.Wrapf(array.ErrShapeMismatch,
			"apply2: output shape %v does not match input shape %v", out.Shape(), a.Shape())
	}

	for idx := range array.Indices(out.Shape(), out.Order()) {
		out.SetAt(idx, f(a.At(idx), scalar))
	}
	return nil
}

// ApplyScalar2 eagerly fills out with f(scalar, b[i]) for every
// position. The output shape must equal b's shape.
func ApplyScalar2[A, B, R any](out array.Writer[R], f func(A, B) R, scalar A, b array.Reader[B]) error {
	if !out.Shape().Equal(b.Shape()) {
		return errors.Wrapf(array.ErrShapeMismatch,
			"apply2: output shape %v does not match input shape %v", out.Shape(), b.Shape())
	}

	for idx := range array.Indices(out.Shape(), out.Order()) {
		out.SetAt(idx, f(scalar, b.At(idx)))
	}
	return nil
}

// OuterInto eagerly fills out with f applied to every pair of elements
// of a and b. The output shape must equal the concatenation of the
// input shapes.
func OuterInto[A, B, R any](out array.Writer[R], f func(A, B) R, a array.Reader[A], b array.Reader[B]) error {
	want := array.ConcatShapes(a.Shape(), b.Shape())
	if !out.Shape().Equal(want) {
		return errors.Wrapf(array.ErrShapeMismatch,
			"outer: output shape %v does not match %v", out.Shape(), want)
	}

	split := a.Shape().Rank()
	for idx := range array.Indices(out.Shape(), out.Order()) {
		out.SetAt(idx, f(a.At(idx[:split]), b.At(idx[split:])))
	}
	return nil
}
