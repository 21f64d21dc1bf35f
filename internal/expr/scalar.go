package expr

import "github.com/numgo-ml/numgo/internal/array"

// BinaryScalar is a lazy application of f(a[i], scalar): the tensor
// operand on the left, a fixed scalar on the right. It is a distinct
// node type rather than a zero-stride fake tensor, so the hot path has
// no broadcast indirection; the shape is simply the tensor operand's.
type BinaryScalar[A, B, R any] struct {
	f      func(A, B) R
	a      array.Reader[A]
	scalar B
}

// NewBinaryScalar builds a tensor-scalar expression node. Nothing is
// evaluated.
func NewBinaryScalar[A, B, R any](f func(A, B) R, a array.Reader[A], scalar B) *BinaryScalar[A, B, R] {
	return &BinaryScalar[A, B, R]{f: f, a: a, scalar: scalar}
}

// Shape returns the tensor operand's shape.
func (e *BinaryScalar[A, B, R]) Shape() array.Shape { return e.a.Shape() }

// Dim returns the tensor operand's extent on one axis.
func (e *BinaryScalar[A, B, R]) Dim(axis int) int { return e.a.Dim(axis) }

// NumElements returns the tensor operand's element count.
func (e *BinaryScalar[A, B, R]) NumElements() int { return e.a.NumElements() }

// Order returns the tensor operand's preferred iteration order.
func (e *BinaryScalar[A, B, R]) Order() array.Order { return e.a.Order() }

// At computes f(a[idx], scalar).
func (e *BinaryScalar[A, B, R]) At(idx array.Index) R {
	return e.f(e.a.At(idx), e.scalar)
}

// Materialize eagerly evaluates the expression into a new container.
func (e *BinaryScalar[A, B, R]) Materialize() (*array.Dense[R], error) {
	return Materialize[R](e)
}

// ScalarBinary is the mirror of BinaryScalar: a fixed scalar on the
// left, the tensor operand on the right.
type ScalarBinary[A, B, R any] struct {
	f      func(A, B) R
	scalar A
	b      array.Reader[B]
}

// NewScalarBinary builds a scalar-tensor expression node. Nothing is
// evaluated.
func NewScalarBinary[A, B, R any](f func(A, B) R, scalar A, b array.Reader[B]) *ScalarBinary[A, B, R] {
	return &ScalarBinary[A, B, R]{f: f, scalar: scalar, b: b}
}

// Shape returns the tensor operand's shape.
func (e *ScalarBinary[A, B, R]) Shape() array.Shape { return e.b.Shape() }

// Dim returns the tensor operand's extent on one axis.
func (e *ScalarBinary[A, B, R]) Dim(axis int) int { return e.b.Dim(axis) }

// NumElements returns the tensor operand's element count.
func (e *ScalarBinary[A, B, R]) NumElements() int { return e.b.NumElements() }

// Order returns the tensor operand's preferred iteration order.
func (e *ScalarBinary[A, B, R]) Order() array.Order { return e.b.Order() }

// At computes f(scalar, b[idx]).
func (e *ScalarBinary[A, B, R]) At(idx array.Index) R {
	return e.f(e.scalar, e.b.At(idx))
}

// Materialize eagerly evaluates the expression into a new container.
func (e *ScalarBinary[A, B, R]) Materialize() (*array.Dense[R], error) {
	return Materialize[R](e)
}
