package expr

import "github.com/numgo-ml/numgo/internal/array"

// Unary is a lazy element-wise application of f over one operand. It
// mirrors the operand's shape and layout; no broadcasting is involved.
type Unary[A, R any] struct {
	f func(A) R
	a array.Reader[A]
}

// NewUnary builds a unary expression node. Nothing is evaluated: f is
// first called when an element is read.
func NewUnary[A, R any](f func(A) R, a array.Reader[A]) *Unary[A, R] {
	return &Unary[A, R]{f: f, a: a}
}

// Map is a convenience alias for NewUnary, reading closer to intent at
// call sites: Map(math.Exp, a).
func Map[A, R any](f func(A) R, a array.Reader[A]) *Unary[A, R] {
	return NewUnary(f, a)
}

// Shape returns the operand's shape.
func (e *Unary[A, R]) Shape() array.Shape { return e.a.Shape() }

// Dim returns the operand's extent on one axis.
func (e *Unary[A, R]) Dim(axis int) int { return e.a.Dim(axis) }

// NumElements returns the operand's element count.
func (e *Unary[A, R]) NumElements() int { return e.a.NumElements() }

// Order returns the operand's preferred iteration order.
func (e *Unary[A, R]) Order() array.Order { return e.a.Order() }

// At computes f at one position of the operand.
func (e *Unary[A, R]) At(idx array.Index) R {
	return e.f(e.a.At(idx))
}

// Materialize eagerly evaluates the expression into a new container.
func (e *Unary[A, R]) Materialize() (*array.Dense[R], error) {
	return Materialize[R](e)
}
