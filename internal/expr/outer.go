package expr

import "github.com/numgo-ml/numgo/internal/array"

// Outer is a lazy all-pairs (Cartesian product) application of f. Its
// rank is the sum of the operand ranks: position (i..., j...) holds
// f(a[i...], b[j...]).
type Outer[A, B, R any] struct {
	f     func(A, B) R
	a     array.Reader[A]
	b     array.Reader[B]
	shape array.Shape
	order array.Order
	split int
}

// NewOuter builds an outer-product expression node. The shape is the
// concatenation of the operand shapes; no compatibility check is
// needed. Nothing is evaluated.
func NewOuter[A, B, R any](f func(A, B) R, a array.Reader[A], b array.Reader[B]) *Outer[A, B, R] {
	return &Outer[A, B, R]{
		f:     f,
		a:     a,
		b:     b,
		shape: array.ConcatShapes(a.Shape(), b.Shape()),
		order: commonOrder(a.Order(), b.Order()),
		split: a.Shape().Rank(),
	}
}

// Shape returns the cached concatenated shape.
func (e *Outer[A, B, R]) Shape() array.Shape { return e.shape }

// Dim returns the extent on one axis of the concatenated shape.
func (e *Outer[A, B, R]) Dim(axis int) int { return e.shape[axis] }

// NumElements returns the product of both operands' element counts.
func (e *Outer[A, B, R]) NumElements() int { return e.shape.NumElements() }

// Order returns the operands' common layout, or row-major if they
// disagree.
func (e *Outer[A, B, R]) Order() array.Order { return e.order }

// At splits the compound index into its leading and trailing components
// and computes f(a[i], b[j]).
func (e *Outer[A, B, R]) At(idx array.Index) R {
	return e.f(e.a.At(idx[:e.split]), e.b.At(idx[e.split:]))
}

// Materialize eagerly evaluates the expression into a new container.
func (e *Outer[A, B, R]) Materialize() (*array.Dense[R], error) {
	return Materialize[R](e)
}
