package expr

import "github.com/numgo-ml/numgo/internal/array"

// Binary is a lazy element-wise application of f over two tensor-like
// operands with broadcasting. The broadcast shape is computed once at
// construction and cached; every At maps the target index onto each
// operand independently, stretching extent-1 axes.
type Binary[A, B, R any] struct {
	f     func(A, B) R
	a     array.Reader[A]
	b     array.Reader[B]
	shape array.Shape
	order array.Order

	// Operands whose shape already equals the broadcast shape take the
	// target index as-is, skipping the per-axis mapping.
	aDirect bool
	bDirect bool
}

// NewBinary builds a binary expression node over two tensor operands.
// Returns an error wrapping ErrShapeMismatch if the operand shapes
// cannot be broadcast together. Nothing is evaluated.
func NewBinary[A, B, R any](f func(A, B) R, a array.Reader[A], b array.Reader[B]) (*Binary[A, B, R], error) {
	shape, err := array.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, err
	}
	return &Binary[A, B, R]{
		f:       f,
		a:       a,
		b:       b,
		shape:   shape,
		order:   commonOrder(a.Order(), b.Order()),
		aDirect: a.Shape().Equal(shape),
		bDirect: b.Shape().Equal(shape),
	}, nil
}

// Shape returns the cached broadcast shape.
func (e *Binary[A, B, R]) Shape() array.Shape { return e.shape }

// Dim returns the broadcast extent on one axis.
func (e *Binary[A, B, R]) Dim(axis int) int { return e.shape[axis] }

// NumElements returns the broadcast element count.
func (e *Binary[A, B, R]) NumElements() int { return e.shape.NumElements() }

// Order returns the operands' common layout, or row-major if they
// disagree.
func (e *Binary[A, B, R]) Order() array.Order { return e.order }

// At computes f at one position, mapping the index onto each operand
// per the broadcasting rule.
func (e *Binary[A, B, R]) At(idx array.Index) R {
	ia := idx
	if !e.aDirect {
		ia = array.BroadcastIndex(make(array.Index, e.a.Shape().Rank()), idx, e.a.Shape())
	}
	ib := idx
	if !e.bDirect {
		ib = array.BroadcastIndex(make(array.Index, e.b.Shape().Rank()), idx, e.b.Shape())
	}
	return e.f(e.a.At(ia), e.b.At(ib))
}

// Materialize eagerly evaluates the expression into a new container.
func (e *Binary[A, B, R]) Materialize() (*array.Dense[R], error) {
	return Materialize[R](e)
}
