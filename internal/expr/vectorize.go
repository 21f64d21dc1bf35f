package expr

import (
	"github.com/pkg/errors"

	"github.com/numgo-ml/numgo/internal/array"
)

// Vectorized wraps a scalar binary function so it can be invoked
// uniformly on scalars and on whole tensors through the expression and
// algorithm layer. An optional identity element, declared at
// construction, serves as the default reduction seed.
type Vectorized[T any] struct {
	f           func(T, T) T
	identity    T
	hasIdentity bool
}

// Vectorize wraps a scalar binary function with no identity element.
// Reducing an empty input through the wrapper then requires an explicit
// seed.
func Vectorize[T any](f func(T, T) T) *Vectorized[T] {
	return &Vectorized[T]{f: f}
}

// VectorizeWithIdentity wraps a scalar binary function together with
// its neutral element (e.g. 0 for addition, 1 for multiplication),
// used as the fold seed whenever no explicit one is given.
func VectorizeWithIdentity[T any](f func(T, T) T, identity T) *Vectorized[T] {
	return &Vectorized[T]{f: f, identity: identity, hasIdentity: true}
}

// Call applies the wrapped function to two scalars.
func (v *Vectorized[T]) Call(x, y T) T {
	return v.f(x, y)
}

// Identity returns the declared identity element, if any.
func (v *Vectorized[T]) Identity() (T, bool) {
	return v.identity, v.hasIdentity
}

// Expr returns a lazy element-wise expression over two tensor operands.
func (v *Vectorized[T]) Expr(a, b array.Reader[T]) (*Binary[T, T, T], error) {
	return NewBinary(v.f, a, b)
}

// ExprScalar returns a lazy expression with a fixed right operand.
func (v *Vectorized[T]) ExprScalar(a array.Reader[T], scalar T) *BinaryScalar[T, T, T] {
	return NewBinaryScalar(v.f, a, scalar)
}

// ScalarExpr returns a lazy expression with a fixed left operand.
func (v *Vectorized[T]) ScalarExpr(scalar T, b array.Reader[T]) *ScalarBinary[T, T, T] {
	return NewScalarBinary(v.f, scalar, b)
}

// OuterExpr returns a lazy all-pairs expression over two operands.
func (v *Vectorized[T]) OuterExpr(a, b array.Reader[T]) *Outer[T, T, T] {
	return NewOuter(v.f, a, b)
}

// Reduce folds all elements of a. With a declared identity the fold is
// seeded by it and an empty input returns the identity; without one an
// empty input fails with ErrEmptyReduction.
func (v *Vectorized[T]) Reduce(a array.Reader[T]) (T, error) {
	if v.hasIdentity {
		return ReduceInit(v.f, a, v.identity), nil
	}
	return Reduce(v.f, a)
}

// ReduceInit folds all elements of a into an explicit seed, overriding
// any declared identity.
func (v *Vectorized[T]) ReduceInit(a array.Reader[T], init T) T {
	return ReduceInit(v.f, a, init)
}

// ReduceWhere folds the unmasked elements of a, seeded by the declared
// identity. A wrapper without an identity refuses the mask: excluded
// positions never touch the fold, so a seed is the only way the result
// stays defined.
func (v *Vectorized[T]) ReduceWhere(a array.Reader[T], where array.Reader[bool]) (T, error) {
	if !v.hasIdentity {
		var zero T
		return zero, errors.New("masked reduction requires an identity element or an explicit initial value")
	}
	return ReduceWhere(v.f, a, v.identity, where)
}

// ReduceAxes performs a partial reduction over the given axes, seeding
// each per-slice fold with the declared identity when present.
func (v *Vectorized[T]) ReduceAxes(a array.Reader[T], axes []int, keepDims bool) (*array.Dense[T], error) {
	opts := ReduceOptions[T]{KeepDims: keepDims}
	if v.hasIdentity {
		id := v.identity
		opts.Init = &id
	}
	return ReduceAxes(v.f, a, axes, opts)
}

// Accumulate returns the prefix folds of a along one axis.
func (v *Vectorized[T]) Accumulate(a array.Reader[T], axis int) (*array.Dense[T], error) {
	return Accumulate(v.f, a, axis)
}

// Outer materializes the all-pairs application of the wrapped function.
func (v *Vectorized[T]) Outer(a, b array.Reader[T]) (*array.Dense[T], error) {
	return NewOuter(v.f, a, b).Materialize()
}

// Vectorized1 wraps a scalar unary function for uniform use on scalars
// and tensors.
type Vectorized1[A, R any] struct {
	f func(A) R
}

// Vectorize1 wraps a scalar unary function.
func Vectorize1[A, R any](f func(A) R) *Vectorized1[A, R] {
	return &Vectorized1[A, R]{f: f}
}

// Call applies the wrapped function to a scalar.
func (v *Vectorized1[A, R]) Call(x A) R {
	return v.f(x)
}

// Expr returns a lazy element-wise expression over one operand.
func (v *Vectorized1[A, R]) Expr(a array.Reader[A]) *Unary[A, R] {
	return NewUnary(v.f, a)
}

// Into eagerly fills out with the wrapped function applied to a.
func (v *Vectorized1[A, R]) Into(out array.Writer[R], a array.Reader[A]) error {
	return Apply(out, v.f, a)
}
