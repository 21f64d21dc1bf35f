// Package expr implements the lazy expression-evaluation engine for
// NumGo: composable, shape-aware expression nodes over tensor-like
// operands, plus the eager algorithms that consume them.
//
// Constructing a node evaluates nothing; elements are computed one at a
// time when At is called, and recomputed on every call. Nodes satisfy
// the same read contract (array.Reader) as the concrete container, so
// expressions nest to arbitrary depth without materializing
// intermediates.
package expr

import "github.com/numgo-ml/numgo/internal/array"

// Materialize eagerly evaluates any tensor-like source into a new
// concrete container with the same shape and layout, visiting every
// position once in the source's preferred order.
func Materialize[T any](src array.Reader[T]) (*array.Dense[T], error) {
	out, err := array.NewDenseOrder[T](src.Shape(), src.Order())
	if err != nil {
		return nil, err
	}
	for idx := range array.Indices(out.Shape(), out.Order()) {
		out.SetAt(idx, src.At(idx))
	}
	return out, nil
}

// commonOrder picks the layout reported by a node over two operands:
// the shared layout when both agree, row-major otherwise. This only
// affects default iteration order, never which value an index maps to.
func commonOrder(a, b array.Order) array.Order {
	if a == b {
		return a
	}
	return array.RowMajor
}
