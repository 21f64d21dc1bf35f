package array

// Reader is the read-only tensor-like contract satisfied by both the
// concrete Dense container and every lazy expression node.
//
// At must be pure: calling it any number of times for any valid index,
// in any order, yields the same value and has no side effects. Order is
// only an iteration hint; it never affects which value an index maps to.
type Reader[T any] interface {
	// Shape returns the per-axis extents. Callers must not mutate the
	// returned slice.
	Shape() Shape

	// Dim returns the extent of one axis.
	Dim(axis int) int

	// NumElements returns the total number of addressable positions.
	NumElements() int

	// At returns the element at the given multi-index.
	At(idx Index) T

	// Order reports the preferred iteration order.
	Order() Order
}

// Writer is the mutable tensor-like contract: a Reader whose positions
// can be assigned. Satisfied by the Dense container; the eager
// algorithms fill their outputs through it.
type Writer[T any] interface {
	Reader[T]

	// SetAt stores the element at the given multi-index.
	SetAt(idx Index, value T)
}
