package expr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/numgo/internal/array"
)

// counting wraps a binary payload and counts invocations, for checking
// that nodes stay lazy.
func counting[T any](f func(T, T) T) (func(T, T) T, *int) {
	calls := 0
	return func(x, y T) T {
		calls++
		return f(x, y)
	}, &calls
}

func mustFromSlice[T any](t *testing.T, data []T, shape array.Shape) *array.Dense[T] {
	t.Helper()
	d, err := array.FromSlice(data, shape)
	require.NoError(t, err)
	return d
}

// TestLaziness verifies constructing a node calls the payload zero
// times, and reading calls it exactly once per accessed position.
func TestLaziness(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, array.Shape{2, 2})
	b := mustFromSlice(t, []float64{10, 20, 30, 40}, array.Shape{2, 2})

	f, calls := counting(Add[float64])
	e, err := NewBinary(f, a, b)
	require.NoError(t, err)
	assert.Equal(t, 0, *calls, "construction must not evaluate")

	_ = e.At(array.Index{0, 1})
	assert.Equal(t, 1, *calls, "one read, one call")

	_, err = e.Materialize()
	require.NoError(t, err)
	assert.Equal(t, 5, *calls, "materialization visits each position once")
}

func TestUnaryExpr(t *testing.T) {
	a := mustFromSlice(t, []float64{1, -2, 3, -4}, array.Shape{2, 2})

	e := NewUnary(Abs[float64], a)
	assert.Equal(t, array.Shape{2, 2}, e.Shape())
	assert.Equal(t, 4, e.NumElements())
	assert.Equal(t, 2.0, e.At(array.Index{0, 1}))

	out, err := e.Materialize()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, out.Data())
}

// TestBinaryBroadcast verifies element values under broadcasting:
// result[i] == f(a[broadcastIndex(i)], b[broadcastIndex(i)]).
func TestBinaryBroadcast(t *testing.T) {
	col := mustFromSlice(t, []float64{1, 2, 3}, array.Shape{3, 1})
	row := mustFromSlice(t, []float64{10, 20}, array.Shape{1, 2})

	e, err := NewBinary(Add[float64], col, row)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{3, 2}, e.Shape())

	idx := make(array.Index, 2)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			idx[0], idx[1] = i, j
			want := col.At(array.Index{i, 0}) + row.At(array.Index{0, j})
			assert.Equal(t, want, e.At(idx), "mismatch at (%d, %d)", i, j)
		}
	}
}

func TestBinaryShapeMismatch(t *testing.T) {
	a, _ := array.Zeros[float64](array.Shape{3, 4})
	b, _ := array.Zeros[float64](array.Shape{3, 5})

	_, err := NewBinary(Add[float64], a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestBinaryScalarExpr(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, array.Shape{2, 2})

	right := NewBinaryScalar(Sub[float64], a, 1.0)
	assert.Equal(t, a.Shape(), right.Shape())
	assert.Equal(t, 3.0, right.At(array.Index{1, 1}))

	left := NewScalarBinary(Sub[float64], 10.0, a)
	assert.Equal(t, 6.0, left.At(array.Index{1, 1}))
}

// TestOuterExpr checks the outer shape law and the compound-index
// split: result[i, j] == f(a[i], b[j]).
func TestOuterExpr(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3}, array.Shape{3})
	b := mustFromSlice(t, []float64{10, 20}, array.Shape{2})

	e := NewOuter(Mul[float64], a, b)
	assert.Equal(t, array.Shape{3, 2}, e.Shape())
	assert.Equal(t, 6, e.NumElements())
	assert.Equal(t, 40.0, e.At(array.Index{1, 1}))

	out, err := e.Materialize()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 20, 40, 30, 60}, out.Data())
}

// TestNestedExpressions verifies trees of nodes compose without
// materializing intermediates.
func TestNestedExpressions(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, array.Shape{2, 2})
	b := mustFromSlice(t, []float64{10, 20, 30, 40}, array.Shape{2, 2})

	sum, err := NewBinary(Add[float64], a, b)
	require.NoError(t, err)
	scaled := NewBinaryScalar(Mul[float64], sum, 2.0)
	neg := NewUnary(Neg[float64], scaled)

	out, err := neg.Materialize()
	require.NoError(t, err)
	assert.Equal(t, []float64{-22, -44, -66, -88}, out.Data())
}

// TestMaterializeRoundTrip: for any expression e, the materialized
// container has the same shape and values.
func TestMaterializeRoundTrip(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3}, array.Shape{3, 1})
	b := mustFromSlice(t, []float64{5, 6}, array.Shape{1, 2})

	e, err := NewBinary(Mul[float64], a, b)
	require.NoError(t, err)

	c, err := e.Materialize()
	require.NoError(t, err)
	require.True(t, c.Shape().Equal(e.Shape()))
	for idx := range array.Indices(e.Shape(), array.RowMajor) {
		assert.Equal(t, e.At(idx), c.At(idx))
	}
}

// TestIdempotentReads: reading the same position twice yields the same
// value; nothing is cached or consumed.
func TestIdempotentReads(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, array.Shape{4})

	f, calls := counting(Add[float64])
	e := NewBinaryScalar(f, a, 1.0)

	idx := array.Index{2}
	first := e.At(idx)
	second := e.At(idx)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, *calls, "each read recomputes")
}

// TestOrderPropagation: a node reports its operands' common layout, or
// row-major when they disagree; this is only an iteration hint.
func TestOrderPropagation(t *testing.T) {
	rm, _ := array.Zeros[float64](array.Shape{2, 2})
	cm, _ := array.NewDenseOrder[float64](array.Shape{2, 2}, array.ColMajor)

	same, err := NewBinary(Add[float64], cm, cm)
	require.NoError(t, err)
	assert.Equal(t, array.ColMajor, same.Order())

	mixed, err := NewBinary(Add[float64], rm, cm)
	require.NoError(t, err)
	assert.Equal(t, array.RowMajor, mixed.Order())

	assert.Equal(t, array.ColMajor, NewUnary(Neg[float64], cm).Order())
}

// TestEmptyExpression: expressions over empty operands have zero
// elements and materialize to empty containers without error.
func TestEmptyExpression(t *testing.T) {
	a, _ := array.Zeros[float64](array.Shape{0, 3})

	e := NewUnary(Neg[float64], a)
	assert.Equal(t, 0, e.NumElements())

	out, err := e.Materialize()
	require.NoError(t, err)
	assert.Equal(t, 0, out.NumElements())
	assert.Equal(t, array.Shape{0, 3}, out.Shape())
}

func TestComparisonExpr(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 5, 3}, array.Shape{3})
	b := mustFromSlice(t, []float64{2, 2, 3}, array.Shape{3})

	e, err := NewBinary(Greater[float64], a, b)
	require.NoError(t, err)

	mask, err := e.Materialize()
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, mask.Data())
}
