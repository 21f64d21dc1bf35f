package expr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo-ml/numgo/internal/array"
)

func TestVectorizedCall(t *testing.T) {
	sum := Vectorize(Add[float64])
	assert.Equal(t, 7.0, sum.Call(3, 4), "scalar pass-through")

	_, ok := sum.Identity()
	assert.False(t, ok)

	prod := VectorizeWithIdentity(Mul[float64], 1)
	id, ok := prod.Identity()
	require.True(t, ok)
	assert.Equal(t, 1.0, id)
}

// TestVectorizedReduceIdentity: a declared identity seeds the fold, so
// empty inputs reduce to the identity instead of failing.
func TestVectorizedReduceIdentity(t *testing.T) {
	empty, _ := array.Zeros[float64](array.Shape{0})
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, array.Shape{4})

	sum := VectorizeWithIdentity(Add[float64], 0)
	got, err := sum.Reduce(empty)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = sum.Reduce(a)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

func TestVectorizedReduceNoIdentity(t *testing.T) {
	empty, _ := array.Zeros[float64](array.Shape{0})

	sum := Vectorize(Add[float64])
	_, err := sum.Reduce(empty)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyReduction))

	// An explicit seed always works.
	assert.Equal(t, 5.0, sum.ReduceInit(empty, 5))
}

// TestVectorizedReduceWhere: masking without an identity is refused;
// with one, the identity seeds the fold.
func TestVectorizedReduceWhere(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5}, array.Shape{5})
	mask := mustFromSlice(t, []bool{true, false, true, false, true}, array.Shape{5})

	bare := Vectorize(Add[float64])
	_, err := bare.ReduceWhere(a, mask)
	require.Error(t, err)

	sum := VectorizeWithIdentity(Add[float64], 0)
	got, err := sum.ReduceWhere(a, mask)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)
}

func TestVectorizedExprForms(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4}, array.Shape{2, 2})
	b := mustFromSlice(t, []float64{10, 20, 30, 40}, array.Shape{2, 2})

	sum := Vectorize(Add[float64])

	e, err := sum.Expr(a, b)
	require.NoError(t, err)
	assert.Equal(t, 44.0, e.At(array.Index{1, 1}))

	assert.Equal(t, 6.0, sum.ExprScalar(a, 2).At(array.Index{1, 1}))
	assert.Equal(t, 104.0, sum.ScalarExpr(100, a).At(array.Index{1, 1}))
	assert.Equal(t, 24.0, sum.OuterExpr(a, b).At(array.Index{1, 1, 0, 1}))
}

func TestVectorizedReduceAxes(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})

	sum := VectorizeWithIdentity(Add[float64], 0)
	out, err := sum.ReduceAxes(a, []int{0}, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, out.Data())

	kept, err := sum.ReduceAxes(a, []int{0}, true)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{1, 3}, kept.Shape())
}

func TestVectorizedAccumulateAndOuter(t *testing.T) {
	a := mustFromSlice(t, []float64{1, 2, 3}, array.Shape{3})
	b := mustFromSlice(t, []float64{10, 20}, array.Shape{2})

	prod := VectorizeWithIdentity(Mul[float64], 1)

	acc, err := prod.Accumulate(a, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 6}, acc.Data())

	outer, err := prod.Outer(a, b)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{3, 2}, outer.Shape())
	assert.Equal(t, 40.0, outer.At(array.Index{1, 1}))
}

func TestVectorized1(t *testing.T) {
	double := Vectorize1(func(x float64) float64 { return 2 * x })
	assert.Equal(t, 8.0, double.Call(4))

	a := mustFromSlice(t, []float64{1, 2, 3}, array.Shape{3})
	assert.Equal(t, 4.0, double.Expr(a).At(array.Index{1}))

	out, _ := array.Zeros[float64](array.Shape{3})
	require.NoError(t, double.Into(out, a))
	assert.Equal(t, []float64{2, 4, 6}, out.Data())
}
