package array

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSlice(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, d.Shape())
	assert.Equal(t, 6, d.NumElements())
	assert.Equal(t, RowMajor, d.Order())
	assert.Equal(t, 6.0, d.At(Index{1, 2}))
	assert.Equal(t, 4.0, d.At(Index{1, 0}))
}

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice([]int{1, 2, 3}, Shape{2, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

// TestFromSliceOrderColMajor verifies column-major storage: the flat
// slice is consumed with the first axis fastest, but At stays
// layout-independent.
func TestFromSliceOrderColMajor(t *testing.T) {
	d, err := FromSliceOrder([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, ColMajor)
	require.NoError(t, err)

	assert.Equal(t, ColMajor, d.Order())
	assert.Equal(t, 1.0, d.At(Index{0, 0}))
	assert.Equal(t, 2.0, d.At(Index{1, 0}))
	assert.Equal(t, 3.0, d.At(Index{0, 1}))
	assert.Equal(t, 6.0, d.At(Index{1, 2}))
}

func TestNewDenseInvalidShape(t *testing.T) {
	_, err := NewDense[float64](Shape{2, -3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAllocation))
}

func TestDenseSetAt(t *testing.T) {
	d, err := Zeros[int](Shape{2, 2})
	require.NoError(t, err)

	d.SetAt(Index{0, 1}, 7)
	assert.Equal(t, 7, d.At(Index{0, 1}))
	assert.Equal(t, 0, d.At(Index{1, 1}))
}

func TestDenseAtPanics(t *testing.T) {
	d, _ := Zeros[int](Shape{2, 2})

	assert.Panics(t, func() { d.At(Index{0}) }, "wrong rank")
	assert.Panics(t, func() { d.At(Index{0, 2}) }, "out of bounds")
}

func TestDenseClone(t *testing.T) {
	d, _ := FromSlice([]int{1, 2, 3, 4}, Shape{2, 2})
	c := d.Clone()

	c.SetAt(Index{0, 0}, 99)
	assert.Equal(t, 1, d.At(Index{0, 0}), "clone must not share storage")
	assert.Equal(t, 99, c.At(Index{0, 0}))
}

func TestDenseItem(t *testing.T) {
	d, _ := Full(Shape{}, 42)
	assert.Equal(t, 42, d.Item())

	m, _ := Zeros[int](Shape{2})
	assert.Panics(t, func() { m.Item() })
}

func TestFull(t *testing.T) {
	d, err := Full(Shape{2, 2}, 3.14)
	require.NoError(t, err)
	for idx := range Indices(d.Shape(), d.Order()) {
		assert.Equal(t, 3.14, d.At(idx))
	}
}

func TestArange(t *testing.T) {
	d, err := Arange[float64](0, 5)
	require.NoError(t, err)
	assert.Equal(t, Shape{5}, d.Shape())
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, d.Data())

	empty, err := Arange[int](3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumElements())
}
