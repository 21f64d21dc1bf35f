package array

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestToMatRoundTrip verifies NumGo arrays survive a round trip through
// gonum's matrix type unchanged.
func TestToMatRoundTrip(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	m, err := ToMat(d)
	require.NoError(t, err)
	assert.Equal(t, 6.0, m.At(1, 2))

	back, err := FromMat(m)
	require.NoError(t, err)
	assert.Equal(t, d.Shape(), back.Shape())
	assert.Equal(t, d.Data(), back.Data())
}

// TestToMatColMajor verifies layout is normalized: gonum sees the same
// logical values regardless of the source storage order.
func TestToMatColMajor(t *testing.T) {
	d, err := FromSliceOrder([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, ColMajor)
	require.NoError(t, err)

	m, err := ToMat(d)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 2.0, m.At(1, 0))
	assert.Equal(t, 6.0, m.At(1, 2))
}

func TestToMatRankCheck(t *testing.T) {
	d, _ := Zeros[float64](Shape{2, 3, 4})
	_, err := ToMat(d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

// TestGonumInteropCompute runs a gonum operation on exported data as a
// cross-check of the conversion.
func TestGonumInteropCompute(t *testing.T) {
	d, _ := FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2})
	m, err := ToMat(d)
	require.NoError(t, err)

	var prod mat.Dense
	prod.Mul(m, m)

	// [[1,2],[3,4]]^2 = [[7,10],[15,22]]
	back, err := FromMat(&prod)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 10, 15, 22}, back.Data())
}
