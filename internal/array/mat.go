package array

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ToMat converts a rank-2 float64 Dense into a gonum matrix, copying
// the data, so NumGo results can flow into gonum's linear-algebra
// routines. Returns an error wrapping ErrShapeMismatch for any other
// rank.
func ToMat(d *Dense[float64]) (*mat.Dense, error) {
	if d.Shape().Rank() != 2 {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"gonum interop requires rank 2, got shape %v", d.Shape())
	}

	rows, cols := d.Dim(0), d.Dim(1)
	if rows == 0 || cols == 0 {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"gonum matrices cannot be empty, got shape %v", d.Shape())
	}

	if d.Order() == RowMajor {
		return mat.NewDense(rows, cols, append([]float64(nil), d.Data()...)), nil
	}

	// Column-major storage: copy element-wise into gonum's row-major layout.
	m := mat.NewDense(rows, cols, nil)
	idx := make(Index, 2)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			idx[0], idx[1] = i, j
			m.Set(i, j, d.At(idx))
		}
	}
	return m, nil
}

// FromMat converts a gonum matrix into a rank-2 row-major float64
// Dense, copying the data.
func FromMat(m mat.Matrix) (*Dense[float64], error) {
	rows, cols := m.Dims()
	d, err := NewDense[float64](Shape{rows, cols})
	if err != nil {
		return nil, err
	}

	idx := make(Index, 2)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			idx[0], idx[1] = i, j
			d.SetAt(idx, m.At(i, j))
		}
	}
	return d, nil
}
