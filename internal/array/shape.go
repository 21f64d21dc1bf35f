// Package array provides the shape, index, and dense container types for
// the NumGo expression engine.
package array

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Order selects the memory layout of a container and the default
// visitation order of an index sequence.
type Order int

// Supported memory layouts.
const (
	// RowMajor iterates the last axis fastest (C order).
	RowMajor Order = iota
	// ColMajor iterates the first axis fastest (Fortran order).
	ColMajor
)

// String returns a human-readable layout name.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}

// Shape represents the per-axis extents of a tensor.
// A nil or empty Shape is a scalar (rank 0, one element).
type Shape []int

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements: the product of all
// extents, or 1 for a rank-0 shape. A shape with any zero extent has
// zero elements.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every extent is non-negative. Zero extents are
// legal: they describe empty tensors.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return errors.Errorf("invalid extent at axis %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String returns the shape in (d0, d1, ...) form.
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprint(dim)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Strides calculates the strides for the shape under the given layout.
// Strides are in elements, not bytes: under RowMajor stride[i] is the
// product of all extents after axis i, under ColMajor the product of
// all extents before it.
func (s Shape) Strides(order Order) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	if order == ColMajor {
		strides[0] = 1
		for i := 1; i < len(s); i++ {
			strides[i] = strides[i-1] * s[i-1]
		}
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes reconciles two shapes under NumPy broadcasting rules.
//
// Rules:
// 1. Compare shapes axis-wise from right to left
// 2. Extents are compatible if:
//   - They are equal, OR
//   - One of them is 1
//
// 3. Missing axes on the shorter shape are treated as 1
//
// Returns the broadcast shape, or an error wrapping ErrShapeMismatch if
// some axis has two unequal extents both greater than 1.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), nil
//	(1, 5) + (3, 5) → (3, 5), nil
//	(3, 4) + (3, 5) → nil, ErrShapeMismatch
func BroadcastShapes(a, b Shape) (Shape, error) {
	maxLen := max(len(a), len(b))
	result := make(Shape, maxLen)

	for i := 0; i < maxLen; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[maxLen-1-i] = aDim
		case aDim == 1:
			result[maxLen-1-i] = bDim
		case bDim == 1:
			result[maxLen-1-i] = aDim
		default:
			return nil, errors.Wrapf(ErrShapeMismatch,
				"shapes %v and %v not compatible for broadcasting (axis %d: %d vs %d)",
				a, b, maxLen-1-i, aDim, bDim)
		}
	}

	return result, nil
}

// ConcatShapes concatenates two shapes into one of rank
// a.Rank()+b.Rank(). Used by outer-product expressions; no
// compatibility check is needed.
func ConcatShapes(a, b Shape) Shape {
	result := make(Shape, 0, len(a)+len(b))
	result = append(result, a...)
	result = append(result, b...)
	return result
}

// BroadcastIndex maps a target multi-index onto an operand with the
// given shape: along each axis the operand index is the target index
// where the operand extent is greater than 1, and 0 otherwise. Axes are
// aligned from the trailing end, so a lower-rank operand sees only the
// trailing axes of idx. The mapped index is written into dst, which
// must have length shape.Rank(), and dst is returned for convenience.
func BroadcastIndex(dst Index, idx Index, shape Shape) Index {
	offset := len(idx) - len(shape)
	for i := range shape {
		if shape[i] > 1 {
			dst[i] = idx[offset+i]
		} else {
			dst[i] = 0
		}
	}
	return dst
}
