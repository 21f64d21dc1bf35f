package array

import "iter"

// Index is a multi-index: one offset per axis, identifying a single
// element position.
type Index []int

// Clone returns a copy of the index.
func (idx Index) Clone() Index {
	clone := make(Index, len(idx))
	copy(clone, idx)
	return clone
}

// Indices returns a lazy sequence of every multi-index of the shape, in
// the requested order (RowMajor: last axis fastest; ColMajor: first
// axis fastest). The sequence is finite and restartable: ranging over
// it again starts from the beginning.
//
// To avoid allocating per position, the yielded Index is owned by the
// iteration and reused; callers must Clone it before retaining it
// beyond the current step.
//
// A shape with any zero extent yields nothing. A rank-0 shape yields a
// single empty index.
func Indices(shape Shape, order Order) iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for _, dim := range shape {
			if dim <= 0 {
				return
			}
		}

		rank := len(shape)
		idx := make(Index, rank)
		if rank == 0 {
			yield(idx)
			return
		}

		// Simulates an N-dimensional counter: bump the fastest axis,
		// carry into the next on overflow.
	yielder:
		for {
			if !yield(idx) {
				return
			}

			if order == ColMajor {
				for axis := 0; axis < rank; axis++ {
					idx[axis]++
					if idx[axis] < shape[axis] {
						continue yielder
					}
					idx[axis] = 0
				}
			} else {
				for axis := rank - 1; axis >= 0; axis-- {
					idx[axis]++
					if idx[axis] < shape[axis] {
						continue yielder
					}
					idx[axis] = 0
				}
			}

			// Every axis overflowed: iteration is complete.
			break
		}
	}
}
