package expr

import (
	"github.com/pkg/errors"

	"github.com/numgo-ml/numgo/internal/array"
)

// Sentinel errors shared with the container layer, re-declared here so
// engine callers only need one import. Match with errors.Is.
var (
	// ErrShapeMismatch: see array.ErrShapeMismatch.
	ErrShapeMismatch = array.ErrShapeMismatch

	// ErrAllocation: see array.ErrAllocation.
	ErrAllocation = array.ErrAllocation

	// ErrEmptyReduction reports a fold over zero elements with no
	// initial value and no declared identity. There is no implicit
	// identity: the caller must supply a seed to reduce an empty input.
	ErrEmptyReduction = errors.New("reduction of empty input without initial value")
)
