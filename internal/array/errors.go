package array

import "github.com/pkg/errors"

// Sentinel errors for the container layer. Match with errors.Is; the
// wrapped message carries the offending shapes.
var (
	// ErrShapeMismatch reports two shapes that cannot be broadcast
	// together, or an output whose fixed shape does not match the
	// computed one. Always raised before any element is touched.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrAllocation reports that a result container could not be
	// allocated. It is never recovered locally, only propagated.
	ErrAllocation = errors.New("allocation failed")
)
