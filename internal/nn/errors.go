package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDimensionMismatch = errors.New("vector length disagrees with layer size")
	ErrChainState        = errors.New("invalid layer chain state")
	ErrUnknownFunction   = errors.New("unknown activation or loss function")
	ErrNumeric           = errors.New("non-finite value produced")
)

// DimensionError reports a vector whose length disagrees with a layer's
// declared size. It matches ErrDimensionMismatch under errors.Is.
type DimensionError struct {
	Layer string // Name of the layer that rejected the vector
	Want  int    // Declared size
	Got   int    // Actual vector length
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: expected vector of length %d, got %d", e.Layer, e.Want, e.Got)
}

// Is reports whether this error matches ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}
