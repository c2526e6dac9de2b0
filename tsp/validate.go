package tsp

import "fmt"

// Validate checks Options for internal consistency.
//
// Errors: ErrNegativeIterations, ErrUnknownNeighbourhood.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.Iterations < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeIterations, o.Iterations)
	}
	switch o.Neighbourhood {
	case SwapMove, ReverseMove:
		// ok
	default:
		return fmt.Errorf("%w: %d", ErrUnknownNeighbourhood, int(o.Neighbourhood))
	}
	return nil
}
