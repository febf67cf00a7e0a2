package placement

import (
	"errors"
	"fmt"
)

// ErrSearchDivergence is returned when a placement search exceeds its
// safety bound (spec §4.4) — a sign that a network invariant has been
// broken, since a well-formed network's depth is finite and strictly
// smaller than the bound.
var ErrSearchDivergence = errors.New("search divergence")

// DivergenceError wraps ErrSearchDivergence with the segment and node at
// which the bound was hit.
type DivergenceError struct {
	Segment  string
	LastNode string
	MaxSteps int
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("placement search for segment %q diverged after %d steps (last node %q)",
		e.Segment, e.MaxSteps, e.LastNode)
}

func (e *DivergenceError) Unwrap() error { return ErrSearchDivergence }
