// Package placement implements the per-sample, per-segment descent search
// (spec §4.4): given a sample's mutations for one segment, greedily
// descend the network from the root, choosing at each step the child
// whose inbound branch shares the most mutations with what's left of the
// sample, until no further progress can be made.
package placement

import (
	"github.com/prabhavk/entwine/internal/boundedloop"
	"github.com/prabhavk/entwine/internal/mutationset"
	"github.com/prabhavk/entwine/internal/network"
)

// DefaultBoundMultiplier is the default safety-bound multiplier applied to
// the network's current size (spec §4.4's "100x current depth" — depth is
// bounded above by node count, so size is used as the depth proxy).
const DefaultBoundMultiplier = 100

// Result is the outcome of a single-segment placement search.
type Result struct {
	// Attachment is the node under which the sample should be grafted for
	// this segment.
	Attachment *network.Node
	// Residual is the sample's mutations, for this segment, that were not
	// matched anywhere along the descent — these become the sample's own
	// inbound-branch mutations if grafted directly below Attachment.
	Residual mutationset.Set
	// Conflicting is the set of mutations encountered on branches along
	// the chosen descent that are not present in the sample — used to
	// decide how to split Attachment's inbound edge.
	Conflicting mutationset.Set
}

// Search descends net from the root, tracking sampleMutations (the
// sample's mutations for segment) as the residual shrinks with each
// matched branch. boundMultiplier scales the safety bound (see
// DefaultBoundMultiplier); a value <= 0 means "use the default".
func Search(net *network.Network, segment int, sampleMutations mutationset.Set, boundMultiplier int) (Result, error) {
	if boundMultiplier <= 0 {
		boundMultiplier = DefaultBoundMultiplier
	}

	current := net.Root()
	residual := sampleMutations.Clone()
	conflicting := make(mutationset.Set)

	maxSteps := boundMultiplier * net.Size()
	if maxSteps < 1 {
		maxSteps = boundMultiplier
	}

	err := boundedloop.Run(func(step int) (bool, error) {
		chosen, matching, branchConflicting, chosenEmpty := selectChild(current, segment, residual)
		if chosen == nil {
			return true, nil // no children: current is the attachment
		}
		if !chosenEmpty && matching.Size() == 0 {
			return true, nil // non-empty branch, nothing matched: stop above it
		}

		residual.RemoveAll(matching)
		for m := range branchConflicting {
			conflicting.Add(m)
		}
		current = chosen
		return false, nil
	}, boundedloop.WithMaxSteps(maxSteps))

	if err != nil {
		return Result{}, &DivergenceError{
			Segment:  net.Segments().NameAt(segment),
			LastNode: current.Name,
			MaxSteps: maxSteps,
		}
	}

	return Result{Attachment: current, Residual: residual, Conflicting: conflicting}, nil
}

// selectChild picks the child of cur to descend into for this segment
// (spec §4.4(b)): a child whose branch has an empty mutation set for this
// segment is always chosen over any alternative (first such child, in
// stored order); otherwise the child with the greatest matching-mutation
// count wins, ties broken by stored order.
func selectChild(cur *network.Node, segment int, residual mutationset.Set) (chosen *network.Node, matching, conflicting mutationset.Set, chosenEmpty bool) {
	bestCount := -1

	for _, child := range cur.Children {
		branch := child.BranchMutations[segment]

		if branch.Size() == 0 {
			if chosenEmpty {
				continue // first empty-branch child already won
			}
			chosen = child
			matching = mutationset.New()
			conflicting = mutationset.New()
			chosenEmpty = true
			continue
		}
		if chosenEmpty {
			continue // an empty-branch child always outranks a non-empty one
		}

		childMatching, childConflicting := branch.Split(residual)
		if childMatching.Size() > bestCount {
			bestCount = childMatching.Size()
			chosen = child
			matching = childMatching
			conflicting = childConflicting
		}
	}

	return chosen, matching, conflicting, chosenEmpty
}
