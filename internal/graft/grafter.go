// Package graft orchestrates placing one sample into the network: it runs
// the per-segment placement search, groups segments by the attachment
// they land on, and performs whichever graph rewrite the grouping calls
// for (spec §4.5): a direct root attach, a bifurcation split (Case A), or
// a reassortment junction (Case B).
package graft

import (
	"fmt"

	"github.com/prabhavk/entwine/internal/mutationset"
	"github.com/prabhavk/entwine/internal/network"
	"github.com/prabhavk/entwine/internal/placement"
)

// Grafter holds the parameters every graft needs: the safety-bound
// multiplier for the placement search and the placeholder date stamped on
// synthetic nodes.
type Grafter struct {
	BoundMultiplier int
	PlaceholderDate string
}

// New builds a Grafter. A boundMultiplier <= 0 uses
// placement.DefaultBoundMultiplier.
func New(boundMultiplier int, placeholderDate string) *Grafter {
	return &Grafter{BoundMultiplier: boundMultiplier, PlaceholderDate: placeholderDate}
}

// Bootstrap places the very first non-root sample directly as a child of
// the root (spec §4.5 "Root bootstrap"). It must only be called when net
// currently holds just the root.
func (g *Grafter) Bootstrap(net *network.Network, name, date string, sampleMutations mutationset.BySegment) (*network.Node, error) {
	sample, err := net.AddNode(name, date, sampleMutations)
	if err != nil {
		return nil, err
	}
	if net.Size() != 2 {
		panic(fmt.Sprintf("graft: root bootstrap invariant violated: network has %d nodes, expected 2", net.Size()))
	}
	if err := net.AddBranch(net.Root(), sample, sampleMutations.Clone()); err != nil {
		return nil, err
	}
	return sample, nil
}

// group tracks the segments that placement search attached to the same
// node, in first-encountered segment order.
type group struct {
	attachment *network.Node
	segments   []int
}

// Graft places a new sample into an already-bootstrapped network.
func (g *Grafter) Graft(net *network.Network, name, date string, sampleMutations mutationset.BySegment) (*network.Node, error) {
	sample, err := net.AddNode(name, date, sampleMutations)
	if err != nil {
		return nil, err
	}

	results := make([]placement.Result, len(sampleMutations))
	for s := range sampleMutations {
		res, err := placement.Search(net, s, sampleMutations[s], g.BoundMultiplier)
		if err != nil {
			return nil, err
		}
		results[s] = res
	}

	groups := groupBySegment(results)

	if len(groups) == 1 {
		return sample, g.graftSingleGroup(net, sample, groups[0], results)
	}
	return sample, g.graftMultiGroup(net, sample, groups, results)
}

func groupBySegment(results []placement.Result) []*group {
	index := make(map[*network.Node]int)
	var groups []*group
	for s, res := range results {
		if idx, ok := index[res.Attachment]; ok {
			groups[idx].segments = append(groups[idx].segments, s)
			continue
		}
		index[res.Attachment] = len(groups)
		groups = append(groups, &group{attachment: res.Attachment, segments: []int{s}})
	}
	return groups
}

// residualBySegment assembles the full per-segment residual mutation set
// from every segment's placement result.
func residualBySegment(results []placement.Result) mutationset.BySegment {
	out := mutationset.NewBySegment(len(results))
	for s, res := range results {
		out[s] = res.Residual
	}
	return out
}

// graftSingleGroup implements Case A (spec §4.5): every segment agreed on
// one attachment node.
func (g *Grafter) graftSingleGroup(net *network.Network, sample *network.Node, grp *group, results []placement.Result) error {
	attachment := grp.attachment
	residual := residualBySegment(results)

	if attachment == net.Root() {
		return net.AddBranch(net.Root(), sample, residual)
	}
	return g.splitEdgeAndGraft(net, attachment, sample, results, allSegments(len(results)))
}

// splitEdgeAndGraft implements Case A's non-root edge-split rewrite:
// attachment's inbound edge is split at a fresh hidden node into the
// mutations common with the sample's descent path and the mutations unique
// to attachment, and grafted is placed under the hidden node. Case B uses
// splitEdgeAndGraftReassortment instead.
//
// relevantSegments lists the segment positions whose split uses the
// placement result's conflicting-mutations-on-path; any segment not
// listed contributes nothing to "common", its entire branch mutation set
// stays with attachment, and grafted gets no mutations for it. The only
// caller passes every segment.
func (g *Grafter) splitEdgeAndGraft(net *network.Network, attachment, grafted *network.Node, results []placement.Result, relevantSegments []bool) error {
	parent := attachment.Parent
	branch := attachment.BranchMutations

	common := mutationset.NewBySegment(len(branch))
	uniqueToAttachment := mutationset.NewBySegment(len(branch))
	for s := range branch {
		if !relevantSegments[s] {
			common[s] = mutationset.New()
			uniqueToAttachment[s] = branch[s].Clone()
			continue
		}
		unique, rest := branch[s].Split(results[s].Conflicting)
		uniqueToAttachment[s] = unique
		common[s] = rest
	}

	hidden, err := net.AddNode(net.NextHiddenName(), g.PlaceholderDate, mutationset.NewBySegment(len(branch)))
	if err != nil {
		return err
	}

	if err := net.RemoveBranch(parent, attachment); err != nil {
		return err
	}
	if err := net.AddBranch(parent, hidden, common); err != nil {
		return err
	}
	if err := net.AddBranch(hidden, attachment, uniqueToAttachment); err != nil {
		return err
	}
	graftedMutations := mutationset.NewBySegment(len(branch))
	for s := range branch {
		if relevantSegments[s] {
			graftedMutations[s] = results[s].Residual
		} else {
			graftedMutations[s] = mutationset.New()
		}
	}
	return net.AddBranch(hidden, grafted, graftedMutations)
}

func allSegments(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}
	return out
}

// graftMultiGroup implements Case B (spec §4.5): more than one attachment
// group. It first tests the parent-child exception, surfacing
// ErrUnsupported per the source's own undefined behavior there (spec §9),
// then performs the reassortment rewrite.
func (g *Grafter) graftMultiGroup(net *network.Network, sample *network.Node, groups []*group, results []placement.Result) error {
	if len(groups) == 2 && neitherIsRoot(net, groups) && isParentChildPair(groups[0].attachment, groups[1].attachment) {
		return &UnsupportedError{
			Sample: sample.Name,
			Reason: "two attachment groups where one's node is the other's parent has no defined rewrite",
		}
	}

	r, err := net.AddNode(net.NextReassortmentName(), g.PlaceholderDate, mutationset.NewBySegment(len(results)))
	if err != nil {
		return err
	}
	r.ReassortmentFlag = true

	for _, grp := range groups {
		if grp.attachment == net.Root() {
			// The root has no inbound edge to split: the junction's
			// per-segment parent for this group is simply the root.
			if err := net.AddBranch(net.Root(), r, mutationset.NewBySegment(len(results))); err != nil {
				return err
			}
			for _, s := range grp.segments {
				r.SetParentForSegment(s, net.Root())
			}
			continue
		}

		relevant := make([]bool, len(results))
		for _, s := range grp.segments {
			relevant[s] = true
		}

		hiddenName := net.NextHiddenNameFor(r.Name)
		hidden, err := g.splitEdgeAndGraftReassortment(net, grp.attachment, r, results, relevant, hiddenName)
		if err != nil {
			return err
		}

		for _, s := range grp.segments {
			r.SetParentForSegment(s, hidden)
		}
	}

	return net.AddBranch(r, sample, residualBySegment(results))
}

// neitherIsRoot reports whether neither group's attachment is the network
// root. The parent-child exception only applies to two non-root groups:
// a root attachment needs no edge split and so is never ambiguous.
func neitherIsRoot(net *network.Network, groups []*group) bool {
	return groups[0].attachment != net.Root() && groups[1].attachment != net.Root()
}

// splitEdgeAndGraftReassortment is splitEdgeAndGraft specialized for Case
// B: the hidden node's name is pre-assigned (so SetParentForSegment can
// reference it) and the grafted node is the shared reassortment junction
// rather than the sample itself.
func (g *Grafter) splitEdgeAndGraftReassortment(net *network.Network, attachment, junction *network.Node, results []placement.Result, relevantSegments []bool, hiddenName string) (*network.Node, error) {
	parent := attachment.Parent
	branch := attachment.BranchMutations

	common := mutationset.NewBySegment(len(branch))
	uniqueToAttachment := mutationset.NewBySegment(len(branch))
	for s := range branch {
		if !relevantSegments[s] {
			common[s] = mutationset.New()
			uniqueToAttachment[s] = branch[s].Clone()
			continue
		}
		unique, rest := branch[s].Split(results[s].Conflicting)
		uniqueToAttachment[s] = unique
		common[s] = rest
	}

	hidden, err := net.AddNode(hiddenName, g.PlaceholderDate, mutationset.NewBySegment(len(branch)))
	if err != nil {
		return nil, err
	}

	if err := net.RemoveBranch(parent, attachment); err != nil {
		return nil, err
	}
	if err := net.AddBranch(parent, hidden, common); err != nil {
		return nil, err
	}
	if err := net.AddBranch(hidden, attachment, uniqueToAttachment); err != nil {
		return nil, err
	}
	if err := net.AddBranch(hidden, junction, mutationset.NewBySegment(len(branch))); err != nil {
		return nil, err
	}
	return hidden, nil
}

// isParentChildPair reports whether a is b's parent or b is a's parent,
// using the single non-reassortment Parent pointer (spec §4.5's
// parent-child exception test).
func isParentChildPair(a, b *network.Node) bool {
	if a == b {
		return false
	}
	return a.Parent == b || b.Parent == a
}
