package network

import "github.com/prabhavk/entwine/internal/mutationset"

// Node is an entity in the network: an observed sample, the root, or a
// synthetic hidden/reassortment junction. All inter-node references are
// plain, non-owning pointers into the Network's node map (see the arena
// note in SPEC_FULL.md §3) — a Node never owns another Node.
type Node struct {
	Name string
	Date string

	// SampleMutations is empty, per segment, for every synthetic node.
	SampleMutations mutationset.BySegment
	// BranchMutations is the per-segment set acquired on the inbound edge
	// from Parent (or, for reassortment nodes, empty).
	BranchMutations mutationset.BySegment

	// Parent is the single inbound neighbor for non-reassortment nodes.
	// For reassortment nodes it is not meaningful; ParentBySegment is.
	Parent *Node
	// ParentBySegment holds, per segment position, the ancestor that
	// segment inherits from. Only populated for reassortment nodes.
	ParentBySegment []*Node

	Children []*Node

	ReassortmentFlag bool

	InDegree  int
	OutDegree int

	numSegments int
}

// newNode constructs a Node with the given identity and sample mutations.
// sampleMutations is retained by reference, not copied.
func newNode(name, date string, sampleMutations mutationset.BySegment) *Node {
	return &Node{
		Name:            name,
		Date:            date,
		SampleMutations: sampleMutations,
		BranchMutations: mutationset.NewBySegment(len(sampleMutations)),
		ParentBySegment: make([]*Node, len(sampleMutations)),
		numSegments:     len(sampleMutations),
	}
}

// SetParent sets the single parent and increments InDegree. It fails if a
// parent is already set, unless this node is a reassortment node being
// populated incrementally (one inbound edge per segment group).
func (n *Node) SetParent(p *Node) error {
	if n.Parent != nil && !n.ReassortmentFlag {
		return &ParentAlreadySetError{Child: n.Name}
	}
	n.Parent = p
	n.InDegree++
	return nil
}

// SetParentForSegment assigns the per-segment ancestor for a reassortment
// node. It does not affect InDegree — the corresponding generic inbound
// edge is tracked separately via SetParent/AddBranch.
func (n *Node) SetParentForSegment(segment int, p *Node) {
	n.ParentBySegment[segment] = p
}

// RemoveParent clears the single parent, decrements InDegree, and clears
// the branch mutations acquired on that edge.
func (n *Node) RemoveParent() {
	n.Parent = nil
	n.InDegree--
	n.BranchMutations = mutationset.NewBySegment(n.numSegments)
}

// AddChild appends c to n's child list and increments OutDegree.
func (n *Node) AddChild(c *Node) {
	n.Children = append(n.Children, c)
	n.OutDegree++
}

// RemoveChild removes c from n's child list and decrements OutDegree. It
// is an error to remove a child that is not present.
func (n *Node) RemoveChild(c *Node) error {
	for i, child := range n.Children {
		if child == c {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			n.OutDegree--
			return nil
		}
	}
	return errChildNotPresent
}

// SetBranchMutations replaces the per-segment inbound-edge mutations
// wholesale.
func (n *Node) SetBranchMutations(m mutationset.BySegment) {
	n.BranchMutations = m
}
