// Package network owns the mutable phylogenetic reassortment graph: nodes,
// edges, and the small set of operations (add/remove node, add/remove
// branch, lookup, iteration) the placement search and grafter build on.
package network

import (
	"fmt"
	"sort"

	"github.com/prabhavk/entwine/internal/mutationset"
)

// RootName is the identity of the network's single distinguished root.
const RootName = "Root"

// Network owns every node in the graph. It is exclusively owned by the
// ingest driver; all other references to nodes are non-owning pointers
// borrowed from its internal map, valid for the network's lifetime.
type Network struct {
	segments mutationset.SegmentList
	nodes    map[string]*Node
	root     *Node

	hIndex int
	rIndex int
}

// New creates a Network with its root already in place (spec §4.3
// create_root), using placeholderDate for the root's (otherwise
// unobserved) date field.
func New(segments mutationset.SegmentList, placeholderDate string) *Network {
	net := &Network{
		segments: segments,
		nodes:    make(map[string]*Node),
		hIndex:   1,
		rIndex:   1,
	}
	root := newNode(RootName, placeholderDate, mutationset.NewBySegment(segments.Len()))
	net.nodes[RootName] = root
	net.root = root
	return net
}

// Segments returns the network's fixed segment list.
func (net *Network) Segments() mutationset.SegmentList { return net.segments }

// Root returns the network's distinguished root node.
func (net *Network) Root() *Node { return net.root }

// Size returns the number of nodes currently in the network.
func (net *Network) Size() int { return len(net.nodes) }

// AddNode creates and stores a new node. It fails with a *DuplicateNameError
// if name is already in use.
func (net *Network) AddNode(name, date string, sampleMutations mutationset.BySegment) (*Node, error) {
	if _, exists := net.nodes[name]; exists {
		return nil, &DuplicateNameError{Name: name}
	}
	n := newNode(name, date, sampleMutations)
	net.nodes[name] = n
	return n, nil
}

// GetNode looks up a node by name, failing with a *NodeNotFoundError if
// absent.
func (net *Network) GetNode(name string) (*Node, error) {
	n, ok := net.nodes[name]
	if !ok {
		return nil, &NodeNotFoundError{Name: name}
	}
	return n, nil
}

// AddBranch wires parent and child together and copies branchMutations
// onto the child's inbound edge. It fails with *CycleDetectedError if the
// edge would make child an ancestor of itself, or *ParentAlreadySetError if
// child already has a non-reassortment parent.
func (net *Network) AddBranch(parent, child *Node, branchMutations mutationset.BySegment) error {
	if net.isAncestorOf(child, parent) {
		return &CycleDetectedError{Parent: parent.Name, Child: child.Name}
	}
	if err := child.SetParent(parent); err != nil {
		return err
	}
	parent.AddChild(child)
	child.SetBranchMutations(branchMutations)
	return nil
}

// RemoveBranch clears child's parent and removes child from parent's
// child list.
func (net *Network) RemoveBranch(parent, child *Node) error {
	child.RemoveParent()
	return parent.RemoveChild(child)
}

// isAncestorOf reports whether candidate is reachable by walking upward
// from start over every parent edge (the single Parent pointer and, for
// reassortment nodes, every distinct ParentBySegment entry). Used to
// detect cycles before an edge is added.
func (net *Network) isAncestorOf(candidate, start *Node) bool {
	if start == nil {
		return false
	}
	visited := make(map[*Node]bool)
	queue := []*Node{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == candidate {
			return true
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if cur.Parent != nil {
			queue = append(queue, cur.Parent)
		}
		for _, p := range cur.ParentBySegment {
			if p != nil {
				queue = append(queue, p)
			}
		}
	}
	return false
}

// NextHiddenName returns a fresh "H_<k>" name and advances the counter.
func (net *Network) NextHiddenName() string {
	name := fmt.Sprintf("H_%d", net.hIndex)
	net.hIndex++
	return name
}

// NextReassortmentName returns a fresh "R_<k>" name and advances the
// counter.
func (net *Network) NextReassortmentName() string {
	name := fmt.Sprintf("R_%d", net.rIndex)
	net.rIndex++
	return name
}

// NextHiddenNameFor returns a fresh "H_<k>_<rName>" name (a hidden node
// spawned to anchor a reassortment junction) and advances the hidden
// counter.
func (net *Network) NextHiddenNameFor(rName string) string {
	name := fmt.Sprintf("H_%d_%s", net.hIndex, rName)
	net.hIndex++
	return name
}

// Nodes returns every node in the network, sorted by name for deterministic
// iteration (plain Go map iteration is randomized; the original tool's
// std::map iterated in sorted key order, and this reproduces that).
func (net *Network) Nodes() []*Node {
	out := make([]*Node, 0, len(net.nodes))
	for _, n := range net.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
