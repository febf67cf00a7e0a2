// Package netdump renders a Network as the human-readable dump format
// described in spec §6 ("Output — network file"): a node list, an edge
// list, and mutation counts.
package netdump

import (
	"fmt"
	"io"
	"strings"

	"github.com/prabhavk/entwine/internal/network"
)

// Write renders net to w in the dump format. Edges are reported one per
// non-root node, using that node's single Parent — reassortment nodes
// have only one such line even though they carry a distinct ancestor per
// segment via ParentBySegment, matching the source's iteration over the
// plain `parent` field alone.
func Write(w io.Writer, net *network.Network) error {
	nodes := net.Nodes()

	if _, err := io.WriteString(w, "Network Nodes:\n"); err != nil {
		return err
	}
	for _, n := range nodes {
		if _, err := fmt.Fprintf(w, "%s\n", n.Name); err != nil {
			return err
		}
	}

	segments := net.Segments()
	totalMuts := 0
	perSegment := make([]int, segments.Len())

	if _, err := io.WriteString(w, "Network Edges:\n"); err != nil {
		return err
	}
	for _, n := range nodes {
		if n.Parent == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "Start: %s End: %s Mutations: ", n.Parent.Name, n.Name); err != nil {
			return err
		}
		for s := 0; s < segments.Len(); s++ {
			muts := n.BranchMutations[s].Sorted()
			totalMuts += len(muts)
			perSegment[s] += len(muts)
			if _, err := fmt.Fprintf(w, "%s:[%s] ", segments.NameAt(s), strings.Join(muts, ", ")); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Total number of mutations: %d\n", totalMuts); err != nil {
		return err
	}
	for s := 0; s < segments.Len(); s++ {
		if _, err := fmt.Fprintf(w, "Number of mutations in segment %s is %d\n", segments.NameAt(s), perSegment[s]); err != nil {
			return err
		}
	}
	return nil
}
