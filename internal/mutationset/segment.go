package mutationset

import "fmt"

// SegmentList is the fixed, ordered list of segment names declared by an
// input header. All per-segment data (BySegment) is indexed positionally
// against the same SegmentList.
type SegmentList struct {
	names []string
	index map[string]int
}

// NewSegmentList builds a SegmentList from an ordered slice of names.
func NewSegmentList(names []string) SegmentList {
	idx := make(map[string]int, len(names))
	cp := make([]string, len(names))
	copy(cp, names)
	for i, n := range cp {
		idx[n] = i
	}
	return SegmentList{names: cp, index: idx}
}

// Len returns the number of declared segments.
func (sl SegmentList) Len() int { return len(sl.names) }

// Names returns the segment names in declared order. The returned slice
// must not be mutated by the caller.
func (sl SegmentList) Names() []string { return sl.names }

// Index returns the position of name in the segment list, or an error if
// name was never declared.
func (sl SegmentList) Index(name string) (int, error) {
	i, ok := sl.index[name]
	if !ok {
		return 0, fmt.Errorf("unknown segment %q", name)
	}
	return i, nil
}

// NameAt returns the segment name at position i.
func (sl SegmentList) NameAt(i int) string { return sl.names[i] }
