package mutationset

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// TestSplitPartitionsExhaustively checks, over many randomly generated
// sets, that Split always produces a partition of the receiver: every
// member ends up in exactly one of matching/remainder, and their sizes
// sum to the original.
func TestSplitPartitionsExhaustively(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 12)

	for i := 0; i < 200; i++ {
		var aTokens, bTokens []string
		f.Fuzz(&aTokens)
		f.Fuzz(&bTokens)

		a := New(aTokens...)
		b := New(bTokens...)

		matching, remainder := a.Split(b)
		require.Equal(t, a.Size(), matching.Size()+remainder.Size())

		for m := range a {
			inMatching := matching.Has(m)
			inRemainder := remainder.Has(m)
			require.True(t, inMatching != inRemainder, "mutation %q must land in exactly one partition", m)
			require.Equal(t, b.Has(m), inMatching)
		}
	}
}

// TestRemoveAllIsIdempotent checks that removing the same set twice is the
// same as removing it once.
func TestRemoveAllIsIdempotent(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 12)

	for i := 0; i < 200; i++ {
		var aTokens, bTokens []string
		f.Fuzz(&aTokens)
		f.Fuzz(&bTokens)

		once := New(aTokens...)
		once.RemoveAll(New(bTokens...))

		twice := New(aTokens...)
		twice.RemoveAll(New(bTokens...))
		twice.RemoveAll(New(bTokens...))

		require.True(t, once.Equal(twice))
	}
}
