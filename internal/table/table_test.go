package table

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prabhavk/entwine/internal/mutationset"
)

func TestOpenParsesHeaderSegments(t *testing.T) {
	src, err := Open(strings.NewReader("date,id,S1,S2\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"S1", "S2"}, src.Segments().Names())
}

func TestNextParsesRowMutations(t *testing.T) {
	src, err := Open(strings.NewReader("date,id,S1,S2\n2001-01-01,A,x1:x2,y1\n"))
	require.NoError(t, err)

	row, err := src.Next()
	require.NoError(t, err)
	require.Equal(t, "2001-01-01", row.Date)
	require.Equal(t, "A", row.ID)
	require.Equal(t, mutationset.New("x1", "x2"), row.Mutations[0])
	require.Equal(t, mutationset.New("y1"), row.Mutations[1])
}

func TestNextHandlesEmptySegmentField(t *testing.T) {
	src, err := Open(strings.NewReader("date,id,S1,S2\n2001-01-01,A,x1,\n"))
	require.NoError(t, err)

	row, err := src.Next()
	require.NoError(t, err)
	require.Equal(t, 0, row.Mutations[1].Size())
}

func TestNextRejectsWrongColumnCount(t *testing.T) {
	src, err := Open(strings.NewReader("date,id,S1,S2\n2001-01-01,A,x1\n"))
	require.NoError(t, err)

	_, err = src.Next()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedRow))
}

func TestOpenRejectsHeaderWithTooFewColumns(t *testing.T) {
	_, err := Open(strings.NewReader("onlyonecolumn\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedRow))
}

func TestParseHeaderExtractsSegmentNames(t *testing.T) {
	segs, err := ParseHeader([]string{"date", "id", " S1 ", "S2"})
	require.NoError(t, err)
	require.Equal(t, []string{"S1", "S2"}, segs)
}

func TestParseHeaderRejectsTooFewColumns(t *testing.T) {
	_, err := ParseHeader([]string{"onlyonecolumn"})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedRow))
}

func TestParseRowSplitsSegmentFields(t *testing.T) {
	row, err := ParseRow([]string{"2001-01-01", "A", "x1:x2", "y1"}, []string{"S1", "S2"})
	require.NoError(t, err)
	require.Equal(t, "A", row.ID)
	require.Equal(t, mutationset.New("x1", "x2"), row.Mutations[0])
}

func TestParseRowRejectsWrongColumnCount(t *testing.T) {
	_, err := ParseRow([]string{"2001-01-01", "A", "x1"}, []string{"S1", "S2"})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedRow))
}

// fakeRowSource is an in-memory RowSource, demonstrating that Source
// only depends on the RowSource interface rather than encoding/csv.
type fakeRowSource struct {
	header []string
	rows   [][]string
	i      int
}

func (f *fakeRowSource) Header() ([]string, error) { return f.header, nil }

func (f *fakeRowSource) Next() ([]string, error) {
	if f.i >= len(f.rows) {
		return nil, io.EOF
	}
	row := f.rows[f.i]
	f.i++
	return row, nil
}

func TestSourceDrivesAnyRowSource(t *testing.T) {
	fake := &fakeRowSource{
		header: []string{"date", "id", "S1"},
		rows:   [][]string{{"2001-01-01", "A", "x1"}},
	}
	src, err := newSource(fake)
	require.NoError(t, err)
	require.Equal(t, []string{"S1"}, src.Segments().Names())

	row, err := src.Next()
	require.NoError(t, err)
	require.Equal(t, "A", row.ID)

	_, err = src.Next()
	require.ErrorIs(t, err, io.EOF)
}
