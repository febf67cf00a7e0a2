// Package table reads the mutations CSV: a header row declaring segment
// names followed by one row per sample (spec §6 "Input — mutations
// table"). It owns CSV tokenization and column-count validation; the
// core never sees raw rows.
package table

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/prabhavk/entwine/internal/mutationset"
)

// Row is one parsed sample: its date, its identifier, and its per-segment
// mutation sets in the header's declared order.
type Row struct {
	Date      string
	ID        string
	Mutations mutationset.BySegment
}

// RowSource yields raw, untyped fields one row at a time: Header first,
// then Next for every data row. It abstracts the field encoding (CSV on
// disk, or a fixed in-memory slice in tests) away from ParseHeader and
// ParseRow, which only ever see []string.
type RowSource interface {
	// Header returns the header row's fields.
	Header() ([]string, error)
	// Next returns the next data row's fields. It returns io.EOF once
	// exhausted.
	Next() ([]string, error)
}

// csvRowSource is the on-disk RowSource, backed by encoding/csv.
type csvRowSource struct {
	r *csv.Reader
}

func newCSVRowSource(r io.Reader) RowSource {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated manually, per-row, against the header width
	return &csvRowSource{r: cr}
}

func (c *csvRowSource) Header() ([]string, error) { return c.r.Read() }
func (c *csvRowSource) Next() ([]string, error)   { return c.r.Read() }

// ParseHeader validates and extracts the ordered segment list from a
// header row's fields. fields[0] and fields[1] are the date and id
// columns; everything after is a segment name.
func ParseHeader(fields []string) ([]string, error) {
	if len(fields) < 2 {
		return nil, &MalformedRowError{Line: 1, Reason: "header must declare at least date and id columns"}
	}
	segNames := make([]string, len(fields)-2)
	for i, h := range fields[2:] {
		segNames[i] = strings.TrimSpace(h)
	}
	return segNames, nil
}

// ParseRow validates and parses one data row's fields against the
// declared segment list, splitting each segment field on ":" and
// trimming whitespace from every token (including the date and id
// columns). An empty token (e.g. a trailing or doubled ":") contributes
// nothing to that segment's mutation set.
func ParseRow(fields []string, segments []string) (Row, error) {
	want := 2 + len(segments)
	if len(fields) != want {
		return Row{}, &MalformedRowError{
			Reason: "want " + strconv.Itoa(want) + " columns, got " + strconv.Itoa(len(fields)),
		}
	}

	row := Row{
		Date:      strings.TrimSpace(fields[0]),
		ID:        strings.TrimSpace(fields[1]),
		Mutations: mutationset.NewBySegment(len(segments)),
	}
	for i, field := range fields[2:] {
		set := mutationset.New()
		for _, tok := range strings.Split(field, ":") {
			tok = strings.TrimSpace(tok)
			if tok != "" {
				set.Add(tok)
			}
		}
		row.Mutations[i] = set
	}
	return row, nil
}

// Source reads a mutations table header-first, then yields parsed rows
// one at a time. It drives a RowSource through ParseHeader/ParseRow.
type Source struct {
	rs       RowSource
	segments mutationset.SegmentList
}

// Open wraps r as a Source, reading and validating the header row
// immediately. The returned SegmentList is also available via Segments.
func Open(r io.Reader) (*Source, error) {
	return newSource(newCSVRowSource(r))
}

// newSource builds a Source around any RowSource, reading and validating
// its header row immediately. Exercised directly by tests that want to
// feed in-memory rows without going through CSV.
func newSource(rs RowSource) (*Source, error) {
	header, err := rs.Header()
	if err != nil {
		return nil, &MalformedRowError{Line: 1, Reason: err.Error()}
	}
	segNames, err := ParseHeader(header)
	if err != nil {
		return nil, err
	}
	return &Source{rs: rs, segments: mutationset.NewSegmentList(segNames)}, nil
}

// Segments returns the segment list declared by the header.
func (s *Source) Segments() mutationset.SegmentList { return s.segments }

// Next reads and parses the next row. It returns io.EOF when the table is
// exhausted.
func (s *Source) Next() (Row, error) {
	fields, err := s.rs.Next()
	if err != nil {
		return Row{}, err
	}
	return ParseRow(fields, s.segments.Names())
}
