// Package ingest drives a mutations table row by row into a Network: the
// first row goes through the root-bootstrap path, every row after that
// through the general grafter (spec §4.6).
package ingest

import (
	"fmt"
	"io"

	"github.com/prabhavk/entwine/internal/graft"
	"github.com/prabhavk/entwine/internal/network"
	"github.com/prabhavk/entwine/internal/table"
)

// Stats summarizes a completed ingest run.
type Stats struct {
	RowsGrafted int
}

// RowReader is the minimal interface Run needs from a row source —
// satisfied by *table.Source, or by any other type with this Next method
// that yields rows without going through CSV.
type RowReader interface {
	Next() (table.Row, error)
}

// Run reads every row from src, grafting each into net in order. The
// first row is bootstrapped at the root; every later row goes through the
// general grafter. It stops and returns the first error encountered: a
// bootstrap or graft error is wrapped with the offending row's identifier,
// a row-read error is returned as is.
func Run(net *network.Network, g *graft.Grafter, src RowReader) (Stats, error) {
	var stats Stats

	for {
		row, err := src.Next()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}

		if stats.RowsGrafted == 0 {
			if _, err := g.Bootstrap(net, row.ID, row.Date, row.Mutations); err != nil {
				return stats, fmt.Errorf("bootstrapping %q: %w", row.ID, err)
			}
		} else {
			if _, err := g.Graft(net, row.ID, row.Date, row.Mutations); err != nil {
				return stats, fmt.Errorf("grafting %q: %w", row.ID, err)
			}
		}
		stats.RowsGrafted++
	}
}
