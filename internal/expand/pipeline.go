package expand

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// RowKind tags an output row as an input point or a generated one.
type RowKind uint8

const (
	RowOriginal RowKind = iota
	RowGenerated
)

func (k RowKind) String() string {
	switch k {
	case RowOriginal:
		return "original"
	case RowGenerated:
		return "generated"
	default:
		return "unknown"
	}
}

// Row is one record of pipeline output. Category is the category of the
// source point; renderers may use it with Kind to colour the output.
type Row struct {
	Label    string
	Pos      r3.Vec
	Kind     RowKind
	Category CategoryID
}

// Run expands every point in input order. When includeOriginal is set,
// each point's own row precedes its generated rows. Points are independent:
// no sorting, merging or deduplication happens across them. An empty input
// yields an empty, non-nil slice.
func Run(points []Point, cfg *Config, includeOriginal bool) []Row {
	out := make([]Row, 0, len(points))
	for _, p := range points {
		out = append(out, pointRows(p, cfg, includeOriginal)...)
	}
	return out
}

// RunParallel is Run with per-point work spread over up to workers
// goroutines. The output order is identical to Run.
func RunParallel(points []Point, cfg *Config, includeOriginal bool, workers int) []Row {
	if workers <= 1 || len(points) < 2 {
		return Run(points, cfg, includeOriginal)
	}

	perPoint := make([][]Row, len(points))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, p := range points {
		i, p := i, p
		g.Go(func() error {
			perPoint[i] = pointRows(p, cfg, includeOriginal)
			return nil
		})
	}
	// Expansion cannot fail; Wait only joins the workers.
	_ = g.Wait()

	total := 0
	for _, rows := range perPoint {
		total += len(rows)
	}
	out := make([]Row, 0, total)
	for _, rows := range perPoint {
		out = append(out, rows...)
	}
	return out
}

func pointRows(p Point, cfg *Config, includeOriginal bool) []Row {
	cat := cfg.ClassifyPoint(p)
	gen := cfg.expandAs(p, cat)

	rows := make([]Row, 0, len(gen)+1)
	if includeOriginal {
		rows = append(rows, Row{Label: p.Label, Pos: p.Pos, Kind: RowOriginal, Category: cat})
	}
	for _, g := range gen {
		rows = append(rows, Row{Label: g.Label, Pos: g.Pos, Kind: RowGenerated, Category: g.Category})
	}
	return rows
}

// Summary counts pipeline output.
type Summary struct {
	Original  int
	Generated int
	// ByCategory counts generated rows per category.
	ByCategory map[CategoryID]int
}

// Summarize tallies rows by kind and generated rows by category.
func Summarize(rows []Row) Summary {
	s := Summary{ByCategory: make(map[CategoryID]int)}
	for _, r := range rows {
		switch r.Kind {
		case RowOriginal:
			s.Original++
		case RowGenerated:
			s.Generated++
			s.ByCategory[r.Category]++
		}
	}
	return s
}
