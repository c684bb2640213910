package expand

import "gonum.org/v1/gonum/spatial/r3"

// Point is a labeled position in millimetres.
type Point struct {
	Label string
	Pos   r3.Vec
}

// GeneratedPoint is a point derived from a source point by one catalog
// entry. Category and Suffix record how it was produced.
type GeneratedPoint struct {
	Point
	Category CategoryID
	Suffix   string
}

// ClassifyPoint returns the category selected by p's label number.
func (c *Config) ClassifyPoint(p Point) CategoryID {
	return c.Classify(ExtractLabelNumber(p.Label))
}

// Expand produces one generated point per catalog entry of p's category,
// in catalog order. Labels are p.Label with the entry suffix appended;
// positions are p.Pos plus the entry offset. Labels without a number go
// through the fallback category like any other miss.
func (c *Config) Expand(p Point) []GeneratedPoint {
	cat := c.ClassifyPoint(p)
	return c.expandAs(p, cat)
}

func (c *Config) expandAs(p Point, cat CategoryID) []GeneratedPoint {
	disp := c.catalog[cat]
	out := make([]GeneratedPoint, len(disp))
	for i, d := range disp {
		out[i] = GeneratedPoint{
			Point: Point{
				Label: p.Label + d.Suffix,
				Pos:   r3.Add(p.Pos, d.Offset),
			},
			Category: cat,
			Suffix:   d.Suffix,
		}
	}
	return out
}
