package config

import "math"

// Default geometry, in millimetres and degrees.
const (
	// SmallRadial is the base offset r; diagonals sit at D = r·√2 on each axis.
	SmallRadial = 2.0
	// LargeRadial is the radius of the three radial offsets.
	LargeRadial = 6.0
)

// RadialAnglesDeg are the BLUE radial directions. RED uses them mirrored in Y.
var RadialAnglesDeg = [3]float64{-30, 90, -150}

// Category names used by the default catalog.
const (
	CategoryBlue = "BLUE"
	CategoryRed  = "RED"
)

// DefaultCatalog returns the shipped BLUE/RED rule set: four diagonal
// offsets shared by both categories followed by three radial offsets, which
// RED mirrors in Y. Label numbers 1-50 are BLUE and 51-100 RED; anything
// else falls back to RED.
func DefaultCatalog() *CatalogFile {
	d := SmallRadial * math.Sqrt2
	diagonals := []DisplacementSpec{
		Cartesian("_1", +d, +d, 0),
		Cartesian("_2", -d, +d, 0),
		Cartesian("_3", -d, -d, 0),
		Cartesian("_4", +d, -d, 0),
	}
	radials := []DisplacementSpec{
		Polar("_5", LargeRadial, RadialAnglesDeg[0]),
		Polar("_6", LargeRadial, RadialAnglesDeg[1]),
		Polar("_7", LargeRadial, RadialAnglesDeg[2]),
	}

	return &CatalogFile{
		Fallback: CategoryRed,
		Categories: []CategorySpec{
			{
				Name:          CategoryBlue,
				Ranges:        []RangeSpec{{Lo: 1, Hi: 50}},
				Displacements: append(append([]DisplacementSpec{}, diagonals...), radials...),
			},
			{
				Name:          CategoryRed,
				Ranges:        []RangeSpec{{Lo: 51, Hi: 100}},
				Displacements: append(append([]DisplacementSpec{}, diagonals...), MirrorY(radials)...),
			},
		},
	}
}
