// hull/panel.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hull

import (
	"github.com/ascent-sim/ascent/math"
)

type Region int

const (
	RegionUpper Region = iota
	RegionLower
	RegionNoseCap
	RegionTail
	RegionLeadingEdge
	RegionEngineInlet
)

func (r Region) String() string {
	switch r {
	case RegionUpper:
		return "upper"
	case RegionLower:
		return "lower"
	case RegionNoseCap:
		return "nose cap"
	case RegionTail:
		return "tail"
	case RegionLeadingEdge:
		return "leading edge"
	case RegionEngineInlet:
		return "engine inlet"
	default:
		return "unknown"
	}
}

// Panel is one flat quadrilateral of the surface mesh. Panels are
// immutable once the geometry is built; the aero solver iterates over
// them on every solve, so they are kept as plain contiguous values.
type Panel struct {
	Vertices [4][3]float64
	Normal   [3]float64 // unit outward
	Centroid [3]float64
	Area     float64 // m^2
	Region   Region
}

// makePanel builds a panel from four vertices in winding order. The
// normal comes from the cross product of the diagonals, which also gives
// the exact area of a planar quad; outward orientation is fixed up
// against the local rib axis point.
func makePanel(v00, v01, v11, v10, axis [3]float64) Panel {
	d1 := math.Sub3(v11, v00)
	d2 := math.Sub3(v10, v01)
	cross := math.Cross3(d1, d2)

	p := Panel{
		Vertices: [4][3]float64{v00, v01, v11, v10},
		Area:     0.5 * math.Length3(cross),
		Centroid: math.Mid3(v00, v01, v11, v10),
		Normal:   math.Normalize3(cross),
	}

	if math.Dot3(p.Normal, math.Sub3(p.Centroid, axis)) < 0 {
		p.Normal = math.Scale3(p.Normal, -1)
	}
	return p
}
