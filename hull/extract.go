// hull/extract.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hull

import (
	gomath "math"

	"github.com/ascent-sim/ascent/math"
)

const (
	// Longitudinal resolution of the mesh: 41 ribs, 40 panel rows.
	NumRibs = 41

	// Stations for the cross-sectional area distribution used by the
	// transonic area-rule drag term.
	NumVolumeStations = 20

	// Zero-width or zero-height sections are floored at this size in
	// canvas units so panels never degenerate to zero area and NaN
	// normals.
	degenerateFloor = 0.1

	// Panels in the first 5% of the body are the nose cap, the last 10%
	// the tail; in between, near-horizontal normals mark leading edges.
	noseCapFraction    = 0.05
	tailFraction       = 0.90
	leadingEdgeNormalZ = 0.15
	minPlanformArea    = 1.0 // m^2
	minWingspan        = 1.0 // m
)

// RegionAreas is the wetted-area breakdown by panel classification, in
// m^2. It is produced by ordinary reduction over the panel list.
type RegionAreas struct {
	NoseCap     float64
	LeadingEdge float64
	Upper       float64
	Lower       float64
	EngineInlet float64
	Tail        float64
}

func (ra RegionAreas) Total() float64 {
	return ra.NoseCap + ra.LeadingEdge + ra.Upper + ra.Lower + ra.EngineInlet + ra.Tail
}

// Geometry aggregates the panel mesh and the scalar properties derived
// from it. It is immutable once extracted; the aero solver and mass
// model only ever read it.
type Geometry struct {
	Panels []Panel

	Length           float64 // m
	WettedArea       float64 // m^2
	PlanformArea     float64 // m^2, floored positive
	Wingspan         float64 // m, floored positive
	AspectRatio      float64
	FinenessRatio    float64
	ThicknessRatio   float64
	LeadingEdgeSweep float64 // radians
	NoseRadius       float64 // m
	Volume           float64 // m^3

	// Cross-sectional area at NumVolumeStations stations along the
	// body, m^2.
	VolumeDistribution [NumVolumeStations]float64

	Areas RegionAreas
}

// ExtractGeometry converts the three curve descriptors into the panel
// mesh and derived scalars. It is deterministic: identical descriptors
// produce identical geometry.
func ExtractGeometry(profile *SideProfile, planform *Planform, cross *CrossSection) *Geometry {
	loop := unitSectionLoop(cross)

	x0, x1 := planform.XRange()
	scale := planform.AircraftLength / (x1 - x0) // meters per canvas unit

	// Build the ribs: the unit section scaled to the local half-width
	// and height, offset to the local vertical center.
	type rib struct {
		verts []([3]float64)
		axis  [3]float64 // center point, for outward normal orientation
		area  float64    // cross-sectional area, m^2
		x     float64    // m
	}
	ribs := make([]rib, NumRibs)
	maxHalfWidth, maxHalfWidthX := 0.0, 0.0
	maxHeight := 0.0

	for i := range NumRibs {
		xc := math.Lerp(float64(i)/float64(NumRibs-1), x0, x1)

		halfWidth := max(planform.HalfWidth(xc), degenerateFloor)
		top, bottom := profile.TopZ(xc), profile.BottomZ(xc)
		height := math.Clamp(top-bottom, degenerateFloor, profile.MaxHeight)
		center := (top + bottom) / 2

		if halfWidth > maxHalfWidth {
			maxHalfWidth, maxHalfWidthX = halfWidth, xc
		}
		maxHeight = max(maxHeight, height)

		r := rib{
			x:    (xc - x0) * scale,
			axis: [3]float64{(xc - x0) * scale, 0, center * scale},
		}
		poly := make([][2]float64, len(loop))
		for j, p := range loop {
			y := p[0] * halfWidth * scale
			z := (center + p[1]*height/2) * scale
			r.verts = append(r.verts, [3]float64{r.x, y, z})
			poly[j] = [2]float64{y, z}
		}
		r.area = shoelaceArea(poly)
		ribs[i] = r
	}

	bayStart, bayEnd := profile.EngineBay()

	g := &Geometry{Length: planform.AircraftLength}
	g.Panels = make([]Panel, 0, (NumRibs-1)*len(loop))
	maxY := 0.0

	for i := range NumRibs - 1 {
		frac := (float64(i) + 0.5) / float64(NumRibs-1)
		xc := math.Lerp(frac, x0, x1)
		axis := math.Scale3(math.Add3(ribs[i].axis, ribs[i+1].axis), 0.5)

		for j := range loop {
			jn := (j + 1) % len(loop)
			p := makePanel(ribs[i].verts[j], ribs[i].verts[jn],
				ribs[i+1].verts[jn], ribs[i+1].verts[j], axis)
			if p.Area <= 0 {
				continue
			}

			p.Region = classify(frac, xc, p.Normal, bayStart, bayEnd)
			g.Panels = append(g.Panels, p)

			for _, v := range p.Vertices {
				maxY = max(maxY, math.Abs(v[1]))
			}
		}
	}

	// Derived scalars. Planform area counts the downward projection of
	// the upper surface and nose cap.
	for _, p := range g.Panels {
		g.WettedArea += p.Area
		if p.Region == RegionUpper || p.Region == RegionNoseCap {
			g.PlanformArea += p.Area * math.Abs(p.Normal[2])
		}
	}
	g.Areas = reduceRegionAreas(g.Panels)

	g.PlanformArea = max(g.PlanformArea, minPlanformArea)
	g.Wingspan = max(2*maxY, minWingspan)
	g.AspectRatio = math.Sqr(g.Wingspan) / g.PlanformArea

	// Volume by trapezoidal integration of the rib areas, and the
	// station array for the area-rule term.
	maxSection := 0.0
	for i := range NumRibs - 1 {
		dx := ribs[i+1].x - ribs[i].x
		g.Volume += dx * (ribs[i].area + ribs[i+1].area) / 2
	}
	for _, r := range ribs {
		maxSection = max(maxSection, r.area)
	}
	for s := range NumVolumeStations {
		// 41 ribs resample exactly onto 20 even stations.
		g.VolumeDistribution[s] = ribs[s*(NumRibs-1)/(NumVolumeStations-1)].area
	}

	// Length over the equivalent diameter of the largest cross section,
	// dimensionless and invariant under isotropic rescaling.
	g.FinenessRatio = g.Length / gomath.Sqrt(4*max(maxSection, 1e-6)/gomath.Pi)
	g.ThicknessRatio = maxHeight * scale / g.Length
	g.LeadingEdgeSweep = gomath.Atan2(maxHalfWidthX-x0, max(maxHalfWidth, degenerateFloor))
	g.NoseRadius = noseRadius(planform, x0, x1, scale)

	return g
}

func classify(frac, xc float64, normal [3]float64, bayStart, bayEnd float64) Region {
	switch {
	case frac < noseCapFraction:
		return RegionNoseCap
	case frac > tailFraction:
		return RegionTail
	case math.Abs(normal[2]) < leadingEdgeNormalZ:
		return RegionLeadingEdge
	case normal[2] > 0:
		return RegionUpper
	case xc >= bayStart && xc <= bayEnd:
		return RegionEngineInlet
	default:
		return RegionLower
	}
}

func reduceRegionAreas(panels []Panel) RegionAreas {
	var ra RegionAreas
	for _, p := range panels {
		switch p.Region {
		case RegionNoseCap:
			ra.NoseCap += p.Area
		case RegionLeadingEdge:
			ra.LeadingEdge += p.Area
		case RegionUpper:
			ra.Upper += p.Area
		case RegionLower:
			ra.Lower += p.Area
		case RegionEngineInlet:
			ra.EngineInlet += p.Area
		case RegionTail:
			ra.Tail += p.Area
		}
	}
	return ra
}

// unitSectionLoop samples the cross-section spline and normalizes it to
// [-1,1]x[-1,1]: a closed loop running across the top left to right,
// then back along the bottom.
func unitSectionLoop(cross *CrossSection) [][2]float64 {
	steps := cross.Steps
	if steps <= 0 {
		steps = defaultCrossSectionSteps
	}

	loop := SampleCatmullRom(cross.Top, steps)
	loop = append(loop, SampleCatmullRom(cross.Bottom, steps)...)

	minX, maxX := loop[0][0], loop[0][0]
	minY, maxY := loop[0][1], loop[0][1]
	for _, p := range loop {
		minX, maxX = min(minX, p[0]), max(maxX, p[0])
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}

	// Degenerate extents map to a thin sliver rather than dividing by
	// zero.
	w := max(maxX-minX, degenerateFloor)
	h := max(maxY-minY, degenerateFloor)

	out := make([][2]float64, len(loop))
	for i, p := range loop {
		out[i] = [2]float64{
			2*(p[0]-minX)/w - 1,
			2*(p[1]-minY)/h - 1,
		}
	}
	return out
}

// shoelaceArea returns the unsigned area of the polygon.
func shoelaceArea(poly [][2]float64) float64 {
	var sum float64
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += poly[i][0]*poly[j][1] - poly[j][0]*poly[i][1]
	}
	return math.Abs(sum) / 2
}

// noseRadius estimates the effective nose radius from the planform width
// a short distance behind the nose; a sharper nose gives a smaller
// radius and, downstream, higher stagnation heating.
func noseRadius(planform *Planform, x0, x1, scale float64) float64 {
	dx := 0.02 * (x1 - x0)
	hw := planform.HalfWidth(x0+dx) * scale
	dxm := dx * scale
	// Osculating circle through the nose point and the section at dx.
	r := (math.Sqr(hw) + math.Sqr(dxm)) / (2 * dxm)
	return math.Clamp(r, 0.01, planform.AircraftLength)
}
