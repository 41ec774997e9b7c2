// hull/hull_test.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hull

import (
	gomath "math"
	"testing"

	"github.com/ascent-sim/ascent/math"
	"github.com/ascent-sim/ascent/util"
)

func defaultGeometry(length float64) *Geometry {
	return ExtractGeometry(DefaultSideProfile(), DefaultPlanform(length), DefaultCrossSection())
}

func TestPanelNormalsAndAreas(t *testing.T) {
	g := defaultGeometry(70)

	if len(g.Panels) == 0 {
		t.Fatalf("no panels extracted")
	}
	for i, p := range g.Panels {
		if l := math.Length3(p.Normal); math.Abs(l-1) > 1e-3 {
			t.Errorf("panel %d: normal length %f", i, l)
		}
		if p.Area < 0 {
			t.Errorf("panel %d: negative area %f", i, p.Area)
		}
		if gomath.IsNaN(p.Area) || gomath.IsNaN(p.Normal[0]) {
			t.Errorf("panel %d: NaN in panel data", i)
		}
	}
}

func TestExtractionIdempotent(t *testing.T) {
	a := defaultGeometry(70)
	b := defaultGeometry(70)

	if len(a.Panels) != len(b.Panels) {
		t.Fatalf("panel counts differ: %d vs %d", len(a.Panels), len(b.Panels))
	}
	for i := range a.Panels {
		if a.Panels[i].Area != b.Panels[i].Area {
			t.Errorf("panel %d area differs: %g vs %g", i, a.Panels[i].Area, b.Panels[i].Area)
		}
	}
	if a.WettedArea != b.WettedArea || a.PlanformArea != b.PlanformArea ||
		a.Volume != b.Volume || a.AspectRatio != b.AspectRatio {
		t.Errorf("derived scalars differ between identical extractions")
	}
}

func TestDerivedScalars(t *testing.T) {
	g := defaultGeometry(70)

	if g.Length != 70 {
		t.Errorf("length %f", g.Length)
	}
	if g.PlanformArea < minPlanformArea {
		t.Errorf("planform area %f below floor", g.PlanformArea)
	}
	if g.Wingspan < minWingspan {
		t.Errorf("wingspan %f below floor", g.Wingspan)
	}
	if g.Volume <= 0 {
		t.Errorf("volume %f", g.Volume)
	}
	if g.WettedArea <= g.PlanformArea {
		t.Errorf("wetted area %f should exceed planform area %f", g.WettedArea, g.PlanformArea)
	}
	if g.AspectRatio <= 0 || g.FinenessRatio <= 0 {
		t.Errorf("aspect ratio %f, fineness %f", g.AspectRatio, g.FinenessRatio)
	}
	for i, a := range g.VolumeDistribution {
		if a < 0 || gomath.IsNaN(a) {
			t.Errorf("station %d: bad area %f", i, a)
		}
	}

	// The area breakdown should cover the whole wetted surface.
	if d := math.Abs(g.Areas.Total() - g.WettedArea); d > 1e-6*g.WettedArea {
		t.Errorf("region areas sum %f != wetted area %f", g.Areas.Total(), g.WettedArea)
	}
	if g.Areas.NoseCap == 0 || g.Areas.Upper == 0 || g.Areas.Lower+g.Areas.EngineInlet == 0 {
		t.Errorf("empty region in breakdown: %+v", g.Areas)
	}
}

func TestIsotropicScaling(t *testing.T) {
	a := defaultGeometry(70)
	b := defaultGeometry(140)

	// Doubling length doubles all linear dimensions, quadruples areas,
	// and multiplies volume by 8.
	if r := b.WettedArea / a.WettedArea; math.Abs(r-4) > 0.01 {
		t.Errorf("wetted area ratio %f, want 4", r)
	}
	if r := b.Volume / a.Volume; math.Abs(r-8) > 0.01 {
		t.Errorf("volume ratio %f, want 8", r)
	}
	if r := b.Wingspan / a.Wingspan; math.Abs(r-2) > 0.01 {
		t.Errorf("wingspan ratio %f, want 2", r)
	}
	// Dimensionless quantities are invariant under isotropic scaling.
	if math.Abs(b.AspectRatio-a.AspectRatio) > 1e-6 {
		t.Errorf("aspect ratio changed: %f vs %f", a.AspectRatio, b.AspectRatio)
	}
	if math.Abs(b.FinenessRatio-a.FinenessRatio) > 1e-6 {
		t.Errorf("fineness changed: %f vs %f", a.FinenessRatio, b.FinenessRatio)
	}
}

func TestDegenerateSectionFloored(t *testing.T) {
	// A planform that pinches to zero width must still yield valid
	// panels everywhere.
	pf := DefaultPlanform(70)
	pf.Mid[1] = 0
	pf.Tail[1] = 0
	pf.WingSpan = 0

	g := ExtractGeometry(DefaultSideProfile(), pf, DefaultCrossSection())
	for i, p := range g.Panels {
		if p.Area <= 0 || gomath.IsNaN(p.Area) {
			t.Errorf("panel %d: area %f with degenerate planform", i, p.Area)
		}
		if gomath.IsNaN(p.Normal[0]) || gomath.IsNaN(p.Normal[2]) {
			t.Errorf("panel %d: NaN normal", i)
		}
	}
}

func TestCacheReturnsSameGeometry(t *testing.T) {
	c := NewCache(4)
	p, pf, cs := DefaultSideProfile(), DefaultPlanform(70), DefaultCrossSection()

	a := c.Extract(p, pf, cs)
	b := c.Extract(p, pf, cs)
	if a != b {
		t.Errorf("cache missed on identical descriptors")
	}

	pf2 := DefaultPlanform(71)
	if c.Extract(p, pf2, cs) == a {
		t.Errorf("cache returned stale geometry after length change")
	}
}

func TestCheckCatchesBadDescriptors(t *testing.T) {
	var e util.ErrorLogger
	pf := DefaultPlanform(0) // zero length is invalid
	cs := &CrossSection{}    // no control points
	Check(DefaultSideProfile(), pf, cs, &e)
	if !e.HaveErrors() {
		t.Errorf("no validation errors for invalid descriptors")
	}
}

func TestHashDistinguishesDescriptors(t *testing.T) {
	p, pf, cs := DefaultSideProfile(), DefaultPlanform(70), DefaultCrossSection()
	h0 := Hash(p, pf, cs)
	if h1 := Hash(p, pf, cs); h1 != h0 {
		t.Errorf("hash not stable")
	}
	pf.WingSpan += 0.001
	if Hash(p, pf, cs) == h0 {
		t.Errorf("hash ignored planform change")
	}
}
