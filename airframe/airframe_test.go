// airframe/airframe_test.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airframe

import (
	gomath "math"
	"testing"

	"github.com/ascent-sim/ascent/design"
	"github.com/ascent-sim/ascent/hull"
	"github.com/ascent-sim/ascent/plan"
	"github.com/ascent-sim/ascent/propulsion"
)

func testGeometry(length float64) *hull.Geometry {
	return hull.ExtractGeometry(hull.DefaultSideProfile(), hull.DefaultPlanform(length),
		hull.DefaultCrossSection())
}

func TestDryMassSaneForDefaultVehicle(t *testing.T) {
	geo := testGeometry(70)
	cfg := Compute(geo, design.Default(), plan.OrbitalAscent(), propulsion.NewManager())

	dry := cfg.Mass.Dry()
	if gomath.IsNaN(dry) || gomath.IsInf(dry, 0) {
		t.Fatalf("dry mass %f", dry)
	}
	// A 70 m spaceplane weighs thousands of kg dry, not grams and not a
	// battleship.
	if dry < 1000 || dry > 5e6 {
		t.Errorf("dry mass %f kg out of plausible range", dry)
	}

	for name, v := range map[string]float64{
		"structure":     cfg.Mass.Structure,
		"reinforcement": cfg.Mass.ThermalReinforcement,
		"engines":       cfg.Mass.Engines,
		"cargo":         cfg.Mass.Cargo,
	} {
		if v <= 0 {
			t.Errorf("%s mass %f should be positive", name, v)
		}
	}
}

func TestDryMassGrowsWithLength(t *testing.T) {
	mgr := propulsion.NewManager()
	fp := plan.OrbitalAscent()
	small := Compute(testGeometry(50), design.Default(), fp, mgr)
	large := Compute(testGeometry(100), design.Default(), fp, mgr)
	if large.Mass.Dry() <= small.Mass.Dry() {
		t.Errorf("100 m vehicle (%f kg) should outweigh 50 m (%f kg)",
			large.Mass.Dry(), small.Mass.Dry())
	}
}

func TestEngineMassCountsFixedCycles(t *testing.T) {
	// Even a rocket-only plan carries the fixed-weight ramjet and
	// scramjet installation.
	mgr := propulsion.NewManager()
	m := EngineMass(plan.Plan{Waypoints: []plan.Waypoint{
		plan.Ground(),
		{AltitudeFt: 200000, Mach: 24, Mode: propulsion.ModeRocket, MaxG: 4},
	}}, mgr)
	if m <= 10000 {
		t.Errorf("engine mass %f kg should include the fixed ramjet/scramjet weight", m)
	}
}

func TestStructurePenalty(t *testing.T) {
	if p := structurePenalty(10); p != 1 {
		t.Errorf("no penalty expected above the reference L/D, got %f", p)
	}
	if p := structurePenalty(4); p != 2 {
		t.Errorf("L/D 4 should double the structure, got %f", p)
	}
	if p := structurePenalty(0.1); p != maxStructurePenalty {
		t.Errorf("penalty should clamp at %f, got %f", maxStructurePenalty, p)
	}
	if p := structurePenalty(-1); p != maxStructurePenalty {
		t.Errorf("degenerate L/D should clamp, got %f", p)
	}
}
