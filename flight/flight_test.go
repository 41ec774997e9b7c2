// flight/flight_test.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flight

import (
	gomath "math"
	"testing"

	"github.com/ascent-sim/ascent/airframe"
	"github.com/ascent-sim/ascent/design"
	"github.com/ascent-sim/ascent/hull"
	"github.com/ascent-sim/ascent/plan"
	"github.com/ascent-sim/ascent/propulsion"
)

func testConfiguration(fp plan.Plan) airframe.Configuration {
	geo := hull.ExtractGeometry(hull.DefaultSideProfile(), hull.DefaultPlanform(70),
		hull.DefaultCrossSection())
	return airframe.Compute(geo, design.Default(), fp, propulsion.NewManager())
}

// deadEngine reports the ejector-ramjet mode but produces no thrust.
type deadEngine struct{}

func (deadEngine) Mode() propulsion.Mode                { return propulsion.ModeEjectorRamjet }
func (deadEngine) Thrust(altFt, mach float64) float64   { return 0 }
func (deadEngine) FuelConsumption(a, m float64) float64 { return 0 }
func (deadEngine) CanOperate(altFt, mach float64) bool  { return false }
func (deadEngine) Envelope() propulsion.Envelope        { return propulsion.Envelope{} }
func (deadEngine) Weight(peakThrust float64) float64    { return 0 }

func TestTakeoffImpossibleWithoutStaticThrust(t *testing.T) {
	fp := plan.OrbitalAscent()
	cfg := testConfiguration(fp)
	mgr := propulsion.NewManagerWith(deadEngine{}, propulsion.NewRamjet(),
		propulsion.NewScramjet(), propulsion.NewRocket())

	// The classifier still picks the ejector-ramjet slot at a standing
	// start; with no static thrust the roll must report the sentinel,
	// never a finite fuel number.
	if f := TakeoffFuel(cfg, mgr, 1e6); !gomath.IsInf(f, 1) {
		t.Errorf("takeoff with zero static thrust returned %f, want +Inf", f)
	}
}

func TestTakeoffBurnsFiniteFuel(t *testing.T) {
	fp := plan.OrbitalAscent()
	cfg := testConfiguration(fp)
	f := TakeoffFuel(cfg, propulsion.NewManager(), 1e6)
	if gomath.IsInf(f, 0) || gomath.IsNaN(f) || f <= 0 {
		t.Errorf("takeoff fuel %f, want finite positive", f)
	}
}

func TestSegmentHoldsAtTarget(t *testing.T) {
	// Starting exactly at the target waypoint must terminate promptly as
	// reached, not wander off.
	wp := plan.Waypoint{AltitudeFt: 40000, Mach: 2.5, Mode: propulsion.ModeRamjet, MaxG: 3}
	fp := plan.Plan{Waypoints: []plan.Waypoint{plan.Ground(), wp}}
	cfg := testConfiguration(fp)

	res := SimulateSegment(cfg, propulsion.NewManager(), wp, wp, 1e5, nil)
	if res.Outcome != OutcomeReachedTarget {
		t.Fatalf("outcome %s, want reached target", res.Outcome)
	}
	if res.Duration > 5 {
		t.Errorf("took %f s to notice it was already there", res.Duration)
	}
	if res.EngineUsed != propulsion.ModeRamjet {
		t.Errorf("flew on %s, want ramjet", res.EngineUsed)
	}
}

func TestSegmentExhaustsFuel(t *testing.T) {
	fp := plan.OrbitalAscent()
	cfg := testConfiguration(fp)

	// 100 L is nowhere near enough to go anywhere.
	res := SimulateSegment(cfg, propulsion.NewManager(),
		fp.Waypoints[0], fp.Waypoints[1], 100, nil)
	if res.Outcome != OutcomeFuelExhausted {
		t.Fatalf("outcome %s, want fuel exhausted", res.Outcome)
	}
	if res.FuelUsed <= 0 || res.FuelUsed > 100 {
		t.Errorf("fuel used %f of 100 L", res.FuelUsed)
	}
}

func TestSegmentNeverExceedsCeilings(t *testing.T) {
	fp := plan.OrbitalAscent()
	cfg := testConfiguration(fp)

	var rec recorder
	res := SimulateSegment(cfg, propulsion.NewManager(),
		fp.Waypoints[0], fp.Waypoints[1], 2e6, &rec)

	if res.Duration > maxSegmentTime+timeStep {
		t.Errorf("segment ran %f s past the ceiling", res.Duration)
	}
	if len(rec.points) == 0 {
		t.Fatalf("no trajectory points recorded")
	}
	// ~1 Hz sampling.
	perSecond := float64(len(rec.points)) / res.Duration
	if perSecond < 0.5 || perSecond > 2 {
		t.Errorf("sampled %f points/s, want about 1", perSecond)
	}
	for _, p := range rec.points {
		if p.FuelRemaining < 0 || p.AltitudeFt < 0 || p.Velocity < 0 {
			t.Fatalf("state went negative: %+v", p)
		}
		if gomath.IsNaN(p.Thrust) || gomath.IsNaN(p.Drag) {
			t.Fatalf("NaN forces: %+v", p)
		}
	}
}

func TestSegmentStallsWhenUnderpowered(t *testing.T) {
	// An ejector-ramjet pinned on for an orbital target cannot get
	// there; the segment must end without claiming success.
	fp := plan.Plan{Waypoints: []plan.Waypoint{
		plan.Ground(),
		{AltitudeFt: 200000, Mach: 24, Mode: propulsion.ModeEjectorRamjet, MaxG: 3},
	}}
	cfg := testConfiguration(fp)

	res := SimulateSegment(cfg, propulsion.NewManager(),
		fp.Waypoints[0], fp.Waypoints[1], 5e5, nil)
	if res.Outcome == OutcomeReachedTarget {
		t.Errorf("an ejector-ramjet reached orbit")
	}
}

func TestValidateEnvelope(t *testing.T) {
	mgr := propulsion.NewManager()

	checks := ValidateEnvelope(plan.OrbitalAscent(), mgr)
	if len(checks) != 2 {
		t.Fatalf("%d checks for a 2-waypoint plan", len(checks))
	}
	for i, c := range checks {
		if !c.Pass {
			t.Errorf("check %d (%s) failed for a valid plan", i, c.Mode)
		}
	}

	bad := plan.Plan{Waypoints: []plan.Waypoint{
		{AltitudeFt: 0, Mach: 0.5, Mode: propulsion.ModeScramjet, MaxG: 3},
	}}
	checks = ValidateEnvelope(bad, mgr)
	if checks[0].Pass {
		t.Errorf("scramjet at sea level passed validation")
	}
	if checks[0].AltitudeMarginFt >= 0 {
		t.Errorf("expected negative altitude margin, got %f", checks[0].AltitudeMarginFt)
	}
}

type recorder struct {
	points []TrajectoryPoint
}

func (r *recorder) Record(p TrajectoryPoint) { r.points = append(r.points, p) }
