// mission/mission.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package mission budgets fuel for a flight plan: tank capacity from
// hull volume, closed-form per-segment consumption estimates, and the
// capacity-minus-required residual the sizing optimizer drives to zero.
// The estimates are deliberately cheap; they never run the integrator.
package mission

import (
	gomath "math"

	"github.com/ascent-sim/ascent/airframe"
	"github.com/ascent-sim/ascent/atmos"
	"github.com/ascent-sim/ascent/math"
	"github.com/ascent-sim/ascent/plan"
	"github.com/ascent-sim/ascent/propulsion"
)

const (
	// Fraction of internal volume available as tankage.
	tankFraction = 0.7

	// Blended propellant density for converting rocket propellant mass
	// to tank liters.
	propellantDensity = 360 // kg/m^3

	// Gravity and steering losses on top of the ideal velocity change.
	rocketLossFactor = 0.15

	climbAngleSin = 0.0872 // sin 5 deg, the integrator's fixed climb

	// Nominal longitudinal acceleration for airbreathing segment time
	// estimates.
	cruiseAccel = 0.5 * atmos.G0
)

// FuelCapacity returns the tank volume in liters for a hull volume in
// cubic meters.
func FuelCapacity(hullVolume float64) float64 {
	return gomath.Max(hullVolume, 0) * tankFraction * 1000
}

// SegmentFuel estimates the fuel one segment consumes, in liters.
// Rocket segments use the Tsiolkovsky equation with a loss factor;
// airbreathing segments multiply the engine's consumption rate by an
// estimated segment time. The rate is sampled at the segment midpoint
// clamped into the engine's envelope: the raw midpoint of a segment
// that crosses into a cycle's band can sit below its minimum Mach,
// where the engine reports zero and the burn would be costed as free.
// A segment no installed engine can burn through at all is infeasible
// and returns +Inf.
func SegmentFuel(cfg airframe.Configuration, mgr *propulsion.Manager, from, to plan.Waypoint) float64 {
	mode := to.Mode
	if mode == propulsion.ModeAuto {
		mode = propulsion.SelectEngineMode(to.AltitudeFt, to.Mach)
	}

	if mode == propulsion.ModeRocket {
		return rocketSegmentFuel(cfg, from, to)
	}

	engine, err := mgr.Engine(mode)
	if err != nil {
		return gomath.Inf(1)
	}

	env := engine.Envelope()
	midAltFt := math.Clamp((from.AltitudeFt+to.AltitudeFt)/2, env.MinAltitudeFt, env.MaxAltitudeFt)
	midMach := math.Clamp((from.Mach+to.Mach)/2, env.MinMach, env.MaxMach)
	rate := engine.FuelConsumption(midAltFt, midMach)
	if rate <= 0 {
		// Choked at the midpoint; cost the segment at its endpoint.
		rate = engine.FuelConsumption(
			math.Clamp(to.AltitudeFt, env.MinAltitudeFt, env.MaxAltitudeFt),
			math.Clamp(to.Mach, env.MinMach, env.MaxMach))
	}
	if rate <= 0 {
		return gomath.Inf(1)
	}
	return rate * segmentTime(from, to)
}

// rocketSegmentFuel converts the segment's energy gain into an
// equivalent velocity change and applies the rocket equation against
// the vehicle's dry mass.
func rocketSegmentFuel(cfg airframe.Configuration, from, to plan.Waypoint) float64 {
	h0 := atmos.FeetToMeters(from.AltitudeFt)
	h1 := atmos.FeetToMeters(to.AltitudeFt)
	v0 := atmos.MachToVelocity(from.Mach, h0)
	v1 := atmos.MachToVelocity(to.Mach, h1)

	// Specific energy gain, J/kg.
	dE := 0.5*(v1*v1-v0*v0) + atmos.G0*(h1-h0)
	if dE <= 0 {
		return 0
	}
	dV := (gomath.Sqrt(v0*v0+2*dE) - v0) * (1 + rocketLossFactor)

	ve := propulsion.RocketVacuumIsp * atmos.G0
	propellant := cfg.Mass.Dry() * (gomath.Exp(dV/ve) - 1)
	return propellant / propellantDensity * 1000
}

// segmentTime is the pacing estimate for airbreathing segments: the
// slower of the climb at the fixed flight-path angle and the
// acceleration to the target speed.
func segmentTime(from, to plan.Waypoint) float64 {
	h0 := atmos.FeetToMeters(from.AltitudeFt)
	h1 := atmos.FeetToMeters(to.AltitudeFt)
	v0 := atmos.MachToVelocity(from.Mach, h0)
	v1 := atmos.MachToVelocity(to.Mach, h1)

	vAvg := gomath.Max((v0+v1)/2, 50)
	climbTime := gomath.Abs(h1-h0) / (vAvg * climbAngleSin)
	accelTime := gomath.Abs(v1-v0) / cruiseAccel
	return gomath.Max(gomath.Max(climbTime, accelTime), 10)
}

// RequiredFuel sums the per-segment estimates across the plan.
func RequiredFuel(cfg airframe.Configuration, mgr *propulsion.Manager) float64 {
	var total float64
	wps := cfg.Plan.Waypoints
	for i := 0; i+1 < len(wps); i++ {
		total += SegmentFuel(cfg, mgr, wps[i], wps[i+1])
	}
	return total
}

// ReachesOrbit reports whether the plan's final waypoint is an orbital
// state.
func ReachesOrbit(fp plan.Plan) bool {
	if len(fp.Waypoints) == 0 {
		return false
	}
	last := fp.Waypoints[len(fp.Waypoints)-1]
	return plan.IsOrbitAchieved(atmos.FeetToMeters(last.AltitudeFt), last.Mach)
}

// FuelError is the sizing residual: capacity minus required fuel when
// the plan ends in orbit, and additionally penalized by the extra
// rocket propellant needed to finish the ascent when it does not.
// Positive means surplus.
func FuelError(cfg airframe.Configuration, mgr *propulsion.Manager, capacity float64) float64 {
	err := capacity - RequiredFuel(cfg, mgr)
	if ReachesOrbit(cfg.Plan) {
		return err
	}

	last := plan.Ground()
	if n := len(cfg.Plan.Waypoints); n > 0 {
		last = cfg.Plan.Waypoints[n-1]
	}
	finish := plan.Waypoint{
		AltitudeFt: atmos.MetersToFeet(plan.OrbitAltitude),
		Mach:       plan.OrbitMach,
		Mode:       propulsion.ModeRocket,
		MaxG:       4,
	}
	return err - rocketSegmentFuel(cfg, last, finish)
}
