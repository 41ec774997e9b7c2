// flight/takeoff.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flight

import (
	gomath "math"

	"github.com/ascent-sim/ascent/aero"
	"github.com/ascent-sim/ascent/airframe"
	"github.com/ascent-sim/ascent/atmos"
	"github.com/ascent-sim/ascent/propulsion"
)

const (
	rotationSpeed      = 120.0 // m/s
	rollingFriction    = 0.02
	maxTakeoffRollTime = 300.0 // s
)

// TakeoffFuel simulates the ground roll to rotation speed and returns
// the fuel burned in liters. A vehicle whose engines cannot accelerate
// it on the runway returns +Inf: takeoff impossible, reported as a
// sentinel rather than an error.
func TakeoffFuel(cfg airframe.Configuration, mgr *propulsion.Manager, fuel float64) float64 {
	// Takeoff is flown on the ejector-ramjet; nothing else has both
	// static thrust and a sea-level envelope.
	engine, err := mgr.Engine(propulsion.ModeEjectorRamjet)
	if err != nil || engine.Thrust(0, 0) <= 0 {
		return gomath.Inf(1)
	}

	dry := cfg.Mass.Dry()
	v, t, used := 0.0, 0.0, 0.0

	for t < maxTakeoffRollTime {
		mach := v / atmos.SampleAtAltitude(0).SoundSpeed

		mass := dry + (fuel-used)/1000*fuelDensity
		weight := mass * atmos.G0

		forces := aero.SolveTrim(cfg.Geometry, cfg.Plane, mach, 0, v, 0)
		friction := rollingFriction * weight
		thrust := engine.Thrust(0, mach)

		accel := (thrust - forces.Drag - friction) / mass
		if accel <= 0 {
			return gomath.Inf(1)
		}

		v += accel * timeStep
		used += engine.FuelConsumption(0, mach) * timeStep
		t += timeStep

		if v >= rotationSpeed {
			return used
		}
	}
	return gomath.Inf(1)
}
