// propulsion/rocket.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package propulsion

import (
	gomath "math"

	"github.com/ascent-sim/ascent/atmos"
)

// rocketEngine is a LOX/LH2 rocket: specific impulse blends from the
// sea-level to the vacuum value with the exponential decay of ambient
// pressure, and thrust scales with Isp at fixed throat mass flow.
type rocketEngine struct {
	seaLevelThrust float64 // N
	seaLevelIsp    float64 // s
	vacuumIsp      float64 // s
	oxidizerRatio  float64 // O/F mass ratio
	thrustToWeight float64
}

const (
	loxDensity = 1141.0 // kg/m^3

	// RocketVacuumIsp is exported for the closed-form Tsiolkovsky fuel
	// estimates; it matches what NewRocket builds.
	RocketVacuumIsp   = 452.0 // s
	rocketSeaLevelIsp = 366.0
)

func NewRocket() Engine {
	return &rocketEngine{
		seaLevelThrust: 3.0e6,
		seaLevelIsp:    rocketSeaLevelIsp,
		vacuumIsp:      RocketVacuumIsp,
		oxidizerRatio:  6.0,
		thrustToWeight: 70,
	}
}

func (r *rocketEngine) Mode() Mode { return ModeRocket }

func (r *rocketEngine) Envelope() Envelope {
	// A rocket works anywhere; the bounds just keep the envelope
	// arithmetic finite.
	return Envelope{MinAltitudeFt: 0, MaxAltitudeFt: 1e6, MinMach: 0, MaxMach: 30}
}

func (r *rocketEngine) CanOperate(altitudeFt, mach float64) bool {
	return r.Envelope().Contains(altitudeFt, mach)
}

// isp returns specific impulse at altitude: the vacuum value minus the
// sea-level deficit scaled by the ambient/sea-level pressure ratio.
func (r *rocketEngine) isp(altitudeFt float64) float64 {
	p := atmos.SampleAtAltitude(atmos.FeetToMeters(altitudeFt)).Pressure
	return r.vacuumIsp - (r.vacuumIsp-r.seaLevelIsp)*(p/atmos.SeaLevelPressure)
}

func (r *rocketEngine) Thrust(altitudeFt, mach float64) float64 {
	return r.seaLevelThrust * r.isp(altitudeFt) / r.seaLevelIsp
}

// FuelConsumption returns the total propellant volume flow in L/s,
// fuel and oxidizer combined at their blended density.
func (r *rocketEngine) FuelConsumption(altitudeFt, mach float64) float64 {
	isp := r.isp(altitudeFt)
	massFlow := r.Thrust(altitudeFt, mach) / (isp * atmos.G0)
	return massFlow / r.PropellantDensity() * 1000
}

// PropellantDensity is the density of the combined propellant load at
// the fixed mixture ratio.
func (r *rocketEngine) PropellantDensity() float64 {
	fuelFraction := 1 / (1 + r.oxidizerRatio)
	oxFraction := r.oxidizerRatio / (1 + r.oxidizerRatio)
	return 1 / (fuelFraction/lh2Density + oxFraction/loxDensity)
}

func (r *rocketEngine) Weight(peakThrust float64) float64 {
	return gomath.Max(peakThrust, 0) / (r.thrustToWeight * atmos.G0)
}
