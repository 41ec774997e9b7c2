// propulsion/brayton.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package propulsion

import (
	gomath "math"

	"github.com/ascent-sim/ascent/atmos"
	"github.com/ascent-sim/ascent/math"
)

// The three airbreathers share a Brayton-cycle approximation and differ
// only in envelope, capture area and thermal/efficiency constants:
// free-stream air is decelerated in the inlet (stagnation conditions
// from the isentropic relations, scaled by an inlet recovery), heated
// toward the cycle's maximum stagnation temperature in the burner, and
// expanded through the nozzle back to ambient pressure.

const (
	cpAir = 1004.5 // J/(kg·K) at the temperatures of interest

	// Lower heating value of hydrogen.
	fuelHeatingValue = 120e6 // J/kg

	// Liquid hydrogen density, for converting fuel mass flow to the
	// tank volume flow the fuel budget works in.
	lh2Density = 70.85 // kg/m^3

	// Width of the sigmoid that fades thrust in near the minimum
	// operating Mach, avoiding a discontinuity at the envelope edge.
	activationSharpness = 4.0
)

type braytonEngine struct {
	mode     Mode
	envelope Envelope

	captureArea      float64 // m^2, sets mass flow
	inletEfficiency  float64 // stagnation pressure recovery at design point
	nozzleEfficiency float64
	maxBurnerTemp    float64 // K, stagnation

	// Ejector-ramjet only: rocket-assisted static thrust available from
	// a standstill, fading out as the ram cycle takes over.
	staticThrust float64 // N

	// Scramjet only: recovery degrades sharply above this Mach.
	recoveryFalloffMach float64

	fixedWeight    float64 // kg; used when > 0 (ramjet/scramjet class)
	thrustToWeight float64 // used otherwise (jet class)
}

func (e *braytonEngine) Mode() Mode         { return e.mode }
func (e *braytonEngine) Envelope() Envelope { return e.envelope }

func (e *braytonEngine) CanOperate(altitudeFt, mach float64) bool {
	if !e.envelope.Contains(altitudeFt, mach) {
		return false
	}
	thrust, _ := e.cycle(altitudeFt, mach)
	return thrust > 0
}

func (e *braytonEngine) Thrust(altitudeFt, mach float64) float64 {
	thrust, _ := e.cycle(altitudeFt, mach)
	return thrust
}

func (e *braytonEngine) FuelConsumption(altitudeFt, mach float64) float64 {
	_, fuelKgPerSec := e.cycle(altitudeFt, mach)
	return fuelKgPerSec / lh2Density * 1000 // L/s
}

func (e *braytonEngine) Weight(peakThrust float64) float64 {
	if e.fixedWeight > 0 {
		return e.fixedWeight
	}
	return max(peakThrust, 0) / (e.thrustToWeight * atmos.G0)
}

// cycle evaluates the thermodynamic cycle, returning net thrust (N) and
// fuel mass flow (kg/s). Out-of-envelope or thermally-choked conditions
// return zeros.
func (e *braytonEngine) cycle(altitudeFt, mach float64) (float64, float64) {
	if !e.envelope.Contains(altitudeFt, mach) {
		return 0, 0
	}

	air := atmos.SampleAtAltitude(atmos.FeetToMeters(altitudeFt))
	va := mach * air.SoundSpeed

	// Inlet: isentropic stagnation conditions with a recovery penalty.
	tRatio := 1 + (atmos.Gamma-1)/2*math.Sqr(mach)
	t0a := air.Temperature * tRatio

	recovery := e.inletEfficiency
	if e.recoveryFalloffMach > 0 && mach > e.recoveryFalloffMach {
		// Supersonic combustion can't recover much of the ram pressure
		// once the inlet shocks steepen.
		recovery *= gomath.Exp(-0.4 * (mach - e.recoveryFalloffMach))
	}
	p0a := air.Pressure * gomath.Pow(tRatio, atmos.Gamma/(atmos.Gamma-1)) * recovery

	// Burner: heat toward the cycle maximum. Once ram heating alone
	// reaches the limit the burner can add nothing: thermal choking,
	// zero thrust.
	if t0a >= e.maxBurnerTemp {
		return e.ejectorThrust(mach), e.ejectorFuel(mach)
	}
	t02 := e.maxBurnerTemp
	fuelAirRatio := cpAir * (t02 - t0a) / fuelHeatingValue

	// Nozzle: expand back to ambient.
	pressureRatio := air.Pressure / max(p0a, air.Pressure)
	expansion := 1 - gomath.Pow(pressureRatio, (atmos.Gamma-1)/atmos.Gamma)
	ve := gomath.Sqrt(2 * cpAir * t02 * e.nozzleEfficiency * max(expansion, 0))

	massFlow := e.captureArea * air.Density * va
	specificThrust := (1+fuelAirRatio)*ve - va

	// Fade in smoothly above the envelope's minimum Mach.
	activation := sigmoid(activationSharpness * (mach - e.envelope.MinMach - 0.5))

	thrust := max(massFlow*specificThrust*activation, 0)
	fuel := massFlow * fuelAirRatio * activation

	thrust += e.ejectorThrust(mach)
	fuel += e.ejectorFuel(mach)

	if thrust <= 0 {
		return 0, 0
	}
	return thrust, max(fuel, 0)
}

// ejectorThrust is the rocket-assisted static thrust of the
// ejector-ramjet, full at a standstill and fading out as ram compression
// becomes available.
func (e *braytonEngine) ejectorThrust(mach float64) float64 {
	if e.staticThrust <= 0 {
		return 0
	}
	return e.staticThrust * gomath.Exp(-math.Sqr(mach)/2)
}

func (e *braytonEngine) ejectorFuel(mach float64) float64 {
	// The ejector primary burns at a rocket-like specific impulse.
	const ejectorIsp = 400 // s
	return e.ejectorThrust(mach) / (ejectorIsp * atmos.G0)
}

func sigmoid(x float64) float64 {
	return 1 / (1 + gomath.Exp(-x))
}

// NewEjectorRamjet returns the takeoff/acceleration engine: a ramjet
// with a rocket ejector primary giving it static thrust from Mach 0.
func NewEjectorRamjet() Engine {
	return &braytonEngine{
		mode: ModeEjectorRamjet,
		envelope: Envelope{
			MinAltitudeFt: 0, MaxAltitudeFt: 70000,
			MinMach: 0, MaxMach: 3.5,
		},
		captureArea:      4.0,
		inletEfficiency:  0.92,
		nozzleEfficiency: 0.95,
		maxBurnerTemp:    2200,
		staticThrust:     1.4e6,
		thrustToWeight:   12,
	}
}

// NewRamjet returns the supersonic cruise engine.
func NewRamjet() Engine {
	return &braytonEngine{
		mode: ModeRamjet,
		envelope: Envelope{
			MinAltitudeFt: 20000, MaxAltitudeFt: 110000,
			MinMach: 1.8, MaxMach: 6,
		},
		captureArea:      6.0,
		inletEfficiency:  0.9,
		nozzleEfficiency: 0.96,
		maxBurnerTemp:    2500,
		fixedWeight:      4000,
	}
}

// NewScramjet returns the hypersonic engine; its inlet recovery decays
// sharply above Mach 4, which is what eventually caps its useful speed.
func NewScramjet() Engine {
	return &braytonEngine{
		mode: ModeScramjet,
		envelope: Envelope{
			MinAltitudeFt: 60000, MaxAltitudeFt: 210000,
			MinMach: 4.5, MaxMach: 16,
		},
		captureArea:         10.0,
		inletEfficiency:     0.85,
		nozzleEfficiency:    0.97,
		maxBurnerTemp:       3100,
		recoveryFalloffMach: 4,
		fixedWeight:         6500,
	}
}
