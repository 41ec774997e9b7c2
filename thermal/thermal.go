// thermal/thermal.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package thermal models stagnation-point aeroheating: a Sutton-Graves
// convective heat flux balanced against radiative cooling gives the
// equilibrium wall temperature, which is compared against the design's
// material limit.
package thermal

import (
	gomath "math"

	"github.com/ascent-sim/ascent/atmos"
	"github.com/ascent-sim/ascent/design"
	"github.com/ascent-sim/ascent/math"
)

const (
	// Sutton-Graves constant for air, SI units.
	suttonGravesK = 1.7415e-4

	surfaceEmissivity = 0.85
	stefanBoltzmann   = 5.670374419e-8 // W/(m^2 K^4)

	// Material limit of the baseline thermal protection, scaled by the
	// design's thermal-limit multiplier.
	baseTemperatureLimit = 1800 // K

	// Osculating nose radii from the geometry extractor can get very
	// small for pointy profiles.
	minNoseRadius = 0.01 // m

	bisectIterations  = 20
	maxSearchVelocity = 15000 // m/s, comfortably above orbital
)

// HeatFlux returns the stagnation-point convective heat flux in W/m^2.
// The effective nose radius shrinks with the design's heating-rate
// multiplier: a sharper effective nose heats faster.
func HeatFlux(altitude, velocity, noseRadius float64, plane design.Plane) float64 {
	plane = plane.Normalized()
	rEff := gomath.Max(noseRadius, minNoseRadius) / plane.HeatingRateMultiplier
	rho := atmos.DensityAtAltitude(altitude)
	return suttonGravesK * gomath.Sqrt(rho/rEff) * velocity * velocity * velocity
}

// WallTemperature returns the radiative-equilibrium wall temperature in
// Kelvin at the given altitude (meters) and velocity (m/s): the
// temperature at which the surface radiates away exactly the convective
// flux it receives, capped at the adiabatic wall temperature.
func WallTemperature(altitude, velocity, noseRadius float64, plane design.Plane) float64 {
	air := atmos.SampleAtAltitude(altitude)
	q := HeatFlux(altitude, velocity, noseRadius, plane)

	ta := air.Temperature
	tw := gomath.Pow(q/(surfaceEmissivity*stefanBoltzmann)+math.Sqr(math.Sqr(ta)), 0.25)

	// No radiation balance can push the wall past the stagnation
	// temperature of the flow itself.
	mach := velocity / air.SoundSpeed
	adiabatic := ta * (1 + 0.2*math.Sqr(mach))
	return gomath.Min(tw, adiabatic)
}

// MaxSafeTemperature is the wall temperature the design can sustain.
func MaxSafeTemperature(plane design.Plane) float64 {
	return baseTemperatureLimit * plane.Normalized().ThermalLimitMultiplier
}

// StressFactor is the ratio of the current wall temperature to the
// design limit; above 1 the skin is outside its rated envelope.
func StressFactor(altitude, velocity, noseRadius float64, plane design.Plane) float64 {
	return WallTemperature(altitude, velocity, noseRadius, plane) / MaxSafeTemperature(plane)
}

// MaxSafeVelocity inverts WallTemperature at fixed altitude, returning
// the highest velocity (m/s) that keeps the wall at or below the design
// limit. Wall temperature is monotonic in velocity, so a bisection
// search applies.
func MaxSafeVelocity(altitude, noseRadius float64, plane design.Plane) float64 {
	limit := MaxSafeTemperature(plane)
	if WallTemperature(altitude, maxSearchVelocity, noseRadius, plane) <= limit {
		return maxSearchVelocity
	}
	return math.InvertMonotonic(func(v float64) float64 {
		return WallTemperature(altitude, v, noseRadius, plane)
	}, 0, maxSearchVelocity, limit, bisectIterations)
}
