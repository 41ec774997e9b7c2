// atmos/atmos.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package atmos implements a piecewise International Standard Atmosphere
// model. It is a pure leaf dependency: everything above it in the engine
// (aerodynamics, propulsion, thermal, the flight integrator) asks it for
// conditions at an altitude and nothing here carries state.
package atmos

import (
	gomath "math"

	"github.com/ascent-sim/ascent/math"
)

const (
	R     = 287.058 // specific gas constant for dry air (J/(kg·K))
	Gamma = 1.4     // adiabatic index
	G0    = 9.80665 // standard gravity (m/s^2)

	SeaLevelTemperature = 288.15  // K
	SeaLevelPressure    = 101325  // Pa
	SeaLevelDensity     = 1.225   // kg/m^3
	TroposphereLapse    = 0.0065  // K/m
	TropopauseAltitude  = 11000.0 // m
	StratopauseAltitude = 20000.0 // m

	// Above 20 km the model applies a slow temperature falloff rather
	// than the ISA's warming layers; the vehicle spends its hypersonic
	// cruise there and a monotonic temperature profile keeps the
	// thermal and propulsion models well behaved.
	UpperLapse         = 0.0005 // K/m
	MinimumTemperature = 165.0  // K
)

// Sample holds free-stream conditions at one altitude.
type Sample struct {
	Temperature float64 `json:"temperature"` // K
	Pressure    float64 `json:"pressure"`    // Pa
	Density     float64 `json:"density"`     // kg/m^3
	SoundSpeed  float64 `json:"sound_speed"` // m/s
	Viscosity   float64 `json:"viscosity"`   // dynamic, Pa·s
}

// tropopause conditions, evaluated once from the troposphere relations so
// the layers join continuously.
var (
	tropopauseTemperature = SeaLevelTemperature - TroposphereLapse*TropopauseAltitude
	tropopausePressure    = SeaLevelPressure *
		gomath.Pow(tropopauseTemperature/SeaLevelTemperature, G0/(R*TroposphereLapse))
	stratopausePressure = tropopausePressure *
		gomath.Exp(-G0*(StratopauseAltitude-TropopauseAltitude)/(R*tropopauseTemperature))
)

// SampleAtAltitude returns atmospheric conditions at the given geometric
// altitude in meters. Altitudes below sea level are clamped to zero; the
// model extrapolates smoothly above 80 km, where density has decayed to
// effectively nothing.
func SampleAtAltitude(altitude float64) Sample {
	altitude = max(altitude, 0)

	var temperature, pressure float64
	switch {
	case altitude <= TropopauseAltitude:
		// Linear lapse; barometric power law.
		temperature = SeaLevelTemperature - TroposphereLapse*altitude
		pressure = SeaLevelPressure * gomath.Pow(temperature/SeaLevelTemperature, G0/(R*TroposphereLapse))

	case altitude <= StratopauseAltitude:
		// Isothermal layer; exponential pressure falloff.
		temperature = tropopauseTemperature
		pressure = tropopausePressure * gomath.Exp(-G0*(altitude-TropopauseAltitude)/(R*temperature))

	default:
		temperature = max(tropopauseTemperature-UpperLapse*(altitude-StratopauseAltitude),
			MinimumTemperature)
		// The lapse is slow enough that an isothermal falloff at the mean
		// layer temperature stays continuous at the boundary.
		tMean := (tropopauseTemperature + temperature) / 2
		pressure = stratopausePressure * gomath.Exp(-G0*(altitude-StratopauseAltitude)/(R*tMean))
	}

	return Sample{
		Temperature: temperature,
		Pressure:    pressure,
		Density:     pressure / (R * temperature),
		SoundSpeed:  gomath.Sqrt(Gamma * R * temperature),
		Viscosity:   sutherland(temperature),
	}
}

// DensityAtAltitude is a convenience for callers that only need density.
func DensityAtAltitude(altitude float64) float64 {
	return SampleAtAltitude(altitude).Density
}

// SpeedOfSoundAtAltitude returns the local speed of sound in m/s.
func SpeedOfSoundAtAltitude(altitude float64) float64 {
	return SampleAtAltitude(altitude).SoundSpeed
}

// sutherland returns dynamic viscosity per Sutherland's law.
func sutherland(temperature float64) float64 {
	const c1 = 1.458e-6 // kg/(m·s·K^0.5)
	const s = 110.4     // K
	return c1 * temperature * gomath.Sqrt(temperature) / (temperature + s)
}

// FeetToMeters converts the flight plan's altitudes (given in feet, the
// aviation convention) to the SI units used everywhere in the engine.
func FeetToMeters(feet float64) float64 {
	return feet * 0.3048
}

// MetersToFeet is the inverse conversion, for presentation.
func MetersToFeet(meters float64) float64 {
	return meters / 0.3048
}

// MachToVelocity returns the true airspeed in m/s for the given Mach
// number at an altitude in meters.
func MachToVelocity(mach, altitude float64) float64 {
	return mach * SpeedOfSoundAtAltitude(altitude)
}

// DynamicPressure returns q = rho v^2 / 2 at the given conditions.
func DynamicPressure(altitude, velocity float64) float64 {
	return 0.5 * DensityAtAltitude(altitude) * math.Sqr(velocity)
}
