// aero/regimes.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aero

import (
	gomath "math"

	"github.com/ascent-sim/ascent/atmos"
	"github.com/ascent-sim/ascent/hull"
	"github.com/ascent-sim/ascent/math"
)

// Leeward panels in hypersonic flow sit at a fixed low base pressure.
const hypersonicBaseCp = -0.2

// Leeward pressure can never drop below vacuum.
const vacuumCpFloor = -1.0

// panelCp evaluates the pressure coefficient on one panel for the given
// freestream direction, dispatching on Mach regime.
func panelCp(mach float64, free [3]float64, p *hull.Panel, geo *hull.Geometry) float64 {
	theta := inclination(free, p.Normal)

	switch RegimeForMach(mach) {
	case RegimeSubsonic:
		return subsonicCp(mach, theta)
	case RegimeTransonic:
		return transonicCp(mach, theta, p, geo)
	case RegimeSupersonic:
		return supersonicCp(mach, theta, p, geo)
	default:
		return hypersonicCp(mach, theta)
	}
}

// inclination returns the angle between the panel surface and the
// freestream: positive where the flow presses on the panel, negative in
// its shadow.
func inclination(free, normal [3]float64) float64 {
	return math.SafeACos(math.Dot3(free, normal)) - gomath.Pi/2
}

// subsonicCp is the linearized result with Prandtl-Glauert compressibility
// correction. Only valid below the transonic boundary, where 1-M^2 stays
// comfortably positive.
func subsonicCp(mach, theta float64) float64 {
	return 2 * gomath.Sin(theta) / gomath.Sqrt(1-math.Sqr(mach))
}

// transonicCp blends the M=0.8 subsonic and M=1.2 supersonic solutions
// and amplifies the result by the drag-divergence factor, reproducing
// the characteristic transonic spike.
func transonicCp(mach, theta float64, p *hull.Panel, geo *hull.Geometry) float64 {
	t := (mach - transonicStart) / (supersonicStart - transonicStart)
	sub := subsonicCp(transonicStart, theta)
	sup := supersonicCp(supersonicStart, theta, p, geo)
	return math.Lerp(t, sub, sup) * (1 + 2*gomath.Sin(gomath.Pi*t))
}

// supersonicCp is linearized Ackeret theory. Leading-edge panels behind
// enough sweep see a subsonic normal Mach component and revert to the
// subsonic relation evaluated at that component.
func supersonicCp(mach, theta float64, p *hull.Panel, geo *hull.Geometry) float64 {
	m := mach
	if p.Region == hull.RegionLeadingEdge {
		if mn := mach * gomath.Cos(geo.LeadingEdgeSweep); mn < 1 {
			// Subsonic-normal leading edge; keep the argument away from
			// the singularity at Mn=1.
			return clampCp(2*gomath.Sin(theta)/gomath.Sqrt(max(1-math.Sqr(mn), 0.1)), mach)
		} else {
			m = mn
		}
	}
	return clampCp(2*theta/gomath.Sqrt(math.Sqr(m)-1), mach)
}

// hypersonicCp is modified Newtonian impact theory on windward panels
// and fixed base pressure in the shadow.
func hypersonicCp(mach, theta float64) float64 {
	if theta <= 0 {
		return hypersonicBaseCp
	}
	return stagnationCp(mach) * math.Sqr(gomath.Sin(theta))
}

// stagnationCp is the windward pressure ceiling.
func stagnationCp(mach float64) float64 {
	return 2 / (atmos.Gamma * math.Sqr(mach))
}

// clampCp keeps linearized results inside the physical band: windward no
// higher than stagnation, leeward no lower than vacuum.
func clampCp(cp, mach float64) float64 {
	return math.Clamp(cp, vacuumCpFloor, stagnationCp(mach))
}
