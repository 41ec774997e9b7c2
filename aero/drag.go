// aero/drag.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aero

import (
	gomath "math"

	"github.com/ascent-sim/ascent/hull"
	"github.com/ascent-sim/ascent/math"
)

// Drag contributions the panel pressure integration cannot see: viscous
// skin friction, lift-induced vortex drag, the separated base region,
// and transonic wave drag from the area distribution. All return force
// in Newtons at dynamic pressure q.

// skinFrictionDrag uses the turbulent flat-plate correlation over the
// whole wetted surface.
func skinFrictionDrag(geo *hull.Geometry, q, reynolds float64) float64 {
	re := max(reynolds, 1e4)
	cf := 0.455 / gomath.Pow(gomath.Log10(re), 2.58)
	return cf * q * geo.WettedArea
}

// inducedDrag is CL^2/(pi AR e); the span efficiency degrades as shocks
// appear.
func inducedDrag(geo *hull.Geometry, q, cl, mach float64) float64 {
	var e float64
	switch RegimeForMach(mach) {
	case RegimeSubsonic:
		e = 0.85
	case RegimeTransonic:
		e = 0.75
	default:
		e = 0.6
	}
	cd := math.Sqr(cl) / (gomath.Pi * geo.AspectRatio * e)
	return cd * q * geo.PlanformArea
}

// baseDrag charges a fixed coefficient against an assumed blunt base of
// 2% of the wetted area.
func baseDrag(geo *hull.Geometry, q float64) float64 {
	const baseCd = 0.03
	const baseAreaFraction = 0.02
	return baseCd * q * baseAreaFraction * geo.WettedArea
}

// areaRuleDrag penalizes lumpy cross-sectional area distributions in the
// transonic band 0.8 < M < 1.4. The penalty is proportional to the total
// curvature of the station-area array (sum of absolute second
// differences) with a sine envelope that vanishes at both ends of the
// band.
func areaRuleDrag(geo *hull.Geometry, q, mach float64) float64 {
	if mach <= 0.8 || mach >= 1.4 {
		return 0
	}
	envelope := gomath.Sin(gomath.Pi * (mach - 0.8) / 0.6)

	var roughness float64
	for i := 1; i < hull.NumVolumeStations-1; i++ {
		roughness += math.Abs(geo.VolumeDistribution[i+1] -
			2*geo.VolumeDistribution[i] + geo.VolumeDistribution[i-1])
	}

	const areaRuleFactor = 1.0
	cd := areaRuleFactor * roughness / geo.PlanformArea
	return cd * envelope * q * geo.PlanformArea
}
