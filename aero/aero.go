// aero/aero.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package aero implements the regime-switching panel-method solver: for
// a given geometry, flight condition and required lift it finds the trim
// angle of attack, evaluates a pressure coefficient on every surface
// panel with a Mach-regime-appropriate model, and integrates the result
// into lift, drag and pitching moment together with the viscous, induced,
// base and transonic wave drag terms that the panel pressures don't
// capture.
package aero

import (
	gomath "math"

	"github.com/ascent-sim/ascent/atmos"
	"github.com/ascent-sim/ascent/design"
	"github.com/ascent-sim/ascent/hull"
	"github.com/ascent-sim/ascent/math"
)

type Regime int

const (
	RegimeSubsonic   Regime = iota // M < 0.8
	RegimeTransonic                // 0.8 <= M < 1.2
	RegimeSupersonic               // 1.2 <= M < 5
	RegimeHypersonic               // M >= 5
)

const (
	transonicStart  = 0.8
	supersonicStart = 1.2
	hypersonicStart = 5.0
)

func RegimeForMach(mach float64) Regime {
	switch {
	case mach < transonicStart:
		return RegimeSubsonic
	case mach < supersonicStart:
		return RegimeTransonic
	case mach < hypersonicStart:
		return RegimeSupersonic
	default:
		return RegimeHypersonic
	}
}

// Trim angle of attack is clamped to this range (radians); beyond it the
// panel models are meaningless anyway.
var (
	minAlpha = math.Radians(-20)
	maxAlpha = math.Radians(30)
)

// Below this dynamic pressure there is nothing to integrate; the solver
// short-circuits to zero forces rather than dividing by it.
const minDynamicPressure = 0.001 // Pa

// Secant-style passes refining the trim alpha against the integrated
// panel lift.
const trimCorrections = 2

// DragBreakdown itemizes the drag sum, in Newtons.
type DragBreakdown struct {
	Pressure     float64
	SkinFriction float64
	Induced      float64
	Base         float64
	AreaRule     float64
}

func (b DragBreakdown) Total() float64 {
	return b.Pressure + b.SkinFriction + b.Induced + b.Base + b.AreaRule
}

// Forces is the solver result at the trim condition.
type Forces struct {
	Lift        float64 // N
	Drag        float64 // N
	PitchMoment float64 // N·m about mid-length, nose-up positive

	CL            float64
	CD            float64
	AngleOfAttack float64 // radians
	Reynolds      float64

	Breakdown DragBreakdown
}

// SolveTrim finds the trim state producing requiredLift at the given
// flight condition and returns the integrated forces. velocity is true
// airspeed in m/s, altitude in meters. Every input in the documented
// domain yields a finite result; degenerate conditions return zero
// forces.
func SolveTrim(geo *hull.Geometry, plane design.Plane, mach, altitude, velocity, requiredLift float64) Forces {
	air := atmos.SampleAtAltitude(altitude)
	q := 0.5 * air.Density * math.Sqr(velocity)
	if q < minDynamicPressure {
		return Forces{}
	}
	plane = plane.Normalized()

	integrate := func(alpha float64) (lift, drag, moment float64) {
		// Freestream direction in body axes (+x aft); positive alpha
		// brings the flow up against the lower surface.
		free := [3]float64{gomath.Cos(alpha), 0, gomath.Sin(alpha)}
		liftDir := [3]float64{-gomath.Sin(alpha), 0, gomath.Cos(alpha)}

		for i := range geo.Panels {
			p := &geo.Panels[i]

			cp := panelCp(mach, free, p, geo)

			// Positive Cp pushes against the outward normal.
			f := math.Scale3(p.Normal, -cp*q*p.Area)

			lift += math.Dot3(f, liftDir)
			drag += math.Dot3(f, free)
			moment += f[2] * (0.5*geo.Length - p.Centroid[0])
		}
		return
	}

	requiredCL := requiredLift / (q * geo.PlanformArea)
	alpha := math.Clamp(requiredCL/liftCurveSlope(mach, geo.AspectRatio), minAlpha, maxAlpha)
	lift, pressureDrag, moment := integrate(alpha)

	// The analytic slope only seeds alpha; the panel model's actual
	// slope differs per regime, so rescale alpha against the integrated
	// lift until trim delivers roughly what was asked for.
	for range trimCorrections {
		if requiredLift == 0 || gomath.Abs(lift) < 1 {
			break
		}
		next := math.Clamp(alpha*requiredLift/lift, minAlpha, maxAlpha)
		if gomath.Abs(next-alpha) < 1e-4 {
			break
		}
		alpha = next
		lift, pressureDrag, moment = integrate(alpha)
	}
	pressureDrag = max(pressureDrag, 0) * plane.DragMultiplier

	cl := lift / (q * geo.PlanformArea)
	re := reynolds(air, velocity, geo.Length)

	bd := DragBreakdown{
		Pressure:     pressureDrag,
		SkinFriction: skinFrictionDrag(geo, q, re),
		Induced:      inducedDrag(geo, q, cl, mach),
		Base:         baseDrag(geo, q),
		AreaRule:     areaRuleDrag(geo, q, mach),
	}

	return Forces{
		Lift:          lift,
		Drag:          bd.Total(),
		PitchMoment:   moment,
		CL:            cl,
		CD:            bd.Total() / (q * geo.PlanformArea),
		AngleOfAttack: alpha,
		Reynolds:      re,
		Breakdown:     bd,
	}
}

// liftCurveSlope returns dCL/dalpha (per radian) for the regime: finite
// wing lifting-line below transonic, a fixed transonic value, Ackeret
// above, Newtonian in hypersonics.
func liftCurveSlope(mach, aspectRatio float64) float64 {
	switch RegimeForMach(mach) {
	case RegimeSubsonic:
		return 2 * gomath.Pi / (1 + 2/aspectRatio)
	case RegimeTransonic:
		return 1.5 * gomath.Pi
	case RegimeSupersonic:
		return 4 / gomath.Sqrt(math.Sqr(mach)-1)
	default:
		return 2
	}
}

func reynolds(air atmos.Sample, velocity, length float64) float64 {
	return air.Density * velocity * length / air.Viscosity
}
