// hull/curve.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hull

import (
	"github.com/ascent-sim/ascent/math"
	"github.com/ascent-sim/ascent/util"
)

// The hull is authored as three parametric curves (side profile, top
// planform, cross-section). Bezier curves are parameterized by t, not by
// x, so recovering "the curve's value at longitudinal position x" goes
// through math.InvertMonotonic; the control point chains used here are
// monotonic in x by construction.

const curveInvertIterations = 20

// QuadraticBezier evaluates the curve defined by p0, p1, p2 at t in [0,1].
func QuadraticBezier(t float64, p0, p1, p2 [2]float64) [2]float64 {
	u := 1 - t
	a := math.Scale2(p0, u*u)
	b := math.Scale2(p1, 2*u*t)
	c := math.Scale2(p2, t*t)
	return math.Add2(math.Add2(a, b), c)
}

// QuadraticBezierYAtX returns the y value of the quadratic Bezier at the
// given x, assuming x(t) is monotonic over the control points.
func QuadraticBezierYAtX(x float64, p0, p1, p2 [2]float64) float64 {
	if x <= min(p0[0], p2[0]) {
		return util.Select(p0[0] <= p2[0], p0, p2)[1]
	}
	if x >= max(p0[0], p2[0]) {
		return util.Select(p0[0] <= p2[0], p2, p0)[1]
	}
	t := math.InvertMonotonic(func(t float64) float64 {
		return QuadraticBezier(t, p0, p1, p2)[0]
	}, 0, 1, x, curveInvertIterations)
	return QuadraticBezier(t, p0, p1, p2)[1]
}

// CatmullRom evaluates the Catmull-Rom segment through p1..p2 (with
// neighbors p0, p3) at t in [0,1].
func CatmullRom(t float64, p0, p1, p2, p3 [2]float64) [2]float64 {
	t2 := t * t
	t3 := t2 * t

	eval := func(v0, v1, v2, v3 float64) float64 {
		return 0.5 * ((2 * v1) +
			(-v0+v2)*t +
			(2*v0-5*v1+4*v2-v3)*t2 +
			(-v0+3*v1-3*v2+v3)*t3)
	}
	return [2]float64{
		eval(p0[0], p1[0], p2[0], p3[0]),
		eval(p0[1], p1[1], p2[1], p3[1]),
	}
}

// SampleCatmullRom interpolates a Catmull-Rom spline through the given
// control points, returning n samples per segment. Endpoints are
// duplicated to pin the spline to the first and last control points.
func SampleCatmullRom(points [][2]float64, n int) [][2]float64 {
	if len(points) < 2 {
		return points
	}

	var out [][2]float64
	for i := range len(points) - 1 {
		p1, p2 := points[i], points[i+1]
		p0 := points[max(i-1, 0)]
		p3 := points[min(i+2, len(points)-1)]

		for j := range n {
			t := float64(j) / float64(n)
			out = append(out, CatmullRom(t, p0, p1, p2, p3))
		}
	}
	return append(out, points[len(points)-1])
}
