// math/core.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// The physics code works in float64 throughout; this package collects the
// small helpers that would otherwise be scattered casts and clamps at
// each use site.

// Degrees converts an angle expressed in radians to degrees.
func Degrees(r float64) float64 {
	return r * 180 / gomath.Pi
}

// Radians converts an angle expressed in degrees to radians.
func Radians(d float64) float64 {
	return d / 180 * gomath.Pi
}

// SafeASin clamps its argument to [-1,1] before calling asin so that
// slight numerical overshoot doesn't turn into a NaN.
func SafeASin(a float64) float64 {
	return gomath.Asin(Clamp(a, -1, 1))
}

func SafeACos(a float64) float64 {
	return gomath.Acos(Clamp(a, -1, 1))
}

func Sign(v float64) float64 {
	if v > 0 {
		return 1
	} else if v < 0 {
		return -1
	}
	return 0
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

// Linearly interpolate x of the way between a and b. x==0 corresponds to
// a, x==1 corresponds to b, etc.
func Lerp(x, a, b float64) float64 {
	return (1-x)*a + x*b
}
