// math/vecmat.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import gomath "math"

///////////////////////////////////////////////////////////////////////////
// point 2

// Various useful functions for arithmetic with 2D points/vectors.
// Names are brief in order to avoid clutter when they're used.

// a+b
func Add2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] + b[0], a[1] + b[1]}
}

// a-b
func Sub2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] - b[0], a[1] - b[1]}
}

// a*s
func Scale2(a [2]float64, s float64) [2]float64 {
	return [2]float64{s * a[0], s * a[1]}
}

func Dot2(a, b [2]float64) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

func Lerp2(x float64, a, b [2]float64) [2]float64 {
	return [2]float64{(1-x)*a[0] + x*b[0], (1-x)*a[1] + x*b[1]}
}

func Length2(v [2]float64) float64 {
	return gomath.Sqrt(v[0]*v[0] + v[1]*v[1])
}

///////////////////////////////////////////////////////////////////////////
// point 3

// a+b
func Add3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// a-b
func Sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// a*s
func Scale3(a [3]float64, s float64) [3]float64 {
	return [3]float64{s * a[0], s * a[1], s * a[2]}
}

func Dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func Cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func Length3(v [3]float64) float64 {
	return gomath.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalizes the given vector; a zero vector is returned unchanged
// rather than dividing by zero.
func Normalize3(v [3]float64) [3]float64 {
	l := Length3(v)
	if l == 0 {
		return v
	}
	return Scale3(v, 1/l)
}

// Mid3 returns the midpoint of the four given points.
func Mid3(a, b, c, d [3]float64) [3]float64 {
	return Scale3(Add3(Add3(a, b), Add3(c, d)), 0.25)
}
