// math/bisect.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

// InvertMonotonic finds the parameter t in [t0,t1] at which the given
// monotonic function takes the value target, using fixed-count interval
// bisection. The hull curves are parametric in t with x(t) monotonic but
// not directly invertible, so this comes up everywhere in geometry
// extraction; it is centralized here so there is exactly one copy of the
// bisection loop.
func InvertMonotonic(f func(float64) float64, t0, t1, target float64, iterations int) float64 {
	increasing := f(t1) >= f(t0)
	for range iterations {
		tm := (t0 + t1) / 2
		if (f(tm) < target) == increasing {
			t0 = tm
		} else {
			t1 = tm
		}
	}
	return (t0 + t1) / 2
}
