// util/generic.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

// Select returns a or b depending on the given selector; it's a
// single-expression stand-in for a ternary.
func Select[T any](sel bool, a, b T) T {
	if sel {
		return a
	}
	return b
}

// MapSlice returns a new slice with f applied to each element of s.
func MapSlice[F, T any](s []F, f func(F) T) []T {
	r := make([]T, len(s))
	for i, v := range s {
		r[i] = f(v)
	}
	return r
}
