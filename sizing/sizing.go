// sizing/sizing.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package sizing finds the aircraft length at which the fuel the hull
// can carry exactly covers the fuel the mission needs: Newton-Raphson
// on the mission residual with a finite-difference derivative.
package sizing

import (
	gomath "math"

	"github.com/ascent-sim/ascent/hull"
	"github.com/ascent-sim/ascent/math"
	"github.com/ascent-sim/ascent/mission"
	"github.com/ascent-sim/ascent/propulsion"
)

const (
	MinLength = 30.0   // m
	MaxLength = 1000.0 // m

	maxIterations = 20
	derivativeH   = 0.5 // m, centered-difference step

	// Converged once |residual| falls below this fraction of fuel
	// capacity at the current length.
	toleranceFraction = 0.01

	// Below this the derivative is numerically useless; stop rather
	// than divide by it.
	minDerivative = 1e-9
	minStep       = 1e-4 // m
)

// Iteration is one optimizer step, kept for diagnostics.
type Iteration struct {
	Length    float64 `json:"length"`
	FuelError float64 `json:"fuel_error"`
}

// Result is the optimizer outcome. Converged is only set when the
// residual actually met the tolerance; hitting the iteration cap or a
// vanishing derivative reports the best-effort last state with
// Converged false.
type Result struct {
	Length    float64     `json:"length"`
	FuelError float64     `json:"fuel_error"`
	Converged bool        `json:"converged"`
	History   []Iteration `json:"history"`
}

// OptimizeLength sizes the scenario's aircraft length within
// [MinLength, MaxLength] so the mission fuel residual is zero.
func OptimizeLength(initial float64, s mission.Scenario, cache *hull.Cache,
	mgr *propulsion.Manager) Result {

	residual := func(l float64) float64 {
		return mission.Residual(s.WithLength(l), cache, mgr)
	}

	l := math.Clamp(initial, MinLength, MaxLength)
	var result Result

	for range maxIterations {
		f := residual(l)
		result.History = append(result.History, Iteration{Length: l, FuelError: f})
		result.Length, result.FuelError = l, f

		capacity := s.WithLength(l).Capacity(cache)
		if gomath.Abs(f) < toleranceFraction*gomath.Max(capacity, 1) {
			result.Converged = true
			return result
		}

		df := (residual(l+derivativeH) - residual(l-derivativeH)) / (2 * derivativeH)
		if gomath.Abs(df) < minDerivative {
			return result
		}

		step := f / df
		next := math.Clamp(l-step, MinLength, MaxLength)
		if gomath.Abs(next-l) < minStep {
			result.Length = next
			return result
		}
		l = next
	}
	return result
}
