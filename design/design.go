// design/design.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package design holds the scalar shape-quality knobs produced by the
// cutting-plane design step in the editing layer. They are immutable for
// the duration of a simulation run and passed explicitly into the physics
// code that consumes them.
package design

// Plane describes how the authored shape deviates from the reference
// vehicle: a draggier shape, a sharper (hotter) nose, better or worse
// thermal protection. All three are dimensionless multipliers with 1
// meaning "reference".
type Plane struct {
	DragMultiplier         float64 `json:"drag_multiplier"`
	HeatingRateMultiplier  float64 `json:"heating_rate_multiplier"`
	ThermalLimitMultiplier float64 `json:"thermal_limit_multiplier"`
}

// Default returns the reference design.
func Default() Plane {
	return Plane{
		DragMultiplier:         1,
		HeatingRateMultiplier:  1,
		ThermalLimitMultiplier: 1,
	}
}

// Normalized returns the design with non-positive multipliers replaced
// by the reference value, so arithmetic downstream never divides by
// zero.
func (p Plane) Normalized() Plane {
	if p.DragMultiplier <= 0 {
		p.DragMultiplier = 1
	}
	if p.HeatingRateMultiplier <= 0 {
		p.HeatingRateMultiplier = 1
	}
	if p.ThermalLimitMultiplier <= 0 {
		p.ThermalLimitMultiplier = 1
	}
	return p
}
