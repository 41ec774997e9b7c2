// hull/descriptor.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hull

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/ascent-sim/ascent/util"
)

// Curve descriptors are owned by the design layer and read-only here.
// All coordinates are in canvas units with +x aft; the planform's
// AircraftLength (meters) is the single authoritative dimension from
// which the canvas-to-meter scale is derived, applied isotropically.

// SideProfile describes the vehicle in side view: a quadratic Bezier for
// the upper surface and, for the lower surface, an inlet ramp Bezier, a
// flat engine bay of EngineLength, and a nozzle boattail Bezier.
type SideProfile struct {
	Top    [3][2]float64 `json:"top"`    // upper surface, nose to tail
	Inlet  [3][2]float64 `json:"inlet"`  // lower surface, nose to engine bay
	Nozzle [3][2]float64 `json:"nozzle"` // lower surface, engine bay to tail

	EngineLength float64 `json:"engine_length"` // canvas units
	MaxHeight    float64 `json:"max_height"`    // canvas units
}

// TopZ returns the upper surface height at longitudinal position x.
func (p *SideProfile) TopZ(x float64) float64 {
	return QuadraticBezierYAtX(x, p.Top[0], p.Top[1], p.Top[2])
}

// BottomZ returns the lower surface height at x: the inlet ramp forward
// of the engine bay, flat along the bay, and the nozzle curve aft of it.
func (p *SideProfile) BottomZ(x float64) float64 {
	bayStart := p.Inlet[2][0]
	bayEnd := bayStart + p.EngineLength
	switch {
	case x <= bayStart:
		return QuadraticBezierYAtX(x, p.Inlet[0], p.Inlet[1], p.Inlet[2])
	case x < bayEnd:
		return p.Inlet[2][1]
	default:
		return QuadraticBezierYAtX(x-bayEnd+p.Nozzle[0][0], p.Nozzle[0], p.Nozzle[1], p.Nozzle[2])
	}
}

// EngineBay returns the longitudinal extent of the engine bay in canvas
// units; the mass model and panel classifier treat this band of the lower
// surface as the engine inlet region.
func (p *SideProfile) EngineBay() (start, end float64) {
	return p.Inlet[2][0], p.Inlet[2][0] + p.EngineLength
}

// Planform describes the vehicle in top view by its left-side outline: a
// quadratic Bezier through nose, mid and tail giving body half-width,
// plus a straight-tapered wing from WingStart to the tail.
type Planform struct {
	Nose [2]float64 `json:"nose"`
	Mid  [2]float64 `json:"mid"`
	Tail [2]float64 `json:"tail"`

	WingStart float64 `json:"wing_start"` // canvas x where the wing begins
	WingSpan  float64 `json:"wing_span"`  // additional half-span, canvas units

	// AircraftLength is the real length in meters; everything else
	// scales from it.
	AircraftLength float64 `json:"aircraft_length"`
}

// HalfWidth returns the half-width of the planform at longitudinal
// position x, body plus wing.
func (p *Planform) HalfWidth(x float64) float64 {
	w := QuadraticBezierYAtX(x, p.Nose, p.Mid, p.Tail)

	// The wing tapers in linearly from WingStart, peaking at the tail.
	if x > p.WingStart && p.Tail[0] > p.WingStart {
		t := (x - p.WingStart) / (p.Tail[0] - p.WingStart)
		w += p.WingSpan * min(t, 1)
	}
	return w
}

// XRange returns the longitudinal extent of the planform in canvas units.
func (p *Planform) XRange() (x0, x1 float64) {
	return p.Nose[0], p.Tail[0]
}

// CrossSection describes the hull section shape as Catmull-Rom control
// points for the upper and lower halves, in arbitrary units; the
// extractor normalizes it to [-1,1]x[-1,1] before sweeping it along the
// body.
type CrossSection struct {
	Top    [][2]float64 `json:"top"`    // left to right
	Bottom [][2]float64 `json:"bottom"` // right to left (closing the loop)

	// Samples per spline segment; 0 selects the default.
	Steps int `json:"steps,omitempty"`
}

const defaultCrossSectionSteps = 10

// Check validates the descriptors, accumulating problems in e rather
// than stopping at the first.
func Check(profile *SideProfile, planform *Planform, cross *CrossSection, e *util.ErrorLogger) {
	e.Push("side profile")
	if profile.EngineLength < 0 {
		e.ErrorString("engine length %g is negative", profile.EngineLength)
	}
	if profile.MaxHeight <= 0 {
		e.ErrorString("max height %g must be positive", profile.MaxHeight)
	}
	if profile.Top[2][0] <= profile.Top[0][0] {
		e.ErrorString("top curve runs backwards: tail x %g <= nose x %g",
			profile.Top[2][0], profile.Top[0][0])
	}
	e.Pop()

	e.Push("planform")
	if planform.Tail[0] <= planform.Nose[0] {
		e.ErrorString("tail x %g <= nose x %g", planform.Tail[0], planform.Nose[0])
	}
	if planform.AircraftLength <= 0 {
		e.ErrorString("aircraft length %g must be positive meters", planform.AircraftLength)
	}
	if planform.WingSpan < 0 {
		e.ErrorString("wing span %g is negative", planform.WingSpan)
	}
	e.Pop()

	e.Push("cross section")
	if len(cross.Top) < 2 {
		e.ErrorString("need at least 2 top control points, have %d", len(cross.Top))
	}
	if len(cross.Bottom) < 2 {
		e.ErrorString("need at least 2 bottom control points, have %d", len(cross.Bottom))
	}
	if cross.Steps < 0 {
		e.ErrorString("steps %d is negative", cross.Steps)
	}
	e.Pop()
}

// Hash returns a stable key for the descriptor values, used to memoize
// geometry extraction: equal inputs always produce equal keys.
func Hash(profile *SideProfile, planform *Planform, cross *CrossSection) string {
	h := sha256.New()
	w := func(vals ...float64) {
		for _, v := range vals {
			_ = binary.Write(h, binary.LittleEndian, v)
		}
	}
	for _, p := range profile.Top {
		w(p[0], p[1])
	}
	for _, p := range profile.Inlet {
		w(p[0], p[1])
	}
	for _, p := range profile.Nozzle {
		w(p[0], p[1])
	}
	w(profile.EngineLength, profile.MaxHeight)
	w(planform.Nose[0], planform.Nose[1], planform.Mid[0], planform.Mid[1],
		planform.Tail[0], planform.Tail[1], planform.WingStart, planform.WingSpan,
		planform.AircraftLength)
	for _, p := range cross.Top {
		w(p[0], p[1])
	}
	w(0) // separator so top/bottom splits hash differently
	for _, p := range cross.Bottom {
		w(p[0], p[1])
	}
	w(float64(cross.Steps))
	return hex.EncodeToString(h.Sum(nil))
}
