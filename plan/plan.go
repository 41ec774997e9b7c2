// plan/plan.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package plan defines the flight plan: the ordered waypoint list the
// segment integrator flies and the mass model sizes against.
package plan

import (
	"strconv"

	"github.com/ascent-sim/ascent/atmos"
	"github.com/ascent-sim/ascent/propulsion"
	"github.com/ascent-sim/ascent/util"
)

// Waypoint is a single flight-plan target: reach the given altitude and
// Mach, flying on the stated engine mode, without exceeding MaxG.
type Waypoint struct {
	AltitudeFt float64         `json:"altitude_ft"`
	Mach       float64         `json:"mach"`
	Mode       propulsion.Mode `json:"engine_mode"`
	MaxG       float64         `json:"max_g"`
}

// Plan is an ordered waypoint list. The first waypoint is where the
// vehicle starts, normally on the ground; each consecutive pair is one
// segment for the integrator.
type Plan struct {
	Waypoints []Waypoint `json:"waypoints"`
}

// Segments returns the number of flyable segments.
func (p Plan) Segments() int {
	return max(len(p.Waypoints)-1, 0)
}

// Orbit thresholds: the mission counts as orbital once both are met
// simultaneously. Altitude is in meters; waypoints quote feet, so the
// conversion boundary matters.
const (
	OrbitAltitude = 200000.0 // m
	OrbitMach     = 24.0
)

// IsOrbitAchieved reports whether a state (altitude in meters, speed in
// Mach) counts as orbit.
func IsOrbitAchieved(altitude, mach float64) bool {
	return altitude >= OrbitAltitude && mach >= OrbitMach
}

// Ground returns a standing-start waypoint.
func Ground() Waypoint {
	return Waypoint{AltitudeFt: 0, Mach: 0, Mode: propulsion.ModeAuto, MaxG: 3}
}

// OrbitalAscent is the canonical two-waypoint plan: ground straight to
// the orbital altitude and speed on the rocket. Note the target is
// 200 km, which is far above 200,000 ft.
func OrbitalAscent() Plan {
	return Plan{Waypoints: []Waypoint{
		Ground(),
		{AltitudeFt: atmos.MetersToFeet(OrbitAltitude), Mach: OrbitMach,
			Mode: propulsion.ModeRocket, MaxG: 4},
	}}
}

func (w Waypoint) Check(e *util.ErrorLogger) {
	if w.AltitudeFt < 0 {
		e.ErrorString("altitude %f ft is negative", w.AltitudeFt)
	}
	if w.Mach < 0 {
		e.ErrorString("Mach %f is negative", w.Mach)
	}
	if w.Mach > 30 {
		e.ErrorString("Mach %f is beyond orbital velocity", w.Mach)
	}
	if w.MaxG <= 0 {
		e.ErrorString("max G %f must be positive", w.MaxG)
	}
	if w.Mode != propulsion.ModeAuto {
		env := envelopeFor(w.Mode)
		if !env.Contains(w.AltitudeFt, w.Mach) {
			e.ErrorString("%s cannot operate at %.0f ft Mach %.1f", w.Mode, w.AltitudeFt, w.Mach)
		}
	}
}

func envelopeFor(mode propulsion.Mode) propulsion.Envelope {
	m := propulsion.NewManager()
	e, _ := m.Engine(mode)
	return e.Envelope()
}

func (p Plan) Check(e *util.ErrorLogger) {
	e.Push("flight plan")
	defer e.Pop()

	if len(p.Waypoints) == 0 {
		e.ErrorString("no waypoints")
		return
	}
	if first := p.Waypoints[0]; first.AltitudeFt != 0 || first.Mach != 0 {
		e.ErrorString("first waypoint must be a standing start, got %.0f ft Mach %.1f",
			first.AltitudeFt, first.Mach)
	}
	for i, w := range p.Waypoints {
		e.Push("waypoint " + strconv.Itoa(i))
		w.Check(e)
		e.Pop()
	}
}
