// propulsion/propulsion.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package propulsion models the four engine cycles the vehicle can fly
// on: an ejector-ramjet for takeoff and transonic acceleration, a ramjet
// for supersonic cruise, a scramjet for the hypersonic leg, and a rocket
// for the final ascent. Each implements the same Engine contract; the
// Manager dispatches among them.
package propulsion

import (
	"encoding/json"
	"fmt"
)

type Mode int

const (
	ModeAuto Mode = iota
	ModeEjectorRamjet
	ModeRamjet
	ModeScramjet
	ModeRocket
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeEjectorRamjet:
		return "ejector-ramjet"
	case ModeRamjet:
		return "ramjet"
	case ModeScramjet:
		return "scramjet"
	case ModeRocket:
		return "rocket"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto":
		return ModeAuto, nil
	case "ejector-ramjet":
		return ModeEjectorRamjet, nil
	case "ramjet":
		return ModeRamjet, nil
	case "scramjet":
		return ModeScramjet, nil
	case "rocket":
		return ModeRocket, nil
	default:
		return ModeAuto, fmt.Errorf("%q: unknown engine mode", s)
	}
}

func (m Mode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Mode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	mode, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Envelope is the altitude/Mach box an engine is certified to operate
// in. Altitudes are in feet, matching the flight plan convention.
type Envelope struct {
	MinAltitudeFt float64
	MaxAltitudeFt float64
	MinMach       float64
	MaxMach       float64
}

func (e Envelope) Contains(altitudeFt, mach float64) bool {
	return altitudeFt >= e.MinAltitudeFt && altitudeFt <= e.MaxAltitudeFt &&
		mach >= e.MinMach && mach <= e.MaxMach
}

// Engine is the common contract for all four cycles. Thrust and fuel
// consumption are total (all installed engines of the type); any input
// yields a finite, non-negative result, with zero meaning "cannot
// produce thrust here".
type Engine interface {
	Mode() Mode

	// Thrust in Newtons at the given altitude (feet) and Mach.
	Thrust(altitudeFt, mach float64) float64

	// FuelConsumption in liters/second of propellant volume.
	FuelConsumption(altitudeFt, mach float64) float64

	CanOperate(altitudeFt, mach float64) bool
	Envelope() Envelope

	// Weight in kg when sized for the given peak thrust requirement.
	Weight(peakThrust float64) float64
}

// SelectEngineMode is the single source of truth mapping a flight
// condition to the engine that should fly it: non-overlapping bands
// checked in priority order scramjet > ramjet > ejector-ramjet, with
// rocket covering everything no airbreather can reach (very high
// altitude, or speeds outside every airbreathing band).
func SelectEngineMode(altitudeFt, mach float64) Mode {
	switch {
	case altitudeFt >= 80000 && altitudeFt < 200000 && mach >= 5 && mach <= 15:
		return ModeScramjet
	case altitudeFt >= 40000 && altitudeFt < 100000 && mach >= 2 && mach < 5:
		return ModeRamjet
	case altitudeFt < 60000 && mach < 3:
		return ModeEjectorRamjet
	default:
		return ModeRocket
	}
}
