// propulsion/manager.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package propulsion

import "fmt"

// Manager owns one engine of each cycle and dispatches flight-condition
// queries to whichever is active. In auto mode the active engine follows
// SelectEngineMode; a fixed mode pins it for the duration of a segment.
type Manager struct {
	engines map[Mode]Engine
	active  Engine
}

func NewManager() *Manager {
	return NewManagerWith(NewEjectorRamjet(), NewRamjet(), NewScramjet(), NewRocket())
}

// NewManagerWith builds a manager over a custom engine set, keyed by
// each engine's mode. Tests substitute degraded engines this way.
func NewManagerWith(engines ...Engine) *Manager {
	m := &Manager{engines: make(map[Mode]Engine)}
	for _, e := range engines {
		m.engines[e.Mode()] = e
	}
	m.active = m.engines[ModeEjectorRamjet]
	return m
}

// Engine returns the engine for a specific (non-auto) mode.
func (m *Manager) Engine(mode Mode) (Engine, error) {
	e, ok := m.engines[mode]
	if !ok {
		return nil, fmt.Errorf("%s: no engine for mode", mode)
	}
	return e, nil
}

func (m *Manager) Engines() []Engine {
	// Stable order for weight accounting and reports.
	var es []Engine
	for _, mode := range []Mode{ModeEjectorRamjet, ModeRamjet, ModeScramjet, ModeRocket} {
		if e, ok := m.engines[mode]; ok {
			es = append(es, e)
		}
	}
	return es
}

// Select updates the active engine for the given flight condition and
// commanded mode and returns it. ModeAuto consults SelectEngineMode; if
// the selected engine can't actually produce thrust there, it falls
// back to any engine that can, preferring airbreathers, and finally the
// rocket, which always operates.
func (m *Manager) Select(mode Mode, altitudeFt, mach float64) Engine {
	if mode != ModeAuto {
		if e, ok := m.engines[mode]; ok {
			m.active = e
		}
		return m.active
	}

	if e, ok := m.engines[SelectEngineMode(altitudeFt, mach)]; ok && e.CanOperate(altitudeFt, mach) {
		m.active = e
		return e
	}
	for _, fallback := range []Mode{ModeScramjet, ModeRamjet, ModeEjectorRamjet} {
		if e, ok := m.engines[fallback]; ok && e.CanOperate(altitudeFt, mach) {
			m.active = e
			return e
		}
	}
	m.active = m.engines[ModeRocket]
	return m.active
}

func (m *Manager) Active() Engine { return m.active }
