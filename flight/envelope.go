// flight/envelope.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package flight

import (
	gomath "math"

	"github.com/ascent-sim/ascent/plan"
	"github.com/ascent-sim/ascent/propulsion"
	"github.com/ascent-sim/ascent/util"
)

// EnvelopeCheck is the structured pass/fail for one waypoint: whether
// the engine that would fly it can operate there, and by what margin.
// Margins are distances to the nearest envelope edge, negative when the
// waypoint lies outside.
type EnvelopeCheck struct {
	Waypoint plan.Waypoint   `json:"waypoint"`
	Mode     propulsion.Mode `json:"mode"`
	Pass     bool            `json:"pass"`

	AltitudeMarginFt float64 `json:"altitude_margin_ft"`
	MachMargin       float64 `json:"mach_margin"`
}

// ValidateEnvelope checks every waypoint of the plan against the engine
// that would fly it, before the plan is trusted to a simulation.
func ValidateEnvelope(fp plan.Plan, mgr *propulsion.Manager) []EnvelopeCheck {
	return util.MapSlice(fp.Waypoints, func(w plan.Waypoint) EnvelopeCheck {
		mode := w.Mode
		if mode == propulsion.ModeAuto {
			mode = propulsion.SelectEngineMode(w.AltitudeFt, w.Mach)
		}
		engine, err := mgr.Engine(mode)
		if err != nil {
			return EnvelopeCheck{Waypoint: w, Mode: mode}
		}
		env := engine.Envelope()
		return EnvelopeCheck{
			Waypoint: w,
			Mode:     mode,
			Pass:     engine.CanOperate(w.AltitudeFt, w.Mach),
			AltitudeMarginFt: gomath.Min(w.AltitudeFt-env.MinAltitudeFt,
				env.MaxAltitudeFt-w.AltitudeFt),
			MachMargin: gomath.Min(w.Mach-env.MinMach, env.MaxMach-w.Mach),
		}
	})
}
