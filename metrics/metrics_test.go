// metrics/metrics_test.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ascent-sim/ascent/flight"
	"github.com/ascent-sim/ascent/propulsion"
)

func TestRecorderExportsTrajectory(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)

	rec.Record(flight.TrajectoryPoint{
		Time:       1,
		AltitudeFt: 42000,
		Velocity:   800,
		Mach:       2.7,
		Mode:       propulsion.ModeRamjet,
	})
	rec.Record(flight.TrajectoryPoint{
		Time:       2,
		AltitudeFt: 43000,
		Velocity:   820,
		Mach:       2.8,
		Mode:       propulsion.ModeRamjet,
	})

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	got := make(map[string]float64)
	for _, f := range families {
		for _, m := range f.GetMetric() {
			switch {
			case m.GetGauge() != nil:
				got[f.GetName()] = m.GetGauge().GetValue()
			case m.GetCounter() != nil:
				got[f.GetName()] = m.GetCounter().GetValue()
			}
		}
	}

	if got["ascent_altitude_feet"] != 43000 {
		t.Errorf("altitude gauge %f", got["ascent_altitude_feet"])
	}
	if got["ascent_trajectory_points_total"] != 2 {
		t.Errorf("points counter %f", got["ascent_trajectory_points_total"])
	}
	if _, ok := got["ascent_engine_active"]; !ok {
		t.Errorf("engine mode gauge missing")
	}
}

var _ flight.Recorder = (*Recorder)(nil)
