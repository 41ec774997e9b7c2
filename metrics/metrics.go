// metrics/metrics.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package metrics exports the simulation state as Prometheus gauges.
// Recorder implements flight.Recorder, so a live simulation feeds the
// /metrics endpoint with no extra plumbing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ascent-sim/ascent/flight"
	"github.com/ascent-sim/ascent/propulsion"
)

type Recorder struct {
	altitude        prometheus.Gauge
	velocity        prometheus.Gauge
	mach            prometheus.Gauge
	fuelRemaining   prometheus.Gauge
	thrust          prometheus.Gauge
	drag            prometheus.Gauge
	dynamicPressure prometheus.Gauge
	wallTemperature prometheus.Gauge
	engineMode      *prometheus.GaugeVec

	points prometheus.Counter
}

// NewRecorder registers the simulation gauges on the given registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	gauge := func(name, help string) prometheus.Gauge {
		g := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
		reg.MustRegister(g)
		return g
	}

	r := &Recorder{
		altitude:        gauge("ascent_altitude_feet", "Current altitude"),
		velocity:        gauge("ascent_velocity_mps", "Current true airspeed"),
		mach:            gauge("ascent_mach", "Current Mach number"),
		fuelRemaining:   gauge("ascent_fuel_remaining_liters", "Propellant left in the tanks"),
		thrust:          gauge("ascent_thrust_newton", "Net thrust after throttle caps"),
		drag:            gauge("ascent_drag_newton", "Total trim drag"),
		dynamicPressure: gauge("ascent_dynamic_pressure_pascal", "Dynamic pressure q"),
		wallTemperature: gauge("ascent_wall_temperature_kelvin", "Stagnation-point wall temperature"),
		engineMode: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ascent_engine_active",
			Help: "1 for the engine mode currently flying, 0 otherwise",
		}, []string{"mode"}),
		points: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ascent_trajectory_points_total",
			Help: "Trajectory points sampled across all simulations",
		}),
	}
	reg.MustRegister(r.engineMode, r.points)
	return r
}

var allModes = []propulsion.Mode{
	propulsion.ModeEjectorRamjet,
	propulsion.ModeRamjet,
	propulsion.ModeScramjet,
	propulsion.ModeRocket,
}

// Record implements flight.Recorder.
func (r *Recorder) Record(p flight.TrajectoryPoint) {
	r.altitude.Set(p.AltitudeFt)
	r.velocity.Set(p.Velocity)
	r.mach.Set(p.Mach)
	r.fuelRemaining.Set(p.FuelRemaining)
	r.thrust.Set(p.Thrust)
	r.drag.Set(p.Drag)
	r.dynamicPressure.Set(p.DynamicPressure)
	r.wallTemperature.Set(p.WallTemperature)

	for _, m := range allModes {
		v := 0.0
		if m == p.Mode {
			v = 1
		}
		r.engineMode.WithLabelValues(m.String()).Set(v)
	}
	r.points.Inc()
}
