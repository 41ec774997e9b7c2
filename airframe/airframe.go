// airframe/airframe.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package airframe is the structural/mass model: it turns a geometry, a
// design and a flight plan into the dry mass the integrator and the
// sizing optimizer fly with.
package airframe

import (
	gomath "math"

	"github.com/ascent-sim/ascent/aero"
	"github.com/ascent-sim/ascent/atmos"
	"github.com/ascent-sim/ascent/design"
	"github.com/ascent-sim/ascent/hull"
	"github.com/ascent-sim/ascent/plan"
	"github.com/ascent-sim/ascent/propulsion"
)

const (
	// Base structure scales with volume^(2/3): surface-dominated mass.
	structureUnitMass = 160 // kg per m^2-equivalent of volume^(2/3)

	// The efficiency multiplier is 1 at this lift-to-drag ratio,
	// growing as the shape gets draggier at the reference condition.
	referenceLD         = 8.0
	maxStructurePenalty = 3.0

	// Reference condition for the L/D evaluation.
	referenceMach       = 6.0
	referenceAltitudeFt = 80000.0

	fixedCargoMass = 2000 // kg
)

// Thermal reinforcement rates per surface region, kg/m^2. The nose cap
// and leading edges see stagnation heating; the belly takes re-entry
// loads; the top deck stays comparatively cool.
var reinforcementRate = map[hull.Region]float64{
	hull.RegionNoseCap:     45,
	hull.RegionLeadingEdge: 32,
	hull.RegionLower:       16,
	hull.RegionUpper:       7,
	hull.RegionEngineInlet: 22,
	hull.RegionTail:        10,
}

// MassBreakdown itemizes dry mass, all kg.
type MassBreakdown struct {
	Structure            float64 `json:"structure"`
	ThermalReinforcement float64 `json:"thermal_reinforcement"`
	Engines              float64 `json:"engines"`
	Cargo                float64 `json:"cargo"`
}

func (m MassBreakdown) Dry() float64 {
	return m.Structure + m.ThermalReinforcement + m.Engines + m.Cargo
}

// Configuration is the derived vehicle description handed to the
// integrator, the fuel estimator and the UI.
type Configuration struct {
	Geometry *hull.Geometry
	Plane    design.Plane
	Plan     plan.Plan

	Mass        MassBreakdown
	ReferenceLD float64 // L/D at the Mach 6 / 80,000 ft reference point
}

// Compute builds the configuration: structural mass from the geometry,
// engine mass from the peak thrust the plan demands of each cycle.
func Compute(geo *hull.Geometry, pd design.Plane, fp plan.Plan, mgr *propulsion.Manager) Configuration {
	ld := referenceLiftToDrag(geo, pd)

	structure := structureUnitMass * gomath.Pow(gomath.Max(geo.Volume, 0), 2.0/3.0) *
		structurePenalty(ld)

	var reinforcement float64
	areas := geo.Areas
	reinforcement += reinforcementRate[hull.RegionNoseCap] * areas.NoseCap
	reinforcement += reinforcementRate[hull.RegionLeadingEdge] * areas.LeadingEdge
	reinforcement += reinforcementRate[hull.RegionUpper] * areas.Upper
	reinforcement += reinforcementRate[hull.RegionLower] * areas.Lower
	reinforcement += reinforcementRate[hull.RegionEngineInlet] * areas.EngineInlet
	reinforcement += reinforcementRate[hull.RegionTail] * areas.Tail

	return Configuration{
		Geometry: geo,
		Plane:    pd,
		Plan:     fp,
		Mass: MassBreakdown{
			Structure:            structure,
			ThermalReinforcement: reinforcement,
			Engines:              EngineMass(fp, mgr),
			Cargo:                fixedCargoMass,
		},
		ReferenceLD: ld,
	}
}

// EngineMass sums the weight of each installed engine. Sized-by-thrust
// cycles use the peak thrust the engine can deliver across the plan's
// waypoints as a proxy for the peak thrust demanded there; the
// installation has to carry the full cycle either way. Fixed-weight
// cycles (ramjet, scramjet) count whether or not the plan uses them;
// they are part of the combined-cycle installation.
func EngineMass(fp plan.Plan, mgr *propulsion.Manager) float64 {
	peak := make(map[propulsion.Mode]float64)
	for _, w := range fp.Waypoints {
		mode := w.Mode
		if mode == propulsion.ModeAuto {
			mode = propulsion.SelectEngineMode(w.AltitudeFt, w.Mach)
		}
		if e, err := mgr.Engine(mode); err == nil {
			peak[mode] = gomath.Max(peak[mode], e.Thrust(w.AltitudeFt, w.Mach))
		}
	}

	var total float64
	for _, e := range mgr.Engines() {
		total += e.Weight(peak[e.Mode()])
	}
	return total
}

// structurePenalty grows the structural fraction as the shape's
// lift-to-drag ratio falls below the reference value.
func structurePenalty(ld float64) float64 {
	if ld >= referenceLD {
		return 1
	}
	if ld <= 0 {
		return maxStructurePenalty
	}
	return gomath.Min(referenceLD/ld, maxStructurePenalty)
}

// referenceLiftToDrag runs the aero solver at the fixed hypersonic
// cruise reference point, asking for lift equal to a nominal wing
// loading, and reports L/D there.
func referenceLiftToDrag(geo *hull.Geometry, pd design.Plane) float64 {
	alt := atmos.FeetToMeters(referenceAltitudeFt)
	v := atmos.MachToVelocity(referenceMach, alt)
	q := atmos.DynamicPressure(alt, v)

	required := 0.05 * q * geo.PlanformArea
	f := aero.SolveTrim(geo, pd, referenceMach, alt, v, required)
	if f.Drag <= 0 {
		return 0
	}
	return f.Lift / f.Drag
}
