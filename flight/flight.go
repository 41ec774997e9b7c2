// flight/flight.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package flight integrates the vehicle state through the segments of a
// flight plan: fixed-step explicit Euler over (altitude, velocity, fuel,
// time), with the propulsion manager choosing engines and three
// independent throttle caps keeping the trajectory inside its limits.
package flight

import (
	gomath "math"

	"github.com/ascent-sim/ascent/aero"
	"github.com/ascent-sim/ascent/airframe"
	"github.com/ascent-sim/ascent/atmos"
	"github.com/ascent-sim/ascent/plan"
	"github.com/ascent-sim/ascent/propulsion"
	"github.com/ascent-sim/ascent/thermal"
)

const (
	timeStep       = 0.1    // s
	maxSegmentTime = 1000.0 // s, hard ceiling
	sampleEvery    = 10     // steps between trajectory samples, ~1 Hz

	// Fixed shallow climb; the integrator flies constant flight-path
	// angle toward the target altitude rather than solving guidance.
	climbAngle = 5 * gomath.Pi / 180

	earthRadius = 6.371e6 // m

	// Blended LH2/LOX propellant density for converting the tank volume
	// the fuel budget tracks into mass.
	fuelDensity = 360 // kg/m^3

	// No further progress toward the target for this long ends the
	// segment as stalled.
	stallTimeout = 30.0 // s
)

// Mode-specific dynamic pressure ceilings, Pa. Above the ceiling thrust
// is throttled back rather than letting q run away.
var maxDynamicPressure = map[propulsion.Mode]float64{
	propulsion.ModeEjectorRamjet: 90e3,
	propulsion.ModeRamjet:        95e3,
	propulsion.ModeScramjet:      70e3,
	propulsion.ModeRocket:        45e3,
}

type Outcome int

const (
	OutcomeReachedTarget Outcome = iota
	OutcomeFuelExhausted
	OutcomeStalled
	OutcomeTimedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReachedTarget:
		return "reached target"
	case OutcomeFuelExhausted:
		return "fuel exhausted"
	case OutcomeStalled:
		return "stalled"
	default:
		return "timed out"
	}
}

// TrajectoryPoint is one sampled instant of a segment.
type TrajectoryPoint struct {
	Time            float64         `json:"time"`
	AltitudeFt      float64         `json:"altitude_ft"`
	Velocity        float64         `json:"velocity"` // m/s
	Mach            float64         `json:"mach"`
	FuelRemaining   float64         `json:"fuel_remaining"` // L
	Thrust          float64         `json:"thrust"`         // N
	Drag            float64         `json:"drag"`           // N
	DynamicPressure float64         `json:"dynamic_pressure"`
	WallTemperature float64         `json:"wall_temperature"`
	Mode            propulsion.Mode `json:"engine_mode"`
}

// Recorder receives every sampled trajectory point; the metrics
// exporter and the REST trajectory dump both implement it.
type Recorder interface {
	Record(TrajectoryPoint)
}

// SegmentResult is the outcome of integrating one waypoint-to-waypoint
// segment.
type SegmentResult struct {
	Outcome Outcome           `json:"outcome"`
	Points  []TrajectoryPoint `json:"points"`

	FuelUsed        float64         `json:"fuel_used"` // L
	FinalAltitudeFt float64         `json:"final_altitude_ft"`
	FinalMach       float64         `json:"final_mach"`
	Duration        float64         `json:"duration"` // s
	EngineUsed      propulsion.Mode `json:"engine_used"`
}

// PlanResult aggregates the per-segment results of a full plan run.
type PlanResult struct {
	Segments      []SegmentResult `json:"segments"`
	FuelUsed      float64         `json:"fuel_used"`
	OrbitAchieved bool            `json:"orbit_achieved"`
}

// SimulateSegment flies the vehicle from its current state toward the
// target waypoint, starting with the given fuel load in liters. The
// recorder may be nil.
func SimulateSegment(cfg airframe.Configuration, mgr *propulsion.Manager,
	from, to plan.Waypoint, fuel float64, rec Recorder) SegmentResult {

	geo := cfg.Geometry
	dry := cfg.Mass.Dry()

	alt := atmos.FeetToMeters(from.AltitudeFt)
	v := atmos.MachToVelocity(from.Mach, alt)
	targetAlt := atmos.FeetToMeters(to.AltitudeFt)
	targetV := atmos.MachToVelocity(to.Mach, targetAlt)

	altTol := gomath.Max(0.02*targetAlt, 100)
	vTol := gomath.Max(0.02*targetV, 5)

	startFuel := fuel
	var result SegmentResult
	result.EngineUsed = to.Mode

	bestDistance := gomath.Inf(1)
	lastProgress := 0.0

	t := 0.0
	for step := 0; ; step++ {
		air := atmos.SampleAtAltitude(alt)
		mach := v / air.SoundSpeed
		altFt := atmos.MetersToFeet(alt)

		engine := mgr.Select(to.Mode, altFt, mach)
		result.EngineUsed = engine.Mode()

		mass := dry + fuel/1000*fuelDensity
		weight := mass * atmos.G0

		// Required lift: weight less the centrifugal relief, along the
		// climb angle toward the target altitude.
		gamma := climbGamma(alt, targetAlt, altTol)
		centrifugal := mass * v * v / (earthRadius + alt)
		requiredLift := (weight - centrifugal) * gomath.Cos(gamma)

		forces := aero.SolveTrim(geo, cfg.Plane, mach, alt, v, requiredLift)

		thrust := gomath.Max(engine.Thrust(altFt, mach), 0)
		available := thrust
		thrust = throttleOverspeed(thrust, v, targetV, alt, targetAlt)
		thrust = throttleMaxG(thrust, engine.Mode(), to.MaxG, mass, forces.Drag, weight, gamma)
		thrust = throttleMaxQ(thrust, engine.Mode(), atmos.DynamicPressure(alt, v))

		throttle := 0.0
		if available > 0 {
			throttle = thrust / available
		}

		accel := (thrust - forces.Drag - weight*gomath.Sin(gamma)) / mass
		v = gomath.Max(v+accel*timeStep, 0)
		alt += v * gomath.Sin(gamma) * timeStep
		if alt < 0 {
			alt = 0
		}

		fuel = gomath.Max(fuel-engine.FuelConsumption(altFt, mach)*throttle*timeStep, 0)
		t += timeStep

		if step%sampleEvery == 0 {
			pt := TrajectoryPoint{
				Time:            t,
				AltitudeFt:      altFt,
				Velocity:        v,
				Mach:            mach,
				FuelRemaining:   fuel,
				Thrust:          thrust,
				Drag:            forces.Drag,
				DynamicPressure: atmos.DynamicPressure(alt, v),
				WallTemperature: thermal.WallTemperature(alt, v, geo.NoseRadius, cfg.Plane),
				Mode:            engine.Mode(),
			}
			result.Points = append(result.Points, pt)
			if rec != nil {
				rec.Record(pt)
			}
		}

		// Terminal conditions.
		if gomath.Abs(alt-targetAlt) < altTol && gomath.Abs(v-targetV) < vTol {
			result.Outcome = OutcomeReachedTarget
			break
		}
		if fuel <= 0 {
			result.Outcome = OutcomeFuelExhausted
			break
		}
		if d := targetDistance(alt, targetAlt, v, targetV); d < bestDistance*(1-1e-4) {
			bestDistance = d
			lastProgress = t
		} else if t-lastProgress > stallTimeout {
			result.Outcome = OutcomeStalled
			break
		}
		if t >= maxSegmentTime {
			result.Outcome = OutcomeTimedOut
			break
		}
	}

	result.FuelUsed = startFuel - fuel
	result.FinalAltitudeFt = atmos.MetersToFeet(alt)
	result.FinalMach = v / atmos.SampleAtAltitude(alt).SoundSpeed
	result.Duration = t
	return result
}

// SimulatePlan flies every segment in order, carrying fuel state
// through; it stops early once a segment fails to reach its waypoint.
func SimulatePlan(cfg airframe.Configuration, mgr *propulsion.Manager,
	fuel float64, rec Recorder) PlanResult {

	var result PlanResult
	wps := cfg.Plan.Waypoints
	for i := 0; i+1 < len(wps); i++ {
		seg := SimulateSegment(cfg, mgr, wps[i], wps[i+1], fuel, rec)
		result.Segments = append(result.Segments, seg)
		result.FuelUsed += seg.FuelUsed
		fuel -= seg.FuelUsed
		if seg.Outcome != OutcomeReachedTarget {
			return result
		}
	}
	if n := len(result.Segments); n > 0 {
		last := result.Segments[n-1]
		result.OrbitAchieved = plan.IsOrbitAchieved(
			atmos.FeetToMeters(last.FinalAltitudeFt), last.FinalMach)
	}
	return result
}

func climbGamma(alt, targetAlt, altTol float64) float64 {
	if gomath.Abs(alt-targetAlt) < altTol {
		return 0
	}
	if targetAlt < alt {
		return -climbAngle
	}
	return climbAngle
}

// throttleOverspeed backs the throttle off when the vehicle is already
// past its target speed while still below the target altitude; excess
// thrust there only feeds drag and heating.
func throttleOverspeed(thrust, v, targetV, alt, targetAlt float64) float64 {
	if alt >= targetAlt || targetV <= 0 || v <= targetV {
		return thrust
	}
	factor := 1 - (v-targetV)/(0.05*targetV)
	return thrust * gomath.Max(factor, 0)
}

// throttleMaxG back-solves the thrust allowed by the waypoint's G limit
// for rocket flight; the airbreathers never approach it.
func throttleMaxG(thrust float64, mode propulsion.Mode, maxG, mass, drag, weight, gamma float64) float64 {
	if mode != propulsion.ModeRocket || maxG <= 0 {
		return thrust
	}
	allowed := mass*maxG*atmos.G0 + drag + weight*gomath.Sin(gamma)
	return gomath.Min(thrust, gomath.Max(allowed, 0))
}

func throttleMaxQ(thrust float64, mode propulsion.Mode, q float64) float64 {
	limit, ok := maxDynamicPressure[mode]
	if !ok || q <= limit {
		return thrust
	}
	return thrust * limit / q
}

// targetDistance is the progress metric for stall detection, a
// dimensionless blend of the altitude and velocity errors.
func targetDistance(alt, targetAlt, v, targetV float64) float64 {
	return gomath.Abs(alt-targetAlt)/gomath.Max(targetAlt, 1) +
		gomath.Abs(v-targetV)/gomath.Max(targetV, 1)
}
