// mission/scenario.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/brunoga/deep"

	"github.com/ascent-sim/ascent/airframe"
	"github.com/ascent-sim/ascent/design"
	"github.com/ascent-sim/ascent/hull"
	"github.com/ascent-sim/ascent/plan"
	"github.com/ascent-sim/ascent/propulsion"
	"github.com/ascent-sim/ascent/util"
)

// Scenario is the user-authored design file: the vehicle shape, the
// design multipliers and the flight plan, everything a simulation or
// sizing run needs.
type Scenario struct {
	Name string `json:"name"`

	SideProfile  hull.SideProfile  `json:"side_profile"`
	Planform     hull.Planform     `json:"planform"`
	CrossSection hull.CrossSection `json:"cross_section"`

	Design design.Plane `json:"design"`
	Plan   plan.Plan    `json:"flight_plan"`
}

// Default returns the stock 70 m vehicle on the canonical orbital
// ascent plan.
func Default() Scenario {
	return Scenario{
		Name:         "default",
		SideProfile:  *hull.DefaultSideProfile(),
		Planform:     *hull.DefaultPlanform(70),
		CrossSection: *hull.DefaultCrossSection(),
		Design:       design.Default(),
		Plan:         plan.OrbitalAscent(),
	}
}

// LoadScenario decodes a scenario from JSON. Unknown fields are
// rejected so that typos in hand-edited design files surface
// immediately instead of silently falling back to defaults.
func LoadScenario(r io.Reader) (Scenario, error) {
	var s Scenario
	d := json.NewDecoder(r)
	d.DisallowUnknownFields()
	if err := d.Decode(&s); err != nil {
		return s, fmt.Errorf("scenario: %w", err)
	}
	return s, nil
}

func LoadScenarioFile(path string) (Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	return LoadScenario(bytes.NewReader(b))
}

func (s *Scenario) Check(e *util.ErrorLogger) {
	e.Push("scenario " + s.Name)
	defer e.Pop()

	if s.Name == "" {
		e.ErrorString("name must not be empty")
	}
	hull.Check(&s.SideProfile, &s.Planform, &s.CrossSection, e)
	s.Plan.Check(e)
	if s.Design != s.Design.Normalized() {
		e.ErrorString("design multipliers must be positive")
	}
}

// Geometry extracts (or fetches from the cache) the scenario's panel
// geometry.
func (s *Scenario) Geometry(cache *hull.Cache) *hull.Geometry {
	if cache != nil {
		return cache.Extract(&s.SideProfile, &s.Planform, &s.CrossSection)
	}
	return hull.ExtractGeometry(&s.SideProfile, &s.Planform, &s.CrossSection)
}

// WithLength returns a copy of the scenario rescaled to the given
// aircraft length. The curve descriptors are deep-copied so the sizing
// optimizer's probes never mutate the caller's scenario.
func (s *Scenario) WithLength(length float64) Scenario {
	out := deep.MustCopy(*s)
	out.Planform.AircraftLength = length
	return out
}

// Capacity is the scenario's fuel capacity in liters at its current
// length. Value receiver so it can be chained off WithLength.
func (s Scenario) Capacity(cache *hull.Cache) float64 {
	return FuelCapacity(s.Geometry(cache).Volume)
}

// Residual evaluates the sizing residual for the scenario at its
// current length: fuel capacity minus estimated mission fuel, orbit
// shortfall penalized.
func Residual(s Scenario, cache *hull.Cache, mgr *propulsion.Manager) float64 {
	geo := s.Geometry(cache)
	cfg := airframe.Compute(geo, s.Design, s.Plan, mgr)
	return FuelError(cfg, mgr, FuelCapacity(geo.Volume))
}
