// propulsion/propulsion_test.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package propulsion

import (
	"encoding/json"
	"testing"
)

func TestSelectEngineMode(t *testing.T) {
	testCases := []struct {
		altitudeFt float64
		mach       float64
		want       Mode
	}{
		{0, 0, ModeEjectorRamjet},
		{20000, 1.5, ModeEjectorRamjet},
		{50000, 2.5, ModeRamjet},
		{60000, 3, ModeRamjet},
		{90000, 6, ModeScramjet},
		{150000, 12, ModeScramjet},
		{250000, 20, ModeRocket},
		{110000, 4.5, ModeRocket}, // between bands
		{0, 10, ModeRocket},       // too fast for any low-altitude airbreather
	}
	for _, tc := range testCases {
		if got := SelectEngineMode(tc.altitudeFt, tc.mach); got != tc.want {
			t.Errorf("%.0f ft M%.1f: selected %s, want %s", tc.altitudeFt, tc.mach, got, tc.want)
		}
	}
}

func TestModeJSONRoundTrip(t *testing.T) {
	for _, mode := range []Mode{ModeAuto, ModeEjectorRamjet, ModeRamjet, ModeScramjet, ModeRocket} {
		b, err := json.Marshal(mode)
		if err != nil {
			t.Fatalf("%s: marshal: %v", mode, err)
		}
		var back Mode
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("%s: unmarshal %s: %v", mode, b, err)
		}
		if back != mode {
			t.Errorf("round trip %s -> %s", mode, back)
		}
	}
	var m Mode
	if err := json.Unmarshal([]byte(`"warp"`), &m); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}

func TestEjectorRamjetStaticThrust(t *testing.T) {
	e := NewEjectorRamjet()
	static := e.Thrust(0, 0)
	if static <= 0 {
		t.Fatalf("no static thrust: %f", static)
	}
	if f := e.FuelConsumption(0, 0); f <= 0 {
		t.Errorf("static thrust with no fuel flow: %f", f)
	}
	// The ejector hands off to the ram cycle with no dead band: thrust
	// stays positive through the whole acceleration.
	for _, mach := range []float64{0.5, 1, 1.5, 2, 2.5, 3} {
		if th := e.Thrust(10000, mach); th <= 0 {
			t.Errorf("M%.1f: no thrust during acceleration", mach)
		}
	}
}

func TestRamjetActivationFade(t *testing.T) {
	e := NewRamjet()
	low := e.Thrust(40000, 1.85)
	high := e.Thrust(40000, 3)
	if high <= 0 {
		t.Fatalf("no ramjet thrust at M3: %f", high)
	}
	if low >= high {
		t.Errorf("thrust near the envelope edge (%f) should be below mid-envelope (%f)", low, high)
	}
}

func TestScramjetOperatesAtCruise(t *testing.T) {
	e := NewScramjet()
	if !e.CanOperate(90000, 6) {
		t.Fatalf("scramjet cannot operate at 90,000 ft M6")
	}
	if th := e.Thrust(90000, 6); th <= 0 {
		t.Errorf("no scramjet thrust at cruise: %f", th)
	}
	if f := e.FuelConsumption(90000, 6); f <= 0 {
		t.Errorf("scramjet thrust with no fuel flow: %f", f)
	}
}

func TestThermalChoking(t *testing.T) {
	// At Mach 16 down at 60,000 ft, ram heating alone exceeds the burner
	// limit: no heat can be added, no thrust produced.
	e := NewScramjet()
	if th := e.Thrust(60000, 16); th != 0 {
		t.Errorf("thermally choked scramjet produced thrust %f", th)
	}
	if e.CanOperate(60000, 16) {
		t.Errorf("thermally choked scramjet claims it can operate")
	}
}

func TestOutOfEnvelopeIsZero(t *testing.T) {
	for _, e := range []Engine{NewEjectorRamjet(), NewRamjet(), NewScramjet()} {
		env := e.Envelope()
		alt, mach := env.MaxAltitudeFt+10000, env.MaxMach+1
		if th := e.Thrust(alt, mach); th != 0 {
			t.Errorf("%s: thrust %f outside envelope", e.Mode(), th)
		}
		if f := e.FuelConsumption(alt, mach); f != 0 {
			t.Errorf("%s: fuel flow %f outside envelope", e.Mode(), f)
		}
	}
}

func TestRocketThrustGrowsWithAltitude(t *testing.T) {
	r := NewRocket()
	sl := r.Thrust(0, 0)
	vac := r.Thrust(300000, 20)
	if sl <= 0 {
		t.Fatalf("no sea-level rocket thrust")
	}
	if vac <= sl {
		t.Errorf("vacuum thrust %f should exceed sea-level %f", vac, sl)
	}
	// The gain is bounded by the Isp ratio.
	if vac > sl*452/366*1.001 {
		t.Errorf("vacuum thrust %f exceeds the Isp-ratio bound", vac)
	}
	if f := r.FuelConsumption(0, 0); f <= 0 {
		t.Errorf("rocket thrust with no propellant flow: %f", f)
	}
}

func TestManagerAutoSelection(t *testing.T) {
	m := NewManager()

	if e := m.Select(ModeAuto, 90000, 6); e.Mode() != ModeScramjet {
		t.Errorf("90,000 ft M6 auto: got %s, want scramjet", e.Mode())
	}
	if e := m.Select(ModeAuto, 60000, 3); e.Mode() != ModeRamjet {
		t.Errorf("60,000 ft M3 auto: got %s, want ramjet", e.Mode())
	}
	if e := m.Select(ModeAuto, 0, 0); e.Mode() != ModeEjectorRamjet {
		t.Errorf("takeoff auto: got %s, want ejector-ramjet", e.Mode())
	}
	if e := m.Select(ModeAuto, 250000, 22); e.Mode() != ModeRocket {
		t.Errorf("near orbit auto: got %s, want rocket", e.Mode())
	}
}

func TestManagerFallsBackWhenBandEngineChokes(t *testing.T) {
	// 199,000 ft M10 is inside the scramjet band but the cycle is
	// thermally choked there; no other airbreather reaches that altitude
	// so auto must fall through to the rocket.
	m := NewManager()
	if e := m.Select(ModeAuto, 199000, 10); e.Mode() != ModeRocket {
		t.Errorf("choked-band fallback: got %s, want rocket", e.Mode())
	}
}

func TestManagerFixedMode(t *testing.T) {
	m := NewManager()
	e := m.Select(ModeRocket, 0, 0)
	if e.Mode() != ModeRocket {
		t.Fatalf("fixed rocket mode: got %s", e.Mode())
	}
	if m.Active() != e {
		t.Errorf("Active() does not track Select()")
	}
	if _, err := m.Engine(ModeAuto); err == nil {
		t.Errorf("expected error for Engine(ModeAuto)")
	}
}
