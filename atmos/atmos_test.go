// atmos/atmos_test.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package atmos

import (
	"math"
	"testing"
)

func TestSeaLevel(t *testing.T) {
	s := SampleAtAltitude(0)
	if math.Abs(s.Temperature-288.15) > 1e-9 {
		t.Errorf("sea level temperature %f", s.Temperature)
	}
	if math.Abs(s.Pressure-101325) > 1e-6 {
		t.Errorf("sea level pressure %f", s.Pressure)
	}
	if math.Abs(s.Density-1.225) > 0.001 {
		t.Errorf("sea level density %f", s.Density)
	}
	// a = sqrt(1.4 * 287.058 * 288.15) ~= 340.3 m/s
	if math.Abs(s.SoundSpeed-340.3) > 0.2 {
		t.Errorf("sea level sound speed %f", s.SoundSpeed)
	}
}

func TestLayerContinuity(t *testing.T) {
	for _, boundary := range []float64{TropopauseAltitude, StratopauseAltitude} {
		below := SampleAtAltitude(boundary - 0.01)
		above := SampleAtAltitude(boundary + 0.01)

		if relDiff := math.Abs(below.Temperature-above.Temperature) / below.Temperature; relDiff > 1e-5 {
			t.Errorf("temperature discontinuity at %.0f m: %f vs %f", boundary,
				below.Temperature, above.Temperature)
		}
		if relDiff := math.Abs(below.Pressure-above.Pressure) / below.Pressure; relDiff > 1e-5 {
			t.Errorf("pressure discontinuity at %.0f m: %f vs %f", boundary,
				below.Pressure, above.Pressure)
		}
		if relDiff := math.Abs(below.Density-above.Density) / below.Density; relDiff > 1e-5 {
			t.Errorf("density discontinuity at %.0f m: %f vs %f", boundary,
				below.Density, above.Density)
		}
	}
}

func TestMonotonicDecrease(t *testing.T) {
	prev := SampleAtAltitude(0)
	for alt := 100.0; alt <= 80000; alt += 100 {
		s := SampleAtAltitude(alt)
		if s.Density >= prev.Density {
			t.Errorf("density not strictly decreasing at %.0f m: %g >= %g", alt, s.Density, prev.Density)
		}
		if s.Pressure >= prev.Pressure {
			t.Errorf("pressure not strictly decreasing at %.0f m: %g >= %g", alt, s.Pressure, prev.Pressure)
		}
		if s.Temperature > prev.Temperature+1e-12 {
			t.Errorf("temperature increasing at %.0f m: %g > %g", alt, s.Temperature, prev.Temperature)
		}
		prev = s
	}
}

func TestNegativeAltitudeClamped(t *testing.T) {
	if SampleAtAltitude(-500) != SampleAtAltitude(0) {
		t.Errorf("negative altitude not clamped to sea level")
	}
}

func TestConversions(t *testing.T) {
	if math.Abs(FeetToMeters(200000)-60960) > 1e-9 {
		t.Errorf("200,000 ft = %f m", FeetToMeters(200000))
	}
	if math.Abs(MetersToFeet(FeetToMeters(12345))-12345) > 1e-9 {
		t.Errorf("feet/meters round trip failed")
	}
	// Mach 2 at sea level is twice the local speed of sound.
	if v := MachToVelocity(2, 0); math.Abs(v-2*SampleAtAltitude(0).SoundSpeed) > 1e-12 {
		t.Errorf("MachToVelocity(2, 0) = %f", v)
	}
}
