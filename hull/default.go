// hull/default.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package hull

// The default design: a blended lifting body with a belly inlet, the
// starting point the editing layer presents for a new vehicle. Canvas
// units; the planform length parameter is in meters.

func DefaultSideProfile() *SideProfile {
	return &SideProfile{
		Top:          [3][2]float64{{0, 0}, {30, 9}, {100, 2}},
		Inlet:        [3][2]float64{{0, 0}, {20, -3}, {40, -5}},
		Nozzle:       [3][2]float64{{70, -5}, {90, -2}, {100, 1}},
		EngineLength: 30,
		MaxHeight:    14,
	}
}

func DefaultPlanform(lengthMeters float64) *Planform {
	return &Planform{
		Nose:           [2]float64{0, 0},
		Mid:            [2]float64{45, 12},
		Tail:           [2]float64{100, 9},
		WingStart:      55,
		WingSpan:       14,
		AircraftLength: lengthMeters,
	}
}

func DefaultCrossSection() *CrossSection {
	return &CrossSection{
		Top: [][2]float64{
			{-1, 0}, {-0.6, 0.7}, {0, 1}, {0.6, 0.7}, {1, 0},
		},
		Bottom: [][2]float64{
			{1, 0}, {0.5, -0.6}, {0, -0.75}, {-0.5, -0.6}, {-1, 0},
		},
	}
}
