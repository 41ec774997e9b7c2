// server/server_test.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ascent-sim/ascent/mission"
	"github.com/ascent-sim/ascent/plan"
	"github.com/ascent-sim/ascent/sizing"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	_, handler := New(nil)
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestHealth(t *testing.T) {
	ts := testServer(t)
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status %d", resp.StatusCode)
	}
}

func TestValidateDefaultScenario(t *testing.T) {
	ts := testServer(t)
	resp, err := http.Post(ts.URL+"/api/validate", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var v struct {
		Valid    bool `json:"valid"`
		Envelope []struct {
			Pass bool `json:"pass"`
		} `json:"envelope"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatal(err)
	}
	if !v.Valid {
		t.Errorf("default scenario reported invalid")
	}
	if len(v.Envelope) == 0 {
		t.Errorf("no envelope checks returned")
	}
}

func TestSimulateRejectsMalformedScenario(t *testing.T) {
	ts := testServer(t)
	resp, err := http.Post(ts.URL+"/api/simulate", "application/json",
		strings.NewReader(`{"name":"x","no_such_field":1}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status %d, want 400", resp.StatusCode)
	}
}

func TestSimulateTrivialPlan(t *testing.T) {
	ts := testServer(t)

	sc := mission.Default()
	// Ground to ground: terminates immediately but exercises the whole
	// pipeline.
	sc.Plan = plan.Plan{Waypoints: []plan.Waypoint{plan.Ground(), plan.Ground()}}
	body, _ := json.Marshal(sc)

	resp, err := http.Post(ts.URL+"/api/simulate", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	var out struct {
		DryMass struct {
			Structure float64 `json:"structure"`
		} `json:"dry_mass"`
		Capacity float64 `json:"fuel_capacity"`
		Result   struct {
			Segments []json.RawMessage `json:"segments"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.DryMass.Structure <= 0 || out.Capacity <= 0 {
		t.Errorf("degenerate response: %+v", out)
	}
	if len(out.Result.Segments) != 1 {
		t.Errorf("%d segments, want 1", len(out.Result.Segments))
	}
}

func TestOptimizeEndpoint(t *testing.T) {
	ts := testServer(t)
	resp, err := http.Post(ts.URL+"/api/optimize", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	var res sizing.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if !res.Converged {
		t.Errorf("default scenario should size successfully: %+v", res)
	}
}

func TestAtmosphereEndpoint(t *testing.T) {
	ts := testServer(t)

	resp, err := http.Get(ts.URL + "/api/atmosphere?from=0&to=20000&step=5000")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var rows []struct {
		Altitude float64 `json:"altitude"`
		Density  float64 `json:"density"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 {
		t.Fatalf("%d rows, want 5", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Density >= rows[i-1].Density {
			t.Errorf("density not decreasing at row %d", i)
		}
	}

	resp, err = http.Get(ts.URL + "/api/atmosphere?step=-1")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad step accepted: status %d", resp.StatusCode)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := testServer(t)
	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status %d", resp.StatusCode)
	}
}
