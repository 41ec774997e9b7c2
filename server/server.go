// server/server.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package server exposes the physics engine over HTTP: simulation,
// sizing and validation endpoints plus the Prometheus scrape handler.
// The engine itself is synchronous; every request runs it on the
// request goroutine and returns the full result.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/ascent-sim/ascent/airframe"
	"github.com/ascent-sim/ascent/atmos"
	"github.com/ascent-sim/ascent/flight"
	"github.com/ascent-sim/ascent/hull"
	"github.com/ascent-sim/ascent/log"
	"github.com/ascent-sim/ascent/metrics"
	"github.com/ascent-sim/ascent/mission"
	"github.com/ascent-sim/ascent/propulsion"
	"github.com/ascent-sim/ascent/sizing"
	"github.com/ascent-sim/ascent/util"
)

type Server struct {
	cache    *hull.Cache
	recorder *metrics.Recorder
	registry *prometheus.Registry
	lg       *log.Logger
}

// New constructs the HTTP router over a fresh geometry cache and
// metrics registry.
func New(lg *log.Logger) (*Server, http.Handler) {
	reg := prometheus.NewRegistry()
	s := &Server{
		cache:    hull.NewCache(64),
		recorder: metrics.NewRecorder(reg),
		registry: reg,
		lg:       lg,
	}

	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Post("/api/simulate", s.handleSimulate)
	r.Post("/api/optimize", s.handleOptimize)
	r.Post("/api/validate", s.handleValidate)
	r.Get("/api/atmosphere", s.handleAtmosphere)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return s, r
}

// ListenAndServe runs the server until the context is canceled, then
// drains in-flight requests.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, lg *log.Logger) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Infof("listening on %s", addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// decodeScenario reads a scenario from the request body, falling back
// to the stock vehicle for an empty body, and validates it.
func (s *Server) decodeScenario(w http.ResponseWriter, r *http.Request) (mission.Scenario, bool) {
	sc := mission.Default()
	if r.ContentLength != 0 {
		var err error
		if sc, err = mission.LoadScenario(r.Body); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return sc, false
		}
	}
	var e util.ErrorLogger
	sc.Check(&e)
	if e.HaveErrors() {
		writeJSONError(w, http.StatusUnprocessableEntity, e.String())
		return sc, false
	}
	return sc, true
}

type simulateResponse struct {
	Scenario    string                 `json:"scenario"`
	DryMass     airframe.MassBreakdown `json:"dry_mass"`
	Capacity    float64                `json:"fuel_capacity"`
	TakeoffFuel float64                `json:"takeoff_fuel"`
	Result      flight.PlanResult      `json:"result"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.decodeScenario(w, r)
	if !ok {
		return
	}

	mgr := propulsion.NewManager()
	geo := sc.Geometry(s.cache)
	cfg := airframe.Compute(geo, sc.Design, sc.Plan, mgr)
	capacity := mission.FuelCapacity(geo.Volume)

	start := time.Now()
	res := flight.SimulatePlan(cfg, mgr, capacity, s.recorder)
	s.lg.Infof("simulated %s: %d segments, orbit=%v in %s",
		sc.Name, len(res.Segments), res.OrbitAchieved, time.Since(start))

	writeJSON(w, simulateResponse{
		Scenario:    sc.Name,
		DryMass:     cfg.Mass,
		Capacity:    capacity,
		TakeoffFuel: flight.TakeoffFuel(cfg, mgr, capacity),
		Result:      res,
	})
}

func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	sc, ok := s.decodeScenario(w, r)
	if !ok {
		return
	}

	res := sizing.OptimizeLength(sc.Planform.AircraftLength, sc, s.cache, propulsion.NewManager())
	s.lg.Infof("optimized %s: length %.1f m, converged=%v after %d iterations",
		sc.Name, res.Length, res.Converged, len(res.History))
	writeJSON(w, res)
}

type validateResponse struct {
	Valid    bool                   `json:"valid"`
	Errors   []string               `json:"errors,omitempty"`
	Envelope []flight.EnvelopeCheck `json:"envelope"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	sc := mission.Default()
	if r.ContentLength != 0 {
		var err error
		if sc, err = mission.LoadScenario(r.Body); err != nil {
			writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	var e util.ErrorLogger
	sc.Check(&e)
	resp := validateResponse{
		Valid:    !e.HaveErrors(),
		Envelope: flight.ValidateEnvelope(sc.Plan, propulsion.NewManager()),
	}
	if e.HaveErrors() {
		resp.Errors = e.Errors()
	}
	for _, c := range resp.Envelope {
		if !c.Pass {
			resp.Valid = false
		}
	}
	writeJSON(w, resp)
}

// handleAtmosphere dumps the standard atmosphere between two altitudes,
// mostly for plotting.
func (s *Server) handleAtmosphere(w http.ResponseWriter, r *http.Request) {
	parse := func(name string, def float64) float64 {
		if v, err := strconv.ParseFloat(r.URL.Query().Get(name), 64); err == nil {
			return v
		}
		return def
	}
	lo, hi := parse("from", 0), parse("to", 80000)
	step := parse("step", 1000)
	if step <= 0 || hi < lo || (hi-lo)/step > 1e5 {
		writeJSONError(w, http.StatusBadRequest, "bad altitude range")
		return
	}

	type row struct {
		Altitude float64 `json:"altitude"`
		atmos.Sample
	}
	var rows []row
	for h := lo; h <= hi; h += step {
		rows = append(rows, row{Altitude: h, Sample: atmos.SampleAtAltitude(h)})
	}
	writeJSON(w, rows)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
