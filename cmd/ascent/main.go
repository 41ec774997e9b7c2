// main.go
// Copyright(c) 2025 ascent contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// Command ascent runs the spaceplane physics engine from the command
// line: validate a design file, fly its plan, size its length, or serve
// the whole engine over HTTP.

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goforj/godump"

	"github.com/ascent-sim/ascent/airframe"
	"github.com/ascent-sim/ascent/flight"
	"github.com/ascent-sim/ascent/hull"
	"github.com/ascent-sim/ascent/log"
	"github.com/ascent-sim/ascent/mission"
	"github.com/ascent-sim/ascent/propulsion"
	"github.com/ascent-sim/ascent/server"
	"github.com/ascent-sim/ascent/sizing"
	"github.com/ascent-sim/ascent/util"
)

var (
	logLevel     = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir       = flag.String("logdir", "", "log file directory")
	scenarioFile = flag.String("scenario", "", "filename of JSON file with a scenario definition")
	lintScenario = flag.Bool("lint", false, "check the validity of the scenario and exit")
	simulate     = flag.Bool("simulate", false, "fly the scenario's flight plan and report the result")
	optimize     = flag.Bool("optimize", false, "size the aircraft length for the scenario's mission")
	serveAddr    = flag.String("serve", "", "address to serve the HTTP API on (e.g. :8000)")
	dumpScenario = flag.Bool("dumpscenario", false, "pretty-print the effective scenario and exit")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)
	defer lg.CatchAndReportCrash()

	sc := mission.Default()
	if *scenarioFile != "" {
		var err error
		if sc, err = mission.LoadScenarioFile(*scenarioFile); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", *scenarioFile, err)
			os.Exit(1)
		}
	}

	if *dumpScenario {
		godump.Dump(sc)
		return
	}

	var e util.ErrorLogger
	sc.Check(&e)
	if e.HaveErrors() {
		e.PrintErrors(lg)
		os.Exit(1)
	}
	if *lintScenario {
		fmt.Printf("%s: ok\n", sc.Name)
		return
	}

	switch {
	case *serveAddr != "":
		runServer(lg)
	case *optimize:
		runOptimize(sc, lg)
	case *simulate:
		runSimulate(sc, lg)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runServer(lg *log.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, handler := server.New(lg)
	if err := server.ListenAndServe(ctx, *serveAddr, handler, lg); err != nil {
		lg.Errorf("server: %v", err)
		os.Exit(1)
	}
}

func runSimulate(sc mission.Scenario, lg *log.Logger) {
	cache := hull.NewCache(16)
	cache.Persist = true
	mgr := propulsion.NewManager()

	geo := sc.Geometry(cache)
	cfg := airframe.Compute(geo, sc.Design, sc.Plan, mgr)
	capacity := mission.FuelCapacity(geo.Volume)

	lg.Infof("%s: dry mass %.0f kg, fuel capacity %.0f L", sc.Name, cfg.Mass.Dry(), capacity)

	for _, c := range flight.ValidateEnvelope(sc.Plan, mgr) {
		if !c.Pass {
			fmt.Fprintf(os.Stderr, "waypoint %.0f ft M%.1f: outside %s envelope "+
				"(altitude margin %.0f ft, Mach margin %.2f)\n",
				c.Waypoint.AltitudeFt, c.Waypoint.Mach, c.Mode, c.AltitudeMarginFt, c.MachMargin)
			os.Exit(1)
		}
	}

	res := flight.SimulatePlan(cfg, mgr, capacity, nil)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		lg.Errorf("encode: %v", err)
	}
}

func runOptimize(sc mission.Scenario, lg *log.Logger) {
	cache := hull.NewCache(64)
	cache.Persist = true
	res := sizing.OptimizeLength(sc.Planform.AircraftLength, sc, cache, propulsion.NewManager())

	if !res.Converged {
		fmt.Fprintf(os.Stderr, "did not converge; best length %.1f m (fuel error %.0f L)\n",
			res.Length, res.FuelError)
	}
	for i, it := range res.History {
		fmt.Printf("%2d: length %8.2f m  fuel error %14.1f L\n", i, it.Length, it.FuelError)
	}
	fmt.Printf("optimal length: %.2f m (converged=%v)\n", res.Length, res.Converged)
}
