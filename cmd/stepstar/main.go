// Command stepstar runs a paced A* search over a scenario file and prints
// every published frame as a JSON line on stdout. Logs go to stderr.
//
// Usage:
//
//	stepstar -scenario maze.yaml [-config run.yaml] [-delay 200ms]
//	         [-heuristic octile] [-max-expansions 100] [-tie-break position]
//	         [-log-level debug] [-log-format json] [-metrics]
//
// Exit status is 0 when a path is found, 1 when the search fails, 2 on
// usage or input errors and 130 when interrupted.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/stepstar/astar"
	"github.com/katalvlaran/stepstar/config"
	"github.com/katalvlaran/stepstar/converters"
	"github.com/katalvlaran/stepstar/driver"
	"github.com/katalvlaran/stepstar/gridgraph"
	"github.com/katalvlaran/stepstar/heuristic"
	"github.com/katalvlaran/stepstar/metrics"
	"github.com/katalvlaran/stepstar/scenario"
)

const (
	exitFound       = 0
	exitFailed      = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process globals.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "stepstar:", err)
		return exitUsage
	}
	log := newLogger(cfg, stderr)

	scn, err := scenario.Load(cfg.Scenario)
	if err != nil {
		log.Error("load scenario", "err", err)
		return exitUsage
	}
	policy, err := scn.Policy(cfg.Heuristic)
	if err != nil {
		log.Error("heuristic", "err", err)
		return exitUsage
	}

	reg := metrics.NewRegistry()
	opts := []astar.Option{astar.WithLogger(log), astar.WithObserver(reg)}
	if cfg.MaxExpansions > 0 {
		opts = append(opts, astar.WithMaxExpansions(cfg.MaxExpansions))
	}
	if cfg.ExpansionRatio > 0 {
		opts = append(opts, astar.WithExpansionRatio(cfg.ExpansionRatio))
	}

	var found bool
	switch {
	case scn.Grid != nil:
		found, err = runGrid(ctx, cfg, scn, policy, opts, log, stdout)
	default:
		found, err = runGraph(ctx, cfg, scn, policy, opts, log, stdout)
	}

	if cfg.Metrics {
		logSummary(reg, log)
	}
	switch {
	case err != nil && ctx.Err() != nil:
		log.Warn("search interrupted", "scenario", scn.Name, "err", err)
		return exitInterrupted
	case err != nil:
		log.Error("search", "scenario", scn.Name, "err", err)
		return exitUsage
	case found:
		return exitFound
	default:
		return exitFailed
	}
}

func runGrid(ctx context.Context, cfg config.Config, scn *scenario.Scenario, policy heuristic.Policy,
	opts []astar.Option, log *slog.Logger, out io.Writer) (bool, error) {
	gg, start, goal, err := scn.Grid.BuildGrid()
	if err != nil {
		return false, err
	}
	h, err := heuristic.ForGrid(policy, gg)
	if err != nil {
		return false, err
	}
	if !policy.Admissible(gg.Conn, gg.DiagonalCost) {
		log.Warn("heuristic may overestimate; paths may be suboptimal",
			"heuristic", policy, "connectivity", gg.Conn, "diagonal_cost", gg.DiagonalCost)
	}
	if cfg.TieBreak == "position" {
		opts = append(opts, astar.WithPositionOrder(gridgraph.Compare))
	}

	last, err := drive(ctx, cfg, astar.NewSearch(h, opts...), astar.Graph[gridgraph.Point](gg), start, goal,
		gridgraph.Point.String, log, out)
	if err != nil {
		return false, err
	}
	if last.Outcome.Status == astar.Failed {
		// Explain the failure: how many walls separate start and goal.
		if _, walls, berr := gg.Breach(start, goal); berr == nil {
			log.Info("no open route", "walls_to_breach", walls,
				"reachable", gg.Reachable(start, goal))
		}
	}

	return last.Outcome.Status == astar.Completed, nil
}

func runGraph(ctx context.Context, cfg config.Config, scn *scenario.Scenario, policy heuristic.Policy,
	opts []astar.Option, log *slog.Logger, out io.Writer) (bool, error) {
	g, err := scn.Graph.BuildGraph()
	if err != nil {
		return false, err
	}
	h, err := heuristic.ForGraph(policy, g)
	if err != nil {
		return false, err
	}
	if cfg.TieBreak == "position" {
		opts = append(opts, astar.WithPositionOrder(strings.Compare))
	}

	host, err := converters.Traversable(g)
	if err != nil {
		return false, err
	}
	last, err := drive(ctx, cfg, astar.NewSearch(h, opts...), host,
		scn.Graph.Start, scn.Graph.Goal, func(s string) string { return s }, log, out)
	if err != nil {
		return false, err
	}

	return last.Outcome.Status == astar.Completed, nil
}

// drive runs the paced search and writes each frame to out.
func drive[P comparable](ctx context.Context, cfg config.Config, s *astar.Search[P], g astar.Graph[P],
	start, goal P, name func(P) string, log *slog.Logger, out io.Writer) (driver.Frame[P], error) {
	r, err := driver.New(s, g, start, goal, driver.WithDelay(cfg.Delay), driver.WithLogger(log))
	if err != nil {
		return driver.Frame[P]{}, err
	}

	errc := make(chan error, 1)
	go func() { errc <- r.Run(ctx) }()

	enc := json.NewEncoder(out)
	var last driver.Frame[P]
	for f := range r.Frames() {
		last = f
		if err := enc.Encode(newFrameJSON(f, name)); err != nil {
			r.Stop()
			return last, fmt.Errorf("write frame: %w", err)
		}
	}
	if err := <-errc; err != nil {
		return last, err
	}

	return last, nil
}

// frameJSON is the wire form of one frame.
type frameJSON struct {
	Run       string   `json:"run"`
	Step      int      `json:"step"`
	Status    string   `json:"status"`
	Current   string   `json:"current,omitempty"`
	Stale     bool     `json:"stale,omitempty"`
	Cost      float64  `json:"cost"`
	Path      []string `json:"path"`
	Frontier  int      `json:"frontier"`
	Closed    int      `json:"closed"`
	Expansion int      `json:"expansions"`
}

func newFrameJSON[P comparable](f driver.Frame[P], name func(P) string) frameJSON {
	snap := f.Snapshot
	path := make([]string, len(snap.Path))
	for i, p := range snap.Path {
		path[i] = name(p)
	}
	fj := frameJSON{
		Run:       f.RunID.String(),
		Step:      snap.Steps,
		Status:    snap.Status.String(),
		Stale:     f.Outcome.Stale,
		Cost:      snap.Cost,
		Path:      path,
		Frontier:  len(snap.Frontier),
		Closed:    len(snap.Closed),
		Expansion: snap.Expansions,
	}
	if snap.HasCurrent {
		fj.Current = name(snap.Current)
	}

	return fj
}

// parseConfig layers defaults, the optional -config file and explicitly set flags.
func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("stepstar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath    = fs.String("config", "", "YAML run configuration")
		scenarioPath  = fs.String("scenario", "", "YAML scenario file")
		delay         = fs.Duration("delay", config.DefaultDelay, "pause between steps (0 = no pacing)")
		heuristicName = fs.String("heuristic", "", "heuristic policy (zero, manhattan, euclidean, squared-euclidean, chebyshev, octile, hops, exact)")
		maxExp        = fs.Int("max-expansions", 0, "expansion cap (0 = graph order)")
		logLevel      = fs.String("log-level", "info", "debug, info, warn or error")
		logFormat     = fs.String("log-format", "text", "text or json")
		tieBreak      = fs.String("tie-break", "insertion", "equal-F order: insertion or position")
		withMetrics   = fs.Bool("metrics", false, "log a metrics summary at exit")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scenario":
			cfg.Scenario = *scenarioPath
		case "delay":
			cfg.Delay = *delay
		case "heuristic":
			cfg.Heuristic = *heuristicName
		case "max-expansions":
			cfg.MaxExpansions = *maxExp
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		case "tie-break":
			cfg.TieBreak = *tieBreak
		case "metrics":
			cfg.Metrics = *withMetrics
		}
	})
	if fs.NArg() > 0 && cfg.Scenario == "" {
		cfg.Scenario = fs.Arg(0)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	ho := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, ho))
	}
	return slog.New(slog.NewTextHandler(w, ho))
}

func logSummary(reg *metrics.Registry, log *slog.Logger) {
	samples, err := reg.Summary()
	if err != nil {
		log.Warn("gather metrics", "err", err)
		return
	}
	attrs := make([]any, 0, 2*len(samples))
	for _, s := range samples {
		key := s.Name
		if s.Labels != "" {
			key += "_" + strings.NewReplacer("=", "_", ",", "_").Replace(s.Labels)
		}
		attrs = append(attrs, key, s.Value)
	}
	log.Info("metrics", attrs...)
}
