package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/roadpath/config"
	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/dijkstra"
	"github.com/katalvlaran/roadpath/input"
	"github.com/katalvlaran/roadpath/route"
	"github.com/katalvlaran/roadpath/strategy"
)

// run executes one pipeline: resolve strategy, build graph, validate,
// solve, reconstruct, report. The result line goes to stdout; warnings,
// logs and the unsupported-strategy message go to stderr.
func run(cfg config.Config, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()})).
		With("run_id", uuid.NewString())

	if len(args) == 0 && cfg.Strategy != "" {
		args = []string{cfg.Strategy}
	}
	strat, warning := strategy.Resolve(args)
	if warning != "" {
		fmt.Fprintln(stderr, "Warning:", warning)
	}
	logger.Info("strategy resolved", "strategy", strat.Name())

	inputOpts := []input.Option{input.WithLogger(logger)}
	if cfg.Directed {
		inputOpts = append(inputOpts, input.WithDirected())
	}
	if cfg.StrictConnections {
		inputOpts = append(inputOpts, input.WithGraphOptions(core.WithStrictConnections()))
	}
	g, err := input.Load(cfg.Input, inputOpts...)
	if err != nil {
		return err
	}
	if err = g.Validate(); err != nil {
		return fmt.Errorf("%w; check input file for missing/false cities and connections", err)
	}
	logger.Info("graph built", "cities", g.CityCount(), "connections", g.ConnectionCount(),
		"start", g.StartingPoint(), "destination", g.Destination())

	solver := strategy.For(strat,
		dijkstra.WithEarlyExit(cfg.EarlyExit),
		dijkstra.WithLogger(logger),
	)
	res, err := solver.Solve(g)
	if errors.Is(err, strategy.ErrNotImplemented) {
		fmt.Fprintf(stderr, "Strategy %s is unsupported; no path computed\n", strat.Name())
		return err
	}
	if err != nil {
		return err
	}
	logger.Info("solved", "settled", res.Settled)

	r, err := route.Reconstruct(res, g.Destination())
	if errors.Is(err, route.ErrNoPath) {
		if rerr := route.ReportNoPath(stdout, g.StartingPoint(), g.Destination()); rerr != nil {
			return rerr
		}
		return err
	}
	if err != nil {
		return err
	}
	r.Unit = cfg.Unit

	return route.Report(stdout, r)
}
