package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadpath/config"
)

// --- Flag names ---
const (
	flagInput       = "input"
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagUnit        = "unit"
	flagDirected    = "directed"
	flagNoEarlyExit = "no-early-exit"
	flagStrict      = "strict"
)

// newRootCmd builds the roadpath command writing results to stdout and
// diagnostics to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "roadpath [strategy]",
		Short: "Find the shortest road route between two cities",
		Long: `roadpath reads a list of cities and road connections, then prints the
shortest route from the first listed city to the last one.

Strategies: Dijkstra (default), Bellman-Ford and A* (not implemented).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err = applyFlags(cmd, &cfg); err != nil {
				return err
			}

			return run(cfg, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	defaults := config.Default()
	flags := cmd.Flags()
	flags.StringVarP(&configPath, flagConfig, "c", "", "YAML config file")
	flags.StringP(flagInput, "i", defaults.Input, "road network input file")
	flags.String(flagLogLevel, defaults.LogLevel, "log level (debug, info, warn, error)")
	flags.String(flagUnit, defaults.Unit, "distance unit printed with the result")
	flags.Bool(flagDirected, false, "treat every connection line as a one-way road")
	flags.Bool(flagNoEarlyExit, false, "keep searching after the destination is settled")
	flags.Bool(flagStrict, false, "reject connections to cities missing from the city list")

	return cmd
}

// applyFlags overlays explicitly set flags on cfg and revalidates it.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed(flagInput) {
		if cfg.Input, err = flags.GetString(flagInput); err != nil {
			return err
		}
	}
	if flags.Changed(flagLogLevel) {
		if cfg.LogLevel, err = flags.GetString(flagLogLevel); err != nil {
			return err
		}
	}
	if flags.Changed(flagUnit) {
		if cfg.Unit, err = flags.GetString(flagUnit); err != nil {
			return err
		}
	}
	if flags.Changed(flagDirected) {
		if cfg.Directed, err = flags.GetBool(flagDirected); err != nil {
			return err
		}
	}
	if flags.Changed(flagNoEarlyExit) {
		noEarly, err := flags.GetBool(flagNoEarlyExit)
		if err != nil {
			return err
		}
		cfg.EarlyExit = !noEarly
	}
	if flags.Changed(flagStrict) {
		if cfg.StrictConnections, err = flags.GetBool(flagStrict); err != nil {
			return err
		}
	}

	return cfg.Validate()
}
