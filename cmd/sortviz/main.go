package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/datagen"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/viz"
)

var (
	configFile string
	preset     string
	algorithm  string
	numBars    int
	minValue   int
	maxValue   int
	order      string
	seed       int64
	speed      float64
	verbose    bool
	theme      string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sortviz",
		Short: "step-by-step sorting algorithm visualizer",
		Long: "sortviz records every comparison and swap a sorting algorithm makes and\n" +
			"plays the recording back in the terminal. Without a subcommand it opens\n" +
			"the interactive player.",
		SilenceUsage: true,
		RunE:         runPlayer,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./.sortviz.yaml or ~/.sortviz.yaml)")
	flags.StringVar(&preset, "preset", "", "named preset for the selected algorithm")
	flags.StringVarP(&algorithm, "algorithm", "a", config.DefaultAlgorithm, "sorting algorithm")
	flags.IntVarP(&numBars, "bars", "n", config.DefaultNumBars, "number of elements")
	flags.IntVar(&minValue, "min", config.DefaultMinValue, "smallest generated value")
	flags.IntVar(&maxValue, "max", config.DefaultMaxValue, "largest generated value")
	flags.StringVarP(&order, "order", "o", string(config.DefaultSortOrder), "initial data order")
	flags.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	flags.Float64VarP(&speed, "speed", "s", config.DefaultSpeed, "playback speed multiplier")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	flags.StringVar(&theme, "theme", viz.ThemeClassic.Name, "color theme")

	rootCmd.AddCommand(
		newRunCmd(),
		newStepsCmd(),
		newPlotCmd(),
		newBenchCmd(),
		newCompareCmd(),
		newAlgorithmsCmd(),
		newPresetsCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func logger() *slog.Logger {
	return logging.New(logging.Level(verbose))
}

// resolveConfig layers defaults, config file and SORTVIZ_* environment, then
// the preset, then any flag the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadLayered(configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if preset != "" {
		p := config.GetPreset(cfg.Algorithm, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available for %s: %v)", preset, cfg.Algorithm, config.ListPresets(cfg.Algorithm))
		}
		p.Seed = cfg.Seed
		cfg = p
	}

	if flags.Changed("bars") {
		cfg.NumBars = numBars
	}
	if flags.Changed("min") {
		cfg.MinValue = minValue
	}
	if flags.Changed("max") {
		cfg.MaxValue = maxValue
	}
	if flags.Changed("order") {
		o, err := datagen.ParseOrder(order)
		if err != nil {
			return nil, err
		}
		cfg.SortOrder = o
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPlayer(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	registry := experiment.NewRegistry()
	ctrl, err := playback.New(cfg, playback.WithRegistry(registry), playback.WithLogger(logger()))
	if err != nil {
		return err
	}
	defer ctrl.Stop()
	return viz.Run(ctrl, registry, viz.GetTheme(theme))
}
