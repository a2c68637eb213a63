package main

import (
	"fmt"
	"os"

	"github.com/san-kum/homotopy/internal/config"
	"github.com/spf13/cobra"
)

var (
	systemName string
	embedding  string
	predName   string
	configFile string
	presetName string
	jumpFlag   bool
	plotFlag   bool
	accuracy   float64
	maxSteps   int
)

// main registers trackpath's subcommands and executes the root
// command, exiting 1 on error the same way the teacher's dynsim CLI
// does.
func main() {
	rootCmd := &cobra.Command{
		Use:   "trackpath",
		Short: "polynomial homotopy path-tracking lab",
	}

	trackCmd := &cobra.Command{
		Use:   "track",
		Short: "track every start solution of a system to t=0",
		RunE:  runTrack,
	}
	trackCmd.Flags().StringVar(&systemName, "system", "quadratic", fmt.Sprintf("system to track (%v)", config.Presets))
	trackCmd.Flags().StringVar(&embedding, "embedding", "affine", "embedding: affine or projective")
	trackCmd.Flags().StringVar(&predName, "predictor", "rk4", "predictor: euler or rk4")
	trackCmd.Flags().StringVar(&configFile, "config", "", "YAML config file path")
	trackCmd.Flags().StringVar(&presetName, "preset", "", "named preset (overridden by --config)")
	trackCmd.Flags().BoolVar(&jumpFlag, "jump-mitigation", true, "retrack colliding paths with tightened options")
	trackCmd.Flags().BoolVar(&plotFlag, "plot", false, "render the first path's trajectory to the terminal")
	trackCmd.Flags().Float64Var(&accuracy, "accuracy", config.DefaultAccuracy, "corrector accuracy")
	trackCmd.Flags().IntVar(&maxSteps, "max-steps", config.DefaultMaxSteps, "max steps per path")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark predictor/system combinations",
		RunE:  runBench,
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "live terminal view of a single path's tracker state",
		RunE:  runWatch,
	}
	watchCmd.Flags().StringVar(&systemName, "system", "quadratic", "system to track")
	watchCmd.Flags().StringVar(&predName, "predictor", "rk4", "predictor: euler or rk4")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(trackCmd, benchCmd, watchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves a TrackerConfig from --config, then --preset,
// then the default, in that precedence order (CLI flags win last,
// applied by the caller).
func loadConfig() (*config.TrackerConfig, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if presetName != "" {
		cfg := config.GetPreset(presetName)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}
