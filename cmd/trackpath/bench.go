package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/san-kum/homotopy/internal/config"
	"github.com/san-kum/homotopy/internal/htsystems"
	"github.com/san-kum/homotopy/internal/pathjump"
	"github.com/spf13/cobra"
)

// runBench times every (system, predictor) combination this package
// knows about, the same shape as the teacher's benchModel sweeping
// (duration, dt) combinations for one model.
func runBench(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SYSTEM\tPREDICTOR\tPATHS\tTIME\tPATHS/SEC")

	for _, sysName := range htsystems.Names() {
		for _, pred := range []string{"euler", "rk4"} {
			cfg := config.DefaultConfig()
			cfg.System = sysName
			cfg.Predictor = pred

			factory, scenario, err := newTrackerFactory(cfg)
			if err != nil {
				fmt.Fprintf(w, "%s\t%s\terror: %v\t-\t-\n", sysName, pred, err)
				continue
			}

			start := time.Now()
			results, err := pathjump.RunAll(context.Background(), factory, scenario.Starts)
			elapsed := time.Since(start)
			if err != nil {
				fmt.Fprintf(w, "%s\t%s\terror: %v\t-\t-\n", sysName, pred, err)
				continue
			}

			pathsPerSec := float64(len(results)) / elapsed.Seconds()
			fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%.1f\n", sysName, pred, len(results), elapsed, pathsPerSec)
		}
	}

	return w.Flush()
}
