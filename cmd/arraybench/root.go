package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"arraybench/internal/benchmark"
	"arraybench/internal/catalogue"
	"arraybench/internal/config"
	"arraybench/internal/db"
	"arraybench/internal/metrics"
	"arraybench/internal/telemetry"
	"arraybench/internal/ui"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var exit = os.Exit

// newStoreFunc allows mocking the history backend in tests.
var newStoreFunc = func(dsn string) (db.Store, error) {
	return db.NewStore(db.ConfigFromDSN(dsn))
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "arraybench [repeat]",
		Short: "Measure the run time of common numeric array operations",
		Long: `arraybench runs a fixed catalogue of array operations (creation,
random sampling, arithmetic, reductions, reshaping and dtype conversion),
times each one over [repeat] iterations and writes one "mean,std" line per
operation, in milliseconds, to the configured output file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				repeat, err := strconv.Atoi(args[0])
				if err != nil || repeat < 1 {
					return fmt.Errorf("repeat must be a positive integer, got: %q", args[0])
				}
				cfg.Repeat = repeat
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			return runBenchmarks(cmd, cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./arraybench.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")

	cmd.AddCommand(newCompareCmd(), newHistoryCmd(&cfgFile))
	return cmd
}

func runBenchmarks(cmd *cobra.Command, cfg *config.Config) error {
	closeLog := telemetry.InitLogger(cmd.ErrOrStderr(), cfg.Verbose, cfg.LogFile)
	defer closeLog()

	m := metrics.NewMetrics()
	reporters := []benchmark.Reporter{ui.NewProgress(cmd.OutOrStdout()), m}

	runCfg := cfg.RunConfig()
	driver, err := benchmark.NewDriver(runCfg, catalogue.New(cfg.Shape), benchmark.WithReporters(reporters...))
	if err != nil {
		return err
	}

	table, err := driver.Run()
	if err != nil {
		telemetry.LogError("Benchmark run failed", err, "state", driver.State().String())
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nResults saved to %s\n", cfg.Output)

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
	}

	if cfg.HistoryDB != "" {
		if err := recordHistory(cmd, cfg, runCfg, table); err != nil {
			return fmt.Errorf("failed to record history: %w", err)
		}
	}
	return nil
}

// recordHistory compares the table with the previous run, if any, and then
// appends it to the history database.
func recordHistory(cmd *cobra.Command, cfg *config.Config, runCfg benchmark.RunConfig, table *benchmark.Table) error {
	store, err := newStoreFunc(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	prev, err := store.LoadLatest()
	switch {
	case errors.Is(err, db.ErrNoRuns):
	case err != nil:
		return err
	case len(prev.Results) == table.Len():
		labels := make([]string, table.Len())
		for i, row := range table.Rows {
			labels[i] = row.Label
		}
		comps, err := benchmark.Compare(labels, statistics(prev.Results), statistics(table.Rows))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nCompared with run %s:\n", prev.ID)
		if _, err := ui.RenderComparisons(cmd.OutOrStdout(), comps, defaultThreshold); err != nil {
			return err
		}
	default:
		slog.Warn("Previous run has a different catalogue, skipping comparison",
			"run", prev.ID, "rows", len(prev.Results), "expected", table.Len())
	}

	run := benchmark.NewRun(uuid.NewString(), runCfg, table)
	if err := store.Save(run); err != nil {
		return err
	}
	telemetry.LogInfof("Run %s recorded in %s", run.ID, cfg.HistoryDB)
	return nil
}

func statistics(rows []benchmark.Row) []benchmark.Statistic {
	out := make([]benchmark.Statistic, len(rows))
	for i, row := range rows {
		out[i] = row.Statistic
	}
	return out
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var persistErr *benchmark.PersistenceError
		if errors.As(err, &persistErr) {
			fmt.Fprintln(os.Stderr, "The results were computed but could not be saved.")
		}
		exit(1)
	}
}
