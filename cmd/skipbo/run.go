package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/signalnine/skipbo-sim/config"
	"github.com/signalnine/skipbo-sim/logging"
	"github.com/signalnine/skipbo-sim/report"
	"github.com/signalnine/skipbo-sim/simulation"
)

// NewRunCmd plays batches of matches and reports the results.
func NewRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play a batch of matches",
		Example: `  skipbo run --players good,simple --games 10000
  skipbo run --players good,good,bad --repeat 20 --output results.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runMatches(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.Int(config.KeyGames, 1000, "matches per batch")
	flags.Int(config.KeyDrawStackSize, 20, "cards dealt to each draw stack")
	flags.StringSlice(config.KeyPlayers, []string{"simple", "good"}, "strategy per seat, in turn order")
	flags.Uint64(config.KeySeed, 0, "random seed (0 = use current time)")
	flags.Int(config.KeyWorkers, 0, "worker goroutines (0 = CPU count)")
	flags.Int(config.KeyMaxRounds, simulation.DefaultMaxRounds, "rounds before a match is called a draw")
	flags.Int(config.KeyRepeat, 1, "number of batches; more than 1 adds a spread summary")
	flags.Bool(config.KeyFailFast, false, "stop at the first match that breaks a game rule")
	flags.Bool(config.KeyProgress, true, "show a progress bar on terminals")
	flags.StringP(config.KeyOutput, "o", "", "write results to this file")
	flags.String(config.KeyFormat, "", "result file format: json or flatbuffers (default: by extension)")
	return cmd
}

func runMatches(cmd *cobra.Command, cfg *config.Config) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	match, err := simulation.NewMatchConfig(cfg.Players, cfg.DrawStackSize, cfg.MaxRounds, logger)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.OutputFormat())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printBanner(out, cfg, match.EffectiveMaxRounds(), seed)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	counter := &progressCounter{}
	opts := simulation.BatchOptions{
		Workers:  cfg.Workers,
		FailFast: cfg.FailFast,
		OnResult: counter.record,
	}
	play := func() (simulation.SeriesStats, error) {
		return simulation.RunSeries(ctx, match, cfg.Repeat, cfg.Games, seed, opts)
	}

	started := time.Now()
	var series simulation.SeriesStats
	var runErr error
	if cfg.Progress && isTerminal(os.Stdout) {
		series, runErr = playWithProgress(cancel, cfg.Games*cfg.Repeat, counter, play)
	} else {
		series, runErr = play()
	}

	interrupted := errors.Is(runErr, context.Canceled)
	if runErr != nil && !interrupted {
		logger.Error("run failed", zap.Error(runErr))
	}
	if interrupted {
		fmt.Fprintln(out, "\nInterrupted! Reporting completed matches.")
	}

	r := report.New(match, seed, series, started)
	fmt.Fprintln(out, report.Render(r))

	if cfg.Output != "" {
		if err := report.Write(cfg.Output, format, r); err != nil {
			return err
		}
		logger.Info("results written", zap.String("path", cfg.Output), zap.String("format", string(format)))
	}

	printSummary(out, r, cfg.Output)
	return runErr
}

// isTerminal reports whether f is attached to a character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
