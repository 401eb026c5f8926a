package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/signalnine/skipbo-sim/config"
	"github.com/signalnine/skipbo-sim/report"
)

func printBanner(w io.Writer, cfg *config.Config, maxRounds int, seed uint64) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║                 Skip-Bo Strategy Simulator                 ║")
	fmt.Fprintln(w, "╚════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Configuration:\n")
	fmt.Fprintf(w, "  Players:        %s\n", strings.Join(cfg.Players, " vs "))
	fmt.Fprintf(w, "  Games:          %d", cfg.Games)
	if cfg.Repeat > 1 {
		fmt.Fprintf(w, " x %d batches", cfg.Repeat)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Draw stack:     %d cards\n", cfg.DrawStackSize)
	fmt.Fprintf(w, "  Round cap:      %d\n", maxRounds)
	fmt.Fprintf(w, "  Workers:        %d (0=auto)\n", cfg.Workers)
	fmt.Fprintf(w, "  Seed:           %d\n", seed)
	if cfg.Output != "" {
		fmt.Fprintf(w, "  Output:         %s (%s)\n", cfg.Output, cfg.OutputFormat())
	}
	fmt.Fprintln(w)
}

func printSummary(w io.Writer, r report.Report, output string) {
	totals := r.Totals()

	fmt.Fprintln(w, "════════════════════════════════════════════════════════════")
	fmt.Fprintln(w, "                        RUN SUMMARY")
	fmt.Fprintln(w, "════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  Total Time:      %s\n", formatDuration(r.Elapsed))
	fmt.Fprintf(w, "  Games:           %d\n", totals.TotalGames)
	fmt.Fprintf(w, "  Avg Rounds:      %.1f\n", totals.AvgRounds)
	if r.Elapsed > 0 && totals.TotalGames > 0 {
		fmt.Fprintf(w, "  Throughput:      %.0f games/s\n", float64(totals.TotalGames)/r.Elapsed.Seconds())
	}
	if output != "" {
		fmt.Fprintf(w, "  Output:          %s\n", output)
	}
	fmt.Fprintf(w, "  Run ID:          %s\n", r.RunID)
	fmt.Fprintln(w, "════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)
}

// formatDuration formats a duration in human-readable form
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
