// Package report turns simulation statistics into result files and terminal
// summaries.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/signalnine/skipbo-sim/simulation"
)

// Report is everything written about one run.
type Report struct {
	RunID         string                       `json:"run_id"`
	Seed          uint64                       `json:"seed"`
	DrawStackSize int                          `json:"draw_stack_size"`
	MaxRounds     int                          `json:"max_rounds"`
	Players       []string                     `json:"players"`
	Batches       []simulation.AggregatedStats `json:"batches"`
	Seats         []simulation.SeatSummary     `json:"seats,omitempty"`
	Started       time.Time                    `json:"started"`
	Elapsed       time.Duration                `json:"elapsed_ns"`
}

// New wraps a finished series in a Report with a fresh run ID.
func New(cfg simulation.MatchConfig, seed uint64, series simulation.SeriesStats, started time.Time) Report {
	r := Report{
		RunID:         uuid.NewString(),
		Seed:          seed,
		DrawStackSize: cfg.DrawStackSize,
		MaxRounds:     cfg.EffectiveMaxRounds(),
		Players:       append([]string(nil), cfg.Names...),
		Batches:       series.Batches,
		Started:       started,
		Elapsed:       time.Since(started),
	}
	if len(series.Batches) > 1 {
		r.Seats = series.Seats
	}
	return r
}

// Totals sums every batch into one.
func (r Report) Totals() simulation.AggregatedStats {
	var t simulation.AggregatedStats
	t.Wins = make([]uint32, len(r.Players))
	var rounds, duration float64
	for _, b := range r.Batches {
		t.TotalGames += b.TotalGames
		for i, w := range b.Wins {
			if i < len(t.Wins) {
				t.Wins[i] += w
			}
		}
		t.Draws += b.Draws
		t.Errors += b.Errors
		t.TotalDecisions += b.TotalDecisions
		t.TotalValidMoves += b.TotalValidMoves
		t.DrawPlays += b.DrawPlays
		t.HandPlays += b.HandPlays
		t.SidePlays += b.SidePlays
		t.Discards += b.Discards
		t.Passes += b.Passes
		t.TrailingWins += b.TrailingWins

		finished := float64(b.TotalGames - b.Errors)
		rounds += float64(b.AvgRounds) * finished
		duration += float64(b.AvgDurationNs) * float64(b.TotalGames)
	}
	if finished := t.TotalGames - t.Errors; finished > 0 {
		t.AvgRounds = float32(rounds / float64(finished))
	}
	if t.TotalGames > 0 {
		t.AvgDurationNs = uint64(duration / float64(t.TotalGames))
	}
	return t
}
