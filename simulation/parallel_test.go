package simulation

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRunBatchParallelMatchesSerial(t *testing.T) {
	cfg := testConfig(t, 12, "good", "simple")

	serial := RunBatch(cfg, 80, 42)
	for _, workers := range []int{1, 3, 8} {
		parallel, err := RunBatchParallel(context.Background(), cfg, 80, 42, BatchOptions{Workers: workers})
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if diff := cmp.Diff(serial, parallel, approx, cmpopts.IgnoreFields(AggregatedStats{}, "AvgDurationNs")); diff != "" {
			t.Errorf("workers=%d differs from serial (-serial +parallel):\n%s", workers, diff)
		}
	}
}

func TestRunBatchParallelReportsProgress(t *testing.T) {
	cfg := testConfig(t, 8, "simple", "simple")

	var seen atomic.Int64
	stats, err := RunBatchParallel(context.Background(), cfg, 40, 1, BatchOptions{
		Workers:  4,
		OnResult: func(GameResult) { seen.Add(1) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen.Load() != 40 || stats.TotalGames != 40 {
		t.Errorf("callbacks = %d, games = %d, want 40", seen.Load(), stats.TotalGames)
	}
}

func TestRunBatchParallelCancelled(t *testing.T) {
	cfg := testConfig(t, 20, "good", "good")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := RunBatchParallel(ctx, cfg, 200, 5, BatchOptions{Workers: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if stats.TotalGames >= 200 {
		t.Errorf("cancelled batch still played all %d games", stats.TotalGames)
	}
}

func TestRunBatchParallelFailFast(t *testing.T) {
	cfg := testConfig(t, 10, "simple", "simple")
	cfg.Strategies[0] = brokenDiscard{}

	stats, err := RunBatchParallel(context.Background(), cfg, 100, 3, BatchOptions{Workers: 2, FailFast: true})
	if err == nil {
		t.Fatal("expected an error with FailFast")
	}
	if stats.Errors == 0 {
		t.Error("failed match missing from stats")
	}

	stats, err = RunBatchParallel(context.Background(), cfg, 20, 3, BatchOptions{Workers: 2})
	if err != nil {
		t.Fatalf("without FailFast: %v", err)
	}
	if stats.Errors != 20 {
		t.Errorf("Errors = %d, want 20", stats.Errors)
	}
}

func TestRunSeries(t *testing.T) {
	cfg := testConfig(t, 10, "good", "simple")

	series, err := RunSeries(context.Background(), cfg, 4, 25, 77, BatchOptions{Workers: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(series.Batches) != 4 || len(series.Seats) != 2 {
		t.Fatalf("got %d batches, %d seats", len(series.Batches), len(series.Seats))
	}

	for seat, s := range series.Seats {
		var total uint32
		for _, b := range series.Batches {
			total += b.Wins[seat]
		}
		if s.Overall != total {
			t.Errorf("seat %d: Overall = %d, batches sum to %d", seat, s.Overall, total)
		}
		if float64(s.Min) > s.Mean || s.Mean > float64(s.Max) {
			t.Errorf("seat %d: mean %.2f outside [%d, %d]", seat, s.Mean, s.Min, s.Max)
		}
	}

	again, err := RunSeries(context.Background(), cfg, 4, 25, 77, BatchOptions{Workers: 3})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(series.Seats, again.Seats, approx); diff != "" {
		t.Errorf("series not reproducible (-first +second):\n%s", diff)
	}
}

func TestSummarizeSeries(t *testing.T) {
	batches := []AggregatedStats{
		{Wins: []uint32{6, 4}},
		{Wins: []uint32{8, 2}},
	}
	got := summarizeSeries(batches, 2)

	want := []SeatSummary{
		{Mean: 7, StdDev: 1, Min: 6, Max: 8, Overall: 14, Spread: Percentiles{P10: 6.2, P25: 6.5, P50: 7, P75: 7.5, P90: 7.8}},
		{Mean: 3, StdDev: 1, Min: 2, Max: 4, Overall: 6, Spread: Percentiles{P10: 2.2, P25: 2.5, P50: 3, P75: 3.5, P90: 3.8}},
	}
	if diff := cmp.Diff(want, got.Seats, approx); diff != "" {
		t.Errorf("summarizeSeries mismatch (-want +got):\n%s", diff)
	}
}
