package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchOptions tunes a parallel batch.
type BatchOptions struct {
	Workers  int  // 0 = runtime.NumCPU()
	FailFast bool // stop the batch at the first abandoned match

	// OnResult is called from worker goroutines after every match and must
	// be safe for concurrent use.
	OnResult func(GameResult)
}

// RunBatchParallel executes a batch on a worker pool. Seeds are generated
// up front exactly as RunBatch does, so both return the same statistics.
//
// Cancelling ctx stops handing out matches. The statistics cover whatever
// finished and the context error is returned alongside them.
func RunBatchParallel(ctx context.Context, cfg MatchConfig, numGames int, seed uint64, opts BatchOptions) (AggregatedStats, error) {
	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > numGames && numGames > 0 {
		numWorkers = numGames
	}

	logger := cfg.logger()
	logger.Debug("batch starting",
		zap.Int("games", numGames),
		zap.Int("workers", numWorkers),
		zap.Uint64("seed", seed))

	jobs := make(chan GameJob)
	results := make(chan GameResult, numGames)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for _, job := range gameJobs(numGames, seed) {
			select {
			case jobs <- job:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < numWorkers; w++ {
		g.Go(func() error {
			return worker(jobs, results, cfg, opts)
		})
	}

	err := g.Wait()
	close(results)

	stats := aggregateParallelResults(results, numGames, len(cfg.Strategies))
	if err != nil {
		logger.Warn("batch stopped early",
			zap.Int("completed", int(stats.TotalGames)),
			zap.Int("requested", numGames),
			zap.Error(err))
	}
	return stats, err
}

// worker processes simulation jobs from the jobs channel
func worker(jobs <-chan GameJob, results chan<- GameResult, cfg MatchConfig, opts BatchOptions) error {
	for job := range jobs {
		result := RunSingleGame(cfg, job.Seed)
		result.SimID = job.SimID
		results <- result

		if opts.OnResult != nil {
			opts.OnResult(result)
		}
		if opts.FailFast && result.Error != "" {
			return fmt.Errorf("match %d (seed %d): %s", job.SimID, job.Seed, result.Error)
		}
	}
	return nil
}

// aggregateParallelResults restores submission order before aggregating so
// order-sensitive fields match the serial run.
func aggregateParallelResults(results <-chan GameResult, numGames, numPlayers int) AggregatedStats {
	allResults := make([]GameResult, 0, numGames)
	for result := range results {
		allResults = append(allResults, result)
	}
	sort.Slice(allResults, func(i, j int) bool {
		return allResults[i].SimID < allResults[j].SimID
	})
	return aggregateResults(allResults, numPlayers)
}

// RunSeries plays batches back to back, each from its own seed, and
// summarizes how the win counts vary between batches.
func RunSeries(ctx context.Context, cfg MatchConfig, batches, gamesPerBatch int, seed uint64, opts BatchOptions) (SeriesStats, error) {
	rng := rand.New(rand.NewSource(int64(seed)))
	all := make([]AggregatedStats, 0, batches)

	for b := 0; b < batches; b++ {
		batchSeed := rng.Uint64()
		stats, err := RunBatchParallel(ctx, cfg, gamesPerBatch, batchSeed, opts)
		if err != nil {
			all = append(all, stats)
			return summarizeSeries(all, len(cfg.Strategies)), fmt.Errorf("batch %d: %w", b, err)
		}
		cfg.logger().Info("batch finished",
			zap.Int("batch", b),
			zap.Uint32s("wins", stats.Wins),
			zap.Uint32("draws", stats.Draws))
		all = append(all, stats)
	}
	return summarizeSeries(all, len(cfg.Strategies)), nil
}
