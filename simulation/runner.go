package simulation

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/signalnine/skipbo-sim/engine"
	"github.com/signalnine/skipbo-sim/strategy"
)

// DefaultMaxRounds stops matches in which no player can make progress, such
// as two draw-stack-only players facing a field that never moves.
const DefaultMaxRounds = 10000

// MatchConfig describes the matches of a batch. Strategies are shared by
// every worker, so they must not keep per-call state.
type MatchConfig struct {
	DrawStackSize int
	Names         []string          // strategy name per seat
	Strategies    []engine.Strategy // resolved from Names
	MaxRounds     int               // 0 = DefaultMaxRounds
	Logger        *zap.Logger
}

// NewMatchConfig resolves one strategy per seat.
func NewMatchConfig(names []string, drawStackSize, maxRounds int, logger *zap.Logger) (MatchConfig, error) {
	if len(names) < 2 {
		return MatchConfig{}, fmt.Errorf("need at least 2 players, got %d", len(names))
	}
	if drawStackSize <= 0 {
		return MatchConfig{}, fmt.Errorf("draw stack size must be positive, got %d", drawStackSize)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg := MatchConfig{
		DrawStackSize: drawStackSize,
		Names:         append([]string(nil), names...),
		Strategies:    make([]engine.Strategy, len(names)),
		MaxRounds:     maxRounds,
		Logger:        logger,
	}
	for i, name := range names {
		s, err := strategy.New(name)
		if err != nil {
			return MatchConfig{}, fmt.Errorf("seat %d: %w", i, err)
		}
		cfg.Strategies[i] = s
	}
	return cfg, nil
}

// EffectiveMaxRounds is the round cap matches actually run under.
func (c MatchConfig) EffectiveMaxRounds() int {
	if c.MaxRounds <= 0 {
		return DefaultMaxRounds
	}
	return c.MaxRounds
}

func (c MatchConfig) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// TensionResult is the per-match summary of engine.TensionMetrics.
type TensionResult struct {
	LeadChanges      int
	DecisiveRoundPct float32
	ClosestMargin    float32
	TrailingWinner   bool // winner was not leading at the midpoint
}

// GameResult holds the outcome of a single game
type GameResult struct {
	SimID      int
	Seed       uint64
	WinnerID   int // -1 = draw or error
	Rounds     uint32
	DurationNs uint64
	Error      string
	Metrics    engine.GameMetrics
	Tension    TensionResult
}

// RunSingleGame deals a fresh match from seed and plays rounds until a draw
// stack is empty. A round is one turn per seat in order.
func RunSingleGame(cfg MatchConfig, seed uint64) GameResult {
	start := time.Now()
	result := GameResult{Seed: seed, WinnerID: -1}

	finish := func() GameResult {
		result.DurationNs = uint64(time.Since(start).Nanoseconds())
		return result
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	players := make([]*engine.PlayerState, len(cfg.Strategies))
	for i := range players {
		players[i] = engine.NewPlayerState(cfg.DrawStackSize, rng)
	}

	game, err := engine.NewGame(players, rng, engine.WithLogger(cfg.logger()))
	if err != nil {
		result.Error = err.Error()
		return finish()
	}

	tension := engine.NewTensionMetrics()
	var history []int
	maxRounds := cfg.EffectiveMaxRounds()

	for !game.CheckWin() {
		if int(result.Rounds) >= maxRounds {
			result.Metrics = game.Metrics
			return finish()
		}

		for seat, s := range cfg.Strategies {
			if err := game.PlayTurn(seat, s); err != nil {
				cfg.logger().Warn("match abandoned",
					zap.Uint64("seed", seed),
					zap.Int("seat", seat),
					zap.Uint32("round", result.Rounds),
					zap.Error(err))
				result.Error = err.Error()
				result.Metrics = game.Metrics
				return finish()
			}
			if game.Ended {
				break
			}
		}

		result.Rounds++
		tension.Update(game)
		history = append(history, engine.DrawStackLeader(game))
	}

	tension.Finalize(game.WinnerID)
	result.WinnerID = game.WinnerID
	result.Metrics = game.Metrics
	result.Tension = TensionResult{
		LeadChanges:      tension.LeadChanges,
		DecisiveRoundPct: tension.DecisiveRoundPct(),
		ClosestMargin:    tension.ClosestMargin,
		TrailingWinner:   len(history) > 1 && history[len(history)/2] != game.WinnerID,
	}
	return finish()
}

// GameJob represents a single simulation job
type GameJob struct {
	SimID int
	Seed  uint64
}

// gameJobs derives one seed per match from the batch seed. Serial and
// parallel runs use the same sequence, so results do not depend on worker count.
func gameJobs(numGames int, seed uint64) []GameJob {
	rng := rand.New(rand.NewSource(int64(seed)))
	jobs := make([]GameJob, numGames)
	for i := range jobs {
		jobs[i] = GameJob{SimID: i, Seed: rng.Uint64()}
	}
	return jobs
}

// RunBatch simulates numGames matches one after another.
func RunBatch(cfg MatchConfig, numGames int, seed uint64) AggregatedStats {
	results := make([]GameResult, numGames)
	for i, job := range gameJobs(numGames, seed) {
		results[i] = RunSingleGame(cfg, job.Seed)
		results[i].SimID = job.SimID
	}
	return aggregateResults(results, len(cfg.Strategies))
}
