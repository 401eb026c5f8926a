package simulation

import (
	"math"
	"sort"
)

// Percentiles of a distribution, linearly interpolated.
type Percentiles struct {
	P10 float64
	P25 float64
	P50 float64
	P75 float64
	P90 float64
}

// AggregatedStats summarizes a batch. Abandoned matches count toward
// TotalGames and Errors only.
type AggregatedStats struct {
	TotalGames    uint32
	Wins          []uint32 // indexed by seat
	Draws         uint32   // hit the round cap
	Errors        uint32
	AvgRounds     float32
	MedianRounds  uint32
	Rounds        Percentiles
	AvgDurationNs uint64

	TotalDecisions  uint64
	TotalValidMoves uint64
	DrawPlays       uint64
	HandPlays       uint64
	SidePlays       uint64
	Discards        uint64
	Passes          uint64

	AvgLeadChanges      float32
	AvgDecisiveRoundPct float32
	AvgClosestMargin    float32
	TrailingWins        uint32 // wins by a player not leading at the midpoint
}

// WinRate is seat's share of the batch, draws and errors included in the denominator.
func (s AggregatedStats) WinRate(seat int) float64 {
	if s.TotalGames == 0 || seat < 0 || seat >= len(s.Wins) {
		return 0
	}
	return float64(s.Wins[seat]) / float64(s.TotalGames)
}

// aggregateResults computes aggregate statistics from game results
func aggregateResults(results []GameResult, numPlayers int) AggregatedStats {
	stats := AggregatedStats{
		TotalGames: uint32(len(results)),
		Wins:       make([]uint32, numPlayers),
	}

	roundCounts := make([]uint32, 0, len(results))
	totalDuration := uint64(0)
	var leadChanges, decisive, margin float64
	finished := 0

	for _, result := range results {
		totalDuration += result.DurationNs
		if result.Error != "" {
			stats.Errors++
			continue
		}

		if result.WinnerID >= 0 && result.WinnerID < numPlayers {
			stats.Wins[result.WinnerID]++
			decisive += float64(result.Tension.DecisiveRoundPct)
			if result.Tension.TrailingWinner {
				stats.TrailingWins++
			}
		} else {
			stats.Draws++
		}

		roundCounts = append(roundCounts, result.Rounds)
		leadChanges += float64(result.Tension.LeadChanges)
		margin += float64(result.Tension.ClosestMargin)
		finished++

		m := result.Metrics
		stats.TotalDecisions += m.Decisions
		stats.TotalValidMoves += m.TotalValidMoves
		stats.DrawPlays += m.DrawPlays
		stats.HandPlays += m.HandPlays
		stats.SidePlays += m.SidePlays
		stats.Discards += m.Discards
		stats.Passes += m.Passes
	}

	if len(roundCounts) > 0 {
		sum := uint64(0)
		values := make([]float64, len(roundCounts))
		for i, rc := range roundCounts {
			sum += uint64(rc)
			values[i] = float64(rc)
		}
		stats.AvgRounds = float32(sum) / float32(len(roundCounts))
		stats.MedianRounds = median(roundCounts)
		stats.Rounds = percentiles(values)
	}

	if finished > 0 {
		stats.AvgLeadChanges = float32(leadChanges / float64(finished))
		stats.AvgClosestMargin = float32(margin / float64(finished))
	}
	if won := finished - int(stats.Draws); won > 0 {
		stats.AvgDecisiveRoundPct = float32(decisive / float64(won))
	}

	if stats.TotalGames > 0 {
		stats.AvgDurationNs = totalDuration / uint64(stats.TotalGames)
	}

	return stats
}

// median calculates the median of a slice
func median(values []uint32) uint32 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]uint32, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// percentile returns the p-th percentile (0..100) of sorted values.
func percentile(sorted []float64, p float64) float64 {
	switch len(sorted) {
	case 0:
		return 0
	case 1:
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(rank-float64(lo))
}

func percentiles(values []float64) Percentiles {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return Percentiles{
		P10: percentile(sorted, 10),
		P25: percentile(sorted, 25),
		P50: percentile(sorted, 50),
		P75: percentile(sorted, 75),
		P90: percentile(sorted, 90),
	}
}

// SeatSummary describes one seat's win count across the batches of a series.
type SeatSummary struct {
	Mean    float64
	StdDev  float64
	Min     uint32
	Max     uint32
	Spread  Percentiles
	Overall uint32 // total wins over the whole series
}

// SeriesStats is the result of RunSeries.
type SeriesStats struct {
	Batches []AggregatedStats
	Seats   []SeatSummary
}

func summarizeSeries(batches []AggregatedStats, numPlayers int) SeriesStats {
	series := SeriesStats{
		Batches: batches,
		Seats:   make([]SeatSummary, numPlayers),
	}
	if len(batches) == 0 {
		return series
	}

	for seat := 0; seat < numPlayers; seat++ {
		values := make([]float64, 0, len(batches))
		sum := 0.0
		s := SeatSummary{Min: math.MaxUint32}
		for _, b := range batches {
			w := uint32(0)
			if seat < len(b.Wins) {
				w = b.Wins[seat]
			}
			values = append(values, float64(w))
			sum += float64(w)
			s.Overall += w
			s.Min = min(s.Min, w)
			s.Max = max(s.Max, w)
		}
		s.Mean = sum / float64(len(values))
		variance := 0.0
		for _, v := range values {
			variance += (v - s.Mean) * (v - s.Mean)
		}
		s.StdDev = math.Sqrt(variance / float64(len(values)))
		s.Spread = percentiles(values)
		series.Seats[seat] = s
	}
	return series
}
