package report

import (
	"fmt"
	"os"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/signalnine/skipbo-sim/bindings/skipbo"
	"github.com/signalnine/skipbo-sim/simulation"
)

// Format selects the encoding of a result file.
type Format string

const (
	FormatJSON        Format = "json"
	FormatFlatbuffers Format = "flatbuffers"
)

// ParseFormat accepts "json", "flatbuffers" or "fb".
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json", "":
		return FormatJSON, nil
	case "flatbuffers", "fb":
		return FormatFlatbuffers, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Write encodes r in format and writes it to path.
func Write(path string, format Format, r Report) error {
	switch format {
	case FormatJSON:
		return WriteJSON(path, r)
	case FormatFlatbuffers:
		return writeAtomic(path, EncodeFlatbuffers(r))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// ReadFlatbuffers loads a report written with FormatFlatbuffers.
func ReadFlatbuffers(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read report: %w", err)
	}
	return DecodeFlatbuffers(data)
}

// EncodeFlatbuffers serializes r using the schema in schema/results.fbs.
// Series summaries and timestamps are not part of the binary format.
func EncodeFlatbuffers(r Report) []byte {
	builder := flatbuffers.NewBuilder(1024)

	// Children must be built before the tables that reference them.
	batchOffsets := make([]flatbuffers.UOffsetT, len(r.Batches))
	for i := range r.Batches {
		batchOffsets[i] = serializeBatch(builder, &r.Batches[i])
	}
	skipbo.ReportStartBatchesVector(builder, len(batchOffsets))
	for i := len(batchOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(batchOffsets[i])
	}
	batches := builder.EndVector(len(batchOffsets))

	playerOffsets := make([]flatbuffers.UOffsetT, len(r.Players))
	for i, p := range r.Players {
		playerOffsets[i] = builder.CreateString(p)
	}
	skipbo.ReportStartPlayersVector(builder, len(playerOffsets))
	for i := len(playerOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(playerOffsets[i])
	}
	players := builder.EndVector(len(playerOffsets))

	runID := builder.CreateString(r.RunID)

	skipbo.ReportStart(builder)
	skipbo.ReportAddRunId(builder, runID)
	skipbo.ReportAddSeed(builder, r.Seed)
	skipbo.ReportAddDrawStackSize(builder, uint32(r.DrawStackSize))
	skipbo.ReportAddMaxRounds(builder, uint32(r.MaxRounds))
	skipbo.ReportAddPlayers(builder, players)
	skipbo.ReportAddBatches(builder, batches)
	skipbo.FinishReportBuffer(builder, skipbo.ReportEnd(builder))

	return builder.FinishedBytes()
}

func serializeBatch(builder *flatbuffers.Builder, stats *simulation.AggregatedStats) flatbuffers.UOffsetT {
	var winsOffset flatbuffers.UOffsetT
	if len(stats.Wins) > 0 {
		skipbo.BatchStartWinsVector(builder, len(stats.Wins))
		// Add in reverse order (FlatBuffers convention)
		for i := len(stats.Wins) - 1; i >= 0; i-- {
			builder.PrependUint32(stats.Wins[i])
		}
		winsOffset = builder.EndVector(len(stats.Wins))
	}

	skipbo.BatchStart(builder)
	skipbo.BatchAddTotalGames(builder, stats.TotalGames)
	if winsOffset > 0 {
		skipbo.BatchAddWins(builder, winsOffset)
	}
	skipbo.BatchAddDraws(builder, stats.Draws)
	skipbo.BatchAddErrors(builder, stats.Errors)
	skipbo.BatchAddAvgRounds(builder, stats.AvgRounds)
	skipbo.BatchAddMedianRounds(builder, stats.MedianRounds)
	skipbo.BatchAddAvgDurationNs(builder, stats.AvgDurationNs)
	// Move counters
	skipbo.BatchAddTotalDecisions(builder, stats.TotalDecisions)
	skipbo.BatchAddTotalValidMoves(builder, stats.TotalValidMoves)
	skipbo.BatchAddDrawPlays(builder, stats.DrawPlays)
	skipbo.BatchAddHandPlays(builder, stats.HandPlays)
	skipbo.BatchAddSidePlays(builder, stats.SidePlays)
	skipbo.BatchAddDiscards(builder, stats.Discards)
	skipbo.BatchAddPasses(builder, stats.Passes)
	// Tension metrics
	skipbo.BatchAddAvgLeadChanges(builder, stats.AvgLeadChanges)
	skipbo.BatchAddAvgDecisiveRoundPct(builder, stats.AvgDecisiveRoundPct)
	skipbo.BatchAddAvgClosestMargin(builder, stats.AvgClosestMargin)
	skipbo.BatchAddTrailingWins(builder, stats.TrailingWins)
	// Round distribution
	skipbo.BatchAddRoundsP10(builder, stats.Rounds.P10)
	skipbo.BatchAddRoundsP25(builder, stats.Rounds.P25)
	skipbo.BatchAddRoundsP50(builder, stats.Rounds.P50)
	skipbo.BatchAddRoundsP75(builder, stats.Rounds.P75)
	skipbo.BatchAddRoundsP90(builder, stats.Rounds.P90)
	return skipbo.BatchEnd(builder)
}

// DecodeFlatbuffers is the inverse of EncodeFlatbuffers.
func DecodeFlatbuffers(buf []byte) (r Report, err error) {
	if len(buf) < 8 || !skipbo.ReportBufferHasIdentifier(buf) {
		return Report{}, fmt.Errorf("not a skipbo result file")
	}
	// The generated accessors index without bounds checks.
	defer func() {
		if p := recover(); p != nil {
			r, err = Report{}, fmt.Errorf("corrupt result file: %v", p)
		}
	}()

	root := skipbo.GetRootAsReport(buf, 0)
	r = Report{
		RunID:         string(root.RunId()),
		Seed:          root.Seed(),
		DrawStackSize: int(root.DrawStackSize()),
		MaxRounds:     int(root.MaxRounds()),
		Players:       make([]string, root.PlayersLength()),
		Batches:       make([]simulation.AggregatedStats, root.BatchesLength()),
	}
	for i := range r.Players {
		r.Players[i] = string(root.Players(i))
	}

	var b skipbo.Batch
	for i := range r.Batches {
		root.Batches(&b, i)
		r.Batches[i] = deserializeBatch(&b)
	}
	return r, nil
}

func deserializeBatch(b *skipbo.Batch) simulation.AggregatedStats {
	stats := simulation.AggregatedStats{
		TotalGames:          b.TotalGames(),
		Wins:                make([]uint32, b.WinsLength()),
		Draws:               b.Draws(),
		Errors:              b.Errors(),
		AvgRounds:           b.AvgRounds(),
		MedianRounds:        b.MedianRounds(),
		AvgDurationNs:       b.AvgDurationNs(),
		TotalDecisions:      b.TotalDecisions(),
		TotalValidMoves:     b.TotalValidMoves(),
		DrawPlays:           b.DrawPlays(),
		HandPlays:           b.HandPlays(),
		SidePlays:           b.SidePlays(),
		Discards:            b.Discards(),
		Passes:              b.Passes(),
		AvgLeadChanges:      b.AvgLeadChanges(),
		AvgDecisiveRoundPct: b.AvgDecisiveRoundPct(),
		AvgClosestMargin:    b.AvgClosestMargin(),
		TrailingWins:        b.TrailingWins(),
		Rounds: simulation.Percentiles{
			P10: b.RoundsP10(),
			P25: b.RoundsP25(),
			P50: b.RoundsP50(),
			P75: b.RoundsP75(),
			P90: b.RoundsP90(),
		},
	}
	for i := range stats.Wins {
		stats.Wins[i] = b.Wins(i)
	}
	return stats
}
