package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalnine/skipbo-sim/simulation"
)

func sampleReport() Report {
	return Report{
		RunID:         "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		Seed:          42,
		DrawStackSize: 20,
		MaxRounds:     10000,
		Players:       []string{"good", "simple"},
		Batches: []simulation.AggregatedStats{
			{
				TotalGames:      100,
				Wins:            []uint32{61, 37},
				Draws:           1,
				Errors:          1,
				AvgRounds:       32.5,
				MedianRounds:    31,
				Rounds:          simulation.Percentiles{P10: 20, P25: 26, P50: 31, P75: 38, P90: 45.5},
				AvgDurationNs:   81234,
				TotalDecisions:  9000,
				TotalValidMoves: 21000,
				DrawPlays:       1980,
				HandPlays:       5100,
				SidePlays:       700,
				Discards:        6400,
				Passes:          1200,
				AvgLeadChanges:  3.25,
				TrailingWins:    12,
			},
			{TotalGames: 100, Wins: []uint32{58, 42}, AvgRounds: 30, AvgDurationNs: 70000},
		},
	}
}

func TestFlatbuffersRoundTrip(t *testing.T) {
	r := sampleReport()

	buf := EncodeFlatbuffers(r)
	got, err := DecodeFlatbuffers(buf)
	require.NoError(t, err)

	assert.Equal(t, r.RunID, got.RunID)
	assert.Equal(t, r.Seed, got.Seed)
	assert.Equal(t, r.DrawStackSize, got.DrawStackSize)
	assert.Equal(t, r.MaxRounds, got.MaxRounds)
	assert.Equal(t, r.Players, got.Players)
	assert.Equal(t, r.Batches, got.Batches)
}

func TestDecodeFlatbuffersRejectsOtherData(t *testing.T) {
	_, err := DecodeFlatbuffers([]byte("{\"run_id\": \"x\"}"))
	assert.Error(t, err)

	_, err = DecodeFlatbuffers(nil)
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "results.json")

	r := sampleReport()
	r.Started = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.Elapsed = 3 * time.Second
	require.NoError(t, WriteJSON(path, r))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file left behind")

	got, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestWriteFormats(t *testing.T) {
	dir := t.TempDir()
	r := sampleReport()

	fbPath := filepath.Join(dir, "results.bin")
	require.NoError(t, Write(fbPath, FormatFlatbuffers, r))
	got, err := ReadFlatbuffers(fbPath)
	require.NoError(t, err)
	assert.Equal(t, r.Batches, got.Batches)

	assert.Error(t, Write(filepath.Join(dir, "x"), Format("xml"), r))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"", FormatJSON, false},
		{"flatbuffers", FormatFlatbuffers, false},
		{"fb", FormatFlatbuffers, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestTotals(t *testing.T) {
	totals := sampleReport().Totals()

	assert.Equal(t, uint32(200), totals.TotalGames)
	assert.Equal(t, []uint32{119, 79}, totals.Wins)
	assert.Equal(t, uint32(1), totals.Draws)
	assert.Equal(t, uint32(1), totals.Errors)
	// (32.5*99 + 30*100) / 199
	assert.InDelta(t, 31.2437, totals.AvgRounds, 0.001)
	assert.Equal(t, uint64(75617), totals.AvgDurationNs)
}

func TestNew(t *testing.T) {
	cfg, err := simulation.NewMatchConfig([]string{"good", "bad"}, 15, 500, nil)
	require.NoError(t, err)

	series := simulation.SeriesStats{
		Batches: []simulation.AggregatedStats{{TotalGames: 3, Wins: []uint32{2, 1}}},
		Seats:   []simulation.SeatSummary{{Mean: 2}, {Mean: 1}},
	}
	r := New(cfg, 9, series, time.Now())

	_, err = uuid.Parse(r.RunID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"good", "bad"}, r.Players)
	assert.Equal(t, 15, r.DrawStackSize)
	assert.Equal(t, 500, r.MaxRounds)
	assert.Nil(t, r.Seats, "a single batch has no series summary")
}

func TestNewRecordsDefaultRoundCap(t *testing.T) {
	cfg, err := simulation.NewMatchConfig([]string{"simple", "simple"}, 5, 0, nil)
	require.NoError(t, err)

	r := New(cfg, 1, simulation.SeriesStats{}, time.Now())
	assert.Equal(t, simulation.DefaultMaxRounds, r.MaxRounds)
	assert.Equal(t, cfg.EffectiveMaxRounds(), r.MaxRounds)
}

func TestRender(t *testing.T) {
	r := sampleReport()
	out := Render(r)

	for _, want := range []string{"Skip-Bo simulation", "good", "simple", "119", "200 (1 draws, 1 errors)"} {
		assert.Contains(t, out, want)
	}

	r.Seats = []simulation.SeatSummary{
		{Mean: 59.5, StdDev: 1.5, Spread: simulation.Percentiles{P10: 58.3, P90: 60.7}},
		{Mean: 39.5, StdDev: 2.5, Spread: simulation.Percentiles{P10: 37.5, P90: 41.5}},
	}
	assert.Contains(t, Render(r), "59.5 ± 1.5")
}
