package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.Color("214")
	mutedColor  = lipgloss.Color("245")
	borderColor = lipgloss.Color("240")
	winColor    = lipgloss.Color("42")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	labelStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	leaderStyle = cellStyle.Foreground(winColor).Bold(true)
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
)

// Render formats r for a terminal. Colors are dropped automatically when
// the output is not a TTY.
func Render(r Report) string {
	totals := r.Totals()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Skip-Bo simulation"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("run %s  seed %d  draw stack %d  batches %d",
		r.RunID, r.Seed, r.DrawStackSize, len(r.Batches))))
	b.WriteString("\n\n")

	b.WriteString(boxStyle.Render(seatTable(r, totals.Wins, totals.TotalGames)))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Games", fmt.Sprintf("%d (%d draws, %d errors)", totals.TotalGames, totals.Draws, totals.Errors)},
		{"Rounds", fmt.Sprintf("avg %.1f", totals.AvgRounds)},
	}
	if len(r.Batches) == 1 {
		first := r.Batches[0]
		rows[1][1] = fmt.Sprintf("avg %.1f  median %d  p10 %.0f  p90 %.0f",
			first.AvgRounds, first.MedianRounds, first.Rounds.P10, first.Rounds.P90)
		rows = append(rows,
			[2]string{"Lead changes", fmt.Sprintf("%.2f per game", first.AvgLeadChanges)},
			[2]string{"Decisive at", fmt.Sprintf("%.0f%% of the game", first.AvgDecisiveRoundPct*100)},
		)
	}
	if moves := totals.DrawPlays + totals.HandPlays + totals.SidePlays; moves > 0 {
		rows = append(rows, [2]string{"Cards played", fmt.Sprintf("%d draw  %d hand  %d side  (%d passes)",
			totals.DrawPlays, totals.HandPlays, totals.SidePlays, totals.Passes)})
	}
	rows = append(rows, [2]string{"Avg game", fmt.Sprintf("%.1fµs", float64(totals.AvgDurationNs)/1e3)})

	for _, row := range rows {
		b.WriteString(labelStyle.Width(14).Render(row[0]))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	return b.String()
}

func seatTable(r Report, wins []uint32, games uint32) string {
	header := []string{"Seat", "Strategy", "Wins", "Win %"}
	series := len(r.Seats) == len(r.Players) && len(r.Seats) > 0
	if series {
		header = append(header, "Mean ± SD", "P10–P90")
	}

	leader := 0
	for i, w := range wins {
		if w > wins[leader] {
			leader = i
		}
	}

	cells := [][]string{header}
	for i, name := range r.Players {
		pct := 0.0
		if games > 0 {
			pct = 100 * float64(wins[i]) / float64(games)
		}
		row := []string{fmt.Sprint(i), name, fmt.Sprint(wins[i]), fmt.Sprintf("%.1f", pct)}
		if series {
			s := r.Seats[i]
			row = append(row,
				fmt.Sprintf("%.1f ± %.1f", s.Mean, s.StdDev),
				fmt.Sprintf("%.0f–%.0f", s.Spread.P10, s.Spread.P90))
		}
		cells = append(cells, row)
	}

	widths := make([]int, len(header))
	for _, row := range cells {
		for c, v := range row {
			widths[c] = max(widths[c], lipgloss.Width(v)+2)
		}
	}

	lines := make([]string, 0, len(cells))
	for i, row := range cells {
		rendered := make([]string, len(row))
		for c, v := range row {
			style := cellStyle
			switch {
			case i == 0:
				style = headerStyle
			case i-1 == leader && games > 0:
				style = leaderStyle
			}
			if c >= 2 {
				style = style.Align(lipgloss.Right)
			}
			rendered[c] = style.Width(widths[c]).Render(v)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
