package main

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/signalnine/skipbo-sim/simulation"
)

const refreshInterval = 100 * time.Millisecond

// progressCounter is fed by simulation workers.
type progressCounter struct {
	done   atomic.Int64
	draws  atomic.Int64
	errors atomic.Int64
}

func (c *progressCounter) record(r simulation.GameResult) {
	c.done.Add(1)
	switch {
	case r.Error != "":
		c.errors.Add(1)
	case r.WinnerID < 0:
		c.draws.Add(1)
	}
}

type tickMsg time.Time

type runDoneMsg struct{}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// progressModel redraws the bar from the counter on a timer rather than
// receiving a message per match.
type progressModel struct {
	bar     progress.Model
	counter *progressCounter
	total   int
	started time.Time
	cancel  func()
	stopped bool
}

func newProgressModel(total int, counter *progressCounter, cancel func()) progressModel {
	return progressModel{
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		counter: counter,
		total:   total,
		started: time.Now(),
		cancel:  cancel,
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m progressModel) Init() tea.Cmd {
	return tick()
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.stopped = true
			m.cancel()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(60, msg.Width-30))
	case tickMsg:
		return m, tick()
	case runDoneMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) fraction() float64 {
	if m.total <= 0 {
		return 0
	}
	return min(1, float64(m.counter.done.Load())/float64(m.total))
}

func (m progressModel) View() string {
	done := m.counter.done.Load()

	var b strings.Builder
	b.WriteString(m.bar.ViewAs(m.fraction()))
	fmt.Fprintf(&b, " %d/%d", done, m.total)

	status := formatDuration(time.Since(m.started))
	if n := m.counter.draws.Load(); n > 0 {
		status += fmt.Sprintf(" | %d draws", n)
	}
	if n := m.counter.errors.Load(); n > 0 {
		status += fmt.Sprintf(" | %d errors", n)
	}
	if m.stopped {
		status += " | stopping"
	}
	b.WriteString("  " + statusStyle.Render(status) + "\n")
	return b.String()
}

// playWithProgress runs play in the background while a progress bar is shown.
// Quitting the bar cancels the run.
func playWithProgress(cancel func(), total int, counter *progressCounter, play func() (simulation.SeriesStats, error)) (simulation.SeriesStats, error) {
	p := tea.NewProgram(newProgressModel(total, counter, cancel))

	var series simulation.SeriesStats
	var playErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		series, playErr = play()
		p.Send(runDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-done
		return series, fmt.Errorf("progress display: %w", err)
	}
	<-done
	return series, playErr
}
