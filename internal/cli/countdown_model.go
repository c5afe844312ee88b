package cli

import (
	"time"

	"github.com/alexanderramin/gigsim/internal/cli/formatter"
	"github.com/alexanderramin/gigsim/internal/deadline"
	"github.com/alexanderramin/gigsim/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type countdownKeyMap struct {
	Quit       key.Binding
	ToggleMode key.Binding
}

func defaultCountdownKeys() countdownKeyMap {
	return countdownKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle full/compact"),
		),
	}
}

type countdownTickMsg time.Time

// countdownModel re-classifies one simulation's deadline on every tick.
// Ticking stops once the deadline has passed or there is none to count.
type countdownModel struct {
	sim       *domain.Simulation
	warnHours float64
	mode      deadline.Mode
	interval  time.Duration
	clock     func() time.Time
	keys      countdownKeyMap

	now      time.Time
	result   deadline.Result
	width    int
	quitting bool
}

func newCountdownModel(sim *domain.Simulation, warnHours float64, mode deadline.Mode, interval time.Duration, clock func() time.Time) countdownModel {
	m := countdownModel{
		sim:       sim,
		warnHours: warnHours,
		mode:      mode,
		interval:  interval,
		clock:     clock,
		keys:      defaultCountdownKeys(),
	}
	m.refresh()
	return m
}

func (m *countdownModel) refresh() {
	m.now = m.clock()
	m.result = deadline.Classify(deadline.Input{
		Target:                deadline.AtPtr(m.sim.Deadline),
		Now:                   m.now,
		WarningThresholdHours: m.warnHours,
		Mode:                  m.mode,
	})
}

func (m countdownModel) ticking() bool {
	return m.result.State.HasRemaining()
}

func (m countdownModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

func (m countdownModel) Init() tea.Cmd {
	if !m.ticking() {
		return nil
	}
	return m.tick()
}

func (m countdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleMode):
			if m.mode == deadline.ModeFull {
				m.mode = deadline.ModeCompact
			} else {
				m.mode = deadline.ModeFull
			}
			m.result.DisplayText = m.result.Render(m.mode)
		}
		return m, nil

	case countdownTickMsg:
		m.refresh()
		if !m.ticking() {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m countdownModel) View() string {
	if m.quitting {
		return ""
	}
	data := formatter.CountdownData{
		ShortID: m.sim.DisplayID(),
		Title:   m.sim.Title,
		Client:  m.sim.Client,
		Result:  m.result,
		Now:     m.now,
		Width:   m.width,
	}
	if m.sim.Deadline != nil {
		data.Deadline = *m.sim.Deadline
		data.HasDate = true
	}
	return formatter.FormatCountdown(data) + "\n"
}
