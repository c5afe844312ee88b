package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}

type counterModel struct {
	width  int
	pings  int
	quit   bool
	ticker bool
}

func (m counterModel) Init() tea.Cmd {
	return func() tea.Msg { return pingMsg{} }
}

func (m counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case pingMsg:
		m.pings++
		if m.ticker {
			return m, tea.Tick(time.Hour, func(time.Time) tea.Msg { return pingMsg{} })
		}
	case tea.KeyMsg:
		if msg.String() == "q" {
			return m, tea.Quit
		}
	case tea.QuitMsg:
		m.quit = true
	}
	return m, nil
}

func (m counterModel) View() string { return "" }

func TestDriver_DrainsInitAndSize(t *testing.T) {
	d := New(t, counterModel{}, WithSize(80, 24))
	d.DrainInit()

	m := d.Model.(counterModel)
	assert.Equal(t, 80, m.width)
	assert.Equal(t, 1, m.pings)
	assert.Zero(t, d.Dropped())
}

func TestDriver_DropsTimerCommands(t *testing.T) {
	d := New(t, counterModel{ticker: true})
	d.DrainInit()
	d.Send(pingMsg{})

	assert.Equal(t, 2, d.Model.(counterModel).pings)
	assert.Equal(t, 2, d.Dropped())
}

func TestDriver_Quit(t *testing.T) {
	d := New(t, counterModel{})
	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.True(t, d.Model.(counterModel).quit)

	d.Send(pingMsg{})
	assert.Zero(t, d.Model.(counterModel).pings, "messages after quit are ignored")
}
