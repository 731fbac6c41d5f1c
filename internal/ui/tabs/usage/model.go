// Package usage provides the usage tab with per-range summaries.
package usage

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/app"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/ui/components"
)

// Range selects which slice of the dashboard the tab displays.
type Range int

const (
	// RangeCurrent shows the billing cycle containing today.
	RangeCurrent Range = iota
	// RangePrevious shows the cycle before the current one.
	RangePrevious
	// RangeLast30 shows the rolling last-30-days window.
	RangeLast30

	rangeCount
)

// String returns the display label for a Range.
func (r Range) String() string {
	switch r {
	case RangeCurrent:
		return "Current cycle"
	case RangePrevious:
		return "Previous cycle"
	case RangeLast30:
		return "Last 30 days"
	default:
		return "Unknown"
	}
}

// keyMap defines the key bindings specific to the usage tab.
type keyMap struct {
	NextRange key.Binding
	PrevRange key.Binding
	Up        key.Binding
	Down      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextRange: key.NewBinding(
			key.WithKeys("]", "n"),
			key.WithHelp("]/n", "next range"),
		),
		PrevRange: key.NewBinding(
			key.WithKeys("[", "p"),
			key.WithHelp("[/p", "prev range"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

// Model represents the usage tab state.
type Model struct {
	state    *app.State
	spinner  components.LoadingSpinner
	keys     keyMap
	viewport viewport.Model
	selected Range
	width    int
	height   int
}

// New creates a new usage tab model.
func New(state *app.State) *Model {
	return &Model{
		state:    state,
		spinner:  components.NewSpinner("Querying usage..."),
		keys:     defaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case app.DashboardLoadedMsg:
		// Reset to the current cycle on every fresh query.
		m.selected = RangeCurrent
		m.viewport.GotoTop()

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyMsg(msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.NextRange):
		m.selected = (m.selected + 1) % rangeCount
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.PrevRange):
		m.selected = (m.selected - 1 + rangeCount) % rangeCount
		m.viewport.GotoTop()
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

// SetSize sets the available size for the usage tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// selectedDaily returns the daily rows and peak date for the selected
// range, or nil when the dashboard has no data for it.
func (m *Model) selectedDaily(d *models.Dashboard) ([]models.DailyRow, *string) {
	switch m.selected {
	case RangeCurrent:
		if d.CurrentCycle != nil {
			return d.CurrentCycle.Daily, d.CurrentCycle.PeakDayDate
		}
	case RangePrevious:
		if d.PreviousCycle != nil {
			return d.PreviousCycle.Daily, d.PreviousCycle.PeakDayDate
		}
	case RangeLast30:
		return d.Last30Days.Daily, d.Last30Days.PeakDayDate
	}
	return nil, nil
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.NextRange,
		m.keys.PrevRange,
		m.keys.Up,
		m.keys.Down,
	}
}
