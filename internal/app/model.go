package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/services"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/ui/styles"
)

// TabID represents the identifier for a tab in the application.
type TabID int

const (
	// TabUsage is the ID for the usage tab.
	TabUsage TabID = iota
	// TabCycles is the ID for the billing cycles tab.
	TabCycles
	// TabInfo is the ID for the info tab.
	TabInfo
)

// String returns the string representation of the TabID.
func (t TabID) String() string {
	switch t {
	case TabUsage:
		return "Usage"
	case TabCycles:
		return "Cycles"
	case TabInfo:
		return "Info"
	default:
		return "Unknown"
	}
}

// Tab defines the interface that all tabs must implement.
type Tab interface {
	// Init initializes the tab and returns any initial commands.
	Init() tea.Cmd

	// Update handles messages and returns the updated tab and any commands.
	Update(msg tea.Msg) (Tab, tea.Cmd)

	// View renders the tab content.
	View() string

	// SetSize sets the available size for the tab.
	SetSize(width, height int)

	// ShortHelp returns key bindings for the short help view.
	ShortHelp() []key.Binding
}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Tab1    key.Binding
	Tab2    key.Binding
	Tab3    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Search  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
	Escape  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "usage")),
		Tab2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "cycles")),
		Tab3:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "info")),
		NextTab: key.NewBinding(key.WithKeys("tab", "l", "right"), key.WithHelp("tab/→", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "h", "left"), key.WithHelp("shift+tab/←", "prev tab")),
		Search:  key.NewBinding(key.WithKeys("/", "s"), key.WithHelp("/", "edit service line")),
		Refresh: key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "re-run query")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Escape:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// Styles defines the application chrome styles.
type Styles struct {
	TabBar      lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Content     lipgloss.Style
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	Highlight   lipgloss.Style
	ErrorBanner lipgloss.Style
}

// DefaultStyles returns the default application styles.
func DefaultStyles() Styles {
	return Styles{
		TabBar:      lipgloss.NewStyle().Background(styles.BgDark).Padding(0, 1),
		ActiveTab:   styles.ActiveTabStyle,
		InactiveTab: styles.InactiveTabStyle,
		Content:     lipgloss.NewStyle().Padding(1, 2),
		Title:       styles.TitleStyle,
		Subtle:      styles.HelpStyle,
		Highlight:   lipgloss.NewStyle().Bold(true).Foreground(styles.Secondary),
		ErrorBanner: lipgloss.NewStyle().Foreground(styles.Error).Padding(0, 2),
	}
}

// Model is the root Bubble Tea model.
type Model struct {
	activeTab TabID
	tabs      []Tab
	tabNames  []string

	state    *State
	services *services.Manager

	input   textinput.Model
	spinner spinner.Model
	keymap  KeyMap
	styles  Styles

	width    int
	height   int
	showHelp bool
	ready    bool
}

// NewModel creates the root model. Tabs are attached separately via
// SetTabs so they can share the model's state.
func NewModel(mgr *services.Manager) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	input := textinput.New()
	input.Placeholder = "Service line number (e.g. SL-1234567-89012-34)"
	input.CharLimit = 64
	input.Prompt = "› "
	input.Focus()

	return &Model{
		state:    NewState(),
		services: mgr,
		input:    input,
		spinner:  s,
		keymap:   DefaultKeyMap(),
		styles:   DefaultStyles(),
	}
}

// SetTabs attaches the tab models and records their display names.
func (m *Model) SetTabs(tabs []Tab) {
	m.tabs = tabs
	m.tabNames = make([]string, len(tabs))
	for i := range tabs {
		m.tabNames[i] = TabID(i).String()
	}
}

// GetState returns the shared application state.
func (m *Model) GetState() *State {
	return m.state
}

// Init initializes the application model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, textinput.Blink}
	for _, tab := range m.tabs {
		if tab != nil {
			cmds = append(cmds, tab.Init())
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the application.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)

	case tea.KeyMsg:
		cmd, handled := m.handleKeyMsg(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if handled {
			return m, tea.Batch(cmds...)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		cmds = append(cmds, m.handleAppMsg(msg)...)
	}

	if cmd := m.updateActiveTab(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleAppMsg(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case QueryStartedMsg:
		m.state.SetLoading(true)
		cmds = append(cmds, queryDashboardCmd(m.services, msg.ServiceLine))

	case DashboardLoadedMsg:
		m.state.SetDashboard(msg.ServiceLine, msg.Dashboard, msg.FetchedAt)

	case QueryFailedMsg:
		m.state.SetError(msg.Err.Error())

	case TabSwitchMsg:
		m.activeTab = msg.Tab
		m.updateTabSizes()

	case ToggleHelpMsg:
		m.showHelp = !m.showHelp
	}

	return cmds
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	m.input.Width = max(msg.Width-8, 20)
	m.updateTabSizes()
}

// handleKeyMsg handles keyboard input. The second return value reports
// whether the key was consumed and should not reach the active tab.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Cmd, bool) {
	// Ctrl+C always quits, even while typing.
	if msg.String() == "ctrl+c" {
		return tea.Quit, true
	}

	if m.input.Focused() {
		return m.handleInputKey(msg), true
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit, true

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return nil, true

	case key.Matches(msg, m.keymap.Search):
		m.input.Focus()
		return textinput.Blink, true

	case key.Matches(msg, m.keymap.Tab1):
		m.switchTab(TabUsage)
		return nil, true

	case key.Matches(msg, m.keymap.Tab2):
		m.switchTab(TabCycles)
		return nil, true

	case key.Matches(msg, m.keymap.Tab3):
		m.switchTab(TabInfo)
		return nil, true

	case key.Matches(msg, m.keymap.NextTab):
		if !m.showHelp {
			m.switchTab(TabID((int(m.activeTab) + 1) % len(m.tabs)))
		}
		return nil, true

	case key.Matches(msg, m.keymap.PrevTab):
		if !m.showHelp {
			m.switchTab(TabID((int(m.activeTab) - 1 + len(m.tabs)) % len(m.tabs)))
		}
		return nil, true

	case key.Matches(msg, m.keymap.Refresh):
		return m.submitQuery(m.state.ServiceLine()), true

	case key.Matches(msg, m.keymap.Escape):
		if m.showHelp {
			m.showHelp = false
			return nil, true
		}
	}

	return nil, false
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.submitQuery(strings.TrimSpace(m.input.Value()))
	case "esc":
		m.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// submitQuery starts a query when the service line is long enough and
// no other query is already running.
func (m *Model) submitQuery(serviceLine string) tea.Cmd {
	if !CanQuery(serviceLine) || m.state.Loading() {
		return nil
	}
	m.input.Blur()
	return func() tea.Msg {
		return QueryStartedMsg{ServiceLine: serviceLine}
	}
}

func (m *Model) switchTab(tab TabID) {
	if int(tab) < len(m.tabs) {
		m.activeTab = tab
		m.updateTabSizes()
	}
}

func (m *Model) updateActiveTab(msg tea.Msg) tea.Cmd {
	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		var cmd tea.Cmd
		m.tabs[m.activeTab], cmd = m.tabs[m.activeTab].Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) updateTabSizes() {
	// Query bar and tab bar take the top rows.
	contentHeight := max(m.height-7, 0)

	for _, tab := range m.tabs {
		if tab != nil {
			tab.SetSize(m.width, contentHeight)
		}
	}
}

// View renders the application UI.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderQueryBar())
	b.WriteString("\n")

	if m.width > 0 {
		b.WriteString(m.renderNavbar())
		b.WriteString("\n")
	}

	if !m.ready {
		b.WriteString(m.styles.Content.Render(fmt.Sprintf("%s Loading...", m.spinner.View())))
		return b.String()
	}

	if errMsg := m.state.Error(); errMsg != "" {
		b.WriteString(m.styles.ErrorBanner.Render("Error: " + errMsg))
		b.WriteString("\n")
	}

	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		b.WriteString(m.tabs[m.activeTab].View())
	}

	if m.showHelp {
		return m.overlayHelp()
	}

	return b.String()
}

func (m *Model) renderQueryBar() string {
	var hint string
	switch {
	case m.state.Loading():
		hint = m.spinner.View() + " querying..."
	case m.input.Focused() && !CanQuery(strings.TrimSpace(m.input.Value())):
		hint = m.styles.Subtle.Render("enter at least 7 characters")
	case m.input.Focused():
		hint = m.styles.Subtle.Render("press enter to query")
	default:
		hint = m.styles.Subtle.Render("press / to edit")
	}

	border := styles.BlurredBorderStyle
	if m.input.Focused() {
		border = styles.FocusedBorderStyle
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		border.Width(max(m.width-24, 30)).Render(m.input.View()),
		" ",
		hint,
	)

	return lipgloss.NewStyle().Padding(0, 1).Render(bar)
}

func (m *Model) renderNavbar() string {
	var tabs []string

	for i, name := range m.tabNames {
		if TabID(i) == m.activeTab {
			tabs = append(tabs, m.styles.ActiveTab.Render(fmt.Sprintf("[%d] %s", i+1, name)))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(fmt.Sprintf(" %d  %s", i+1, name)))
		}
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	return m.styles.TabBar.Width(m.width).Render(tabBar)
}

func (m *Model) overlayHelp() string {
	help := m.renderHelp()
	if m.width <= 0 || m.height <= 0 {
		return help
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, help)
}

func (m *Model) renderHelp() string {
	var lines []string

	lines = append(lines, m.styles.Title.Render("Keyboard Shortcuts"))
	lines = append(lines, "")

	lines = append(lines, m.styles.Highlight.Render("Navigation"))
	lines = append(lines, "  1-3        Switch tabs")
	lines = append(lines, "  Tab        Next tab")
	lines = append(lines, "  Shift+Tab  Previous tab")
	lines = append(lines, "")

	lines = append(lines, m.styles.Highlight.Render("Actions"))
	lines = append(lines, "  /          Edit service line")
	lines = append(lines, "  Enter      Run query")
	lines = append(lines, "  r          Re-run last query")
	lines = append(lines, "  ?          Toggle help")
	lines = append(lines, "  q/Ctrl+C   Quit")
	lines = append(lines, "")

	if int(m.activeTab) < len(m.tabs) && m.tabs[m.activeTab] != nil {
		tabHelp := m.tabs[m.activeTab].ShortHelp()
		if len(tabHelp) > 0 {
			lines = append(lines, m.styles.Highlight.Render(fmt.Sprintf("%s Tab", m.tabNames[m.activeTab])))
			for _, binding := range tabHelp {
				lines = append(lines, fmt.Sprintf("  %-10s %s", binding.Help().Key, binding.Help().Desc))
			}
			lines = append(lines, "")
		}
	}

	lines = append(lines, m.styles.Subtle.Render("Press ? or Esc to close"))

	return styles.HelpPanelStyle.Render(strings.Join(lines, "\n"))
}
