package usage

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/ui/components"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/ui/styles"
)

// View renders the usage tab.
func (m *Model) View() string {
	if m.state.Loading() {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	dashboard := m.state.Dashboard()
	if dashboard == nil {
		return styles.CenterBoth(
			styles.HelpStyle.Render("Enter a service line number and press enter to query usage."),
			m.width, m.height,
		)
	}

	var sections []string
	sections = append(sections, m.renderHeader(dashboard))
	sections = append(sections, m.renderRangePicker())
	sections = append(sections, m.renderSummary(dashboard))

	daily, peak := m.selectedDaily(dashboard)
	if len(daily) > 0 {
		chartWidth := max(m.width-10, 20)
		sections = append(sections, components.RenderUsageChart(daily, chartWidth, 8, "GB per day"))
		sections = append(sections, "")
		sections = append(sections, components.RenderDailyTable(daily, peak))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderHeader(d *models.Dashboard) string {
	title := styles.TitleStyle.Render("Service line " + d.ServiceLineNumber)
	subtitle := styles.HelpStyle.Render(fmt.Sprintf("Account %s · updated %s", d.AccountNumber, d.LastUpdated))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderRangePicker() string {
	var parts []string
	for r := RangeCurrent; r < rangeCount; r++ {
		if r == m.selected {
			parts = append(parts, styles.RangeActiveStyle.Render(r.String()))
		} else {
			parts = append(parts, styles.RangeInactiveStyle.Render(r.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + "\n"
}

func (m *Model) renderSummary(d *models.Dashboard) string {
	switch m.selected {
	case RangeCurrent:
		return components.RenderCycleCards(d.CurrentCycle, m.width-6)
	case RangePrevious:
		return components.RenderCycleCards(d.PreviousCycle, m.width-6)
	default:
		return components.RenderWindowCards(d.Last30Days, m.width-6)
	}
}
