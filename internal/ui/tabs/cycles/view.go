package cycles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/ui/components"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/ui/styles"
)

// View renders the cycles tab.
func (m *Model) View() string {
	dashboard := m.state.Dashboard()
	if dashboard == nil {
		return styles.CenterBoth(
			styles.HelpStyle.Render("Run a query to see billing cycles."),
			m.width, m.height,
		)
	}

	var sections []string
	sections = append(sections, styles.TitleStyle.Render("Billing cycles"))
	sections = append(sections, m.renderCycleList(dashboard))

	if dashboard.CurrentCycle != nil && len(dashboard.CurrentCycle.Daily) > 0 {
		sections = append(sections, "")
		sections = append(sections, styles.SubTitleStyle.Render("Current cycle trend"))
		sections = append(sections, components.RenderSparkline(dashboard.CurrentCycle.Daily, max(m.width-12, 20)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderCycleList(d *models.Dashboard) string {
	if len(d.Cycles) == 0 {
		return styles.HelpStyle.Render("No billing cycles reported")
	}

	cardWidth := max(m.width-6, 40)

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Reported cycles"))
	rows = append(rows, "")

	for _, cycle := range d.Cycles {
		line := fmt.Sprintf("%s → %s", cycle.StartDate, cycle.EndDate)

		switch {
		case m.isCurrent(d, cycle):
			total := ""
			if d.CurrentCycle != nil {
				total = fmt.Sprintf("  %.2f GB", d.CurrentCycle.TotalGB)
			}
			rows = append(rows, styles.CycleCurrentStyle.Render("● "+line+total+"  (current)"))
		case m.isPrevious(d, cycle):
			total := ""
			if d.PreviousCycle != nil {
				total = fmt.Sprintf("  %.2f GB", d.PreviousCycle.TotalGB)
			}
			rows = append(rows, styles.TableCellStyle.Render("○ "+line+total))
		default:
			rows = append(rows, styles.HelpStyle.Render("○ "+line))
		}
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) isCurrent(d *models.Dashboard, cycle models.CycleRange) bool {
	return d.CurrentCycle != nil &&
		d.CurrentCycle.StartDate == cycle.StartDate &&
		d.CurrentCycle.EndDate == cycle.EndDate
}

func (m *Model) isPrevious(d *models.Dashboard, cycle models.CycleRange) bool {
	return d.PreviousCycle != nil &&
		d.PreviousCycle.StartDate == cycle.StartDate &&
		d.PreviousCycle.EndDate == cycle.EndDate
}
