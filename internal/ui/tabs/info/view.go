package info

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/ui/styles"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderConfigCard())
	sections = append(sections, m.renderQueryCard())
	sections = append(sections, m.renderAboutCard())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration and application information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderConfigCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"))
	rows = append(rows, "")

	if m.config != nil {
		rows = append(rows, m.renderRow("Token URL", m.config.TokenURL, cardWidth))
		rows = append(rows, m.renderRow("Usage URL", m.config.UsageURL, cardWidth))
		rows = append(rows, m.renderRow("HTTP timeout", m.config.HTTPTimeout.String(), cardWidth))
		rows = append(rows, m.renderRow("Listen address", m.config.ListenAddr, cardWidth))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderQueryCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Last query"))
	rows = append(rows, "")

	if d := m.state.Dashboard(); d != nil {
		rows = append(rows, m.renderRow("Service line", d.ServiceLineNumber, cardWidth))
		rows = append(rows, m.renderRow("Account", d.AccountNumber, cardWidth))
		rows = append(rows, m.renderRow("Upstream updated", d.LastUpdated, cardWidth))
		rows = append(rows, m.renderRow("Fetched", m.state.FetchedAt().Format("2006-01-02 15:04:05"), cardWidth))
	} else {
		rows = append(rows, styles.HelpStyle.Render("No query run yet"))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderAboutCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About"))
	rows = append(rows, "")
	rows = append(rows, styles.HelpStyle.Render(version.Info()))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRow(label, value string, cardWidth int) string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary).Width(18)

	// Clip long values (URLs mostly) to the card interior.
	maxValue := max(cardWidth-24, 16)
	value = ansi.Truncate(value, maxValue, "…")

	return fmt.Sprintf("%s%s", labelStyle.Render(label), styles.TableCellStyle.Render(value))
}

func (m *Model) cardWidth() int {
	w := m.width - 6
	if w < 50 {
		w = 50
	}
	if w > 80 {
		w = 80
	}
	return w
}
