package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/ui/styles"
)

// RenderMetricCard renders a single bordered metric: a big value with a
// caption underneath.
func RenderMetricCard(value, label string, width int) string {
	if width < 14 {
		width = 14
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.MetricValueStyle.Render(value),
		styles.MetricLabelStyle.Render(label),
	)

	return styles.CardStyle.Width(width).Render(content)
}

// RenderCycleCards renders the metric card row for one billing cycle.
func RenderCycleCards(s *models.CycleSummary, width int) string {
	if s == nil {
		return styles.HelpStyle.Render("No billing cycle data")
	}

	peak := "—"
	if s.PeakDayDate != nil {
		peak = fmt.Sprintf("%.2f GB on %s", s.PeakDayGB, *s.PeakDayDate)
	}

	cards := []string{
		RenderMetricCard(fmt.Sprintf("%.2f GB", s.TotalGB), "Total usage", cardWidth(width, 4)),
		RenderMetricCard(fmt.Sprintf("%.2f GB", s.AvgPerDayGB), "Avg per day", cardWidth(width, 4)),
		RenderMetricCard(peak, "Peak day", cardWidth(width, 4)),
		RenderMetricCard(fmt.Sprintf("%d", len(s.Daily)), "Days", cardWidth(width, 4)),
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	if overage := renderOverageLine(s.Overage); overage != "" {
		return lipgloss.JoinVertical(lipgloss.Left, row, overage)
	}
	return row
}

// RenderWindowCards renders the metric card row for a rolling window.
func RenderWindowCards(s models.WindowSummary, width int) string {
	peak := "—"
	if s.PeakDayDate != nil {
		peak = fmt.Sprintf("%.2f GB on %s", s.PeakDayGB, *s.PeakDayDate)
	}

	cards := []string{
		RenderMetricCard(fmt.Sprintf("%.2f GB", s.TotalGB), "Total usage", cardWidth(width, 4)),
		RenderMetricCard(fmt.Sprintf("%.2f GB", s.AvgPerDayGB), "Avg per day", cardWidth(width, 4)),
		RenderMetricCard(peak, "Peak day", cardWidth(width, 4)),
		RenderMetricCard(fmt.Sprintf("%d", len(s.Daily)), "Days", cardWidth(width, 4)),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func renderOverageLine(o *models.Overage) string {
	if o == nil || o.OverageAmountGB == nil || *o.OverageAmountGB <= 0 {
		return ""
	}

	line := fmt.Sprintf("Overage: %.2f GB", *o.OverageAmountGB)
	if o.OveragePrice != nil {
		line += fmt.Sprintf(" ($%.2f)", *o.OveragePrice)
	}
	if o.PricePerGB != nil {
		line += fmt.Sprintf(" at $%.2f/GB", *o.PricePerGB)
	}
	return styles.OverageStyle.Render(line)
}

func cardWidth(total, count int) int {
	w := total/count - 2
	if w < 14 {
		w = 14
	}
	return w
}
