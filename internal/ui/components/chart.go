// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/ui/styles"
)

// RenderTotalChart creates a single-series ASCII line chart of daily totals.
func RenderTotalChart(daily []models.DailyRow, width, height int, caption string) string {
	if len(daily) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	data := make([]float64, len(daily))
	for i, row := range daily {
		data[i] = row.TotalGB
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// RenderUsageChart creates a three-series chart of priority, standard and
// non-billable daily usage.
func RenderUsageChart(daily []models.DailyRow, width, height int, caption string) string {
	if len(daily) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	priority := make([]float64, len(daily))
	standard := make([]float64, len(daily))
	nonBillable := make([]float64, len(daily))
	for i, row := range daily {
		priority[i] = row.PriorityGB
		standard[i] = row.StandardGB
		nonBillable[i] = row.NonBillableGB
	}

	graph := asciigraph.PlotMany([][]float64{priority, standard, nonBillable},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(
			asciigraph.Orange,
			asciigraph.Blue,
			asciigraph.Green,
		),
	)

	legend := RenderLegend([]LegendItem{
		{Label: "Priority", Color: styles.PriorityGB},
		{Label: "Standard", Color: styles.StandardGB},
		{Label: "Non-billable", Color: styles.NonBillableGB},
	})

	return lipgloss.JoinVertical(lipgloss.Left, graph, "", legend)
}

// RenderSparkline creates a compact inline sparkline of daily totals.
func RenderSparkline(daily []models.DailyRow, width int) string {
	if len(daily) == 0 || width <= 0 {
		return ""
	}

	sparkChars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	maxVal := 0.0
	for _, row := range daily {
		if row.TotalGB > maxVal {
			maxVal = row.TotalGB
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	step := float64(len(daily)) / float64(width)
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && int(float64(i)*step) < len(daily); i++ {
		val := daily[int(float64(i)*step)].TotalGB
		level := int((val / maxVal) * float64(len(sparkChars)-1))
		if level >= len(sparkChars) {
			level = len(sparkChars) - 1
		}
		if level < 0 {
			level = 0
		}
		result.WriteRune(sparkChars[level])
	}

	return result.String()
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}

// RenderLegend creates a chart legend.
func RenderLegend(items []LegendItem) string {
	var parts []string
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "  ")
}
