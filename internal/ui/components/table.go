package components

import (
	"fmt"
	"strings"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/ui/styles"
)

var dailyColumns = []struct {
	title string
	width int
}{
	{"Date", 12},
	{"Priority", 10},
	{"Standard", 10},
	{"Non-bill", 10},
	{"Total", 10},
}

// RenderDailyTable renders daily usage rows as a fixed-width table.
// The peak date row, when present, is highlighted.
func RenderDailyTable(daily []models.DailyRow, peakDate *string) string {
	if len(daily) == 0 {
		return styles.HelpStyle.Render("No daily data")
	}

	var header strings.Builder
	for _, col := range dailyColumns {
		header.WriteString(fmt.Sprintf("%-*s", col.width, col.title))
	}

	lines := []string{styles.TableHeaderStyle.Render(header.String())}

	for _, row := range daily {
		cells := fmt.Sprintf("%-*s%-*s%-*s%-*s%-*s",
			dailyColumns[0].width, row.Date,
			dailyColumns[1].width, formatGB(row.PriorityGB),
			dailyColumns[2].width, formatGB(row.StandardGB),
			dailyColumns[3].width, formatGB(row.NonBillableGB),
			dailyColumns[4].width, formatGB(row.TotalGB),
		)

		if peakDate != nil && row.Date == *peakDate {
			lines = append(lines, styles.TableSelectedStyle.Render(cells))
		} else {
			lines = append(lines, styles.TableCellStyle.Render(cells))
		}
	}

	return strings.Join(lines, "\n")
}

func formatGB(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
