package components

import (
	"strings"
	"testing"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
)

func sampleDaily() []models.DailyRow {
	return []models.DailyRow{
		{Date: "2024-02-01", PriorityGB: 1.5, StandardGB: 2.0, NonBillableGB: 0.25, TotalGB: 3.75},
		{Date: "2024-02-02", PriorityGB: 0.5, StandardGB: 1.0, NonBillableGB: 0, TotalGB: 1.5},
		{Date: "2024-02-03", PriorityGB: 3.0, StandardGB: 4.0, NonBillableGB: 1.0, TotalGB: 8.0},
	}
}

func TestRenderTotalChartEmpty(t *testing.T) {
	out := RenderTotalChart(nil, 40, 8, "daily")
	if !strings.Contains(out, "No data available") {
		t.Errorf("expected empty-state message, got %q", out)
	}
}

func TestRenderUsageChartLegend(t *testing.T) {
	out := RenderUsageChart(sampleDaily(), 40, 8, "daily")

	for _, label := range []string{"Priority", "Standard", "Non-billable"} {
		if !strings.Contains(out, label) {
			t.Errorf("legend missing %q", label)
		}
	}
}

func TestRenderSparkline(t *testing.T) {
	out := RenderSparkline(sampleDaily(), 3)
	if got := len([]rune(out)); got != 3 {
		t.Errorf("sparkline length = %d, want 3", got)
	}

	if RenderSparkline(nil, 10) != "" {
		t.Error("expected empty sparkline for no data")
	}
}

func TestRenderDailyTable(t *testing.T) {
	peak := "2024-02-03"
	out := RenderDailyTable(sampleDaily(), &peak)

	for _, want := range []string{"Date", "Priority", "2024-02-01", "8.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

func TestRenderDailyTableEmpty(t *testing.T) {
	out := RenderDailyTable(nil, nil)
	if !strings.Contains(out, "No daily data") {
		t.Errorf("expected empty-state message, got %q", out)
	}
}

func TestRenderCycleCards(t *testing.T) {
	peak := "2024-02-03"
	amount := 5.0
	price := 10.0
	s := &models.CycleSummary{
		TotalGB:     13.25,
		AvgPerDayGB: 4.42,
		PeakDayGB:   8.0,
		PeakDayDate: &peak,
		Overage:     &models.Overage{OverageAmountGB: &amount, OveragePrice: &price},
		Daily:       sampleDaily(),
	}

	out := RenderCycleCards(s, 80)

	for _, want := range []string{"13.25 GB", "Total usage", "Avg per day", "2024-02-03", "Overage: 5.00 GB"} {
		if !strings.Contains(out, want) {
			t.Errorf("cards missing %q", want)
		}
	}
}

func TestRenderCycleCardsNil(t *testing.T) {
	out := RenderCycleCards(nil, 80)
	if !strings.Contains(out, "No billing cycle data") {
		t.Errorf("expected empty-state message, got %q", out)
	}
}

func TestRenderWindowCardsNoPeak(t *testing.T) {
	out := RenderWindowCards(models.WindowSummary{TotalGB: 1.5, AvgPerDayGB: 1.5}, 80)
	if !strings.Contains(out, "—") {
		t.Errorf("expected placeholder peak, got %q", out)
	}
}
