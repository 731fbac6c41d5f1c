package usage

import (
	"testing"
	"time"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/app"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
)

func testDashboard() *models.Dashboard {
	peak := "2024-02-02"
	return &models.Dashboard{
		ServiceLineNumber: "SL-1234567",
		CurrentCycle: &models.CycleSummary{
			StartDate:   "2024-02-01",
			EndDate:     "2024-03-01",
			PeakDayDate: &peak,
			Daily: []models.DailyRow{
				{Date: "2024-02-01", TotalGB: 1},
				{Date: "2024-02-02", TotalGB: 2},
			},
		},
		Last30Days: models.WindowSummary{
			Daily: []models.DailyRow{{Date: "2024-02-02", TotalGB: 2}},
		},
	}
}

func TestRangeString(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{RangeCurrent, "Current cycle"},
		{RangePrevious, "Previous cycle"},
		{RangeLast30, "Last 30 days"},
		{Range(9), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Range(%d).String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestSelectedDaily(t *testing.T) {
	m := New(app.NewState())
	d := testDashboard()

	daily, peak := m.selectedDaily(d)
	if len(daily) != 2 {
		t.Fatalf("current daily rows = %d, want 2", len(daily))
	}
	if peak == nil || *peak != "2024-02-02" {
		t.Errorf("peak = %v, want 2024-02-02", peak)
	}

	// No previous cycle on this dashboard.
	m.selected = RangePrevious
	daily, peak = m.selectedDaily(d)
	if daily != nil || peak != nil {
		t.Error("expected nil daily and peak for missing previous cycle")
	}

	m.selected = RangeLast30
	daily, _ = m.selectedDaily(d)
	if len(daily) != 1 {
		t.Errorf("window daily rows = %d, want 1", len(daily))
	}
}

func TestDashboardLoadedResetsRange(t *testing.T) {
	state := app.NewState()
	m := New(state)
	m.selected = RangeLast30

	m.Update(app.DashboardLoadedMsg{
		ServiceLine: "SL-1234567",
		Dashboard:   testDashboard(),
		FetchedAt:   time.Now(),
	})

	if m.selected != RangeCurrent {
		t.Errorf("selected = %v, want RangeCurrent after a fresh query", m.selected)
	}
}
