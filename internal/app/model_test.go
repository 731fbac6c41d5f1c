package app

import (
	"errors"
	"testing"
	"time"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
)

func TestTabIDString(t *testing.T) {
	tests := []struct {
		id   TabID
		want string
	}{
		{TabUsage, "Usage"},
		{TabCycles, "Cycles"},
		{TabInfo, "Info"},
		{TabID(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("TabID(%d).String() = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestModelTabSwitch(t *testing.T) {
	m := NewModel(nil)
	m.SetTabs(make([]Tab, 3))

	m.handleAppMsg(TabSwitchMsg{Tab: TabCycles})
	if m.activeTab != TabCycles {
		t.Errorf("activeTab = %v, want TabCycles", m.activeTab)
	}

	m.switchTab(TabInfo)
	if m.activeTab != TabInfo {
		t.Errorf("activeTab = %v, want TabInfo", m.activeTab)
	}

	// Out-of-range tab IDs are ignored.
	m.switchTab(TabID(9))
	if m.activeTab != TabInfo {
		t.Errorf("activeTab = %v, want TabInfo after out-of-range switch", m.activeTab)
	}
}

func TestModelDashboardLoaded(t *testing.T) {
	m := NewModel(nil)

	d := &models.Dashboard{ServiceLineNumber: "SL-1234567"}
	m.handleAppMsg(DashboardLoadedMsg{
		ServiceLine: "SL-1234567",
		Dashboard:   d,
		FetchedAt:   time.Now(),
	})

	if m.state.Dashboard() != d {
		t.Error("dashboard should be stored in state")
	}
}

func TestModelQueryFailed(t *testing.T) {
	m := NewModel(nil)
	m.state.SetDashboard("SL-1234567", &models.Dashboard{}, time.Now())

	m.handleAppMsg(QueryFailedMsg{ServiceLine: "SL-1234567", Err: errors.New("upstream 500")})

	if m.state.Dashboard() != nil {
		t.Error("dashboard should be cleared after a failed query")
	}
	if m.state.Error() != "upstream 500" {
		t.Errorf("state error = %q", m.state.Error())
	}
}

func TestSubmitQueryGuards(t *testing.T) {
	m := NewModel(nil)

	if cmd := m.submitQuery("short"); cmd != nil {
		t.Error("short service lines should not start a query")
	}

	m.state.SetLoading(true)
	if cmd := m.submitQuery("SL-1234567"); cmd != nil {
		t.Error("no new query while one is in flight")
	}

	m.state.SetLoading(false)
	cmd := m.submitQuery("SL-1234567")
	if cmd == nil {
		t.Fatal("valid service line should start a query")
	}

	msg, ok := cmd().(QueryStartedMsg)
	if !ok {
		t.Fatalf("cmd returned %T, want QueryStartedMsg", cmd())
	}
	if msg.ServiceLine != "SL-1234567" {
		t.Errorf("ServiceLine = %q", msg.ServiceLine)
	}
}

func TestToggleHelp(t *testing.T) {
	m := NewModel(nil)

	m.handleAppMsg(ToggleHelpMsg{})
	if !m.showHelp {
		t.Error("help should be shown after toggle")
	}

	m.handleAppMsg(ToggleHelpMsg{})
	if m.showHelp {
		t.Error("help should be hidden after second toggle")
	}
}
