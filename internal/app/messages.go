package app

import (
	"time"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
)

// QueryStartedMsg signals that a usage query has been submitted.
type QueryStartedMsg struct {
	ServiceLine string
}

// DashboardLoadedMsg carries a successful query result.
type DashboardLoadedMsg struct {
	ServiceLine string
	Dashboard   *models.Dashboard
	FetchedAt   time.Time
}

// QueryFailedMsg carries a failed query.
type QueryFailedMsg struct {
	ServiceLine string
	Err         error
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}
