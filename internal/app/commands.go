package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/services"
)

// queryTimeout bounds a single dashboard query, including the token
// exchange when the cached credential has expired.
const queryTimeout = 60 * time.Second

// queryDashboardCmd returns a command that runs a usage query and
// reports the result as a DashboardLoadedMsg or QueryFailedMsg.
func queryDashboardCmd(mgr *services.Manager, serviceLine string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		dashboard, err := mgr.Query(ctx, serviceLine)
		if err != nil {
			return QueryFailedMsg{ServiceLine: serviceLine, Err: err}
		}

		return DashboardLoadedMsg{
			ServiceLine: serviceLine,
			Dashboard:   dashboard,
			FetchedAt:   time.Now(),
		}
	}
}
