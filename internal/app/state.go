// Package app implements the main Bubble Tea application with tab-based navigation.
package app

import (
	"sync"
	"time"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
)

// minServiceLineLength is the shortest service line number that enables
// a query. Shorter inputs are treated as incomplete.
const minServiceLineLength = 7

// State holds the shared application state accessed by all tabs.
type State struct {
	mu sync.RWMutex

	serviceLine string
	dashboard   *models.Dashboard
	fetchedAt   time.Time
	loading     bool
	queryErr    string
}

// NewState creates an empty application state.
func NewState() *State {
	return &State{}
}

// SetDashboard stores a fresh query result, clearing any previous error.
func (s *State) SetDashboard(serviceLine string, d *models.Dashboard, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serviceLine = serviceLine
	s.dashboard = d
	s.fetchedAt = fetchedAt
	s.queryErr = ""
	s.loading = false
}

// SetError records a failed query. The previous dashboard is discarded
// so stale data is never shown alongside an error.
func (s *State) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queryErr = msg
	s.dashboard = nil
	s.loading = false
}

// SetLoading marks a query as in flight.
func (s *State) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
	if loading {
		s.queryErr = ""
	}
}

// Dashboard returns the last successful query result, or nil.
func (s *State) Dashboard() *models.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dashboard
}

// ServiceLine returns the service line of the last successful query.
func (s *State) ServiceLine() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.serviceLine
}

// FetchedAt returns when the current dashboard was fetched.
func (s *State) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// Loading reports whether a query is in flight.
func (s *State) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Error returns the last query error message, or "".
func (s *State) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryErr
}

// CanQuery reports whether the given input is a long enough service
// line number to submit.
func CanQuery(input string) bool {
	return len(input) >= minServiceLineLength
}
