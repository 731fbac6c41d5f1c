// Package services provides service orchestration for the dashboard.
package services

import (
	"context"
	"net/http"
	"time"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/config"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/services/token"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/services/usage"
)

// Manager wires the token cache and usage client together and is the
// single query surface for the UI and the HTTP server.
type Manager struct {
	tokens *token.Cache
	usage  *usage.Client
	now    func() time.Time
}

// NewManager creates a service manager from the loaded configuration.
func NewManager(cfg *config.Config) *Manager {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	tokens := token.NewCache(token.Config{
		TokenURL:     cfg.TokenURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scope:        cfg.Scope,
	}, httpClient)

	return &Manager{
		tokens: tokens,
		usage:  usage.NewClient(cfg.UsageURL, httpClient, tokens),
		now:    time.Now,
	}
}

// Query fetches usage for a service line and returns its dashboard.
func (m *Manager) Query(ctx context.Context, serviceLine string) (*models.Dashboard, error) {
	return m.usage.Query(ctx, serviceLine, m.now())
}

// QueryRaw fetches usage for a service line and returns the upstream
// body untouched.
func (m *Manager) QueryRaw(ctx context.Context, serviceLine string) ([]byte, error) {
	_, raw, err := m.usage.QueryRaw(ctx, serviceLine)
	return raw, err
}

// InvalidateToken drops the cached credential so the next query
// performs a fresh exchange.
func (m *Manager) InvalidateToken() {
	m.tokens.Invalidate()
}

// Close releases manager resources. Nothing is held open today; the
// method keeps the shutdown path uniform for main.
func (m *Manager) Close() error {
	return nil
}
