package info

import (
	"strings"
	"testing"
	"time"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/app"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		TokenURL:    "https://auth.example.com/oauth/token",
		UsageURL:    "https://api.example.com/usage/query",
		HTTPTimeout: 30 * time.Second,
		ListenAddr:  ":8080",
	}
}

func TestViewShowsEndpoints(t *testing.T) {
	m := New(app.NewState(), testConfig())
	m.SetSize(100, 40)
	view := m.View()

	for _, want := range []string{"Token URL", "Usage URL", "HTTP timeout", ":8080"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewNoConfig(t *testing.T) {
	m := New(app.NewState(), nil)
	m.SetSize(100, 40)

	if !strings.Contains(m.View(), "Configuration not loaded") {
		t.Error("expected fallback when config is nil")
	}
}

func TestViewNoQueryYet(t *testing.T) {
	m := New(app.NewState(), testConfig())
	m.SetSize(100, 40)

	if !strings.Contains(m.View(), "No query run yet") {
		t.Error("expected last-query placeholder before any query")
	}
}
