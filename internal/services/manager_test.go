package services

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/config"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/services/token"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/services/usage"
)

// MockRoundTripper allows mocking HTTP responses in tests.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

func testConfig() *config.Config {
	return &config.Config{
		TokenURL:     "https://auth.example.com/token",
		ClientID:     "cid",
		ClientSecret: "csec",
		UsageURL:     "https://usage.example.com/query",
		HTTPTimeout:  5 * time.Second,
	}
}

// newTestManager builds a manager whose HTTP traffic is served by the
// given per-URL handler.
func newTestManager(cfg *config.Config, rt http.RoundTripper) *Manager {
	httpClient := &http.Client{Transport: rt}
	tokens := token.NewCache(token.Config{
		TokenURL:     cfg.TokenURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scope:        cfg.Scope,
	}, httpClient)
	return &Manager{
		tokens: tokens,
		usage:  usage.NewClient(cfg.UsageURL, httpClient, tokens),
		now:    func() time.Time { return time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC) },
	}
}

func TestManagerQuery(t *testing.T) {
	cfg := testConfig()
	mgr := newTestManager(cfg, &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			if req.URL.String() == cfg.TokenURL {
				return &http.Response{
					StatusCode: 200,
					Body:       io.NopCloser(strings.NewReader(`{"access_token":"tok","expires_in":3600}`)),
				}, nil
			}
			return &http.Response{
				StatusCode: 200,
				Body: io.NopCloser(strings.NewReader(`{"content":{"results":[{
					"serviceLineNumber":"SL-00001234","accountNumber":"A1","lastUpdated":"2024-02-15T00:00:00Z",
					"billingCycles":[{"startDate":"2024-02-01","endDate":"2024-03-01",
						"dailyDataUsage":[{"date":"2024-02-10","priorityGB":1}]}]}]}}`)),
			}, nil
		},
	})

	d, err := mgr.Query(context.Background(), "SL-00001234")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if d.CurrentCycle == nil || d.CurrentCycle.TotalGB != 1 {
		t.Errorf("CurrentCycle = %+v", d.CurrentCycle)
	}
}

func TestManagerQueryRawPassthrough(t *testing.T) {
	cfg := testConfig()
	const rawBody = `{"content":{"results":[{"serviceLineNumber":"SL-1","accountNumber":"A","lastUpdated":"x","billingCycles":[]}]},"extra":"kept"}`

	mgr := newTestManager(cfg, &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			if req.URL.String() == cfg.TokenURL {
				return &http.Response{
					StatusCode: 200,
					Body:       io.NopCloser(strings.NewReader(`{"access_token":"tok","expires_in":3600}`)),
				}, nil
			}
			return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(rawBody))}, nil
		},
	})

	raw, err := mgr.QueryRaw(context.Background(), "SL-1")
	if err != nil {
		t.Fatalf("QueryRaw() error = %v", err)
	}
	if string(raw) != rawBody {
		t.Errorf("raw body modified:\n got %s\nwant %s", raw, rawBody)
	}
}

func TestNewManagerClose(t *testing.T) {
	mgr := NewManager(testConfig())
	if err := mgr.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
