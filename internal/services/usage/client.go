package usage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/logger"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/services/token"
)

// UpstreamError reports a non-success response from the data-usage
// endpoint. The upstream status code and body are kept verbatim so
// callers can surface them unchanged.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("usage query failed (status %d): %s", e.StatusCode, e.Body)
}

// queryRequest is the upstream data-usage query body.
type queryRequest struct {
	ServiceLineNumbers []string `json:"serviceLineNumbers"`
}

// Client queries the upstream data-usage API using credentials from a
// token cache.
type Client struct {
	usageURL string
	client   *http.Client
	tokens   *token.Cache
}

// NewClient creates a usage client. A nil http.Client falls back to a
// default 30s-timeout client.
func NewClient(usageURL string, client *http.Client, tokens *token.Cache) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		usageURL: usageURL,
		client:   client,
		tokens:   tokens,
	}
}

// QueryRaw fetches usage for one service line and returns both the
// decoded response and the raw body.
func (c *Client) QueryRaw(ctx context.Context, serviceLine string) (*models.UsageResponse, []byte, error) {
	if serviceLine == "" {
		return nil, nil, fmt.Errorf("service line number is empty")
	}

	cred, err := c.tokens.Get(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to obtain credential: %w", err)
	}

	payload, err := json.Marshal(queryRequest{ServiceLineNumbers: []string{serviceLine}})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode usage request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.usageURL, bytes.NewReader(payload))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create usage request: %w", err)
	}
	req.Header.Set("Authorization", cred.TokenType+" "+cred.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("usage request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read usage response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var usageResp models.UsageResponse
	if err := json.Unmarshal(body, &usageResp); err != nil {
		return nil, nil, fmt.Errorf("failed to parse usage response: %w", err)
	}

	logger.Debug("usage query succeeded", "serviceLine", serviceLine, "bytes", len(body))
	return &usageResp, body, nil
}

// Query fetches usage for one service line and builds its dashboard as
// of now.
func (c *Client) Query(ctx context.Context, serviceLine string, now time.Time) (*models.Dashboard, error) {
	resp, _, err := c.QueryRaw(ctx, serviceLine)
	if err != nil {
		return nil, err
	}
	return BuildDashboard(resp, now)
}
