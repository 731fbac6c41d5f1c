// Package token provides bearer credential fetching and caching for the
// upstream billing API.
package token

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// expirySkew renews tokens shortly before their expiry instant to keep
// in-flight requests from racing a dying credential.
const expirySkew = 30 * time.Second

// tokenResponse is the OAuth client-credentials exchange response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope,omitempty"`
}

// Credential is a cached bearer credential with absolute expiry.
type Credential struct {
	AccessToken string
	TokenType   string
	Scope       string
	ExpiresAt   time.Time
}

// ValidAt reports whether the credential is usable at the given
// instant: now plus the renewal skew must still be strictly before the
// expiry instant.
func (c *Credential) ValidAt(now time.Time) bool {
	if c == nil || c.AccessToken == "" {
		return false
	}
	return now.Add(expirySkew).Before(c.ExpiresAt)
}

// AuthError reports a non-success response from the token endpoint.
// The upstream status code and body are preserved.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("token request failed (status %d): %s", e.StatusCode, e.Body)
}

// Exchange performs a client-credentials token exchange against the
// configured token endpoint. Scope is optional and omitted when empty.
func Exchange(ctx context.Context, client *http.Client, tokenURL, clientID, clientSecret, scope string) (*Credential, error) {
	if tokenURL == "" {
		return nil, fmt.Errorf("token URL is empty")
	}

	data := url.Values{}
	data.Set("grant_type", "client_credentials")
	data.Set("client_id", clientID)
	data.Set("client_secret", clientSecret)
	if scope != "" {
		data.Set("scope", scope)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}

	tokenType := tr.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return &Credential{
		AccessToken: tr.AccessToken,
		TokenType:   tokenType,
		Scope:       tr.Scope,
		ExpiresAt:   time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second),
	}, nil
}
