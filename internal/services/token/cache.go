package token

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/logger"
)

// Config holds the credentials for the token exchange.
type Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scope        string
}

// refresh is one in-flight token exchange. Waiters block on done and
// then read cred/err, which are written exactly once before done is
// closed.
type refresh struct {
	done chan struct{}
	cred *Credential
	err  error
}

// Cache holds a single cached credential and collapses concurrent
// refreshes into one exchange. Construct one per process.
type Cache struct {
	cfg    Config
	client *http.Client
	now    func() time.Time

	mu       sync.Mutex
	cred     *Credential
	inflight *refresh
}

// NewCache creates a credential cache. A nil client falls back to a
// default 30s-timeout client inside Exchange.
func NewCache(cfg Config, client *http.Client) *Cache {
	return &Cache{
		cfg:    cfg,
		client: client,
		now:    time.Now,
	}
}

// Get returns a valid credential, refreshing it if the cached one is
// absent or about to expire. Concurrent callers with no valid cache
// share a single exchange and observe the same credential or the same
// error. Failures are never cached.
func (c *Cache) Get(ctx context.Context) (*Credential, error) {
	c.mu.Lock()
	if c.cred.ValidAt(c.now()) {
		cred := c.cred
		c.mu.Unlock()
		return cred, nil
	}

	if r := c.inflight; r != nil {
		c.mu.Unlock()
		return await(ctx, r)
	}

	r := &refresh{done: make(chan struct{})}
	c.inflight = r
	c.mu.Unlock()

	go c.run(r)

	return await(ctx, r)
}

// run performs the exchange and publishes the result. The in-flight
// slot is cleared on both success and failure so later callers can
// retry.
func (c *Cache) run(r *refresh) {
	cred, err := Exchange(context.Background(), c.client, c.cfg.TokenURL, c.cfg.ClientID, c.cfg.ClientSecret, c.cfg.Scope)

	c.mu.Lock()
	if err == nil {
		c.cred = cred
	}
	c.inflight = nil
	c.mu.Unlock()

	if err != nil {
		logger.Error("token refresh failed", "error", err)
	} else {
		logger.Debug("token refreshed", "expiresAt", cred.ExpiresAt)
	}

	r.cred = cred
	r.err = err
	close(r.done)
}

// await blocks until the shared refresh completes or the caller's
// context is canceled.
func await(ctx context.Context, r *refresh) (*Credential, error) {
	select {
	case <-r.done:
		return r.cred, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate drops the cached credential. The next Get starts a fresh
// exchange.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.cred = nil
	c.mu.Unlock()
}
