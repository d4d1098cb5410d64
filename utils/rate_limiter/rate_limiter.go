// Package rate_limiter spaces outbound feed requests per upstream host.
// Several configured sources can live on the same platform, so the spacing
// key is the host of the fetched URL rather than the source.
package rate_limiter

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HostRateLimiter hands out one request slot per interval per host. The
// first request to a host goes through immediately; later ones wait out
// the remaining gap.
type HostRateLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	byHost   map[string]*rate.Limiter
}

func NewHostRateLimiter(interval time.Duration) *HostRateLimiter {
	return &HostRateLimiter{
		interval: interval,
		byHost:   make(map[string]*rate.Limiter),
	}
}

// WaitForHost blocks until the host of urlStr may be contacted again, or
// until ctx ends. URLs without a host cannot be keyed and are rejected.
func (h *HostRateLimiter) WaitForHost(ctx context.Context, urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return err
	}
	if parsed.Host == "" {
		return fmt.Errorf("rate limit key needs a host, got %q", urlStr)
	}
	return h.limiterFor(parsed.Host).Wait(ctx)
}

func (h *HostRateLimiter) limiterFor(host string) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()

	limiter, ok := h.byHost[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(h.interval), 1)
		h.byHost[host] = limiter
	}
	return limiter
}
