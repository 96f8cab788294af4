package billing

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const (
	// Default interval between provider pings.
	defaultHealthInterval = 30 * time.Second
	// Timeout for a single health-check ping.
	healthCheckTimeout = 5 * time.Second
)

// HealthChecker periodically pings the billing provider and maintains an
// in-memory availability flag. The subscriptions handler consults it so that
// subscribe requests fail fast with 503 while the provider is known to be
// down, instead of timing out against it.
type HealthChecker struct {
	client   *Client
	interval time.Duration

	mu           sync.RWMutex
	available    bool
	lastChecked  time.Time
	lastErr      string
	failureCount int

	cancel context.CancelFunc
	done   chan struct{}
}

// NewHealthChecker creates a health checker bound to the given client.
// Call Start() to begin background checking.
func NewHealthChecker(client *Client, interval time.Duration) *HealthChecker {
	if interval <= 0 {
		interval = defaultHealthInterval
	}
	return &HealthChecker{
		client:   client,
		interval: interval,
		// Unknown = assume available so the first requests aren't blocked.
		available: true,
		done:      make(chan struct{}),
	}
}

// Start begins the background health-check loop. It runs an immediate check
// on startup, then repeats at the configured interval. Safe to call once.
func (hc *HealthChecker) Start(ctx context.Context) {
	ctx, hc.cancel = context.WithCancel(ctx)

	go func() {
		defer close(hc.done)

		// Immediate first check so the flag is meaningful before traffic arrives.
		hc.check(ctx)

		ticker := time.NewTicker(hc.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				hc.check(ctx)
			}
		}
	}()
}

// Stop signals the health-check loop to stop and waits for it to finish.
func (hc *HealthChecker) Stop() {
	if hc.cancel != nil {
		hc.cancel()
	}
	<-hc.done
}

// Available reports whether the billing provider is considered reachable.
func (hc *HealthChecker) Available() bool {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.available
}

// Status is a snapshot of the provider's health for the admin API.
type Status struct {
	Available    bool      `json:"available"`
	LastChecked  time.Time `json:"last_checked"`
	LastError    string    `json:"last_error,omitempty"`
	FailureCount int       `json:"failure_count"`
}

// Snapshot returns the current health status.
func (hc *HealthChecker) Snapshot() Status {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return Status{
		Available:    hc.available,
		LastChecked:  hc.lastChecked,
		LastError:    hc.lastErr,
		FailureCount: hc.failureCount,
	}
}

// check pings the provider's health endpoint and updates the flag.
func (hc *HealthChecker) check(ctx context.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, hc.client.BaseURL()+"/healthz", nil)
	if err != nil {
		hc.recordResult(fmt.Errorf("bad url: %w", err))
		return
	}

	resp, err := hc.client.http.Do(req)
	if err != nil {
		hc.recordResult(err)
		return
	}
	_ = resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		hc.recordResult(nil)
	} else {
		hc.recordResult(fmt.Errorf("status %d", resp.StatusCode))
	}
}

// recordResult updates the in-memory status. The provider is marked
// unavailable after 2 consecutive failures, and available again on the first
// success. This avoids flapping on transient single-request failures.
func (hc *HealthChecker) recordResult(err error) {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	hc.lastChecked = time.Now()

	if err == nil {
		if !hc.available {
			slog.Info("billing provider came back online")
		}
		hc.available = true
		hc.failureCount = 0
		hc.lastErr = ""
		return
	}

	hc.failureCount++
	hc.lastErr = err.Error()

	if hc.failureCount >= 2 && hc.available {
		slog.Warn("billing provider marked unavailable",
			"failures", hc.failureCount, "error", err)
		hc.available = false
	}
}
