// Package billing is the narrow contract with the external payment and
// subscription provider. Payment state lives at the provider; the app only
// creates and cancels subscriptions and mirrors the result locally.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/CyrilCartoux/watch-pros-sub004/config"
)

const requestTimeout = 10 * time.Second

// PlanSeats is the number of concurrent active listings each plan allows.
var PlanSeats = map[string]int{
	"basic": 5,
	"pro":   25,
	"elite": 100,
}

// ProviderSubscription is the provider's view of a subscription, as returned
// by its create endpoint.
type ProviderSubscription struct {
	ID               string    `json:"id"`
	Plan             string    `json:"plan"`
	Status           string    `json:"status"`
	CurrentPeriodEnd time.Time `json:"current_period_end"`
}

// Client talks to the billing provider over HTTP with a bearer API key.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a billing client from configuration.
func NewClient(cfg config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BillingURL, "/"),
		apiKey:  cfg.BillingAPIKey,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// BaseURL returns the provider's base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// CreateSubscription opens a subscription for the given customer reference
// (the marketplace user ID) on the given plan.
func (c *Client) CreateSubscription(ctx context.Context, customerRef, plan string) (*ProviderSubscription, error) {
	body, status, err := c.do(ctx, http.MethodPost, "/v1/subscriptions", map[string]any{
		"customer_ref": customerRef,
		"plan":         plan,
	})
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("billing: create subscription: provider returned %d: %s", status, strings.TrimSpace(string(body)))
	}
	var sub ProviderSubscription
	if err := json.Unmarshal(body, &sub); err != nil {
		return nil, fmt.Errorf("billing: decode subscription response: %w", err)
	}
	return &sub, nil
}

// CancelSubscription cancels the provider-side subscription. A 404 from the
// provider is treated as success — the subscription is gone either way.
func (c *Client) CancelSubscription(ctx context.Context, providerID string) error {
	body, status, err := c.do(ctx, http.MethodDelete, "/v1/subscriptions/"+providerID, nil)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return nil
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("billing: cancel subscription: provider returned %d: %s", status, strings.TrimSpace(string(body)))
	}
	return nil
}

// do sends a JSON request and buffers the full response body.
// A network-level failure is returned as a non-nil error; HTTP-level failures
// are signalled only via the returned status code.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("billing: encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("billing: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("billing: request to provider failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("billing: reading provider response: %w", err)
	}
	return raw, resp.StatusCode, nil
}
