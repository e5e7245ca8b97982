package knowledge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// StatusError is returned when the backend answers with a non-200 status.
// The code is kept so callers can distinguish rate limiting and credential
// problems from plain failures.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("knowledge api error: status %d, body: %s", e.Code, e.Body)
}

// Client talks to the knowledge-base service over its minimal HTTP contract.
type Client struct {
	BaseURL string
	Client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Client: &http.Client{
			// 30s for full resource completion, 15s to first response header.
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				ResponseHeaderTimeout: 15 * time.Second,
			},
		},
	}
}

// Health probes service liveness. Used only to seed the availability flag
// optimistically, never as a hard precondition for retrieval.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var res HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ContextQuote asks for the single best-matching passage for the given
// context. A non-200 status (including 404 when nothing clears the
// similarity threshold) comes back as a *StatusError.
func (c *Client) ContextQuote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	var res QuoteResponse
	if err := c.do(ctx, http.MethodPost, "/api/quote/v1", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MatchPhilosopher scores the onboarding answers against each philosopher
// profile and returns the best match.
func (c *Client) MatchPhilosopher(ctx context.Context, req *MatchRequest) (*MatchResponse, error) {
	var res MatchResponse
	if err := c.do(ctx, http.MethodPost, "/api/match/v1", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Philosophers lists all philosopher profiles.
func (c *Client) Philosophers(ctx context.Context) ([]Philosopher, error) {
	var res PhilosophersResponse
	if err := c.do(ctx, http.MethodGet, "/api/philosophers/v1", nil, &res); err != nil {
		return nil, err
	}
	return res.Philosophers, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("knowledge request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
