package memos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const defaultTimeout = 30 * time.Second

// Client is the HTTP wrapper for the Memos REST API.
// One Client holds a single authenticated session for the whole run.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithTimeout sets the per-request transport timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRateLimit spaces requests to at most rps per second. Zero disables pacing.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewClient creates a new Memos HTTP client. Every request carries the
// access token as a bearer credential.
func NewClient(baseURL, accessToken string, opts ...ClientOption) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
	httpClient := oauth2.NewClient(context.Background(), src)
	httpClient.Timeout = defaultTimeout

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Probe lists a single memo via GET /api/v1/memos to check that Memos is
// reachable and accepts the token. Only the status code is checked.
func (c *Client) Probe(ctx context.Context) error {
	url := fmt.Sprintf("%s/api/v1/memos?pageSize=%d", c.baseURL, probePageSize)

	resp, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to call memos list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newAPIError("list", resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// CreateMemo creates a new memo via POST /api/v1/memos.
// Memos stamps its own create and update times on the new memo.
func (c *Client) CreateMemo(ctx context.Context, req CreateMemoRequest) (*Memo, error) {
	url := fmt.Sprintf("%s/api/v1/memos", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal create memo request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to call memos create API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError("create", resp)
	}

	// A 200 means the memo exists. An unreadable body only loses its name.
	var memo Memo
	if err := json.NewDecoder(resp.Body).Decode(&memo); err != nil {
		return &Memo{}, nil
	}
	return &memo, nil
}

// PatchTimestamps overrides the create and update times of the memo
// identified by name via PATCH /api/v1/{name}.
func (c *Client) PatchTimestamps(ctx context.Context, name string, req PatchTimestampsRequest) error {
	url := fmt.Sprintf("%s/api/v1/%s", c.baseURL, name)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal patch memo request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPatch, url, body)
	if err != nil {
		return fmt.Errorf("failed to call memos patch API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newAPIError("patch", resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(httpReq)
}

func newAPIError(op string, resp *http.Response) *APIError {
	raw, _ := io.ReadAll(resp.Body)
	return &APIError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(raw)),
	}
}
