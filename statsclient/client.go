// Package statsclient talks to the dashboard's stats endpoint.
package statsclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mcdash/playerstats/core/concurrency"
	"github.com/mcdash/playerstats/core/preset"
)

const (
	defaultTimeout  = 10 * time.Second
	concurrencyPath = "stats/players/concurrency"

	// MaxBodyBytes caps the size of a stats response.
	MaxBodyBytes = 8 << 20

	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-ID"
)

// ErrUnexpectedStatus is returned for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Query is a single concurrency request.
type Query struct {
	From          time.Time
	To            time.Time
	BucketMinutes int
}

// QueryFor builds the query of a preset window.
func QueryFor(p preset.Preset, now time.Time) Query {
	w := p.Range(now)
	return Query{From: w.From, To: w.To, BucketMinutes: p.BucketMinutes()}
}

// Values encodes the query parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("from", strconv.FormatInt(q.From.UnixMilli(), 10))
	v.Set("to", strconv.FormatInt(q.To.UnixMilli(), 10))
	v.Set("bucket", strconv.Itoa(q.BucketMinutes))
	return v
}

type Option func(*Client)

// Client fetches aggregated player samples.
type Client struct {
	baseURL  string
	username string
	password string
	timeout  time.Duration
	client   *http.Client
	breaker  *Breaker
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithBreaker routes every request through the given circuit breaker.
func WithBreaker(b *Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

// New creates a client for the dashboard API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoint returns the full request URL of a query.
func (c *Client) Endpoint(q Query) string {
	base := strings.TrimRight(c.baseURL, "/")
	return fmt.Sprintf("%s/%s?%s", base, concurrencyPath, q.Values().Encode())
}

// FetchConcurrency performs one request and decodes the sample array.
func (c *Client) FetchConcurrency(ctx context.Context, q Query) ([]concurrency.Sample, error) {
	if c.breaker == nil {
		return c.fetch(ctx, q)
	}
	return c.breaker.Execute(func() ([]concurrency.Sample, error) {
		return c.fetch(ctx, q)
	})
}

func (c *Client) fetch(ctx context.Context, q Query) ([]concurrency.Sample, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint(q), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	samples, err := concurrency.DecodeSamples(body)
	if err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}
	return samples, nil
}
