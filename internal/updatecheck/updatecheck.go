// Package updatecheck looks up the latest playerstats release and tells
// whether it is newer than the running build.
package updatecheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/mod/semver"
)

const (
	defaultOwner   = "mcdash"
	defaultRepo    = "playerstats"
	defaultTimeout = 5 * time.Second
	defaultBaseURL = "https://api.github.com"

	maxReleaseBytes = 1 << 20
)

// Result describes the outcome of a check.
type Result struct {
	UpdateAvailable bool   `json:"update_available"`
	LatestVersion   string `json:"latest_version"`
	CurrentVersion  string `json:"current_version"`
	ReleaseURL      string `json:"release_url"`
}

type Option func(*Checker)

// Checker queries the releases API.
type Checker struct {
	owner   string
	repo    string
	timeout time.Duration
	baseURL string
	client  *http.Client
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) {
		c.client = client
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *Checker) {
		c.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Checker) {
		c.timeout = timeout
	}
}

// WithRepository checks the releases of owner/repo instead of playerstats.
func WithRepository(owner, repo string) Option {
	return func(c *Checker) {
		c.owner = owner
		c.repo = repo
	}
}

func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:   defaultOwner,
		repo:    defaultRepo,
		timeout: defaultTimeout,
		baseURL: defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}
	return c
}

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release and compares it with current.
// Non-semver builds such as "dev" never report an update.
func (c *Checker) Check(ctx context.Context, current string) (*Result, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", strings.TrimRight(c.baseURL, "/"), c.owner, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("releases API returned status %d", resp.StatusCode)
	}

	var latest release
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReleaseBytes)).Decode(&latest); err != nil {
		return nil, fmt.Errorf("invalid release payload: %w", err)
	}

	return &Result{
		UpdateAvailable: isNewer(current, latest.TagName),
		LatestVersion:   latest.TagName,
		CurrentVersion:  current,
		ReleaseURL:      latest.HTMLURL,
	}, nil
}

func isNewer(current, latest string) bool {
	current = canonical(current)
	latest = canonical(latest)

	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return false
	}

	return semver.Compare(latest, current) > 0
}

func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
