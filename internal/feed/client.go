// Package feed fetches the incidencias.json feed over HTTP.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ortelius/railwatch-board/model"
)

// CacheBustParam is the query parameter appended to every request
const CacheBustParam = "v"

// ErrStatus is returned when the feed server answers with a non-200 status
var ErrStatus = errors.New("unexpected feed status")

// Fetcher is what the dashboard needs from a feed source
type Fetcher interface {
	Fetch(ctx context.Context) (*model.Feed, error)
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithClock sets the time source used for the cache-busting parameter.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// Client fetches the feed from a fixed URL
type Client struct {
	feedURL    string
	httpClient *http.Client
	now        func() time.Time
	userAgent  string
}

// NewClient creates a feed client. No overall request timeout is set; only the
// transport's dial and TLS handshake limits apply.
func NewClient(feedURL string, opts ...Option) (*Client, error) {
	if _, err := url.Parse(feedURL); err != nil {
		return nil, fmt.Errorf("invalid feed url %q: %w", feedURL, err)
	}

	c := &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 90 * time.Second,
				}).DialContext,
				MaxIdleConns:          10,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		now:       time.Now,
		userAgent: "railwatch-board/1.0",
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL returns the request URL with the cache-busting parameter for the current time
func (c *Client) URL() string {
	u, err := url.Parse(c.feedURL)
	if err != nil {
		return c.feedURL
	}
	q := u.Query()
	q.Set(CacheBustParam, strconv.FormatInt(c.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String()
}

// Fetch downloads and decodes the feed
func (c *Client) Fetch(ctx context.Context) (*model.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snip, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("%w: %d %s", ErrStatus, resp.StatusCode, string(snip))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	return Decode(body)
}

// Decode parses a feed body. An absent incident list decodes to an empty one.
func Decode(body []byte) (*model.Feed, error) {
	var f model.Feed
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}
	if f.Incidencias == nil {
		f.Incidencias = []model.Incident{}
	}
	return &f, nil
}

var _ Fetcher = (*Client)(nil)
