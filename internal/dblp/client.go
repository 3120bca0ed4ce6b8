// Package dblp provides a rate-limited client for the DBLP publication
// search API.
package dblp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/bibfix/bibfix/internal/bib"
)

const (
	// BaseURL is the DBLP publication search endpoint.
	BaseURL = "https://dblp.org/search/publ/api"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// DefaultRateLimit is one request per second. DBLP asks clients
	// not to overload its servers; one entry per request is already
	// the natural pace of the fixer.
	DefaultRateLimit = 1.0
)

// Client is a rate-limited HTTP client for the DBLP search API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom endpoint (for testing or mirrors).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithRateLimit sets the request rate in requests per second.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a DBLP search client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query builds the search query for an entry: title plus the first
// canonical author, when one exists.
func Query(title, firstAuthor string) string {
	return strings.TrimSpace(title + " " + firstAuthor)
}

// Search fetches candidate records for a query. The response body is
// BibTeX text; a fresh parse converts it into zero or more candidates.
func (c *Client) Search(ctx context.Context, query string) ([]*bib.Entry, error) {
	body, err := c.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	entries, err := bib.ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return entries, nil
}

// Fetch performs the rate-limited HTTP request and returns the raw
// BibTeX body, letting callers cache responses before parsing.
func (c *Client) Fetch(ctx context.Context, query string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("format", "bib")
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrNetworkError, err)
	}
	return string(data), nil
}
