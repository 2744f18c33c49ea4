package sheet

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the spreadsheet CSV export endpoint.
	BaseURL = "https://docs.google.com/spreadsheets"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// RateLimit keeps tab fetches polite: 2 requests per second.
	RateLimit = 2.0
)

// Client is a rate-limited HTTP client for fetching spreadsheet tabs as CSV.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	sheetID    string
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

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a client for one spreadsheet.
func NewClient(sheetID string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		sheetID:    sheetID,
		baseURL:    BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// exportURL builds the CSV export URL for one tab.
func (c *Client) exportURL(gid string) string {
	return fmt.Sprintf("%s/d/%s/export?format=csv&gid=%s",
		c.baseURL, url.PathEscape(c.sheetID), url.QueryEscape(gid))
}

// FetchTab downloads one tab as CSV and parses it into a Table.
func (c *Client) FetchTab(ctx context.Context, name, gid string) (*Table, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.exportURL(gid), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for tab %s: %w", name, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: tab %s: %v", ErrNetworkError, name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Tab: name, StatusCode: resp.StatusCode}
	}

	tbl, err := ParseCSV(name, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: tab %s: %v", ErrInvalidResponse, name, err)
	}
	return tbl, nil
}
