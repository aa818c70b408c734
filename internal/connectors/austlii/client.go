package austlii

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driven"
	"github.com/ozlaw/austlii-mcp/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.IndexClient = (*Client)(nil)

const (
	// DefaultBaseURL is the public AustLII host.
	DefaultBaseURL = "http://www.austlii.edu.au"

	// searchPath is the SINO search endpoint.
	searchPath = "/cgi-bin/sinosrch.cgi"

	// DefaultTimeout bounds one index request end to end.
	DefaultTimeout = 15 * time.Second

	// maxListingBytes caps how much of a listing page is read. A result
	// page is tens of kilobytes; anything larger is not a listing.
	maxListingBytes = 4 << 20

	// userAgent identifies this client to the index.
	userAgent = "austlii-mcp/" + "0.1"
)

// Config holds index client settings.
type Config struct {
	// BaseURL overrides the index host. Defaults to DefaultBaseURL.
	BaseURL string

	// Timeout bounds a single search request. Defaults to DefaultTimeout.
	Timeout time.Duration

	// RateLimit controls outbound request pacing.
	RateLimit RateLimitConfig
}

// Client queries the SINO index and parses its result listing.
type Client struct {
	base    *url.URL
	http    *http.Client
	limiter *RateLimiter
}

// NewClient creates an index client. The zero Config selects defaults.
func NewClient(cfg Config) (*Client, error) {
	raw := cfg.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		base:    base,
		http:    &http.Client{Timeout: timeout},
		limiter: NewRateLimiter(cfg.RateLimit),
	}, nil
}

// Search issues one boolean query scoped to all Australian databases
// and returns the parsed listing in page order.
func (c *Client) Search(
	ctx context.Context, query string, limit int, sort domain.SortMode,
) ([]driven.ListingEntry, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &domain.TransportError{URL: c.base.String(), Err: err}
	}

	reqURL := c.searchURL(query, limit, sort)
	logger.Debug("index request: %s", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &domain.TransportError{URL: reqURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.TransportError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.TransportError{URL: reqURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxListingBytes))
	if err != nil {
		return nil, &domain.TransportError{URL: reqURL, Err: err}
	}

	entries, err := parseListing(body, c.base)
	if err != nil {
		// An unparsable listing is "no results", not a failure.
		logger.Warn("listing parse failed, treating as empty: %v", err)
		return nil, nil
	}
	return entries, nil
}

// searchURL builds the sinosrch.cgi request: boolean method, free-text
// query, all-Australian database scope, result count, and the sort-view
// directive derived from the resolved sort mode.
func (c *Client) searchURL(query string, limit int, sort domain.SortMode) string {
	params := url.Values{}
	params.Set("method", "boolean")
	params.Set("query", query)
	params.Set("meta", "/au")
	params.Set("results", strconv.Itoa(limit))
	switch sort {
	case domain.SortDate:
		params.Set("view", "date")
	default:
		params.Set("view", "relevance")
	}

	u := *c.base
	u.Path = searchPath
	u.RawQuery = params.Encode()
	return u.String()
}
