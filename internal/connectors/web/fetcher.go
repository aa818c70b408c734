package web

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driven"
	"github.com/ozlaw/austlii-mcp/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.DocumentFetcher = (*Fetcher)(nil)

const (
	// DefaultTimeout bounds one document download. Judgments and
	// scanned PDFs run large, so this is deliberately looser than the
	// index search ceiling.
	DefaultTimeout = 60 * time.Second

	// maxDocumentBytes caps a single download.
	maxDocumentBytes = 64 << 20

	userAgent = "austlii-mcp/0.1"
)

// Config holds fetcher settings.
type Config struct {
	// Timeout bounds a single fetch. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Fetcher downloads documents from arbitrary http(s) URLs.
type Fetcher struct {
	http *http.Client
}

// NewFetcher creates a document fetcher. The zero Config selects defaults.
func NewFetcher(cfg Config) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		http: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the resource and returns its bytes with the declared
// content type. The URL is validated here even when the caller already
// did: a malformed value is rejected with *domain.FetchError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*domain.RawDocument, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, &domain.FetchError{URL: rawURL, Err: err}
	}

	logger.Debug("fetching document: %s", rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, &domain.FetchError{URL: rawURL, Err: err}
	}

	return &domain.RawDocument{
		URL:      rawURL,
		MIMEType: resp.Header.Get("Content-Type"),
		Content:  body,
	}, nil
}

// validateURL requires an absolute http(s) URL.
func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return domain.ErrInvalidURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.ErrInvalidURL
	}
	return nil
}
