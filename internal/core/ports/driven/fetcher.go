package driven

import (
	"context"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
)

// DocumentFetcher retrieves raw document bytes from an arbitrary
// http(s) URL.
type DocumentFetcher interface {
	// Fetch downloads the resource and returns its bytes together with
	// the declared content type. Malformed URLs, unreachable hosts and
	// non-2xx responses surface as *domain.FetchError.
	Fetch(ctx context.Context, url string) (*domain.RawDocument, error)
}
