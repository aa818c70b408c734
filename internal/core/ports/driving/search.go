package driving

import (
	"context"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
)

// SearchService provides legal-index search to external actors.
type SearchService interface {
	// Search queries the index and returns filtered, citation-annotated
	// records in listing order. An empty result is not an error.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchRecord, error)
}
