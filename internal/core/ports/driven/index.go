package driven

import (
	"context"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
)

// ListingEntry is one parsed entry from the index result listing,
// before filtering and citation enrichment.
type ListingEntry struct {
	// Title is the entry's display text.
	Title string

	// URL is the entry's target, made absolute against the index host.
	URL string

	// Summary is the adjacent short-form annotation, if any.
	Summary string
}

// IndexClient retrieves and parses the legal-document index listing.
type IndexClient interface {
	// Search issues one index query and returns the parsed listing in
	// page order. sort must be a concrete mode (relevance or date);
	// SortAuto is resolved by the calling service. An empty or
	// unparsable listing yields an empty slice, not an error.
	Search(ctx context.Context, query string, limit int, sort domain.SortMode) ([]ListingEntry, error)
}
