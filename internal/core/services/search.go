package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/ozlaw/austlii-mcp/internal/core/domain"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driven"
	"github.com/ozlaw/austlii-mcp/internal/core/ports/driving"
	"github.com/ozlaw/austlii-mcp/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService turns raw index listings into filtered,
// citation-annotated search records.
type SearchService struct {
	index driven.IndexClient
}

// NewSearchService creates a new search service.
func NewSearchService(index driven.IndexClient) *SearchService {
	return &SearchService{index: index}
}

// Search queries the index and returns records in listing order.
// The listing's own order already reflects the requested sort mode;
// the service filters and truncates but never re-sorts.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.Normalise()

	sort := opts.Sort.Resolve(query)
	reqID := requestID()
	logger.Request(reqID, "search %q kind=%s sort=%s limit=%d", query, opts.Kind, sort, opts.Limit)

	entries, err := s.index.Search(ctx, query, opts.Limit, sort)
	if err != nil {
		return nil, err
	}

	records := s.filterAndEnrich(entries, opts, reqID)
	if len(records) > opts.Limit {
		records = records[:opts.Limit]
	}

	logger.Request(reqID, "returning %d of %d listed entries", len(records), len(entries))
	return records, nil
}

// filterAndEnrich applies the primary-source filters in order and
// extracts citation metadata from the survivors. Filtered entries are
// dropped silently; only the debug log sees the counts.
func (s *SearchService) filterAndEnrich(
	entries []driven.ListingEntry, opts domain.SearchOptions, reqID string,
) []domain.SearchRecord {
	var records []domain.SearchRecord
	dropped := 0

	for _, entry := range entries {
		u, err := url.Parse(entry.URL)
		if err != nil {
			dropped++
			continue
		}

		// Journal and commentary entries are secondary sources:
		// dropped regardless of the requested kind.
		if domain.IsJournalPath(u.Path) {
			dropped++
			continue
		}
		if !domain.PathMatchesKind(u.Path, opts.Kind) {
			dropped++
			continue
		}

		citation, year := domain.ExtractNeutralCitation(entry.Title)
		jurisdiction := domain.JurisdictionFromPath(u.Path)

		if opts.Jurisdiction != "" && jurisdiction != strings.ToLower(opts.Jurisdiction) {
			dropped++
			continue
		}

		records = append(records, domain.SearchRecord{
			Title:           entry.Title,
			URL:             entry.URL,
			Kind:            opts.Kind,
			NeutralCitation: citation,
			Year:            year,
			Jurisdiction:    jurisdiction,
			Summary:         entry.Summary,
			SourceName:      domain.SourceName,
		})
	}

	if dropped > 0 {
		logger.Request(reqID, "filtered out %d entr(ies)", dropped)
	}
	return records
}

// requestID tags one operation's log lines. Short is enough; these
// correlate lines within a process, not across systems.
func requestID() string {
	return uuid.NewString()[:8]
}
