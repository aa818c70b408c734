package domain

// SourceName identifies the index every search record originates from.
// There is a single upstream index per deployment.
const SourceName = "austlii"

// DocumentKind selects which class of primary source a search targets.
type DocumentKind string

const (
	// KindCase searches case law databases.
	KindCase DocumentKind = "case"

	// KindLegislation searches legislation databases.
	KindLegislation DocumentKind = "legislation"
)

// Valid reports whether the kind is one of the known values.
func (k DocumentKind) Valid() bool {
	return k == KindCase || k == KindLegislation
}

// SortMode controls the ordering requested from the index.
type SortMode string

const (
	// SortRelevance requests relevance-ranked results.
	SortRelevance SortMode = "relevance"

	// SortDate requests reverse-chronological results.
	SortDate SortMode = "date"

	// SortAuto picks relevance for case-name queries and date otherwise.
	// Date-sorted results for a named-case query tend to surface recent
	// cases that merely cite the target case rather than the case itself.
	SortAuto SortMode = "auto"
)

// Valid reports whether the sort mode is one of the known values.
func (m SortMode) Valid() bool {
	return m == SortRelevance || m == SortDate || m == SortAuto
}

// Resolve collapses SortAuto into a concrete mode for the given query.
// Relevance and date resolve to themselves.
func (m SortMode) Resolve(query string) SortMode {
	if m != SortAuto {
		return m
	}
	if CaseNamePattern.MatchString(query) {
		return SortRelevance
	}
	return SortDate
}

// Search limits. The index renders a single listing page per request,
// so out-of-range limits are clamped rather than rejected.
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

// SearchOptions configures an index search.
type SearchOptions struct {
	// Kind is the requested document class. Required.
	Kind DocumentKind

	// Jurisdiction optionally restricts results to one jurisdiction code.
	Jurisdiction string

	// Limit is the maximum number of results (1..50, default 10).
	Limit int

	// Sort is the requested ordering (default SortAuto).
	Sort SortMode
}

// Normalise applies defaults and clamps out-of-range values.
func (o SearchOptions) Normalise() SearchOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultSearchLimit
	}
	if o.Limit > MaxSearchLimit {
		o.Limit = MaxSearchLimit
	}
	if o.Sort == "" {
		o.Sort = SortAuto
	}
	return o
}

// Validate checks the options for values Normalise cannot repair.
func (o SearchOptions) Validate() error {
	if !o.Kind.Valid() {
		return ErrInvalidInput
	}
	if o.Sort != "" && !o.Sort.Valid() {
		return ErrInvalidInput
	}
	if o.Jurisdiction != "" && !KnownJurisdiction(o.Jurisdiction) {
		return ErrInvalidInput
	}
	return nil
}

// SearchRecord is one matched document from the index listing.
// Title and URL are always non-empty; the remaining fields are extracted
// opportunistically and may be blank.
type SearchRecord struct {
	// Title is the display text of the listing entry.
	Title string

	// URL is the absolute location of the document.
	URL string

	// Kind is fixed per search request, not inferred per record.
	Kind DocumentKind

	// NeutralCitation is the court-assigned citation found in the title,
	// e.g. "[2025] HCA 26". Empty when no citation pattern matched.
	NeutralCitation string

	// Year is the 4-digit year taken from the neutral citation.
	Year string

	// Jurisdiction is the lowercase code derived from the URL path,
	// e.g. "cth", "vic", "nsw".
	Jurisdiction string

	// Summary is the short annotation shown under the listing entry.
	Summary string

	// SourceName identifies the index queried.
	SourceName string
}
