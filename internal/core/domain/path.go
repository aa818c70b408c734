package domain

import "strings"

// Database path segments used by the index. Listing URLs are classified
// by these segments when filtering to primary sources.
const (
	casesPathSegment       = "/cases/"
	legislationPathSegment = "/legis/"
	journalsPathSegment    = "/journals/"
)

// IsJournalPath reports whether the URL path points into a journal or
// commentary database. Journal entries are secondary sources and are
// never emitted, regardless of the requested kind.
func IsJournalPath(path string) bool {
	return strings.Contains(strings.ToLower(path), journalsPathSegment)
}

// PathMatchesKind reports whether the URL path is consistent with the
// requested document kind: case requests keep only case-database paths,
// legislation requests keep only legislation-database paths.
func PathMatchesKind(path string, kind DocumentKind) bool {
	p := strings.ToLower(path)
	switch kind {
	case KindCase:
		return strings.Contains(p, casesPathSegment)
	case KindLegislation:
		return strings.Contains(p, legislationPathSegment)
	default:
		return false
	}
}
