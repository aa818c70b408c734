package domain

import (
	"regexp"
	"sort"
	"strings"
)

// Named patterns for citation and jurisdiction extraction. Keeping them
// in one table makes the recognition rules independently testable
// instead of scattering ad hoc string scanning through the services.
var (
	// NeutralCitationPattern matches a court-assigned neutral citation:
	// a bracketed 4-digit year, an uppercase-led court code, and a
	// sequence number, e.g. "[2025] HCA 26".
	NeutralCitationPattern = regexp.MustCompile(`\[(\d{4})\]\s+([A-Z][A-Za-z]*)\s+(\d+)`)

	// CaseNamePattern matches party-versus-party queries such as
	// "Smith v Jones" or "Mabo v. Queensland": capitalised tokens
	// joined by a lone "v" or "v.".
	CaseNamePattern = regexp.MustCompile(`\b[A-Z][\w'&.-]*(?:\s+[A-Z&][\w'&.-]*)*\s+v\.?\s+[A-Z][\w'&.-]*`)

	// paraAnchorPattern matches AustLII pinpoint paragraph anchors
	// such as "para12" in id/name attributes.
	paraAnchorPattern = regexp.MustCompile(`^para(\d+)$`)
)

// jurisdictions enumerates the Australian jurisdiction codes that can
// appear as a database path segment.
var jurisdictions = map[string]struct{}{
	"cth": {},
	"act": {},
	"nsw": {},
	"nt":  {},
	"qld": {},
	"sa":  {},
	"tas": {},
	"vic": {},
	"wa":  {},
}

// KnownJurisdiction reports whether code is a recognised Australian
// jurisdiction code. Matching is case-insensitive.
func KnownJurisdiction(code string) bool {
	_, ok := jurisdictions[strings.ToLower(code)]
	return ok
}

// Jurisdictions returns the known jurisdiction codes in sorted order.
func Jurisdictions() []string {
	codes := make([]string, 0, len(jurisdictions))
	for code := range jurisdictions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ExtractNeutralCitation finds the first neutral citation in the text.
// It returns the citation and its year, or empty strings when no
// citation pattern is present.
func ExtractNeutralCitation(text string) (citation, year string) {
	m := NeutralCitationPattern.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	return m[0], m[1]
}

// JurisdictionFromPath derives the jurisdiction code from a document
// URL path such as "/cgi-bin/viewdoc/au/cases/cth/HCA/2025/26.html".
// It returns the first path segment that is a known jurisdiction code,
// lowercased, or "" when none is present.
func JurisdictionFromPath(path string) string {
	for _, seg := range strings.Split(path, "/") {
		seg = strings.ToLower(seg)
		if _, ok := jurisdictions[seg]; ok {
			return seg
		}
	}
	return ""
}

// ParagraphNumber extracts the paragraph number from a pinpoint anchor
// attribute value such as "para12". The second return is false when the
// value is not a paragraph anchor.
func ParagraphNumber(attr string) (string, bool) {
	m := paraAnchorPattern.FindStringSubmatch(attr)
	if m == nil {
		return "", false
	}
	return m[1], true
}
