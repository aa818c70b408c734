// Package austlii implements the driven IndexClient port against the
// AustLII SINO search engine.
//
// A search is a single anonymous GET to the sinosrch.cgi endpoint
// scoped to all Australian databases. The rendered HTML listing is
// parsed into ordered entries; filtering and citation enrichment are
// the search service's job, not the connector's.
package austlii
