// Package web implements the driven DocumentFetcher port: one HTTP GET
// per document, returning raw bytes plus the declared content type.
// Content classification and text extraction belong to the document
// service and its extractors, not to the fetcher.
package web
