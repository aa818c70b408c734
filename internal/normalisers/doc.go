// Package normalisers groups the text extractors that turn raw fetched
// bytes into plain text. One package per content type, each
// implementing the driven.Extractor port.
package normalisers
