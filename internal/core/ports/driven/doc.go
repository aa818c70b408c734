// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - IndexClient: Queries the legal-document index and parses its listing
//   - DocumentFetcher: Retrieves raw document bytes over HTTP
//   - Extractor: Converts raw HTML or PDF bytes into plain text
//   - OCREngine: Recognises text from image-only PDFs
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
