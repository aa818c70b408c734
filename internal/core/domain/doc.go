// Package domain defines the core business entities for the AustLII
// research tools.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchRecord: One matched document from the index listing
//   - SearchOptions: Parameters for an index search
//   - FetchedDocument: Normalised text produced by document acquisition
//   - The citation/jurisdiction pattern table shared by services
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
