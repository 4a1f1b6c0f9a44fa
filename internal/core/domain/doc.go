// Package domain defines the core business entities for Alexandria.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Event: An unsigned, addressable publication event description
//   - Tag: An ordered key/value(s) pair attached to an event
//   - Coordinate: The (kind, authorKey, slug) identity of an addressable event
//   - Metadata: Structured attributes extracted from a document or section
//   - Section: A node in a document's heading tree
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
