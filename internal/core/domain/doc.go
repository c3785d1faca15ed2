// Package domain defines the core marketplace entities for Vendra.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Listing: A published product listing resolved from the DHT
//   - User: A marketplace account document
//   - ProductRating / SellerRating: Rating documents with aggregation helpers
//   - ObjectPiece / ObjectDescriptor: Content-addressed attachment pieces
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
