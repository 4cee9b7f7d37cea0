// Package domain defines the core entities for specxtract.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FeatureTuple: One extracted (document, record, pattern, label, value) row
//   - Record: A blank-line delimited chunk of a document's text
//   - DetectorKind / MatchScope: How a detector's match is interpreted
//   - RawDocument: Opaque bytes from a connector
//   - TextPart: Linearised text produced by a normaliser
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
