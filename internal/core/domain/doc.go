// Package domain defines the core business entities for modelgen.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawSchema: A dialect-agnostic schema node parsed from the input document
//   - Document: The full schema index in declaration order
//   - ResolvedClass: A flattened, fully-typed class model ready for emission
//   - UnionModel: A discriminated one-of/any-of group resolved to a tagged union
//   - Diagnostic: A quality finding with a stable rule tag and configured severity
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
