// Package kernel provides the shared domain primitives of the dispatch core.
//
// It currently contains a single building block:
//   - UUID: an immutable identifier value object used by every aggregate
//     (routes, stops, orders, employees)
//
// The zero value of each primitive is deliberately invalid; instances must be
// obtained through the package constructors so that identifiers flowing
// through the domain are always well-formed.
package kernel
