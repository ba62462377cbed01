// Package engine implements the PawsEngine runtime reflection core.
//
// This package contains:
//   - Tagged dynamic value representation (Variant)
//   - Per-type-pair operator evaluation table
//   - Object identity and instance liveness tracking
//   - Class metadata with parent-chain method/property lookup
//   - Type-erased method invocation over natively-typed callables
//   - The global class registry with two-phase startup registration
package engine
