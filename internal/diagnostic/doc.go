// Package diagnostic provides structured warnings, errors, and
// informational notes for the lens generator.
//
// Key capabilities:
//   - Conflicting scope annotation errors
//   - Policy entries that match no analyzed type or member
//   - Notes on documented access limitations (conditional shared mutation,
//     read-only peek, unmergeable deep nesting)
package diagnostic
