// Package match provides fuzzy identifier matching for diagnostics: when
// a policy file names a type or member the analyzer never saw, the
// closest known name is suggested alongside the error.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers before comparison
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the best-scoring suggestion from a candidate list
package match
