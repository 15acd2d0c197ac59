// Package gen provides deterministic Go code generation for accessor
// constructors.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code. Each composite type gets a <type>_lens.go
// file and each union a <type>_case_lens.go file, written next to the
// type's own source.
//
// Codegen patterns:
//   - Direct member address-of (total read and write accessors)
//   - Wrapper unwrapping with nil-for-absent getters
//   - Parameterized element access (index and key constructors)
//   - Consuming accessors that move the member out of the root
//   - Case extract/embed pairs over sealed interface variants
package gen
