// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with go/types to build a
// canonical in-memory model of composites (structs whose members get
// accessor constructors) and tagged unions (sealed interfaces with
// struct variants).
//
// Key types:
//   - TypeID: package import path + type name
//   - Composite: struct with members, their descriptors and tag scopes
//   - Union: sealed interface with its cases and payload styles
package analyze
