// Package container provides the wrapper types the lens generator
// understands: optionality, shared ownership, weak references, lock-guarded
// cells, ordered collections, and a success/failure holder.
//
// Each wrapper is a plain generic value with no hidden global state. The
// generator classifies member types against these wrappers by name and
// synthesizes accessors that unwrap them; user code is free to use them
// directly as well.
package container
