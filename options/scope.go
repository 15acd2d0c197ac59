// Package options defines the generation scope policy: which accessor
// flavors get synthesized for a member or union case.
package options

import (
	"fmt"

	"lens-generator/flavor"
)

type ScopeEnum int

const (
	// ScopeUnset means no annotation at this site; resolution falls through
	// to the enclosing default.
	ScopeUnset ScopeEnum = iota

	// ScopeAll synthesizes every flavor valid for the member's shape.
	ScopeAll
	// ScopeReadable synthesizes only the read flavors.
	ScopeReadable
	// ScopeWritable synthesizes the read and write flavors.
	ScopeWritable
	// ScopeOwned synthesizes the read and consuming flavors.
	ScopeOwned
)

// String returns the annotation spelling of the scope.
func (s ScopeEnum) String() string {
	switch s {
	case ScopeUnset:
		return "unset"
	case ScopeAll:
		return "all"
	case ScopeReadable:
		return "readable"
	case ScopeWritable:
		return "writable"
	case ScopeOwned:
		return "owned"
	default:
		return "unknown"
	}
}

// Parse converts an annotation value to a scope.
func Parse(s string) (ScopeEnum, error) {
	switch s {
	case "all":
		return ScopeAll, nil
	case "readable":
		return ScopeReadable, nil
	case "writable":
		return ScopeWritable, nil
	case "owned":
		return ScopeOwned, nil
	default:
		return ScopeUnset, fmt.Errorf("unknown scope %q (want all, readable, writable or owned)", s)
	}
}

// IsSet reports whether the scope carries an explicit annotation.
func (s ScopeEnum) IsSet() bool {
	return s != ScopeUnset
}

// Allows reports whether the scope permits synthesizing the given flavor.
// Every scope permits reading: an accessor that cannot even read its member
// is useless.
func (s ScopeEnum) Allows(f flavor.Enum) bool {
	switch s {
	case ScopeAll:
		return true
	case ScopeReadable:
		return f.Family() == flavor.FamilyRead
	case ScopeWritable:
		return f.Family() == flavor.FamilyRead || f.Family() == flavor.FamilyWrite
	case ScopeOwned:
		return f.Family() == flavor.FamilyRead || f.Family() == flavor.FamilyOwn
	default:
		return false
	}
}

// Resolve picks the effective scope for one site: the member-level
// annotation wins over the type-level one, which wins over the global
// default; with nothing set anywhere, everything is generated.
func Resolve(member, typeLevel, global ScopeEnum) ScopeEnum {
	for _, s := range []ScopeEnum{member, typeLevel, global} {
		if s.IsSet() {
			return s
		}
	}

	return ScopeAll
}
