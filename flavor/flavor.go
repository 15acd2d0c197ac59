// Package flavor defines the closed set of accessor capability classes and
// the pairwise composition rules between them.
//
// A flavor tells what an accessor can do with its root: read it, mutate it,
// consume it by value, or extract/embed a tagged-union payload. Failable
// flavors report absence instead of guaranteeing a result. The composition
// table is the single source of truth for which accessor chains are legal;
// both the runtime lens package and the code generator consult it.
package flavor

import (
	"errors"
	"fmt"
)

type Enum int

const (
	_ Enum = iota // skip zero value, use it as a default (invalid) value for Enum

	Readable
	Writable
	FailableReadable
	FailableWritable
	Owned
	FailableOwned
	CaseReadable
	CaseWritable

	// Total is a constant that represents the total number of flavors defined
	Total = int(iota)
)

// ErrUndefinedComposition is returned when two flavors have no defined
// composition, e.g. a read-family leg chained with a write-family leg.
var ErrUndefinedComposition = errors.New("undefined flavor composition")

// Family groups flavors by the capability they ultimately grant.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyRead
	FamilyWrite
	FamilyOwn
)

// String returns a human-readable flavor name.
func (e Enum) String() string {
	switch e {
	case Readable:
		return "readable"
	case Writable:
		return "writable"
	case FailableReadable:
		return "failable_readable"
	case FailableWritable:
		return "failable_writable"
	case Owned:
		return "owned"
	case FailableOwned:
		return "failable_owned"
	case CaseReadable:
		return "case_readable"
	case CaseWritable:
		return "case_writable"
	default:
		return "unknown"
	}
}

// Suffix returns the generated-name suffix for the flavor.
// These suffixes are a stable interface: callers write code against the
// generated constructor names.
func (e Enum) Suffix() string {
	switch e {
	case Readable:
		return "R"
	case Writable:
		return "W"
	case FailableReadable:
		return "Fr"
	case FailableWritable:
		return "Fw"
	case Owned:
		return "O"
	case FailableOwned:
		return "Fo"
	case CaseReadable:
		return "CaseR"
	case CaseWritable:
		return "CaseW"
	default:
		return ""
	}
}

// Family returns the capability family of the flavor.
func (e Enum) Family() Family {
	switch e {
	case Readable, FailableReadable, CaseReadable:
		return FamilyRead
	case Writable, FailableWritable, CaseWritable:
		return FamilyWrite
	case Owned, FailableOwned:
		return FamilyOwn
	default:
		return FamilyUnknown
	}
}

// IsFailable returns true if the flavor reports absence instead of
// guaranteeing a result. Case flavors are failable: extraction misses
// whenever the union holds a different case.
func (e Enum) IsFailable() bool {
	switch e {
	case FailableReadable, FailableWritable, FailableOwned, CaseReadable, CaseWritable:
		return true
	default:
		return false
	}
}

// IsCase returns true for the tagged-union flavors that carry an embed
// constructor alongside the extractor.
func (e Enum) IsCase() bool {
	return e == CaseReadable || e == CaseWritable
}

// IsOwned returns true for the value-consuming flavors.
func (e Enum) IsOwned() bool {
	return e == Owned || e == FailableOwned
}

// IsValid reports whether e is one of the defined flavors.
func (e Enum) IsValid() bool {
	return e > 0 && int(e) <= Total
}

// Compose returns the flavor of the accessor obtained by chaining an
// accessor of flavor a with an accessor of flavor b (a first, b second).
//
// Rules:
//   - read∘read within one family stays in that family; the result is
//     failable iff either leg is failable.
//   - Writable legs compose with Writable legs the same way. A write-family
//     result additionally requires both legs to grant mutation.
//   - Owned and FailableOwned may only appear as the first leg: they consume
//     the root, after which the second leg works on the produced value.
//   - A case flavor degrades to the plain failable flavor of its family when
//     composed; the embed capability does not survive chaining.
//   - Mixing the read family with the write family is undefined and rejected.
func Compose(a, b Enum) (Enum, error) {
	if !a.IsValid() || !b.IsValid() {
		return 0, fmt.Errorf("%w: invalid flavor pair (%s, %s)", ErrUndefinedComposition, a, b)
	}

	// Owned legs consume the root, so they cannot follow a reference leg.
	if b.IsOwned() && !a.IsOwned() {
		return 0, fmt.Errorf("%w: owned flavor %s may only be the first leg", ErrUndefinedComposition, b)
	}

	if a.IsOwned() {
		return composeOwnedFirst(a, b)
	}

	fa, fb := a.Family(), b.Family()
	if fa != fb {
		return 0, fmt.Errorf("%w: cannot chain %s with %s", ErrUndefinedComposition, a, b)
	}

	failable := a.IsFailable() || b.IsFailable()

	switch fa {
	case FamilyRead:
		if failable {
			return FailableReadable, nil
		}

		return Readable, nil
	case FamilyWrite:
		if failable {
			return FailableWritable, nil
		}

		return Writable, nil
	default:
		return 0, fmt.Errorf("%w: cannot chain %s with %s", ErrUndefinedComposition, a, b)
	}
}

// composeOwnedFirst handles compositions whose first leg consumes the root.
// The second leg may be any flavor except a write-family one: there is no
// place for the mutation to land once the intermediate value has been moved.
func composeOwnedFirst(a, b Enum) (Enum, error) {
	if b.Family() == FamilyWrite {
		return 0, fmt.Errorf("%w: cannot mutate through consuming leg %s", ErrUndefinedComposition, a)
	}

	if a.IsFailable() || b.IsFailable() {
		return FailableOwned, nil
	}

	return Owned, nil
}
