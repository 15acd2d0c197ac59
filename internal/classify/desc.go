package classify

import "strings"

// Builtin wrapper names in descriptors. Pointer, slice and map use the
// punctuation Go spells them with; everything else is the qualified name of
// a wrapper from the container package.
const (
	NamePointer = "*"
	NameSlice   = "[]"
	NameMap     = "map"

	NameOption        = "container.Option"
	NameShared        = "container.Shared"
	NameSharedAtomic  = "container.SharedAtomic"
	NameWeak          = "container.Weak"
	NameMutexed       = "container.Mutexed"
	NameRwMutexed     = "container.RwMutexed"
	NameDeque         = "container.Deque"
	NameLinkedSeq     = "container.LinkedSeq"
	NamePriorityQueue = "container.PriorityQueue"
	NameResult        = "container.Result"
	NameOrderedMap    = "container.OrderedMap"
	NameHashSet       = "container.HashSet"
	NameOrderedSet    = "container.OrderedSet"
	NameTagged        = "container.Tagged"
)

// TypeDesc is a normalized declared-type descriptor: a name plus generic
// arguments, recursively. It is the only type information classification
// consumes; how it was produced (go/types, a test literal) does not matter.
type TypeDesc struct {
	Name string
	Args []TypeDesc
}

// Desc builds a descriptor; a convenience for call sites and tests.
func Desc(name string, args ...TypeDesc) TypeDesc {
	return TypeDesc{Name: name, Args: args}
}

// Ptr wraps d in one level of pointer indirection.
func Ptr(d TypeDesc) TypeDesc {
	return TypeDesc{Name: NamePointer, Args: []TypeDesc{d}}
}

// Slice wraps d in a slice.
func Slice(d TypeDesc) TypeDesc {
	return TypeDesc{Name: NameSlice, Args: []TypeDesc{d}}
}

// Map builds a map descriptor from key and value descriptors.
func Map(key, value TypeDesc) TypeDesc {
	return TypeDesc{Name: NameMap, Args: []TypeDesc{key, value}}
}

// IsZero reports whether the descriptor is empty.
func (d TypeDesc) IsZero() bool {
	return d.Name == "" && len(d.Args) == 0
}

// Equal reports structural equality of two descriptors.
func (d TypeDesc) Equal(other TypeDesc) bool {
	if d.Name != other.Name || len(d.Args) != len(other.Args) {
		return false
	}

	for i := range d.Args {
		if !d.Args[i].Equal(other.Args[i]) {
			return false
		}
	}

	return true
}

// String returns the Go-like spelling of the descriptor.
func (d TypeDesc) String() string {
	switch d.Name {
	case NamePointer:
		if len(d.Args) == 1 {
			return "*" + d.Args[0].String()
		}

		return "*"
	case NameSlice:
		if len(d.Args) == 1 {
			return "[]" + d.Args[0].String()
		}

		return "[]"
	case NameMap:
		if len(d.Args) == 2 {
			return "map[" + d.Args[0].String() + "]" + d.Args[1].String()
		}

		return "map"
	default:
		if len(d.Args) == 0 {
			return d.Name
		}

		parts := make([]string, len(d.Args))
		for i, a := range d.Args {
			parts[i] = a.String()
		}

		return d.Name + "[" + strings.Join(parts, ", ") + "]"
	}
}
