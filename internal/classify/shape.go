package classify

import "lens-generator/internal/common"

// Shape classifies a declared type's wrapper structure.
type Shape int

const (
	ShapeUnknown Shape = iota

	ShapePlain
	ShapeOptional
	ShapeIndirection
	ShapeShared
	ShapeSequence
	ShapeHashMapping
	ShapeOrderedMapping
	ShapeHashSet
	ShapeOrderedSet
	ShapeDeque
	ShapeLinkedSeq
	ShapePriorityQueue
	ShapeResult
	ShapeMutexGuarded
	ShapeRwGuarded
	ShapeWeakRef
	ShapeTagged

	// One level of outer/inner wrapper nesting merges into these.
	ShapeOptionalOfIndirection
	ShapeIndirectionOfOptional
	ShapeOptionalOfShared
	ShapeSharedOfOptional
	ShapeOptionalOfSequence
	ShapeSequenceOfOptional
	ShapeOptionalOfHashMapping
	ShapeHashMappingOfOptional
	ShapeSharedOfMutexGuarded
	ShapeSharedOfRwGuarded

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapePlain:
		return "plain"
	case ShapeOptional:
		return "optional"
	case ShapeIndirection:
		return "indirection"
	case ShapeShared:
		return "shared"
	case ShapeSequence:
		return "sequence"
	case ShapeHashMapping:
		return "hash_mapping"
	case ShapeOrderedMapping:
		return "ordered_mapping"
	case ShapeHashSet:
		return "hash_set"
	case ShapeOrderedSet:
		return "ordered_set"
	case ShapeDeque:
		return "deque"
	case ShapeLinkedSeq:
		return "linked_sequence"
	case ShapePriorityQueue:
		return "priority_queue"
	case ShapeResult:
		return "result"
	case ShapeMutexGuarded:
		return "mutex_guarded"
	case ShapeRwGuarded:
		return "rw_guarded"
	case ShapeWeakRef:
		return "weak_ref"
	case ShapeTagged:
		return "tagged"
	case ShapeOptionalOfIndirection:
		return "optional_of_indirection"
	case ShapeIndirectionOfOptional:
		return "indirection_of_optional"
	case ShapeOptionalOfShared:
		return "optional_of_shared"
	case ShapeSharedOfOptional:
		return "shared_of_optional"
	case ShapeOptionalOfSequence:
		return "optional_of_sequence"
	case ShapeSequenceOfOptional:
		return "sequence_of_optional"
	case ShapeOptionalOfHashMapping:
		return "optional_of_hash_mapping"
	case ShapeHashMappingOfOptional:
		return "hash_mapping_of_optional"
	case ShapeSharedOfMutexGuarded:
		return "shared_of_mutex_guarded"
	case ShapeSharedOfRwGuarded:
		return "shared_of_rw_guarded"
	default:
		return common.UnknownStr
	}
}

// IsNested returns true for the merged outer/inner combination shapes.
func (s Shape) IsNested() bool {
	return s >= ShapeOptionalOfIndirection && s <= ShapeSharedOfRwGuarded
}

// HasIndexParam returns true for shapes whose element access takes an
// index parameter.
func (s Shape) HasIndexParam() bool {
	switch s {
	case ShapeSequence, ShapeDeque, ShapeLinkedSeq, ShapeSequenceOfOptional, ShapeOptionalOfSequence:
		return true
	default:
		return false
	}
}

// HasKeyParam returns true for shapes whose element access takes a key
// parameter.
func (s Shape) HasKeyParam() bool {
	switch s {
	case ShapeHashMapping, ShapeOrderedMapping, ShapeHashMappingOfOptional, ShapeOptionalOfHashMapping:
		return true
	default:
		return false
	}
}
