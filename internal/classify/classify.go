package classify

// Classified is the result of classifying one declared type.
type Classified struct {
	// Shape is the wrapper structure of the declared type.
	Shape Shape
	// Inner is the payload type the shape wraps. For nested combination
	// shapes it is the innermost payload; for Plain it is the declared type
	// itself; for a shape whose nesting was too deep to merge it is the
	// immediate (opaque) argument.
	Inner TypeDesc
	// Key is set for mapping shapes: the key type of the element parameter.
	Key *TypeDesc
	// Atomic is set for shared-ownership shapes backed by an atomic owner
	// count. Non-atomic sharing may expose conditional mutation; atomic
	// sharing follows the same rule but is safe to alias across goroutines.
	Atomic bool
	// Declared is the original descriptor, kept for diagnostics.
	Declared TypeDesc
}

// Classify determines the wrapper shape of a declared type descriptor.
// It is pure and deterministic: equal descriptors classify equally. Exactly
// one level of outer/inner nesting is merged into the combination shapes;
// anything deeper keeps the outer shape with an opaque inner descriptor.
func Classify(d TypeDesc) Classified {
	switch d.Name {
	case NamePointer:
		return classifySingle(ShapeIndirection, d)
	case NameSlice:
		return classifySingle(ShapeSequence, d)
	case NameOption:
		return classifySingle(ShapeOptional, d)
	case NameShared:
		c := classifySingle(ShapeShared, d)
		return c
	case NameSharedAtomic:
		c := classifySingle(ShapeShared, d)
		c.Atomic = true

		return c
	case NameMap:
		return classifyMapping(ShapeHashMapping, d)
	case NameOrderedMap:
		return classifyMapping(ShapeOrderedMapping, d)
	case NameHashSet:
		return leaf(ShapeHashSet, d)
	case NameOrderedSet:
		return leaf(ShapeOrderedSet, d)
	case NameDeque:
		return leaf(ShapeDeque, d)
	case NameLinkedSeq:
		return leaf(ShapeLinkedSeq, d)
	case NamePriorityQueue:
		return leaf(ShapePriorityQueue, d)
	case NameResult:
		return leaf(ShapeResult, d)
	case NameMutexed:
		return leaf(ShapeMutexGuarded, d)
	case NameRwMutexed:
		return leaf(ShapeRwGuarded, d)
	case NameWeak:
		return leaf(ShapeWeakRef, d)
	case NameTagged:
		return leaf(ShapeTagged, d)
	default:
		return Classified{Shape: ShapePlain, Inner: d, Declared: d}
	}
}

// leaf classifies a single-argument wrapper that never merges with its
// argument's own shape.
func leaf(shape Shape, d TypeDesc) Classified {
	c := Classified{Shape: shape, Declared: d}

	if len(d.Args) >= 1 {
		c.Inner = d.Args[0]
	}

	return c
}

// classifySingle classifies a single-argument wrapper, merging with the
// argument's shape when the pair is one of the defined combinations.
func classifySingle(outer Shape, d TypeDesc) Classified {
	if len(d.Args) != 1 {
		return Classified{Shape: outer, Declared: d}
	}

	arg := d.Args[0]
	inner := Classify(arg)

	merged, ok := mergeNested(outer, inner.Shape)
	if !ok {
		return Classified{Shape: outer, Inner: arg, Declared: d}
	}

	c := Classified{Shape: merged, Inner: inner.Inner, Key: inner.Key, Declared: d}

	// Shared-of-X and X-of-Shared keep the atomicity of the shared layer.
	if inner.Shape == ShapeShared || outer == ShapeShared {
		c.Atomic = inner.Atomic
	}

	return c
}

// classifyMapping classifies a two-argument mapping wrapper by its value
// type, special-casing an optional value into the merged combination.
func classifyMapping(outer Shape, d TypeDesc) Classified {
	if len(d.Args) != 2 {
		return Classified{Shape: outer, Declared: d}
	}

	key, value := d.Args[0], d.Args[1]

	if outer == ShapeHashMapping && value.Name == NameOption && len(value.Args) == 1 {
		return Classified{
			Shape:    ShapeHashMappingOfOptional,
			Inner:    value.Args[0],
			Key:      &key,
			Declared: d,
		}
	}

	return Classified{Shape: outer, Inner: value, Key: &key, Declared: d}
}

// mergeNested maps an outer shape plus the immediate inner shape to a
// combination shape. Anything outside this table stays unmerged.
func mergeNested(outer, inner Shape) (Shape, bool) {
	switch outer {
	case ShapeOptional:
		switch inner {
		case ShapeIndirection:
			return ShapeOptionalOfIndirection, true
		case ShapeShared:
			return ShapeOptionalOfShared, true
		case ShapeSequence:
			return ShapeOptionalOfSequence, true
		case ShapeHashMapping:
			return ShapeOptionalOfHashMapping, true
		}
	case ShapeIndirection:
		if inner == ShapeOptional {
			return ShapeIndirectionOfOptional, true
		}
	case ShapeShared:
		switch inner {
		case ShapeOptional:
			return ShapeSharedOfOptional, true
		case ShapeMutexGuarded:
			return ShapeSharedOfMutexGuarded, true
		case ShapeRwGuarded:
			return ShapeSharedOfRwGuarded, true
		}
	case ShapeSequence:
		if inner == ShapeOptional {
			return ShapeSequenceOfOptional, true
		}
	}

	return ShapeUnknown, false
}
