package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLeafShapes(t *testing.T) {
	payload := Desc("shop.Item")

	tests := []struct {
		name string
		desc TypeDesc
		want Shape
	}{
		{"plain named type", payload, ShapePlain},
		{"plain builtin", Desc("string"), ShapePlain},
		{"option", Desc(NameOption, payload), ShapeOptional},
		{"pointer", Ptr(payload), ShapeIndirection},
		{"shared", Desc(NameShared, payload), ShapeShared},
		{"slice", Slice(payload), ShapeSequence},
		{"deque", Desc(NameDeque, payload), ShapeDeque},
		{"linked sequence", Desc(NameLinkedSeq, payload), ShapeLinkedSeq},
		{"priority queue", Desc(NamePriorityQueue, payload), ShapePriorityQueue},
		{"result", Desc(NameResult, payload), ShapeResult},
		{"hash set", Desc(NameHashSet, payload), ShapeHashSet},
		{"ordered set", Desc(NameOrderedSet, payload), ShapeOrderedSet},
		{"mutex guarded", Desc(NameMutexed, payload), ShapeMutexGuarded},
		{"rw guarded", Desc(NameRwMutexed, payload), ShapeRwGuarded},
		{"weak ref", Desc(NameWeak, payload), ShapeWeakRef},
		{"tagged", Desc(NameTagged, payload), ShapeTagged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.desc)
			assert.Equal(t, tt.want, got.Shape)

			if tt.want != ShapePlain {
				assert.True(t, got.Inner.Equal(payload), "inner should be the payload, got %s", got.Inner)
			} else {
				assert.True(t, got.Inner.Equal(tt.desc))
			}
		})
	}
}

func TestClassifyPlainForUnknownWrapper(t *testing.T) {
	d := Desc("some/pkg.Custom", Desc("int"))

	got := Classify(d)
	assert.Equal(t, ShapePlain, got.Shape)
	assert.True(t, got.Inner.Equal(d), "plain keeps the declared type as inner")
}

func TestClassifyAtomicity(t *testing.T) {
	payload := Desc("shop.Item")

	assert.False(t, Classify(Desc(NameShared, payload)).Atomic)
	assert.True(t, Classify(Desc(NameSharedAtomic, payload)).Atomic)

	optShared := Classify(Desc(NameOption, Desc(NameSharedAtomic, payload)))
	assert.Equal(t, ShapeOptionalOfShared, optShared.Shape)
	assert.True(t, optShared.Atomic)
}

func TestClassifyMappings(t *testing.T) {
	key, value := Desc("string"), Desc("shop.Item")

	m := Classify(Map(key, value))
	assert.Equal(t, ShapeHashMapping, m.Shape)
	assert.True(t, m.Inner.Equal(value))
	require.NotNil(t, m.Key)
	assert.True(t, m.Key.Equal(key))

	om := Classify(Desc(NameOrderedMap, key, value))
	assert.Equal(t, ShapeOrderedMapping, om.Shape)
	assert.True(t, om.Inner.Equal(value))
	require.NotNil(t, om.Key)

	// Optional value merges with the hash mapping.
	mo := Classify(Map(key, Desc(NameOption, value)))
	assert.Equal(t, ShapeHashMappingOfOptional, mo.Shape)
	assert.True(t, mo.Inner.Equal(value), "inner is the innermost payload")

	// The ordered mapping has no defined merge; the value stays opaque.
	omo := Classify(Desc(NameOrderedMap, key, Desc(NameOption, value)))
	assert.Equal(t, ShapeOrderedMapping, omo.Shape)
	assert.True(t, omo.Inner.Equal(Desc(NameOption, value)))
}

func TestClassifyNestedCombinations(t *testing.T) {
	payload := Desc("shop.Item")

	tests := []struct {
		name string
		desc TypeDesc
		want Shape
	}{
		{"optional of indirection", Desc(NameOption, Ptr(payload)), ShapeOptionalOfIndirection},
		{"indirection of optional", Ptr(Desc(NameOption, payload)), ShapeIndirectionOfOptional},
		{"optional of shared", Desc(NameOption, Desc(NameShared, payload)), ShapeOptionalOfShared},
		{"shared of optional", Desc(NameShared, Desc(NameOption, payload)), ShapeSharedOfOptional},
		{"optional of sequence", Desc(NameOption, Slice(payload)), ShapeOptionalOfSequence},
		{"sequence of optional", Slice(Desc(NameOption, payload)), ShapeSequenceOfOptional},
		{"optional of hash mapping", Desc(NameOption, Map(Desc("string"), payload)), ShapeOptionalOfHashMapping},
		{"hash mapping of optional", Map(Desc("string"), Desc(NameOption, payload)), ShapeHashMappingOfOptional},
		{"shared of mutex guarded", Desc(NameShared, Desc(NameMutexed, payload)), ShapeSharedOfMutexGuarded},
		{"shared of rw guarded", Desc(NameShared, Desc(NameRwMutexed, payload)), ShapeSharedOfRwGuarded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.desc)
			assert.Equal(t, tt.want, got.Shape, "got %s", got.Shape)
			assert.True(t, got.Inner.Equal(payload), "inner should be the innermost payload, got %s", got.Inner)
			assert.True(t, got.Shape.IsNested())
		})
	}
}

func TestClassifyDeepNestingFallsBackToOuter(t *testing.T) {
	payload := Desc("shop.Item")

	// Option[Option[*T]] merges only one level: the outer shape survives
	// and the inner stays opaque.
	deep := Desc(NameOption, Desc(NameOption, Ptr(payload)))

	got := Classify(deep)
	assert.Equal(t, ShapeOptional, got.Shape)
	assert.True(t, got.Inner.Equal(Desc(NameOption, Ptr(payload))))

	// Pointer to pointer: no defined combination.
	pp := Ptr(Ptr(payload))
	got = Classify(pp)
	assert.Equal(t, ShapeIndirection, got.Shape)
	assert.True(t, got.Inner.Equal(Ptr(payload)))
}

func TestClassifyDeterminism(t *testing.T) {
	descs := []TypeDesc{
		Desc("shop.Item"),
		Desc(NameOption, Ptr(Desc("shop.Item"))),
		Map(Desc("string"), Desc(NameOption, Desc("shop.Item"))),
		Desc(NameShared, Desc(NameMutexed, Desc("int"))),
	}

	for _, d := range descs {
		first := Classify(d)
		second := Classify(d)

		assert.Equal(t, first.Shape, second.Shape)
		assert.True(t, first.Inner.Equal(second.Inner))
		assert.Equal(t, first.Atomic, second.Atomic)
	}
}

func TestDescString(t *testing.T) {
	assert.Equal(t, "*shop.Item", Ptr(Desc("shop.Item")).String())
	assert.Equal(t, "[]int", Slice(Desc("int")).String())
	assert.Equal(t, "map[string]int", Map(Desc("string"), Desc("int")).String())
	assert.Equal(t,
		"container.Option[*shop.Item]",
		Desc(NameOption, Ptr(Desc("shop.Item"))).String())
}
