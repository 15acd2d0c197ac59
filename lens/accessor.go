package lens

import (
	"lens-generator/flavor"
)

// Accessor is a reusable route from a root of type R to a value of type V,
// carrying exactly one capability flavor. The zero value is invalid; build
// accessors through the New* constructors, composition, or an adapter.
type Accessor[R, V any] struct {
	tag flavor.Enum
	fns *fnTable[R, V]
}

// fnTable holds the function matching the accessor's tag. Constructors are
// the only writers; exactly the slots implied by the tag are ever set, and
// the table is never mutated afterwards.
type fnTable[R, V any] struct {
	ref    func(*R) *V      // Readable, Writable
	tryRef func(*R) *V      // failable and case flavors; nil means absent
	own    func(R) V        // Owned
	tryOwn func(R) (V, bool) // FailableOwned
	embed  func(V) R        // case flavors only
}

// NewReadable builds a total read accessor from a getter that never fails.
func NewReadable[R, V any](get func(*R) *V) Accessor[R, V] {
	mustFn("NewReadable", get != nil)
	return Accessor[R, V]{tag: flavor.Readable, fns: &fnTable[R, V]{ref: get}}
}

// NewWritable builds a total read/write accessor.
func NewWritable[R, V any](get func(*R) *V) Accessor[R, V] {
	mustFn("NewWritable", get != nil)
	return Accessor[R, V]{tag: flavor.Writable, fns: &fnTable[R, V]{ref: get}}
}

// NewFailableReadable builds a read accessor whose getter returns nil when
// the value is absent.
func NewFailableReadable[R, V any](get func(*R) *V) Accessor[R, V] {
	mustFn("NewFailableReadable", get != nil)
	return Accessor[R, V]{tag: flavor.FailableReadable, fns: &fnTable[R, V]{tryRef: get}}
}

// NewFailableWritable builds a read/write accessor whose getter returns nil
// when the value is absent.
func NewFailableWritable[R, V any](get func(*R) *V) Accessor[R, V] {
	mustFn("NewFailableWritable", get != nil)
	return Accessor[R, V]{tag: flavor.FailableWritable, fns: &fnTable[R, V]{tryRef: get}}
}

// NewOwned builds an accessor that consumes the root and yields the value.
func NewOwned[R, V any](take func(R) V) Accessor[R, V] {
	mustFn("NewOwned", take != nil)
	return Accessor[R, V]{tag: flavor.Owned, fns: &fnTable[R, V]{own: take}}
}

// NewFailableOwned builds a consuming accessor that may report absence.
func NewFailableOwned[R, V any](take func(R) (V, bool)) Accessor[R, V] {
	mustFn("NewFailableOwned", take != nil)
	return Accessor[R, V]{tag: flavor.FailableOwned, fns: &fnTable[R, V]{tryOwn: take}}
}

// NewCaseReadable builds a union-case accessor: extract yields the payload
// when the union holds the matching case (nil otherwise), and embed rebuilds
// the full union value from a payload.
func NewCaseReadable[R, V any](extract func(*R) *V, embed func(V) R) Accessor[R, V] {
	mustFn("NewCaseReadable", extract != nil && embed != nil)
	return Accessor[R, V]{tag: flavor.CaseReadable, fns: &fnTable[R, V]{tryRef: extract, embed: embed}}
}

// NewCaseWritable is NewCaseReadable with mutation capability on the
// extracted payload.
func NewCaseWritable[R, V any](extract func(*R) *V, embed func(V) R) Accessor[R, V] {
	mustFn("NewCaseWritable", extract != nil && embed != nil)
	return Accessor[R, V]{tag: flavor.CaseWritable, fns: &fnTable[R, V]{tryRef: extract, embed: embed}}
}

// Flavor returns the accessor's capability flavor.
func (a Accessor[R, V]) Flavor() flavor.Enum {
	return a.tag
}

// IsValid reports whether the accessor was built by a constructor.
func (a Accessor[R, V]) IsValid() bool {
	return a.fns != nil && a.tag.IsValid()
}

// Get returns a read pointer to the value. Only total read/write flavors
// support it; any other flavor panics.
func (a Accessor[R, V]) Get(root *R) *V {
	switch a.tag {
	case flavor.Readable, flavor.Writable:
		return a.fns.ref(root)
	default:
		panic("lens: Get on " + a.tag.String() + " accessor")
	}
}

// GetMut returns a mutable pointer to the value. Only the total writable
// flavor supports it; any other flavor panics.
func (a Accessor[R, V]) GetMut(root *R) *V {
	if a.tag != flavor.Writable {
		panic("lens: GetMut on " + a.tag.String() + " accessor")
	}

	return a.fns.ref(root)
}

// TryGet returns a read pointer to the value, or nil when absent. Total
// flavors always report present; consuming flavors report absent (they have
// no reference to give).
func (a Accessor[R, V]) TryGet(root *R) *V {
	switch a.tag {
	case flavor.Readable, flavor.Writable:
		return a.fns.ref(root)
	case flavor.FailableReadable, flavor.FailableWritable, flavor.CaseReadable, flavor.CaseWritable:
		return a.fns.tryRef(root)
	default:
		return nil
	}
}

// TryGetMut returns a mutable pointer to the value, or nil when absent or
// when the flavor grants no mutation.
func (a Accessor[R, V]) TryGetMut(root *R) *V {
	switch a.tag {
	case flavor.Writable:
		return a.fns.ref(root)
	case flavor.FailableWritable, flavor.CaseWritable:
		return a.fns.tryRef(root)
	default:
		return nil
	}
}

// Take consumes the root and returns the value. Only the total owned flavor
// supports it; any other flavor panics.
func (a Accessor[R, V]) Take(root R) V {
	if a.tag != flavor.Owned {
		panic("lens: Take on " + a.tag.String() + " accessor")
	}

	return a.fns.own(root)
}

// TryTake consumes the root and returns the value, or reports absence.
// Reference flavors report absent.
func (a Accessor[R, V]) TryTake(root R) (V, bool) {
	switch a.tag {
	case flavor.Owned:
		return a.fns.own(root), true
	case flavor.FailableOwned:
		return a.fns.tryOwn(root)
	default:
		var zero V
		return zero, false
	}
}

// Embed rebuilds a full union value from a payload. Only case flavors
// support it; any other flavor panics.
func (a Accessor[R, V]) Embed(value V) R {
	if !a.tag.IsCase() {
		panic("lens: Embed on " + a.tag.String() + " accessor")
	}

	return a.fns.embed(value)
}

// readLeg returns the read function with nil-for-absent semantics,
// regardless of whether the flavor is total or failable. Nil for flavors
// that cannot give a reference.
func (a Accessor[R, V]) readLeg() func(*R) *V {
	switch a.tag {
	case flavor.Readable, flavor.Writable:
		return a.fns.ref
	case flavor.FailableReadable, flavor.FailableWritable, flavor.CaseReadable, flavor.CaseWritable:
		return a.fns.tryRef
	default:
		return nil
	}
}

// writeLeg is readLeg restricted to mutation-granting flavors.
func (a Accessor[R, V]) writeLeg() func(*R) *V {
	switch a.tag {
	case flavor.Writable:
		return a.fns.ref
	case flavor.FailableWritable, flavor.CaseWritable:
		return a.fns.tryRef
	default:
		return nil
	}
}

// ownLeg returns the consuming function with ok-for-present semantics.
func (a Accessor[R, V]) ownLeg() func(R) (V, bool) {
	switch a.tag {
	case flavor.Owned:
		own := a.fns.own
		return func(r R) (V, bool) { return own(r), true }
	case flavor.FailableOwned:
		return a.fns.tryOwn
	default:
		return nil
	}
}

func mustFn(ctor string, ok bool) {
	if !ok {
		panic("lens: " + ctor + " requires non-nil functions")
	}
}
