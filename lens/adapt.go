package lens

import (
	"errors"
	"fmt"

	"lens-generator/container"
	"lens-generator/flavor"
)

// ErrUnsupportedAdapter is returned when an accessor's flavor cannot be
// re-targeted through the requested enclosing wrapper.
var ErrUnsupportedAdapter = errors.New("unsupported adapter flavor")

// ViaPtr re-targets an accessor so its root is a pointer to the original
// root. Dereferencing may fail (nil pointer), so total flavors become their
// failable counterparts; the consuming flavors become FailableOwned. Case
// flavors degrade to plain failable access: the embed capability cannot be
// preserved through the extra indirection.
//
// Wherever the pointer dereferences, the adapted accessor agrees with the
// original: ViaPtr(a).TryGet(&p) == a.TryGet(p).
func ViaPtr[T, V any](a Accessor[T, V]) (Accessor[*T, V], error) {
	switch a.tag.Family() {
	case flavor.FamilyRead:
		leg := a.readLeg()

		return NewFailableReadable(func(p **T) *V {
			if p == nil || *p == nil {
				return nil
			}

			return leg(*p)
		}), nil

	case flavor.FamilyWrite:
		leg := a.writeLeg()

		return NewFailableWritable(func(p **T) *V {
			if p == nil || *p == nil {
				return nil
			}

			return leg(*p)
		}), nil

	case flavor.FamilyOwn:
		take := a.ownLeg()

		return NewFailableOwned(func(p *T) (V, bool) {
			if p == nil {
				var zero V
				return zero, false
			}

			return take(*p)
		}), nil

	default:
		return Accessor[*T, V]{}, fmt.Errorf("%w: %s via pointer", ErrUnsupportedAdapter, a.tag)
	}
}

// ViaShared re-targets a read accessor so its root is a Shared handle to
// the original root. A dead or zero handle reports absent. Only the read
// family is supported: mutation through a shared handle needs the
// exclusivity check of ViaSharedMut.
func ViaShared[T, V any](a Accessor[T, V]) (Accessor[container.Shared[T], V], error) {
	if a.tag.Family() != flavor.FamilyRead {
		return Accessor[container.Shared[T], V]{}, fmt.Errorf("%w: %s via shared handle", ErrUnsupportedAdapter, a.tag)
	}

	leg := a.readLeg()

	return NewFailableReadable(func(s *container.Shared[T]) *V {
		root := s.Ref()
		if root == nil {
			return nil
		}

		return leg(root)
	}), nil
}

// ViaSharedMut re-targets a write accessor through a Shared handle. The
// exclusivity test runs at call time: a handle with more than one owner
// reports absent instead of handing out aliased mutation.
func ViaSharedMut[T, V any](a Accessor[T, V]) (Accessor[container.Shared[T], V], error) {
	if a.tag.Family() != flavor.FamilyWrite {
		return Accessor[container.Shared[T], V]{}, fmt.Errorf("%w: %s via exclusive shared handle", ErrUnsupportedAdapter, a.tag)
	}

	leg := a.writeLeg()

	return NewFailableWritable(func(s *container.Shared[T]) *V {
		root := s.MutRef()
		if root == nil {
			return nil
		}

		return leg(root)
	}), nil
}

// ViaSharedAtomic is ViaShared for the atomic-count handle.
func ViaSharedAtomic[T, V any](a Accessor[T, V]) (Accessor[container.SharedAtomic[T], V], error) {
	if a.tag.Family() != flavor.FamilyRead {
		return Accessor[container.SharedAtomic[T], V]{}, fmt.Errorf("%w: %s via shared handle", ErrUnsupportedAdapter, a.tag)
	}

	leg := a.readLeg()

	return NewFailableReadable(func(s *container.SharedAtomic[T]) *V {
		root := s.Ref()
		if root == nil {
			return nil
		}

		return leg(root)
	}), nil
}

// ViaSharedAtomicMut is ViaSharedMut for the atomic-count handle.
func ViaSharedAtomicMut[T, V any](a Accessor[T, V]) (Accessor[container.SharedAtomic[T], V], error) {
	if a.tag.Family() != flavor.FamilyWrite {
		return Accessor[container.SharedAtomic[T], V]{}, fmt.Errorf("%w: %s via exclusive shared handle", ErrUnsupportedAdapter, a.tag)
	}

	leg := a.writeLeg()

	return NewFailableWritable(func(s *container.SharedAtomic[T]) *V {
		root := s.MutRef()
		if root == nil {
			return nil
		}

		return leg(root)
	}), nil
}
