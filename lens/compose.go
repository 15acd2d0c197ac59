package lens

import (
	"lens-generator/flavor"
)

// Compose chains two accessors left to right: the result routes from a's
// root through the intermediate value to b's target. The result flavor
// follows flavor.Compose; undefined pairings (mixing the read and write
// families, or a consuming second leg) are rejected with
// flavor.ErrUndefinedComposition.
//
// Absence short-circuits: when the first leg reports absent, the second leg
// is never invoked. Each composed body dispatches directly on the legs'
// results; there is no generic option-chaining layer in between.
func Compose[R, M, V any](a Accessor[R, M], b Accessor[M, V]) (Accessor[R, V], error) {
	tag, err := flavor.Compose(a.tag, b.tag)
	if err != nil {
		return Accessor[R, V]{}, err
	}

	switch tag {
	case flavor.Readable:
		ag, bg := a.fns.ref, b.fns.ref

		return NewReadable(func(r *R) *V {
			return bg(ag(r))
		}), nil

	case flavor.Writable:
		ag, bg := a.fns.ref, b.fns.ref

		return NewWritable(func(r *R) *V {
			return bg(ag(r))
		}), nil

	case flavor.FailableReadable:
		ag, bg := a.readLeg(), b.readLeg()

		return NewFailableReadable(func(r *R) *V {
			mid := ag(r)
			if mid == nil {
				return nil
			}

			return bg(mid)
		}), nil

	case flavor.FailableWritable:
		ag, bg := a.writeLeg(), b.writeLeg()

		return NewFailableWritable(func(r *R) *V {
			mid := ag(r)
			if mid == nil {
				return nil
			}

			return bg(mid)
		}), nil

	case flavor.Owned:
		return composeOwned(a, b), nil

	case flavor.FailableOwned:
		return composeFailableOwned(a, b), nil

	default:
		// flavor.Compose never yields case flavors.
		return Accessor[R, V]{}, flavor.ErrUndefinedComposition
	}
}

// composeOwned handles Owned∘Owned and Owned∘Readable: both legs are total
// and the first consumes the root.
func composeOwned[R, M, V any](a Accessor[R, M], b Accessor[M, V]) Accessor[R, V] {
	take := a.fns.own

	if b.tag == flavor.Owned {
		bTake := b.fns.own

		return NewOwned(func(r R) V {
			return bTake(take(r))
		})
	}

	bg := b.fns.ref

	return NewOwned(func(r R) V {
		mid := take(r)
		return *bg(&mid)
	})
}

// composeFailableOwned handles the consuming compositions where either leg
// may report absence.
func composeFailableOwned[R, M, V any](a Accessor[R, M], b Accessor[M, V]) Accessor[R, V] {
	aTake := a.ownLeg()

	if bTake := b.ownLeg(); bTake != nil {
		return NewFailableOwned(func(r R) (V, bool) {
			mid, ok := aTake(r)
			if !ok {
				var zero V
				return zero, false
			}

			return bTake(mid)
		})
	}

	bg := b.readLeg()

	return NewFailableOwned(func(r R) (V, bool) {
		mid, ok := aTake(r)
		if !ok {
			var zero V
			return zero, false
		}

		ref := bg(&mid)
		if ref == nil {
			var zero V
			return zero, false
		}

		return *ref, true
	})
}

// Then is Compose for pairings already known to be legal, e.g. in generated
// code where the flavor algebra was checked at generation time. It panics on
// an undefined pairing.
func Then[R, M, V any](a Accessor[R, M], b Accessor[M, V]) Accessor[R, V] {
	composed, err := Compose(a, b)
	if err != nil {
		panic("lens: " + err.Error())
	}

	return composed
}
