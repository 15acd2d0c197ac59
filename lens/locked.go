package lens

import (
	"lens-generator/container"
	"lens-generator/flavor"
)

// Accessors stop at lock-guarded containers: synthesizing member access
// into a guarded payload would hand out a reference that outlives the
// critical section. The helpers below bridge the gap with scoped
// acquisition: reach the container through the accessor, take the guard,
// run the callback, release on every exit path.
//
// Every helper folds all failure modes into a single false: the container
// was absent, or the accessor's flavor does not grant the required
// capability. Chaining through two guarded members takes two calls; lock
// ordering across them is the caller's concern.

// OverLocked reaches a Mutexed container and runs f on its payload under
// the guard. Mutation is allowed, so the accessor must be write-family.
func OverLocked[R, T any](a Accessor[R, container.Mutexed[T]], root *R, f func(*T)) bool {
	if a.tag.Family() != flavor.FamilyWrite {
		return false
	}

	cell := a.TryGetMut(root)
	if cell == nil {
		return false
	}

	cell.With(f)

	return true
}

// LockedValue reaches a Mutexed container through any read- or
// write-family accessor and returns a copy of the payload.
func LockedValue[R, T any](a Accessor[R, container.Mutexed[T]], root *R) (T, bool) {
	cell := a.TryGet(root)
	if cell == nil {
		var zero T
		return zero, false
	}

	return cell.WithValue(), true
}

// OverRwRead reaches an RwMutexed container and runs f on its payload under
// the shared guard. The callback must not mutate the payload.
func OverRwRead[R, T any](a Accessor[R, container.RwMutexed[T]], root *R, f func(*T)) bool {
	cell := a.TryGet(root)
	if cell == nil {
		return false
	}

	cell.ReadWith(f)

	return true
}

// OverRwWrite reaches an RwMutexed container and runs f on its payload
// under the exclusive guard. The accessor must be write-family.
func OverRwWrite[R, T any](a Accessor[R, container.RwMutexed[T]], root *R, f func(*T)) bool {
	if a.tag.Family() != flavor.FamilyWrite {
		return false
	}

	cell := a.TryGetMut(root)
	if cell == nil {
		return false
	}

	cell.WriteWith(f)

	return true
}
