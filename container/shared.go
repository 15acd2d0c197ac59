package container

import "sync/atomic"

// Shared is a reference-counted handle to a single value. Copies made via
// Clone observe the same payload; MutRef grants mutation only while the
// handle is the sole owner. The count uses a plain integer, so a Shared and
// all its clones must stay on one goroutine; use SharedAtomic to share
// across goroutines. Release drops one owner and marks the payload dead
// when the last owner is gone, which is what Weak handles observe.
type Shared[T any] struct {
	inner *sharedCell[T]
}

type sharedCell[T any] struct {
	value T
	refs  int
	dead  bool
}

// NewShared returns a Shared owning v with a count of one.
func NewShared[T any](v T) Shared[T] {
	return Shared[T]{inner: &sharedCell[T]{value: v, refs: 1}}
}

// Clone returns a new handle to the same payload, bumping the owner count.
func (s Shared[T]) Clone() Shared[T] {
	if s.inner == nil || s.inner.dead {
		return Shared[T]{}
	}

	s.inner.refs++

	return s
}

// Release drops one owner. When the last owner releases, the payload is
// zeroed and marked dead; outstanding Weak handles stop upgrading.
func (s Shared[T]) Release() {
	if s.inner == nil || s.inner.dead {
		return
	}

	s.inner.refs--
	if s.inner.refs <= 0 {
		var zero T
		s.inner.value = zero
		s.inner.dead = true
	}
}

// Ref returns a read pointer to the payload, or nil for a dead/zero handle.
func (s Shared[T]) Ref() *T {
	if s.inner == nil || s.inner.dead {
		return nil
	}

	return &s.inner.value
}

// MutRef returns a mutable pointer only while this handle is the sole
// owner; otherwise nil. Exclusivity is checked at call time.
func (s Shared[T]) MutRef() *T {
	if s.inner == nil || s.inner.dead || s.inner.refs != 1 {
		return nil
	}

	return &s.inner.value
}

// Count returns the current owner count.
func (s Shared[T]) Count() int {
	if s.inner == nil || s.inner.dead {
		return 0
	}

	return s.inner.refs
}

// Downgrade returns a Weak handle to the payload.
func (s Shared[T]) Downgrade() Weak[T] {
	return Weak[T]{inner: s.inner}
}

// SharedAtomic is the cross-goroutine variant of Shared: the owner count is
// an atomic integer, so handles may be cloned and released concurrently.
// Mutation through MutRef still requires external synchronization on the
// payload itself.
type SharedAtomic[T any] struct {
	inner *sharedAtomicCell[T]
}

type sharedAtomicCell[T any] struct {
	value T
	refs  atomic.Int64
	dead  atomic.Bool
}

// NewSharedAtomic returns a SharedAtomic owning v with a count of one.
func NewSharedAtomic[T any](v T) SharedAtomic[T] {
	cell := &sharedAtomicCell[T]{value: v}
	cell.refs.Store(1)

	return SharedAtomic[T]{inner: cell}
}

// Clone returns a new handle to the same payload, bumping the owner count.
func (s SharedAtomic[T]) Clone() SharedAtomic[T] {
	if s.inner == nil || s.inner.dead.Load() {
		return SharedAtomic[T]{}
	}

	s.inner.refs.Add(1)

	return s
}

// Release drops one owner, marking the payload dead when the count hits zero.
func (s SharedAtomic[T]) Release() {
	if s.inner == nil || s.inner.dead.Load() {
		return
	}

	if s.inner.refs.Add(-1) <= 0 {
		s.inner.dead.Store(true)

		var zero T
		s.inner.value = zero
	}
}

// Ref returns a read pointer to the payload, or nil for a dead/zero handle.
func (s SharedAtomic[T]) Ref() *T {
	if s.inner == nil || s.inner.dead.Load() {
		return nil
	}

	return &s.inner.value
}

// MutRef returns a mutable pointer only while this handle is the sole
// owner; otherwise nil.
func (s SharedAtomic[T]) MutRef() *T {
	if s.inner == nil || s.inner.dead.Load() || s.inner.refs.Load() != 1 {
		return nil
	}

	return &s.inner.value
}

// Count returns the current owner count.
func (s SharedAtomic[T]) Count() int {
	if s.inner == nil || s.inner.dead.Load() {
		return 0
	}

	return int(s.inner.refs.Load())
}

// Weak is a non-owning back-reference to a Shared payload. It never grants
// mutation and never keeps the payload alive.
type Weak[T any] struct {
	inner *sharedCell[T]
}

// Upgrade returns a read pointer to the payload, or nil once all strong
// owners have released.
func (w Weak[T]) Upgrade() *T {
	if w.inner == nil || w.inner.dead {
		return nil
	}

	return &w.inner.value
}

// Alive returns true while at least one strong owner remains.
func (w Weak[T]) Alive() bool {
	return w.inner != nil && !w.inner.dead
}
