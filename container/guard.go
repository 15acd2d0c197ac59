package container

import "sync"

// Mutexed couples a value with the mutex that guards it. The payload is
// reachable only through scoped acquisition: the guard is taken, the
// callback runs, and the guard is released on every exit path. There is no
// way to leak a reference past the critical section.
type Mutexed[T any] struct {
	mu    sync.Mutex
	value T
}

// NewMutexed returns a Mutexed holding v.
func NewMutexed[T any](v T) *Mutexed[T] {
	return &Mutexed[T]{value: v}
}

// With acquires the guard, runs f on the payload, and releases.
func (m *Mutexed[T]) With(f func(*T)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f(&m.value)
}

// WithValue acquires the guard and returns a copy of the payload.
func (m *Mutexed[T]) WithValue() T {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.value
}

// Replace acquires the guard, stores v, and returns the previous payload.
func (m *Mutexed[T]) Replace(v T) T {
	m.mu.Lock()
	defer m.mu.Unlock()

	old := m.value
	m.value = v

	return old
}

// RwMutexed couples a value with a read/write mutex. ReadWith may run
// concurrently with other readers; WriteWith is exclusive.
type RwMutexed[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewRwMutexed returns an RwMutexed holding v.
func NewRwMutexed[T any](v T) *RwMutexed[T] {
	return &RwMutexed[T]{value: v}
}

// ReadWith acquires the guard shared, runs f on the payload, and releases.
// The callback must not mutate the payload.
func (r *RwMutexed[T]) ReadWith(f func(*T)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f(&r.value)
}

// WriteWith acquires the guard exclusively, runs f on the payload, and
// releases.
func (r *RwMutexed[T]) WriteWith(f func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f(&r.value)
}

// ReadValue acquires the guard shared and returns a copy of the payload.
func (r *RwMutexed[T]) ReadValue() T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.value
}
