package container

// Option is a value that may be absent. The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if a value is present.
func (o *Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if no value is present.
func (o *Option[T]) IsNone() bool {
	return !o.present
}

// Ref returns a pointer to the held value, or nil when empty.
func (o *Option[T]) Ref() *T {
	if !o.present {
		return nil
	}

	return &o.value
}

// MutRef returns a mutable pointer to the held value, or nil when empty.
// It is the same pointer Ref returns; the separate name mirrors the
// read/write split of the accessor flavors.
func (o *Option[T]) MutRef() *T {
	return o.Ref()
}

// Get returns the held value and true, or the zero value and false.
func (o *Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// GetOr returns the held value, or fallback when empty.
func (o *Option[T]) GetOr(fallback T) T {
	if !o.present {
		return fallback
	}

	return o.value
}

// Insert stores v and returns a pointer to the stored copy.
func (o *Option[T]) Insert(v T) *T {
	o.value = v
	o.present = true

	return &o.value
}

// Take moves the value out, leaving the Option empty.
func (o *Option[T]) Take() (T, bool) {
	if !o.present {
		var zero T
		return zero, false
	}

	v := o.value

	var zero T
	o.value = zero
	o.present = false

	return v, true
}

// Clear empties the Option.
func (o *Option[T]) Clear() {
	var zero T
	o.value = zero
	o.present = false
}
