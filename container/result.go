package container

// Result holds either a success payload or a failure. The success payload
// is readable in place but not mutable in place: replacing the whole Result
// is the only way to change the outcome, which keeps the ok/err invariant
// in one spot.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail returns a failed Result carrying err.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk returns true for a successful Result.
func (r *Result[T]) IsOk() bool {
	return r.ok
}

// Ref returns a read pointer to the success payload, or nil on failure.
func (r *Result[T]) Ref() *T {
	if !r.ok {
		return nil
	}

	return &r.value
}

// Get returns the success payload and true, or the zero value and false.
func (r *Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// Err returns the failure, or nil for a successful Result.
func (r *Result[T]) Err() error {
	return r.err
}
