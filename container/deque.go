package container

// Deque is a double-ended queue backed by a ring buffer.
// The zero value is an empty deque.
type Deque[T any] struct {
	buf  []T
	head int
	size int
}

// NewDeque returns an empty deque with room for capacity elements before
// the first reallocation.
func NewDeque[T any](capacity int) *Deque[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Deque[T]{buf: make([]T, capacity)}
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	return d.size
}

// PushBack appends v at the back.
func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[d.index(d.size)] = v
	d.size++
}

// PushFront prepends v at the front.
func (d *Deque[T]) PushFront(v T) {
	d.grow()

	d.head--
	if d.head < 0 {
		d.head += len(d.buf)
	}

	d.buf[d.head] = v
	d.size++
}

// PopFront removes and returns the front element.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}

	v := d.buf[d.head]

	var zero T
	d.buf[d.head] = zero

	d.head = d.index(1)
	d.size--

	return v, true
}

// PopBack removes and returns the back element.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.size == 0 {
		var zero T
		return zero, false
	}

	i := d.index(d.size - 1)
	v := d.buf[i]

	var zero T
	d.buf[i] = zero

	d.size--

	return v, true
}

// Front returns a pointer to the front element, or nil when empty.
func (d *Deque[T]) Front() *T {
	if d.size == 0 {
		return nil
	}

	return &d.buf[d.head]
}

// Back returns a pointer to the back element, or nil when empty.
func (d *Deque[T]) Back() *T {
	if d.size == 0 {
		return nil
	}

	return &d.buf[d.index(d.size-1)]
}

// At returns a pointer to the i-th element from the front, or nil when out
// of range.
func (d *Deque[T]) At(i int) *T {
	if i < 0 || i >= d.size {
		return nil
	}

	return &d.buf[d.index(i)]
}

// MutAt is At; the separate name mirrors the read/write accessor split.
func (d *Deque[T]) MutAt(i int) *T {
	return d.At(i)
}

func (d *Deque[T]) index(i int) int {
	return (d.head + i) % len(d.buf)
}

func (d *Deque[T]) grow() {
	if d.size < len(d.buf) {
		return
	}

	capacity := len(d.buf) * 2
	if capacity == 0 {
		capacity = 8
	}

	buf := make([]T, capacity)
	for i := range d.size {
		buf[i] = d.buf[d.index(i)]
	}

	d.buf = buf
	d.head = 0
}
