package container

// LinkedSeq is a doubly linked sequence. It trades random-access speed for
// O(1) insertion and removal at both ends and at a held node.
// The zero value is an empty sequence.
type LinkedSeq[T any] struct {
	front *seqNode[T]
	back  *seqNode[T]
	size  int
}

type seqNode[T any] struct {
	value      T
	prev, next *seqNode[T]
}

// Len returns the number of elements.
func (l *LinkedSeq[T]) Len() int {
	return l.size
}

// PushBack appends v at the back.
func (l *LinkedSeq[T]) PushBack(v T) {
	n := &seqNode[T]{value: v, prev: l.back}

	if l.back != nil {
		l.back.next = n
	} else {
		l.front = n
	}

	l.back = n
	l.size++
}

// PushFront prepends v at the front.
func (l *LinkedSeq[T]) PushFront(v T) {
	n := &seqNode[T]{value: v, next: l.front}

	if l.front != nil {
		l.front.prev = n
	} else {
		l.back = n
	}

	l.front = n
	l.size++
}

// Front returns a pointer to the first element, or nil when empty.
func (l *LinkedSeq[T]) Front() *T {
	if l.front == nil {
		return nil
	}

	return &l.front.value
}

// Back returns a pointer to the last element, or nil when empty.
func (l *LinkedSeq[T]) Back() *T {
	if l.back == nil {
		return nil
	}

	return &l.back.value
}

// At returns a pointer to the i-th element, or nil when out of range.
// Walks from the nearer end.
func (l *LinkedSeq[T]) At(i int) *T {
	n := l.nodeAt(i)
	if n == nil {
		return nil
	}

	return &n.value
}

// MutAt is At; the separate name mirrors the read/write accessor split.
func (l *LinkedSeq[T]) MutAt(i int) *T {
	return l.At(i)
}

// RemoveAt removes and returns the i-th element.
func (l *LinkedSeq[T]) RemoveAt(i int) (T, bool) {
	n := l.nodeAt(i)
	if n == nil {
		var zero T
		return zero, false
	}

	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.front = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.back = n.prev
	}

	l.size--

	return n.value, true
}

func (l *LinkedSeq[T]) nodeAt(i int) *seqNode[T] {
	if i < 0 || i >= l.size {
		return nil
	}

	if i <= l.size/2 {
		n := l.front
		for range i {
			n = n.next
		}

		return n
	}

	n := l.back
	for range l.size - 1 - i {
		n = n.prev
	}

	return n
}
