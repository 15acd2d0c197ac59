package container

// PriorityQueue is a binary heap ordered by a user-supplied less function.
// Peek exposes the top element read-only: handing out a mutable reference
// could silently break the heap order, so there is no mutable peek.
type PriorityQueue[T any] struct {
	items []T
	less  func(a, b T) bool
}

// NewPriorityQueue returns an empty queue ordered by less
// (less(a, b) == true means a comes out first).
func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	if less == nil {
		panic("priority queue requires a less function")
	}

	return &PriorityQueue[T]{less: less}
}

// Len returns the number of elements.
func (q *PriorityQueue[T]) Len() int {
	return len(q.items)
}

// Push adds v to the queue.
func (q *PriorityQueue[T]) Push(v T) {
	q.items = append(q.items, v)
	q.siftUp(len(q.items) - 1)
}

// Pop removes and returns the top element.
func (q *PriorityQueue[T]) Pop() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	top := q.items[0]
	last := len(q.items) - 1
	q.items[0] = q.items[last]

	var zero T
	q.items[last] = zero
	q.items = q.items[:last]

	if len(q.items) > 0 {
		q.siftDown(0)
	}

	return top, true
}

// Peek returns a read-only pointer to the top element, or nil when empty.
// The pointee must not be mutated.
func (q *PriorityQueue[T]) Peek() *T {
	if len(q.items) == 0 {
		return nil
	}

	return &q.items[0]
}

func (q *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.items[i], q.items[parent]) {
			return
		}

		q.items[i], q.items[parent] = q.items[parent], q.items[i]
		i = parent
	}
}

func (q *PriorityQueue[T]) siftDown(i int) {
	n := len(q.items)

	for {
		left, right := 2*i+1, 2*i+2
		smallest := i

		if left < n && q.less(q.items[left], q.items[smallest]) {
			smallest = left
		}

		if right < n && q.less(q.items[right], q.items[smallest]) {
			smallest = right
		}

		if smallest == i {
			return
		}

		q.items[i], q.items[smallest] = q.items[smallest], q.items[i]
		i = smallest
	}
}
