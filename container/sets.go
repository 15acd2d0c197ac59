package container

// HashSet is an unordered set of comparable elements. Elements are never
// handed out mutably: mutating an element in place would corrupt its
// bucket.
// The zero value is an empty set.
type HashSet[T comparable] struct {
	items map[T]struct{}
}

// Add inserts v, reporting whether it was newly added.
func (s *HashSet[T]) Add(v T) bool {
	if s.items == nil {
		s.items = make(map[T]struct{})
	}

	if _, ok := s.items[v]; ok {
		return false
	}

	s.items[v] = struct{}{}

	return true
}

// Has returns true if v is in the set.
func (s *HashSet[T]) Has(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Remove deletes v, reporting whether it was present.
func (s *HashSet[T]) Remove(v T) bool {
	if _, ok := s.items[v]; !ok {
		return false
	}

	delete(s.items, v)

	return true
}

// Len returns the number of elements.
func (s *HashSet[T]) Len() int {
	return len(s.items)
}

// Any returns some element and true, or the zero value and false for an
// empty set. Which element is unspecified.
func (s *HashSet[T]) Any() (T, bool) {
	for v := range s.items {
		return v, true
	}

	var zero T

	return zero, false
}

// OrderedSet is a set that remembers insertion order.
// The zero value is an empty set.
type OrderedSet[T comparable] struct {
	index map[T]struct{}
	items []T
}

// Add inserts v, reporting whether it was newly added.
func (s *OrderedSet[T]) Add(v T) bool {
	if s.index == nil {
		s.index = make(map[T]struct{})
	}

	if _, ok := s.index[v]; ok {
		return false
	}

	s.index[v] = struct{}{}
	s.items = append(s.items, v)

	return true
}

// Has returns true if v is in the set.
func (s *OrderedSet[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Remove deletes v, preserving the order of the rest.
func (s *OrderedSet[T]) Remove(v T) bool {
	if _, ok := s.index[v]; !ok {
		return false
	}

	delete(s.index, v)

	for i, item := range s.items {
		if item == v {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}

	return true
}

// Len returns the number of elements.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Any returns the earliest-inserted element and true, or the zero value and
// false for an empty set.
func (s *OrderedSet[T]) Any() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[0], true
}

// Items returns the elements in insertion order. The slice is shared;
// callers must not modify it.
func (s *OrderedSet[T]) Items() []T {
	return s.items
}
