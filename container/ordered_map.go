package container

// OrderedMap is a key/value mapping that remembers insertion order. Unlike
// the builtin map, its entries are addressable, so accessors can hand out
// mutable references to values.
// The zero value is an empty map.
type OrderedMap[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  []*V
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Set stores v under k, keeping the original insertion position for an
// existing key.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if m.index == nil {
		m.index = make(map[K]int)
	}

	if i, ok := m.index[k]; ok {
		*m.vals[i] = v
		return
	}

	m.index[k] = len(m.keys)
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, &v)
}

// Get returns the value under k and true, or the zero value and false.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	if i, ok := m.index[k]; ok {
		return *m.vals[i], true
	}

	var zero V

	return zero, false
}

// Ref returns a read pointer to the value under k, or nil when absent.
func (m *OrderedMap[K, V]) Ref(k K) *V {
	if i, ok := m.index[k]; ok {
		return m.vals[i]
	}

	return nil
}

// MutRef returns a mutable pointer to the value under k, or nil when absent.
func (m *OrderedMap[K, V]) MutRef(k K) *V {
	return m.Ref(k)
}

// Delete removes the entry under k, preserving the order of the rest.
func (m *OrderedMap[K, V]) Delete(k K) bool {
	i, ok := m.index[k]
	if !ok {
		return false
	}

	delete(m.index, k)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)

	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}

	return true
}

// Keys returns the keys in insertion order. The slice is shared; callers
// must not modify it.
func (m *OrderedMap[K, V]) Keys() []K {
	return m.keys
}
