package container

// Tagged attaches a string label to a value without changing how the value
// is accessed. Accessors treat it as a transparent single-payload wrapper.
type Tagged[T any] struct {
	Label string
	Value T
}

// NewTagged returns a Tagged pairing label with v.
func NewTagged[T any](label string, v T) Tagged[T] {
	return Tagged[T]{Label: label, Value: v}
}

// Ref returns a pointer to the wrapped value.
func (t *Tagged[T]) Ref() *T {
	return &t.Value
}
