package collections

// DefaultMap is a map that creates missing values with a factory on lookup.
type DefaultMap[K comparable, V any] struct {
	factory func() V
	entries map[K]V
}

// NewDefaultMap returns an empty DefaultMap. A nil factory makes Get
// return the zero value without storing it.
func NewDefaultMap[K comparable, V any](factory func() V) *DefaultMap[K, V] {
	return &DefaultMap[K, V]{factory: factory, entries: make(map[K]V)}
}

// Get returns the value for k, storing a new value from the factory if k
// is missing.
func (m *DefaultMap[K, V]) Get(k K) V {
	if v, ok := m.entries[k]; ok {
		return v
	}
	var v V
	if m.factory == nil {
		return v
	}
	v = m.factory()
	m.entries[k] = v
	return v
}

// Lookup returns the value for k without creating it.
func (m *DefaultMap[K, V]) Lookup(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

// Set stores v under k.
func (m *DefaultMap[K, V]) Set(k K, v V) {
	m.entries[k] = v
}

// Delete removes k.
func (m *DefaultMap[K, V]) Delete(k K) {
	delete(m.entries, k)
}

// Len returns the number of stored entries.
func (m *DefaultMap[K, V]) Len() int {
	return len(m.entries)
}

// DefaultFactory returns the factory, or nil if there is none.
func (m *DefaultMap[K, V]) DefaultFactory() any {
	if m.factory == nil {
		return nil
	}
	return m.factory
}

// Underlying returns the stored entries as a map[K]V.
func (m *DefaultMap[K, V]) Underlying() any {
	return m.entries
}

var _ Defaulted = (*DefaultMap[string, int])(nil)
