package note

// Meta is an insertion-ordered mapping of frontmatter keys to string values.
// Unknown keys round-trip opaquely through parse and serialize.
type Meta struct {
	keys   []string
	values map[string]string
}

// NewMeta builds a Meta from alternating key/value pairs.
func NewMeta(pairs ...string) Meta {
	m := Meta{}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

// Get returns the value for key and whether it is present.
func (m *Meta) Get(key string) (string, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Set stores a value, appending the key to the ordering on first insert.
func (m *Meta) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Delete removes a key and its ordering slot. Missing keys are a no-op.
func (m *Meta) Delete(key string) {
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Meta) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of stored keys.
func (m *Meta) Len() int {
	return len(m.keys)
}

// Equal reports whether two metas hold the same keys, values, and order.
func (m *Meta) Equal(other Meta) bool {
	if len(m.keys) != len(other.keys) {
		return false
	}
	for i, key := range m.keys {
		if other.keys[i] != key {
			return false
		}
		if m.values[key] != other.values[key] {
			return false
		}
	}
	return true
}
