package sequence

import (
	"maps"

	"github.com/huandu/go-clone"
)

// Table is a Sequence backed by a Go map, the native counterpart of a host table.
// Keys outside 1..Len are allowed and are carried by Clone, DeepClone and Assign.
type Table[V any] map[int]V

// Of returns a Table holding values at indices 1..len(values).
func Of[V any](values ...V) Table[V] {
	m := make(Table[V], len(values))
	for i, v := range values {
		m[i+1] = v
	}
	return m
}

// Get returns the value at index i.
func (m Table[V]) Get(i int) (V, bool) {
	v, ok := m[i]
	return v, ok
}

// Set stores v at index i.
func (m Table[V]) Set(i int, v V) {
	m[i] = v
}

// Delete removes index i.
func (m Table[V]) Delete(i int) {
	delete(m, i)
}

// Clone returns a shallow copy of m. Nested containers are shared with m.
func Clone[V any](m Table[V]) Table[V] {
	if m == nil {
		return Table[V]{}
	}
	return maps.Clone(m)
}

// DeepClone returns a copy of m in which every nested container (maps, slices, pointers,
// including other Tables stored as values) is duplicated, so mutating the copy never
// reaches m.
func DeepClone[V any](m Table[V]) Table[V] {
	if m == nil {
		return Table[V]{}
	}
	return clone.Clone(m).(Table[V])
}

// Assign copies every key/value pair of src into dst, overwriting existing keys.
func Assign[V any](dst, src Table[V]) {
	maps.Copy(dst, src)
}
