package collect

import (
	"iter"
)

// OrderedMap is a read-only mapping whose iteration order is the
// order its keys were given in.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Get returns the value mapped to k, and whether k is present.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// All iterates the entries in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// ToMap returns an ordered mapping with the given keys and whose
// value for each key was computed by valueFn, evaluating keys in
// their given order. The first declared failure of valueFn is
// returned with no mapping at all; later keys are not evaluated.
//
// The keys must be unique; a duplicate key panics.
func ToMap[K comparable, V any](keys []K, valueFn func(K) (V, error)) (*OrderedMap[K, V], error) {
	m := &OrderedMap[K, V]{
		keys:   make([]K, 0, len(keys)),
		values: make(map[K]V, len(keys)),
	}
	for _, k := range keys {
		if _, dup := m.values[k]; dup {
			panic("collect.ToMap: duplicate key")
		}
		v, err := valueFn(k)
		if err != nil {
			return nil, err
		}
		m.keys = append(m.keys, k)
		m.values[k] = v
	}
	return m, nil
}
