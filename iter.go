package multimap

import "iter"

// Keys returns an iterator over the stored keys in unspecified order. The sequence is
// finite, yields exactly Len() keys and may be re-obtained at any time by calling the
// method again.
func (m *MultiMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range m.entries {
			if !yield(key) {
				break
			}
		}
	}
}

// Iter returns an iterator over pairs of a key and its first value, a single pair per
// key. Order is unspecified; the sequence yields exactly Len() pairs.
func (m *MultiMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, values := range m.entries {
			if !yield(key, values[0]) {
				break
			}
		}
	}
}

// IterRef is Iter, except the first value is yielded by pointer, so it can be modified
// in place. No Add, Remove or Clear may happen while the iteration is running.
func (m *MultiMap[K, V]) IterRef() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		for key, values := range m.entries {
			if !yield(key, &values[0]) {
				break
			}
		}
	}
}

// IterAll returns an iterator over pairs of a key and all its values, a single pair per
// key. The yielded slices are live views into the map, just like with Values: elements
// may be modified in place, but never appended to.
func (m *MultiMap[K, V]) IterAll() iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		for key, values := range m.entries {
			if !yield(key, values) {
				break
			}
		}
	}
}

// Pairs returns an iterator over every single (key, value) pair stored, flattening the
// value lists. Keys come in unspecified order, values of one key in arrival order; the
// sequence yields exactly Total() pairs.
func (m *MultiMap[K, V]) Pairs() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key, values := range m.entries {
			for _, value := range values {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
