package multimap

import "fmt"

// MultiMap is an associative structure, mapping a single key to one or more values. It's
// a thin wrapper around an ordinary map, where each key holds an ordered, growable list
// of values. Values under a key keep their arrival order and may repeat; keys themselves
// are unordered, just as in the underlying map.
//
// A key present in the map always holds at least one value. There is no way to remove a
// single value: removal operates on whole keys only.
//
// The structure isn't safe for concurrent use. References returned by accessors (Values,
// GetRef, the iterators) point into internal storage and stay valid only until the next
// Add, Remove or Clear.
type MultiMap[K comparable, V any] struct {
	entries  map[K][]V
	free     [][]V
	capacity int
}

func New[K comparable, V any]() *MultiMap[K, V] {
	return NewPrealloc[K, V](0)
}

// NewPrealloc returns an instance of MultiMap with pre-allocated space for n keys. The
// hint is purely advisory and has no semantic effect.
func NewPrealloc[K comparable, V any](n int) *MultiMap[K, V] {
	return &MultiMap[K, V]{
		entries:  make(map[K][]V, n),
		capacity: n,
	}
}

// NewFromMap returns a new instance with already inserted values from given map. Keys
// mapped to empty lists are skipped, as a key cannot exist without values.
func NewFromMap[K comparable, V any](m map[K][]V) *MultiMap[K, V] {
	mm := NewPrealloc[K, V](len(m))

	for key, values := range m {
		for _, value := range values {
			mm.Add(key, value)
		}
	}

	return mm
}

// Add adds a new pair of key and value. If the key is already present, the value is
// appended to its list, otherwise a new single-value list is started.
func (m *MultiMap[K, V]) Add(key K, value V) *MultiMap[K, V] {
	values, found := m.entries[key]
	if !found {
		values = m.grab()
	}

	m.entries[key] = append(values, value)
	if len(m.entries) > m.capacity {
		m.capacity = len(m.entries)
	}

	return m
}

// Get returns the first value corresponding to the key and a bool, indicating whether
// the key was found at all.
func (m *MultiMap[K, V]) Get(key K) (value V, found bool) {
	values, found := m.entries[key]
	if !found {
		return value, false
	}

	return values[0], true
}

// Value returns the first value, corresponding to the key. Otherwise, zero value is
// returned.
func (m *MultiMap[K, V]) Value(key K) V {
	var zero V
	return m.ValueOr(key, zero)
}

// ValueOr returns either the first value corresponding to the key or custom value,
// defined via the second parameter.
func (m *MultiMap[K, V]) ValueOr(key K, or V) V {
	value, found := m.Get(key)
	if !found {
		return or
	}

	return value
}

// MustGet returns the first value corresponding to the key, panicking if there is none.
// This is the only lookup that can fail loudly; it exists for call sites which already
// established the key's presence. Everywhere else prefer Get.
func (m *MultiMap[K, V]) MustGet(key K) V {
	values, found := m.entries[key]
	if !found {
		panic(fmt.Sprintf("multimap: no entry found for key %v", key))
	}

	return values[0]
}

// GetRef returns a pointer to the first value corresponding to the key, letting the
// caller modify it in place. The pointer stays valid only until the next Add, Remove
// or Clear.
func (m *MultiMap[K, V]) GetRef(key K) (*V, bool) {
	values, found := m.entries[key]
	if !found {
		return nil, false
	}

	return &values[0], true
}

// Values returns all values by the key in their arrival order, or nil if the key
// doesn't exist. The returned slice is a live view into the map: writes to its elements
// are visible on subsequent lookups. Appending to it is prohibited - the list grows via
// Add only.
func (m *MultiMap[K, V]) Values(key K) []V {
	return m.entries[key]
}

// Has indicates, whether there's an entry of the key.
func (m *MultiMap[K, V]) Has(key K) bool {
	_, found := m.entries[key]
	return found
}

// Len returns a number of stored keys, not values.
func (m *MultiMap[K, V]) Len() int {
	return len(m.entries)
}

func (m *MultiMap[K, V]) Empty() bool {
	return m.Len() == 0
}

// Total returns a number of stored values across all keys.
func (m *MultiMap[K, V]) Total() (n int) {
	for _, values := range m.entries {
		n += len(values)
	}

	return n
}

// Capacity returns a lower bound of how many keys the map can hold without growing:
// the biggest of the preallocation hint and the peak key count seen so far. The bound
// is advisory and survives Clear.
func (m *MultiMap[K, V]) Capacity() int {
	return m.capacity
}

// Remove deletes the key with all its values, returning them and a bool, indicating
// whether the key existed. Either the whole entry goes away, or nothing changes.
func (m *MultiMap[K, V]) Remove(key K) ([]V, bool) {
	values, found := m.entries[key]
	if !found {
		return nil, false
	}

	delete(m.entries, key)

	return values, true
}

// Clear all the entries. However, all the allocated space won't be freed: the map keeps
// its buckets, and value lists are truncated and recycled by later Adds.
//
// WARNING: slices previously returned by Values or Remove may be overwritten by
// insertions following Clear. Clone them beforehand for safe use.
func (m *MultiMap[K, V]) Clear() *MultiMap[K, V] {
	for key, values := range m.entries {
		m.free = append(m.free, values[:0])
		delete(m.entries, key)
	}

	return m
}

// Clone creates a deep copy, which may be used later or stored somewhere safely.
// However, it comes at cost of an allocation per key.
func (m *MultiMap[K, V]) Clone() *MultiMap[K, V] {
	clone := NewPrealloc[K, V](m.capacity)

	for key, values := range m.entries {
		clone.entries[key] = append(make([]V, 0, len(values)), values...)
	}

	return clone
}

// Expose exposes the underlying map. Try to avoid the method if possible, as changing
// it directly may break the non-empty value list invariant.
func (m *MultiMap[K, V]) Expose() map[K][]V {
	return m.entries
}

func (m *MultiMap[K, V]) grab() []V {
	if n := len(m.free); n > 0 {
		values := m.free[n-1]
		m.free = m.free[:n-1]
		return values
	}

	return nil
}
