package multimap

import "github.com/indigo-web/utils/uf"

// Lookups by []byte forms of string keys. Converting a byte slice to a string allocates,
// which is a waste when the key is only borrowed for the duration of a lookup - the
// functions below avoid the copy entirely. They exist as free functions, as methods
// cannot be specialized to string-keyed instances.

// GetBytes returns the first value by a byte-slice form of the key, without copying
// the key.
func GetBytes[V any](m *MultiMap[string, V], key []byte) (V, bool) {
	return m.Get(uf.B2S(key))
}

// HasBytes indicates, whether there's an entry of the byte-slice form of the key.
func HasBytes[V any](m *MultiMap[string, V], key []byte) bool {
	return m.Has(uf.B2S(key))
}

// ValuesBytes returns all values by a byte-slice form of the key, or nil if the key
// doesn't exist.
func ValuesBytes[V any](m *MultiMap[string, V], key []byte) []V {
	return m.Values(uf.B2S(key))
}

// RemoveBytes deletes the key given in its byte-slice form with all its values.
func RemoveBytes[V any](m *MultiMap[string, V], key []byte) ([]V, bool) {
	return m.Remove(uf.B2S(key))
}

// AddBytes adds a new pair of key and value, where the key is given in its byte-slice
// form. Unlike lookups, an insertion has to own its key, so this one does copy.
func AddBytes[V any](m *MultiMap[string, V], key []byte, value V) {
	m.Add(string(key), value)
}
