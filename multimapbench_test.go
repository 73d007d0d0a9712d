package multimap

import (
	"testing"

	"github.com/dchest/uniuri"
)

const benchKeys = 1024

func generateKeys() []string {
	keys := make([]string, benchKeys)
	for i := range keys {
		keys[i] = uniuri.NewLen(16)
	}

	return keys
}

func BenchmarkMultiMap(b *testing.B) {
	keys := generateKeys()

	filled := New[string, int]()
	for i, key := range keys {
		filled.Add(key, i)
	}

	b.Run("Add", func(b *testing.B) {
		m := NewPrealloc[string, int](benchKeys)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.Add(keys[i%benchKeys], i)
		}
	})

	b.Run("Get", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = filled.Get(keys[i%benchKeys])
		}
	})

	b.Run("GetBytes", func(b *testing.B) {
		rawKeys := make([][]byte, benchKeys)
		for i, key := range keys {
			rawKeys[i] = []byte(key)
		}

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = GetBytes(filled, rawKeys[i%benchKeys])
		}
	})

	b.Run("Values", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = filled.Values(keys[i%benchKeys])
		}
	})

	b.Run("ClearAddNoAlloc", func(b *testing.B) {
		m := NewPrealloc[string, int](benchKeys)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.Add(keys[i%benchKeys], i)
			if i%benchKeys == benchKeys-1 {
				m.Clear()
			}
		}
	})
}
