package kv

import (
	"bytes"
	"context"
	"iter"
	"slices"
	"sync"
)

// Memory is an in-memory Store backed by a map, safe for concurrent use.
// It exists for tests.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates a new in-memory Store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key Key) ([]byte, error) {
	k := string(encode(key))
	m.mu.RLock()
	v, ok := m.data[k]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

func (m *Memory) Set(_ context.Context, key Key, value []byte) error {
	k := string(encode(key))
	v := slices.Clone(value)
	m.mu.Lock()
	m.data[k] = v
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key Key) error {
	k := string(encode(key))
	m.mu.Lock()
	delete(m.data, k)
	m.mu.Unlock()
	return nil
}

func (m *Memory) List(_ context.Context, prefix Key) iter.Seq2[Entry, error] {
	p := prefixBytes(prefix)

	m.mu.RLock()
	var keys []string
	for k := range m.data {
		if len(p) == 0 || bytes.HasPrefix([]byte(k), p) {
			keys = append(keys, k)
		}
	}
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: decode([]byte(k)), Value: slices.Clone(m.data[k])})
	}
	m.mu.RUnlock()

	slices.SortFunc(entries, func(a, b Entry) int {
		return bytes.Compare(encode(a.Key), encode(b.Key))
	})

	return func(yield func(Entry, error) bool) {
		for _, e := range entries {
			if !yield(e, nil) {
				return
			}
		}
	}
}

func (m *Memory) BatchDelete(_ context.Context, keys []Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, string(encode(key)))
	}
	return nil
}

func (m *Memory) Close() error {
	return nil
}
