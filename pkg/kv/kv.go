// Package kv provides the key-value store the ledger persists into. Keys
// are hierarchical string paths (e.g. ["txn", owner, id]) encoded with a
// ':' separator. A BadgerDB-backed implementation serves production; an
// in-memory implementation serves tests.
package kv

import (
	"context"
	"errors"
	"iter"
	"strings"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("kv: not found")

// separator joins key segments in storage encoding. Segments must not
// contain it.
const separator byte = ':'

// Key is a hierarchical path represented as a slice of string segments.
type Key []string

// String returns the encoded form, for display and debugging.
func (k Key) String() string {
	return strings.Join(k, string(separator))
}

// Entry is a key-value pair yielded by List.
type Entry struct {
	Key   Key
	Value []byte
}

// Store is the interface for a key-value store with path-based keys.
type Store interface {
	// Get retrieves the value for a key. Returns ErrNotFound if not present.
	Get(ctx context.Context, key Key) ([]byte, error)

	// Set stores a key-value pair, overwriting any existing value.
	Set(ctx context.Context, key Key, value []byte) error

	// Delete removes a key. No error if the key does not exist.
	Delete(ctx context.Context, key Key) error

	// List iterates over all entries whose key starts with the given
	// prefix, in lexicographic order of the encoded key.
	List(ctx context.Context, prefix Key) iter.Seq2[Entry, error]

	// BatchDelete atomically removes multiple keys.
	BatchDelete(ctx context.Context, keys []Key) error

	// Close releases any resources held by the store.
	Close() error
}

// encode converts a Key to its storage byte representation.
func encode(k Key) []byte {
	n := 0
	for i, seg := range k {
		if i > 0 {
			n++
		}
		n += len(seg)
	}
	buf := make([]byte, 0, n)
	for i, seg := range k {
		if i > 0 {
			buf = append(buf, separator)
		}
		buf = append(buf, seg...)
	}
	return buf
}

// decode converts a storage byte representation back to a Key.
func decode(b []byte) Key {
	parts := strings.Split(string(b), string(separator))
	return Key(parts)
}

// prefixBytes returns the encoded prefix with a trailing separator, so the
// prefix ["a","b"] matches "a:b:c" but not "a:bc". An empty prefix matches
// everything.
func prefixBytes(prefix Key) []byte {
	p := encode(prefix)
	if len(p) == 0 {
		return nil
	}
	return append(p, separator)
}
