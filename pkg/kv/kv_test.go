package kv_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ojaledger/ojaledger/pkg/kv"
)

// newTestStore returns a fresh in-memory Store. The test logic is backend
// agnostic; switch the factory to cover other implementations.
func newTestStore(t *testing.T) kv.Store {
	t.Helper()
	s := kv.NewMemory()
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	key := kv.Key{"txn", "owner-1", "abc"}

	if _, err := s.Get(ctx, key); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, key, []byte("hello")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("Get = %q, want %q", got, "hello")
	}

	if err := s.Set(ctx, key, []byte("world")); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, _ = s.Get(ctx, key)
	if string(got) != "world" {
		t.Fatalf("Get after overwrite = %q", got)
	}

	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, key); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting a missing key is not an error.
	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

func TestListPrefix(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	seed := map[string]kv.Key{
		"a": {"txn", "owner-1", "a"},
		"b": {"txn", "owner-1", "b"},
		"c": {"txn", "owner-2", "c"},
	}
	for v, k := range seed {
		if err := s.Set(ctx, k, []byte(v)); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	var got []string
	for e, err := range s.List(ctx, kv.Key{"txn", "owner-1"}) {
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		got = append(got, string(e.Value))
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("List = %v, want [a b]", got)
	}

	// The prefix must respect segment boundaries: "owner-1" must not match
	// a hypothetical "owner-10".
	if err := s.Set(ctx, kv.Key{"txn", "owner-10", "z"}, []byte("z")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	count := 0
	for _, err := range s.List(ctx, kv.Key{"txn", "owner-1"}) {
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		count++
	}
	if count != 2 {
		t.Fatalf("List matched %d entries, want 2", count)
	}
}

func TestBatchDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	keys := []kv.Key{
		{"txn", "o", "1"},
		{"txn", "o", "2"},
		{"txn", "o", "3"},
	}
	for _, k := range keys {
		if err := s.Set(ctx, k, []byte("x")); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	if err := s.BatchDelete(ctx, keys[:2]); err != nil {
		t.Fatalf("BatchDelete: %v", err)
	}
	if _, err := s.Get(ctx, keys[0]); !errors.Is(err, kv.ErrNotFound) {
		t.Fatalf("key 1 still present: %v", err)
	}
	if _, err := s.Get(ctx, keys[2]); err != nil {
		t.Fatalf("key 3 should survive: %v", err)
	}
}
