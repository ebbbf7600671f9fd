// Package ledger persists the trader's transaction records. The ledger is
// flat and append-mostly: records belong to exactly one owner, are immutable
// after creation, and are only ever removed by explicit owner-scoped
// deletes.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ojaledger/ojaledger/pkg/kv"
)

const (
	TypeIncome Type = "income"
	TypeDebt   Type = "debt"
)

// Type says whether a record is money received or money owed.
type Type string

// Valid reports whether t is a known record type.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeDebt
}

// ErrNotFound is returned for records that do not exist for the requesting
// owner. Records of other owners are indistinguishable from absent ones.
var ErrNotFound = errors.New("ledger: record not found")

// Record is a persisted, owner-scoped financial entry.
type Record struct {
	ID        string    `msgpack:"id" json:"id"`
	Owner     string    `msgpack:"owner" json:"owner"`
	Customer  string    `msgpack:"customer" json:"customer"`
	Details   string    `msgpack:"details" json:"details"`
	Amount    int64     `msgpack:"amount" json:"amount"`
	Type      Type      `msgpack:"type" json:"type"`
	CreatedAt time.Time `msgpack:"created_at" json:"createdAt"`
}

// Store reads and writes Records in a kv.Store under txn:<owner>:<id>.
type Store struct {
	kv kv.Store
}

// NewStore creates a ledger store over the given key-value store.
func NewStore(s kv.Store) *Store {
	return &Store{kv: s}
}

func key(owner, id string) kv.Key {
	return kv.Key{"txn", owner, id}
}

func checkOwner(owner string) error {
	if owner == "" || strings.ContainsRune(owner, ':') {
		return fmt.Errorf("ledger: invalid owner id %q", owner)
	}
	return nil
}

// Append persists a new record. The record's Owner, Customer, Amount and
// Type must be set; ID and CreatedAt are assigned here when empty.
func (s *Store) Append(ctx context.Context, rec *Record) error {
	if err := checkOwner(rec.Owner); err != nil {
		return err
	}
	if rec.Amount <= 0 {
		return fmt.Errorf("ledger: non-positive amount %d", rec.Amount)
	}
	if !rec.Type.Valid() {
		return fmt.Errorf("ledger: invalid type %q", rec.Type)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	b, err := msgpack.Marshal(rec)
	if err != nil {
		return fmt.Errorf("ledger: encode record: %w", err)
	}
	return s.kv.Set(ctx, key(rec.Owner, rec.ID), b)
}

// List returns all records of one owner, oldest first.
func (s *Store) List(ctx context.Context, owner string) ([]*Record, error) {
	if err := checkOwner(owner); err != nil {
		return nil, err
	}
	var records []*Record
	for e, err := range s.kv.List(ctx, kv.Key{"txn", owner}) {
		if err != nil {
			return nil, fmt.Errorf("ledger: list: %w", err)
		}
		var rec Record
		if err := msgpack.Unmarshal(e.Value, &rec); err != nil {
			return nil, fmt.Errorf("ledger: decode %s: %w", e.Key, err)
		}
		records = append(records, &rec)
	}
	slices.SortFunc(records, func(a, b *Record) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return records, nil
}

// Get returns one record by id, scoped to the owner.
func (s *Store) Get(ctx context.Context, owner, id string) (*Record, error) {
	if err := checkOwner(owner); err != nil {
		return nil, err
	}
	b, err := s.kv.Get(ctx, key(owner, id))
	if errors.Is(err, kv.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ledger: get: %w", err)
	}
	var rec Record
	if err := msgpack.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("ledger: decode %s: %w", id, err)
	}
	return &rec, nil
}

// Delete removes one record by id. Records owned by anyone else report
// ErrNotFound, never their existence.
func (s *Store) Delete(ctx context.Context, owner, id string) error {
	if _, err := s.Get(ctx, owner, id); err != nil {
		return err
	}
	return s.kv.Delete(ctx, key(owner, id))
}

// DeleteOn removes all of the owner's records created on the given UTC
// calendar day and returns how many were removed.
func (s *Store) DeleteOn(ctx context.Context, owner string, day time.Time) (int, error) {
	records, err := s.List(ctx, owner)
	if err != nil {
		return 0, err
	}
	y, m, d := day.UTC().Date()
	var doomed []kv.Key
	for _, rec := range records {
		ry, rm, rd := rec.CreatedAt.UTC().Date()
		if ry == y && rm == m && rd == d {
			doomed = append(doomed, key(owner, rec.ID))
		}
	}
	if len(doomed) == 0 {
		return 0, nil
	}
	if err := s.kv.BatchDelete(ctx, doomed); err != nil {
		return 0, fmt.Errorf("ledger: delete on %s: %w", day.Format("2006-01-02"), err)
	}
	return len(doomed), nil
}
