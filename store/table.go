// Package store implements the kernel's typed, multi-indexed object
// container: create/modify/remove with automatic secondary-index
// maintenance, all mutations recorded against an undo.Session so that an
// enclosing rollback restores the table to its pre-scope state exactly.
//
// Record types are plain structs; Table[T] owns storage for one record kind
// at a time (one Table per Go type, e.g. Table[objects.Account]).
package store

import (
	"fmt"

	"github.com/weyoume/wenode-sub002/kernelerr"
	"github.com/weyoume/wenode-sub002/undo"
)

// Identified is implemented by every record kind; the primary key is a
// monotonic identity assigned at creation, never reused.
type Identified interface {
	ObjectID() uint64
	setObjectID(uint64)
}

// Base embeds into every record type to supply the identity field and
// satisfy Identified without repeating boilerplate accessors.
type Base struct {
	ID uint64
}

func (b *Base) ObjectID() uint64    { return b.ID }
func (b *Base) setObjectID(id uint64) { b.ID = id }

// index is the narrow interface Table uses to keep a secondary index in
// sync; concrete implementations live in index.go.
type index[T any] interface {
	insert(rec *T)
	remove(rec *T)
}

// Table is a generic, indexed collection of one record kind.
type Table[T any] struct {
	records map[uint64]*T
	nextID  uint64
	indexes []index[T]
}

// NewTable constructs an empty table. Call AddIndex for every declared
// secondary index before any record is created.
func NewTable[T any]() *Table[T] {
	return &Table[T]{records: make(map[uint64]*T)}
}

// AddIndex registers a secondary index. Indexes must be added before any
// records exist in the table (normally at kernel construction time).
func (t *Table[T]) AddIndex(idx index[T]) {
	t.indexes = append(t.indexes, idx)
}

func toIdentified(rec any) Identified {
	ident, ok := rec.(Identified)
	if !ok {
		panic(fmt.Sprintf("store: %T does not embed store.Base", rec))
	}
	return ident
}

// Create allocates a new identity, runs init to populate the record, inserts
// it into the primary map and every secondary index, and records the
// inverse (full removal) on sess.
func (t *Table[T]) Create(sess *undo.Session, init func(*T)) *T {
	rec := new(T)
	init(rec)
	id := t.nextID + 1
	t.nextID = id
	toIdentified(rec).setObjectID(id)
	t.records[id] = rec
	for _, idx := range t.indexes {
		idx.insert(rec)
	}
	sess.Record(func() {
		delete(t.records, id)
		for _, idx := range t.indexes {
			idx.remove(rec)
		}
	})
	return rec
}

// Modify applies mut to rec inside an undo-recording wrapper: secondary
// index keys are removed under the old values, mut runs, then the record is
// re-inserted under its new key values. A snapshot copy is captured first so
// Rollback restores the exact prior field values.
func (t *Table[T]) Modify(sess *undo.Session, rec *T, mut func(*T)) {
	before := *rec
	for _, idx := range t.indexes {
		idx.remove(rec)
	}
	mut(rec)
	// identity is immutable; a mutator must never change it.
	toIdentified(rec).setObjectID(toIdentified(&before).ObjectID())
	for _, idx := range t.indexes {
		idx.insert(rec)
	}
	sess.Record(func() {
		for _, idx := range t.indexes {
			idx.remove(rec)
		}
		*rec = before
		for _, idx := range t.indexes {
			idx.insert(rec)
		}
	})
}

// Remove unlinks rec from the primary map and every secondary index,
// recording the inverse (full re-insertion) on sess.
func (t *Table[T]) Remove(sess *undo.Session, rec *T) {
	id := toIdentified(rec).ObjectID()
	delete(t.records, id)
	for _, idx := range t.indexes {
		idx.remove(rec)
	}
	sess.Record(func() {
		t.records[id] = rec
		for _, idx := range t.indexes {
			idx.insert(rec)
		}
	})
}

// Get fetches by primary identity.
func (t *Table[T]) Get(id uint64) (*T, bool) {
	rec, ok := t.records[id]
	return rec, ok
}

// MustGet fetches by primary identity or fails with ErrNotFound.
func (t *Table[T]) MustGet(id uint64) (*T, error) {
	rec, ok := t.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: object id %d", kernelerr.ErrNotFound, id)
	}
	return rec, nil
}

// Len reports the number of live records. Used by tests and invariant
// checks, never by consensus-critical code (iteration order there always
// comes from a declared index, never map iteration).
func (t *Table[T]) Len() int { return len(t.records) }

// Each calls fn for every record in unspecified (map) order. Only safe for
// non-consensus-critical summaries; evaluators must use a declared index's
// Range instead.
func (t *Table[T]) Each(fn func(*T)) {
	for _, rec := range t.records {
		fn(rec)
	}
}
