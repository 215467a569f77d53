package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"oneearth/store"
)

// ErrNotFound is returned by lookups and updates of ids that are not stored.
var ErrNotFound = errors.New("record not found")

// table is a collection plus the read-modify-write helpers every repository shares.
// Mutations hold mu for the whole cycle. Reads lock only until the slot is known to exist,
// since loading a missing slot writes the seed.
type table[T any] struct {
	mu     sync.Mutex
	seeded atomic.Bool
	coll   *store.Collection[T]
	id     func(*T) string
}

func newTable[T any](coll *store.Collection[T], id func(*T) string) *table[T] {
	return &table[T]{coll: coll, id: id}
}

// load is the read path. Callers must not hold mu.
func (t *table[T]) load(ctx context.Context) ([]T, error) {
	if t.seeded.Load() {
		return t.coll.Load(ctx)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadLocked(ctx)
}

// loadLocked is load for callers holding mu.
func (t *table[T]) loadLocked(ctx context.Context) ([]T, error) {
	records, err := t.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	t.seeded.Store(true)
	return records, nil
}

func (t *table[T]) list(ctx context.Context) ([]T, error) {
	return t.load(ctx)
}

func (t *table[T]) first(ctx context.Context, match func(*T) bool) (*T, error) {
	records, err := t.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if match(&records[i]) {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, ErrNotFound
}

func (t *table[T]) get(ctx context.Context, id string) (*T, error) {
	return t.first(ctx, func(rec *T) bool { return t.id(rec) == id })
}

func (t *table[T]) filter(ctx context.Context, keep func(*T) bool) ([]T, error) {
	records, err := t.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for i := range records {
		if keep(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out, nil
}

func (t *table[T]) insert(ctx context.Context, rec T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	records, err := t.loadLocked(ctx)
	if err != nil {
		return err
	}
	return t.coll.Save(ctx, append(records, rec))
}

// insertIfAbsent appends rec unless a stored record matches exists, in which case that
// record is returned and nothing is written.
func (t *table[T]) insertIfAbsent(ctx context.Context, exists func(*T) bool, rec T) (T, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	records, err := t.loadLocked(ctx)
	if err != nil {
		return rec, false, err
	}
	for i := range records {
		if exists(&records[i]) {
			return records[i], false, nil
		}
	}
	if err := t.coll.Save(ctx, append(records, rec)); err != nil {
		return rec, false, err
	}
	return rec, true, nil
}

// mutate applies fn to the stored record with the given id and writes the collection back.
// It returns the record before and after fn.
func (t *table[T]) mutate(ctx context.Context, id string, fn func(*T)) (before, after *T, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	records, err := t.loadLocked(ctx)
	if err != nil {
		return nil, nil, err
	}
	for i := range records {
		if t.id(&records[i]) != id {
			continue
		}
		prev := records[i]
		fn(&records[i])
		if err := t.coll.Save(ctx, records); err != nil {
			return nil, nil, err
		}
		next := records[i]
		return &prev, &next, nil
	}
	return nil, nil, ErrNotFound
}

// remove reports whether the collection shrank.
func (t *table[T]) remove(ctx context.Context, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	records, err := t.loadLocked(ctx)
	if err != nil {
		return false, err
	}
	kept := make([]T, 0, len(records))
	for i := range records {
		if t.id(&records[i]) != id {
			kept = append(kept, records[i])
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}
	if err := t.coll.Save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}
