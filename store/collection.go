package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Collection is a typed view of one slot holding a JSON array.
type Collection[T any] struct {
	store Store
	key   string
	seed  func() []T
}

// NewCollection binds a slot. seed, if non-nil, supplies the records written the first
// time the slot is read and found empty.
func NewCollection[T any](s Store, key string, seed func() []T) *Collection[T] {
	return &Collection[T]{store: s, key: key, seed: seed}
}

// Load returns the whole collection, seeding the slot first if it has never been written.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	data, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !found {
		var records []T
		if c.seed != nil {
			records = c.seed()
		}
		if records == nil {
			records = []T{}
		}
		if err := c.Save(ctx, records); err != nil {
			return nil, fmt.Errorf("seed %s: %w", c.key, err)
		}
		return records, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save replaces the whole collection.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	return c.store.Put(ctx, c.key, data)
}
