package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// ErrWriteFailed wraps any medium write error (typically capacity). The
// mutation is not applied; the previously persisted value is untouched.
var ErrWriteFailed = fmt.Errorf("store: write failed")

// Entity is anything addressable by an opaque string id.
type Entity interface {
	EntityID() string
}

// Collection persists one entity type as a JSON array under a single
// well-known key. Reads never fail: a missing key or a value that does not
// parse is treated as an empty collection.
type Collection[T Entity] struct {
	kv  KV
	key string
}

func NewCollection[T Entity](kv KV, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

// All returns every item in insertion order. Missing or corrupt data reads
// as empty; there is nothing to recover from locally, so rebuilding from
// empty is always safe.
func (c *Collection[T]) All(ctx context.Context) []T {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil || !ok {
		return nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

// Get scans All for the given id.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool) {
	for _, item := range c.All(ctx) {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns the items matching pred, preserving order.
func (c *Collection[T]) Filter(ctx context.Context, pred func(T) bool) []T {
	var out []T
	for _, item := range c.All(ctx) {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Add appends item and rewrites the collection.
func (c *Collection[T]) Add(ctx context.Context, item T) error {
	return c.write(ctx, append(c.All(ctx), item))
}

// Update applies mutate to the item with the given id and rewrites the
// collection. A missing id is a no-op reported through the bool; the
// updated item is returned so callers can refresh any cached copy (for
// example a session user) themselves.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(*T)) (T, bool, error) {
	items := c.All(ctx)
	for i := range items {
		if items[i].EntityID() == id {
			mutate(&items[i])
			if err := c.write(ctx, items); err != nil {
				var zero T
				return zero, true, err
			}
			return items[i], true, nil
		}
	}
	var zero T
	return zero, false, nil
}

// Delete removes the item with the given id. A missing id is a no-op.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	items := c.All(ctx)
	for i := range items {
		if items[i].EntityID() == id {
			items = append(items[:i], items[i+1:]...)
			return true, c.write(ctx, items)
		}
	}
	return false, nil
}

// Replace rewrites the whole collection in one write. Cascading changes
// that touch many items go through here so the failure window is a single
// write rather than one per item.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	return c.write(ctx, items)
}

func (c *Collection[T]) write(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	buf, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, string(buf)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, c.key, err)
	}
	return nil
}
