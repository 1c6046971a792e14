package controller

import (
	"sync"
)

// Entry is a record together with its key. Keys are unique for the
// lifetime of the collection and never reused, unlike record ids.
type Entry[T any] struct {
	Key  int
	Item T
}

// Collection is an ordered in memory list of records keyed by a
// numeric id. New records get the id len+1, so ids are reused after
// deletes and may collide. Updates and deletes affect every record
// carrying the id.
type Collection[T any] struct {
	mu      sync.RWMutex
	entries []Entry[T]
	seq     int
	id      func(T) int
	setID   func(*T, int)
}

func NewCollection[T any](seed []T, id func(T) int, setID func(*T, int)) *Collection[T] {
	c := &Collection[T]{
		entries: make([]Entry[T], 0, len(seed)),
		id:      id,
		setID:   setID,
	}
	for _, item := range seed {
		c.seq++
		c.entries = append(c.entries, Entry[T]{Key: c.seq, Item: item})
	}
	return c
}

// All returns a copy of all records in insertion order
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]T, len(c.entries))
	for i, e := range c.entries {
		items[i] = e.Item
	}
	return items
}

// Entries returns a copy of all records with their keys
func (c *Collection[T]) Entries() []Entry[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entries := make([]Entry[T], len(c.entries))
	copy(entries, c.entries)
	return entries
}

// Select returns the records with the given keys in insertion order,
// unknown keys are ignored.
func (c *Collection[T]) Select(keys []int) []T {
	set := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]T, 0, len(keys))
	for _, e := range c.entries {
		if _, ok := set[e.Key]; ok {
			items = append(items, e.Item)
		}
	}
	return items
}

// Find returns the first record with the id
func (c *Collection[T]) Find(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.entries {
		if c.id(e.Item) == id {
			return e.Item, true
		}
	}
	var zero T
	return zero, false
}

// Add appends the record and assigns its id
func (c *Collection[T]) Add(item T) Entry[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setID(&item, len(c.entries)+1)
	c.seq++
	e := Entry[T]{Key: c.seq, Item: item}
	c.entries = append(c.entries, e)
	return e
}

// Update calls fn for every record with the id and returns the updated
// records. Records are only changed if fn succeeds for all of them.
func (c *Collection[T]) Update(id int, fn func(item *T) error) ([]Entry[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var updated []Entry[T]
	var positions []int
	for i, e := range c.entries {
		if c.id(e.Item) != id {
			continue
		}
		err := fn(&e.Item)
		if err != nil {
			return nil, err
		}
		c.setID(&e.Item, id)
		updated = append(updated, e)
		positions = append(positions, i)
	}
	for i, pos := range positions {
		c.entries[pos] = updated[i]
	}
	return updated, nil
}

// Delete removes all records with the id and returns their keys
func (c *Collection[T]) Delete(id int) []int {
	keys, _ := c.DeleteIf(id, nil)
	return keys
}

// DeleteIf removes all records with the id if check passes for each
// of them, otherwise nothing is removed. The keys of the removed
// records are returned.
func (c *Collection[T]) DeleteIf(id int, check func(item T) error) ([]int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if check != nil {
		for _, e := range c.entries {
			if c.id(e.Item) != id {
				continue
			}
			if err := check(e.Item); err != nil {
				return nil, err
			}
		}
	}

	var removed []int
	kept := c.entries[:0]
	for _, e := range c.entries {
		if c.id(e.Item) == id {
			removed = append(removed, e.Key)
			continue
		}
		kept = append(kept, e)
	}
	var zero Entry[T]
	for i := len(kept); i < len(c.entries); i++ {
		c.entries[i] = zero
	}
	c.entries = kept
	return removed, nil
}
