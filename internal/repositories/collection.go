package repositories

import (
	"sort"
	"sync"
	"time"
)

// stampable is satisfied by pointers to the db_models records, which all embed BaseModel.
type stampable[T any] interface {
	*T
	Stamp(id int64, createdAt time.Time)
	Key() int64
	Created() time.Time
}

// collection is one entity table: records by id plus a counter that only moves forward.
// Records go in and come out by value, so nothing outside holds a reference to stored state.
type collection[T any, P stampable[T]] struct {
	mu     sync.RWMutex
	lastID int64
	items  map[int64]T
	now    func() time.Time
}

func newCollection[T any, P stampable[T]](now func() time.Time) *collection[T, P] {
	return &collection[T, P]{
		items: make(map[int64]T),
		now:   now,
	}
}

func (c *collection[T, P]) insert(v T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insertLocked(v, c.now())
}

// insertAt stores v with an explicit creation time (demo seeding).
func (c *collection[T, P]) insertAt(v T, createdAt time.Time) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insertLocked(v, createdAt)
}

// insertIf runs check against the current records and inserts only when it passes,
// all under the write lock.
func (c *collection[T, P]) insertIf(v T, check func(existing []T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing := make([]T, 0, len(c.items))
	for _, item := range c.items {
		existing = append(existing, item)
	}
	if err := check(existing); err != nil {
		var zero T
		return zero, err
	}
	return c.insertLocked(v, c.now()), nil
}

func (c *collection[T, P]) insertLocked(v T, createdAt time.Time) T {
	c.lastID++
	P(&v).Stamp(c.lastID, createdAt)
	c.items[c.lastID] = v
	return v
}

func (c *collection[T, P]) get(id int64) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	if !ok {
		return nil, false
	}
	return &v, true
}

// find returns the first record, in id order, matching pred.
func (c *collection[T, P]) find(pred func(T) bool) *T {
	for _, v := range c.filter(pred) {
		return &v
	}
	return nil
}

// update applies mutate to a copy of the record and stores the copy.
// Update types only reach mutable fields, so id and createdAt survive.
func (c *collection[T, P]) update(id int64, mutate func(*T)) (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.items[id]
	if !ok {
		return nil, false
	}
	mutate(&v)
	c.items[id] = v
	return &v, true
}

func (c *collection[T, P]) remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

// removeWhere deletes every record matching pred and reports how many went.
func (c *collection[T, P]) removeWhere(pred func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for id, v := range c.items {
		if pred(v) {
			delete(c.items, id)
			removed++
		}
	}
	return removed
}

// filter scans all records and returns the matches in id order.
func (c *collection[T, P]) filter(pred func(T) bool) []T {
	c.mu.RLock()
	out := make([]T, 0)
	for _, v := range c.items {
		if pred == nil || pred(v) {
			out = append(out, v)
		}
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return P(&out[i]).Key() < P(&out[j]).Key()
	})
	return out
}

// filterNewest is filter ordered most recent first; ids break createdAt ties.
func (c *collection[T, P]) filterNewest(pred func(T) bool) []T {
	out := c.filter(pred)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := P(&out[i]), P(&out[j])
		if !a.Created().Equal(b.Created()) {
			return a.Created().After(b.Created())
		}
		return a.Key() > b.Key()
	})
	return out
}
