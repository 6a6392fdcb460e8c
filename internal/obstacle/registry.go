// Package obstacle tracks the debris currently on screen.
//
// The registry is an arena: obstacles live in a dense slice, an index maps
// ids to slots, and ids grow monotonically so a removed id is never reused.
// Tasks hold ids, never pointers, across ticks.
package obstacle

import (
	"math"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// ID identifies an obstacle for its whole life.
type ID uint64

// Obstacle is a falling piece of debris. Row is fractional because debris
// falls at sub-cell speeds; collision uses the rounded row.
type Obstacle struct {
	ID  ID
	Row float64
	Col int
	W   int
	H   int
}

// Bounds implements core.BoundingBox.
func (o Obstacle) Bounds() core.Rect {
	return core.NewRect(o.Col, int(math.Round(o.Row)), o.W, o.H)
}

// Registry is the shared obstacle store plus the set of ids a projectile has
// flagged as destroyed. It is not safe for concurrent use; the scheduler is
// single-threaded.
type Registry struct {
	items     []Obstacle
	index     map[ID]int
	destroyed map[ID]struct{}
	nextID    ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index:     make(map[ID]int),
		destroyed: make(map[ID]struct{}),
		nextID:    1,
	}
}

// Add registers a new obstacle and returns its id.
func (r *Registry) Add(row float64, col, w, h int) ID {
	id := r.nextID
	r.nextID++

	r.index[id] = len(r.items)
	r.items = append(r.items, Obstacle{ID: id, Row: row, Col: col, W: w, H: h})
	return id
}

// Get returns the obstacle with the given id.
func (r *Registry) Get(id ID) (Obstacle, bool) {
	slot, ok := r.index[id]
	if !ok {
		return Obstacle{}, false
	}
	return r.items[slot], true
}

// SetRow moves an obstacle. Unknown ids are ignored.
func (r *Registry) SetRow(id ID, row float64) {
	if slot, ok := r.index[id]; ok {
		r.items[slot].Row = row
	}
}

// Remove deletes an obstacle and any pending destroyed flag for it.
// The last obstacle is swapped into the freed slot.
func (r *Registry) Remove(id ID) {
	slot, ok := r.index[id]
	if !ok {
		return
	}

	last := len(r.items) - 1
	if slot != last {
		r.items[slot] = r.items[last]
		r.index[r.items[slot].ID] = slot
	}
	r.items = r.items[:last]

	delete(r.index, id)
	delete(r.destroyed, id)
}

// MarkDestroyed flags a live obstacle for its owner to consume.
// It returns false, and does nothing, if the id is not live.
func (r *Registry) MarkDestroyed(id ID) bool {
	if _, ok := r.index[id]; !ok {
		return false
	}
	r.destroyed[id] = struct{}{}
	return true
}

// IsDestroyed reports whether id carries a pending destroyed flag.
func (r *Registry) IsDestroyed(id ID) bool {
	_, ok := r.destroyed[id]
	return ok
}

// ConsumeDestroyed clears the destroyed flag for id and reports whether it
// was set.
func (r *Registry) ConsumeDestroyed(id ID) bool {
	if _, ok := r.destroyed[id]; !ok {
		return false
	}
	delete(r.destroyed, id)
	return true
}

// Hit returns the first live obstacle colliding with box, in slot order.
func (r *Registry) Hit(box core.BoundingBox) (ID, bool) {
	b := box.Bounds()
	for i := range r.items {
		if r.items[i].Bounds().Intersects(b) {
			return r.items[i].ID, true
		}
	}
	return 0, false
}

// Len returns the number of live obstacles.
func (r *Registry) Len() int {
	return len(r.items)
}

// DestroyedLen returns the number of pending destroyed flags.
func (r *Registry) DestroyedLen() int {
	return len(r.destroyed)
}

// Each calls fn for every live obstacle. fn must not modify the registry.
func (r *Registry) Each(fn func(Obstacle)) {
	for _, o := range r.items {
		fn(o)
	}
}

// Consistent reports whether every destroyed id is live.
func (r *Registry) Consistent() bool {
	for id := range r.destroyed {
		if _, ok := r.index[id]; !ok {
			return false
		}
	}
	return true
}
