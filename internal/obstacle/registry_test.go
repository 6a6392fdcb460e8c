package obstacle

import (
	"testing"

	"github.com/vovakirdan/space-garbage/internal/core"
)

func TestAddGetRemove(t *testing.T) {
	r := NewRegistry()

	a := r.Add(0, 10, 3, 2)
	b := r.Add(0, 20, 4, 1)
	c := r.Add(0, 30, 2, 2)

	if a == b || b == c || a == c {
		t.Fatalf("ids must be unique: %d %d %d", a, b, c)
	}
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", r.Len())
	}

	r.Remove(a)
	if _, ok := r.Get(a); ok {
		t.Error("removed obstacle should be gone")
	}

	// Swap-remove must keep the index of the moved obstacle correct
	o, ok := r.Get(c)
	if !ok || o.Col != 30 {
		t.Errorf("Get(c) = %+v, %v after removing a", o, ok)
	}
	o, ok = r.Get(b)
	if !ok || o.Col != 20 {
		t.Errorf("Get(b) = %+v, %v after removing a", o, ok)
	}

	// Removing twice is harmless
	r.Remove(a)
	if r.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", r.Len())
	}
}

func TestIDsNeverReused(t *testing.T) {
	r := NewRegistry()
	seen := make(map[ID]bool)

	for i := 0; i < 100; i++ {
		id := r.Add(0, i, 1, 1)
		if seen[id] {
			t.Fatalf("id %d reused", id)
		}
		seen[id] = true
		if i%2 == 0 {
			r.Remove(id)
		}
	}
}

func TestSetRowAndBounds(t *testing.T) {
	r := NewRegistry()
	id := r.Add(0, 7, 2, 2)

	r.SetRow(id, 4.6)
	o, _ := r.Get(id)
	if got := o.Bounds(); got != core.NewRect(7, 5, 2, 2) {
		t.Errorf("Bounds() = %+v, expected row rounded to 5", got)
	}

	// Unknown id is ignored
	r.SetRow(ID(999), 3)
}

func TestDestroyedLifecycle(t *testing.T) {
	r := NewRegistry()
	id := r.Add(0, 0, 1, 1)

	if r.MarkDestroyed(ID(42)) {
		t.Error("MarkDestroyed on an absent id should be a no-op")
	}
	if r.DestroyedLen() != 0 {
		t.Error("absent id must not enter the destroyed set")
	}

	if !r.MarkDestroyed(id) {
		t.Fatal("MarkDestroyed on a live id should succeed")
	}
	if !r.IsDestroyed(id) || !r.Consistent() {
		t.Error("flag should be pending and consistent")
	}

	if !r.ConsumeDestroyed(id) {
		t.Error("ConsumeDestroyed should report the flag")
	}
	if r.ConsumeDestroyed(id) {
		t.Error("flag must be consumed exactly once")
	}
}

func TestRemoveClearsDestroyedFlag(t *testing.T) {
	r := NewRegistry()
	id := r.Add(0, 0, 1, 1)
	r.MarkDestroyed(id)
	r.Remove(id)

	if r.IsDestroyed(id) {
		t.Error("Remove should drop the pending destroyed flag")
	}
	if !r.Consistent() {
		t.Error("registry inconsistent after Remove")
	}
}

func TestHit(t *testing.T) {
	r := NewRegistry()
	r.Add(0, 0, 2, 2)
	target := r.Add(5, 7, 2, 2)

	tests := []struct {
		name   string
		box    core.Rect
		wantID ID
		hit    bool
	}{
		{"ship overlapping debris", core.NewRect(5, 5, 5, 2), target, true},
		{"projectile cell inside debris", core.NewRect(8, 6, 1, 1), target, true},
		{"miss to the right", core.NewRect(9, 5, 1, 1), 0, false},
		{"miss below", core.NewRect(7, 7, 1, 1), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := r.Hit(tc.box)
			if ok != tc.hit || id != tc.wantID {
				t.Errorf("Hit(%+v) = (%d, %v), expected (%d, %v)", tc.box, id, ok, tc.wantID, tc.hit)
			}
		})
	}
}

func TestEach(t *testing.T) {
	r := NewRegistry()
	r.Add(0, 1, 1, 1)
	r.Add(0, 2, 1, 1)

	sum := 0
	r.Each(func(o Obstacle) { sum += o.Col })
	if sum != 3 {
		t.Errorf("Each visited columns summing to %d, expected 3", sum)
	}
}
