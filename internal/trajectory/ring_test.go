package trajectory

import (
	"testing"

	"github.com/san-kum/lorenzviz/internal/lorenz"
)

func point(i int) lorenz.State {
	return lorenz.State{X: float64(i)}
}

func TestNewHoldsSeed(t *testing.T) {
	seed := lorenz.State{X: 1, Y: 2, Z: 3}
	r, err := New(seed, 10)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("expected length 1, got %d", r.Len())
	}
	if got := r.Last(); got != seed {
		t.Errorf("expected seed %+v, got %+v", seed, got)
	}
}

func TestNewRejectsZeroBound(t *testing.T) {
	if _, err := New(lorenz.State{}, 0); err == nil {
		t.Error("expected error for bound 0")
	}
	if _, err := New(lorenz.State{}, -5); err == nil {
		t.Error("expected error for negative bound")
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	r, _ := New(point(0), 100)
	for i := 1; i <= 9; i++ {
		r.Append(point(i))
	}

	snap := r.Snapshot(nil)
	if len(snap) != 10 {
		t.Fatalf("expected 10 points, got %d", len(snap))
	}
	for i, s := range snap {
		if s != point(i) {
			t.Errorf("index %d: expected %+v, got %+v", i, point(i), s)
		}
	}
}

// Appending past capacity must evict oldest points only, keeping the
// newest in original order.
func TestAppendEvictsOldest(t *testing.T) {
	r, _ := New(point(1), 5)
	for i := 2; i <= 10; i++ {
		r.Append(point(i))
	}

	if r.Len() != 5 {
		t.Fatalf("expected length 5, got %d", r.Len())
	}
	snap := r.Snapshot(nil)
	for i, s := range snap {
		want := point(i + 6)
		if s != want {
			t.Errorf("index %d: expected %+v, got %+v", i, want, s)
		}
	}
}

func TestEnforceBoundShrinks(t *testing.T) {
	r, _ := New(point(1), 100)
	for i := 2; i <= 10; i++ {
		r.Append(point(i))
	}

	if err := r.EnforceBound(5); err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if r.Len() != 5 {
		t.Fatalf("expected length 5, got %d", r.Len())
	}
	// survivors are exactly points 6..10
	snap := r.Snapshot(nil)
	for i, s := range snap {
		want := point(i + 6)
		if s != want {
			t.Errorf("index %d: expected %+v, got %+v", i, want, s)
		}
	}
}

func TestEnforceBoundGrows(t *testing.T) {
	r, _ := New(point(0), 3)
	r.Append(point(1))
	r.Append(point(2))
	r.Append(point(3)) // evicts point 0

	if err := r.EnforceBound(10); err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if r.Cap() != 10 {
		t.Errorf("expected capacity 10, got %d", r.Cap())
	}
	snap := r.Snapshot(nil)
	if len(snap) != 3 {
		t.Fatalf("expected 3 points, got %d", len(snap))
	}
	for i, s := range snap {
		if s != point(i+1) {
			t.Errorf("index %d: expected %+v, got %+v", i, point(i+1), s)
		}
	}

	// new room is usable
	for i := 4; i <= 10; i++ {
		r.Append(point(i))
	}
	if r.Len() != 10 {
		t.Errorf("expected length 10 after refill, got %d", r.Len())
	}
}

func TestEnforceBoundRejectsZero(t *testing.T) {
	r, _ := New(point(0), 5)
	if err := r.EnforceBound(0); err == nil {
		t.Error("expected error for bound 0")
	}
	if r.Len() != 1 {
		t.Errorf("failed enforce must not mutate; length is %d", r.Len())
	}
}

func TestResetAlwaysYieldsSingleSeed(t *testing.T) {
	r, _ := New(point(0), 8)
	for i := 1; i <= 20; i++ {
		r.Append(point(i))
	}

	seed := lorenz.State{X: -1, Y: -2, Z: -3}
	r.Reset(seed)

	if r.Len() != 1 {
		t.Fatalf("expected length 1 after reset, got %d", r.Len())
	}
	if got := r.Last(); got != seed {
		t.Errorf("expected %+v, got %+v", seed, got)
	}

	// idempotent
	r.Reset(seed)
	if r.Len() != 1 || r.Last() != seed {
		t.Error("second reset changed the outcome")
	}
}

// Snapshot must stitch the two arena halves correctly after wraparound.
func TestSnapshotAfterWraparound(t *testing.T) {
	r, _ := New(point(0), 4)
	for i := 1; i <= 6; i++ {
		r.Append(point(i))
	}

	snap := r.Snapshot(nil)
	want := []int{3, 4, 5, 6}
	for i, w := range want {
		if snap[i] != point(w) {
			t.Errorf("index %d: expected %+v, got %+v", i, point(w), snap[i])
		}
	}
}

func TestSnapshotReusesBuffer(t *testing.T) {
	r, _ := New(point(0), 10)
	r.Append(point(1))

	buf := make([]lorenz.State, 0, 10)
	snap := r.Snapshot(buf)
	if len(snap) != 2 {
		t.Fatalf("expected 2 points, got %d", len(snap))
	}
	if &snap[0] != &buf[:1][0] {
		t.Error("expected snapshot to reuse the provided buffer")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	r, _ := New(point(0), 10)
	snap := r.Snapshot(nil)
	snap[0] = point(99)

	if r.Last() == point(99) {
		t.Error("mutating the snapshot must not affect the store")
	}
}
