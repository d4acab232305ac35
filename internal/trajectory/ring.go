// Package trajectory stores the visited states of a simulation run in
// time order, bounded by a maximum point count with oldest-first
// eviction.
package trajectory

import (
	"errors"
	"fmt"

	"github.com/san-kum/lorenzviz/internal/lorenz"
)

// ErrZeroBound is returned when a capacity bound below one point is
// requested; the store must always be able to hold the seed state.
var ErrZeroBound = errors.New("trajectory: bound must be at least 1")

// Ring is a fixed-arena ring buffer of states. Eviction of the oldest
// points is O(1) per point: only the head index moves. The zero value
// is not usable; construct with New.
//
// Ring is not safe for concurrent use. The single-threaded frame loop
// (step batch, then one Snapshot read) needs no locking; an
// implementation that moves stepping to a worker must hand the Ring
// over wholesale between writer and reader.
type Ring struct {
	arena []lorenz.State
	head  int // index of the oldest element
	size  int // number of live elements
}

// New creates a store holding exactly seed, with capacity maxPoints.
func New(seed lorenz.State, maxPoints int) (*Ring, error) {
	if maxPoints < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrZeroBound, maxPoints)
	}
	r := &Ring{arena: make([]lorenz.State, maxPoints)}
	r.arena[0] = seed
	r.size = 1
	return r, nil
}

func (r *Ring) Len() int { return r.size }

// Cap returns the current capacity bound.
func (r *Ring) Cap() int { return len(r.arena) }

// Append adds s as the newest point. If the arena is full the oldest
// point is evicted to make room.
func (r *Ring) Append(s lorenz.State) {
	if r.size < len(r.arena) {
		r.arena[(r.head+r.size)%len(r.arena)] = s
		r.size++
		return
	}
	r.arena[r.head] = s
	r.head = (r.head + 1) % len(r.arena)
}

// EnforceBound shrinks the capacity to maxPoints, dropping the oldest
// points so that the newest maxPoints survive in original order. When
// maxPoints grows the retained points are untouched and room is added.
// A no-op when the bound is unchanged and the store is within it.
func (r *Ring) EnforceBound(maxPoints int) error {
	if maxPoints < 1 {
		return fmt.Errorf("%w (got %d)", ErrZeroBound, maxPoints)
	}
	if maxPoints == len(r.arena) {
		return nil
	}
	keep := r.size
	if keep > maxPoints {
		keep = maxPoints
	}
	arena := make([]lorenz.State, maxPoints)
	// newest keep points, oldest-first
	start := r.size - keep
	for i := 0; i < keep; i++ {
		arena[i] = r.at(start + i)
	}
	r.arena = arena
	r.head = 0
	r.size = keep
	return nil
}

// Reset discards everything and reseeds with a single state.
func (r *Ring) Reset(seed lorenz.State) {
	r.arena[0] = seed
	r.head = 0
	r.size = 1
}

// Last returns the newest point. The store is never empty, so Last is
// always defined.
func (r *Ring) Last() lorenz.State {
	return r.at(r.size - 1)
}

// Snapshot copies the live points, oldest first, into dst (grown as
// needed) and returns the filled slice. The returned slice is owned by
// the caller; the Ring never retains or mutates it. Reusing dst across
// frames avoids a per-frame allocation.
func (r *Ring) Snapshot(dst []lorenz.State) []lorenz.State {
	if cap(dst) < r.size {
		dst = make([]lorenz.State, r.size)
	}
	dst = dst[:r.size]
	n := copy(dst, r.arena[r.head:min(r.head+r.size, len(r.arena))])
	copy(dst[n:], r.arena[:r.size-n])
	return dst
}

func (r *Ring) at(i int) lorenz.State {
	return r.arena[(r.head+i)%len(r.arena)]
}
