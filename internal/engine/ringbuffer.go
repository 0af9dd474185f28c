package engine

import (
	"sync"
	"time"
)

// RingBuffer is a thread-safe fixed-capacity circular buffer holding the
// most recent values added to it.
type RingBuffer[T any] struct {
	mu    sync.RWMutex
	items []T
	next  int
	full  bool
}

// NewRingBuffer creates a RingBuffer with the given capacity.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer[T]{items: make([]T, 0, capacity)}
}

// Add inserts an item, evicting the oldest once the buffer is full.
func (r *RingBuffer[T]) Add(item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		r.items = append(r.items, item)
		if len(r.items) == cap(r.items) {
			r.full = true
		}
		return
	}
	r.items[r.next] = item
	r.next = (r.next + 1) % len(r.items)
}

// Len returns the number of items currently held.
func (r *RingBuffer[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// All returns the held items from oldest to newest.
func (r *RingBuffer[T]) All() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.items))
	if !r.full {
		copy(out, r.items)
		return out
	}
	n := copy(out, r.items[r.next:])
	copy(out[n:], r.items[:r.next])
	return out
}

// Last returns the most recently added item.
func (r *RingBuffer[T]) Last() (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var zero T
	if len(r.items) == 0 {
		return zero, false
	}
	idx := r.next - 1
	if idx < 0 {
		idx = len(r.items) - 1
	}
	if !r.full {
		idx = len(r.items) - 1
	}
	return r.items[idx], true
}

// Window returns, oldest first, the samples whose timestamp (as extracted
// by at) falls within d of the newest sample. The layout's time-window
// options (qmin, min, hour, ...) select their data through this.
func Window[T any](r *RingBuffer[T], d time.Duration, at func(T) time.Time) []T {
	all := r.All()
	if len(all) == 0 {
		return nil
	}
	cutoff := at(all[len(all)-1]).Add(-d)
	for i, item := range all {
		if !at(item).Before(cutoff) {
			return all[i:]
		}
	}
	return nil
}
