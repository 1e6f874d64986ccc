// Package viewstate holds the list state of one resource view. Fetches are
// tagged with a monotonic sequence number so a slow fetch resolving after a
// newer one cannot regress the view to stale data.
package viewstate

import "sync"

// List is the collection state of one view instance.
//
// Usage per fetch: take a sequence with Begin before dispatching the request,
// then hand the result to Apply. Apply installs the items only if no newer
// fetch was started in the meantime.
type List[T any] struct {
	mu     sync.Mutex
	items  []T
	seq    uint64
	newest uint64
}

// Begin registers a new fetch and returns its sequence number.
func (l *List[T]) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	l.newest = l.seq
	return l.seq
}

// Apply installs items if seq still belongs to the newest fetch. It reports
// whether the result was applied; stale results are discarded.
func (l *List[T]) Apply(seq uint64, items []T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.newest {
		return false
	}
	l.items = items
	return true
}

// Items returns a snapshot of the current list.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the current item count.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Clear drops the items without invalidating in-flight fetches.
func (l *List[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
}
