package view

import (
	"sync"

	"github.com/tapeworks/tickertape/internal/ticker"
)

// UpdateTape is a bounded ring buffer of recent display updates.
type UpdateTape struct {
	mu    sync.RWMutex
	buf   []ticker.DisplayUpdate
	size  int
	start int
	count int
}

// NewUpdateTape creates an UpdateTape with the given capacity.
func NewUpdateTape(capacity int) *UpdateTape {
	if capacity <= 0 {
		capacity = 100
	}
	return &UpdateTape{
		buf:  make([]ticker.DisplayUpdate, capacity),
		size: capacity,
	}
}

// Append adds an update to the tape.
func (t *UpdateTape) Append(u ticker.DisplayUpdate) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.count < t.size {
		t.buf[(t.start+t.count)%t.size] = u
		t.count++
		return
	}
	// overwrite oldest
	t.buf[t.start] = u
	t.start = (t.start + 1) % t.size
}

// Last returns the last n updates in chronological order (oldest
// first). Returns a copy, not internal references.
func (t *UpdateTape) Last(n int) []ticker.DisplayUpdate {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n <= 0 || t.count == 0 {
		return nil
	}
	if n > t.count {
		n = t.count
	}
	out := make([]ticker.DisplayUpdate, n)
	first := (t.start + (t.count - n)) % t.size
	for i := 0; i < n; i++ {
		out[i] = t.buf[(first+i)%t.size]
	}
	return out
}

// Count returns the number of updates on the tape.
func (t *UpdateTape) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}
