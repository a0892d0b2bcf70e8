package generation

import "sync"

// flightTable tracks which session/flow pairs have a request in flight.
// Each flow for a session runs one request at a time; a second request
// while the first is pending is rejected, it does not queue.
type flightTable struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

// acquire marks the key as in flight. Reports false if it already is.
func (t *flightTable) acquire(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending == nil {
		t.pending = make(map[string]struct{})
	}
	if _, ok := t.pending[key]; ok {
		return false
	}
	t.pending[key] = struct{}{}
	return true
}

// release clears the key.
func (t *flightTable) release(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.pending, key)
}
