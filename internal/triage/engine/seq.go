package engine

import "sync"

// SeqGuard serializes racing refreshes of the same resource. Each request
// takes a monotonically increasing sequence number; a response is applied
// only if no later request has been issued since. Stale responses are
// discarded instead of clobbering fresher data.
type SeqGuard struct {
	mu   sync.Mutex
	next map[string]uint64
	last map[string]uint64
}

// NewSeqGuard creates an empty guard.
func NewSeqGuard() *SeqGuard {
	return &SeqGuard{
		next: make(map[string]uint64),
		last: make(map[string]uint64),
	}
}

// Begin reserves the next sequence number for resource.
func (g *SeqGuard) Begin(resource string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next[resource]++
	return g.next[resource]
}

// Commit reports whether a response with the given sequence number may be
// applied, recording it as the latest applied when so.
func (g *SeqGuard) Commit(resource string, seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if seq < g.next[resource] {
		// A newer request was issued after this one started.
		return false
	}
	if seq <= g.last[resource] {
		return false
	}
	g.last[resource] = seq
	return true
}
