package engine

import "sync"

// SuggestionCache keeps the AI draft history per interaction. Appends only;
// regenerating never loses earlier drafts. The latest draft is the one shown.
type SuggestionCache struct {
	mu     sync.RWMutex
	drafts map[string][]string
}

// NewSuggestionCache creates an empty cache.
func NewSuggestionCache() *SuggestionCache {
	return &SuggestionCache{drafts: make(map[string][]string)}
}

// Append adds a draft to the history for id.
func (c *SuggestionCache) Append(id, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.drafts[id] = append(c.drafts[id], text)
}

// History returns the drafts for id in insertion order.
func (c *SuggestionCache) History(id string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.drafts[id]...)
}

// Latest returns the most recent draft for id.
func (c *SuggestionCache) Latest(id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	drafts := c.drafts[id]
	if len(drafts) == 0 {
		return "", false
	}
	return drafts[len(drafts)-1], true
}
