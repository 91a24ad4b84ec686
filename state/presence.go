package state

import "sync"

// PresenceEntry is advisory and ephemeral: rebuilt from the friends
// fetch and stream events, never persisted.
type PresenceEntry struct {
	Online   bool
	LastSeen string
}

// PresenceTracker applies status changes last-write-wins. The transport
// guarantees delivery order per connection but nothing across
// reconnects, so a stale event arriving late can regress an entry. That
// is accepted: presence is advisory, not consistency-critical.
type PresenceTracker struct {
	mu      sync.RWMutex
	entries map[string]PresenceEntry
}

func NewPresenceTracker() *PresenceTracker {
	return &PresenceTracker{entries: make(map[string]PresenceEntry)}
}

func (t *PresenceTracker) Set(userID string, online bool, lastSeen string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[userID] = PresenceEntry{Online: online, LastSeen: lastSeen}
}

func (t *PresenceTracker) Get(userID string) (PresenceEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	entry, ok := t.entries[userID]
	return entry, ok
}

func (t *PresenceTracker) Snapshot() map[string]PresenceEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]PresenceEntry, len(t.entries))
	for id, entry := range t.entries {
		out[id] = entry
	}
	return out
}
