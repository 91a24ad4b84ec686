package state

import (
	"sort"
	"sync"
	"time"
)

type typingEntry struct {
	username string
	deadline time.Time
}

// TypingTracker is the receiving side of typing indicators. Entries are
// scoped per room and carry a hard deadline: stop signals can be lost on
// abrupt disconnect, so an entry that is never refreshed expires on its
// own instead of ghosting forever.
type TypingTracker struct {
	mu    sync.Mutex
	ttl   time.Duration
	rooms map[string]map[string]typingEntry
}

func NewTypingTracker(ttl time.Duration) *TypingTracker {
	return &TypingTracker{
		ttl:   ttl,
		rooms: make(map[string]map[string]typingEntry),
	}
}

// Start records (or refreshes) a typing entry for roomID/userID.
func (t *TypingTracker) Start(roomID, userID, username string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	room, ok := t.rooms[roomID]
	if !ok {
		room = make(map[string]typingEntry)
		t.rooms[roomID] = room
	}
	room[userID] = typingEntry{username: username, deadline: time.Now().Add(t.ttl)}
}

func (t *TypingTracker) Stop(roomID, userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if room, ok := t.rooms[roomID]; ok {
		delete(room, userID)
		if len(room) == 0 {
			delete(t.rooms, roomID)
		}
	}
}

// Active returns the usernames currently typing in a room, skipping
// entries past their deadline.
func (t *TypingTracker) Active(roomID string) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	room, ok := t.rooms[roomID]
	if !ok {
		return nil
	}
	now := time.Now()
	var names []string
	for _, entry := range room {
		if entry.deadline.After(now) {
			names = append(names, entry.username)
		}
	}
	sort.Strings(names)
	return names
}

// ClearRoom wipes every entry for a room. Called when the viewer
// switches away, regardless of stream signals, so no ghost indicator
// survives in a room no longer being viewed.
func (t *TypingTracker) ClearRoom(roomID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.rooms, roomID)
}

// Expire sweeps entries whose deadline has passed.
func (t *TypingTracker) Expire(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for roomID, room := range t.rooms {
		for userID, entry := range room {
			if !entry.deadline.After(now) {
				delete(room, userID)
			}
		}
		if len(room) == 0 {
			delete(t.rooms, roomID)
		}
	}
}
