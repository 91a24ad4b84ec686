// Package state holds the locally mirrored conversational state: the
// room cache, the friend list, presence/typing, and the notification
// inbox. Every store is safe for concurrent use; stream-driven writes
// come from the reconciler goroutine while REST-driven ones come from
// whichever goroutine ran the call.
package state

import (
	"sync"

	"chitchat/domain/chat"
	"chitchat/errors"
)

// RoomCache is the authoritative local view of chatrooms, merged from
// REST fetches and streamed events. There is exactly one entry per room
// id; selection and its generation counter live here so a history fetch
// that lands after the user moved on can be told apart from a current
// one.
type RoomCache struct {
	mu         sync.RWMutex
	order      []string
	rooms      map[string]*chat.Chatroom
	seen       map[string]map[string]struct{}
	selected   string
	generation uint64
}

func NewRoomCache() *RoomCache {
	return &RoomCache{
		rooms: make(map[string]*chat.Chatroom),
		seen:  make(map[string]map[string]struct{}),
	}
}

// Replace swaps in a freshly fetched room list. Message history already
// cached for a surviving room is kept: the list endpoint returns
// summaries with empty histories. A selected room that vanished clears
// the selection.
func (c *RoomCache) Replace(rooms []chat.Chatroom) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fresh := make(map[string]*chat.Chatroom, len(rooms))
	order := make([]string, 0, len(rooms))
	for i := range rooms {
		room := rooms[i]
		if _, dup := fresh[room.ID]; dup {
			continue
		}
		if prev, ok := c.rooms[room.ID]; ok && len(room.Messages) == 0 {
			room.Messages = prev.Messages
		} else {
			c.seen[room.ID] = seenSet(room.Messages)
		}
		fresh[room.ID] = &room
		order = append(order, room.ID)
	}

	for id := range c.rooms {
		if _, ok := fresh[id]; !ok {
			delete(c.seen, id)
		}
	}
	if _, ok := fresh[c.selected]; !ok {
		c.selected = ""
		c.generation++
	}
	c.rooms = fresh
	c.order = order
}

// Upsert inserts a single room (creation or join result) or refreshes
// its metadata in place.
func (c *RoomCache) Upsert(room chat.Chatroom) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.rooms[room.ID]; ok {
		if len(room.Messages) == 0 {
			room.Messages = prev.Messages
		} else {
			c.seen[room.ID] = seenSet(room.Messages)
		}
		*prev = room
		return
	}
	c.rooms[room.ID] = &room
	c.order = append(c.order, room.ID)
	c.seen[room.ID] = seenSet(room.Messages)
}

// Rooms returns the room summaries in list order.
func (c *RoomCache) Rooms() []chat.Chatroom {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]chat.Chatroom, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, copyRoom(c.rooms[id]))
	}
	return out
}

func (c *RoomCache) Get(id string) (chat.Chatroom, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	room, ok := c.rooms[id]
	if !ok {
		return chat.Chatroom{}, false
	}
	return copyRoom(room), true
}

// Select marks a known room as the current one and returns the
// selection generation to hand back to SetHistory. Selecting an id that
// never reached the local list is a caller bug, reported as
// errors.ErrUnknownRoom.
func (c *RoomCache) Select(id string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.rooms[id]; !ok {
		return 0, errors.ErrUnknownRoom
	}
	c.selected = id
	c.generation++
	return c.generation, nil
}

func (c *RoomCache) Selected() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selected, c.selected != ""
}

func (c *RoomCache) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = ""
	c.generation++
}

// SetHistory installs a fetched message history, but only when the
// selection that triggered the fetch is still current. A late result
// for a room the user already left is discarded, not merged.
func (c *RoomCache) SetHistory(id string, generation uint64, messages []chat.Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selected != id || c.generation != generation {
		return false
	}
	room, ok := c.rooms[id]
	if !ok {
		return false
	}
	room.Messages = messages
	c.seen[id] = seenSet(messages)
	return true
}

// Append adds a delivered message to its room. Appending an id already
// present is a no-op: the stream has at-least-once semantics and echoes
// the sender's own messages.
func (c *RoomCache) Append(roomID string, msg chat.Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, ok := c.rooms[roomID]
	if !ok {
		return false
	}
	ids, ok := c.seen[roomID]
	if !ok {
		ids = make(map[string]struct{})
		c.seen[roomID] = ids
	}
	if _, dup := ids[msg.ID]; dup {
		return false
	}
	ids[msg.ID] = struct{}{}
	room.Messages = append(room.Messages, msg)
	return true
}

// Remove drops a deleted room entirely. Reports whether it was the
// current selection so the caller can fall back to an empty-selection
// view instead of a stale reference.
func (c *RoomCache) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.rooms[id]; !ok {
		return false
	}
	delete(c.rooms, id)
	delete(c.seen, id)
	for i, got := range c.order {
		if got == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	if c.selected == id {
		c.selected = ""
		c.generation++
		return true
	}
	return false
}

// ClearMessages empties a room's history after a moderation clear.
func (c *RoomCache) ClearMessages(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if room, ok := c.rooms[id]; ok {
		room.Messages = nil
		c.seen[id] = make(map[string]struct{})
	}
}

func seenSet(messages []chat.Message) map[string]struct{} {
	ids := make(map[string]struct{}, len(messages))
	for _, m := range messages {
		ids[m.ID] = struct{}{}
	}
	return ids
}

func copyRoom(room *chat.Chatroom) chat.Chatroom {
	out := *room
	out.Messages = append([]chat.Message(nil), room.Messages...)
	out.MemberIDs = append([]string(nil), room.MemberIDs...)
	return out
}
