package state

import (
	"sync"

	"github.com/samber/lo"

	"chitchat/domain/chat"
)

// Inbox holds pending actionable notifications. Removal is idempotent:
// resolving an id that is already gone is a no-op, never an error.
type Inbox struct {
	mu    sync.RWMutex
	items []chat.Notification
}

func NewInbox() *Inbox {
	return &Inbox{}
}

func (i *Inbox) Replace(items []chat.Notification) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.items = append([]chat.Notification(nil), items...)
}

func (i *Inbox) All() []chat.Notification {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return append([]chat.Notification(nil), i.items...)
}

func (i *Inbox) Remove(id int) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.items = lo.Reject(i.items, func(item chat.Notification, _ int) bool {
		return item.ID == id
	})
}

func (i *Inbox) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.items)
}
