package state

import (
	"sort"
	"sync"

	"github.com/samber/lo"

	"chitchat/domain/chat"
)

// FriendList keeps the accepted-friend set ordered by display name.
// Requests in flight are not friends; they live in the inbox until the
// server pushes the acceptance.
type FriendList struct {
	mu      sync.RWMutex
	friends []chat.User
}

func NewFriendList() *FriendList {
	return &FriendList{}
}

func (f *FriendList) Replace(friends []chat.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.friends = append([]chat.User(nil), friends...)
	sortByName(f.friends)
}

// Add inserts a friend if absent, keeping the list sorted. Duplicate
// pushes (e.g. both new_friend and update_data for one acceptance) are
// no-ops.
func (f *FriendList) Add(friend chat.User) {
	f.mu.Lock()
	defer f.mu.Unlock()

	exists := lo.ContainsBy(f.friends, func(item chat.User) bool {
		return item.ID == friend.ID
	})
	if exists {
		return
	}
	f.friends = append(f.friends, friend)
	sortByName(f.friends)
}

func (f *FriendList) Remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.friends = lo.Reject(f.friends, func(item chat.User, _ int) bool {
		return item.ID == id
	})
}

func (f *FriendList) All() []chat.User {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]chat.User(nil), f.friends...)
}

func sortByName(friends []chat.User) {
	sort.Slice(friends, func(i, j int) bool {
		return friends[i].Name < friends[j].Name
	})
}
