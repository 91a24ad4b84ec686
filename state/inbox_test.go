package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"chitchat/domain/chat"
)

func TestInbox(t *testing.T) {
	t.Run("should remove a resolved notification", func(t *testing.T) {
		req := require.New(t)
		inbox := NewInbox()
		inbox.Replace([]chat.Notification{
			{ID: 1, Kind: chat.NotificationFriendRequest, SenderName: "alice"},
			{ID: 2, Kind: chat.NotificationGroupInvite, SenderName: "bob", RoomName: "#general"},
		})

		inbox.Remove(1)

		all := inbox.All()
		req.Len(all, 1)
		req.Equal(2, all[0].ID)
	})

	t.Run("should treat removing a missing id as a no-op", func(t *testing.T) {
		req := require.New(t)
		inbox := NewInbox()
		inbox.Replace([]chat.Notification{{ID: 1}})

		inbox.Remove(99)
		inbox.Remove(1)
		inbox.Remove(1)

		req.Zero(inbox.Len())
	})
}
