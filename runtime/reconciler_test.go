package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chitchat/domain/chat"
	"chitchat/domain/event"
	"chitchat/mocks"
	"chitchat/state"
)

type reconcilerFixture struct {
	reconciler *Reconciler
	api        *mocks.MockIRestAPI
	stream     *mocks.MockIStream
	rooms      *state.RoomCache
	presence   *state.PresenceTracker
	typing     *state.TypingTracker
	friends    *state.FriendList
	inbox      *state.Inbox
}

func newReconcilerFixture(t *testing.T, ctrl *gomock.Controller, callbacks Callbacks) *reconcilerFixture {
	t.Helper()
	f := &reconcilerFixture{
		api:      mocks.NewMockIRestAPI(ctrl),
		stream:   mocks.NewMockIStream(ctrl),
		rooms:    state.NewRoomCache(),
		presence: state.NewPresenceTracker(),
		typing:   state.NewTypingTracker(5 * time.Second),
		friends:  state.NewFriendList(),
		inbox:    state.NewInbox(),
	}
	f.reconciler = NewReconciler(
		logs.GetLoggerFromLevel(slog.LevelDebug),
		nil, f.api, f.stream, "u1",
		f.rooms, f.presence, f.typing, f.friends, f.inbox,
		callbacks,
	)
	return f
}

func TestReconciler_Apply_NewMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should append the message and notify the UI once", func(t *testing.T) {
		req := require.New(t)
		var delivered []chat.Message
		f := newReconcilerFixture(t, ctrl, Callbacks{
			OnMessage: func(_ string, msg chat.Message) {
				delivered = append(delivered, msg)
			},
		})
		f.rooms.Replace([]chat.Chatroom{{ID: "r1", Name: "#general"}})

		evt := event.NewMessage{RoomID: "r1", Message: chat.Message{ID: "m1", Content: "hi"}}
		f.reconciler.Apply(context.Background(), evt)
		// Duplicate delivery of the same frame.
		f.reconciler.Apply(context.Background(), evt)

		room, _ := f.rooms.Get("r1")
		req.Len(room.Messages, 1)
		req.Len(delivered, 1)
	})

	t.Run("should drop a message for a room the cache never saw", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, ctrl, Callbacks{
			OnMessage: func(string, chat.Message) {
				t.Fatal("no callback expected")
			},
		})

		f.reconciler.Apply(context.Background(), event.NewMessage{
			RoomID:  "ghost",
			Message: chat.Message{ID: "m1"},
		})

		_, ok := f.rooms.Get("ghost")
		req.False(ok)
	})
}

func TestReconciler_Apply_Presence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should record status changes last-write-wins", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, ctrl, Callbacks{})

		f.reconciler.Apply(context.Background(), event.UserStatusChange{UserID: "u2", Online: true})
		f.reconciler.Apply(context.Background(), event.UserStatusChange{UserID: "u2", Online: false, LastSeen: "just now"})

		entry, ok := f.presence.Get("u2")
		req.True(ok)
		req.False(entry.Online)
		req.Equal("just now", entry.LastSeen)
	})
}

func TestReconciler_Apply_Typing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should track and release typing indicators", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, ctrl, Callbacks{})

		f.reconciler.Apply(context.Background(), event.DisplayTyping{RoomID: "r1", UserID: "u2", Username: "bob"})
		req.Equal([]string{"bob"}, f.typing.Active("r1"))

		f.reconciler.Apply(context.Background(), event.HideTyping{RoomID: "r1", UserID: "u2"})
		req.Empty(f.typing.Active("r1"))
	})
}

func TestReconciler_Apply_Friends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should add a friend once even when both acceptance events fire", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, ctrl, Callbacks{})
		friend := chat.User{ID: "u3", Name: "carol"}

		f.reconciler.Apply(context.Background(), event.NewFriend{Friend: friend})
		f.reconciler.Apply(context.Background(), event.UpdateData{
			Kind:   event.UpdateFriendAccepted,
			Friend: &friend,
		})

		req.Len(f.friends.All(), 1)
	})
}

func TestReconciler_Apply_Membership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should re-fetch and subscribe rooms when added to one", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, ctrl, Callbacks{})

		fetched := []chat.Chatroom{{ID: "r1", Name: "#general"}, {ID: "r9", Name: "#ops"}}
		done := make(chan struct{})
		f.api.EXPECT().Rooms(gomock.Any(), "u1").Return(fetched, nil).Times(1)
		f.stream.EXPECT().Subscribe("r1").Times(1)
		f.stream.EXPECT().Subscribe("r9").Do(func(string) { close(done) }).Times(1)

		f.reconciler.Apply(context.Background(), event.AddedToRoom{RoomID: "r9", RoomName: "#ops"})

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("room re-fetch never completed")
		}
		req.Len(f.rooms.Rooms(), 2)
	})

	t.Run("should keep the previous list when the re-fetch fails", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, ctrl, Callbacks{})
		f.rooms.Replace([]chat.Chatroom{{ID: "r1", Name: "#general"}})

		done := make(chan struct{})
		f.api.EXPECT().Rooms(gomock.Any(), "u1").
			DoAndReturn(func(context.Context, string) ([]chat.Chatroom, error) {
				defer close(done)
				return nil, context.DeadlineExceeded
			}).Times(1)

		f.reconciler.Apply(context.Background(), event.NewPrivateChat{RoomID: "r5"})

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("room re-fetch never completed")
		}
		req.Len(f.rooms.Rooms(), 1)
	})
}

func TestReconciler_Apply_RoomLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should drop a deleted room even while it is being viewed", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, ctrl, Callbacks{})
		f.rooms.Replace([]chat.Chatroom{{ID: "r1"}, {ID: "r2"}})
		_, err := f.rooms.Select("r1")
		req.NoError(err)

		f.reconciler.Apply(context.Background(), event.RoomDeleted{RoomID: "r1"})

		_, ok := f.rooms.Get("r1")
		req.False(ok)
		_, ok = f.rooms.Selected()
		req.False(ok)
	})

	t.Run("should wipe history on a moderation clear", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, ctrl, Callbacks{})
		f.rooms.Replace([]chat.Chatroom{{ID: "r1"}})
		f.rooms.Append("r1", chat.Message{ID: "m1"})

		f.reconciler.Apply(context.Background(), event.ChatCleared{RoomID: "r1"})

		room, _ := f.rooms.Get("r1")
		req.Empty(room.Messages)
	})
}

func TestReconciler_Apply_Notifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should re-fetch the inbox and raise the alert", func(t *testing.T) {
		req := require.New(t)
		var alerts []string
		f := newReconcilerFixture(t, ctrl, Callbacks{
			OnAlert: func(text string) { alerts = append(alerts, text) },
		})

		items := []chat.Notification{{ID: 7, Kind: chat.NotificationFriendRequest, SenderName: "carol"}}
		done := make(chan struct{})
		f.api.EXPECT().Notifications(gomock.Any(), "u1").
			DoAndReturn(func(context.Context, string) ([]chat.Notification, error) {
				defer close(done)
				return items, nil
			}).Times(1)

		f.reconciler.Apply(context.Background(), event.NewNotification{Text: "carol sent you a friend request"})

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("inbox re-fetch never completed")
		}
		require.Eventually(t, func() bool { return f.inbox.Len() == 1 }, time.Second, 10*time.Millisecond)
		req.Equal([]string{"carol sent you a friend request"}, alerts)
	})
}
