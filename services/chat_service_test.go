package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chitchat/domain/chat"
	"chitchat/errors"
	"chitchat/mocks"
	"chitchat/state"
)

type serviceFixture struct {
	svc      *ChatService
	api      *mocks.MockIRestAPI
	stream   *mocks.MockIStream
	rooms    *state.RoomCache
	presence *state.PresenceTracker
	friends  *state.FriendList
	inbox    *state.Inbox
}

func newServiceFixture(t *testing.T, ctrl *gomock.Controller) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		api:      mocks.NewMockIRestAPI(ctrl),
		stream:   mocks.NewMockIStream(ctrl),
		rooms:    state.NewRoomCache(),
		presence: state.NewPresenceTracker(),
		friends:  state.NewFriendList(),
		inbox:    state.NewInbox(),
	}
	typing := state.NewTypingTracker(5 * time.Second)
	emitter := NewTypingEmitter(f.stream, 2*time.Second)
	f.svc = NewChatService(
		logs.GetLoggerFromLevel(slog.LevelDebug),
		f.api, f.stream, chat.User{ID: "u1", Name: "alice"},
		f.rooms, f.presence, typing, f.friends, f.inbox, emitter,
	)
	return f
}

func TestChatService_CreateRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should normalize the display name and select the new room", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)

		created := chat.Chatroom{ID: "r7", Name: "#team-sync", Kind: chat.RoomGroup}
		f.api.EXPECT().CreateRoom(gomock.Any(), "#team-sync", "u1").Return(created, nil).Times(1)
		f.stream.EXPECT().Subscribe("r7").Times(1)

		room, err := f.svc.CreateRoom(context.Background(), "Team Sync")

		req.NoError(err)
		req.Equal("r7", room.ID)

		selected, ok := f.svc.SelectedRoom()
		req.True(ok)
		req.Equal("r7", selected.ID)
		req.Empty(selected.Messages)
	})

	t.Run("should reject a blank name before any request", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)

		f.api.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.CreateRoom(context.Background(), "   ")

		req.ErrorIs(err, errors.ErrInvalidRoomName)
	})
}

func TestChatService_SelectRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should hydrate the history of a known room", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)
		f.rooms.Replace([]chat.Chatroom{{ID: "r1", Name: "#general"}})

		history := []chat.Message{{ID: "m1", Content: "hi"}}
		f.api.EXPECT().Messages(gomock.Any(), "r1").Return(history, nil).Times(1)

		room, err := f.svc.SelectRoom(context.Background(), "r1")

		req.NoError(err)
		req.Len(room.Messages, 1)
	})

	t.Run("should refuse a room that is not in the local list", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)

		f.api.EXPECT().Messages(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.svc.SelectRoom(context.Background(), "ghost")

		req.ErrorIs(err, errors.ErrUnknownRoom)
	})

	t.Run("should discard a history fetch overtaken by a newer selection", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)
		f.rooms.Replace([]chat.Chatroom{{ID: "r1"}, {ID: "r2"}})

		// While the r1 fetch is in flight the user switches to r2.
		f.api.EXPECT().Messages(gomock.Any(), "r1").
			DoAndReturn(func(context.Context, string) ([]chat.Message, error) {
				_, err := f.rooms.Select("r2")
				require.NoError(t, err)
				return []chat.Message{{ID: "m1"}}, nil
			}).Times(1)

		_, err := f.svc.SelectRoom(context.Background(), "r1")

		req.ErrorIs(err, errors.ErrStaleFetch)
		room, _ := f.rooms.Get("r1")
		req.Empty(room.Messages)
	})
}

func TestChatService_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should submit without a local echo", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)
		f.rooms.Replace([]chat.Chatroom{{ID: "r1"}})
		f.api.EXPECT().Messages(gomock.Any(), "r1").Return(nil, nil).Times(1)
		_, err := f.svc.SelectRoom(context.Background(), "r1")
		req.NoError(err)

		f.api.EXPECT().SendMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg chat.OutgoingMessage) error {
				req.Equal("u1", msg.SenderID)
				req.Equal("r1", msg.RoomID)
				req.Equal("hello", msg.Content)
				return nil
			}).Times(1)

		req.NoError(f.svc.SendMessage(context.Background(), "hello", nil))

		// The authoritative copy only arrives through the stream echo.
		room, _ := f.rooms.Get("r1")
		req.Empty(room.Messages)
	})

	t.Run("should reject an empty message before any request", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)
		f.rooms.Replace([]chat.Chatroom{{ID: "r1"}})
		f.api.EXPECT().Messages(gomock.Any(), "r1").Return(nil, nil).Times(1)
		_, err := f.svc.SelectRoom(context.Background(), "r1")
		req.NoError(err)

		f.api.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(f.svc.SendMessage(context.Background(), "   ", nil), errors.ErrEmptyMessage)
	})

	t.Run("should require a selected room", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)

		req.ErrorIs(f.svc.SendMessage(context.Background(), "hello", nil), errors.ErrUnknownRoom)
	})
}

func TestChatService_RefreshRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should cache and subscribe every fetched room", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)

		fetched := []chat.Chatroom{{ID: "r1"}, {ID: "r2"}}
		f.api.EXPECT().Rooms(gomock.Any(), "u1").Return(fetched, nil).Times(1)
		f.stream.EXPECT().Subscribe("r1").Times(1)
		f.stream.EXPECT().Subscribe("r2").Times(1)

		rooms, err := f.svc.RefreshRooms(context.Background())

		req.NoError(err)
		req.Len(rooms, 2)
	})

	t.Run("should return the cached list when the fetch fails", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)
		f.rooms.Replace([]chat.Chatroom{{ID: "r1"}})

		f.api.EXPECT().Rooms(gomock.Any(), "u1").
			Return(nil, fmt.Errorf("%w: refused", errors.ErrTransportUnavailable)).Times(1)

		rooms, err := f.svc.RefreshRooms(context.Background())

		req.Error(err)
		req.Len(rooms, 1)
	})
}

func TestChatService_RefreshFriends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should seed presence from the fetched statuses", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)

		fetched := []chat.User{
			{ID: "u2", Name: "bob", Online: true},
			{ID: "u3", Name: "carol", Online: false, LastSeen: "yesterday"},
		}
		f.api.EXPECT().Friends(gomock.Any(), "u1").Return(fetched, nil).Times(1)

		friends, err := f.svc.RefreshFriends(context.Background())

		req.NoError(err)
		req.Len(friends, 2)
		entry, ok := f.presence.Get("u3")
		req.True(ok)
		req.Equal("yesterday", entry.LastSeen)
	})
}

func TestChatService_RespondNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should remove the item immediately and leave the friendship to the push", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)
		f.inbox.Replace([]chat.Notification{{ID: 3, Kind: chat.NotificationFriendRequest, SenderName: "carol"}})

		f.api.EXPECT().RespondNotification(gomock.Any(), 3, chat.Accept).Return(nil).Times(1)

		req.NoError(f.svc.RespondNotification(context.Background(), 3, chat.Accept))

		req.Zero(f.inbox.Len())
		// The friend edge materializes only when the server pushes it.
		req.Empty(f.friends.All())
	})

	t.Run("should keep the item when the transport is down so the user can retry", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)
		f.inbox.Replace([]chat.Notification{{ID: 3}})

		f.api.EXPECT().RespondNotification(gomock.Any(), 3, chat.Accept).
			Return(fmt.Errorf("%w: refused", errors.ErrTransportUnavailable)).Times(1)

		err := f.svc.RespondNotification(context.Background(), 3, chat.Accept)

		req.ErrorIs(err, errors.ErrTransportUnavailable)
		req.Equal(1, f.inbox.Len())
	})

	t.Run("should drop the item when the server refused it outright", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)
		f.inbox.Replace([]chat.Notification{{ID: 3}})

		f.api.EXPECT().RespondNotification(gomock.Any(), 3, chat.Reject).
			Return(stderrors.New("already resolved")).Times(1)

		req.NoError(f.svc.RespondNotification(context.Background(), 3, chat.Reject))
		req.Zero(f.inbox.Len())
	})
}

func TestChatService_OpenDirectChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should cache, subscribe and hydrate the pair room", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)

		room := chat.Chatroom{ID: "r9", Name: "alice & bob", Kind: chat.RoomDirect, OtherUserID: "u2"}
		f.api.EXPECT().OpenPrivateChat(gomock.Any(), "u1", "u2").Return(room, nil).Times(1)
		f.stream.EXPECT().Subscribe("r9").Times(1)
		f.api.EXPECT().Messages(gomock.Any(), "r9").Return([]chat.Message{{ID: "m1"}}, nil).Times(1)

		got, err := f.svc.OpenDirectChat(context.Background(), "u2")

		req.NoError(err)
		req.Equal("r9", got.ID)
		req.Len(got.Messages, 1)
	})
}

func TestChatService_DeleteRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should drop the local entry once the server confirms", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)
		f.rooms.Replace([]chat.Chatroom{{ID: "r1"}})

		f.api.EXPECT().DeleteRoom(gomock.Any(), "r1").Return(nil).Times(1)

		req.NoError(f.svc.DeleteRoom(context.Background(), "r1"))
		_, ok := f.rooms.Get("r1")
		req.False(ok)
	})

	t.Run("should keep the entry when the server refuses", func(t *testing.T) {
		req := require.New(t)
		f := newServiceFixture(t, ctrl)
		f.rooms.Replace([]chat.Chatroom{{ID: "r1"}})

		f.api.EXPECT().DeleteRoom(gomock.Any(), "r1").Return(stderrors.New("not the creator")).Times(1)

		req.Error(f.svc.DeleteRoom(context.Background(), "r1"))
		_, ok := f.rooms.Get("r1")
		req.True(ok)
	})
}
