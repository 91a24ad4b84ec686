//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"chitchat/domain/chat"
)

// Worker doesn't protect itself.
// The supervisor owns restarts and panic recovery.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision, avoiding manual naming in the
// Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ISessionStore persists the current user's credential blob across
// process restarts. Load must map every failure mode (missing blob,
// malformed blob, bad signature) to errors.ErrNotAuthenticated.
type ISessionStore interface {
	Save(user chat.User) error
	Load() (chat.User, error)
	Clear() error
}

// IStream is the write side of the live connection. Emit is
// fire-and-forget: no ack contract is assumed.
type IStream interface {
	Emit(name string, payload any) error
	Subscribe(roomID string)
	Close() error
}

// IRestAPI is the request/response half of the backend contract.
type IRestAPI interface {
	Login(ctx context.Context, email, password string) (chat.User, error)
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context, userID string) error

	Rooms(ctx context.Context, userID string) ([]chat.Chatroom, error)
	Messages(ctx context.Context, roomID string) ([]chat.Message, error)
	CreateRoom(ctx context.Context, roomName, createdBy string) (chat.Chatroom, error)
	OpenPrivateChat(ctx context.Context, userID, otherUserID string) (chat.Chatroom, error)
	Invite(ctx context.Context, roomID, senderID, username string) error
	Kick(ctx context.Context, roomID, userID string) error
	DeleteRoom(ctx context.Context, roomID string) error
	ClearMessages(ctx context.Context, roomID string) error
	RoomInfo(ctx context.Context, roomID string) (chat.RoomInfo, error)

	Friends(ctx context.Context, userID string) ([]chat.User, error)
	AddFriend(ctx context.Context, userID, username string) error
	RemoveFriend(ctx context.Context, userID, friendID string) error
	SearchUsers(ctx context.Context, query, userID string, includeFriends bool) ([]chat.User, error)

	Notifications(ctx context.Context, userID string) ([]chat.Notification, error)
	RespondNotification(ctx context.Context, id int, decision chat.Decision) error

	SendMessage(ctx context.Context, msg chat.OutgoingMessage) error
	Upload(ctx context.Context, path string) (chat.Attachment, error)
}
