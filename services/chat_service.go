package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"chitchat/contract"
	"chitchat/domain/chat"
	"chitchat/errors"
	"chitchat/state"
)

// ChatService glues the REST API, the stream, and the local stores into
// the operations a UI drives. One instance exists per authenticated
// session, bound to the current user.
type ChatService struct {
	log      *slog.Logger
	api      contract.IRestAPI
	stream   contract.IStream
	user     chat.User
	rooms    *state.RoomCache
	presence *state.PresenceTracker
	typing   *state.TypingTracker
	friends  *state.FriendList
	inbox    *state.Inbox
	emitter  *TypingEmitter
}

func NewChatService(
	log *slog.Logger,
	api contract.IRestAPI,
	stream contract.IStream,
	user chat.User,
	rooms *state.RoomCache,
	presence *state.PresenceTracker,
	typing *state.TypingTracker,
	friends *state.FriendList,
	inbox *state.Inbox,
	emitter *TypingEmitter,
) *ChatService {
	return &ChatService{
		log:      log,
		api:      api,
		stream:   stream,
		user:     user,
		rooms:    rooms,
		presence: presence,
		typing:   typing,
		friends:  friends,
		inbox:    inbox,
		emitter:  emitter,
	}
}

func (s *ChatService) User() chat.User {
	return s.user
}

// RefreshRooms fetches the room list, merges it into the cache, and
// subscribes the stream to every room. A failed fetch keeps the
// previous list: stale-but-available beats empty-on-error.
func (s *ChatService) RefreshRooms(ctx context.Context) ([]chat.Chatroom, error) {
	rooms, err := s.api.Rooms(ctx, s.user.ID)
	if err != nil {
		return s.rooms.Rooms(), fmt.Errorf("fetch rooms: %w", err)
	}
	s.rooms.Replace(rooms)
	for _, room := range rooms {
		s.stream.Subscribe(room.ID)
	}
	return s.rooms.Rooms(), nil
}

// SelectRoom hydrates a room's history and makes it the current
// selection. The room must already be in the local list. If the
// selection moves while the fetch is in flight, the late result is
// discarded and errors.ErrStaleFetch reported.
func (s *ChatService) SelectRoom(ctx context.Context, id string) (chat.Chatroom, error) {
	previous, hadPrevious := s.rooms.Selected()

	generation, err := s.rooms.Select(id)
	if err != nil {
		return chat.Chatroom{}, err
	}
	if hadPrevious && previous != id {
		// Indicators are scoped to the viewed room; leaving it clears
		// them regardless of stream signals.
		s.typing.ClearRoom(previous)
	}

	messages, err := s.api.Messages(ctx, id)
	if err != nil {
		return chat.Chatroom{}, fmt.Errorf("fetch history for room %s: %w", id, err)
	}
	if !s.rooms.SetHistory(id, generation, messages) {
		return chat.Chatroom{}, errors.ErrStaleFetch
	}
	room, _ := s.rooms.Get(id)
	return room, nil
}

func (s *ChatService) SelectedRoom() (chat.Chatroom, bool) {
	id, ok := s.rooms.Selected()
	if !ok {
		return chat.Chatroom{}, false
	}
	return s.rooms.Get(id)
}

// SendMessage submits to the REST path and nothing else: no local
// append, no placeholder bubble. The server-assigned message comes back
// through the stream echo like any other participant's.
func (s *ChatService) SendMessage(ctx context.Context, content string, attachment *chat.Attachment) error {
	roomID, ok := s.rooms.Selected()
	if !ok {
		return errors.ErrUnknownRoom
	}
	msg := chat.OutgoingMessage{
		SenderID:   s.user.ID,
		RoomID:     roomID,
		Content:    content,
		Attachment: attachment,
	}
	if err := msg.Valid(); err != nil {
		return err
	}
	s.emitter.MessageSent()
	if err := s.api.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// SendAttachment uploads a local file and sends a message referencing
// it, with optional caption text.
func (s *ChatService) SendAttachment(ctx context.Context, path, caption string) error {
	attachment, err := s.api.Upload(ctx, path)
	if err != nil {
		return fmt.Errorf("upload attachment: %w", err)
	}
	return s.SendMessage(ctx, caption, &attachment)
}

// KeyPressed forwards a keystroke to the typing emitter for the
// selected room.
func (s *ChatService) KeyPressed() {
	if roomID, ok := s.rooms.Selected(); ok {
		s.emitter.KeyPressed(roomID)
	}
}

// CreateRoom normalizes the display name ("Team Sync" -> "#team-sync"),
// creates the room, caches it with an empty history, subscribes, and
// selects it.
func (s *ChatService) CreateRoom(ctx context.Context, name string) (chat.Chatroom, error) {
	normalized, err := chat.NormalizeRoomName(name)
	if err != nil {
		return chat.Chatroom{}, err
	}
	room, err := s.api.CreateRoom(ctx, normalized, s.user.ID)
	if err != nil {
		return chat.Chatroom{}, fmt.Errorf("create room: %w", err)
	}
	s.rooms.Upsert(room)
	s.stream.Subscribe(room.ID)
	if _, err := s.rooms.Select(room.ID); err != nil {
		return chat.Chatroom{}, err
	}
	return room, nil
}

// OpenDirectChat gets or creates the DM room for the pair; the server
// answers a second request for the same pair with the existing room.
func (s *ChatService) OpenDirectChat(ctx context.Context, otherUserID string) (chat.Chatroom, error) {
	room, err := s.api.OpenPrivateChat(ctx, s.user.ID, otherUserID)
	if err != nil {
		return chat.Chatroom{}, fmt.Errorf("open direct chat: %w", err)
	}
	s.rooms.Upsert(room)
	s.stream.Subscribe(room.ID)
	return s.SelectRoom(ctx, room.ID)
}

func (s *ChatService) InviteToRoom(ctx context.Context, roomID, username string) error {
	if err := s.api.Invite(ctx, roomID, s.user.ID, username); err != nil {
		return fmt.Errorf("invite %s: %w", username, err)
	}
	return nil
}

func (s *ChatService) KickFromRoom(ctx context.Context, roomID, userID string) error {
	if err := s.api.Kick(ctx, roomID, userID); err != nil {
		return fmt.Errorf("kick %s: %w", userID, err)
	}
	return nil
}

// DeleteRoom removes the room server-side; the cache entry goes with it
// locally, and other members learn through the room_deleted push.
func (s *ChatService) DeleteRoom(ctx context.Context, roomID string) error {
	if err := s.api.DeleteRoom(ctx, roomID); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	s.rooms.Remove(roomID)
	return nil
}

func (s *ChatService) ClearHistory(ctx context.Context, roomID string) error {
	if err := s.api.ClearMessages(ctx, roomID); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	s.rooms.ClearMessages(roomID)
	return nil
}

func (s *ChatService) RoomInfo(ctx context.Context, roomID string) (chat.RoomInfo, error) {
	info, err := s.api.RoomInfo(ctx, roomID)
	if err != nil {
		return chat.RoomInfo{}, fmt.Errorf("room info: %w", err)
	}
	return info, nil
}

// RefreshFriends fetches the friend list and seeds the presence tracker
// with the statuses it carries.
func (s *ChatService) RefreshFriends(ctx context.Context) ([]chat.User, error) {
	friends, err := s.api.Friends(ctx, s.user.ID)
	if err != nil {
		return s.friends.All(), fmt.Errorf("fetch friends: %w", err)
	}
	s.friends.Replace(friends)
	for _, friend := range friends {
		s.presence.Set(friend.ID, friend.Online, friend.LastSeen)
	}
	return s.friends.All(), nil
}

// AddFriend sends the friend request. The other user gets a
// notification; the friendship materializes locally only when the
// server pushes the acceptance.
func (s *ChatService) AddFriend(ctx context.Context, username string) error {
	if err := s.api.AddFriend(ctx, s.user.ID, username); err != nil {
		return fmt.Errorf("add friend: %w", err)
	}
	return nil
}

func (s *ChatService) RemoveFriend(ctx context.Context, friendID string) error {
	if err := s.api.RemoveFriend(ctx, s.user.ID, friendID); err != nil {
		return fmt.Errorf("remove friend: %w", err)
	}
	s.friends.Remove(friendID)
	return nil
}

func (s *ChatService) SearchUsers(ctx context.Context, query string, includeFriends bool) ([]chat.User, error) {
	users, err := s.api.SearchUsers(ctx, query, s.user.ID, includeFriends)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

func (s *ChatService) RefreshNotifications(ctx context.Context) ([]chat.Notification, error) {
	items, err := s.api.Notifications(ctx, s.user.ID)
	if err != nil {
		return s.inbox.All(), fmt.Errorf("fetch notifications: %w", err)
	}
	s.inbox.Replace(items)
	return s.inbox.All(), nil
}

// RespondNotification resolves one inbox item. The item leaves the
// inbox on any server response, accepted or rejected; only a transport
// failure keeps it so the user can retry. The resolution's side effects
// (friendship, room membership) arrive later as push events, never in
// this response.
func (s *ChatService) RespondNotification(ctx context.Context, id int, decision chat.Decision) error {
	err := s.api.RespondNotification(ctx, id, decision)
	if err != nil {
		if stderrors.Is(err, errors.ErrTransportUnavailable) {
			return fmt.Errorf("respond to notification %d: %w", id, err)
		}
		s.log.Warn("Server refused notification response, dropping item", "id", id, "err", err)
	}
	s.inbox.Remove(id)
	return nil
}
