// Package event defines the closed set of inbound stream events. Every
// frame the connection delivers is decoded into exactly one of these
// tagged variants; payload shapes are fixed per event name instead of
// flowing through the reconciler as untyped maps.
package event

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"chitchat/domain/chat"
	"chitchat/errors"
)

// StreamEvent is implemented by every inbound variant.
type StreamEvent interface {
	EventName() string
}

// Inbound event names.
const (
	NameNewMessage       = "new_message"
	NameNewFriend        = "new_friend"
	NameNewNotification  = "new_notification"
	NameUpdateData       = "update_data"
	NameAddedToRoom      = "added_to_room"
	NameNewPrivateChat   = "new_private_chat"
	NameRoomDeleted      = "room_deleted"
	NameChatCleared      = "chat_cleared"
	NameDisplayTyping    = "display_typing"
	NameHideTyping       = "hide_typing"
	NameUserStatusChange = "user_status_change"
)

// Outbound event names.
const (
	NameJoinUserRoom = "join_user_room"
	NameJoinRoom     = "join_room"
	NameTypingStart  = "typing_start"
	NameTypingStop   = "typing_stop"
)

// UpdateData sub-kinds.
const (
	UpdateFriendAccepted      = "FRIEND_ACCEPTED"
	UpdateGroupJoined         = "GROUP_JOINED"
	UpdateGroupInviteAccepted = "GROUP_INVITE_ACCEPTED"
)

type NewMessage struct {
	RoomID  string
	Message chat.Message
}

func (NewMessage) EventName() string { return NameNewMessage }

type NewFriend struct {
	Friend chat.User
}

func (NewFriend) EventName() string { return NameNewFriend }

type NewNotification struct {
	Text string
}

func (NewNotification) EventName() string { return NameNewNotification }

type UpdateData struct {
	Kind   string
	Friend *chat.User
	RoomID string
}

func (UpdateData) EventName() string { return NameUpdateData }

type AddedToRoom struct {
	RoomID   string
	RoomName string
}

func (AddedToRoom) EventName() string { return NameAddedToRoom }

type NewPrivateChat struct {
	RoomID string
}

func (NewPrivateChat) EventName() string { return NameNewPrivateChat }

type RoomDeleted struct {
	RoomID string
}

func (RoomDeleted) EventName() string { return NameRoomDeleted }

type ChatCleared struct {
	RoomID string
}

func (ChatCleared) EventName() string { return NameChatCleared }

type DisplayTyping struct {
	RoomID   string
	UserID   string
	Username string
}

func (DisplayTyping) EventName() string { return NameDisplayTyping }

type HideTyping struct {
	RoomID string
	UserID string
}

func (HideTyping) EventName() string { return NameHideTyping }

type UserStatusChange struct {
	UserID   string
	Online   bool
	LastSeen string
}

func (UserStatusChange) EventName() string { return NameUserStatusChange }

// flexID tolerates servers that serialize ids as JSON numbers instead
// of strings.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = flexID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type wireUser struct {
	ID       flexID `json:"id"`
	UserID   flexID `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatarUrl"`
	Online   bool   `json:"online"`
	LastSeen string `json:"lastSeen"`
}

func (w wireUser) toUser() chat.User {
	id := string(w.ID)
	if id == "" {
		id = string(w.UserID)
	}
	name := w.Name
	if name == "" {
		name = w.Username
	}
	avatar := w.Avatar
	if avatar == "" && name != "" {
		avatar = chat.AvatarFor(name)
	}
	return chat.User{
		ID:        id,
		Name:      name,
		AvatarURL: avatar,
		Online:    w.Online,
		LastSeen:  w.LastSeen,
	}
}

type wireMessage struct {
	RoomID         flexID   `json:"room_id"`
	ID             flexID   `json:"id"`
	Content        string   `json:"content"`
	Timestamp      string   `json:"timestamp"`
	Sender         wireUser `json:"sender"`
	AttachmentURL  string   `json:"attachment_url"`
	AttachmentType string   `json:"attachment_type"`
	OriginalName   string   `json:"original_name"`
}

// Decode maps an inbound frame to its tagged variant. Unknown names are
// reported as errors.ErrUnknownEvent so the connection can log and skip
// them without dropping the stream.
func Decode(name string, data json.RawMessage) (StreamEvent, error) {
	switch name {
	case NameNewMessage:
		var w wireMessage
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		msg := chat.Message{
			ID:        string(w.ID),
			Content:   w.Content,
			Timestamp: w.Timestamp,
			Sender:    w.Sender.toUser(),
		}
		if w.AttachmentURL != "" {
			msg.Attachment = &chat.Attachment{
				URL:          w.AttachmentURL,
				MimeType:     w.AttachmentType,
				OriginalName: w.OriginalName,
			}
		}
		return NewMessage{RoomID: string(w.RoomID), Message: msg}, nil

	case NameNewFriend:
		var w wireUser
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return NewFriend{Friend: w.toUser()}, nil

	case NameNewNotification:
		var w struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return NewNotification{Text: w.Message}, nil

	case NameUpdateData:
		var w struct {
			Event  string    `json:"event"`
			Friend *wireUser `json:"friend"`
			RoomID flexID    `json:"room_id"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		upd := UpdateData{Kind: w.Event, RoomID: string(w.RoomID)}
		if w.Friend != nil {
			friend := w.Friend.toUser()
			upd.Friend = &friend
		}
		return upd, nil

	case NameAddedToRoom:
		var w struct {
			RoomID   flexID `json:"room_id"`
			RoomName string `json:"room_name"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return AddedToRoom{RoomID: string(w.RoomID), RoomName: w.RoomName}, nil

	case NameNewPrivateChat:
		var w struct {
			RoomID flexID `json:"room_id"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return NewPrivateChat{RoomID: string(w.RoomID)}, nil

	case NameRoomDeleted:
		var w struct {
			RoomID flexID `json:"room_id"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return RoomDeleted{RoomID: string(w.RoomID)}, nil

	case NameChatCleared:
		var w struct {
			RoomID flexID `json:"room_id"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return ChatCleared{RoomID: string(w.RoomID)}, nil

	case NameDisplayTyping:
		var w struct {
			RoomID   flexID `json:"room_id"`
			UserID   flexID `json:"user_id"`
			Username string `json:"username"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return DisplayTyping{RoomID: string(w.RoomID), UserID: string(w.UserID), Username: w.Username}, nil

	case NameHideTyping:
		var w struct {
			RoomID flexID `json:"room_id"`
			UserID flexID `json:"user_id"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return HideTyping{RoomID: string(w.RoomID), UserID: string(w.UserID)}, nil

	case NameUserStatusChange:
		var w struct {
			UserID   flexID `json:"user_id"`
			Status   string `json:"status"`
			LastSeen string `json:"last_seen"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return UserStatusChange{
			UserID:   string(w.UserID),
			Online:   w.Status == "online",
			LastSeen: w.LastSeen,
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", errors.ErrUnknownEvent, strconv.Quote(name))
}
