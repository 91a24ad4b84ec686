package rest

import (
	"encoding/json"
	"strings"

	"github.com/samber/lo"

	"chitchat/domain/chat"
)

// envelope is the JSON shell every endpoint answers with:
// {"status":"success","data":...} or {"status":"error","message":"..."}.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// wireID tolerates numeric ids; the server serializes some as numbers
// (row ids) and some as strings.
type wireID string

func (w *wireID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*w = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*w = wireID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*w = wireID(n.String())
	return nil
}

type wireUser struct {
	ID       wireID `json:"id"`
	UserID   wireID `json:"user_id"`
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

func toUsers(users []wireUser) []chat.User {
	return lo.Map(users, func(item wireUser, _ int) chat.User {
		return item.toUser()
	})
}

type wireMessage struct {
	ID             wireID   `json:"id"`
	Content        string   `json:"content"`
	Timestamp      string   `json:"timestamp"`
	Sender         wireUser `json:"sender"`
	AttachmentURL  string   `json:"attachment_url"`
	AttachmentType string   `json:"attachment_type"`
	OriginalName   string   `json:"original_name"`
}

func (w wireMessage) toMessage() chat.Message {
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
	return msg
}

func toMessages(messages []wireMessage) []chat.Message {
	return lo.Map(messages, func(item wireMessage, _ int) chat.Message {
		return item.toMessage()
	})
}

type wireRoom struct {
	ID          wireID        `json:"id"`
	RoomID      wireID        `json:"room_id"`
	Name        string        `json:"name"`
	RoomName    string        `json:"room_name"`
	Topic       string        `json:"topic"`
	OtherUserID wireID        `json:"otherUserId"`
	CreatedBy   wireID        `json:"created_by"`
	Messages    []wireMessage `json:"messages"`
	MemberIDs   []wireID      `json:"member_ids"`
}

func (w wireRoom) toRoom() chat.Chatroom {
	id := string(w.ID)
	if id == "" {
		id = string(w.RoomID)
	}
	name := w.Name
	if name == "" {
		name = w.RoomName
	}
	kind := chat.RoomGroup
	if w.OtherUserID != "" {
		kind = chat.RoomDirect
	}
	return chat.Chatroom{
		ID:          id,
		Name:        name,
		Topic:       w.Topic,
		Kind:        kind,
		Messages:    toMessages(w.Messages),
		OtherUserID: string(w.OtherUserID),
		CreatedBy:   string(w.CreatedBy),
		MemberIDs: lo.Map(w.MemberIDs, func(item wireID, _ int) string {
			return string(item)
		}),
	}
}

func toRooms(rooms []wireRoom) []chat.Chatroom {
	return lo.Map(rooms, func(item wireRoom, _ int) chat.Chatroom {
		return item.toRoom()
	})
}

type wireNotification struct {
	NotifID    int    `json:"notif_id"`
	Type       string `json:"type"`
	SenderName string `json:"sender_name"`
	RoomName   string `json:"room_name"`
	CreatedAt  string `json:"created_at"`
}

func (w wireNotification) toNotification() chat.Notification {
	return chat.Notification{
		ID:         w.NotifID,
		Kind:       chat.NotificationKind(w.Type),
		SenderName: w.SenderName,
		RoomName:   w.RoomName,
		CreatedAt:  w.CreatedAt,
	}
}
