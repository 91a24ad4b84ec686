// Package chat holds the value types mirrored from the server: users,
// messages, chatrooms, notifications. Identity fields are immutable once
// created; presence fields are only touched by the presence tracker.
package chat

import (
	"net/url"
	"strings"

	"chitchat/errors"
)

type User struct {
	ID        string
	Name      string
	AvatarURL string
	Online    bool
	LastSeen  string
}

// Friend is a User whose relationship edge is implied by its presence
// in the current user's friend list.
type Friend = User

type Attachment struct {
	URL          string
	MimeType     string
	OriginalName string
}

// Message is immutable once created. The client never fabricates one
// locally: the authoritative copy always arrives through the stream
// echo after the REST submission, for the sender like for everyone else.
type Message struct {
	ID         string
	Content    string
	Sender     User
	Timestamp  string
	Attachment *Attachment
}

// OutgoingMessage is what the client submits; the server assigns the id
// and timestamp and echoes the result back over the stream.
type OutgoingMessage struct {
	SenderID   string
	RoomID     string
	Content    string
	Attachment *Attachment
}

// Valid rejects a send carrying neither content nor attachment.
func (m OutgoingMessage) Valid() error {
	if strings.TrimSpace(m.Content) == "" && m.Attachment == nil {
		return errors.ErrEmptyMessage
	}
	return nil
}

type RoomKind string

const (
	RoomGroup  RoomKind = "group"
	RoomDirect RoomKind = "direct"
)

// Chatroom mirrors the server-side room. Message order is insertion
// order, fixed at append time. Membership is authoritative on the
// server: membership events trigger a re-fetch, never a local guess.
type Chatroom struct {
	ID          string
	Name        string
	Topic       string
	Kind        RoomKind
	Messages    []Message
	OtherUserID string
	MemberIDs   []string
	CreatedBy   string
}

type RoomInfo struct {
	Room    Chatroom
	Members []User
}

type NotificationKind string

const (
	NotificationFriendRequest NotificationKind = "FRIEND_REQUEST"
	NotificationGroupInvite   NotificationKind = "GROUP_INVITE"
)

// Notification is an actionable inbox item. Resolution is terminal and
// idempotent; there is no retraction once resolved.
type Notification struct {
	ID         int
	Kind       NotificationKind
	SenderName string
	RoomName   string
	CreatedAt  string
}

type Decision string

const (
	Accept Decision = "ACCEPT"
	Reject Decision = "REJECT"
)

// NormalizeRoomName turns a display name into the canonical channel
// form sent to the server: "Team Sync" becomes "#team-sync".
func NormalizeRoomName(name string) (string, error) {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return "", errors.ErrInvalidRoomName
	}
	normalized := strings.Join(fields, "-")
	if !strings.HasPrefix(normalized, "#") {
		normalized = "#" + normalized
	}
	return normalized, nil
}

// AvatarFor derives a fallback avatar URL for users the server sent
// without one.
func AvatarFor(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name)
}
