// Package rest speaks the request/response half of the backend
// contract. Read-path failures keep whatever the caller already cached;
// write-path failures surface so callers can report them instead of
// silently diverging from server state.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"

	"chitchat/domain/chat"
	"chitchat/errors"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        log,
	}
}

// do runs one request against the envelope API. Transport failures come
// back wrapped in errors.ErrTransportUnavailable; an "error" envelope
// comes back as a plain error carrying the server's message. When out is
// non-nil the full response body is unmarshaled into it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrTransportUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrTransportUnavailable, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	if env.Status != "success" {
		if env.Message == "" {
			env.Message = resp.Status
		}
		return fmt.Errorf("server rejected %s %s: %s", method, path, env.Message)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response from %s: %w", path, err)
		}
	}
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (chat.User, error) {
	var resp struct {
		User wireUser `json:"user"`
	}
	payload := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/login", nil, payload, &resp); err != nil {
		return chat.User{}, err
	}
	return resp.User.toUser(), nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) error {
	payload := map[string]string{"username": username, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/register", nil, payload, nil)
}

func (c *Client) Logout(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, map[string]string{"user_id": userID}, nil)
}

func (c *Client) Rooms(ctx context.Context, userID string) ([]chat.Chatroom, error) {
	var resp struct {
		Data []wireRoom `json:"data"`
	}
	query := url.Values{"user_id": {userID}}
	if err := c.do(ctx, http.MethodGet, "/chatrooms", query, nil, &resp); err != nil {
		return nil, err
	}
	return toRooms(resp.Data), nil
}

func (c *Client) Messages(ctx context.Context, roomID string) ([]chat.Message, error) {
	var resp struct {
		Data []wireMessage `json:"data"`
	}
	query := url.Values{"room_id": {roomID}}
	if err := c.do(ctx, http.MethodGet, "/messages", query, nil, &resp); err != nil {
		return nil, err
	}
	return toMessages(resp.Data), nil
}

func (c *Client) CreateRoom(ctx context.Context, roomName, createdBy string) (chat.Chatroom, error) {
	var resp struct {
		Data wireRoom `json:"data"`
	}
	payload := map[string]string{"room_name": roomName, "created_by": createdBy}
	if err := c.do(ctx, http.MethodPost, "/create-room", nil, payload, &resp); err != nil {
		return chat.Chatroom{}, err
	}
	room := resp.Data.toRoom()
	if room.Messages == nil {
		room.Messages = []chat.Message{}
	}
	return room, nil
}

// OpenPrivateChat is idempotent server-side: asking twice for the same
// pair returns the existing room.
func (c *Client) OpenPrivateChat(ctx context.Context, userID, otherUserID string) (chat.Chatroom, error) {
	var resp struct {
		Data wireRoom `json:"data"`
	}
	payload := map[string]string{"user_id": userID, "other_user_id": otherUserID}
	if err := c.do(ctx, http.MethodPost, "/private-chat", nil, payload, &resp); err != nil {
		return chat.Chatroom{}, err
	}
	room := resp.Data.toRoom()
	room.Kind = chat.RoomDirect
	if room.OtherUserID == "" {
		room.OtherUserID = otherUserID
	}
	return room, nil
}

func (c *Client) Invite(ctx context.Context, roomID, senderID, username string) error {
	payload := map[string]string{"room_id": roomID, "sender_id": senderID, "username": username}
	return c.do(ctx, http.MethodPost, "/chatrooms/invite", nil, payload, nil)
}

func (c *Client) Kick(ctx context.Context, roomID, userID string) error {
	payload := map[string]string{"user_id": userID}
	return c.do(ctx, http.MethodPost, "/room/"+roomID+"/kick", nil, payload, nil)
}

func (c *Client) DeleteRoom(ctx context.Context, roomID string) error {
	return c.do(ctx, http.MethodDelete, "/room/"+roomID, nil, nil, nil)
}

func (c *Client) ClearMessages(ctx context.Context, roomID string) error {
	return c.do(ctx, http.MethodDelete, "/room/"+roomID+"/messages", nil, nil, nil)
}

func (c *Client) RoomInfo(ctx context.Context, roomID string) (chat.RoomInfo, error) {
	var resp struct {
		Data struct {
			wireRoom
			Members []wireUser `json:"members"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/room/"+roomID+"/info", nil, nil, &resp); err != nil {
		return chat.RoomInfo{}, err
	}
	return chat.RoomInfo{
		Room:    resp.Data.toRoom(),
		Members: toUsers(resp.Data.Members),
	}, nil
}

func (c *Client) Friends(ctx context.Context, userID string) ([]chat.User, error) {
	var resp struct {
		Data []wireUser `json:"data"`
	}
	query := url.Values{"user_id": {userID}}
	if err := c.do(ctx, http.MethodGet, "/friends", query, nil, &resp); err != nil {
		return nil, err
	}
	return toUsers(resp.Data), nil
}

func (c *Client) AddFriend(ctx context.Context, userID, username string) error {
	payload := map[string]string{"user_id": userID, "username": username}
	return c.do(ctx, http.MethodPost, "/friends", nil, payload, nil)
}

func (c *Client) RemoveFriend(ctx context.Context, userID, friendID string) error {
	query := url.Values{"user_id": {userID}}
	return c.do(ctx, http.MethodDelete, "/friends/"+friendID, query, nil, nil)
}

func (c *Client) SearchUsers(ctx context.Context, query, userID string, includeFriends bool) ([]chat.User, error) {
	var resp struct {
		Data []wireUser `json:"data"`
	}
	values := url.Values{
		"query":   {query},
		"user_id": {userID},
	}
	if includeFriends {
		values.Set("include_friends", "true")
	}
	if err := c.do(ctx, http.MethodGet, "/users/search", values, nil, &resp); err != nil {
		return nil, err
	}
	return toUsers(resp.Data), nil
}

func (c *Client) Notifications(ctx context.Context, userID string) ([]chat.Notification, error) {
	var resp struct {
		Data []wireNotification `json:"data"`
	}
	query := url.Values{"user_id": {userID}}
	if err := c.do(ctx, http.MethodGet, "/notifications", query, nil, &resp); err != nil {
		return nil, err
	}
	return lo.Map(resp.Data, func(item wireNotification, _ int) chat.Notification {
		return item.toNotification()
	}), nil
}

func (c *Client) RespondNotification(ctx context.Context, id int, decision chat.Decision) error {
	payload := map[string]string{"action": string(decision)}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/notifications/%d/respond", id), nil, payload, nil)
}

// SendMessage is fire-and-forget from the caller's point of view: the
// authoritative message arrives through the stream echo, never from
// this response.
func (c *Client) SendMessage(ctx context.Context, msg chat.OutgoingMessage) error {
	if err := msg.Valid(); err != nil {
		return err
	}
	payload := map[string]string{
		"sender_id": msg.SenderID,
		"room_id":   msg.RoomID,
		"content":   msg.Content,
	}
	if msg.Attachment != nil {
		payload["attachment_url"] = msg.Attachment.URL
		payload["attachment_type"] = msg.Attachment.MimeType
		payload["original_name"] = msg.Attachment.OriginalName
	}
	return c.do(ctx, http.MethodPost, "/send-message", nil, payload, nil)
}

// Upload pushes a local file through the multipart endpoint and returns
// the attachment reference to embed in a subsequent send.
func (c *Client) Upload(ctx context.Context, path string) (chat.Attachment, error) {
	file, err := os.Open(path)
	if err != nil {
		return chat.Attachment{}, fmt.Errorf("open attachment: %w", err)
	}
	defer file.Close()

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return chat.Attachment{}, fmt.Errorf("detect attachment type: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return chat.Attachment{}, fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return chat.Attachment{}, fmt.Errorf("read attachment: %w", err)
	}
	if err := writer.Close(); err != nil {
		return chat.Attachment{}, fmt.Errorf("build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return chat.Attachment{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return chat.Attachment{}, fmt.Errorf("%w: %v", errors.ErrTransportUnavailable, err)
	}
	defer resp.Body.Close()

	var uploaded struct {
		FileURL      string `json:"file_url"`
		FileType     string `json:"file_type"`
		OriginalName string `json:"original_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return chat.Attachment{}, fmt.Errorf("decode upload response: %w", err)
	}
	if uploaded.FileURL == "" {
		return chat.Attachment{}, fmt.Errorf("upload rejected with status %s", resp.Status)
	}
	if uploaded.FileType == "" {
		uploaded.FileType = mime.String()
	}
	return chat.Attachment{
		URL:          uploaded.FileURL,
		MimeType:     uploaded.FileType,
		OriginalName: uploaded.OriginalName,
	}, nil
}
