package runtime

import (
	"context"
	"log/slog"
	"time"

	"chitchat/contract"
	"chitchat/domain/chat"
	"chitchat/domain/event"
	"chitchat/state"
)

const typingSweepPeriod = time.Second

// Callbacks let the UI react to stream activity without polling the
// stores. Both are optional and must not block.
type Callbacks struct {
	OnMessage func(roomID string, msg chat.Message)
	OnAlert   func(text string)
}

// Reconciler translates inbound stream events into local state
// mutations. It is the single writer path for stream-driven changes:
// one goroutine consumes the connection's channel in delivery order.
// Handlers only touch their target store; the only REST traffic they
// cause are the compensating re-fetches for structural changes
// (membership, notifications), which run off-loop so the event stream
// never stalls behind the API.
type Reconciler struct {
	log       *slog.Logger
	events    <-chan event.StreamEvent
	api       contract.IRestAPI
	stream    contract.IStream
	userID    string
	rooms     *state.RoomCache
	presence  *state.PresenceTracker
	typing    *state.TypingTracker
	friends   *state.FriendList
	inbox     *state.Inbox
	callbacks Callbacks
}

func NewReconciler(
	log *slog.Logger,
	events <-chan event.StreamEvent,
	api contract.IRestAPI,
	stream contract.IStream,
	userID string,
	rooms *state.RoomCache,
	presence *state.PresenceTracker,
	typing *state.TypingTracker,
	friends *state.FriendList,
	inbox *state.Inbox,
	callbacks Callbacks,
) *Reconciler {
	return &Reconciler{
		log:       log,
		events:    events,
		api:       api,
		stream:    stream,
		userID:    userID,
		rooms:     rooms,
		presence:  presence,
		typing:    typing,
		friends:   friends,
		inbox:     inbox,
		callbacks: callbacks,
	}
}

// Run consumes the stream until the context ends. The ticker sweeps
// typing entries whose stop signal was lost.
func (r *Reconciler) Run(ctx context.Context) error {
	ticker := time.NewTicker(typingSweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt, ok := <-r.events:
			if !ok {
				return nil
			}
			r.Apply(ctx, evt)
		case now := <-ticker.C:
			r.typing.Expire(now)
		}
	}
}

// Apply dispatches one event to its handler.
func (r *Reconciler) Apply(ctx context.Context, evt event.StreamEvent) {
	switch e := evt.(type) {
	case event.NewMessage:
		// Echoes of the user's own sends land here exactly like
		// everyone else's messages; the id check absorbs duplicate
		// delivery.
		if r.rooms.Append(e.RoomID, e.Message) && r.callbacks.OnMessage != nil {
			r.callbacks.OnMessage(e.RoomID, e.Message)
		}

	case event.UserStatusChange:
		r.presence.Set(e.UserID, e.Online, e.LastSeen)

	case event.DisplayTyping:
		r.typing.Start(e.RoomID, e.UserID, e.Username)

	case event.HideTyping:
		r.typing.Stop(e.RoomID, e.UserID)

	case event.NewFriend:
		r.friends.Add(e.Friend)

	case event.UpdateData:
		r.applyUpdate(ctx, e)

	case event.AddedToRoom:
		r.refreshRooms(ctx)

	case event.NewPrivateChat:
		r.refreshRooms(ctx)

	case event.RoomDeleted:
		if r.rooms.Remove(e.RoomID) {
			r.log.Info("Selected room was deleted", "room", e.RoomID)
		}

	case event.ChatCleared:
		r.rooms.ClearMessages(e.RoomID)

	case event.NewNotification:
		r.refreshInbox(ctx)
		if r.callbacks.OnAlert != nil && e.Text != "" {
			r.callbacks.OnAlert(e.Text)
		}

	default:
		r.log.Debug("No handler for event", "event", evt.EventName())
	}
}

func (r *Reconciler) applyUpdate(ctx context.Context, e event.UpdateData) {
	switch e.Kind {
	case event.UpdateFriendAccepted:
		if e.Friend != nil {
			r.friends.Add(*e.Friend)
		}
	case event.UpdateGroupJoined, event.UpdateGroupInviteAccepted:
		r.refreshRooms(ctx)
	default:
		r.log.Debug("No handler for update", "kind", e.Kind)
	}
}

// refreshRooms re-fetches the room list. Membership events do not carry
// a full member list, so the cache re-fetches instead of guessing. New
// rooms are subscribed right away so their traffic starts flowing.
func (r *Reconciler) refreshRooms(ctx context.Context) {
	go func() {
		rooms, err := r.api.Rooms(ctx, r.userID)
		if err != nil {
			r.log.Warn("Room re-fetch failed, keeping previous list", "err", err)
			return
		}
		r.rooms.Replace(rooms)
		for _, room := range rooms {
			r.stream.Subscribe(room.ID)
		}
	}()
}

func (r *Reconciler) refreshInbox(ctx context.Context) {
	go func() {
		items, err := r.api.Notifications(ctx, r.userID)
		if err != nil {
			r.log.Warn("Inbox re-fetch failed, keeping previous items", "err", err)
			return
		}
		r.inbox.Replace(items)
	}()
}
