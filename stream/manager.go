// Package stream owns the single live connection to the event stream:
// dialing, transport-level authentication, re-subscription after a
// drop, and the frame codec in both directions.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"chitchat/domain/event"
	"chitchat/errors"
)

type State int32

const (
	Disconnected State = iota
	Connecting
	Connected
	Reconnecting
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Reconnecting:
		return "reconnecting"
	default:
		return "disconnected"
	}
}

const (
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	writeWait  = 10 * time.Second
)

// frame is the wire shape in both directions: an event name plus its
// JSON payload.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Manager runs the connection state machine
// Disconnected -> Connecting -> Connected <-> Reconnecting -> Disconnected.
// One instance exists per authenticated session; nothing reaches the
// socket except through it.
type Manager struct {
	log       *slog.Logger
	wsURL     string
	userID    string
	sessionID string

	initialBackoff time.Duration
	maxBackoff     time.Duration

	events chan event.StreamEvent
	out    chan frame

	mu   sync.Mutex
	subs map[string]struct{}
	conn *websocket.Conn

	state  atomic.Int32
	closed atomic.Bool
}

// NewManager derives the stream endpoint from the configured base URL.
// The user id travels in the dial query: the transport authenticates at
// connection time, there is no separate handshake message.
func NewManager(log *slog.Logger, baseURL, userID string, initialBackoff, maxBackoff time.Duration, buffer int) (*Manager, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	switch parsed.Scheme {
	case "https":
		parsed.Scheme = "wss"
	default:
		parsed.Scheme = "ws"
	}
	parsed.Path = "/ws"
	parsed.RawQuery = url.Values{"user_id": {userID}}.Encode()

	return &Manager{
		log:            log,
		wsURL:          parsed.String(),
		userID:         userID,
		sessionID:      uuid.NewString(),
		initialBackoff: initialBackoff,
		maxBackoff:     maxBackoff,
		events:         make(chan event.StreamEvent, buffer),
		out:            make(chan frame, buffer),
		subs:           make(map[string]struct{}),
	}, nil
}

// Events is the inbound side consumed by the reconciler. Delivery order
// matches the per-connection wire order.
func (m *Manager) Events() <-chan event.StreamEvent {
	return m.events
}

func (m *Manager) State() State {
	return State(m.state.Load())
}

// Emit queues an outbound frame, fire-and-forget. A full queue drops
// the frame with a warning rather than blocking the caller.
func (m *Manager) Emit(name string, payload any) error {
	if m.closed.Load() {
		return errors.ErrStreamClosed
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	select {
	case m.out <- frame{Event: name, Data: data}:
		return nil
	default:
		m.log.Warn("Outbound queue full, dropping frame", "event", name)
		return nil
	}
}

// Subscribe records a room subscription and, when connected, joins it
// immediately. Recorded subscriptions are replayed on every reconnect;
// the server treats a duplicate join as a no-op.
func (m *Manager) Subscribe(roomID string) {
	m.mu.Lock()
	m.subs[roomID] = struct{}{}
	m.mu.Unlock()

	if m.State() == Connected {
		_ = m.Emit(event.NameJoinRoom, map[string]string{"room_id": roomID})
	}
}

// Close performs the clean-logout teardown: best-effort close handshake,
// never blocking the caller.
func (m *Manager) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}
	m.state.Store(int32(Disconnected))

	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()
	if conn != nil {
		deadline := time.Now().Add(writeWait)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		_ = conn.Close()
	}
	return nil
}

// Run drives the connection until the context ends or Close is called.
// It implements contract.Worker so the supervisor owns its lifecycle.
func (m *Manager) Run(ctx context.Context) error {
	backoff := m.initialBackoff
	attempt := 0

	for {
		if ctx.Err() != nil || m.closed.Load() {
			m.state.Store(int32(Disconnected))
			return ctx.Err()
		}

		if attempt == 0 {
			m.state.Store(int32(Connecting))
		} else {
			m.state.Store(int32(Reconnecting))
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, m.wsURL, nil)
		if err != nil {
			attempt++
			m.log.Warn("Stream dial failed", "session", m.sessionID, "attempt", attempt, "err", err)
			select {
			case <-ctx.Done():
				m.state.Store(int32(Disconnected))
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, m.maxBackoff)
			continue
		}

		attempt++
		backoff = m.initialBackoff
		m.mu.Lock()
		m.conn = conn
		m.mu.Unlock()
		m.state.Store(int32(Connected))
		m.log.Info("Stream connected", "session", m.sessionID, "state", m.State().String())

		m.announce()
		m.serve(ctx, conn)

		m.mu.Lock()
		m.conn = nil
		m.mu.Unlock()
		_ = conn.Close()

		if m.closed.Load() {
			m.state.Store(int32(Disconnected))
			return nil
		}
	}
}

// announce replays the session's identity and room subscriptions after
// every (re)connect. Subscription is explicit per room; the server does
// not infer membership from the user id alone.
func (m *Manager) announce() {
	_ = m.Emit(event.NameJoinUserRoom, map[string]string{"user_id": m.userID})

	m.mu.Lock()
	rooms := make([]string, 0, len(m.subs))
	for roomID := range m.subs {
		rooms = append(rooms, roomID)
	}
	m.mu.Unlock()

	for _, roomID := range rooms {
		_ = m.Emit(event.NameJoinRoom, map[string]string{"room_id": roomID})
	}
}

// serve pumps one established connection until it breaks. The writer
// goroutine is the only one allowed to write to the socket.
func (m *Manager) serve(ctx context.Context, conn *websocket.Conn) {
	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go m.writePump(connCtx, conn)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if !m.closed.Load() && websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				m.log.Warn("Stream read failed", "session", m.sessionID, "err", err)
			}
			return
		}

		var f frame
		if err := json.Unmarshal(raw, &f); err != nil {
			m.log.Warn("Malformed frame, skipping", "err", err)
			continue
		}
		evt, err := event.Decode(f.Event, f.Data)
		if err != nil {
			m.log.Debug("Skipping frame", "event", f.Event, "err", err)
			continue
		}
		select {
		case m.events <- evt:
		default:
			m.log.Warn("Inbound queue full, dropping event", "event", f.Event)
		}
	}
}

func (m *Manager) writePump(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case f := <-m.out:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(f); err != nil {
				m.log.Warn("Stream write failed", "session", m.sessionID, "event", f.Event, "err", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
