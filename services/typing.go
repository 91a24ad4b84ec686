package services

import (
	"sync"
	"time"

	"chitchat/contract"
	"chitchat/domain/event"
)

// TypingEmitter is the sending side of typing indicators. A keystroke
// burst produces at most one typing_start; an inactivity timer emits
// typing_stop after the configured idle window; sending a message stops
// immediately and supersedes the timer.
type TypingEmitter struct {
	mu     sync.Mutex
	stream contract.IStream
	idle   time.Duration
	roomID string
	active bool
	timer  *time.Timer
}

func NewTypingEmitter(stream contract.IStream, idle time.Duration) *TypingEmitter {
	return &TypingEmitter{stream: stream, idle: idle}
}

// KeyPressed reports one keystroke in roomID. The first keystroke of a
// burst emits typing_start; every keystroke pushes the stop timer back.
func (t *TypingEmitter) KeyPressed(roomID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active && t.roomID != roomID {
		t.stopLocked()
	}
	if !t.active {
		t.active = true
		t.roomID = roomID
		_ = t.stream.Emit(event.NameTypingStart, map[string]string{"room_id": roomID})
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.idle, t.idleExpired)
}

// MessageSent emits the immediate stop that supersedes the idle timer.
func (t *TypingEmitter) MessageSent() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *TypingEmitter) idleExpired() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *TypingEmitter) stopLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if !t.active {
		return
	}
	t.active = false
	_ = t.stream.Emit(event.NameTypingStop, map[string]string{"room_id": t.roomID})
}
