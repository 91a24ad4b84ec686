package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTypingTracker(t *testing.T) {
	t.Run("should list typers sorted by username", func(t *testing.T) {
		req := require.New(t)
		tracker := NewTypingTracker(5 * time.Second)

		tracker.Start("r1", "u2", "zoe")
		tracker.Start("r1", "u1", "alice")

		req.Equal([]string{"alice", "zoe"}, tracker.Active("r1"))
	})

	t.Run("should drop a typer on stop", func(t *testing.T) {
		req := require.New(t)
		tracker := NewTypingTracker(5 * time.Second)

		tracker.Start("r1", "u1", "alice")
		tracker.Stop("r1", "u1")

		req.Empty(tracker.Active("r1"))
	})

	t.Run("should tolerate a stop for an unknown entry", func(t *testing.T) {
		req := require.New(t)
		tracker := NewTypingTracker(5 * time.Second)

		tracker.Stop("r1", "ghost")

		req.Empty(tracker.Active("r1"))
	})

	t.Run("should clear every indicator when the viewer leaves the room", func(t *testing.T) {
		req := require.New(t)
		tracker := NewTypingTracker(5 * time.Second)
		tracker.Start("r1", "u1", "alice")
		tracker.Start("r1", "u2", "bob")

		tracker.ClearRoom("r1")

		req.Empty(tracker.Active("r1"))
	})

	t.Run("should expire an entry whose stop signal was lost", func(t *testing.T) {
		req := require.New(t)
		tracker := NewTypingTracker(5 * time.Second)
		tracker.Start("r1", "u1", "alice")

		tracker.Expire(time.Now().Add(6 * time.Second))

		req.Empty(tracker.Active("r1"))
	})

	t.Run("should keep an entry refreshed before its deadline", func(t *testing.T) {
		req := require.New(t)
		tracker := NewTypingTracker(5 * time.Second)
		tracker.Start("r1", "u1", "alice")

		tracker.Expire(time.Now().Add(2 * time.Second))

		req.Equal([]string{"alice"}, tracker.Active("r1"))
	})
}
