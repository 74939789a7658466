package tui

import (
	"time"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// DefaultHold is the hold window used when a game does not configure one.
// It spans a typical keyboard repeat delay so a held key does not stutter
// between the first press and the first auto-repeat.
const DefaultHold = 400 * time.Millisecond

// HeldInput turns terminal key events into per-tick input frames.
//
// Terminals report presses and auto-repeat but no releases, so a steering
// key counts as held until hold has passed since its last event. All other
// actions fire once, on the next frame.
type HeldInput struct {
	hold     time.Duration
	lastSeen map[core.Action]time.Time
	pending  core.InputFrame
}

// NewHeldInput creates an input tracker with the given hold window.
func NewHeldInput(hold time.Duration) *HeldInput {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &HeldInput{
		hold:     hold,
		lastSeen: make(map[core.Action]time.Time, 2),
		pending:  core.NewInputFrame(),
	}
}

// Press records a key event at now.
func (h *HeldInput) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionLeft:
		delete(h.lastSeen, core.ActionRight)
		h.lastSeen[a] = now
	case core.ActionRight:
		delete(h.lastSeen, core.ActionLeft)
		h.lastSeen[a] = now
	default:
		h.pending.Set(a)
	}
}

// Frame returns the input for a tick at now and consumes one-shot actions.
func (h *HeldInput) Frame(now time.Time) core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()

	for a, seen := range h.lastSeen {
		if now.Sub(seen) > h.hold {
			delete(h.lastSeen, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Reset forgets all held and pending keys.
func (h *HeldInput) Reset() {
	clear(h.lastSeen)
	h.pending.Clear()
}
