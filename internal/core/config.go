package core

// RuntimeConfig contains host settings passed to the platform layer.
// The simulation itself runs on a fixed logical canvas and never reads it.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second requested from the host (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    string // Game-specific state name (menu, playing, ...)
	Score    int    // Current score
	Lives    int    // Remaining lives
	GameOver bool   // Whether the game has ended (won or lost)
	Won      bool   // Whether the game ended in a win
	Paused   bool   // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventBlockHit EventKind = iota + 1
	EventBlockDestroyed
	EventLifeLost
	EventPhaseChanged
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventBlockHit:
		return "block_hit"
	case EventBlockDestroyed:
		return "block_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventPhaseChanged:
		return "phase_changed"
	default:
		return "unknown"
	}
}

// Event is a notable simulation occurrence reported to the host.
type Event struct {
	Kind  EventKind
	Value int    // Kind-specific number (remaining lives, points, ...)
	Phase string // New phase for EventPhaseChanged
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
	// Exit is set when the player confirmed an end screen and the
	// process should terminate with a non-zero status.
	Exit bool
}
