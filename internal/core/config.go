package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventTag identifies a moment the narrator may want to comment on.
type EventTag string

const (
	EventStart     EventTag = "start"
	EventCrash     EventTag = "crash"
	EventEaten     EventTag = "eaten"
	EventHighscore EventTag = "highscore"
)

// Event is an outbound record emitted by the simulation when something
// narratable happens. The simulation never waits on consumers; the platform
// drains events from StepResult and forwards them to the commentary layer.
type Event struct {
	Tag      EventTag
	Distance int    // Depth traveled when the event fired
	Cause    string // What the player hit, where applicable
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
