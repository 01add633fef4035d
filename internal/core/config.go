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

// SoundCue is a named audio event emitted by the simulation.
// Playback is entirely the platform's concern; cues that are never played
// have no effect on the simulation.
type SoundCue struct {
	Name  string  // e.g. "enemy_hit", "player_shoot"
	Pitch float64 // Pitch scale, 1.0 = unmodified
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Sounds []SoundCue
}

// RunStats is the flat end-of-run record a game hands to the platform for
// persistence. Persistence failures never propagate back into the game.
type RunStats struct {
	Score     int
	Stage     int
	Kills     int
	Grazes    int
	BestCombo int
	Ticks     int // Run length in simulation ticks
}
