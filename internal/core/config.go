package core

// RuntimeConfig contains configuration passed to the tick driver at reset.
// Step is the fixed simulated time per tick; nothing here relates to wall-clock time.
type RuntimeConfig struct {
	Step     float64 // Simulated seconds per tick
	MaxTicks int     // Upper bound on ticks for headless runs
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Step:     0.02,
		MaxTicks: 3000,
		Seed:     1,
	}
}

// GameState represents the current state of a level being played.
type GameState struct {
	Status   string // "", "won" or "lost"
	Coins    int    // Coins still on the board
	Ticks    int    // Ticks simulated since reset
	Finished bool   // Status decided and finish delay drained
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
