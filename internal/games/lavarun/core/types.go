// Package core provides the simulation engine for the lavarun platformer:
// actors, the obstacle board and the plan parser that builds it.
// This package is UI-agnostic and deterministic; it never logs and never
// performs I/O. Contract violations panic.
package core

// Kind classifies both static obstacles and actors.
// Obstacle kinds and actor kinds share one namespace because the board's
// touch handling accepts either.
type Kind string

const (
	KindNone     Kind = ""
	KindWall     Kind = "wall"
	KindLava     Kind = "lava"
	KindActor    Kind = "actor"
	KindPlayer   Kind = "player"
	KindCoin     Kind = "coin"
	KindFireball Kind = "fireball"
)

// String returns the kind name, or "none" for the empty kind.
func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}
	return string(k)
}

// Status is the pass/fail state of a board.
// StatusNone is initial; StatusWon and StatusLost are terminal.
type Status uint8

const (
	StatusNone Status = iota
	StatusWon
	StatusLost
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsSet reports whether the status has been decided.
func (s Status) IsSet() bool {
	return s != StatusNone
}

// Motion selects an actor's per-tick update behavior.
type Motion uint8

const (
	MotionNone    Motion = iota // No own update (plain actors, player)
	MotionBounce                // Move by speed, reverse on obstacle
	MotionRespawn               // Move by speed, jump back to spawn on obstacle
	MotionSpring                // Bob around a fixed home position
)
