package core

import platformcore "github.com/vovakirdan/lavarun/internal/core"

var (
	playerOffset = platformcore.V(0, -0.5)
	playerSize   = platformcore.V(0.8, 1.5)
)

// NewPlayer creates the player standing in the grid cell at pos.
// The player has no update of its own: its velocity is set by the input
// collaborator and its moves are committed by the tick driver.
func NewPlayer(pos platformcore.Vector) *Actor {
	return newActor(pos.Plus(playerOffset), playerSize, platformcore.Vector{}, KindPlayer, MotionNone)
}
