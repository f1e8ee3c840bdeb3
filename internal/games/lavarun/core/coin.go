package core

import (
	"math"

	platformcore "github.com/vovakirdan/lavarun/internal/core"
)

// Coin animation parameters.
const (
	CoinPhaseSpeed = 8.0
	CoinAmplitude  = 0.07
)

var (
	coinOffset = platformcore.V(0.2, 0.1)
	coinSize   = platformcore.V(0.6, 0.6)
)

// NewCoin creates a collectible in the grid cell at pos.
// phase is the initial spring phase, normally drawn from [0, 2π) by the caller's RNG.
func NewCoin(pos platformcore.Vector, phase float64) *Actor {
	a := newActor(pos.Plus(coinOffset), coinSize, platformcore.Vector{}, KindCoin, MotionSpring)
	a.spawn = a.pos
	a.phase = phase
	return a
}

// Phase returns the coin's current spring phase.
func (a *Actor) Phase() float64 {
	return a.phase
}

// bob advances the spring animation. It never consults the board.
func (a *Actor) bob(dt float64) {
	a.phase += CoinPhaseSpeed * dt
	a.pos = a.spawn.Plus(platformcore.V(0, math.Sin(a.phase)*CoinAmplitude))
}
