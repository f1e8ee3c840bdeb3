package core

import platformcore "github.com/vovakirdan/lavarun/internal/core"

// Fireball speeds for the three presets, in cells per second.
var (
	HorizontalFireballSpeed = platformcore.V(2, 0)
	VerticalFireballSpeed   = platformcore.V(0, 2)
	FireRainSpeed           = platformcore.V(0, 3)
)

// NewFireball creates a unit-sized hazard that bounces off obstacles.
// Bouncing negates the whole velocity, which is exact for single-axis movers.
func NewFireball(pos, speed platformcore.Vector) *Actor {
	return newActor(pos, platformcore.V(1, 1), speed, KindFireball, MotionBounce)
}

// NewHorizontalFireball creates a fireball patrolling left and right.
func NewHorizontalFireball(pos platformcore.Vector) *Actor {
	return NewFireball(pos, HorizontalFireballSpeed)
}

// NewVerticalFireball creates a fireball patrolling up and down.
func NewVerticalFireball(pos platformcore.Vector) *Actor {
	return NewFireball(pos, VerticalFireballSpeed)
}

// NewFireRain creates a falling fireball that restarts from its spawn
// point whenever it hits an obstacle.
func NewFireRain(pos platformcore.Vector) *Actor {
	a := newActor(pos, platformcore.V(1, 1), FireRainSpeed, KindFireball, MotionRespawn)
	a.spawn = pos
	return a
}

// NextPosition returns where the actor would be after dt seconds.
func (a *Actor) NextPosition(dt float64) platformcore.Vector {
	return a.pos.Plus(a.speed.Times(dt))
}

// Spawn returns the point a fire rain returns to, or a coin's home position.
func (a *Actor) Spawn() platformcore.Vector {
	return a.spawn
}

func (a *Actor) fly(dt float64, b *Board) {
	next := a.NextPosition(dt)
	if b.ObstacleAt(next, a.size) != KindNone {
		a.onObstacle()
		return
	}
	a.pos = next
}

func (a *Actor) onObstacle() {
	switch a.mode {
	case MotionRespawn:
		a.pos = a.spawn
	default:
		a.speed = a.speed.Times(-1)
	}
}
