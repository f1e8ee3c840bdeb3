package core

import (
	"fmt"

	platformcore "github.com/vovakirdan/lavarun/internal/core"
)

// Actor is any movable entity on the board.
// Every variant shares this record; the variant is fixed at construction by
// kind and motion, and Update dispatches on motion.
type Actor struct {
	pos   platformcore.Vector
	size  platformcore.Vector
	speed platformcore.Vector
	kind  Kind
	mode  Motion

	spawn platformcore.Vector // Spawn point (fire rain) or home position (coin)
	phase float64             // Spring phase (coin)
}

// NewActor creates a plain actor.
// A zero size means "not supplied" and becomes (1,1). Panics if a size
// component is negative or exactly one of them is zero.
func NewActor(pos, size, speed platformcore.Vector) *Actor {
	return newActor(pos, size, speed, KindActor, MotionNone)
}

func newActor(pos, size, speed platformcore.Vector, kind Kind, mode Motion) *Actor {
	if size.IsZero() {
		size = platformcore.V(1, 1)
	}
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("lavarun: actor size must be positive, got %v", size))
	}
	return &Actor{
		pos:   pos,
		size:  size,
		speed: speed,
		kind:  kind,
		mode:  mode,
	}
}

// Pos returns the top-left corner of the actor.
func (a *Actor) Pos() platformcore.Vector { return a.pos }

// Size returns the actor's extent.
func (a *Actor) Size() platformcore.Vector { return a.size }

// Speed returns the actor's velocity in cells per second.
func (a *Actor) Speed() platformcore.Vector { return a.speed }

// Kind returns the actor's fixed kind.
func (a *Actor) Kind() Kind { return a.kind }

// Motion returns the actor's update behavior.
func (a *Actor) Motion() Motion { return a.mode }

func (a *Actor) Left() float64   { return a.pos.X }
func (a *Actor) Top() float64    { return a.pos.Y }
func (a *Actor) Right() float64  { return a.pos.X + a.size.X }
func (a *Actor) Bottom() float64 { return a.pos.Y + a.size.Y }

// Box returns the actor's bounding box.
func (a *Actor) Box() platformcore.Box {
	return platformcore.NewBox(a.pos, a.size)
}

// MoveTo replaces the actor's position.
// Used by the input collaborator that drives the player.
func (a *Actor) MoveTo(pos platformcore.Vector) {
	a.pos = pos
}

// SetSpeed replaces the actor's velocity.
func (a *Actor) SetSpeed(speed platformcore.Vector) {
	a.speed = speed
}

// Intersects reports whether two distinct actors strictly overlap.
// An actor never intersects itself; touching edges do not count.
func (a *Actor) Intersects(other *Actor) bool {
	if other == nil {
		panic("lavarun: Intersects requires an actor")
	}
	if other == a {
		return false
	}
	return a.Box().Intersects(other.Box())
}

// Update advances the actor by dt seconds on board b.
func (a *Actor) Update(dt float64, b *Board) {
	switch a.mode {
	case MotionBounce, MotionRespawn:
		a.fly(dt, b)
	case MotionSpring:
		a.bob(dt)
	}
}

// String returns a debug representation of the actor.
func (a *Actor) String() string {
	return fmt.Sprintf("%s@%v", a.kind, a.pos)
}
