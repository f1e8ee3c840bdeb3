package core

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	platformcore "github.com/vovakirdan/lavarun/internal/core"
)

// DefaultFinishDelay is the grace period, in simulated seconds, between a
// level being decided and it counting as finished.
const DefaultFinishDelay = 1.0

// Board holds the static obstacle grid, the dynamic actor list and the
// pass/fail state of one level.
//
// Grid rows may be ragged; cells past the end of a row are open.
// The player is resolved once at construction and never re-resolved, so
// it may point at an actor that has since been removed.
type Board struct {
	grid        [][]Kind
	actors      []*Actor
	player      *Actor
	width       int
	height      int
	status      Status
	finishDelay float64
}

// NewBoard creates a board from a grid (rows of obstacle kinds, KindNone for
// open cells) and the initial actor list. The board copies both, so later
// removals never touch the caller's slices.
func NewBoard(grid [][]Kind, actors []*Actor) *Board {
	b := &Board{
		grid:        make([][]Kind, len(grid)),
		actors:      make([]*Actor, len(actors)),
		height:      len(grid),
		finishDelay: DefaultFinishDelay,
	}
	for i, row := range grid {
		b.grid[i] = append([]Kind(nil), row...)
		if len(row) > b.width {
			b.width = len(row)
		}
	}
	copy(b.actors, actors)
	for _, a := range actors {
		if a.Kind() == KindPlayer {
			b.player = a
			break
		}
	}
	return b
}

// Width returns the length of the longest grid row.
func (b *Board) Width() int { return b.width }

// Height returns the number of grid rows.
func (b *Board) Height() int { return b.height }

// Status returns the current pass/fail state.
func (b *Board) Status() Status { return b.status }

// Player returns the player resolved at construction, or nil if the plan had none.
func (b *Board) Player() *Actor { return b.player }

// FinishDelay returns the remaining grace period.
func (b *Board) FinishDelay() float64 { return b.finishDelay }

// SetFinishDelay replaces the remaining grace period.
// The board never changes it on its own; the tick driver counts it down.
func (b *Board) SetFinishDelay(d float64) { b.finishDelay = d }

// Cell returns the obstacle at grid cell (x, y), or KindNone for open or
// out-of-range cells.
func (b *Board) Cell(x, y int) Kind {
	if y < 0 || y >= len(b.grid) {
		return KindNone
	}
	row := b.grid[y]
	if x < 0 || x >= len(row) {
		return KindNone
	}
	return row[x]
}

// Grid returns a copy of the obstacle grid.
func (b *Board) Grid() [][]Kind {
	out := make([][]Kind, len(b.grid))
	for i, row := range b.grid {
		out[i] = make([]Kind, len(row))
		copy(out[i], row)
	}
	return out
}

// Actors returns a snapshot of the actor list in order.
func (b *Board) Actors() []*Actor {
	out := make([]*Actor, len(b.actors))
	copy(out, b.actors)
	return out
}

// Contains reports whether the actor is still on the board.
func (b *Board) Contains(actor *Actor) bool {
	for _, a := range b.actors {
		if a == actor {
			return true
		}
	}
	return false
}

// Count returns how many actors of the given kind remain.
func (b *Board) Count(kind Kind) int {
	n := 0
	for _, a := range b.actors {
		if a.Kind() == kind {
			n++
		}
	}
	return n
}

// ObstacleAt returns the obstacle a box at pos with the given size would touch.
// The board is walled on the left, top and right, and has lava below.
// Inside, cells are scanned row by row from the top and the first
// non-empty one wins.
func (b *Board) ObstacleAt(pos, size platformcore.Vector) Kind {
	left, top, right, bottom := platformcore.NewBox(pos, size).CellSpan()

	if left < 0 || right > b.width || top < 0 {
		return KindWall
	}
	if bottom > b.height {
		return KindLava
	}

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			if k := b.Cell(x, y); k != KindNone {
				return k
			}
		}
	}
	return KindNone
}

// ActorAt returns the first other actor, in list order, that overlaps actor.
func (b *Board) ActorAt(actor *Actor) *Actor {
	if actor == nil {
		panic("lavarun: ActorAt requires an actor")
	}
	for _, a := range b.actors {
		if a.Intersects(actor) {
			return a
		}
	}
	return nil
}

// RemoveActor removes the first occurrence of actor. Removing an absent
// actor is a no-op.
func (b *Board) RemoveActor(actor *Actor) {
	for i, a := range b.actors {
		if a == actor {
			b.actors = append(b.actors[:i], b.actors[i+1:]...)
			return
		}
	}
}

// NoMoreActorsOfKind reports whether no remaining actor has the given kind.
func (b *Board) NoMoreActorsOfKind(kind Kind) bool {
	return b.Count(kind) == 0
}

// PlayerTouched updates the status after the player touched something of
// the given kind. Once decided, the status never changes again.
func (b *Board) PlayerTouched(kind Kind, actor *Actor) {
	if b.status.IsSet() {
		return
	}

	switch kind {
	case KindLava, KindFireball:
		b.status = StatusLost
	case KindCoin:
		if actor != nil {
			b.RemoveActor(actor)
		}
		if b.NoMoreActorsOfKind(KindCoin) {
			b.status = StatusWon
		}
	}
}

// IsFinished reports whether the level is decided and its grace period has run out.
func (b *Board) IsFinished() bool {
	return b.status.IsSet() && b.finishDelay < 0
}

// Fingerprint hashes the dynamic state of the board: status, finish delay
// and every actor's kind, position and speed in list order. Two boards
// that were simulated identically have equal fingerprints.
func (b *Board) Fingerprint() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)

	buf = append(buf, byte(b.status))
	buf = appendFloat(buf, b.finishDelay)
	//nolint:errcheck // xxhash.Digest.Write never fails
	d.Write(buf)

	for _, a := range b.actors {
		buf = buf[:0]
		buf = append(buf, string(a.kind)...)
		buf = appendFloat(buf, a.pos.X)
		buf = appendFloat(buf, a.pos.Y)
		buf = appendFloat(buf, a.speed.X)
		buf = appendFloat(buf, a.speed.Y)
		//nolint:errcheck // xxhash.Digest.Write never fails
		d.Write(buf)
	}
	return d.Sum64()
}

func appendFloat(buf []byte, f float64) []byte {
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
}
