package lavarun

import (
	platformcore "github.com/vovakirdan/lavarun/internal/core"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/core"
)

// movePlayer turns the tick's input into player motion, one axis at a
// time, and reports whatever the player runs into to the board.
func (g *Game) movePlayer(p *core.Actor, dt float64, in platformcore.InputFrame) {
	g.moveX(p, dt, in)
	g.moveY(p, dt, in)

	if other := g.board.ActorAt(p); other != nil {
		g.board.PlayerTouched(other.Kind(), other)
	}
}

func (g *Game) moveX(p *core.Actor, dt float64, in platformcore.InputFrame) {
	vx := 0.0
	if in.Has(platformcore.ActionLeft) {
		vx -= g.cfg.Player.XSpeed
	}
	if in.Has(platformcore.ActionRight) {
		vx += g.cfg.Player.XSpeed
	}

	next := p.Pos().Plus(platformcore.V(vx*dt, 0))
	if obstacle := g.board.ObstacleAt(next, p.Size()); obstacle != core.KindNone {
		g.board.PlayerTouched(obstacle, nil)
	} else {
		p.MoveTo(next)
	}
	p.SetSpeed(platformcore.V(vx, p.Speed().Y))
}

func (g *Game) moveY(p *core.Actor, dt float64, in platformcore.InputFrame) {
	vy := p.Speed().Y + dt*g.cfg.Player.Gravity
	jump := in.Has(platformcore.ActionUp) || in.Has(platformcore.ActionJump)

	next := p.Pos().Plus(platformcore.V(0, vy*dt))
	if obstacle := g.board.ObstacleAt(next, p.Size()); obstacle != core.KindNone {
		g.board.PlayerTouched(obstacle, nil)
		// Landing with jump held launches; any other contact stops vertical motion.
		if vy > 0 && jump {
			vy = -g.cfg.Player.JumpSpeed
		} else {
			vy = 0
		}
	} else {
		p.MoveTo(next)
	}
	p.SetSpeed(platformcore.V(p.Speed().X, vy))
}
