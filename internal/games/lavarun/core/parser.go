package core

import platformcore "github.com/vovakirdan/lavarun/internal/core"

// Factory creates an actor spawned in the grid cell at pos.
// A factory may return nil to decline the cell.
type Factory func(pos platformcore.Vector) *Actor

// ObstacleTable maps plan symbols to static obstacle kinds.
type ObstacleTable map[rune]Kind

// ActorTable maps plan symbols to actor factories.
type ActorTable map[rune]Factory

// Parser turns a textual plan into a Board.
// Each plan row is one grid row and each rune one cell.
// Both symbol tables are injected; the parser holds no other state.
type Parser struct {
	obstacles ObstacleTable
	actors    ActorTable
}

// NewParser creates a parser over the given symbol tables. Either may be nil.
func NewParser(obstacles ObstacleTable, actors ActorTable) *Parser {
	return &Parser{obstacles: obstacles, actors: actors}
}

// ObstacleFor returns the obstacle kind bound to symbol, or KindNone.
func (p *Parser) ObstacleFor(symbol rune) Kind {
	return p.obstacles[symbol]
}

// FactoryFor returns the actor factory bound to symbol, or nil.
func (p *Parser) FactoryFor(symbol rune) Factory {
	return p.actors[symbol]
}

// BuildGrid maps every cell of the plan to its obstacle kind, keeping the
// plan's (possibly ragged) shape. Unmapped symbols become open cells.
func (p *Parser) BuildGrid(plan []string) [][]Kind {
	grid := make([][]Kind, len(plan))
	for y, line := range plan {
		runes := []rune(line)
		row := make([]Kind, len(runes))
		for x, r := range runes {
			row[x] = p.ObstacleFor(r)
		}
		grid[y] = row
	}
	return grid
}

// BuildActors spawns an actor for every cell whose symbol has a factory,
// scanning row by row. Cells without a factory, obstacle symbols
// included, are skipped silently.
func (p *Parser) BuildActors(plan []string) []*Actor {
	var actors []*Actor
	for y, line := range plan {
		for x, r := range []rune(line) {
			factory := p.FactoryFor(r)
			if factory == nil {
				continue
			}
			if a := factory(platformcore.V(float64(x), float64(y))); a != nil {
				actors = append(actors, a)
			}
		}
	}
	return actors
}

// Parse builds a new board from the plan.
func (p *Parser) Parse(plan []string) *Board {
	return NewBoard(p.BuildGrid(plan), p.BuildActors(plan))
}
