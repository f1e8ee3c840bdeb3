package lavarun

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/lavarun/internal/core"
	"github.com/vovakirdan/lavarun/internal/config"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/core"
	"github.com/vovakirdan/lavarun/internal/registry"
)

// Actor names usable in the symbols.actors configuration.
const (
	ActorPlayer             = "player"
	ActorCoin               = "coin"
	ActorHorizontalFireball = "horizontal_fireball"
	ActorVerticalFireball   = "vertical_fireball"
	ActorFireRain           = "fire_rain"
)

// Catalog is the set of actor factories available to level symbols.
type Catalog = registry.Registry[core.Factory]

// NewCatalog creates a catalog of every built-in actor.
// Coin phases are drawn from rng, so a catalog is bound to one run.
func NewCatalog(rng *rand.Rand) *Catalog {
	c := registry.New[core.Factory]()
	c.Register(ActorPlayer, "Player", core.NewPlayer)
	c.Register(ActorCoin, "Coin", func(pos platformcore.Vector) *core.Actor {
		return core.NewCoin(pos, rng.Float64()*2*math.Pi)
	})
	c.Register(ActorHorizontalFireball, "Horizontal fireball", core.NewHorizontalFireball)
	c.Register(ActorVerticalFireball, "Vertical fireball", core.NewVerticalFireball)
	c.Register(ActorFireRain, "Fire rain", core.NewFireRain)
	return c
}

// ObstacleTable converts configured obstacle bindings into a parser table.
func ObstacleTable(symbols config.SymbolsConfig) (core.ObstacleTable, error) {
	table := make(core.ObstacleTable, len(symbols.Obstacles))
	for sym, kind := range symbols.Obstacles {
		r, err := symbolRune(sym)
		if err != nil {
			return nil, err
		}
		table[r] = core.Kind(kind)
	}
	return table, nil
}

// ActorTable resolves configured actor bindings against the catalog.
func ActorTable(c *Catalog, symbols config.SymbolsConfig) (core.ActorTable, error) {
	// Resolve in symbol order so errors are reported deterministically.
	syms := make([]string, 0, len(symbols.Actors))
	for sym := range symbols.Actors {
		syms = append(syms, sym)
	}
	sort.Strings(syms)

	table := make(core.ActorTable, len(syms))
	for _, sym := range syms {
		r, err := symbolRune(sym)
		if err != nil {
			return nil, err
		}
		factory, err := c.Get(symbols.Actors[sym])
		if err != nil {
			return nil, fmt.Errorf("symbol %q: %w", sym, err)
		}
		table[r] = factory
	}
	return table, nil
}

// NewParser builds a plan parser from configuration, drawing coin phases from rng.
func NewParser(symbols config.SymbolsConfig, rng *rand.Rand) (*core.Parser, error) {
	obstacles, err := ObstacleTable(symbols)
	if err != nil {
		return nil, err
	}
	actors, err := ActorTable(NewCatalog(rng), symbols)
	if err != nil {
		return nil, err
	}
	return core.NewParser(obstacles, actors), nil
}

func symbolRune(sym string) (rune, error) {
	if utf8.RuneCountInString(sym) != 1 {
		return 0, fmt.Errorf("symbol %q is not a single character", sym)
	}
	r, _ := utf8.DecodeRuneInString(sym)
	return r, nil
}
