package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lavarun/internal/games/lavarun/core"
)

// Expected outcomes a level may declare for its script.
const (
	ExpectWon  = "won"
	ExpectLost = "lost"
)

// Validate checks that a level is playable with the given parser:
// the plan is non-empty, has exactly one player and at least one coin, and
// uses no symbols the parser does not know. All problems are reported together.
func Validate(l Level, p *core.Parser) error {
	if len(l.Plan) == 0 {
		return fmt.Errorf("level %s: empty plan", l.ID)
	}

	var errs []error

	unknown := make(map[rune]bool)
	for y, row := range l.Plan {
		for x, r := range []rune(row) {
			if r == ' ' || r == '.' || unknown[r] {
				continue
			}
			if p.ObstacleFor(r) == core.KindNone && p.FactoryFor(r) == nil {
				unknown[r] = true
				errs = append(errs, fmt.Errorf("unknown symbol %q at column %d, row %d", r, x, y))
			}
		}
	}

	board := p.Parse(l.Plan)
	switch n := board.Count(core.KindPlayer); n {
	case 1:
	case 0:
		errs = append(errs, errors.New("no player"))
	default:
		errs = append(errs, fmt.Errorf("%d players, expected exactly one", n))
	}
	if board.Count(core.KindCoin) == 0 {
		errs = append(errs, errors.New("no coins, level can never be won"))
	}

	switch l.Expect {
	case "", ExpectWon, ExpectLost:
	default:
		errs = append(errs, fmt.Errorf("expect must be %q or %q, got %q", ExpectWon, ExpectLost, l.Expect))
	}
	if l.Expect != "" && l.Script == "" {
		errs = append(errs, errors.New("expect is set but there is no script"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("level %s: %w", l.ID, err)
	}
	return nil
}
