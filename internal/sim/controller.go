// Package sim runs lavarun levels headlessly: a controller supplies the
// input for every tick and the runner drives the game to its outcome.
package sim

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	platformcore "github.com/vovakirdan/lavarun/internal/core"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/core"
)

// Controller produces the input for one tick.
// The board is the live board before the tick and must not be modified.
type Controller interface {
	Input(tick int, board *core.Board) platformcore.InputFrame
}

// Idle never presses anything.
type Idle struct{}

// Input returns an empty frame.
func (Idle) Input(int, *core.Board) platformcore.InputFrame {
	return platformcore.InputFrame{}
}

// MaxRepeat bounds the repeat count of a single script token.
const MaxRepeat = math.MaxInt32

// Script replays a fixed sequence of input frames.
// Ticks past the end of the script get empty frames.
type Script struct {
	steps []scriptStep
	ends  []int // Cumulative tick count at the end of each step
}

type scriptStep struct {
	frame  platformcore.InputFrame
	repeat int
}

// ParseScript parses a whitespace-separated list of tokens.
// A token is one or more action letters (L, R, U, J, P, or '.' for
// nothing, Q to quit, X to restart a decided level) with an optional
// "*N" repeat count, e.g. "R*10 RJ*3 .*5".
func ParseScript(src string) (*Script, error) {
	s := &Script{}
	total := 0

	for i, tok := range strings.Fields(src) {
		letters, repeat := tok, 1
		if idx := strings.IndexByte(tok, '*'); idx >= 0 {
			letters = tok[:idx]
			n, err := strconv.Atoi(tok[idx+1:])
			if err != nil || n <= 0 || n > MaxRepeat {
				return nil, fmt.Errorf("sim: token %d %q: repeat count must be 1..%d", i+1, tok, MaxRepeat)
			}
			repeat = n
		}
		if letters == "" {
			return nil, fmt.Errorf("sim: token %d %q: no actions", i+1, tok)
		}

		frame := platformcore.NewInputFrame()
		for _, r := range letters {
			action, err := platformcore.ParseAction(r)
			if err != nil {
				return nil, fmt.Errorf("sim: token %d %q: %w", i+1, tok, err)
			}
			frame.Set(action)
		}

		if total > math.MaxInt-repeat {
			return nil, fmt.Errorf("sim: token %d %q: script too long", i+1, tok)
		}
		total += repeat
		s.steps = append(s.steps, scriptStep{frame: frame, repeat: repeat})
		s.ends = append(s.ends, total)
	}

	return s, nil
}

// MustParseScript is like ParseScript but panics on error.
func MustParseScript(src string) *Script {
	s, err := ParseScript(src)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of ticks the script covers.
func (s *Script) Len() int {
	if len(s.ends) == 0 {
		return 0
	}
	return s.ends[len(s.ends)-1]
}

// Input returns the frame scheduled for tick.
func (s *Script) Input(tick int, _ *core.Board) platformcore.InputFrame {
	if tick < 0 {
		return platformcore.InputFrame{}
	}
	i := sort.SearchInts(s.ends, tick+1)
	if i >= len(s.steps) {
		return platformcore.InputFrame{}
	}
	return s.steps[i].frame.Clone()
}
