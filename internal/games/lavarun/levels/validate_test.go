package levels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformcore "github.com/vovakirdan/lavarun/internal/core"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/core"
	"github.com/vovakirdan/lavarun/internal/games/lavarun/levels"
)

func testParser() *core.Parser {
	return core.NewParser(core.ObstacleTable{'x': core.KindWall, '!': core.KindLava}, core.ActorTable{
		'@': core.NewPlayer,
		'o': func(pos platformcore.Vector) *core.Actor { return core.NewCoin(pos, 0) },
		'=': core.NewHorizontalFireball,
	})
}

func TestValidateEmbeddedPack(t *testing.T) {
	lvls, err := levels.NewEmbeddedLoader().LoadAll()
	require.NoError(t, err)

	p := core.NewParser(core.ObstacleTable{'x': core.KindWall, '!': core.KindLava}, core.ActorTable{
		'@': core.NewPlayer,
		'o': func(pos platformcore.Vector) *core.Actor { return core.NewCoin(pos, 0) },
		'=': core.NewHorizontalFireball,
		'|': core.NewVerticalFireball,
		'v': core.NewFireRain,
	})
	for _, lvl := range lvls {
		assert.NoError(t, levels.Validate(lvl, p), lvl.ID)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		level   levels.Level
		wantErr []string
	}{
		{
			name:  "valid",
			level: levels.Level{ID: "ok", Plan: []string{" @ o.", "xxxxx"}},
		},
		{
			name:    "empty plan",
			level:   levels.Level{ID: "e"},
			wantErr: []string{"empty plan"},
		},
		{
			name:    "no player",
			level:   levels.Level{ID: "np", Plan: []string{"o", "x"}},
			wantErr: []string{"no player"},
		},
		{
			name:    "two players",
			level:   levels.Level{ID: "tp", Plan: []string{"@o@", "xxx"}},
			wantErr: []string{"2 players"},
		},
		{
			name:    "no coins",
			level:   levels.Level{ID: "nc", Plan: []string{"@", "x"}},
			wantErr: []string{"no coins"},
		},
		{
			name:    "unknown symbols reported once each",
			level:   levels.Level{ID: "us", Plan: []string{"@o#", "##x"}},
			wantErr: []string{"unknown symbol '#' at column 2, row 0"},
		},
		{
			name:    "bad expect",
			level:   levels.Level{ID: "be", Plan: []string{"@o"}, Script: "R", Expect: "draw"},
			wantErr: []string{"expect must be"},
		},
		{
			name:    "expect without script",
			level:   levels.Level{ID: "es", Plan: []string{"@o"}, Expect: "won"},
			wantErr: []string{"no script"},
		},
		{
			name:    "several problems",
			level:   levels.Level{ID: "sp", Plan: []string{"?"}},
			wantErr: []string{"unknown symbol", "no player", "no coins"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := levels.Validate(tt.level, testParser())
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "level "+tt.level.ID)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
