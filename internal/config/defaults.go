package config

import (
	_ "embed"
)

//go:embed defaults/lavarun.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/lavarun.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Simulation: SimulationConfig{
			Step:        0.02,
			MaxTicks:    3000,
			FinishDelay: 1,
			Seed:        1,
		},
		Player: PlayerConfig{
			XSpeed:    7,
			Gravity:   30,
			JumpSpeed: 17,
		},
		Symbols: SymbolsConfig{
			Obstacles: map[string]string{
				"x": "wall",
				"!": "lava",
			},
			Actors: map[string]string{
				"@": "player",
				"o": "coin",
				"=": "horizontal_fireball",
				"|": "vertical_fireball",
				"v": "fire_rain",
			},
		},
		Storage: StorageConfig{
			DBPath: "~/.lavarun/runs.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
