// Package config provides YAML-based configuration loading for lavarun.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/lavarun/internal/core"
)

// Config is the complete lavarun configuration.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Player     PlayerConfig     `yaml:"player"`
	Symbols    SymbolsConfig    `yaml:"symbols"`
	Levels     LevelsConfig     `yaml:"levels"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig defines the fixed-step tick parameters.
type SimulationConfig struct {
	Step        float64 `yaml:"step"`
	MaxTicks    int     `yaml:"max_ticks"`
	FinishDelay float64 `yaml:"finish_delay"`
	Seed        int64   `yaml:"seed"`
}

// PlayerConfig defines how input actions turn into player motion.
type PlayerConfig struct {
	XSpeed    float64 `yaml:"x_speed"`
	Gravity   float64 `yaml:"gravity"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

// SymbolsConfig binds plan symbols to obstacle kinds and actor names.
// Keys are single characters.
type SymbolsConfig struct {
	Obstacles map[string]string `yaml:"obstacles"`
	Actors    map[string]string `yaml:"actors"`
}

// LevelsConfig locates the level pack. An empty Dir selects the built-in pack.
type LevelsConfig struct {
	Dir string `yaml:"dir"`
}

// StorageConfig locates the run ledger.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig sets the log level name (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level"`
}

// RuntimeConfig projects the simulation section onto the tick driver's runtime config.
func (c Config) RuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Step:     c.Simulation.Step,
		MaxTicks: c.Simulation.MaxTicks,
		Seed:     c.Simulation.Seed,
	}
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error

	if c.Simulation.Step <= 0 {
		errs = append(errs, fmt.Errorf("simulation.step must be positive, got %g", c.Simulation.Step))
	}
	if c.Simulation.MaxTicks <= 0 {
		errs = append(errs, fmt.Errorf("simulation.max_ticks must be positive, got %d", c.Simulation.MaxTicks))
	}
	if c.Simulation.FinishDelay < 0 {
		errs = append(errs, fmt.Errorf("simulation.finish_delay must not be negative, got %g", c.Simulation.FinishDelay))
	}
	if c.Player.XSpeed < 0 || c.Player.Gravity < 0 || c.Player.JumpSpeed < 0 {
		errs = append(errs, errors.New("player speeds and gravity must not be negative"))
	}

	for sym, kind := range c.Symbols.Obstacles {
		if utf8.RuneCountInString(sym) != 1 {
			errs = append(errs, fmt.Errorf("symbols.obstacles: %q is not a single character", sym))
		}
		if kind == "" {
			errs = append(errs, fmt.Errorf("symbols.obstacles: %q has no kind", sym))
		}
	}
	for sym, name := range c.Symbols.Actors {
		if utf8.RuneCountInString(sym) != 1 {
			errs = append(errs, fmt.Errorf("symbols.actors: %q is not a single character", sym))
		}
		if _, clash := c.Symbols.Obstacles[sym]; clash {
			errs = append(errs, fmt.Errorf("symbols: %q is bound to both an obstacle and actor %q", sym, name))
		}
	}

	return errors.Join(errs...)
}
