package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config location, relative to the working directory.
const LocalPath = "configs/lavarun.yaml"

// Load loads the lavarun configuration.
// Search order: customPath -> ~/.lavarun/config.yaml -> ./configs/lavarun.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
// A symbol table given in a file replaces the default table.
// A broken custom file is an error; broken user or local files are skipped.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	return Embedded(), nil
}

// Embedded returns the configuration from the embedded default file.
func Embedded() Config {
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// parse decodes data over the defaults and validates the result.
// Symbol tables are replaced wholesale rather than merged key by key.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	defaults := cfg.Symbols
	cfg.Symbols = SymbolsConfig{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Symbols.Obstacles == nil {
		cfg.Symbols.Obstacles = defaults.Obstacles
	}
	if cfg.Symbols.Actors == nil {
		cfg.Symbols.Actors = defaults.Actors
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lavarun", filename)
}
