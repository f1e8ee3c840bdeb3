// Package formats provides level file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a single level file.
type YAMLLevel struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Plan   []string `yaml:"plan"`
	Script string   `yaml:"script,omitempty"` // Input script replayed by `check`
	Expect string   `yaml:"expect,omitempty"` // Expected outcome of the script: won or lost
}

// Level represents a parsed level ready for use.
type Level struct {
	ID     string
	Name   string
	Plan   []string
	Script string
	Expect string
}

// ParseYAML parses a single-level YAML document.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, errors.New("level has no id")
	}
	if len(yl.Plan) == 0 {
		return Level{}, fmt.Errorf("level %s has no plan", yl.ID)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:     yl.ID,
		Name:   name,
		Plan:   yl.Plan,
		Script: yl.Script,
		Expect: yl.Expect,
	}, nil
}

// ParsePlans parses a bare array of plans, the format level collections were
// originally published in. Each plan becomes a level with ID "<base>-NN".
// JSON is valid YAML, so the same decoder handles both.
func ParsePlans(data []byte, base string) ([]Level, error) {
	var plans [][]string
	if err := yaml.Unmarshal(data, &plans); err != nil {
		return nil, fmt.Errorf("plans unmarshal: %w", err)
	}
	if len(plans) == 0 {
		return nil, errors.New("no plans in collection")
	}

	levels := make([]Level, 0, len(plans))
	for i, plan := range plans {
		if len(plan) == 0 {
			return nil, fmt.Errorf("plan %d is empty", i+1)
		}
		levels = append(levels, Level{
			ID:   fmt.Sprintf("%s-%02d", base, i+1),
			Name: fmt.Sprintf("%s #%d", base, i+1),
			Plan: plan,
		})
	}
	return levels, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}
