package role

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides allows a user to re-word role copy without rebuilding. Step
// order, permissions, and required fields are deliberately not overridable:
// those are engine invariants, not presentation.
type Overrides struct {
	Roles map[Role]RoleOverride `yaml:"roles"`
}

// RoleOverride carries per-role copy replacements. Empty values keep the
// built-in text.
type RoleOverride struct {
	DisplayName    string            `yaml:"displayName"`
	WelcomeMessage string            `yaml:"welcomeMessage"`
	Placeholders   Placeholders      `yaml:"placeholders"`
	StepLabels     map[StepID]string `yaml:"stepLabels"`
}

// LoadOverrides reads an optional YAML overrides file and applies it to the
// registry. A missing file is not an error; a malformed one is.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading role overrides: %w", err)
	}

	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("parsing role overrides %s: %w", path, err)
	}

	for r, o := range ov.Roles {
		cfg, ok := configs[r]
		if !ok {
			return fmt.Errorf("role overrides %s: unknown role %q", path, r)
		}
		if o.DisplayName != "" {
			cfg.DisplayName = o.DisplayName
		}
		if o.WelcomeMessage != "" {
			cfg.WelcomeMessage = o.WelcomeMessage
		}
		if o.Placeholders.Overview != "" {
			cfg.Placeholders.Overview = o.Placeholders.Overview
		}
		if o.Placeholders.Objectives != "" {
			cfg.Placeholders.Objectives = o.Placeholders.Objectives
		}
		if o.Placeholders.Notes != "" {
			cfg.Placeholders.Notes = o.Placeholders.Notes
		}
		configs[r] = cfg

		for id, label := range o.StepLabels {
			if _, ok := allSteps[id]; !ok {
				return fmt.Errorf("role overrides %s: unknown step %q", path, id)
			}
			if label == "" {
				continue
			}
			if stepLabels[id] == nil {
				stepLabels[id] = map[Role]string{}
			}
			stepLabels[id][r] = label
		}
	}
	return nil
}
