package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig is the optional riftc.yaml project configuration.
// Any field left zero-valued falls back to its package-level default.
type ProjectConfig struct {
	MaxErrors        int    `yaml:"max_errors"`
	Color            string `yaml:"color"` // "auto", "always", "never"
	WarningsAsErrors bool   `yaml:"warnings_as_errors"`
	Emit             string `yaml:"emit"` // "ir" or "asm"
}

// DefaultProjectConfig returns the configuration used when no
// riftc.yaml is present or a field isn't set.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		MaxErrors: DefaultMaxErrors,
		Color:     "auto",
		Emit:      "ir",
	}
}

// LoadProjectConfig reads and parses a riftc.yaml file at path,
// filling in defaults for anything left unset. A missing file is not
// an error — it yields the defaults.
func LoadProjectConfig(path string) (ProjectConfig, error) {
	cfg := DefaultProjectConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var override ProjectConfig
	if err := yaml.Unmarshal(data, &override); err != nil {
		return cfg, err
	}

	if override.MaxErrors > 0 {
		cfg.MaxErrors = override.MaxErrors
	}
	if override.Color != "" {
		cfg.Color = override.Color
	}
	if override.Emit != "" {
		cfg.Emit = override.Emit
	}
	cfg.WarningsAsErrors = override.WarningsAsErrors

	return cfg, nil
}
