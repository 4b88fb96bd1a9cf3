package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/SharanyaR1/Code-Canvas/pkg/core"
	"github.com/SharanyaR1/Code-Canvas/pkg/session"
)

// ConfigFileName is the optional per-workspace configuration file, located
// inside the system directory.
const ConfigFileName = "config.yaml"

// Config is the per-workspace configuration.
type Config struct {
	// Icon is the glyph shown in hover previews. Empty selects the default.
	Icon string `yaml:"icon"`

	// Include restricts annotation to files matching any of these glob
	// patterns (doublestar syntax, matched against the normalized path).
	// Empty means everything is annotatable.
	Include []string `yaml:"include"`

	// Exclude lists glob patterns of files that must not be annotated.
	// Exclusion wins over inclusion.
	Exclude []string `yaml:"exclude"`
}

// LoadConfig reads `<root>/<systemDir>/config.yaml`. A missing file yields
// the zero Config; malformed YAML is an error (configuration is authored by
// the user, unlike the notes file it should not degrade silently).
func LoadConfig(root, systemDir string) (Config, error) {
	if systemDir == "" {
		systemDir = DefaultSystemDir
	}

	var cfg Config
	data, err := os.ReadFile(filepath.Join(root, systemDir, ConfigFileName))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Filter builds the session path filter from the include/exclude patterns.
// Returns nil when the config imposes no restriction.
func (c Config) Filter() session.PathFilter {
	if len(c.Include) == 0 && len(c.Exclude) == 0 {
		return nil
	}

	include := append([]string(nil), c.Include...)
	exclude := append([]string(nil), c.Exclude...)

	return func(path string) bool {
		norm := core.NormalizePath(path)

		for _, pattern := range exclude {
			if ok, err := doublestar.Match(core.NormalizePath(pattern), norm); err == nil && ok {
				return false
			}
		}

		if len(include) == 0 {
			return true
		}
		for _, pattern := range include {
			if ok, err := doublestar.Match(core.NormalizePath(pattern), norm); err == nil && ok {
				return true
			}
		}
		return false
	}
}
