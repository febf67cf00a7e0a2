// Package config loads entwine's run-time tunables: the placeholder date
// stamped on synthetic nodes and the placement-search safety-bound
// multiplier (spec §4.4, §9 Open Questions). Grounded on the teacher's
// load-with-sane-default shape for its own config file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/prabhavk/entwine/internal/placement"
)

// Config holds the values a run needs beyond its input/output paths.
type Config struct {
	// PlaceholderDate is stamped on every synthetic (hidden, root,
	// reassortment) node. Treated as an opaque string — see DESIGN.md's
	// Open Question resolution on synthetic dates.
	PlaceholderDate string `yaml:"placeholderDate"`
	// SearchBoundMultiplier scales the placement search's safety bound
	// (placement.DefaultBoundMultiplier if zero).
	SearchBoundMultiplier int `yaml:"searchBoundMultiplier"`
}

// Default returns the configuration a run uses when no config file is
// given.
func Default() Config {
	return Config{
		PlaceholderDate:       "",
		SearchBoundMultiplier: placement.DefaultBoundMultiplier,
	}
}

// Load reads and parses a YAML config file at path. A path of "" returns
// Default() without touching the filesystem.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.SearchBoundMultiplier <= 0 {
		cfg.SearchBoundMultiplier = placement.DefaultBoundMultiplier
	}
	return cfg, nil
}
