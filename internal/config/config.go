package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/NathanMOlson/ubxlib/internal/extract"
)

// Config represents the tool configuration file.
//
// The marker strings are configuration rather than protocol: they must
// match the log format of the ubxlib build that produced the input, and
// a fork or a rebranded port may print different prefixes.
type Config struct {
	Markers Markers `yaml:"markers"`
	Output  Output  `yaml:"output"`
}

// Markers holds the literal substrings that identify GNSS traffic lines.
type Markers struct {
	Response string `yaml:"response,omitempty"` // Device-to-host lines
	Command  string `yaml:"command,omitempty"`  // Host-to-device lines
}

// Output holds output file settings.
type Output struct {
	Extension string `yaml:"extension,omitempty"` // Appended when the output path has none
}

// Default returns the configuration matching a stock ubxlib build.
func Default() *Config {
	return &Config{
		Markers: Markers{
			Response: extract.DefaultResponseMarker,
			Command:  extract.DefaultCommandMarker,
		},
		Output: Output{
			Extension: extract.DefaultOutputExtension,
		},
	}
}

// Load reads a YAML configuration file, filling any field the file
// leaves unset (or empty) from the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	defaults := Default()
	if cfg.Markers.Response == "" {
		cfg.Markers.Response = defaults.Markers.Response
	}
	if cfg.Markers.Command == "" {
		cfg.Markers.Command = defaults.Markers.Command
	}
	if cfg.Output.Extension == "" {
		cfg.Output.Extension = defaults.Output.Extension
	}

	return cfg, nil
}
