// Package config loads golury.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "golury.toml"

type Config struct {
	Output OutputConfig `toml:"output"`
	Lint   LintConfig   `toml:"lint"`
	Run    RunConfig    `toml:"run"`
}

type OutputConfig struct {
	// Format is one of text, json, msgpack.
	Format string `toml:"format"`
	// Color is one of auto, on, off.
	Color          string `toml:"color"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type LintConfig struct {
	Warnings bool `toml:"warnings"`
}

type RunConfig struct {
	Trace bool `toml:"trace"`
	Jobs  int  `toml:"jobs"`
}

func Default() Config {
	return Config{
		Output: OutputConfig{
			Format:         "text",
			Color:          "auto",
			MaxDiagnostics: 100,
		},
		Lint: LintConfig{Warnings: true},
		Run:  RunConfig{Jobs: 4},
	}
}

// Load reads the configuration at path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find loads path when set, otherwise golury.toml from dir if present,
// otherwise the defaults. The returned path is empty when no file was read.
func Find(path, dir string) (Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}

	candidate := filepath.Join(dir, FileName)
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), "", nil
		}
		return Config{}, "", fmt.Errorf("%s: %w", candidate, err)
	}
	cfg, err := Load(candidate)
	return cfg, candidate, err
}

func (c Config) validate() error {
	switch c.Output.Format {
	case "text", "json", "msgpack":
	default:
		return fmt.Errorf("[output].format must be text, json or msgpack, got %q", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color must be auto, on or off, got %q", c.Output.Color)
	}
	if c.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("[output].max_diagnostics must not be negative")
	}
	if c.Run.Jobs < 1 {
		return fmt.Errorf("[run].jobs must be at least 1")
	}
	return nil
}
