// Package config handles loading and saving kanake run configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/peterjc/kana-chording-ke/internal/karabiner"
	"github.com/peterjc/kana-chording-ke/internal/layout"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name written by "kanake init".
const DefaultFile = "kanake.yaml"

// Config holds everything a run can override.
type Config struct {
	Metadata  karabiner.Metadata `yaml:"metadata" toml:"metadata"`
	Chord     ChordConfig        `yaml:"chord" toml:"chord"`
	HandsDown HandsDownConfig    `yaml:"handsdown" toml:"handsdown"`
	OutputDir string             `yaml:"output_dir" toml:"output_dir"`
}

// ChordConfig holds settings for flick chording.
type ChordConfig struct {
	ThresholdMilliseconds int `yaml:"threshold_ms" toml:"threshold_ms"` // simultaneous key window
}

// HandsDownConfig holds Hands Down timing settings.
type HandsDownConfig struct {
	ComboThreshold      int `yaml:"combo_threshold_ms" toml:"combo_threshold_ms"`             // two key combos
	LargeComboThreshold int `yaml:"large_combo_threshold_ms" toml:"large_combo_threshold_ms"` // three key combos
	TapHoldDelay        int `yaml:"tap_hold_delay_ms" toml:"tap_hold_delay_ms"`               // shift tap-hold
}

// Default returns the configuration matching the published documents.
func Default() *Config {
	opts := layout.DefaultOptions()
	return &Config{
		Metadata: opts.Metadata,
		Chord:    ChordConfig{ThresholdMilliseconds: opts.ChordThreshold},
		HandsDown: HandsDownConfig{
			ComboThreshold:      opts.ComboThreshold,
			LargeComboThreshold: opts.LargeComboThreshold,
			TapHoldDelay:        opts.TapHoldDelay,
		},
		OutputDir: ".",
	}
}

// Load reads a YAML or TOML config file over the defaults. Fields the
// file leaves out keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing TOML config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the timings are usable.
func (c *Config) Validate() error {
	var errs []error
	check := func(name string, ms int) {
		if ms <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, ms))
		}
	}
	check("chord.threshold_ms", c.Chord.ThresholdMilliseconds)
	check("handsdown.combo_threshold_ms", c.HandsDown.ComboThreshold)
	check("handsdown.large_combo_threshold_ms", c.HandsDown.LargeComboThreshold)
	check("handsdown.tap_hold_delay_ms", c.HandsDown.TapHoldDelay)
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output_dir must not be empty"))
	}
	return errors.Join(errs...)
}

// Save writes the configuration to path, as TOML for a .toml file and
// YAML otherwise.
func Save(path string, c *Config) error {
	var buf bytes.Buffer
	if filepath.Ext(path) == ".toml" {
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
	} else {
		out, err := yaml.Marshal(c)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		buf.Write(out)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Options converts the configuration into generator options.
func (c *Config) Options(logger *zap.Logger) layout.Options {
	return layout.Options{
		Metadata:            c.Metadata,
		ChordThreshold:      c.Chord.ThresholdMilliseconds,
		ComboThreshold:      c.HandsDown.ComboThreshold,
		LargeComboThreshold: c.HandsDown.LargeComboThreshold,
		TapHoldDelay:        c.HandsDown.TapHoldDelay,
		Logger:              logger,
	}
}
