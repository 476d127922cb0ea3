package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/peterjc/kana-chording-ke/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultMatchesLayoutDefaults(t *testing.T) {
	opts := Default().Options(nil)
	want := layout.DefaultOptions()
	want.Logger = nil

	assert.Equal(t, want, opts)
	assert.NoError(t, Default().Validate())
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "kanake.yaml", `
metadata:
  author: Someone Else
chord:
  threshold_ms: 80
output_dir: build
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Someone Else", cfg.Metadata.Author)
	assert.Equal(t, 80, cfg.Chord.ThresholdMilliseconds)
	assert.Equal(t, "build", cfg.OutputDir)
	// Untouched fields keep defaults.
	assert.Equal(t, 50, cfg.HandsDown.ComboThreshold)
	assert.Equal(t, []string{"peterjc"}, cfg.Metadata.Maintainers)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "kanake.toml", `
output_dir = "out"

[handsdown]
combo_threshold_ms = 40
tap_hold_delay_ms = 200

[metadata]
maintainers = ["a", "b"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 40, cfg.HandsDown.ComboThreshold)
	assert.Equal(t, 100, cfg.HandsDown.LargeComboThreshold)
	assert.Equal(t, 200, cfg.HandsDown.TapHoldDelay)
	assert.Equal(t, []string{"a", "b"}, cfg.Metadata.Maintainers)

	opts := cfg.Options(nil)
	assert.Equal(t, 40, opts.ComboThreshold)
	assert.Equal(t, 200, opts.TapHoldDelay)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config file")

	_, err = Load(writeConfig(t, "kanake.json", `{}`))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = Load(writeConfig(t, "bad.yaml", "chord: [1, 2"))
	assert.ErrorContains(t, err, "parsing YAML config")

	_, err = Load(writeConfig(t, "bad.toml", "chord = ["))
	assert.ErrorContains(t, err, "parsing TOML config")

	_, err = Load(writeConfig(t, "zero.yaml", "chord:\n  threshold_ms: 0\n"))
	assert.ErrorContains(t, err, "chord.threshold_ms must be positive")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	cfg := Default()
	cfg.Chord.ThresholdMilliseconds = 120

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSaveTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kanake.toml")
	cfg := Default()
	cfg.HandsDown.TapHoldDelay = 175

	require.NoError(t, Save(path, cfg))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tap_hold_delay_ms = 175")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
