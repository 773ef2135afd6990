package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/tkardel/baro/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "baro.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
modules = ["battery", "sound"]
separator = "  "
log_level = "debug"

[battery]
tick_ms = 1000
placeholder = "?"
dir = "/sys/class/power_supply/BAT1"

[sound]
tick_ms = 100
mute_label = "mut"
`)
	t.Setenv("BARO_CONFIG", path)

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"battery", "sound"}, cfg.Modules)
	assert.Equal(t, "  ", cfg.Separator)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1000, cfg.Battery.TickMS)
	assert.Equal(t, "?", cfg.Battery.Placeholder)
	assert.Equal(t, "/sys/class/power_supply/BAT1", cfg.Battery.Dir)
	assert.Equal(t, 100, cfg.Sound.TickMS)
	assert.Equal(t, "mut", cfg.Sound.MuteLabel)
	// Unset options keep their per-module defaults.
	assert.Equal(t, "sou", cfg.Sound.Label)
	assert.Equal(t, "%l:%v", cfg.Sound.Format)
	assert.Equal(t, "bat", cfg.Battery.Label)
}

func TestLoadDefaults(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("BARO_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("HOME", tempDir)

	cfg, err := config.Load("")
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, config.DefaultModules, cfg.Modules)
	assert.Equal(t, config.DefaultSeparator, cfg.Separator)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, 500, cfg.CPU.TickMS)
	assert.Equal(t, 50, cfg.Sound.TickMS)
	assert.Equal(t, config.DefaultPlaceholder, cfg.Battery.Placeholder)
	assert.Equal(t, "wlan0", cfg.Wireless.Interface)
	assert.Equal(t, config.DisplaySignal, cfg.Wireless.Display)
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	path := writeConfig(t, `
This is not a valid TOML file
`)
	t.Setenv("BARO_CONFIG", path)

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read config file")
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestUnknownModule(t *testing.T) {
	path := writeConfig(t, `
modules = ["battery", "nope"]
`)
	t.Setenv("BARO_CONFIG", path)

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown module name")
}

func TestDuplicateModule(t *testing.T) {
	path := writeConfig(t, `
modules = ["cpu", "cpu"]
`)
	t.Setenv("BARO_CONFIG", path)

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listed more than once")
}

func TestInvalidTick(t *testing.T) {
	path := writeConfig(t, `
modules = ["cpu"]

[cpu]
tick_ms = 0
`)
	t.Setenv("BARO_CONFIG", path)

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tick interval must be positive")
}

func TestInvalidLogLevel(t *testing.T) {
	path := writeConfig(t, `
log_level = "loud"
`)
	t.Setenv("BARO_CONFIG", path)

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid log level")
}

func TestInvalidDisplayMode(t *testing.T) {
	path := writeConfig(t, `
modules = ["wireless"]

[wireless]
display = "sideways"
`)
	t.Setenv("BARO_CONFIG", path)

	_, err := config.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid display mode")
}
